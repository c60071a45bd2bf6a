// Package reduce computes type reduction for interval type-2 fuzzy logic
// systems: it collapses a sequence of weighted rule intervals into the
// crisp output interval [y_l, y_r].
//
// 🚀 What is type reduction?
//
//	Every embedded type-1 set inside the footprint of uncertainty has its
//	own centroid. The set of all those centroids is an interval whose
//	end points are
//
//	  y_l = min over f_i∈[c_i,d_i] of Σ a_i·f_i / Σ f_i
//	  y_r = max over f_i∈[c_i,d_i] of Σ b_i·f_i / Σ f_i
//
//	Both extrema are reached with a single "switch point" k in the
//	centroid-sorted rule order: upper weights on one side of k, lower
//	weights on the other.
//
// ✨ Algorithms:
//   - KM    — Karnik–Mendel fixed-point iteration, sums recomputed each step
//   - EKM   — Enhanced KM: tuned initial switch points + incremental sums
//   - EIASC — single monotone sweep per bound, no outer iteration
//   - WM    — Wu–Mendel closed-form uncertainty bounds (APPROXIMATE)
//   - WEKM / TWEKM — EKM with per-rule weights / trapezoidal weights
//
// KM, EKM and EIASC are exact: they return the same switch-point values up
// to Options.Epsilon. WM never iterates and is only an approximation; its
// error is bounded by the half-width of the bounds returned by WMBounds.
// WEKM and TWEKM solve the Karnik–Mendel problem for reweighted firing
// strengths, so their end points differ from KM's unless every weight is
// equal. Do not substitute WM or TWEKM where the KM end points are required.
//
// ⚙️ Usage:
//
//	seq := interval.Sequence{
//	  {A: 1, B: 1, C: 0.2, D: 0.8},
//	  {A: 2, B: 2, C: 0.3, D: 0.7},
//	  {A: 3, B: 3, C: 0.1, D: 0.9},
//	}
//	res, err := reduce.EIASC(seq, nil) // nil → DefaultOptions()
//
// Contracts shared by every algorithm:
//   - The input is validated first (see interval.Sequence.Validate).
//   - If no rule carries weight the result is exactly (0, 0).
//   - The input buffer is reordered in place; it is never retained.
//     Concurrent calls on the same buffer are not allowed.
//   - No partial results: either a complete Result or an error.
package reduce
