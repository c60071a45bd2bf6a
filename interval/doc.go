// Package interval defines the weighted-interval data shared by every
// type-reduction algorithm in this module.
//
// 🚀 What is a weighted interval?
//
//	An interval type-2 fuzzy rule contributes to the output with two
//	uncertain quantities:
//	  • a consequent centroid range  [A, B]
//	  • a firing strength range      [C, D]
//	Type reduction collapses a Sequence of such rules into one crisp
//	interval [y_l, y_r] (see package reduce).
//
// ✨ What lives here:
//   - Interval / Sequence — typed replacement for a flat (a,b,c,d) buffer
//   - Validate            — fail-fast classification of malformed input
//   - SortByA / SortByB   — stable, deterministic ordering by one centroid bound
//   - Compact             — moves rules with zero weight to the tail
//   - FromFlat / Flatten  — interop with row-major float64 buffers
//
// Ownership:
//
//	Sorting and compaction reorder the receiver in place. Callers that need
//	the original order must Clone first.
package interval
