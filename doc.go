// Package typereduction computes the type-reduced interval [y_l, y_r] of
// interval type-2 fuzzy rule sets.
//
// An interval type-2 fuzzy system fires every rule with an uncertain strength
// [c, d] and each rule's consequent has an uncertain centroid [a, b]. Type
// reduction finds the smallest and largest weighted average the footprint
// allows; its midpoint is the crisp output of the system.
//
// What is inside:
//
//	interval/  — Interval{A,B,C,D}, Sequence, validation, stable orderings,
//	             compaction of rules that do not fire, flat-buffer interop
//	reduce/    — KM, EKM, EIASC (exact), WM (closed-form approximation with
//	             bounds), WEKM/TWEKM (weighted EKM), Options, Reduce dispatcher
//	batch/     — parallel reduction of many independent rule sets
//	cmd/       — the typereduce command line (reduce, compare)
//	examples/  — a runnable fan-controller scenario
//
// Quick start:
//
//	seq := interval.Sequence{
//		{A: 1, B: 1, C: 0.2, D: 0.8},
//		{A: 2, B: 2, C: 0.3, D: 0.7},
//		{A: 3, B: 3, C: 0.1, D: 0.9},
//	}
//	res, err := reduce.EIASC(seq, nil) // res = [1.4167, 2.5]
//
// Every reducer sorts its input in place; pass seq.Clone() to keep the
// original order. Errors are sentinels matched with errors.Is.
package typereduction
