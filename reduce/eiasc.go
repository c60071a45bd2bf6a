// SPDX-License-Identifier: MIT

package reduce

import "github.com/katalvlaran/typereduction/interval"

// EIASC — Enhanced Iterative Algorithm with Stop Condition
//
// Algorithm Outline:
//  1. Sort ascending by a (and by b for y_r unless a == b everywhere).
//  2. y_l: start from the all-lower sums Σ a_i·c_i and Σ c_i. For
//     L = 0, 1, ... swap interval L's lower weight for its upper one by adding
//     a_L·(d_L-c_L) and (d_L-c_L); stop as soon as y_l <= a_{L+1} (within
//     Epsilon). L is the switch point.
//  3. y_r: start from the same all-lower sums over b. For R = N-1, N-2, ...
//     add b_R·(d_R-c_R) and (d_R-c_R); stop as soon as y_r >= b_{R-1}.
//
// Each bound is found in one monotone sweep: there is no outer fixed-point
// loop and therefore no iteration cap.
//
// Complexity: O(N log N) sort + O(N) sweep.
//
// Errors: interval validation sentinels, option sentinels.
func EIASC(seq interval.Sequence, opts *Options) (Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return Result{}, err
	}
	work, res, done, err := prepare(seq)
	if done {
		return res, err
	}

	left := eiascLeft(work, o.Epsilon)
	orderForRight(work)
	right := eiascRight(work, o.Epsilon)

	return Result{Left: left, Right: right}, nil
}

// eiascLeft sweeps upward over an A-ordered slice of length >= 2.
// After the first step the denominator is at least d_0 > 0.
func eiascLeft(s interval.Sequence, eps float64) float64 {
	var num, den float64
	for _, iv := range s {
		num += iv.A * iv.C
		den += iv.C
	}

	var (
		y, span, next float64
		l             int
	)
	for l = 0; l < len(s)-1; l++ {
		span = s[l].Span()
		num += s[l].A * span
		den += span
		y = num / den
		next = s[l+1].A
		if y <= next || near(y, next, eps) {
			break
		}
	}

	return y
}

// eiascRight sweeps downward over a B-ordered slice of length >= 2.
func eiascRight(s interval.Sequence, eps float64) float64 {
	var num, den float64
	for _, iv := range s {
		num += iv.B * iv.C
		den += iv.C
	}

	var (
		y, span, prev float64
		r             int
	)
	for r = len(s) - 1; r > 0; r-- {
		span = s[r].Span()
		num += s[r].B * span
		den += span
		y = num / den
		prev = s[r-1].B
		if y >= prev || near(y, prev, eps) {
			break
		}
	}

	return y
}
