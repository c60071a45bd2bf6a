// SPDX-License-Identifier: MIT

package reduce

import (
	"fmt"
	"math"

	"github.com/katalvlaran/typereduction/interval"
)

// KM — Karnik–Mendel type reduction
//
// Algorithm Outline (y_l; y_r mirrors it with B as key and C/D swapped):
//  1. y' = Σ a_i·w_i / Σ w_i with w_i = (c_i + d_i) / 2.
//  2. Sort ascending by a.
//  3. Find k with a_k <= y' <= a_{k+1} (within Epsilon).
//  4. y = (Σ_{i<=k} a_i·d_i + Σ_{i>k} a_i·c_i) / (Σ_{i<=k} d_i + Σ_{i>k} c_i),
//     recomputed from scratch.
//  5. If |y - y'| <= Epsilon stop with y_l = y; else y' = y and go to 3.
//
// The sequence of estimates is monotone and bounded, so the loop settles
// within N iterations for valid input. Exceeding the cap returns
// ErrNotConverged.
//
// Complexity: O(N log N) sort + O(iter·N).
//
// Errors:
//   - interval validation sentinels (ErrEmpty, ErrInvertedWeight, ...).
//   - ErrBadEpsilon, ErrBadMaxIterations, ErrBadSeedDivisor.
//   - ErrNotConverged.
func KM(seq interval.Sequence, opts *Options) (Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return Result{}, err
	}
	work, res, done, err := prepare(seq)
	if done {
		return res, err
	}

	left, err := kmSearch(work, leftBound, o)
	if err != nil {
		return Result{}, err
	}
	orderForRight(work)
	right, err := kmSearch(work, rightBound, o)
	if err != nil {
		return Result{}, err
	}

	return Result{Left: left, Right: right}, nil
}

// kmSearch runs the KM fixed-point loop for one bound over an ordered work slice.
func kmSearch(s interval.Sequence, b bound, o Options) (float64, error) {
	var num, den, w float64
	for _, iv := range s {
		w = (iv.C + iv.D) / 2
		num += b.key(iv) * w
		den += w
	}
	yPrev := num / den

	var (
		limit = o.iterationCap(len(s))
		iter  int
		k     int
		y     float64
	)
	for iter = 0; iter < limit; iter++ {
		k = switchIndex(s, b, yPrev, o.Epsilon)
		y = weightedAverage(s, b, k)
		if math.Abs(y-yPrev) <= o.Epsilon {
			return y, nil
		}
		yPrev = y
	}

	return 0, fmt.Errorf("%w: KM %s bound after %d iterations", ErrNotConverged, b, limit)
}
