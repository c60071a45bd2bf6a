// SPDX-License-Identifier: MIT

package reduce

import (
	"fmt"

	"github.com/katalvlaran/typereduction/interval"
)

// EKM — Enhanced Karnik–Mendel type reduction
//
// Same fixed point as KM, reached faster:
//  1. Seed the switch index at k = round(N/2.4) for y_l and
//     k = round(N/1.7) for y_r (Options.LeftSeedDivisor / RightSeedDivisor).
//  2. Evaluate the weighted average once from scratch for that k.
//  3. Find k' with key_{k'} <= y <= key_{k'+1}. If k' == k, stop.
//  4. Only the intervals in (min(k,k'), max(k,k')] change weight: add (or
//     subtract, s = sign(k'-k)) their key·(d-c) and (d-c) to the running
//     numerator and denominator, recompute y, set k = k', go to 3.
//
// The termination test compares integer indices, which is equivalent to
// KM's |y - y'| test and cheaper to evaluate.
//
// Complexity: O(N log N) sort + O(iter·N) switch scans; sum updates are
// amortised over the distance the switch index moves.
//
// Errors: as KM.
func EKM(seq interval.Sequence, opts *Options) (Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return Result{}, err
	}
	work, res, done, err := prepare(seq)
	if done {
		return res, err
	}

	return ekmOrdered(work, o)
}

// ekmOrdered runs both EKM searches over an A-ordered work slice of length >= 2.
func ekmOrdered(work interval.Sequence, o Options) (Result, error) {
	left, err := ekmSearch(work, leftBound, seedIndex(len(work), o.LeftSeedDivisor), o)
	if err != nil {
		return Result{}, err
	}
	orderForRight(work)
	right, err := ekmSearch(work, rightBound, seedIndex(len(work), o.RightSeedDivisor), o)
	if err != nil {
		return Result{}, err
	}

	return Result{Left: left, Right: right}, nil
}

// ekmSearch runs the incremental EKM loop for one bound starting at switch index k.
func ekmSearch(s interval.Sequence, b bound, k int, o Options) (float64, error) {
	var num, den, w float64
	for i, iv := range s {
		w = b.weight(iv, i <= k)
		num += b.key(iv) * w
		den += w
	}
	y := num / den

	var (
		limit        = o.iterationCap(len(s))
		iter         int
		next, lo, hi int
		dNum, dDen   float64
		span, sign   float64
		i            int
	)
	for iter = 0; iter < limit; iter++ {
		next = switchIndex(s, b, y, o.Epsilon)
		if next == k {
			return y, nil
		}

		lo, hi = min(k, next), max(k, next)
		dNum, dDen = 0, 0
		for i = lo + 1; i <= hi; i++ {
			span = s[i].Span()
			dNum += b.key(s[i]) * span
			dDen += span
		}

		// Moving k up hands D to more rules for y_l and takes it away for y_r.
		sign = 1
		if next < k {
			sign = -1
		}
		if b == rightBound {
			sign = -sign
		}
		num += sign * dNum
		den += sign * dDen
		y = num / den
		k = next
	}

	return 0, fmt.Errorf("%w: EKM %s bound after %d iterations", ErrNotConverged, b, limit)
}
