// SPDX-License-Identifier: MIT

package reduce

import (
	"math"

	"github.com/katalvlaran/typereduction/interval"
)

// WM — Wu–Mendel uncertainty-bound approximation
//
// WM returns the midpoints of the bounds computed by WMBounds. It never
// iterates and is the cheapest reducer, but it is an APPROXIMATION: the
// distance to the exact KM end points is at most Bounds.Tolerance().
// Never use it where the exact switch point is required.
//
// Complexity: O(N log N) sort + O(N) sums.
//
// Errors: interval validation sentinels, option sentinels.
func WM(seq interval.Sequence, opts *Options) (Result, error) {
	b, err := WMBounds(seq, opts)
	if err != nil {
		return Result{}, err
	}

	return b.Mid(), nil
}

// WMBounds computes the Wu–Mendel inner and outer bounds of y_l and y_r.
//
// Algorithm Outline (over the A-ordered contributing rules):
//  1. Six sums: Σc, Σd, Σa·c, Σb·c, Σa·d, Σb·d.
//  2. LeftUpper  = min(Σa·c/Σc, Σa·d/Σd)
//     RightLower = max(Σb·c/Σc, Σb·d/Σd)
//  3. corr = (Σd - Σc) / (Σc·Σd)
//  4. LeftLower  = LeftUpper  - corr · P·Q/(P+Q), P = Σc(a-a_1), Q = Σd(a_N-a)
//     RightUpper = RightLower + corr · P'·Q'/(P'+Q'), P' = Σd(b-b_1), Q' = Σc(b_N-b)
//
// Special cases:
//   - no rule carries weight: all bounds 0.
//   - one contributing rule: LeftLower = LeftUpper = a, RightLower = RightUpper = b.
//   - Σc == 0: the exact end points are (a_1, b_N); both pairs collapse onto them.
//   - P+Q == 0 (all centroids equal): the correction term is 0.
func WMBounds(seq interval.Sequence, opts *Options) (Bounds, error) {
	if _, err := resolve(opts); err != nil {
		return Bounds{}, err
	}
	work, res, done, err := prepare(seq)
	if done {
		if err != nil {
			return Bounds{}, err
		}

		return Bounds{LeftLower: res.Left, LeftUpper: res.Left, RightLower: res.Right, RightUpper: res.Right}, nil
	}

	var (
		sc, sd, sac, sbc, sad, sbd float64
		bFirst                     = math.Inf(1)
		bLast                      = math.Inf(-1)
	)
	for _, iv := range work {
		sc += iv.C
		sd += iv.D
		sac += iv.A * iv.C
		sbc += iv.B * iv.C
		sad += iv.A * iv.D
		sbd += iv.B * iv.D
		bFirst = math.Min(bFirst, iv.B)
		bLast = math.Max(bLast, iv.B)
	}
	aFirst, aLast := work[0].A, work[len(work)-1].A

	if sc == 0 {
		return Bounds{LeftLower: aFirst, LeftUpper: aFirst, RightLower: bLast, RightUpper: bLast}, nil
	}

	var (
		leftUpper  = math.Min(sac/sc, sad/sd)
		rightLower = math.Max(sbc/sc, sbd/sd)
		corr       = (sd - sc) / (sc * sd)
		p          = sac - aFirst*sc // Σc(a - a_1)
		q          = aLast*sd - sad  // Σd(a_N - a)
		pr         = sbd - bFirst*sd // Σd(b - b_1)
		qr         = bLast*sc - sbc  // Σc(b_N - b)
	)

	return Bounds{
		LeftLower:  leftUpper - corr*harmonicTerm(p, q),
		LeftUpper:  leftUpper,
		RightLower: rightLower,
		RightUpper: rightLower + corr*harmonicTerm(pr, qr),
	}, nil
}

// harmonicTerm returns p·q/(p+q), or 0 when p+q == 0.
func harmonicTerm(p, q float64) float64 {
	if p+q == 0 {
		return 0
	}

	return p * q / (p + q)
}
