// SPDX-License-Identifier: MIT

package reduce

import (
	"math"

	"github.com/katalvlaran/typereduction/interval"
)

// bound selects which end point a search computes.
//
// For the left bound (y_l) intervals up to the switch index k take their
// upper weight D and the rest their lower weight C, keyed by A.
// For the right bound (y_r) the roles of C and D swap and the key is B.
type bound int

const (
	leftBound bound = iota
	rightBound
)

func (b bound) String() string {
	if b == leftBound {
		return "left"
	}

	return "right"
}

// key returns the centroid bound the search is ordered by.
func (b bound) key(iv interval.Interval) float64 {
	if b == leftBound {
		return iv.A
	}

	return iv.B
}

// weight returns the firing strength used for iv when it sits at or below
// the switch index (inner) or above it.
func (b bound) weight(iv interval.Interval, inner bool) float64 {
	if (b == leftBound) == inner {
		return iv.D
	}

	return iv.C
}

// prepare validates seq and reorders it so that the contributing rules
// form an A-ascending prefix.
//
// It returns done=true together with the final Result when no search is
// needed: all weights zero gives (0, 0) and a single contributing rule
// gives (A, B).
func prepare(seq interval.Sequence) (work interval.Sequence, res Result, done bool, err error) {
	if err = seq.Validate(); err != nil {
		return nil, Result{}, true, err
	}
	work = seq.Compact()
	switch len(work) {
	case 0:
		return nil, Result{}, true, nil
	case 1:
		return nil, Result{Left: work[0].A, Right: work[0].B}, true, nil
	}

	return work, Result{}, false, nil
}

// orderForRight re-sorts an A-ordered work slice by B unless both orders coincide.
func orderForRight(work interval.Sequence) {
	if !work.CentroidsCoincide() {
		work.SortByB()
	}
}

// switchIndex returns the k in [0, n-2] with key_k <= y <= key_{k+1},
// treating values within eps of a boundary as equal. The first match wins.
//
// Complexity: O(n).
func switchIndex(s interval.Sequence, b bound, y, eps float64) int {
	var (
		n      = len(s)
		i      int
		lo, hi float64
	)
	for i = 0; i < n-1; i++ {
		lo, hi = b.key(s[i]), b.key(s[i+1])
		if (lo <= y && y <= hi) || near(lo, y, eps) || near(y, hi, eps) {
			return i
		}
	}
	// y is a convex combination of the keys, so only rounding gets here.
	if y > b.key(s[n-1]) {
		return n - 2
	}

	return 0
}

// weightedAverage evaluates the bound's weighted centroid for switch index k
// from scratch.
func weightedAverage(s interval.Sequence, b bound, k int) float64 {
	var num, den, w float64
	for i, iv := range s {
		w = b.weight(iv, i <= k)
		num += b.key(iv) * w
		den += w
	}

	return num / den
}

// seedIndex converts round(n/divisor) (1-based count of inner rules) into a
// 0-based switch index clamped to [0, n-2].
func seedIndex(n int, divisor float64) int {
	k := int(math.Round(float64(n)/divisor)) - 1
	if k < 0 {
		k = 0
	}
	if k > n-2 {
		k = n - 2
	}

	return k
}

func near(x, y, eps float64) bool { return math.Abs(x-y) <= eps }
