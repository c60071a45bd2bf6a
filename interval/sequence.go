// SPDX-License-Identifier: MIT

package interval

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Validate checks the structural contract of s.
//
// Contract:
//   - len(s) >= 1,
//   - every field finite,
//   - 0 <= C <= D,
//   - A <= B.
//
// The first violation wins; the returned error wraps one of the sentinels
// and names the offending index.
//
// Complexity: O(N).
func (s Sequence) Validate() error {
	if len(s) == 0 {
		return ErrEmpty
	}

	var (
		i  int      // position under validation
		iv Interval // interval at i
	)
	for i, iv = range s {
		if !finite(iv.A) || !finite(iv.B) || !finite(iv.C) || !finite(iv.D) {
			return fmt.Errorf("%w at index %d", ErrNonFinite, i)
		}
		if iv.C < 0 || iv.D < 0 {
			return fmt.Errorf("%w at index %d", ErrNegativeWeight, i)
		}
		if iv.C > iv.D {
			return fmt.Errorf("%w at index %d", ErrInvertedWeight, i)
		}
		if iv.A > iv.B {
			return fmt.Errorf("%w at index %d", ErrInvertedCentroid, i)
		}
	}

	return nil
}

// Degenerate reports whether no rule carries weight (every C == D == 0).
// An empty sequence is not degenerate; it is invalid.
func (s Sequence) Degenerate() bool {
	if len(s) == 0 {
		return false
	}
	for _, iv := range s {
		if iv.Contributes() {
			return false
		}
	}

	return true
}

// CentroidsCoincide reports whether A == B for every interval. In that
// family an A-ordered sequence is also B-ordered, so the second sort
// required by the right-bound searches can be skipped.
func (s Sequence) CentroidsCoincide() bool {
	for _, iv := range s {
		if iv.A != iv.B {
			return false
		}
	}

	return true
}

// SortByA stably orders s ascending by the lower centroid bound A.
// Equal keys keep their relative order, so results are reproducible.
func (s Sequence) SortByA() {
	slices.SortStableFunc(s, byA)
}

// SortByB stably orders s ascending by the upper centroid bound B.
func (s Sequence) SortByB() {
	slices.SortStableFunc(s, byB)
}

// Compact reorders s in place so that contributing intervals come first,
// ascending by A, followed by the zero-weight ones. It returns the
// contributing prefix, which aliases s.
//
// Zero-weight rules add nothing to any numerator or denominator, so every
// reduction algorithm searches only the prefix.
//
// Complexity: O(N log N).
func (s Sequence) Compact() Sequence {
	slices.SortStableFunc(s, func(x, y Interval) int {
		xc, yc := x.Contributes(), y.Contributes()
		switch {
		case xc && !yc:
			return -1
		case !xc && yc:
			return 1
		}

		return byA(x, y)
	})

	var n int
	for n < len(s) && s[n].Contributes() {
		n++
	}

	return s[:n]
}

// Clone returns an independent copy of s.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}

	return slices.Clone(s)
}

// FromFlat converts a row-major buffer of (a, b, c, d) quadruples into a
// Sequence. The buffer is copied; later changes to buf are not observed.
func FromFlat(buf []float64) (Sequence, error) {
	if len(buf)%FlatWidth != 0 {
		return nil, fmt.Errorf("%w: got %d values", ErrFlatLength, len(buf))
	}
	n := len(buf) / FlatWidth
	s := make(Sequence, n)
	var i, off int
	for i = 0; i < n; i++ {
		off = i * FlatWidth
		s[i] = Interval{A: buf[off], B: buf[off+1], C: buf[off+2], D: buf[off+3]}
	}

	return s, nil
}

// Flatten returns s as a row-major (a, b, c, d) buffer.
func (s Sequence) Flatten() []float64 {
	buf := make([]float64, 0, len(s)*FlatWidth)
	for _, iv := range s {
		buf = append(buf, iv.A, iv.B, iv.C, iv.D)
	}

	return buf
}

func byA(x, y Interval) int { return cmp.Compare(x.A, y.A) }

func byB(x, y Interval) int { return cmp.Compare(x.B, y.B) }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
