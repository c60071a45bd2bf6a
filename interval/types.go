// SPDX-License-Identifier: MIT

package interval

import "errors"

// Sentinel errors returned by Validate and FromFlat.
// Every message is prefixed with "interval: "; positional context is added
// with fmt.Errorf("%w ...") so errors.Is keeps working.
var (
	// ErrEmpty indicates a sequence with no intervals (N == 0).
	ErrEmpty = errors.New("interval: sequence is empty")

	// ErrNonFinite indicates a NaN or ±Inf in any of the four fields.
	ErrNonFinite = errors.New("interval: non-finite value")

	// ErrNegativeWeight indicates C < 0 or D < 0.
	ErrNegativeWeight = errors.New("interval: negative firing strength")

	// ErrInvertedWeight indicates C > D.
	ErrInvertedWeight = errors.New("interval: lower firing strength exceeds upper")

	// ErrInvertedCentroid indicates A > B.
	ErrInvertedCentroid = errors.New("interval: lower centroid bound exceeds upper")

	// ErrFlatLength indicates a flat buffer whose length is not a multiple of FlatWidth.
	ErrFlatLength = errors.New("interval: flat buffer length is not a multiple of 4")
)

// FlatWidth is the number of float64 values one Interval occupies in a flat buffer.
const FlatWidth = 4

// Interval is one rule's contribution to the reduced output.
//
// Fields:
//   - A, B — lower and upper bound of the rule's consequent centroid (A <= B).
//     A == B is the common case for singleton/centroid consequents.
//   - C, D — lower and upper bound of the rule's firing strength (0 <= C <= D).
type Interval struct {
	A float64 // lower centroid bound
	B float64 // upper centroid bound
	C float64 // lower firing strength
	D float64 // upper firing strength
}

// Span returns the width of the firing-strength range, D - C.
func (iv Interval) Span() float64 { return iv.D - iv.C }

// Contributes reports whether the rule carries any weight.
// For a valid interval this is equivalent to !(C == 0 && D == 0).
func (iv Interval) Contributes() bool { return iv.D > 0 }

// Sequence is an ordered set of rule intervals. Algorithms are allowed to
// reorder it in place and never retain it after returning.
type Sequence []Interval
