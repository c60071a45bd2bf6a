// SPDX-License-Identifier: MIT

package reduce

import (
	"fmt"
	"math"

	"github.com/katalvlaran/typereduction/interval"
)

// WEKM runs EKM where rule i additionally carries the non-negative weight
// weights[i] (aligned with the input order of seq). Every EKM sum is linear
// in the firing strengths, so the weighted search equals plain EKM over
// firing strengths scaled by weights[i]; the scaling happens on a private
// copy and seq itself is left untouched.
//
// seq is validated as given, before any scaling, so a zero weight cannot
// mask a malformed rule.
//
// Errors: interval validation sentinels, ErrWeightsLength, ErrBadWeight,
// and everything EKM returns.
func WEKM(seq interval.Sequence, weights []float64, opts *Options) (Result, error) {
	if err := seq.Validate(); err != nil {
		return Result{}, err
	}
	if len(weights) != len(seq) {
		return Result{}, fmt.Errorf("%w: %d weights for %d intervals", ErrWeightsLength, len(weights), len(seq))
	}
	scaled := make(interval.Sequence, len(seq))
	for i, iv := range seq {
		w := weights[i]
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return Result{}, fmt.Errorf("%w at index %d", ErrBadWeight, i)
		}
		scaled[i] = interval.Interval{A: iv.A, B: iv.B, C: iv.C * w, D: iv.D * w}
	}

	return EKM(scaled, opts)
}

// TWEKM is WEKM with trapezoidal weights: 0.5 for the first and last rule of
// the A-ordered sequence and 1 for every other rule. It is the quadrature
// used when the rules are samples of a continuous output domain.
//
// seq is validated and then sorted by A in place.
func TWEKM(seq interval.Sequence, opts *Options) (Result, error) {
	if err := seq.Validate(); err != nil {
		return Result{}, err
	}
	seq.SortByA()

	weights := make([]float64, len(seq))
	for i := range weights {
		weights[i] = 1
	}
	weights[0] = 0.5
	weights[len(weights)-1] = 0.5

	return WEKM(seq, weights, opts)
}
