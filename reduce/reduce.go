// SPDX-License-Identifier: MIT

package reduce

import (
	"fmt"

	"github.com/katalvlaran/typereduction/interval"
)

// Func is the shared call shape of every interval reducer.
type Func func(seq interval.Sequence, opts *Options) (Result, error)

// For returns the reducer implementing algo.
func For(algo Algorithm) (Func, error) {
	switch algo {
	case KarnikMendel:
		return KM, nil
	case EnhancedKarnikMendel:
		return EKM, nil
	case EnhancedIASC:
		return EIASC, nil
	case WuMendel:
		return WM, nil
	case Trapezoidal:
		return TWEKM, nil
	default:
		return nil, fmt.Errorf("%w %s", ErrUnknownAlgorithm, algo)
	}
}

// Reduce runs the caller-selected algorithm on seq. There is no automatic
// selection: choosing WuMendel accepts an approximate result (see WM).
func Reduce(seq interval.Sequence, algo Algorithm, opts *Options) (Result, error) {
	fn, err := For(algo)
	if err != nil {
		return Result{}, err
	}

	return fn(seq, opts)
}
