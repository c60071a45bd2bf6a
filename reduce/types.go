// SPDX-License-Identifier: MIT

package reduce

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors returned by the reduce package.
var (
	// ErrNotConverged indicates that a fixed-point search (KM, EKM) did not
	// settle within the iteration cap. For valid input the switch index moves
	// monotonically, so this signals a violated invariant, not a normal outcome.
	ErrNotConverged = errors.New("reduce: switch point search did not converge")

	// ErrBadEpsilon indicates a negative or non-finite Options.Epsilon.
	ErrBadEpsilon = errors.New("reduce: Epsilon must be finite and non-negative")

	// ErrBadMaxIterations indicates Options.MaxIterations < 0.
	ErrBadMaxIterations = errors.New("reduce: MaxIterations must be non-negative")

	// ErrBadSeedDivisor indicates a negative or non-finite EKM seed divisor.
	ErrBadSeedDivisor = errors.New("reduce: seed divisor must be finite and positive")

	// ErrUnknownAlgorithm indicates an Algorithm value or name outside the supported set.
	ErrUnknownAlgorithm = errors.New("reduce: unknown algorithm")

	// ErrWeightsLength indicates that WEKM weights do not match the sequence length.
	ErrWeightsLength = errors.New("reduce: weights length does not match sequence")

	// ErrBadWeight indicates a negative or non-finite WEKM weight.
	ErrBadWeight = errors.New("reduce: weight must be finite and non-negative")
)

// Defaults for Options.
const (
	// DefaultEpsilon is the tie tolerance for switch-point comparisons and
	// the KM termination test.
	DefaultEpsilon = 1e-7

	// DefaultLeftSeedDivisor seeds the EKM left switch point at round(N/2.4).
	DefaultLeftSeedDivisor = 2.4

	// DefaultRightSeedDivisor seeds the EKM right switch point at round(N/1.7).
	DefaultRightSeedDivisor = 1.7

	// iterationSlack is added to N when MaxIterations is 0. The switch index
	// visits at most N-1 distinct values, plus one confirming pass.
	iterationSlack = 8
)

// Options is the auxiliary parameter block accepted by every algorithm.
// A nil *Options means DefaultOptions().
//
// Fields:
//   - Epsilon          — tolerance under which a value is treated as equal to a
//     switch boundary (and KM's successive estimates as equal). 0 means exact.
//   - MaxIterations    — cap on KM/EKM outer iterations; 0 sizes the cap from N.
//   - LeftSeedDivisor  — EKM starts the y_l search at k = round(N/LeftSeedDivisor);
//     0 means DefaultLeftSeedDivisor.
//   - RightSeedDivisor — EKM starts the y_r search at k = round(N/RightSeedDivisor);
//     0 means DefaultRightSeedDivisor.
type Options struct {
	Epsilon          float64
	MaxIterations    int
	LeftSeedDivisor  float64
	RightSeedDivisor float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Epsilon:          DefaultEpsilon,
		MaxIterations:    0,
		LeftSeedDivisor:  DefaultLeftSeedDivisor,
		RightSeedDivisor: DefaultRightSeedDivisor,
	}
}

// Validate checks the option values without reference to any input.
func (o Options) Validate() error {
	if o.Epsilon < 0 || math.IsNaN(o.Epsilon) || math.IsInf(o.Epsilon, 0) {
		return ErrBadEpsilon
	}
	if o.MaxIterations < 0 {
		return ErrBadMaxIterations
	}
	if badDivisor(o.LeftSeedDivisor) || badDivisor(o.RightSeedDivisor) {
		return ErrBadSeedDivisor
	}

	return nil
}

// resolve validates opts and fills zero-valued seed divisors.
func resolve(opts *Options) (Options, error) {
	if opts == nil {
		return DefaultOptions(), nil
	}
	o := *opts
	if err := o.Validate(); err != nil {
		return Options{}, err
	}
	if o.LeftSeedDivisor == 0 {
		o.LeftSeedDivisor = DefaultLeftSeedDivisor
	}
	if o.RightSeedDivisor == 0 {
		o.RightSeedDivisor = DefaultRightSeedDivisor
	}

	return o, nil
}

// iterationCap returns the effective KM/EKM iteration cap for n intervals.
func (o Options) iterationCap(n int) int {
	if o.MaxIterations > 0 {
		return o.MaxIterations
	}

	return n + iterationSlack
}

func badDivisor(v float64) bool {
	return v < 0 || math.IsNaN(v) || math.IsInf(v, 0)
}

// Result is the reduced interval [Left, Right] = [y_l, y_r].
// For any valid non-degenerate input Left <= Right.
type Result struct {
	Left  float64
	Right float64
}

// Mid returns (Left + Right) / 2, the usual defuzzified value.
func (r Result) Mid() float64 { return (r.Left + r.Right) / 2 }

// Bounds are the Wu–Mendel uncertainty bounds around the exact end points:
//
//	LeftLower  <= y_l <= LeftUpper
//	RightLower <= y_r <= RightUpper
type Bounds struct {
	LeftLower  float64
	LeftUpper  float64
	RightLower float64
	RightUpper float64
}

// Mid returns the midpoint of each bound pair, which is the WM estimate.
func (b Bounds) Mid() Result {
	return Result{
		Left:  (b.LeftLower + b.LeftUpper) / 2,
		Right: (b.RightLower + b.RightUpper) / 2,
	}
}

// Tolerance returns the worst-case distance between Mid() and the exact
// end points: the larger half-width of the two bound pairs.
func (b Bounds) Tolerance() float64 {
	return math.Max(b.LeftUpper-b.LeftLower, b.RightUpper-b.RightLower) / 2
}

// Algorithm selects a type-reduction strategy.
type Algorithm int

const (
	// KarnikMendel selects KM.
	KarnikMendel Algorithm = iota

	// EnhancedKarnikMendel selects EKM.
	EnhancedKarnikMendel

	// EnhancedIASC selects EIASC (Enhanced Iterative Algorithm with Stop Condition).
	EnhancedIASC

	// WuMendel selects the WM closed-form approximation.
	WuMendel

	// Trapezoidal selects TWEKM (EKM with trapezoidal rule weights).
	Trapezoidal
)

var algorithmNames = [...]string{
	KarnikMendel:         "km",
	EnhancedKarnikMendel: "ekm",
	EnhancedIASC:         "eiasc",
	WuMendel:             "wm",
	Trapezoidal:          "twekm",
}

// Algorithms lists every supported Algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{KarnikMendel, EnhancedKarnikMendel, EnhancedIASC, WuMendel, Trapezoidal}
}

// String returns the lower-case short name ("km", "ekm", ...).
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// Exact reports whether the algorithm returns the Karnik–Mendel end points
// (up to Epsilon). WM approximates them and TWEKM reweights the rules, so
// neither is a substitute for KM.
func (a Algorithm) Exact() bool {
	switch a {
	case KarnikMendel, EnhancedKarnikMendel, EnhancedIASC:
		return true
	default:
		return false
	}
}

// ParseAlgorithm maps a case-insensitive short name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range algorithmNames {
		if n == name {
			return Algorithm(i), nil
		}
	}

	return 0, fmt.Errorf("%w %q", ErrUnknownAlgorithm, name)
}
