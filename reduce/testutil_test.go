// Package reduce_test holds the shared fixtures for the reducer tests.
package reduce_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/typereduction/interval"
	"github.com/katalvlaran/typereduction/reduce"
)

const (
	// epsMatch is the agreement expected between exact reducers.
	epsMatch = 1e-6

	// epsTiny is the slack allowed on analytically known values.
	epsTiny = 1e-12

	// seedDet drives every randomized property test.
	seedDet = int64(20210418)

	// randomCases is the number of random rule sets per property.
	randomCases = 500
)

// named pairs a reducer with a label for table-driven subtests.
type named struct {
	name string
	fn   reduce.Func
}

// exactReducers compute the Karnik–Mendel end points without extra weights.
var exactReducers = []named{
	{"KM", reduce.KM},
	{"EKM", reduce.EKM},
	{"EIASC", reduce.EIASC},
}

// allReducers adds the approximate and weighted variants.
var allReducers = append(append([]named(nil), exactReducers...),
	named{"WM", reduce.WM},
	named{"TWEKM", reduce.TWEKM},
)

// scenario3 is three rules with distinct singleton centroids; the exact
// end points are 1.7/1.2 (switch after rule 0) and 3.5/1.4 (switch after rule 1).
func scenario3() interval.Sequence {
	return interval.Sequence{
		{A: 1, B: 1, C: 0.2, D: 0.8},
		{A: 2, B: 2, C: 0.3, D: 0.7},
		{A: 3, B: 3, C: 0.1, D: 0.9},
	}
}

// randomSequence builds a valid rule set of 1..40 intervals. When general
// is true the centroid ranges have positive width. About one rule in ten
// carries no weight and one in twenty has a zero lower firing strength.
func randomSequence(rng *rand.Rand, general bool) interval.Sequence {
	n := 1 + rng.Intn(40)
	seq := make(interval.Sequence, n)
	for i := range seq {
		a := rng.Float64() * 10
		b := a
		if general {
			b += rng.Float64()
		}
		c := rng.Float64()
		d := c + rng.Float64()
		switch p := rng.Float64(); {
		case p < 0.1:
			c, d = 0, 0
		case p < 0.15:
			c = 0
		}
		seq[i] = interval.Interval{A: a, B: b, C: c, D: d}
	}

	return seq
}

// approx compares Results field by field within margin.
func approx(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}

// diff fails t when want and got differ under opts.
func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}
