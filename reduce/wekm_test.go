package reduce_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/typereduction/interval"
	"github.com/katalvlaran/typereduction/reduce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWEKM_WeightErrors(t *testing.T) {
	_, err := reduce.WEKM(scenario3(), []float64{1, 1}, nil)
	assert.ErrorIs(t, err, reduce.ErrWeightsLength)

	for _, w := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err = reduce.WEKM(scenario3(), []float64{1, w, 1}, nil)
		assert.ErrorIs(t, err, reduce.ErrBadWeight)
		assert.ErrorContains(t, err, "index 1")
	}
}

// TestWEKM_ZeroWeightKeepsValidation: a rule weighted by 0 is still
// validated as supplied.
func TestWEKM_ZeroWeightKeepsValidation(t *testing.T) {
	cases := []struct {
		name string
		bad  interval.Interval
		want error
	}{
		{"inverted weight", interval.Interval{A: 2, B: 2, C: 0.8, D: 0.2}, interval.ErrInvertedWeight},
		{"negative weights", interval.Interval{A: 2, B: 2, C: -0.3, D: -0.1}, interval.ErrNegativeWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seq := interval.Sequence{{A: 1, B: 1, C: 0.2, D: 0.8}, tc.bad}
			got, err := reduce.WEKM(seq, []float64{1, 0}, nil)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorContains(t, err, "index 1")
			assert.Equal(t, reduce.Result{}, got)
		})
	}
}

// TestWEKM_UniformWeights: a common scale factor cancels out of every
// weighted average.
func TestWEKM_UniformWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet + 20))
	for c := 0; c < randomCases; c++ {
		seq := randomSequence(rng, c%2 == 1)
		weights := make([]float64, len(seq))
		for i := range weights {
			weights[i] = 2
		}
		want, err := reduce.EKM(seq.Clone(), nil)
		require.NoError(t, err)
		got, err := reduce.WEKM(seq.Clone(), weights, nil)
		require.NoError(t, err)
		diff(t, want, got, approx(epsMatch))
	}
}

// TestWEKM_ZeroWeightDropsRule: weighting a rule by 0 is the same as
// removing it.
func TestWEKM_ZeroWeightDropsRule(t *testing.T) {
	seq := scenario3()
	got, err := reduce.WEKM(seq, []float64{1, 0, 1}, nil)
	require.NoError(t, err)

	want, err := reduce.EKM(interval.Sequence{seq[0], seq[2]}, nil)
	require.NoError(t, err)
	diff(t, want, got, approx(epsTiny))
}

func TestWEKM_LeavesInputUntouched(t *testing.T) {
	seq := interval.Sequence{
		{A: 3, B: 3, C: 0.1, D: 0.9},
		{A: 1, B: 1, C: 0.2, D: 0.8},
	}
	_, err := reduce.WEKM(seq, []float64{0.5, 3}, nil)
	require.NoError(t, err)
	assert.Equal(t, interval.Sequence{
		{A: 3, B: 3, C: 0.1, D: 0.9},
		{A: 1, B: 1, C: 0.2, D: 0.8},
	}, seq)
}

// TestTWEKM_ThreeRuleScenario: the end rules of scenario3 are halved, giving
// (1.15/0.75, 2.05/0.85).
func TestTWEKM_ThreeRuleScenario(t *testing.T) {
	got, err := reduce.TWEKM(scenario3(), nil)
	require.NoError(t, err)
	diff(t, reduce.Result{Left: 23.0 / 15.0, Right: 41.0 / 17.0}, got, approx(epsMatch))
}

// TestTWEKM_MatchesExplicitWeights checks TWEKM against WEKM with the
// trapezoidal weights spelled out on an A-ordered input.
func TestTWEKM_MatchesExplicitWeights(t *testing.T) {
	seq := interval.Sequence{
		{A: 1, B: 1.5, C: 0.1, D: 0.6},
		{A: 2, B: 2.5, C: 0.4, D: 0.9},
		{A: 3, B: 3.2, C: 0.3, D: 0.5},
		{A: 4, B: 4.1, C: 0.2, D: 1},
	}
	want, err := reduce.WEKM(seq.Clone(), []float64{0.5, 1, 1, 0.5}, nil)
	require.NoError(t, err)

	shuffled := interval.Sequence{seq[2], seq[0], seq[3], seq[1]}
	got, err := reduce.TWEKM(shuffled, nil)
	require.NoError(t, err)
	diff(t, want, got, approx(epsTiny))
}
