package reduce

import (
	"testing"

	"github.com/katalvlaran/typereduction/interval"
	"github.com/stretchr/testify/assert"
)

func TestSeedIndex(t *testing.T) {
	cases := []struct {
		n       int
		divisor float64
		want    int
	}{
		{5, DefaultLeftSeedDivisor, 1},
		{5, DefaultRightSeedDivisor, 2},
		{2, DefaultLeftSeedDivisor, 0},
		{2, DefaultRightSeedDivisor, 0},
		{10, 1, 8},  // clamped to n-2
		{3, 100, 0}, // clamped to 0
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, seedIndex(tc.n, tc.divisor), "n=%d divisor=%v", tc.n, tc.divisor)
	}
}

func TestSwitchIndex(t *testing.T) {
	s := interval.Sequence{{A: 1, B: 1}, {A: 2, B: 2}, {A: 3, B: 3}}
	assert.Equal(t, 0, switchIndex(s, leftBound, 1.5, 0))
	assert.Equal(t, 0, switchIndex(s, leftBound, 2, 0), "first match wins on a tie")
	assert.Equal(t, 1, switchIndex(s, rightBound, 2.5, 0))
	assert.Equal(t, 0, switchIndex(s, leftBound, 0.5, 0))
	assert.Equal(t, 1, switchIndex(s, leftBound, 3.5, 0))
	assert.Equal(t, 0, switchIndex(s, leftBound, 2+1e-9, 1e-7), "a value within eps above a key counts as on it")
}

func TestBoundWeight(t *testing.T) {
	iv := interval.Interval{A: 1, B: 2, C: 0.25, D: 0.75}
	assert.Equal(t, 0.75, leftBound.weight(iv, true))
	assert.Equal(t, 0.25, leftBound.weight(iv, false))
	assert.Equal(t, 0.25, rightBound.weight(iv, true))
	assert.Equal(t, 0.75, rightBound.weight(iv, false))
	assert.Equal(t, 1.0, leftBound.key(iv))
	assert.Equal(t, 2.0, rightBound.key(iv))
}

func TestOptionsResolve(t *testing.T) {
	o, err := resolve(nil)
	assert.NoError(t, err)
	assert.Equal(t, DefaultOptions(), o)

	o, err = resolve(&Options{Epsilon: 0})
	assert.NoError(t, err)
	assert.Equal(t, DefaultLeftSeedDivisor, o.LeftSeedDivisor)
	assert.Equal(t, DefaultRightSeedDivisor, o.RightSeedDivisor)
	assert.Equal(t, 13, o.iterationCap(5))

	_, err = resolve(&Options{LeftSeedDivisor: -1})
	assert.ErrorIs(t, err, ErrBadSeedDivisor)
}
