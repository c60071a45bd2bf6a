package reduce_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/typereduction/interval"
	"github.com/katalvlaran/typereduction/reduce"
)

// benchmarkReducer runs fn on a fresh copy of an n-rule set per iteration.
// The copy is part of the measured work because every reducer sorts in place.
func benchmarkReducer(b *testing.B, fn reduce.Func, n int) {
	rng := rand.New(rand.NewSource(seedDet))
	base := make(interval.Sequence, n)
	for i := range base {
		a := rng.Float64() * 10
		c := rng.Float64()
		base[i] = interval.Interval{A: a, B: a + rng.Float64(), C: c, D: c + rng.Float64()}
	}
	work := make(interval.Sequence, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(work, base)
		if _, err := fn(work, nil); err != nil {
			b.Fatalf("reduce failed: %v", err)
		}
	}
}

func BenchmarkKM_100(b *testing.B)     { benchmarkReducer(b, reduce.KM, 100) }
func BenchmarkEKM_100(b *testing.B)    { benchmarkReducer(b, reduce.EKM, 100) }
func BenchmarkEIASC_100(b *testing.B)  { benchmarkReducer(b, reduce.EIASC, 100) }
func BenchmarkWM_100(b *testing.B)     { benchmarkReducer(b, reduce.WM, 100) }
func BenchmarkTWEKM_100(b *testing.B)  { benchmarkReducer(b, reduce.TWEKM, 100) }
func BenchmarkKM_1000(b *testing.B)    { benchmarkReducer(b, reduce.KM, 1000) }
func BenchmarkEKM_1000(b *testing.B)   { benchmarkReducer(b, reduce.EKM, 1000) }
func BenchmarkEIASC_1000(b *testing.B) { benchmarkReducer(b, reduce.EIASC, 1000) }
func BenchmarkWM_1000(b *testing.B)    { benchmarkReducer(b, reduce.WM, 1000) }
