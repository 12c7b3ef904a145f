package packing_test

import (
	"testing"

	"github.com/katalvlaran/ballcover/geom"
	"github.com/katalvlaran/ballcover/packing"
)

// BenchmarkSeparationBound_Cached measures the cache fast path.
func BenchmarkSeparationBound_Cached(b *testing.B) {
	// Warm the cache outside the timer.
	if _, err := packing.SeparationBound(3); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := packing.SeparationBound(3); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSeparationBoundWith_Uncached measures the full bisection.
func BenchmarkSeparationBoundWith_Uncached(b *testing.B) {
	m := geom.Lebesgue{}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := packing.SeparationBoundWith(8, m); err != nil {
			b.Fatal(err)
		}
	}
}
