package rootfind_test

import (
	"testing"

	"github.com/katalvlaran/rootfind"
)

// BenchmarkMethods races every refiner against the same cubic with the same
// tolerances, one sub-benchmark per method.
func BenchmarkMethods(b *testing.B) {
	f := func(x float64) float64 { return x*x*x - x - 2 }
	for _, m := range rootfind.Methods() {
		m := m
		b.Run(m.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := rootfind.Solve(m, f, 1, 2, rootfind.WithFTol(1e-12)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkSolveNamed measures the dispatch overhead of the string facade.
func BenchmarkSolveNamed(b *testing.B) {
	f := func(x float64) float64 { return x*x*x - x - 2 }
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := rootfind.SolveNamed("brentq", f, 1, 2, rootfind.WithFTol(1e-12)); err != nil {
			b.Fatal(err)
		}
	}
}
