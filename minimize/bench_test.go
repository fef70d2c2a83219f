// SPDX-License-Identifier: MIT

package minimize_test

import (
	"testing"

	"github.com/katalvlaran/numkit/minimize"
)

// benchmarkMinimize runs a full Rosenbrock minimization per loop iteration.
func benchmarkMinimize(b *testing.B, algo minimize.Algorithm) {
	opts := minimize.DefaultOptions()
	opts.Algo = algo
	opts.MaxIterations = 50000
	x0 := []float64{-1.2, 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := minimize.Minimize(rosenbrock, x0, opts); err != nil {
			b.Fatalf("%s failed: %v", algo, err)
		}
	}
}

// BenchmarkMinimize_NelderMead benchmarks the simplex on Rosenbrock.
func BenchmarkMinimize_NelderMead(b *testing.B) {
	benchmarkMinimize(b, minimize.NelderMead)
}

// BenchmarkMinimize_ConjugatePR benchmarks Polak–Ribière CG on Rosenbrock.
func BenchmarkMinimize_ConjugatePR(b *testing.B) {
	benchmarkMinimize(b, minimize.ConjugatePR)
}

// BenchmarkMinimize_VectorBFGS benchmarks the quasi-Newton engine.
func BenchmarkMinimize_VectorBFGS(b *testing.B) {
	benchmarkMinimize(b, minimize.VectorBFGS)
}
