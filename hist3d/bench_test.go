package hist3d_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/numkit/hist3d"
)

// benchmarkAccumulate fills an n×n×n histogram with pre-generated samples.
func benchmarkAccumulate(b *testing.B, n int) {
	h, err := hist3d.New(n, n, n, 0, 1, 0, 1, 0, 1)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	const samples = 1024
	xs := make([]float64, samples)
	ys := make([]float64, samples)
	zs := make([]float64, samples)
	for i := 0; i < samples; i++ {
		xs[i], ys[i], zs[i] = rng.Float64(), rng.Float64(), rng.Float64()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := i % samples
		if err := h.Increment(xs[k], ys[k], zs[k]); err != nil {
			b.Fatalf("Increment failed: %v", err)
		}
	}
}

// BenchmarkIncrement_8 benchmarks binning into an 8×8×8 histogram.
func BenchmarkIncrement_8(b *testing.B) { benchmarkAccumulate(b, 8) }

// BenchmarkIncrement_64 benchmarks binning into a 64×64×64 histogram.
func BenchmarkIncrement_64(b *testing.B) { benchmarkAccumulate(b, 64) }

// BenchmarkProjectXY benchmarks projecting a filled 32³ histogram.
func BenchmarkProjectXY(b *testing.B) {
	h, err := hist3d.New(32, 32, 32, 0, 1, 0, 1, 0, 1)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 10000; i++ {
		_ = h.Increment(rng.Float64(), rng.Float64(), rng.Float64())
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if p := h.ProjectXY(); p.Nx() != 32 {
			b.Fatal("unexpected projection shape")
		}
	}
}

// BenchmarkPDFSample benchmarks inverse-CDF sampling from a 16³ histogram.
func BenchmarkPDFSample(b *testing.B) {
	h, err := hist3d.New(16, 16, 16, 0, 1, 0, 1, 0, 1)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 5000; i++ {
		_ = h.Increment(rng.Float64(), rng.Float64(), rng.Float64())
	}
	pdf, err := hist3d.NewPDF(h)
	if err != nil {
		b.Fatalf("NewPDF failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, _, err := pdf.Draw(rng); err != nil {
			b.Fatalf("Draw failed: %v", err)
		}
	}
}
