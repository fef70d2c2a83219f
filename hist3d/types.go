// Package hist3d: histogram types and strict sentinel errors.
package hist3d

import (
	"errors"
	"math"
)

var (
	// ErrBinCount indicates a non-positive bin count.
	ErrBinCount = errors.New("hist3d: bin counts must be positive")

	// ErrBadRange indicates edges that are not finite and strictly increasing,
	// or fewer than two edges per axis.
	ErrBadRange = errors.New("hist3d: ranges must be finite and strictly increasing")

	// ErrOutOfRange indicates a value outside [min, max) on some axis.
	ErrOutOfRange = errors.New("hist3d: value outside histogram range")

	// ErrIndex indicates a bin index outside the histogram shape.
	ErrIndex = errors.New("hist3d: bin index out of bounds")

	// ErrShapeMismatch indicates arithmetic between histograms whose bin
	// counts or edges differ.
	ErrShapeMismatch = errors.New("hist3d: histograms must share bin counts and ranges")

	// ErrNegativeBins indicates a PDF built over negative bin contents.
	ErrNegativeBins = errors.New("hist3d: probability distribution requires non-negative bins")

	// ErrEmptyContents indicates a PDF built over an all-zero histogram.
	ErrEmptyContents = errors.New("hist3d: cannot sample an empty histogram")

	// ErrBadUniform indicates a Sample argument outside [0, 1).
	ErrBadUniform = errors.New("hist3d: uniform variates must lie in [0, 1)")
)

// Hist3D is a three-dimensional histogram. Bin (i, j, k) covers the
// half-open cuboid [xr[i], xr[i+1]) × [yr[j], yr[j+1]) × [zr[k], zr[k+1])
// and bins are stored x-major: (i·ny + j)·nz + k.
type Hist3D struct {
	xr, yr, zr []float64 // bin edges, len = n+1 per axis
	bins       []float64 // nx·ny·nz weights
}

// Hist2D is the projection target: a two-dimensional histogram with the
// same edge conventions as Hist3D, stored row-major (i·ny + j).
type Hist2D struct {
	xr, yr []float64
	bins   []float64
}

// validEdges reports whether edges form a finite, strictly increasing
// sequence of at least two values.
func validEdges(edges []float64) bool {
	if len(edges) < 2 {
		return false
	}
	for i, e := range edges {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return false
		}
		if i > 0 && e <= edges[i-1] {
			return false
		}
	}

	return true
}

// findBin locates i with edges[i] <= v < edges[i+1] by binary search.
// The boolean is false when v lies outside [edges[0], edges[last]).
func findBin(edges []float64, v float64) (int, bool) {
	if math.IsNaN(v) || v < edges[0] || v >= edges[len(edges)-1] {
		return 0, false
	}
	lo, hi := 0, len(edges)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if v < edges[mid] {
			hi = mid
		} else {
			lo = mid
		}
	}

	return lo, true
}

// sameEdges reports exact equality of two edge arrays.
func sameEdges(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
