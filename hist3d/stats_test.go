package hist3d_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStats_SingleBin puts all weight in one bin: means sit at the bin
// midpoints and every spread vanishes.
func TestStats_SingleBin(t *testing.T) {
	h := newUnitCube(t, 2)
	require.NoError(t, h.Accumulate(0.75, 0.25, 0.75, 5))

	assert.Equal(t, 5.0, h.Sum())
	assert.InDelta(t, 0.75, h.XMean(), 1e-12)
	assert.InDelta(t, 0.25, h.YMean(), 1e-12)
	assert.InDelta(t, 0.75, h.ZMean(), 1e-12)
	assert.InDelta(t, 0, h.XSigma(), 1e-12)
	assert.InDelta(t, 0, h.YSigma(), 1e-12)
	assert.InDelta(t, 0, h.CovXY(), 1e-12)
}

// TestStats_SymmetricPair splits weight across two x bins: the mean lands
// midway and the deviation equals the midpoint half-distance.
func TestStats_SymmetricPair(t *testing.T) {
	h := newUnitCube(t, 2)
	require.NoError(t, h.Accumulate(0.25, 0.25, 0.25, 1))
	require.NoError(t, h.Accumulate(0.75, 0.25, 0.25, 1))

	assert.InDelta(t, 0.5, h.XMean(), 1e-12)
	assert.InDelta(t, 0.25, h.XSigma(), 1e-12, "midpoints 0.25 and 0.75")
	assert.InDelta(t, 0.25, h.YMean(), 1e-12)
	assert.InDelta(t, 0, h.YSigma(), 1e-12)
	assert.InDelta(t, 0, h.CovXY(), 1e-12, "y does not vary")
}

// TestStats_Covariance builds a perfectly correlated diagonal: weight on
// (low,low) and (high,high) x/y bins.
func TestStats_Covariance(t *testing.T) {
	h := newUnitCube(t, 2)
	require.NoError(t, h.Accumulate(0.25, 0.25, 0.25, 1))
	require.NoError(t, h.Accumulate(0.75, 0.75, 0.25, 1))

	// E[xy] − E[x]E[y] = ½(0.25² + 0.75²) − 0.25 = 0.0625.
	assert.InDelta(t, 0.0625, h.CovXY(), 1e-12)
	assert.InDelta(t, 0, h.CovXZ(), 1e-12, "z is constant")
	assert.InDelta(t, 0, h.CovYZ(), 1e-12)
}

// TestStats_Extrema locates the largest and smallest bins in scan order.
func TestStats_Extrema(t *testing.T) {
	h := newUnitCube(t, 2)
	require.NoError(t, h.Accumulate(0.75, 0.25, 0.75, 9))
	require.NoError(t, h.Accumulate(0.25, 0.75, 0.25, -3))

	assert.Equal(t, 9.0, h.MaxVal())
	ix, iy, iz := h.MaxBin()
	assert.Equal(t, [3]int{1, 0, 1}, [3]int{ix, iy, iz})

	assert.Equal(t, -3.0, h.MinVal())
	ix, iy, iz = h.MinBin()
	assert.Equal(t, [3]int{0, 1, 0}, [3]int{ix, iy, iz})
}

// TestStats_Empty keeps the moments defined on an empty histogram.
func TestStats_Empty(t *testing.T) {
	h := newUnitCube(t, 4)

	assert.Equal(t, 0.0, h.Sum())
	assert.Equal(t, 0.0, h.XMean())
	assert.Equal(t, 0.0, h.XSigma())
	assert.Equal(t, 0.0, h.CovXY())
}
