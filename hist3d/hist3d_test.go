package hist3d_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numkit/hist3d"
)

// newUnitCube is a helper building an n×n×n histogram over [0,1)³.
func newUnitCube(t *testing.T, n int) *hist3d.Hist3D {
	t.Helper()
	h, err := hist3d.New(n, n, n, 0, 1, 0, 1, 0, 1)
	require.NoError(t, err)

	return h
}

// TestNew_Validation covers the construction sentinels.
func TestNew_Validation(t *testing.T) {
	_, err := hist3d.New(0, 1, 1, 0, 1, 0, 1, 0, 1)
	assert.ErrorIs(t, err, hist3d.ErrBinCount, "zero bin count")

	_, err = hist3d.New(1, 1, 1, 1, 0, 0, 1, 0, 1)
	assert.ErrorIs(t, err, hist3d.ErrBadRange, "inverted x range")

	_, err = hist3d.New(1, 1, 1, 0, math.Inf(1), 0, 1, 0, 1)
	assert.ErrorIs(t, err, hist3d.ErrBadRange, "infinite bound")

	_, err = hist3d.NewRanges([]float64{0}, []float64{0, 1}, []float64{0, 1})
	assert.ErrorIs(t, err, hist3d.ErrBadRange, "single edge")

	_, err = hist3d.NewRanges([]float64{0, 1, 1}, []float64{0, 1}, []float64{0, 1})
	assert.ErrorIs(t, err, hist3d.ErrBadRange, "non-increasing edges")
}

// TestIncrement_FindGet routes samples into the right bins.
func TestIncrement_FindGet(t *testing.T) {
	h := newUnitCube(t, 2)

	require.NoError(t, h.Increment(0.25, 0.25, 0.75))
	require.NoError(t, h.Increment(0.25, 0.25, 0.75))
	require.NoError(t, h.Accumulate(0.75, 0.25, 0.25, 2.5))

	v, err := h.Get(0, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v, "two increments in (0,0,1)")

	v, err = h.Get(1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.5, v, "weighted accumulate in (1,0,0)")

	v, err = h.Get(1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v, "untouched bin stays zero")

	ix, iy, iz, err := h.Find(0.5, 0.5, 0.5)
	require.NoError(t, err)
	assert.Equal(t, [3]int{1, 1, 1}, [3]int{ix, iy, iz}, "edge value belongs to the upper bin")
}

// TestIncrement_OutOfRange rejects values at or beyond the upper edge.
func TestIncrement_OutOfRange(t *testing.T) {
	h := newUnitCube(t, 2)

	assert.ErrorIs(t, h.Increment(1.0, 0.5, 0.5), hist3d.ErrOutOfRange, "x at upper edge")
	assert.ErrorIs(t, h.Increment(-0.1, 0.5, 0.5), hist3d.ErrOutOfRange, "x below range")
	assert.ErrorIs(t, h.Increment(0.5, 0.5, math.NaN()), hist3d.ErrOutOfRange, "NaN z")
	assert.Equal(t, 0.0, h.Sum(), "failed samples leave the histogram untouched")
}

// TestRanges checks bin bounds and the index sentinels.
func TestRanges(t *testing.T) {
	h, err := hist3d.New(10, 5, 2, 0, 1, -1, 1, 0, 4)
	require.NoError(t, err)

	assert.Equal(t, 10, h.Nx())
	assert.Equal(t, 5, h.Ny())
	assert.Equal(t, 2, h.Nz())
	assert.Equal(t, 0.0, h.XMin())
	assert.Equal(t, 1.0, h.XMax())
	assert.Equal(t, -1.0, h.YMin())
	assert.Equal(t, 4.0, h.ZMax())

	lo, hi, err := h.XRange(3)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, lo, 1e-12)
	assert.InDelta(t, 0.4, hi, 1e-12)

	lo, hi, err = h.ZRange(1)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, lo, 1e-12)
	assert.InDelta(t, 4.0, hi, 1e-12)

	_, _, err = h.YRange(5)
	assert.ErrorIs(t, err, hist3d.ErrIndex)
	_, err = h.Get(-1, 0, 0)
	assert.ErrorIs(t, err, hist3d.ErrIndex)
}

// TestCustomRanges bins against non-uniform edges.
func TestCustomRanges(t *testing.T) {
	h, err := hist3d.NewRanges(
		[]float64{0, 1, 10, 100},
		[]float64{0, 0.5, 1},
		[]float64{-5, 0, 5},
	)
	require.NoError(t, err)

	require.NoError(t, h.Increment(50, 0.75, -2))
	ix, iy, iz, err := h.Find(50, 0.75, -2)
	require.NoError(t, err)
	assert.Equal(t, 2, ix, "50 lands in [10,100)")
	assert.Equal(t, 1, iy)
	assert.Equal(t, 0, iz)
}

// TestResetCloneEqual covers copy semantics.
func TestResetCloneEqual(t *testing.T) {
	h := newUnitCube(t, 3)
	require.NoError(t, h.Accumulate(0.1, 0.2, 0.3, 7))

	c := h.Clone()
	assert.True(t, h.Equal(c), "clone matches the original")

	require.NoError(t, c.Increment(0.9, 0.9, 0.9))
	assert.False(t, h.Equal(c), "mutating the clone diverges")

	h.Reset()
	assert.Equal(t, 0.0, h.Sum(), "reset zeroes contents")
	assert.Equal(t, 3, h.Nx(), "reset keeps the shape")
}

// TestArithmetic covers Scale, Shift and the bin-wise operations.
func TestArithmetic(t *testing.T) {
	a := newUnitCube(t, 2)
	b := newUnitCube(t, 2)
	require.NoError(t, a.Accumulate(0.25, 0.25, 0.25, 4))
	require.NoError(t, b.Accumulate(0.25, 0.25, 0.25, 2))

	require.NoError(t, a.Add(b))
	v, _ := a.Get(0, 0, 0)
	assert.Equal(t, 6.0, v)

	require.NoError(t, a.Sub(b))
	v, _ = a.Get(0, 0, 0)
	assert.Equal(t, 4.0, v)

	require.NoError(t, a.Mul(b))
	v, _ = a.Get(0, 0, 0)
	assert.Equal(t, 8.0, v)

	a.Scale(0.5)
	v, _ = a.Get(0, 0, 0)
	assert.Equal(t, 4.0, v)

	a.Shift(1)
	v, _ = a.Get(1, 1, 1)
	assert.Equal(t, 1.0, v, "shift reaches empty bins")

	require.NoError(t, a.Div(b))
	v, _ = a.Get(0, 0, 0)
	assert.Equal(t, 2.5, v, "5 / 2")

	other := newUnitCube(t, 3)
	assert.ErrorIs(t, a.Add(other), hist3d.ErrShapeMismatch, "bin counts differ")

	shifted, err := hist3d.New(2, 2, 2, 0, 2, 0, 1, 0, 1)
	require.NoError(t, err)
	assert.ErrorIs(t, a.Add(shifted), hist3d.ErrShapeMismatch, "edges differ")
}
