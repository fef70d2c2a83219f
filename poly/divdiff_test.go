package poly_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numkit/poly"
)

// TestDividedDiff_Interpolates verifies the Newton form reproduces every node.
func TestDividedDiff_Interpolates(t *testing.T) {
	xa := []float64{-2, -1, 0, 1, 2}
	ya := make([]float64, len(xa))
	for i, x := range xa {
		ya[i] = cubic123.Eval(x)
	}

	d, err := poly.NewDividedDiff(xa, ya)
	require.NoError(t, err)

	for i, x := range xa {
		assert.InDelta(t, ya[i], d.Eval(x), 1e-12, "node %d must be reproduced", i)
	}
	// Degree-3 data through 5 nodes still interpolates exactly off-node.
	assert.InDelta(t, cubic123.Eval(0.5), d.Eval(0.5), 1e-12)
}

// TestDividedDiff_Taylor verifies re-expansion about a shifted origin.
func TestDividedDiff_Taylor(t *testing.T) {
	xa := []float64{0, 1, 2, 3}
	ya := make([]float64, len(xa))
	for i, x := range xa {
		ya[i] = cubic123.Eval(x)
	}

	d, err := poly.NewDividedDiff(xa, ya)
	require.NoError(t, err)

	// Expansion about 0 must recover the original coefficients.
	c := d.Taylor(0)
	require.Len(t, c, 4)
	for i := range c {
		assert.InDelta(t, cubic123[i], c[i], 1e-12, "coefficient %d", i)
	}

	// Expansion about 2: evaluate both sides at a probe point.
	c2 := d.Taylor(2)
	probe := 2.75
	assert.InDelta(t, cubic123.Eval(probe), c2.Eval(probe-2), 1e-12)
}

// TestDividedDiff_Errors verifies the input sentinels.
func TestDividedDiff_Errors(t *testing.T) {
	_, err := poly.NewDividedDiff(nil, nil)
	assert.ErrorIs(t, err, poly.ErrDimensionMismatch, "empty input")

	_, err = poly.NewDividedDiff([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, poly.ErrDimensionMismatch, "length mismatch")

	_, err = poly.NewDividedDiff([]float64{1, 1}, []float64{0, 0})
	assert.ErrorIs(t, err, poly.ErrDuplicateNodes, "coincident nodes")
}
