package poly

// Newton divided differences: interpolate a set of (x, y) nodes, evaluate
// the Newton form, and re-expand it as an ordinary polynomial about a point.
//
// Representation:
//
//	f(x) = dd[0] + (x−xa[0])·(dd[1] + (x−xa[1])·(dd[2] + …))
//
// Complexity: NewDividedDiff O(n²); Eval O(n); Taylor O(n²).

// DividedDiff holds the Newton divided-difference representation of the
// interpolating polynomial through a node set.
type DividedDiff struct {
	dd []float64 // dd[k] = f[xa[0], …, xa[k]]
	xa []float64 // interpolation nodes, original order
}

// NewDividedDiff computes the divided-difference coefficients for the
// points (xa[i], ya[i]).
//
// Errors:
//   - ErrDimensionMismatch — len(xa) != len(ya) or both empty.
//   - ErrNonFinite         — any node or value is NaN/±Inf.
//   - ErrDuplicateNodes    — two nodes coincide (within Epsilon).
func NewDividedDiff(xa, ya []float64) (*DividedDiff, error) {
	n := len(xa)
	if n == 0 || n != len(ya) {
		return nil, ErrDimensionMismatch
	}
	for i := 0; i < n; i++ {
		if !isFinite(xa[i]) || !isFinite(ya[i]) {
			return nil, ErrNonFinite
		}
	}

	dd := make([]float64, n)
	copy(dd, ya)
	// Column-wise update: after pass k, dd[i] holds f[xa[i−k], …, xa[i]].
	var denom float64
	for k := 1; k < n; k++ {
		for i := n - 1; i >= k; i-- {
			denom = xa[i] - xa[i-k]
			if abs(denom) <= Epsilon {
				return nil, ErrDuplicateNodes
			}
			dd[i] = (dd[i] - dd[i-1]) / denom
		}
	}

	nodes := make([]float64, n)
	copy(nodes, xa)

	return &DividedDiff{dd: dd, xa: nodes}, nil
}

// Eval evaluates the Newton form at x by backward Horner.
func (d *DividedDiff) Eval(x float64) float64 {
	n := len(d.dd)
	acc := d.dd[n-1]
	for i := n - 2; i >= 0; i-- {
		acc = acc*(x-d.xa[i]) + d.dd[i]
	}

	return acc
}

// Taylor expands the interpolating polynomial about xp and returns ordinary
// coefficients c, so that f(x) = Σ c[i]·(x−xp)^i.
//
// The Newton form is unwound symbolically: each step multiplies the running
// coefficient vector by (t + (xp − xa[k])) with t = x − xp, then adds dd[k].
func (d *DividedDiff) Taylor(xp float64) Polynomial {
	n := len(d.dd)
	c := make(Polynomial, 1, n)
	c[0] = d.dd[n-1]
	for k := n - 2; k >= 0; k-- {
		shift := xp - d.xa[k]
		next := make(Polynomial, len(c)+1)
		for i, ci := range c {
			next[i+1] += ci
			next[i] += ci * shift
		}
		next[0] += d.dd[k]
		c = next
	}

	return c
}

// abs returns the absolute value of a float64.
func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
