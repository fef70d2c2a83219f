// SPDX-License-Identifier: MIT

package minimize

// Nonlinear conjugate gradients with the Fletcher–Reeves or
// Polak–Ribière update.
//
// Iterate rule:
//  1. Line-minimize along the current direction d, move to the minimum.
//  2. Refresh the gradient and compute
//     β_FR = (g₁·g₁)/(g₀·g₀)        (Fletcher–Reeves)
//     β_PR = max(0, g₁·(g₁−g₀)/(g₀·g₀))  (Polak–Ribière, auto-restart)
//  3. d ← −g₁ + β·d; restart with d = −g whenever d stops being a
//     descent direction.
//
// Complexity per iteration: O(n) plus the line-search evaluations.

// cgState is the ConjugateFR / ConjugatePR engine.
type cgState struct {
	p     Problem
	fr    bool // Fletcher–Reeves β when true, Polak–Ribière otherwise
	cur   []float64
	grad  []float64
	prev  []float64 // gradient at the previous point
	dir   []float64
	trial []float64
	fcur  float64
	step  float64
	tol   float64
}

// newConjugate evaluates the start point and aims along −∇f.
func newConjugate(p Problem, x0 []float64, opts Options) (*cgState, error) {
	n := len(x0)
	c := &cgState{
		p:     p,
		fr:    opts.Algo == ConjugateFR,
		cur:   x0,
		grad:  make([]float64, n),
		prev:  make([]float64, n),
		dir:   make([]float64, n),
		trial: make([]float64, n),
		step:  opts.StepSize,
		tol:   opts.LineTol,
	}
	c.fcur = p.F(x0)
	if !isFinite(c.fcur) {
		return nil, ErrNonFinite
	}
	p.Grad(x0, c.grad)
	for i, g := range c.grad {
		c.dir[i] = -g
	}

	return c, nil
}

// iterate performs one line search and direction update.
func (c *cgState) iterate() error {
	if norm2(c.grad) == 0 {
		return ErrNoProgress
	}
	if dot(c.dir, c.grad) >= 0 {
		// Not a descent direction anymore; restart along −g.
		c.restart()
	}

	alpha, fmin, err := lineMinimize(c.p.F, c.cur, c.dir, c.trial, c.step, c.tol, c.fcur)
	if err != nil {
		return err
	}

	for i := range c.cur {
		c.cur[i] += alpha * c.dir[i]
	}
	c.fcur = fmin

	copy(c.prev, c.grad)
	c.p.Grad(c.cur, c.grad)

	gg := dot(c.prev, c.prev)
	if gg == 0 {
		return ErrNoProgress
	}

	var beta float64
	if c.fr {
		beta = dot(c.grad, c.grad) / gg
	} else {
		beta = (dot(c.grad, c.grad) - dot(c.grad, c.prev)) / gg
		if beta < 0 {
			beta = 0
		}
	}

	for i, g := range c.grad {
		c.dir[i] = -g + beta*c.dir[i]
	}
	// Reuse the accepted step as the next initial guess, floored to stay
	// adaptive after tiny steps.
	if alpha > minStepSize {
		c.step = alpha
	}

	return nil
}

// restart aims the search along the raw steepest-descent direction.
func (c *cgState) restart() {
	for i, g := range c.grad {
		c.dir[i] = -g
	}
}

func (c *cgState) x() []float64 { return c.cur }

func (c *cgState) value() float64 { return c.fcur }

func (c *cgState) gradient() []float64 { return c.grad }

func (c *cgState) size() float64 { return 0 }
