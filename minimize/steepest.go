// SPDX-License-Identifier: MIT

package minimize

// Steepest descent with an adaptive step length.
//
// Iterate rule:
//  1. Take a trial step x₁ = x − step·g/‖g‖.
//  2. If f(x₁) < f(x): accept, refresh the gradient, and double the step.
//  3. Otherwise halve the step and retry next iteration.
//  4. When the step underflows minStepSize the iterate is a numerical
//     minimum and the engine reports ErrNoProgress.
//
// Complexity per iteration: O(n) plus one objective and one gradient call.

// descentState is the SteepestDescent engine.
type descentState struct {
	p     Problem
	cur   []float64 // current point
	grad  []float64 // ∇f(cur)
	trial []float64 // scratch
	fcur  float64
	step  float64
}

// newDescent evaluates f and ∇f at the start point.
func newDescent(p Problem, x0 []float64, opts Options) (*descentState, error) {
	d := &descentState{
		p:     p,
		cur:   x0,
		grad:  make([]float64, len(x0)),
		trial: make([]float64, len(x0)),
		step:  opts.StepSize,
	}
	d.fcur = p.F(x0)
	if !isFinite(d.fcur) {
		return nil, ErrNonFinite
	}
	p.Grad(x0, d.grad)

	return d, nil
}

// iterate takes one adaptive downhill step.
func (d *descentState) iterate() error {
	gnorm := norm2(d.grad)
	if gnorm == 0 {
		return ErrNoProgress
	}
	if d.step < minStepSize {
		return ErrNoProgress
	}

	scale := d.step / gnorm
	for i, xi := range d.cur {
		d.trial[i] = xi - scale*d.grad[i]
	}
	ftrial := d.p.F(d.trial)
	if !isFinite(ftrial) {
		return ErrNonFinite
	}

	if ftrial < d.fcur {
		copy(d.cur, d.trial)
		d.fcur = ftrial
		d.p.Grad(d.cur, d.grad)
		d.step *= 2

		return nil
	}

	d.step *= 0.5

	return nil
}

func (d *descentState) x() []float64 { return d.cur }

func (d *descentState) value() float64 { return d.fcur }

func (d *descentState) gradient() []float64 { return d.grad }

func (d *descentState) size() float64 { return 0 }
