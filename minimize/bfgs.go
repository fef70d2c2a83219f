// SPDX-License-Identifier: MIT

package minimize

// Vector BFGS: quasi-Newton minimization with a dense inverse-Hessian
// approximation H, updated from successive gradient differences.
//
// Iterate rule:
//  1. d = −H·g; line-minimize along d.
//  2. s = x₁ − x₀, y = g₁ − g₀, ρ = 1/(y·s).
//  3. H ← (I − ρ·s·yᵀ)·H·(I − ρ·y·sᵀ) + ρ·s·sᵀ  when y·s is safely
//     positive; otherwise H resets to the identity (curvature lost).
//
// H is stored row-major in a flat slice, the same dense layout used by
// the polynomial companion solver.
//
// Complexity per iteration: O(n²) plus the line-search evaluations.

// bfgsState is the VectorBFGS engine.
type bfgsState struct {
	p     Problem
	cur   []float64
	grad  []float64
	prev  []float64
	dir   []float64
	s     []float64 // last accepted step
	y     []float64 // last gradient difference
	hy    []float64 // scratch: H·y
	h     []float64 // inverse-Hessian approximation, n×n row-major
	trial []float64
	fcur  float64
	step  float64
	tol   float64
}

// curvatureFloor guards the ρ = 1/(y·s) division.
const curvatureFloor = 1e-12

// newBFGS starts from the identity Hessian model.
func newBFGS(p Problem, x0 []float64, opts Options) (*bfgsState, error) {
	n := len(x0)
	b := &bfgsState{
		p:     p,
		cur:   x0,
		grad:  make([]float64, n),
		prev:  make([]float64, n),
		dir:   make([]float64, n),
		s:     make([]float64, n),
		y:     make([]float64, n),
		hy:    make([]float64, n),
		h:     make([]float64, n*n),
		trial: make([]float64, n),
		step:  opts.StepSize,
		tol:   opts.LineTol,
	}
	b.fcur = p.F(x0)
	if !isFinite(b.fcur) {
		return nil, ErrNonFinite
	}
	p.Grad(x0, b.grad)
	b.resetModel()

	return b, nil
}

// resetModel restores H to the identity.
func (b *bfgsState) resetModel() {
	n := len(b.cur)
	for i := range b.h {
		b.h[i] = 0
	}
	for i := 0; i < n; i++ {
		b.h[i*n+i] = 1
	}
}

// iterate performs one quasi-Newton step.
func (b *bfgsState) iterate() error {
	n := len(b.cur)
	if norm2(b.grad) == 0 {
		return ErrNoProgress
	}

	// d = −H·g.
	for i := 0; i < n; i++ {
		var acc float64
		row := b.h[i*n : (i+1)*n]
		for j, g := range b.grad {
			acc += row[j] * g
		}
		b.dir[i] = -acc
	}
	if dot(b.dir, b.grad) >= 0 {
		// The model lost positive definiteness; fall back to −g.
		b.resetModel()
		for i, g := range b.grad {
			b.dir[i] = -g
		}
	}

	alpha, fmin, err := lineMinimize(b.p.F, b.cur, b.dir, b.trial, b.step, b.tol, b.fcur)
	if err != nil {
		return err
	}

	for i := range b.cur {
		b.s[i] = alpha * b.dir[i]
		b.cur[i] += b.s[i]
	}
	b.fcur = fmin

	copy(b.prev, b.grad)
	b.p.Grad(b.cur, b.grad)
	for i := range b.y {
		b.y[i] = b.grad[i] - b.prev[i]
	}

	ys := dot(b.y, b.s)
	if ys <= curvatureFloor {
		b.resetModel()

		return nil
	}
	b.updateModel(ys)

	if alpha > minStepSize {
		b.step = alpha
	}

	return nil
}

// updateModel applies the BFGS inverse update in O(n²):
//
//	H ← H − ρ(s·(Hy)ᵀ + (Hy)·sᵀ) + ρ²(y·Hy)·s·sᵀ + ρ·s·sᵀ
//
// which is the expanded form of (I−ρsyᵀ)H(I−ρysᵀ) + ρssᵀ.
func (b *bfgsState) updateModel(ys float64) {
	n := len(b.cur)
	rho := 1 / ys

	// hy = H·y (H is symmetric by construction).
	for i := 0; i < n; i++ {
		var acc float64
		row := b.h[i*n : (i+1)*n]
		for j, yj := range b.y {
			acc += row[j] * yj
		}
		b.hy[i] = acc
	}
	yhy := dot(b.y, b.hy)

	c1 := rho*rho*yhy + rho
	for i := 0; i < n; i++ {
		si := b.s[i]
		hyi := b.hy[i]
		row := b.h[i*n : (i+1)*n]
		for j := 0; j < n; j++ {
			row[j] += c1*si*b.s[j] - rho*(si*b.hy[j]+hyi*b.s[j])
		}
	}
}

func (b *bfgsState) x() []float64 { return b.cur }

func (b *bfgsState) value() float64 { return b.fcur }

func (b *bfgsState) gradient() []float64 { return b.grad }

func (b *bfgsState) size() float64 { return 0 }
