// SPDX-License-Identifier: MIT

// Package minimize - unified dispatcher and stepwise driver.
//
// This file provides the canonical entry points:
//
//   - Minimize: validate inputs, route to the selected algorithm, run the
//     outer loop with the matching convergence test, and return a Result.
//   - New / (*Minimizer).Iterate: the stepwise API for callers that own
//     their own loop (custom stopping rules, logging, budgets).
//
// Design principles:
//   - Deterministic: no randomness anywhere in the package.
//   - Strict sentinels: only errors from types.go; no fmt.Errorf where a
//     sentinel suffices.
//   - Hot-path discipline: state is allocated once in New; Iterate reuses
//     scratch buffers.
package minimize

import "errors"

// stepper is the per-algorithm engine behind a Minimizer.
// Implementations keep their own state and report the current iterate.
type stepper interface {
	// iterate advances by one step; it may return ErrNoProgress or
	// ErrNonFinite.
	iterate() error

	// x returns the current best point (not a copy).
	x() []float64

	// value returns the objective at the current best point.
	value() float64

	// gradient returns ∇f at the current point, nil for simplex methods.
	gradient() []float64

	// size returns the simplex size, 0 for gradient methods.
	size() float64
}

// Minimizer drives one algorithm stepwise. Create with New, advance with
// Iterate, inspect with the accessors.
type Minimizer struct {
	eng  stepper
	opts Options
	iter int
}

// New validates the problem and options and prepares a Minimizer
// positioned at x0. x0 is copied; the caller may reuse it.
//
// Errors: ErrNilFunction, ErrMissingGradient, ErrEmptyStart,
// ErrBadOptions, ErrUnsupportedAlgorithm, ErrNonFinite (objective not
// finite at x0).
func New(p Problem, x0 []float64, opts Options) (*Minimizer, error) {
	if err := validateAll(p, x0, opts); err != nil {
		return nil, err
	}

	start := make([]float64, len(x0))
	copy(start, x0)

	var (
		eng stepper
		err error
	)
	switch opts.Algo {
	case NelderMead:
		eng, err = newSimplex(p, start, opts)
	case SteepestDescent:
		eng, err = newDescent(p, start, opts)
	case ConjugateFR, ConjugatePR:
		eng, err = newConjugate(p, start, opts)
	case VectorBFGS:
		eng, err = newBFGS(p, start, opts)
	default:
		return nil, ErrUnsupportedAlgorithm
	}
	if err != nil {
		return nil, err
	}

	return &Minimizer{eng: eng, opts: opts}, nil
}

// Iterate advances the minimizer by one outer step.
func (m *Minimizer) Iterate() error {
	err := m.eng.iterate()
	if err == nil {
		m.iter++
	}

	return err
}

// X returns a copy of the current best point.
func (m *Minimizer) X() []float64 {
	out := make([]float64, len(m.eng.x()))
	copy(out, m.eng.x())

	return out
}

// F returns the objective value at the current best point.
func (m *Minimizer) F() float64 { return m.eng.value() }

// Gradient returns a copy of ∇f at the current point, or nil for
// NelderMead.
func (m *Minimizer) Gradient() []float64 {
	g := m.eng.gradient()
	if g == nil {
		return nil
	}
	out := make([]float64, len(g))
	copy(out, g)

	return out
}

// Size returns the current simplex size (0 for gradient methods).
func (m *Minimizer) Size() float64 { return m.eng.size() }

// Iterations returns the number of successful Iterate calls so far.
func (m *Minimizer) Iterations() int { return m.iter }

// Converged applies the algorithm's convergence test at the current state.
func (m *Minimizer) Converged() bool {
	if m.opts.Algo == NelderMead {
		return TestSize(m.eng.size(), m.opts.SizeTol)
	}

	return TestGradient(m.eng.gradient(), m.opts.GradTol)
}

// Minimize runs the selected algorithm from x0 until convergence,
// no-progress stagnation, or the iteration budget.
//
// Contracts:
//   - p.F must be non-nil; gradient algorithms also need p.Grad.
//   - x0 must be non-empty with finite entries.
//   - opts should come from DefaultOptions with fields overridden.
//
// Returns the best point found. On ErrMaxIterations the Result is still
// populated (Converged=false). ErrNoProgress is absorbed when the
// convergence test already holds at the stagnation point.
//
// Complexity: MaxIterations × per-iteration cost of the algorithm.
func Minimize(p Problem, x0 []float64, opts Options) (Result, error) {
	m, err := New(p, x0, opts)
	if err != nil {
		return Result{}, err
	}

	for i := 0; i < opts.MaxIterations; i++ {
		if err = m.Iterate(); err != nil {
			if errors.Is(err, ErrNoProgress) {
				// Stagnation at a numerical minimum still counts as
				// success when the convergence test agrees.
				res := m.result()
				if res.Converged {
					return res, nil
				}

				return res, ErrNoProgress
			}

			return m.result(), err
		}
		if m.Converged() {
			return m.result(), nil
		}
	}

	return m.result(), ErrMaxIterations
}

// result snapshots the current state into a Result.
func (m *Minimizer) result() Result {
	return Result{
		X:          m.X(),
		F:          m.F(),
		Gradient:   m.Gradient(),
		Size:       m.Size(),
		Iterations: m.iter,
		Converged:  m.Converged(),
	}
}

// validateAll enforces the Minimize contracts with strict sentinels.
func validateAll(p Problem, x0 []float64, opts Options) error {
	if p.F == nil {
		return ErrNilFunction
	}
	if len(x0) == 0 {
		return ErrEmptyStart
	}
	for _, v := range x0 {
		if !isFinite(v) {
			return ErrBadOptions
		}
	}

	switch opts.Algo {
	case NelderMead:
		// Gradient not required.
	case SteepestDescent, ConjugateFR, ConjugatePR, VectorBFGS:
		if p.Grad == nil {
			return ErrMissingGradient
		}
	default:
		return ErrUnsupportedAlgorithm
	}

	if !(opts.StepSize > 0) || !isFinite(opts.StepSize) {
		return ErrBadOptions
	}
	if !(opts.LineTol > 0 && opts.LineTol < 1) {
		return ErrBadOptions
	}
	if !(opts.GradTol > 0) || !(opts.SizeTol > 0) {
		return ErrBadOptions
	}
	if opts.MaxIterations <= 0 {
		return ErrBadOptions
	}

	return nil
}
