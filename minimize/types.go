// SPDX-License-Identifier: MIT

// Package minimize: shared types, options with documented defaults, and
// strict sentinel errors. Only errors declared here cross the public API.
package minimize

import (
	"errors"
	"math"
)

// Objective evaluates the target function at x.
type Objective func(x []float64) float64

// Gradient writes ∇f(x) into grad; len(grad) == len(x) is guaranteed by
// the callers in this package.
type Gradient func(x []float64, grad []float64)

// Problem bundles the objective with its (optional) gradient.
// Gradient-based algorithms require Grad; NelderMead ignores it.
type Problem struct {
	F    Objective
	Grad Gradient
}

// Algorithm selects the minimization method.
type Algorithm int

const (
	// NelderMead is the derivative-free downhill simplex method.
	NelderMead Algorithm = iota

	// SteepestDescent follows −∇f with an adaptive step length.
	SteepestDescent

	// ConjugateFR is conjugate gradients with the Fletcher–Reeves β.
	ConjugateFR

	// ConjugatePR is conjugate gradients with the Polak–Ribière β.
	ConjugatePR

	// VectorBFGS is the quasi-Newton method with a dense inverse-Hessian
	// approximation updated from gradient differences.
	VectorBFGS
)

// String implements fmt.Stringer for diagnostics and test names.
func (a Algorithm) String() string {
	switch a {
	case NelderMead:
		return "NelderMead"
	case SteepestDescent:
		return "SteepestDescent"
	case ConjugateFR:
		return "ConjugateFR"
	case ConjugatePR:
		return "ConjugatePR"
	case VectorBFGS:
		return "VectorBFGS"
	default:
		return "Unknown"
	}
}

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultStepSize is the initial trial step (and simplex edge length).
	DefaultStepSize = 1.0

	// DefaultLineTol is the relative accuracy of the directional line search.
	DefaultLineTol = 1e-4

	// DefaultGradTol stops gradient methods once ‖∇f‖₂ falls below it.
	DefaultGradTol = 1e-6

	// DefaultSizeTol stops NelderMead once the simplex size falls below it.
	DefaultSizeTol = 1e-8

	// DefaultMaxIterations bounds the outer iteration loop.
	DefaultMaxIterations = 2000

	// minStepSize is the smallest adaptive step before declaring no progress.
	minStepSize = 1e-15
)

// Options configures a minimization run. The zero value is NOT valid;
// start from DefaultOptions.
type Options struct {
	// Algo selects the minimizer.
	Algo Algorithm

	// StepSize is the initial step length; for NelderMead it is the edge
	// length of the initial simplex. Must be positive and finite.
	StepSize float64

	// LineTol is the relative tolerance of the line search used by the
	// conjugate-gradient and BFGS methods. Must be in (0, 1).
	LineTol float64

	// GradTol is the gradient-norm convergence threshold. Must be positive.
	GradTol float64

	// SizeTol is the simplex-size convergence threshold. Must be positive.
	SizeTol float64

	// MaxIterations bounds the outer loop. Must be positive.
	MaxIterations int
}

// DefaultOptions returns the documented defaults with NelderMead selected.
func DefaultOptions() Options {
	return Options{
		Algo:          NelderMead,
		StepSize:      DefaultStepSize,
		LineTol:       DefaultLineTol,
		GradTol:       DefaultGradTol,
		SizeTol:       DefaultSizeTol,
		MaxIterations: DefaultMaxIterations,
	}
}

// Result is the outcome of a minimization run.
type Result struct {
	// X is the best point found.
	X []float64

	// F is the objective value at X.
	F float64

	// Gradient is ∇f(X) for gradient-based algorithms, nil for NelderMead.
	Gradient []float64

	// Size is the final simplex size for NelderMead, 0 otherwise.
	Size float64

	// Iterations is the number of outer iterations performed.
	Iterations int

	// Converged reports whether the algorithm met its convergence test
	// before exhausting MaxIterations.
	Converged bool
}

var (
	// ErrNilFunction indicates a Problem without an objective.
	ErrNilFunction = errors.New("minimize: objective function must be non-nil")

	// ErrMissingGradient indicates a gradient-based algorithm without Grad.
	ErrMissingGradient = errors.New("minimize: gradient-based algorithms require Problem.Grad")

	// ErrEmptyStart indicates an empty starting point.
	ErrEmptyStart = errors.New("minimize: starting point must be non-empty")

	// ErrBadOptions indicates non-positive or non-finite option values.
	ErrBadOptions = errors.New("minimize: options must be positive and finite")

	// ErrUnsupportedAlgorithm indicates an Algorithm outside the known set.
	ErrUnsupportedAlgorithm = errors.New("minimize: unknown algorithm")

	// ErrNonFinite indicates the objective or gradient produced NaN/±Inf.
	ErrNonFinite = errors.New("minimize: objective produced NaN or ±Inf")

	// ErrNoProgress indicates that no downhill step could be found at the
	// smallest permitted step size (the iterate is a numerical minimum).
	ErrNoProgress = errors.New("minimize: no downhill progress possible")

	// ErrMaxIterations indicates an exhausted iteration budget; the
	// accompanying Result still holds the best point found.
	ErrMaxIterations = errors.New("minimize: iteration budget exhausted before convergence")
)

// TestGradient reports whether ‖grad‖₂ < tol, the stopping rule of the
// gradient-based minimizers.
func TestGradient(grad []float64, tol float64) bool {
	return norm2(grad) < tol
}

// TestSize reports whether a simplex size has dropped below tol, the
// stopping rule of NelderMead.
func TestSize(size, tol float64) bool {
	return size < tol
}

// norm2 returns the Euclidean norm of v.
func norm2(v []float64) float64 {
	var s float64
	for _, vi := range v {
		s += vi * vi
	}

	return math.Sqrt(s)
}

// dot returns the inner product of a and b.
func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
