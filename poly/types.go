// Package poly defines the polynomial representation, numeric policy and
// sentinel errors shared by the evaluators and solvers.
package poly

import (
	"errors"
	"math"
)

// Numeric policy.
const (
	// Epsilon is the non-negative tolerance used when classifying
	// discriminants and comparing near-equal roots.
	Epsilon = 1e-9

	// maxQRIterations bounds the QR sweeps spent on a single eigenvalue
	// before the general solver gives up.
	maxQRIterations = 60
)

var (
	// ErrEmpty indicates a polynomial with no coefficients.
	ErrEmpty = errors.New("poly: polynomial must have at least one coefficient")

	// ErrNonFinite indicates NaN or ±Inf among coefficients or arguments.
	ErrNonFinite = errors.New("poly: coefficients and arguments must be finite")

	// ErrConstant indicates a root query on a constant (degree-0) polynomial.
	ErrConstant = errors.New("poly: constant polynomial has no roots")

	// ErrDegenerate indicates an identically-zero equation: every x is a
	// solution, so no finite root set exists.
	ErrDegenerate = errors.New("poly: degenerate equation (all coefficients zero)")

	// ErrDimensionMismatch indicates xa and ya slices of unequal or zero length.
	ErrDimensionMismatch = errors.New("poly: xa and ya must have equal non-zero length")

	// ErrDuplicateNodes indicates repeated x values in a divided-difference fit.
	ErrDuplicateNodes = errors.New("poly: divided differences require distinct x nodes")

	// ErrNoConvergence indicates that the QR iteration failed to isolate
	// every eigenvalue of the companion matrix within the iteration budget.
	ErrNoConvergence = errors.New("poly: root iteration failed to converge")
)

// Polynomial holds coefficients in ascending order: c[i] is the
// coefficient of x^i. The zero-length slice is invalid everywhere.
type Polynomial []float64

// Degree returns the degree after ignoring trailing zero coefficients.
// A constant (or all-zero) polynomial has degree 0.
func (p Polynomial) Degree() int {
	for i := len(p) - 1; i > 0; i-- {
		if p[i] != 0 {
			return i
		}
	}

	return 0
}

// validate rejects empty polynomials and non-finite coefficients.
func (p Polynomial) validate() error {
	if len(p) == 0 {
		return ErrEmpty
	}
	for _, c := range p {
		if !isFinite(c) {
			return ErrNonFinite
		}
	}

	return nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
