package poly

import (
	"math"
	"math/cmplx"
)

// Analytic solver for a·x² + b·x + c = 0.
//
// Contracts:
//   - Real roots are returned in ascending order.
//   - a == 0 degrades to the linear equation b·x + c = 0 (one root).
//   - A discriminant of exactly zero yields the double root twice.
//   - The stable ±sqrt formulation avoids cancellation for b² ≫ 4ac.

// SolveQuadratic returns the real roots of a·x² + b·x + c = 0.
// The slice holds 0, 1 or 2 roots in ascending order; a double root
// appears twice.
//
// Errors:
//   - ErrNonFinite  — any coefficient is NaN/±Inf.
//   - ErrDegenerate — a == b == 0 and c == 0 (every x solves it).
//   - ErrConstant   — a == b == 0 and c != 0 (no x solves it).
func SolveQuadratic(a, b, c float64) ([]float64, error) {
	if !isFinite(a) || !isFinite(b) || !isFinite(c) {
		return nil, ErrNonFinite
	}
	if a == 0 {
		if b == 0 {
			if c == 0 {
				return nil, ErrDegenerate
			}

			return nil, ErrConstant
		}

		return []float64{-c / b}, nil
	}

	disc := b*b - 4*a*c
	switch {
	case disc > 0:
		// q = −(b + sgn(b)·√disc)/2 keeps both divisions well conditioned.
		var q float64
		if b >= 0 {
			q = -0.5 * (b + math.Sqrt(disc))
		} else {
			q = -0.5 * (b - math.Sqrt(disc))
		}
		r1, r2 := q/a, c/q
		if r1 > r2 {
			r1, r2 = r2, r1
		}

		return []float64{r1, r2}, nil

	case disc == 0:
		x := -0.5 * b / a

		return []float64{x, x}, nil

	default:
		return nil, nil
	}
}

// SolveQuadraticComplex returns the complex roots of a·x² + b·x + c = 0,
// ordered by ascending real part, then ascending imaginary part. The slice
// holds 1 or 2 roots; like SolveQuadratic, a == 0 degrades to the linear
// equation, and the degenerate sentinels match the real solver.
func SolveQuadraticComplex(a, b, c float64) ([]complex128, error) {
	if !isFinite(a) || !isFinite(b) || !isFinite(c) {
		return nil, ErrNonFinite
	}
	if a == 0 {
		if b == 0 {
			if c == 0 {
				return nil, ErrDegenerate
			}

			return nil, ErrConstant
		}

		return []complex128{complex(-c/b, 0)}, nil
	}

	d := b*b - 4*a*c
	if d == 0 {
		x := complex(-0.5*b/a, 0)

		return []complex128{x, x}, nil
	}

	sq := cmplx.Sqrt(complex(d, 0))
	// Pick the sign that adds magnitudes instead of cancelling.
	if b >= 0 {
		sq = -sq
	}
	q := 0.5 * (complex(-b, 0) + sq)
	r0 := q / complex(a, 0)
	r1 := complex(c, 0) / q
	if lessComplex(r1, r0) {
		r0, r1 = r1, r0
	}

	return []complex128{r0, r1}, nil
}
