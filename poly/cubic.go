package poly

import (
	"math"
	"math/cmplx"
)

// Analytic solver for the monic cubic x³ + a·x² + b·x + c = 0.
//
// Classification uses the resolvent quantities
//
//	Q = (a² − 3b)/9,  R = (2a³ − 9ab + 27c)/54
//
// compared through their scaled forms 729·r² and 2916·q³ (with q = a²−3b,
// r = 2a³−9ab+27c) so that the triple/double-root boundary is detected
// exactly for integer inputs.
//
// Contracts:
//   - Real roots are returned in ascending order, multiplicity preserved.
//   - R² < Q³  → three distinct real roots (trigonometric form).
//   - R² == Q³ → repeated roots (triple, or double + simple).
//   - R² > Q³  → one real root (Cardano with stable cube root).

// SolveCubic returns the real roots of x³ + a·x² + b·x + c = 0, in
// ascending order. The slice holds 1 or 3 roots; repeated roots appear
// with their multiplicity.
func SolveCubic(a, b, c float64) ([]float64, error) {
	if !isFinite(a) || !isFinite(b) || !isFinite(c) {
		return nil, ErrNonFinite
	}

	q := a*a - 3*b
	r := 2*a*a*a - 9*a*b + 27*c

	// Scaled forms keep the boundary comparison exact for integer inputs.
	cr2 := 729 * r * r
	cq3 := 2916 * q * q * q

	qq := q / 9
	rr := r / 54

	switch {
	case r == 0 && q == 0:
		x := -a / 3

		return []float64{x, x, x}, nil

	case cr2 == cq3:
		// A double root and a simple root (exact boundary).
		sqrtQ := math.Sqrt(qq)
		if r > 0 {
			return sortedAsc(-2*sqrtQ-a/3, sqrtQ-a/3, sqrtQ-a/3), nil
		}

		return sortedAsc(-sqrtQ-a/3, -sqrtQ-a/3, 2*sqrtQ-a/3), nil

	case rr*rr < qq*qq*qq:
		// Three distinct real roots: trigonometric method.
		sqrtQ := math.Sqrt(qq)
		theta := math.Acos(rr / (sqrtQ * sqrtQ * sqrtQ))
		norm := -2 * sqrtQ
		x0 := norm*math.Cos(theta/3) - a/3
		x1 := norm*math.Cos((theta+2*math.Pi)/3) - a/3
		x2 := norm*math.Cos((theta-2*math.Pi)/3) - a/3

		return sortedAsc(x0, x1, x2), nil

	default:
		// One real root: Cardano with sign-stable cube root.
		sgn := 1.0
		if rr < 0 {
			sgn = -1.0
		}
		aa := -sgn * math.Cbrt(abs(rr)+math.Sqrt(rr*rr-qq*qq*qq))
		var bb float64
		if aa != 0 {
			bb = qq / aa
		}

		return []float64{aa + bb - a/3}, nil
	}
}

// SolveCubicComplex returns all three complex roots of
// x³ + a·x² + b·x + c = 0, ordered by ascending real part, then
// ascending imaginary part.
func SolveCubicComplex(a, b, c float64) ([3]complex128, error) {
	var roots [3]complex128
	if !isFinite(a) || !isFinite(b) || !isFinite(c) {
		return roots, ErrNonFinite
	}

	real3, err := SolveCubic(a, b, c)
	if err != nil {
		return roots, err
	}
	if len(real3) == 3 {
		for i, x := range real3 {
			roots[i] = complex(x, 0)
		}

		return roots, nil
	}

	// One real root x0; deflate to a quadratic x² + px + q and solve it.
	x0 := real3[0]
	p := a + x0
	qc := b + x0*p
	d := p*p - 4*qc
	sq := cmplx.Sqrt(complex(d, 0))
	roots[0] = complex(x0, 0)
	roots[1] = 0.5 * (complex(-p, 0) - sq)
	roots[2] = 0.5 * (complex(-p, 0) + sq)
	sortComplex(roots[:])

	return roots, nil
}

// sortedAsc returns the three values as an ascending slice.
func sortedAsc(x0, x1, x2 float64) []float64 {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}

	return []float64{x0, x1, x2}
}

// sortComplex orders roots by ascending real part, then imaginary part.
func sortComplex(zs []complex128) {
	for i := 1; i < len(zs); i++ {
		for j := i; j > 0 && lessComplex(zs[j], zs[j-1]); j-- {
			zs[j], zs[j-1] = zs[j-1], zs[j]
		}
	}
}

// lessComplex is the (real, imag) lexicographic order.
func lessComplex(a, b complex128) bool {
	if real(a) != real(b) {
		return real(a) < real(b)
	}

	return imag(a) < imag(b)
}
