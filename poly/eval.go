package poly

// Evaluation primitives: Horner's rule over ℝ and ℂ, derivative stacks,
// and the calculus helpers Derivative / Integral.
//
// Contracts:
//   - Evaluators never allocate beyond their result.
//   - A zero-length Polynomial evaluates to 0; solvers reject it instead.
//
// Complexity: Eval/EvalComplex O(n); EvalDerivatives O(n·k).

// Eval computes p(x) by Horner's rule.
func (p Polynomial) Eval(x float64) float64 {
	var acc float64
	for i := len(p) - 1; i >= 0; i-- {
		acc = acc*x + p[i]
	}

	return acc
}

// EvalComplex computes p(z) by Horner's rule over the complex numbers.
func (p Polynomial) EvalComplex(z complex128) complex128 {
	var acc complex128
	for i := len(p) - 1; i >= 0; i-- {
		acc = acc*z + complex(p[i], 0)
	}

	return acc
}

// EvalDerivatives evaluates p and its first nmax derivatives at x in a
// single Horner cascade. The result has nmax+1 entries:
// res[0] = p(x), res[k] = p⁽ᵏ⁾(x). A negative nmax yields an empty result.
//
// The cascade accumulates p⁽ᵏ⁾(x)/k! via the recurrence
// res[k] ← res[k]·x + res[k−1]; factorials are applied at the end.
func (p Polynomial) EvalDerivatives(x float64, nmax int) []float64 {
	if nmax < 0 {
		return nil
	}
	res := make([]float64, nmax+1)
	if len(p) == 0 {
		return res
	}
	for i := len(p) - 1; i >= 0; i-- {
		k := len(p) - 1 - i
		if k > nmax {
			k = nmax
		}
		for j := k; j >= 1; j-- {
			res[j] = res[j]*x + res[j-1]
		}
		res[0] = res[0]*x + p[i]
	}
	// res[k] currently holds p⁽ᵏ⁾(x)/k!.
	fact := 1.0
	for k := 2; k <= nmax; k++ {
		fact *= float64(k)
		res[k] *= fact
	}

	return res
}

// Derivative returns p′ as a new Polynomial.
// The derivative of a constant is Polynomial{0}.
func (p Polynomial) Derivative() Polynomial {
	if len(p) <= 1 {
		return Polynomial{0}
	}
	d := make(Polynomial, len(p)-1)
	for i := 1; i < len(p); i++ {
		d[i-1] = p[i] * float64(i)
	}

	return d
}

// Integral returns the antiderivative of p with constant term c0.
func (p Polynomial) Integral(c0 float64) Polynomial {
	q := make(Polynomial, len(p)+1)
	q[0] = c0
	for i, c := range p {
		q[i+1] = c / float64(i+1)
	}

	return q
}
