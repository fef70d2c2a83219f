// Package poly evaluates polynomials and finds their roots, with analytic
// solvers for low degrees and a general complex solver for arbitrary degree.
//
// 🚀 What is poly?
//
//	Polynomials are stored as coefficient slices in ascending order,
//	so Polynomial{-6, 11, -6, 1} is x³ − 6x² + 11x − 6.  On top of that
//	representation the package provides:
//	  • Horner evaluation over the reals and complexes
//	  • Derivative stacks: f(x), f′(x), …, f⁽ⁿ⁾(x) in one pass
//	  • Newton divided differences and Taylor re-expansion
//	  • Analytic quadratic & cubic solvers (real and complex roots)
//	  • A general root finder: balanced companion matrix + QR reduction
//
// ✨ Key properties:
//   - strict validation: NaN/±Inf inputs are rejected with sentinel errors
//   - deterministic output: general roots are sorted (real part, then imag)
//   - GSL-compatible semantics: root ordering, multiplicity and degenerate
//     cases follow the classic solve_quadratic / solve_cubic conventions
//
// ⚙️ Usage:
//
//	p := poly.Polynomial{-6, 11, -6, 1}
//	y := p.Eval(2.5)               // Horner, O(n)
//	roots, err := p.Roots()        // all complex roots, O(n³) worst case
//
//	xs, err := poly.SolveCubic(-6, 11, -6)  // roots of x³-6x²+11x-6
//
// Performance:
//
//   - Eval / EvalComplex:      O(n) time, O(1) memory
//   - EvalDerivatives:         O(n·k) time for k derivatives
//   - SolveQuadratic / Cubic:  O(1)
//   - Roots:                   O(n³) worst case (QR on n×n companion)
//
// See example_test.go for runnable walkthroughs.
package poly
