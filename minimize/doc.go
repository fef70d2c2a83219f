// SPDX-License-Identifier: MIT

// Package minimize finds local minima of multidimensional functions,
// with and without gradients.
//
// 🚀 What is minimize?
//
//	Five classic minimizers behind one façade:
//	  • NelderMead       — derivative-free downhill simplex
//	  • SteepestDescent  — gradient descent with adaptive step
//	  • ConjugateFR      — Fletcher–Reeves conjugate gradients
//	  • ConjugatePR      — Polak–Ribière conjugate gradients
//	  • VectorBFGS       — quasi-Newton with a dense inverse-Hessian model
//
// ✨ Key properties:
//   - Deterministic: no randomness, no global state; identical inputs give
//     identical iterates on every run.
//   - Strict sentinels: validation and progress failures are fixed errors
//     from types.go; use errors.Is.
//   - Two driving styles: the one-call Minimize dispatcher, or the stepwise
//     Minimizer (New / Iterate / accessors) when the caller owns the loop.
//
// ⚙️ Usage:
//
//	rosen := minimize.Problem{
//	  F: func(x []float64) float64 {
//	    return 100*(x[1]-x[0]*x[0])*(x[1]-x[0]*x[0]) + (1-x[0])*(1-x[0])
//	  },
//	  Grad: func(x, g []float64) {
//	    g[0] = -400*x[0]*(x[1]-x[0]*x[0]) - 2*(1-x[0])
//	    g[1] = 200 * (x[1] - x[0]*x[0])
//	  },
//	}
//	opts := minimize.DefaultOptions()
//	opts.Algo = minimize.ConjugatePR
//	res, err := minimize.Minimize(rosen, []float64{-1.2, 1}, opts)
//
// Convergence:
//   - NelderMead stops when the mean vertex-to-centroid distance drops
//     below SizeTol (see TestSize).
//   - Gradient methods stop when ‖∇f‖₂ drops below GradTol (TestGradient).
//   - Exhausting MaxIterations returns the best point found together with
//     ErrMaxIterations and Converged=false.
//
// Complexity per iteration: O(n) for SteepestDescent, O(n²) for
// NelderMead and VectorBFGS, O(n)·line-search for the conjugate methods.
package minimize
