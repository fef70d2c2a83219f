// SPDX-License-Identifier: MIT

package minimize

// Directional line minimization shared by the conjugate-gradient and BFGS
// engines: minimize φ(α) = f(x + α·d) for α > 0.
//
// Strategy:
//  1. Backtrack from the initial step until φ(α) < φ(0) (descent
//     directions guarantee such an α exists in exact arithmetic).
//  2. Expand α by doubling while φ keeps decreasing, producing a bracket
//     (lo, mid, hi) with φ(mid) below both ends.
//  3. Golden-section refinement of the bracket down to a relative width
//     of LineTol.
//
// The search is derivative-free on φ, so one gradient evaluation per
// outer iteration suffices.

const (
	// invPhi is 1/φ, the golden-section ratio.
	invPhi = 0.6180339887498949

	// maxBacktracks bounds step shrinking before declaring no progress.
	maxBacktracks = 60

	// maxExpansions bounds bracket growth for unbounded descent directions.
	maxExpansions = 60
)

// lineMinimize returns the step α minimizing f(x + α·d) and the value
// there. trial is caller-provided scratch of len(x).
func lineMinimize(f Objective, x, d, trial []float64, step, tol, f0 float64) (float64, float64, error) {
	phi := func(alpha float64) float64 {
		for i, xi := range x {
			trial[i] = xi + alpha*d[i]
		}

		return f(trial)
	}

	// Stage 1: find a downhill step.
	alpha := step
	fa := phi(alpha)
	if !isFinite(fa) {
		return 0, 0, ErrNonFinite
	}
	backtracks := 0
	for fa >= f0 {
		alpha *= 0.5
		if backtracks++; backtracks > maxBacktracks {
			return 0, 0, ErrNoProgress
		}
		fa = phi(alpha)
		if !isFinite(fa) {
			return 0, 0, ErrNonFinite
		}
	}

	// Stage 2: expand until the function turns upward.
	lo := 0.0
	mid, fmid := alpha, fa
	hi := 2 * alpha
	fhi := phi(hi)
	if !isFinite(fhi) {
		return 0, 0, ErrNonFinite
	}
	expansions := 0
	for fhi < fmid {
		lo = mid
		mid, fmid = hi, fhi
		hi *= 2
		if expansions++; expansions > maxExpansions {
			break
		}
		fhi = phi(hi)
		if !isFinite(fhi) {
			return 0, 0, ErrNonFinite
		}
	}

	// Stage 3: golden-section on [lo, hi] around mid.
	a, b := lo, hi
	x1 := b - invPhi*(b-a)
	x2 := a + invPhi*(b-a)
	f1, f2 := phi(x1), phi(x2)
	for b-a > tol*b && b-a > minStepSize {
		if f1 < f2 {
			b = x2
			x2, f2 = x1, f1
			x1 = b - invPhi*(b-a)
			f1 = phi(x1)
		} else {
			a = x1
			x1, f1 = x2, f2
			x2 = a + invPhi*(b-a)
			f2 = phi(x2)
		}
		if !isFinite(f1) || !isFinite(f2) {
			return 0, 0, ErrNonFinite
		}
	}

	best, fbest := mid, fmid
	if f1 < fbest {
		best, fbest = x1, f1
	}
	if f2 < fbest {
		best, fbest = x2, f2
	}

	return best, fbest, nil
}
