// SPDX-License-Identifier: MIT

package minimize

import "math"

// Nelder–Mead downhill simplex.
//
// Algorithm Outline:
//  1. Build n+1 vertices: x0 and x0 + StepSize·eᵢ for each axis i.
//  2. Each iteration orders the vertices, reflects the worst vertex
//     through the centroid of the rest, and then either expands (the
//     reflection became the new best), accepts, contracts toward the
//     simplex, or shrinks every vertex toward the best point.
//  3. The simplex size is the mean Euclidean distance from the vertices
//     to their centroid; convergence is size < SizeTol.
//
// Coefficients: reflection α=1, expansion γ=2, contraction β=½, shrink δ=½.
//
// Complexity per iteration: O(n²) (centroid + vertex updates).

// simplexState is the NelderMead engine.
type simplexState struct {
	f        Objective
	verts    [][]float64 // n+1 vertices
	fvals    []float64   // objective at each vertex
	centroid []float64   // centroid of all vertices but the worst
	trial    []float64   // scratch for reflected/expanded/contracted points
	trial2   []float64
	best     int // index of the lowest vertex
}

// newSimplex builds the initial axis-aligned simplex around x0.
func newSimplex(p Problem, x0 []float64, opts Options) (*simplexState, error) {
	n := len(x0)
	s := &simplexState{
		f:        p.F,
		verts:    make([][]float64, n+1),
		fvals:    make([]float64, n+1),
		centroid: make([]float64, n),
		trial:    make([]float64, n),
		trial2:   make([]float64, n),
	}
	for i := 0; i <= n; i++ {
		v := make([]float64, n)
		copy(v, x0)
		if i > 0 {
			v[i-1] += opts.StepSize
		}
		s.verts[i] = v
		s.fvals[i] = p.F(v)
		if !isFinite(s.fvals[i]) {
			return nil, ErrNonFinite
		}
	}
	s.locateBest()

	return s, nil
}

// iterate performs one reflect/expand/contract/shrink cycle.
func (s *simplexState) iterate() error {
	n := len(s.centroid)
	worst, second := s.locateWorst()

	// Centroid of every vertex except the worst.
	for j := 0; j < n; j++ {
		s.centroid[j] = 0
	}
	for i, v := range s.verts {
		if i == worst {
			continue
		}
		for j, vj := range v {
			s.centroid[j] += vj
		}
	}
	for j := 0; j < n; j++ {
		s.centroid[j] /= float64(n)
	}

	// Reflection: xr = c + (c − xw).
	for j := 0; j < n; j++ {
		s.trial[j] = 2*s.centroid[j] - s.verts[worst][j]
	}
	fr := s.f(s.trial)
	if !isFinite(fr) {
		return ErrNonFinite
	}

	switch {
	case fr < s.fvals[s.best]:
		// Expansion: xe = c + 2(c − xw); keep the better of xr, xe.
		for j := 0; j < n; j++ {
			s.trial2[j] = 3*s.centroid[j] - 2*s.verts[worst][j]
		}
		fe := s.f(s.trial2)
		if !isFinite(fe) {
			return ErrNonFinite
		}
		if fe < fr {
			s.accept(worst, s.trial2, fe)
		} else {
			s.accept(worst, s.trial, fr)
		}

	case fr < s.fvals[second]:
		s.accept(worst, s.trial, fr)

	default:
		// Contraction: xc = c + ½(xw − c).
		for j := 0; j < n; j++ {
			s.trial2[j] = 0.5 * (s.centroid[j] + s.verts[worst][j])
		}
		fc := s.f(s.trial2)
		if !isFinite(fc) {
			return ErrNonFinite
		}
		if fc < s.fvals[worst] {
			s.accept(worst, s.trial2, fc)
		} else if err := s.shrink(); err != nil {
			return err
		}
	}

	s.locateBest()

	return nil
}

// accept replaces vertex i with the trial point.
func (s *simplexState) accept(i int, x []float64, fx float64) {
	copy(s.verts[i], x)
	s.fvals[i] = fx
}

// shrink pulls every vertex halfway toward the best one.
func (s *simplexState) shrink() error {
	best := s.verts[s.best]
	for i, v := range s.verts {
		if i == s.best {
			continue
		}
		for j := range v {
			v[j] = 0.5 * (v[j] + best[j])
		}
		s.fvals[i] = s.f(v)
		if !isFinite(s.fvals[i]) {
			return ErrNonFinite
		}
	}

	return nil
}

// locateBest caches the index of the lowest vertex.
func (s *simplexState) locateBest() {
	s.best = 0
	for i, f := range s.fvals {
		if f < s.fvals[s.best] {
			s.best = i
		}
	}
}

// locateWorst returns the indices of the highest and second-highest vertices.
func (s *simplexState) locateWorst() (worst, second int) {
	worst, second = 0, 0
	for i, f := range s.fvals {
		if f > s.fvals[worst] {
			second = worst
			worst = i
		} else if i != worst && (second == worst || f > s.fvals[second]) {
			second = i
		}
	}

	return worst, second
}

func (s *simplexState) x() []float64 { return s.verts[s.best] }

func (s *simplexState) value() float64 { return s.fvals[s.best] }

func (s *simplexState) gradient() []float64 { return nil }

// size is the mean distance from the vertices to their common centroid.
func (s *simplexState) size() float64 {
	n := len(s.centroid)
	center := make([]float64, n)
	for _, v := range s.verts {
		for j, vj := range v {
			center[j] += vj
		}
	}
	for j := range center {
		center[j] /= float64(len(s.verts))
	}

	var sum float64
	for _, v := range s.verts {
		var d float64
		for j, vj := range v {
			diff := vj - center[j]
			d += diff * diff
		}
		sum += math.Sqrt(d)
	}

	return sum / float64(len(s.verts))
}
