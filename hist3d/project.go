package hist3d

// Projections collapse one axis by summing its bins, producing a Hist2D.

// ProjectXY sums out z: the result has bin (i, j) = Σ_k h(i, j, k).
func (h *Hist3D) ProjectXY() *Hist2D {
	p := newHist2D(h.xr, h.yr)
	for i, b := range h.bins {
		ix, iy, _ := h.unflat(i)
		p.bins[ix*p.Ny()+iy] += b
	}

	return p
}

// ProjectXZ sums out y: the result has bin (i, k) = Σ_j h(i, j, k).
func (h *Hist3D) ProjectXZ() *Hist2D {
	p := newHist2D(h.xr, h.zr)
	for i, b := range h.bins {
		ix, _, iz := h.unflat(i)
		p.bins[ix*p.Ny()+iz] += b
	}

	return p
}

// ProjectYZ sums out x: the result has bin (j, k) = Σ_i h(i, j, k).
func (h *Hist3D) ProjectYZ() *Hist2D {
	p := newHist2D(h.yr, h.zr)
	for i, b := range h.bins {
		_, iy, iz := h.unflat(i)
		p.bins[iy*p.Ny()+iz] += b
	}

	return p
}

// newHist2D allocates a zeroed 2D histogram over copies of the edges.
func newHist2D(xr, yr []float64) *Hist2D {
	return &Hist2D{
		xr:   append([]float64(nil), xr...),
		yr:   append([]float64(nil), yr...),
		bins: make([]float64, (len(xr)-1)*(len(yr)-1)),
	}
}

// Nx returns the number of bins along the first axis.
func (p *Hist2D) Nx() int { return len(p.xr) - 1 }

// Ny returns the number of bins along the second axis.
func (p *Hist2D) Ny() int { return len(p.yr) - 1 }

// Get returns the content of bin (ix, iy).
func (p *Hist2D) Get(ix, iy int) (float64, error) {
	if ix < 0 || ix >= p.Nx() || iy < 0 || iy >= p.Ny() {
		return 0, ErrIndex
	}

	return p.bins[ix*p.Ny()+iy], nil
}

// XRange returns the [lower, upper) bounds of first-axis bin ix.
func (p *Hist2D) XRange(ix int) (lower, upper float64, err error) {
	if ix < 0 || ix >= p.Nx() {
		return 0, 0, ErrIndex
	}

	return p.xr[ix], p.xr[ix+1], nil
}

// YRange returns the [lower, upper) bounds of second-axis bin iy.
func (p *Hist2D) YRange(iy int) (lower, upper float64, err error) {
	if iy < 0 || iy >= p.Ny() {
		return 0, 0, ErrIndex
	}

	return p.yr[iy], p.yr[iy+1], nil
}

// Sum returns the total of all bin contents.
func (p *Hist2D) Sum() float64 {
	var s float64
	for _, b := range p.bins {
		s += b
	}

	return s
}
