package hist3d

// Construction, binning and bin arithmetic.
//
// Contracts:
//   - Edges are copied on construction; a histogram never aliases caller
//     memory.
//   - Out-of-range samples return ErrOutOfRange and leave the histogram
//     untouched (no silent discard).
//   - Arithmetic requires identical shapes and edges (ErrShapeMismatch).

// New allocates a histogram with uniform bins: nx bins on [xmin, xmax),
// ny on [ymin, ymax), nz on [zmin, zmax).
//
// Errors: ErrBinCount on non-positive counts, ErrBadRange when a minimum
// does not lie strictly below its maximum or a bound is not finite.
func New(nx, ny, nz int, xmin, xmax, ymin, ymax, zmin, zmax float64) (*Hist3D, error) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, ErrBinCount
	}

	return NewRanges(uniformEdges(nx, xmin, xmax), uniformEdges(ny, ymin, ymax), uniformEdges(nz, zmin, zmax))
}

// NewRanges allocates a histogram with custom bin edges per axis.
// Each slice must hold at least two strictly increasing finite values;
// axis i then has len(edges)−1 bins. The edges are copied.
func NewRanges(xr, yr, zr []float64) (*Hist3D, error) {
	if !validEdges(xr) || !validEdges(yr) || !validEdges(zr) {
		return nil, ErrBadRange
	}

	h := &Hist3D{
		xr:   append([]float64(nil), xr...),
		yr:   append([]float64(nil), yr...),
		zr:   append([]float64(nil), zr...),
		bins: make([]float64, (len(xr)-1)*(len(yr)-1)*(len(zr)-1)),
	}

	return h, nil
}

// uniformEdges splits [min, max) into n equal bins (n+1 edges).
// Degenerate bounds yield a non-increasing sequence that NewRanges rejects.
func uniformEdges(n int, min, max float64) []float64 {
	edges := make([]float64, n+1)
	width := (max - min) / float64(n)
	for i := 0; i <= n; i++ {
		edges[i] = min + float64(i)*width
	}
	edges[n] = max

	return edges
}

// Nx returns the number of bins along x.
func (h *Hist3D) Nx() int { return len(h.xr) - 1 }

// Ny returns the number of bins along y.
func (h *Hist3D) Ny() int { return len(h.yr) - 1 }

// Nz returns the number of bins along z.
func (h *Hist3D) Nz() int { return len(h.zr) - 1 }

// XMin returns the lower edge of the x range.
func (h *Hist3D) XMin() float64 { return h.xr[0] }

// XMax returns the upper edge of the x range.
func (h *Hist3D) XMax() float64 { return h.xr[len(h.xr)-1] }

// YMin returns the lower edge of the y range.
func (h *Hist3D) YMin() float64 { return h.yr[0] }

// YMax returns the upper edge of the y range.
func (h *Hist3D) YMax() float64 { return h.yr[len(h.yr)-1] }

// ZMin returns the lower edge of the z range.
func (h *Hist3D) ZMin() float64 { return h.zr[0] }

// ZMax returns the upper edge of the z range.
func (h *Hist3D) ZMax() float64 { return h.zr[len(h.zr)-1] }

// flat maps (ix, iy, iz) to the x-major bin index.
func (h *Hist3D) flat(ix, iy, iz int) int {
	return (ix*h.Ny()+iy)*h.Nz() + iz
}

// checkIndex validates a triple of bin indices.
func (h *Hist3D) checkIndex(ix, iy, iz int) error {
	if ix < 0 || ix >= h.Nx() || iy < 0 || iy >= h.Ny() || iz < 0 || iz >= h.Nz() {
		return ErrIndex
	}

	return nil
}

// Find returns the bin indices containing (x, y, z).
func (h *Hist3D) Find(x, y, z float64) (ix, iy, iz int, err error) {
	var ok bool
	if ix, ok = findBin(h.xr, x); !ok {
		return 0, 0, 0, ErrOutOfRange
	}
	if iy, ok = findBin(h.yr, y); !ok {
		return 0, 0, 0, ErrOutOfRange
	}
	if iz, ok = findBin(h.zr, z); !ok {
		return 0, 0, 0, ErrOutOfRange
	}

	return ix, iy, iz, nil
}

// Increment adds 1 to the bin containing (x, y, z).
func (h *Hist3D) Increment(x, y, z float64) error {
	return h.Accumulate(x, y, z, 1)
}

// Accumulate adds weight to the bin containing (x, y, z).
func (h *Hist3D) Accumulate(x, y, z, weight float64) error {
	ix, iy, iz, err := h.Find(x, y, z)
	if err != nil {
		return err
	}
	h.bins[h.flat(ix, iy, iz)] += weight

	return nil
}

// Get returns the content of bin (ix, iy, iz).
func (h *Hist3D) Get(ix, iy, iz int) (float64, error) {
	if err := h.checkIndex(ix, iy, iz); err != nil {
		return 0, err
	}

	return h.bins[h.flat(ix, iy, iz)], nil
}

// XRange returns the [lower, upper) bounds of x bin ix.
func (h *Hist3D) XRange(ix int) (lower, upper float64, err error) {
	if ix < 0 || ix >= h.Nx() {
		return 0, 0, ErrIndex
	}

	return h.xr[ix], h.xr[ix+1], nil
}

// YRange returns the [lower, upper) bounds of y bin iy.
func (h *Hist3D) YRange(iy int) (lower, upper float64, err error) {
	if iy < 0 || iy >= h.Ny() {
		return 0, 0, ErrIndex
	}

	return h.yr[iy], h.yr[iy+1], nil
}

// ZRange returns the [lower, upper) bounds of z bin iz.
func (h *Hist3D) ZRange(iz int) (lower, upper float64, err error) {
	if iz < 0 || iz >= h.Nz() {
		return 0, 0, ErrIndex
	}

	return h.zr[iz], h.zr[iz+1], nil
}

// Reset zeroes every bin, keeping the ranges.
func (h *Hist3D) Reset() {
	for i := range h.bins {
		h.bins[i] = 0
	}
}

// Clone returns a deep copy of the histogram.
func (h *Hist3D) Clone() *Hist3D {
	c := &Hist3D{
		xr:   append([]float64(nil), h.xr...),
		yr:   append([]float64(nil), h.yr...),
		zr:   append([]float64(nil), h.zr...),
		bins: append([]float64(nil), h.bins...),
	}

	return c
}

// Equal reports whether two histograms share shape, edges and bin contents.
func (h *Hist3D) Equal(other *Hist3D) bool {
	if !h.sameShape(other) {
		return false
	}
	for i, b := range h.bins {
		if b != other.bins[i] {
			return false
		}
	}

	return true
}

// sameShape checks bin counts and edges.
func (h *Hist3D) sameShape(other *Hist3D) bool {
	return sameEdges(h.xr, other.xr) && sameEdges(h.yr, other.yr) && sameEdges(h.zr, other.zr)
}

// Scale multiplies every bin by k.
func (h *Hist3D) Scale(k float64) {
	for i := range h.bins {
		h.bins[i] *= k
	}
}

// Shift adds k to every bin.
func (h *Hist3D) Shift(k float64) {
	for i := range h.bins {
		h.bins[i] += k
	}
}

// Add accumulates other into h bin-wise.
func (h *Hist3D) Add(other *Hist3D) error {
	return h.combine(other, func(a, b float64) float64 { return a + b })
}

// Sub subtracts other from h bin-wise.
func (h *Hist3D) Sub(other *Hist3D) error {
	return h.combine(other, func(a, b float64) float64 { return a - b })
}

// Mul multiplies h by other bin-wise.
func (h *Hist3D) Mul(other *Hist3D) error {
	return h.combine(other, func(a, b float64) float64 { return a * b })
}

// Div divides h by other bin-wise. Division by zero bins follows IEEE
// float semantics (±Inf or NaN), as in the classic histogram libraries.
func (h *Hist3D) Div(other *Hist3D) error {
	return h.combine(other, func(a, b float64) float64 { return a / b })
}

// combine applies op bin-wise after a strict shape check.
func (h *Hist3D) combine(other *Hist3D, op func(a, b float64) float64) error {
	if !h.sameShape(other) {
		return ErrShapeMismatch
	}
	for i := range h.bins {
		h.bins[i] = op(h.bins[i], other.bins[i])
	}

	return nil
}
