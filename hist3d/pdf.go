package hist3d

import "math/rand"

// PDF sampling: treat bin contents as an un-normalized probability
// density and draw points by inverse-CDF lookup.
//
// Construction builds the cumulative sum over the flat bins; Sample maps
// a uniform variate through it with binary search, then interpolates the
// coordinates linearly inside the selected bin. The first variate selects
// the bin and the x offset, the second and third pick the y and z
// offsets, so three uniforms produce one 3D point.

// PDF is an immutable sampling table built from a Hist3D snapshot.
type PDF struct {
	xr, yr, zr []float64
	cum        []float64 // normalized cumulative sums, len = nbins+1
	ny, nz     int
}

// NewPDF builds a probability distribution from the current contents of h.
// Later mutations of h do not affect the PDF.
//
// Errors:
//   - ErrNegativeBins — some bin is negative.
//   - ErrEmptyContents — all bins are zero.
func NewPDF(h *Hist3D) (*PDF, error) {
	total := 0.0
	for _, b := range h.bins {
		if b < 0 {
			return nil, ErrNegativeBins
		}
		total += b
	}
	if total == 0 {
		return nil, ErrEmptyContents
	}

	p := &PDF{
		xr:  append([]float64(nil), h.xr...),
		yr:  append([]float64(nil), h.yr...),
		zr:  append([]float64(nil), h.zr...),
		cum: make([]float64, len(h.bins)+1),
		ny:  h.Ny(),
		nz:  h.Nz(),
	}
	running := 0.0
	for i, b := range h.bins {
		running += b / total
		p.cum[i+1] = running
	}
	// Pin the final edge so Sample(r→1⁻) still lands in the last bin.
	p.cum[len(h.bins)] = 1

	return p, nil
}

// Sample maps three independent uniform variates in [0, 1) to a point
// (x, y, z) distributed according to the histogram. r1 selects the bin
// and the x offset; r2 and r3 select the y and z offsets.
func (p *PDF) Sample(r1, r2, r3 float64) (x, y, z float64, err error) {
	if !inUnit(r1) || !inUnit(r2) || !inUnit(r3) {
		return 0, 0, 0, ErrBadUniform
	}

	// Binary search: smallest k with cum[k] <= r1 < cum[k+1].
	lo, hi := 0, len(p.cum)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if r1 < p.cum[mid] {
			hi = mid
		} else {
			lo = mid
		}
	}
	k := lo

	ix := k / (p.ny * p.nz)
	iy := (k / p.nz) % p.ny
	iz := k % p.nz

	// Reuse the within-bin remainder of r1 as the x offset.
	width := p.cum[k+1] - p.cum[k]
	delta := 0.0
	if width > 0 {
		delta = (r1 - p.cum[k]) / width
	}

	x = p.xr[ix] + delta*(p.xr[ix+1]-p.xr[ix])
	y = p.yr[iy] + r2*(p.yr[iy+1]-p.yr[iy])
	z = p.zr[iz] + r3*(p.zr[iz+1]-p.zr[iz])

	return x, y, z, nil
}

// Draw samples one point using rng as the source of uniforms.
func (p *PDF) Draw(rng *rand.Rand) (x, y, z float64, err error) {
	return p.Sample(rng.Float64(), rng.Float64(), rng.Float64())
}

// inUnit reports r ∈ [0, 1).
func inUnit(r float64) bool {
	return r >= 0 && r < 1
}
