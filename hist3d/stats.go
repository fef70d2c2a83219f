package hist3d

import "math"

// Statistics over bin contents. Moments weight each bin by its content at
// the bin midpoint, the standard histogram estimator.
//
// Complexity: every function below is a single O(nx·ny·nz) pass.

// Sum returns the total of all bin contents.
func (h *Hist3D) Sum() float64 {
	var s float64
	for _, b := range h.bins {
		s += b
	}

	return s
}

// MaxVal returns the largest bin content.
func (h *Hist3D) MaxVal() float64 {
	max := math.Inf(-1)
	for _, b := range h.bins {
		if b > max {
			max = b
		}
	}

	return max
}

// MaxBin returns the indices of the first bin holding MaxVal, scanning
// in storage (x-major) order.
func (h *Hist3D) MaxBin() (ix, iy, iz int) {
	best := 0
	for i, b := range h.bins {
		if b > h.bins[best] {
			best = i
		}
	}

	return h.unflat(best)
}

// MinVal returns the smallest bin content.
func (h *Hist3D) MinVal() float64 {
	min := math.Inf(1)
	for _, b := range h.bins {
		if b < min {
			min = b
		}
	}

	return min
}

// MinBin returns the indices of the first bin holding MinVal, scanning
// in storage (x-major) order.
func (h *Hist3D) MinBin() (ix, iy, iz int) {
	best := 0
	for i, b := range h.bins {
		if b < h.bins[best] {
			best = i
		}
	}

	return h.unflat(best)
}

// unflat inverts the x-major bin index.
func (h *Hist3D) unflat(i int) (ix, iy, iz int) {
	nz := h.Nz()
	ny := h.Ny()
	iz = i % nz
	iy = (i / nz) % ny
	ix = i / (nz * ny)

	return ix, iy, iz
}

// XMean returns the content-weighted mean of the x bin midpoints.
func (h *Hist3D) XMean() float64 { return h.moment(axisX, 1) }

// YMean returns the content-weighted mean of the y bin midpoints.
func (h *Hist3D) YMean() float64 { return h.moment(axisY, 1) }

// ZMean returns the content-weighted mean of the z bin midpoints.
func (h *Hist3D) ZMean() float64 { return h.moment(axisZ, 1) }

// XSigma returns the content-weighted standard deviation along x.
func (h *Hist3D) XSigma() float64 { return h.sigma(axisX) }

// YSigma returns the content-weighted standard deviation along y.
func (h *Hist3D) YSigma() float64 { return h.sigma(axisY) }

// ZSigma returns the content-weighted standard deviation along z.
func (h *Hist3D) ZSigma() float64 { return h.sigma(axisZ) }

// CovXY returns the content-weighted covariance between x and y midpoints.
func (h *Hist3D) CovXY() float64 { return h.cov(axisX, axisY) }

// CovXZ returns the content-weighted covariance between x and z midpoints.
func (h *Hist3D) CovXZ() float64 { return h.cov(axisX, axisZ) }

// CovYZ returns the content-weighted covariance between y and z midpoints.
func (h *Hist3D) CovYZ() float64 { return h.cov(axisY, axisZ) }

type axis int

const (
	axisX axis = iota
	axisY
	axisZ
)

// mid returns the midpoint of bin i on the given axis.
func (h *Hist3D) mid(a axis, i int) float64 {
	switch a {
	case axisX:
		return 0.5 * (h.xr[i] + h.xr[i+1])
	case axisY:
		return 0.5 * (h.yr[i] + h.yr[i+1])
	default:
		return 0.5 * (h.zr[i] + h.zr[i+1])
	}
}

// pick extracts the bin index of axis a from an (ix, iy, iz) triple.
func pick(a axis, ix, iy, iz int) int {
	switch a {
	case axisX:
		return ix
	case axisY:
		return iy
	default:
		return iz
	}
}

// moment returns E[mid^p] over the content-weighted bins; 0 when the
// histogram is empty.
func (h *Hist3D) moment(a axis, p int) float64 {
	var num, den float64
	for i, b := range h.bins {
		ix, iy, iz := h.unflat(i)
		m := h.mid(a, pick(a, ix, iy, iz))
		v := m
		if p == 2 {
			v = m * m
		}
		num += v * b
		den += b
	}
	if den == 0 {
		return 0
	}

	return num / den
}

// sigma returns sqrt(E[m²] − E[m]²), clamped at zero against rounding.
func (h *Hist3D) sigma(a axis) float64 {
	mean := h.moment(a, 1)
	variance := h.moment(a, 2) - mean*mean
	if variance < 0 {
		variance = 0
	}

	return math.Sqrt(variance)
}

// cov returns E[ma·mb] − E[ma]·E[mb] over the content-weighted bins.
func (h *Hist3D) cov(a, b axis) float64 {
	var num, den float64
	for i, w := range h.bins {
		ix, iy, iz := h.unflat(i)
		ma := h.mid(a, pick(a, ix, iy, iz))
		mb := h.mid(b, pick(b, ix, iy, iz))
		num += ma * mb * w
		den += w
	}
	if den == 0 {
		return 0
	}

	return num/den - h.moment(a, 1)*h.moment(b, 1)
}
