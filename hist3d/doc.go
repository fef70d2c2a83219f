// Package hist3d provides three-dimensional histograms: binning over a
// grid of (x, y, z) ranges, per-axis statistics, 2D projections, and
// sampling from the histogram as a probability distribution.
//
// 🚀 What is hist3d?
//
//	A Hist3D divides a cuboid into nx·ny·nz bins bounded by strictly
//	increasing edge arrays.  Bin (i, j, k) covers
//	  xrange[i] ≤ x < xrange[i+1]
//	  yrange[j] ≤ y < yrange[j+1]
//	  zrange[k] ≤ z < zrange[k+1]
//	and bins are stored x-major: index = (i·ny + j)·nz + k.
//
// ✨ Key features:
//   - uniform or fully custom bin edges
//   - Increment / Accumulate with explicit out-of-range errors
//   - bin arithmetic (Add, Sub, Mul, Div, Scale, Shift) with strict
//     shape checks
//   - statistics: Sum, extrema, per-axis Mean/Sigma, covariances
//   - projections onto the XY, XZ and YZ planes
//   - PDF: inverse-CDF sampling proportional to bin contents
//
// ⚙️ Usage:
//
//	h, err := hist3d.New(10, 10, 10, 0, 1, 0, 1, 0, 1)
//	_ = h.Increment(0.25, 0.5, 0.75)
//	_ = h.Accumulate(0.25, 0.5, 0.75, 2.5)
//
//	pxy := h.ProjectXY()        // 2D histogram, z summed out
//	pdf, _ := hist3d.NewPDF(h)  // sample points ∝ bin weights
//	x, y, z, _ := pdf.Sample(0.3, 0.5, 0.7)
//
// Performance:
//
//   - Increment / Accumulate / Find: O(log n) per axis (binary search)
//   - statistics & projections:      O(nx·ny·nz)
//   - PDF construction:              O(nx·ny·nz); Sample: O(log(nx·ny·nz))
//
// See example_test.go for runnable walkthroughs.
package hist3d
