package poly

import "math"

// General root finder: eigenvalues of the balanced companion matrix,
// extracted by the Francis double-shift QR reduction.
//
// Pipeline:
//  1. Trim trailing zero coefficients (they only lower the degree).
//  2. Build the n×n companion matrix of the monic polynomial: ones on the
//     subdiagonal, −c[i]/c[n] in the last column.
//  3. Balance with the Parlett–Reinsch radix scheme to equalize row and
//     column norms (similarity transform, eigenvalues unchanged).
//  4. Run shifted QR on the Hessenberg matrix, deflating one or two
//     eigenvalues at a time.
//
// Complexity: O(n³) time worst case, O(n²) memory for the dense matrix.

// Roots returns all complex roots of p, sorted by ascending real part and
// then ascending imaginary part. A degree-n polynomial yields exactly n
// roots, counted with multiplicity.
//
// Errors:
//   - ErrEmpty / ErrNonFinite — invalid input.
//   - ErrConstant             — degree 0 after trimming.
//   - ErrDegenerate           — all coefficients zero.
//   - ErrNoConvergence        — QR stalled (pathological coefficients).
func (p Polynomial) Roots() ([]complex128, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	n := p.Degree()
	if n == 0 {
		if p[0] == 0 {
			return nil, ErrDegenerate
		}

		return nil, ErrConstant
	}
	if n == 1 {
		return []complex128{complex(-p[0]/p[1], 0)}, nil
	}

	m := newCompanion(p[:n+1])
	m.balance()
	roots, err := m.eigenvalues()
	if err != nil {
		return nil, err
	}
	sortComplex(roots)

	return roots, nil
}

// companion is a dense row-major n×n matrix; index (i,j) lives at i*n+j.
type companion struct {
	a []float64
	n int
}

// newCompanion builds the companion matrix of the monic form of c,
// where c has n+1 entries and c[n] != 0.
func newCompanion(c Polynomial) *companion {
	n := len(c) - 1
	m := &companion{a: make([]float64, n*n), n: n}
	for i := 1; i < n; i++ {
		m.set(i, i-1, 1)
	}
	lead := c[n]
	for i := 0; i < n; i++ {
		m.set(i, n-1, -c[i]/lead)
	}

	return m
}

func (m *companion) at(i, j int) float64 { return m.a[i*m.n+j] }

func (m *companion) set(i, j int, v float64) { m.a[i*m.n+j] = v }

// balance applies the Parlett–Reinsch iterative radix-2 balancing until
// row and column norms stop improving. Exact powers of two preserve every
// mantissa bit.
func (m *companion) balance() {
	const radix = 2.0
	const radix2 = radix * radix

	n := m.n
	for {
		converged := true
		for i := 0; i < n; i++ {
			var r, c float64
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				c += abs(m.at(j, i))
				r += abs(m.at(i, j))
			}
			if c == 0 || r == 0 {
				continue
			}

			g := r / radix
			f := 1.0
			s := c + r
			for c < g {
				f *= radix
				c *= radix2
			}
			g = r * radix
			for c > g {
				f /= radix
				c /= radix2
			}
			if (c+r)/f < 0.95*s {
				converged = false
				g = 1 / f
				for j := 0; j < n; j++ {
					m.set(i, j, m.at(i, j)*g)
				}
				for j := 0; j < n; j++ {
					m.set(j, i, m.at(j, i)*f)
				}
			}
		}
		if converged {
			return
		}
	}
}

// eigenvalues runs the Francis double-shift QR reduction on the upper
// Hessenberg matrix and returns its eigenvalues.
//
// The matrix is destroyed in the process. Deflation removes one real or
// two (possibly conjugate) eigenvalues per convergence; exceptional
// shifts kick in every 10 stalled sweeps.
func (m *companion) eigenvalues() ([]complex128, error) {
	n := m.n
	roots := make([]complex128, 0, n)

	anorm := 0.0
	for i := 0; i < n; i++ {
		lo := i - 1
		if lo < 0 {
			lo = 0
		}
		for j := lo; j < n; j++ {
			anorm += abs(m.at(i, j))
		}
	}

	nn := n - 1
	t := 0.0
	for nn >= 0 {
		its := 0
		for {
			// Find the smallest l with a negligible subdiagonal at (l, l−1).
			var l int
			for l = nn; l >= 1; l-- {
				s := abs(m.at(l-1, l-1)) + abs(m.at(l, l))
				if s == 0 {
					s = anorm
				}
				if abs(m.at(l, l-1))+s == s {
					m.set(l, l-1, 0)
					break
				}
			}

			x := m.at(nn, nn)
			if l == nn {
				// One real eigenvalue deflates.
				roots = append(roots, complex(x+t, 0))
				nn--
				break
			}

			y := m.at(nn-1, nn-1)
			w := m.at(nn, nn-1) * m.at(nn-1, nn)
			if l == nn-1 {
				// A 2×2 block deflates: real pair or conjugate pair.
				p := 0.5 * (y - x)
				q := p*p + w
				z := math.Sqrt(abs(q))
				x += t
				if q >= 0 {
					if p >= 0 {
						z = p + z
					} else {
						z = p - z
					}
					r1 := x + z
					r2 := r1
					if z != 0 {
						r2 = x - w/z
					}
					roots = append(roots, complex(r1, 0), complex(r2, 0))
				} else {
					roots = append(roots, complex(x+p, z), complex(x+p, -z))
				}
				nn -= 2
				break
			}

			if its == maxQRIterations {
				return nil, ErrNoConvergence
			}
			if its != 0 && its%10 == 0 {
				// Exceptional shift to break limit cycles.
				t += x
				for i := 0; i <= nn; i++ {
					m.set(i, i, m.at(i, i)-x)
				}
				s := abs(m.at(nn, nn-1)) + abs(m.at(nn-1, nn-2))
				x = 0.75 * s
				y = x
				w = -0.4375 * s * s
			}
			its++

			// Form the first column of (H−aI)(H−bI) and locate the start row.
			var mm int
			var p, q, r, z float64
			for mm = nn - 2; mm >= l; mm-- {
				z = m.at(mm, mm)
				r = x - z
				s := y - z
				p = (r*s-w)/m.at(mm+1, mm) + m.at(mm, mm+1)
				q = m.at(mm+1, mm+1) - z - r - s
				r = m.at(mm+2, mm+1)
				s = abs(p) + abs(q) + abs(r)
				p /= s
				q /= s
				r /= s
				if mm == l {
					break
				}
				u := abs(m.at(mm, mm-1)) * (abs(q) + abs(r))
				v := abs(p) * (abs(m.at(mm-1, mm-1)) + abs(z) + abs(m.at(mm+1, mm+1)))
				if u+v == v {
					break
				}
			}
			for i := mm + 2; i <= nn; i++ {
				m.set(i, i-2, 0)
				if i != mm+2 {
					m.set(i, i-3, 0)
				}
			}

			// Double QR sweep: chase the bulge from row mm to nn−1.
			for k := mm; k <= nn-1; k++ {
				if k != mm {
					p = m.at(k, k-1)
					q = m.at(k+1, k-1)
					r = 0
					if k != nn-1 {
						r = m.at(k+2, k-1)
					}
					x = abs(p) + abs(q) + abs(r)
					if x != 0 {
						p /= x
						q /= x
						r /= x
					}
				}
				s := math.Sqrt(p*p + q*q + r*r)
				if p < 0 {
					s = -s
				}
				if s == 0 {
					continue
				}
				if k == mm {
					if l != mm {
						m.set(k, k-1, -m.at(k, k-1))
					}
				} else {
					m.set(k, k-1, -s*x)
				}
				p += s
				x = p / s
				y = q / s
				z = r / s
				q /= p
				r /= p

				// Row modification.
				for j := k; j <= nn; j++ {
					pp := m.at(k, j) + q*m.at(k+1, j)
					if k != nn-1 {
						pp += r * m.at(k+2, j)
						m.set(k+2, j, m.at(k+2, j)-pp*z)
					}
					m.set(k+1, j, m.at(k+1, j)-pp*y)
					m.set(k, j, m.at(k, j)-pp*x)
				}

				// Column modification.
				mmin := nn
				if k+3 < nn {
					mmin = k + 3
				}
				for i := l; i <= mmin; i++ {
					pp := x*m.at(i, k) + y*m.at(i, k+1)
					if k != nn-1 {
						pp += z * m.at(i, k+2)
						m.set(i, k+2, m.at(i, k+2)-pp*r)
					}
					m.set(i, k+1, m.at(i, k+1)-pp*q)
					m.set(i, k, m.at(i, k)-pp)
				}
			}
		}
	}

	return roots, nil
}
