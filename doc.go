// Package numkit is a pure-Go numerical toolkit: polynomial evaluation and
// root finding, multidimensional function minimization, and three-dimensional
// histogramming.
//
// 🚀 What is numkit?
//
//	A compact, deterministic numerics library that brings together:
//		• Polynomials: Horner evaluation, derivative stacks, Newton divided
//		  differences & Taylor expansion, analytic quadratic/cubic solvers,
//		  and a general complex root finder (companion matrix + QR)
//		• Minimization: Nelder–Mead simplex, steepest descent,
//		  conjugate gradients (Fletcher–Reeves, Polak–Ribière), vector BFGS
//		• Histograms: 3D binning with uniform or custom edges, statistics,
//		  2D projections, and inverse-CDF sampling
//
// ✨ Why choose numkit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – strict validation, sentinel errors, in-code docs
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – no global state, seedable randomness where it matters
//
// Everything is organized under three subpackages:
//
//	poly/     — polynomial evaluation, divided differences & root solvers
//	minimize/ — multidimensional minimizers with a stepwise iterator API
//	hist3d/   — 3D histograms, projections, statistics & PDF sampling
//
// Quick example:
//
//	p := poly.Polynomial{-6, 11, -6, 1} // (x-1)(x-2)(x-3)
//	roots, _ := p.Roots()
//
// See each subpackage's doc.go for tutorials and complexity notes.
package numkit
