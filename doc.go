// SPDX-License-Identifier: MIT

// Package numerics is a teaching toolkit for classical numerical analysis.
// Every engine returns its answer together with the full trace of how it
// got there, a plain-text report and a plot description ready to render.
//
// What is inside:
//
//	floatbits/ — IEEE-754 single and double decomposition and reconstruction
//	roots/     — bisection and Newton–Raphson with per-iteration steps
//	gauss/     — Gaussian elimination with optional partial pivoting
//	interp/    — Lagrange interpolation with basis polynomials
//	lsq/       — least-squares fits: linear, polynomial, exponential, Fourier
//	quad/      — trapezoid, Simpson 1/3 and 3/8, Gauss–Legendre
//	taylor/    — Maclaurin truncation error for sin, cos and e^x
//
// Supporting packages:
//
//	expr/      — single-variable expression parser with symbolic d/dx and ∫dx
//	matrix/    — dense matrices, row operations and a direct solver
//	poly/      — immutable polynomials
//	plot/      — renderer-agnostic figures (series of points)
//	input/     — plain-text numbers, vectors, matrices and point lists
//	worksheet/ — batch problem sets in TOML, YAML or HCL
//
// Quick example:
//
//	f := expr.MustParse("x^3 - x - 2")
//	res, err := roots.Bisection(f.Eval, 1, 2, roots.DefaultBisectionOptions())
//	if err != nil {
//		// handle
//	}
//	fmt.Println(res.Report())
//
// Engines are synchronous, allocate their own buffers and never log.
//
//	go get github.com/katalvlaran/numerics
package numerics
