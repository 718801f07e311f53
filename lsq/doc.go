// SPDX-License-Identifier: MIT

// Package lsq fits models to points by linear least squares through the
// normal equations AᵗA·c = Aᵗy.
//
// 📚 Models (sealed; build them with the constructors):
//
//	Linear()        y = a₀ + a₁x                     row [1, x]
//	Polynomial(d)   y = a₀ + a₁x + … + a_d x^d        row [1, x, …, x^d]
//	Exponential()   y = a·e^(bx), fitted as ln y = ln a + bx
//	Fourier(m)      y = a₀ + Σₖ aₖcos(kx) + bₖsin(kx), k = 1..m
//
// The design matrix, AᵗA, Aᵗy and the solution of the normal equations are
// all returned for display. The residual SSR is measured on the original
// y scale, also for the linearized exponential model.
//
// ⚙️ Usage:
//
//	res, err := lsq.Fit(points, lsq.Polynomial(2))
//	if err != nil {
//	  // ErrInvalidModel, ErrInsufficientData, ErrSingular
//	}
//	fmt.Println(res.Equation, res.SSR)
package lsq
