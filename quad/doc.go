// SPDX-License-Identifier: MIT

// Package quad approximates ∫ₐᵇ f(x)dx with composite Newton–Cotes rules and
// Gauss–Legendre quadrature.
//
// 📚 Rules (sealed; build them with the constructors):
//
//	Trapezoid(N)      h/2  · [f₀ + 2f₁ + … + 2f_{N−1} + f_N]         N ≥ 1
//	Simpson13(N)      h/3  · [f₀ + 4f₁ + 2f₂ + … + 4f_{N−1} + f_N]   N even
//	Simpson38(N)      3h/8 · [f₀ + 3f₁ + 3f₂ + 2f₃ + … + 3f_{N−1} + f_N]  N ≡ 0 mod 3
//	GaussLegendre(n)  (b−a)/2 · Σ wᵢ f(((b−a)tᵢ + (b+a))/2)      n ∈ {2, 3, 4}
//
// with h = (b−a)/N. Simpson 3/8 uses the single weighted sum above for every
// N that is a multiple of 3.
//
// The integrand is anything with Eval(float64) float64, such as an
// *expr.Function or a Func. When it also offers
// DefiniteIntegral(a, b) (float64, error) and that succeeds, the result
// carries the exact value and the absolute error.
package quad
