// SPDX-License-Identifier: MIT

// Package interp builds the Lagrange interpolating polynomial through a set
// of points with distinct abscissas.
//
// For nodes (x₀,y₀)…(xₖ₋₁,yₖ₋₁) the basis polynomials are
//
//	Lᵢ(x) = Π_{j≠i} (x − xⱼ) / (xᵢ − xⱼ)
//
// and the interpolant P(x) = Σ yᵢ·Lᵢ(x) has degree at most k−1 and passes
// through every node. The basis and the expanded P are both returned so a
// report can show the construction.
package interp
