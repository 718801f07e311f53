// SPDX-License-Identifier: MIT

// Package taylor measures the truncation error of Maclaurin polynomials of
// sin, cos and exp.
//
//	sin x ≈ Σ_{i<n} (−1)ⁱ x^(2i+1)/(2i+1)!
//	cos x ≈ Σ_{i<n} (−1)ⁱ x^(2i)/(2i)!
//	eˣ    ≈ Σ_{i<n} xⁱ/i!
//
// Terms are built by recurrence from the previous one, so no factorial is
// ever formed.
package taylor
