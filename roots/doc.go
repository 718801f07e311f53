// SPDX-License-Identifier: MIT

// Package roots finds real roots of f(x) = 0 by bisection and by Newton–Raphson,
// recording every iteration for display.
//
// 📚 Methods:
//
//   - Bisection(f, a, b, opts) halves a bracketing interval [a, b] with
//     f(a)·f(b) < 0 until |f(c)| < tol or the half width drops below tol.
//     Linear convergence, guaranteed for continuous f.
//
//   - Newton(f, df, x0, opts) iterates xₙ₊₁ = xₙ − f(xₙ)/f′(xₙ) until
//     |xₙ₊₁ − xₙ| < tol. Quadratic near a simple root, no global guarantee.
//     NewtonExpr derives f′ symbolically from an *expr.Function.
//
// ⚙️ Results:
//
// Every run returns a result carrying the estimate, a Status, the step
// trace and a plot.Figure. Running out of iterations is not fatal: the
// result comes back together with ErrMaxIterations and
// Status == MaxIterationsReached. A vanishing derivative returns the trace
// so far with ErrDerivativeVanished. An invalid bracket fails before any
// iteration.
//
// Options are plain structs; start from DefaultBisectionOptions or
// DefaultNewtonOptions and override fields.
package roots
