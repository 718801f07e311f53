// SPDX-License-Identifier: MIT

package roots

import "errors"

var (
	// ErrInvalidBracket indicates f(a)·f(b) ≥ 0: the interval does not bracket a sign change.
	ErrInvalidBracket = errors.New("roots: f(a) and f(b) must have opposite signs")

	// ErrDerivativeVanished indicates |f′(xₙ)| fell below the Newton guard; the
	// partial trace is returned with it.
	ErrDerivativeVanished = errors.New("roots: derivative vanished")

	// ErrMaxIterations indicates the iteration budget ran out before convergence.
	// It is soft: the best estimate and the full trace are returned with it.
	ErrMaxIterations = errors.New("roots: maximum iterations reached")

	// ErrBadTolerance indicates a tolerance that is not a positive finite number.
	ErrBadTolerance = errors.New("roots: tolerance must be positive and finite")

	// ErrBadMaxIter indicates a non-positive iteration budget.
	ErrBadMaxIter = errors.New("roots: max iterations must be positive")

	// ErrNonFinite indicates f or f′ produced NaN or ±Inf.
	ErrNonFinite = errors.New("roots: function value is not finite")
)
