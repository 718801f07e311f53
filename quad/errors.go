// SPDX-License-Identifier: MIT

package quad

import "errors"

var (
	// ErrInvalidSubdivisionCount indicates an N the rule cannot use:
	// N < 1 for Trapezoid, odd N for Simpson 1/3, N not a multiple of 3 for Simpson 3/8.
	ErrInvalidSubdivisionCount = errors.New("quad: invalid number of subintervals")

	// ErrUnsupportedOrder indicates a Gauss–Legendre order outside {2, 3, 4}.
	ErrUnsupportedOrder = errors.New("quad: unsupported Gauss-Legendre order")

	// ErrBadInterval indicates a NaN or infinite bound.
	ErrBadInterval = errors.New("quad: integration bounds must be finite")

	// ErrNonFinite indicates the integrand produced NaN or ±Inf at a sample.
	ErrNonFinite = errors.New("quad: integrand is not finite at a sample point")

	// ErrNilIntegrand indicates a nil Integrand or Rule.
	ErrNilIntegrand = errors.New("quad: nil integrand or rule")
)
