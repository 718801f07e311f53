// SPDX-License-Identifier: MIT

package lsq

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/numerics/matrix"
)

var (
	// ErrInvalidModel indicates a model that cannot be fitted to the data:
	// a negative degree, fewer than one harmonic, or y ≤ 0 for Exponential.
	ErrInvalidModel = errors.New("lsq: invalid model")

	// ErrInsufficientData indicates fewer points than model unknowns.
	ErrInsufficientData = errors.New("lsq: not enough points for the model")

	// ErrNonFinite indicates a NaN or ±Inf coordinate.
	ErrNonFinite = errors.New("lsq: non-finite coordinate")

	// ErrSingular indicates AᵗA is singular (for instance repeated x with a
	// polynomial of too high a degree). It wraps matrix.ErrSingular.
	ErrSingular = fmt.Errorf("lsq: singular normal equations: %w", matrix.ErrSingular)
)
