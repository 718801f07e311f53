// SPDX-License-Identifier: MIT

package interp

import "errors"

var (
	// ErrEmptyInput indicates no interpolation nodes were given.
	ErrEmptyInput = errors.New("interp: no points")

	// ErrDuplicateAbscissa indicates two nodes share the same x.
	ErrDuplicateAbscissa = errors.New("interp: duplicate abscissa")

	// ErrNonFinite indicates a node coordinate is NaN or ±Inf.
	ErrNonFinite = errors.New("interp: non-finite coordinate")
)
