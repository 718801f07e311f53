// SPDX-License-Identifier: MIT

package taylor

import "errors"

var (
	// ErrBadTermCount indicates terms < 1 or terms > MaxTerms.
	ErrBadTermCount = errors.New("taylor: term count out of range")

	// ErrUnknownFunction indicates a function other than sin, cos or exp.
	ErrUnknownFunction = errors.New("taylor: unknown function")

	// ErrNonFinite indicates a NaN or infinite evaluation point.
	ErrNonFinite = errors.New("taylor: x must be finite")
)
