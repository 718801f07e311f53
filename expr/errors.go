// SPDX-License-Identifier: MIT

package expr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the umbrella for every parse failure.
	ErrInvalidInput = errors.New("expr: invalid input")

	// ErrSyntax reports malformed text (unexpected token, unbalanced parens).
	ErrSyntax = fmt.Errorf("%w: syntax error", ErrInvalidInput)

	// ErrUnknownSymbol reports a name that is neither the variable, a
	// constant nor a known function.
	ErrUnknownSymbol = fmt.Errorf("%w: unknown symbol", ErrInvalidInput)

	// ErrUnavailable reports that no closed-form antiderivative rule applies,
	// or that the closed form is not finite at the requested bounds.
	ErrUnavailable = errors.New("expr: closed form unavailable")
)
