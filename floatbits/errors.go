// SPDX-License-Identifier: MIT

package floatbits

import "errors"

// ErrInvalidInput is returned when the text is not a decimal floating-point literal.
var ErrInvalidInput = errors.New("floatbits: invalid input")
