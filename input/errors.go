// SPDX-License-Identifier: MIT

package input

import "errors"

// ErrInvalidInput is returned for any text that does not parse.
var ErrInvalidInput = errors.New("input: invalid input")
