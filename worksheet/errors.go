// SPDX-License-Identifier: MIT

package worksheet

import "errors"

var (
	// ErrUnknownFormat is returned for a file extension or format name with no decoder.
	ErrUnknownFormat = errors.New("worksheet: unknown format")

	// ErrDecode wraps a syntax or type error reported by a decoder.
	ErrDecode = errors.New("worksheet: decode failed")

	// ErrUnknownKind is returned for a problem kind outside the closed set.
	ErrUnknownKind = errors.New("worksheet: unknown problem kind")

	// ErrMissingField is returned when a problem lacks a field its kind requires.
	ErrMissingField = errors.New("worksheet: missing field")

	// ErrInvalidField is returned for an unknown key or an out-of-range value.
	ErrInvalidField = errors.New("worksheet: invalid field")
)
