// SPDX-License-Identifier: MIT

// Package input parses the plain-text forms a user types into the
// engines: numbers, vectors, matrices and point lists.
//
//	Number  "2.5", "-1e-3"
//	Vector  "1, 2, 3" or "1 2 3"
//	Matrix  "2 1; 1 3" or one row per line
//	Points  "0,1; 1,3; 2,7" or one pair per line
//
// Every failure matches ErrInvalidInput through errors.Is.
package input
