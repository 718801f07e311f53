// SPDX-License-Identifier: MIT

// Package floatbits decomposes a decimal number into its IEEE-754 single
// (1/8/23) and double (1/11/52) precision encodings.
//
// For each precision the analysis exposes the sign, exponent and mantissa
// bit strings, the raw pattern, the bias and the class of the value, and a
// value reconstructed from the bit strings alone:
//
//	normal     (-1)^s × 1.m × 2^(e−bias)
//	subnormal  (-1)^s × 0.m × 2^(1−bias)
//	zero, ±Inf and NaN by their reserved exponent patterns
//
// The reconstruction never reuses the converted float, so Error measures the
// rounding of the encoding and nothing else.
//
// ⚙️ Usage:
//
//	a, err := floatbits.Decompose("0.1")
//	if err != nil {
//	  // errors.Is(err, floatbits.ErrInvalidInput)
//	}
//	fmt.Println(a.Single.Exponent) // 01111011
//	fmt.Println(a.Single.Error)    // ≈ -1.49e-09
//
// Single precision is obtained by rounding the parsed double to nearest.
// Literals beyond the double range parse to ±Inf and are analysed as such.
package floatbits
