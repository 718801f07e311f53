// SPDX-License-Identifier: MIT

// Package expr parses single-variable real expressions and evaluates,
// differentiates and (when a rule applies) integrates them symbolically.
//
// ⚙️ Usage:
//
//	f, err := expr.Parse("x**3 - x - 2")
//	if err != nil {
//	  // errors.Is(err, expr.ErrInvalidInput)
//	}
//	y := f.Eval(1.5)               // -0.125
//	df := f.Derivative()           // 3*x^2 - 1
//	v, err := f.DefiniteIntegral(0, 2)
//
// Grammar (lowest to highest precedence):
//
//	sum     = product { ("+" | "-") product }
//	product = unary { ("*" | "/") unary }
//	unary   = ("+" | "-") unary | power
//	power   = primary [ ("^" | "**") unary ]
//	primary = number | name | name "(" sum ")" | "(" sum ")"
//
// Power is right associative and binds tighter than unary minus, so -x^2
// is -(x^2). Recognised names are the variable (x unless WithVariable says
// otherwise), the constants e and pi, and the functions sin cos tan asin
// acos atan sinh cosh tanh exp log ln sqrt abs (log is the natural log).
//
// Antiderivatives are rule based: polynomials, powers and reciprocals of
// linear terms, sin/cos/tan/exp/sinh/cosh/log/sqrt of a linear argument,
// constant multiples and sums of those. Anything else reports ErrUnavailable.
package expr
