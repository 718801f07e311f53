// SPDX-License-Identifier: MIT

// Package poly provides a small immutable polynomial value type shared by
// the Lagrange interpolator and the polynomial least-squares models.
//
// Coefficients are stored in ascending powers: c[0] + c[1]x + … + c[n]xⁿ.
package poly

import (
	"fmt"
	"math"
	"strings"
)

// DisplayEpsilon is the magnitude under which String omits a term.
const DisplayEpsilon = 1e-10

// Polynomial is an immutable real polynomial. The zero value is the zero polynomial.
type Polynomial struct {
	c []float64 // ascending powers; never aliased outside the package
}

// New returns the polynomial with the given ascending coefficients.
// The slice is copied.
func New(ascending ...float64) Polynomial {
	c := make([]float64, len(ascending))
	copy(c, ascending)

	return Polynomial{c: c}
}

// Constant returns the degree-0 polynomial v.
func Constant(v float64) Polynomial { return Polynomial{c: []float64{v}} }

// Coeffs returns a copy of the ascending coefficients.
func (p Polynomial) Coeffs() []float64 {
	out := make([]float64, len(p.c))
	copy(out, p.c)

	return out
}

// Descending returns a copy of the coefficients from the highest power down,
// trimmed to Degree()+1 entries.
func (p Polynomial) Descending() []float64 {
	d := p.Degree()
	out := make([]float64, d+1)
	for i := 0; i <= d && i < len(p.c); i++ {
		out[d-i] = p.c[i]
	}

	return out
}

// Degree returns the highest power carrying a non-zero coefficient.
// The zero polynomial has degree 0.
func (p Polynomial) Degree() int {
	for i := len(p.c) - 1; i > 0; i-- {
		if p.c[i] != 0 {
			return i
		}
	}

	return 0
}

// Eval evaluates p at x with Horner's scheme.
func (p Polynomial) Eval(x float64) float64 {
	acc := 0.0
	for i := len(p.c) - 1; i >= 0; i-- {
		acc = acc*x + p.c[i]
	}

	return acc
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	n := max(len(p.c), len(q.c))
	out := make([]float64, n)
	copy(out, p.c)
	for i, v := range q.c {
		out[i] += v
	}

	return Polynomial{c: out}
}

// Scale returns k·p.
func (p Polynomial) Scale(k float64) Polynomial {
	out := make([]float64, len(p.c))
	for i, v := range p.c {
		out[i] = k * v
	}

	return Polynomial{c: out}
}

// Mul returns p·q (coefficient convolution).
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if len(p.c) == 0 || len(q.c) == 0 {
		return Polynomial{}
	}
	out := make([]float64, len(p.c)+len(q.c)-1)
	for i, a := range p.c {
		if a == 0 {
			continue
		}
		for j, b := range q.c {
			out[i+j] += a * b
		}
	}

	return Polynomial{c: out}
}

// String formats p with 4 decimals, highest power first.
func (p Polynomial) String() string { return p.Format(4) }

// Format renders p as "a*x^n + … + b*x + c" with the given number of
// decimals, skipping terms with |coefficient| <= DisplayEpsilon.
func (p Polynomial) Format(decimals int) string {
	var sb strings.Builder
	for i := len(p.c) - 1; i >= 0; i-- {
		c := p.c[i]
		if math.Abs(c) <= DisplayEpsilon {
			continue
		}
		switch {
		case sb.Len() == 0 && c < 0:
			sb.WriteString("-")
		case sb.Len() > 0 && c < 0:
			sb.WriteString(" - ")
		case sb.Len() > 0:
			sb.WriteString(" + ")
		}
		fmt.Fprintf(&sb, "%.*f", decimals, math.Abs(c))
		switch i {
		case 0:
		case 1:
			sb.WriteString("*x")
		default:
			fmt.Fprintf(&sb, "*x^%d", i)
		}
	}
	if sb.Len() == 0 {
		return fmt.Sprintf("%.*f", decimals, 0.0)
	}

	return sb.String()
}
