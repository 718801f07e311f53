// SPDX-License-Identifier: MIT

package expr

import (
	"math"

	"github.com/katalvlaran/numerics/poly"
)

// maxPolyPower caps integer exponents expanded by toPoly.
const maxPolyPower = 32

// integrate returns an antiderivative of n with respect to v, or false when
// no rule applies. Rules are tried from the most structural (keeps output
// readable) to the polynomial expansion fallback.
func integrate(n node, v variable) (node, bool) {
	if isConst(n) {
		return mul(n, v), true
	}

	switch t := n.(type) {
	case variable:
		return div(pow(v, num{v: 2}), num{v: 2}), true
	case negation:
		in, ok := integrate(t.x, v)
		if !ok {
			return nil, false
		}

		return negation{x: in}, true
	case binary:
		if out, ok := integrateBinary(t, v); ok {
			return out, true
		}
	case call:
		if out, ok := integrateCall(t, v); ok {
			return out, true
		}
	}

	// Fallback: products and powers of polynomials expand exactly.
	if p, ok := toPoly(n); ok {
		return fromPoly(integratePoly(p), v), true
	}

	return nil, false
}

func integrateBinary(b binary, v variable) (node, bool) {
	switch b.op {
	case '+', '-':
		l, ok := integrate(b.l, v)
		if !ok {
			return nil, false
		}
		r, ok := integrate(b.r, v)
		if !ok {
			return nil, false
		}

		return binary{op: b.op, l: l, r: r}, true
	case '*':
		if isConst(b.l) {
			if in, ok := integrate(b.r, v); ok {
				return mul(b.l, in), true
			}
		}
		if isConst(b.r) {
			if in, ok := integrate(b.l, v); ok {
				return mul(b.r, in), true
			}
		}
	case '/':
		if isConst(b.r) {
			if in, ok := integrate(b.l, v); ok {
				return div(in, b.r), true
			}
		}
		// c / (a·x + k) → c·ln|a·x + k| / a
		if a, ok := linearSlope(b.r); ok && isConst(b.l) {
			return div(mul(b.l, call{fn: "ln", arg: call{fn: "abs", arg: b.r}}), num{v: a}), true
		}
	case '^':
		return integratePower(b)
	}

	return nil, false
}

func integratePower(b binary) (node, bool) {
	// (a·x + k)^c
	if isConst(b.r) {
		a, ok := linearSlope(b.l)
		if !ok {
			return nil, false
		}
		c := b.r.eval(0)
		if !finite(c) {
			return nil, false
		}
		if c == -1 {
			return div(call{fn: "ln", arg: call{fn: "abs", arg: b.l}}, num{v: a}), true
		}
		k := simplify(add(b.r, num{v: 1}))

		return div(pow(b.l, k), mul(num{v: a}, k)), true
	}
	// c^(a·x + k) → c^u / (a·ln c)
	if isConst(b.l) {
		a, ok := linearSlope(b.r)
		if !ok {
			return nil, false
		}
		if base := b.l.eval(0); base <= 0 || base == 1 || !finite(base) {
			return nil, false
		}

		return div(b, mul(num{v: a}, call{fn: "ln", arg: b.l})), true
	}

	return nil, false
}

func integrateCall(c call, v variable) (node, bool) {
	a, ok := linearSlope(c.arg)
	if !ok {
		return nil, false
	}
	u := c.arg
	var f node
	switch c.fn {
	case "sin":
		f = negation{x: call{fn: "cos", arg: u}}
	case "cos":
		f = call{fn: "sin", arg: u}
	case "tan":
		f = negation{x: call{fn: "ln", arg: call{fn: "abs", arg: call{fn: "cos", arg: u}}}}
	case "exp":
		f = call{fn: "exp", arg: u}
	case "sinh":
		f = call{fn: "cosh", arg: u}
	case "cosh":
		f = call{fn: "sinh", arg: u}
	case "log", "ln":
		f = sub(mul(u, call{fn: "ln", arg: u}), u)
	case "sqrt":
		f = mul(div(num{v: 2}, num{v: 3}), pow(u, div(num{v: 3}, num{v: 2})))
	default:
		return nil, false
	}
	if a == 1 {
		return f, true
	}

	return div(f, num{v: a}), true
}

// linearSlope returns a when n = a·x + k with a a finite non-zero constant.
func linearSlope(n node) (float64, bool) {
	if isConst(n) {
		return 0, false
	}
	d := simplify(diff(n))
	if !isConst(d) {
		return 0, false
	}
	a := d.eval(0)
	if a == 0 || !finite(a) {
		return 0, false
	}

	return a, true
}

// toPoly converts n to a polynomial in the variable when it is one.
func toPoly(n node) (poly.Polynomial, bool) {
	switch t := n.(type) {
	case num, constant:
		return poly.Constant(t.eval(0)), true
	case variable:
		return poly.New(0, 1), true
	case negation:
		p, ok := toPoly(t.x)

		return p.Scale(-1), ok
	case call:
		if isConst(t) {
			return poly.Constant(t.eval(0)), true
		}
	case binary:
		l, lok := toPoly(t.l)
		switch t.op {
		case '+', '-', '*':
			r, rok := toPoly(t.r)
			if !lok || !rok {
				return poly.Polynomial{}, false
			}
			switch t.op {
			case '+':
				return l.Add(r), true
			case '-':
				return l.Add(r.Scale(-1)), true
			default:
				return l.Mul(r), true
			}
		case '/':
			if !lok || !isConst(t.r) {
				return poly.Polynomial{}, false
			}
			d := t.r.eval(0)
			if d == 0 || !finite(d) {
				return poly.Polynomial{}, false
			}

			return l.Scale(1 / d), true
		case '^':
			if !lok || !isConst(t.r) {
				return poly.Polynomial{}, false
			}
			k := t.r.eval(0)
			if k < 0 || k > maxPolyPower || math.Trunc(k) != k {
				return poly.Polynomial{}, false
			}
			out := poly.Constant(1)
			for i := 0; i < int(k); i++ {
				out = out.Mul(l)
			}

			return out, true
		}
	}

	return poly.Polynomial{}, false
}

// integratePoly returns the antiderivative with zero constant term.
func integratePoly(p poly.Polynomial) poly.Polynomial {
	c := p.Coeffs()
	out := make([]float64, len(c)+1)
	for i, v := range c {
		out[i+1] = v / float64(i+1)
	}

	return poly.New(out...)
}

// fromPoly builds c₀ + c₁x + … as an AST, skipping zero terms.
func fromPoly(p poly.Polynomial, v variable) node {
	var out node
	for i, c := range p.Coeffs() {
		if c == 0 {
			continue
		}
		var term node
		switch i {
		case 0:
			term = num{v: c}
		case 1:
			term = mul(num{v: c}, v)
		default:
			term = mul(num{v: c}, pow(v, num{v: float64(i)}))
		}
		if out == nil {
			out = term
		} else {
			out = add(out, term)
		}
	}
	if out == nil {
		return num{v: 0}
	}

	return out
}
