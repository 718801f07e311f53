// SPDX-License-Identifier: MIT

package expr

// diff returns d/dx of n, unsimplified.
func diff(n node) node {
	switch t := n.(type) {
	case num, constant:
		return num{v: 0}
	case variable:
		return num{v: 1}
	case negation:
		return negation{x: diff(t.x)}
	case binary:
		return diffBinary(t)
	case call:
		return mul(diffOuter(t.fn, t.arg), diff(t.arg))
	}

	return num{v: 0}
}

func diffBinary(b binary) node {
	u, v := b.l, b.r
	switch b.op {
	case '+', '-':
		return binary{op: b.op, l: diff(u), r: diff(v)}
	case '*':
		// (uv)' = u'v + uv'
		return add(mul(diff(u), v), mul(u, diff(v)))
	case '/':
		// (u/v)' = (u'v − uv') / v²
		return div(sub(mul(diff(u), v), mul(u, diff(v))), pow(v, num{v: 2}))
	}

	// '^'
	switch {
	case isConst(v):
		// (u^c)' = c·u^(c−1)·u'
		return mul(mul(v, pow(u, sub(v, num{v: 1}))), diff(u))
	case isConst(u):
		// (c^v)' = c^v·ln(c)·v'
		return mul(mul(b, call{fn: "ln", arg: u}), diff(v))
	default:
		// (u^v)' = u^v·(v'·ln(u) + v·u'/u)
		return mul(b, add(mul(diff(v), call{fn: "ln", arg: u}), div(mul(v, diff(u)), u)))
	}
}

// diffOuter is the derivative of the named function evaluated at u.
func diffOuter(fn string, u node) node {
	one := num{v: 1}
	switch fn {
	case "sin":
		return call{fn: "cos", arg: u}
	case "cos":
		return negation{x: call{fn: "sin", arg: u}}
	case "tan":
		return add(one, pow(call{fn: "tan", arg: u}, num{v: 2}))
	case "asin":
		return div(one, call{fn: "sqrt", arg: sub(one, pow(u, num{v: 2}))})
	case "acos":
		return negation{x: div(one, call{fn: "sqrt", arg: sub(one, pow(u, num{v: 2}))})}
	case "atan":
		return div(one, add(one, pow(u, num{v: 2})))
	case "sinh":
		return call{fn: "cosh", arg: u}
	case "cosh":
		return call{fn: "sinh", arg: u}
	case "tanh":
		return sub(one, pow(call{fn: "tanh", arg: u}, num{v: 2}))
	case "exp":
		return call{fn: "exp", arg: u}
	case "log", "ln":
		return div(one, u)
	case "sqrt":
		return div(one, mul(num{v: 2}, call{fn: "sqrt", arg: u}))
	case "abs":
		return div(u, call{fn: "abs", arg: u})
	}

	return num{v: 0}
}

func add(l, r node) node { return binary{op: '+', l: l, r: r} }
func sub(l, r node) node { return binary{op: '-', l: l, r: r} }
func mul(l, r node) node { return binary{op: '*', l: l, r: r} }
func div(l, r node) node { return binary{op: '/', l: l, r: r} }
func pow(l, r node) node { return binary{op: '^', l: l, r: r} }
