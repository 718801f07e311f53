// SPDX-License-Identifier: MIT

package expr

import "math"

// simplify folds constants and removes additive/multiplicative identities,
// bottom-up. It is not a canonicaliser; it only keeps derivatives and
// antiderivatives readable.
func simplify(n node) node {
	switch t := n.(type) {
	case negation:
		x := simplify(t.x)
		switch u := x.(type) {
		case num:
			return num{v: -u.v}
		case negation:
			return u.x
		}

		return negation{x: x}
	case call:
		arg := simplify(t.arg)
		if a, ok := arg.(num); ok {
			if v := functions[t.fn](a.v); finite(v) && math.Trunc(v) == v {
				// Fold only exact integers (cos(0), exp(0)) so output stays exact.
				return num{v: v}
			}
		}

		return call{fn: t.fn, arg: arg}
	case binary:
		return simplifyBinary(t.op, simplify(t.l), simplify(t.r))
	}

	return n
}

func simplifyBinary(op byte, l, r node) node {
	ln, lok := l.(num)
	rn, rok := r.(num)
	if lok && rok {
		if v := (binary{op: op, l: ln, r: rn}).eval(0); finite(v) {
			return num{v: v}
		}
	}

	switch op {
	case '+':
		if isNum(l, 0) {
			return r
		}
		if isNum(r, 0) {
			return l
		}
		if rok && rn.v < 0 {
			return binary{op: '-', l: l, r: num{v: -rn.v}}
		}
		if neg, ok := r.(negation); ok {
			return binary{op: '-', l: l, r: neg.x}
		}
	case '-':
		if isNum(r, 0) {
			return l
		}
		if isNum(l, 0) {
			return simplify(negation{x: r})
		}
		if neg, ok := r.(negation); ok {
			return binary{op: '+', l: l, r: neg.x}
		}
	case '*':
		if isNum(l, 0) || isNum(r, 0) {
			return num{v: 0}
		}
		if isNum(l, 1) {
			return r
		}
		if isNum(r, 1) {
			return l
		}
		if isNum(l, -1) {
			return simplify(negation{x: r})
		}
		if isNum(r, -1) {
			return simplify(negation{x: l})
		}
		// Keep numeric factors in front: x*3 → 3*x.
		if rok && !lok {
			return simplifyBinary('*', r, l)
		}
		// 2*(3*x) → 6*x
		if inner, ok := r.(binary); ok && lok && inner.op == '*' {
			if in, ok := inner.l.(num); ok {
				return simplifyBinary('*', num{v: ln.v * in.v}, inner.r)
			}
		}
		if neg, ok := l.(negation); ok {
			return simplify(negation{x: simplifyBinary('*', neg.x, r)})
		}
		if neg, ok := r.(negation); ok {
			return simplify(negation{x: simplifyBinary('*', l, neg.x)})
		}
	case '/':
		if isNum(r, 1) {
			return l
		}
		if isNum(l, 0) && !isNum(r, 0) {
			return num{v: 0}
		}
	case '^':
		if isNum(r, 0) {
			return num{v: 1}
		}
		if isNum(r, 1) {
			return l
		}
		if isNum(l, 1) {
			return num{v: 1}
		}
	}

	return binary{op: op, l: l, r: r}
}
