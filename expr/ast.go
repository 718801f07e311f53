// SPDX-License-Identifier: MIT

package expr

import (
	"math"
	"strconv"
)

// node is the sealed AST. Every variant evaluates itself and prints itself
// with the minimum parentheses its precedence needs.
type node interface {
	eval(x float64) float64
	String() string
	prec() int
}

// Precedence levels used by the printer.
const (
	precSum = iota + 1
	precProduct
	precUnary
	precPower
	precAtom
)

type (
	num      struct{ v float64 }
	variable struct{ name string }
	constant struct {
		name string
		v    float64
	}
	negation struct{ x node }
	binary   struct {
		op   byte // one of + - * / ^
		l, r node
	}
	call struct {
		fn  string
		arg node
	}
)

var constants = map[string]float64{
	"e":  math.E,
	"pi": math.Pi,
}

var functions = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"asin": math.Asin,
	"acos": math.Acos,
	"atan": math.Atan,
	"sinh": math.Sinh,
	"cosh": math.Cosh,
	"tanh": math.Tanh,
	"exp":  math.Exp,
	"log":  math.Log,
	"ln":   math.Log,
	"sqrt": math.Sqrt,
	"abs":  math.Abs,
}

func (n num) eval(float64) float64 { return n.v }
func (n num) String() string       { return strconv.FormatFloat(n.v, 'g', -1, 64) }
func (n num) prec() int {
	if n.v < 0 {
		return precUnary
	}

	return precAtom
}

func (variable) eval(x float64) float64 { return x }
func (v variable) String() string       { return v.name }
func (variable) prec() int              { return precAtom }

func (c constant) eval(float64) float64 { return c.v }
func (c constant) String() string       { return c.name }
func (constant) prec() int              { return precAtom }

func (n negation) eval(x float64) float64 { return -n.x.eval(x) }
func (n negation) String() string         { return "-" + wrap(n.x, n.x.prec() < precUnary) }
func (negation) prec() int                { return precUnary }

func (b binary) eval(x float64) float64 {
	l, r := b.l.eval(x), b.r.eval(x)
	switch b.op {
	case '+':
		return l + r
	case '-':
		return l - r
	case '*':
		return l * r
	case '/':
		return l / r
	default:
		return math.Pow(l, r)
	}
}

func (b binary) prec() int {
	switch b.op {
	case '+', '-':
		return precSum
	case '*', '/':
		return precProduct
	default:
		return precPower
	}
}

func (b binary) String() string {
	p := b.prec()
	var left, right string
	switch b.op {
	case '^':
		// Right associative: the base needs parens at equal precedence.
		left = wrap(b.l, b.l.prec() <= p)
		right = wrap(b.r, b.r.prec() < p)
	case '-', '/':
		left = wrap(b.l, b.l.prec() < p)
		right = wrap(b.r, b.r.prec() <= p)
	default:
		left = wrap(b.l, b.l.prec() < p)
		right = wrap(b.r, b.r.prec() < p)
	}
	if p == precSum {
		return left + " " + string(b.op) + " " + right
	}

	return left + string(b.op) + right
}

func (c call) eval(x float64) float64 { return functions[c.fn](c.arg.eval(x)) }
func (c call) String() string         { return c.fn + "(" + c.arg.String() + ")" }
func (call) prec() int                { return precAtom }

func wrap(n node, paren bool) string {
	if paren {
		return "(" + n.String() + ")"
	}

	return n.String()
}

// isConst reports whether n does not depend on the variable.
func isConst(n node) bool {
	switch t := n.(type) {
	case num, constant:
		return true
	case variable:
		return false
	case negation:
		return isConst(t.x)
	case binary:
		return isConst(t.l) && isConst(t.r)
	case call:
		return isConst(t.arg)
	}

	return false
}

// isNum reports whether n is the literal v.
func isNum(n node, v float64) bool {
	t, ok := n.(num)

	return ok && t.v == v
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
