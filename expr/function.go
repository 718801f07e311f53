// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

// DefaultVariable is the name bound as the free variable unless WithVariable
// says otherwise.
const DefaultVariable = "x"

// Function is a parsed, immutable expression in one real variable.
// It is safe for concurrent use.
type Function struct {
	src     string
	root    node
	varName string
}

// Option configures Parse.
type Option func(*parseOptions)

type parseOptions struct {
	varName string
}

// WithVariable binds name as the free variable.
// Panics if name is not an identifier or shadows a constant or function.
func WithVariable(name string) Option {
	if !isIdent(name) {
		panic(fmt.Sprintf("expr: WithVariable(%q): not an identifier", name))
	}
	if _, ok := constants[name]; ok {
		panic(fmt.Sprintf("expr: WithVariable(%q): reserved constant", name))
	}
	if _, ok := functions[name]; ok {
		panic(fmt.Sprintf("expr: WithVariable(%q): reserved function", name))
	}

	return func(o *parseOptions) { o.varName = name }
}

// Parse reads text into a Function.
// Errors wrap ErrInvalidInput (ErrSyntax or ErrUnknownSymbol) and carry
// the offending offset.
func Parse(text string, opts ...Option) (*Function, error) {
	o := parseOptions{varName: DefaultVariable}
	for _, opt := range opts {
		opt(&o)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	root, err := parse(text, o.varName)
	if err != nil {
		return nil, err
	}

	return &Function{src: text, root: root, varName: o.varName}, nil
}

// MustParse is Parse that panics on error. Intended for tests and fixed literals.
func MustParse(text string, opts ...Option) *Function {
	f, err := Parse(text, opts...)
	if err != nil {
		panic(err)
	}

	return f
}

// Eval returns f(x). Domain errors surface as NaN or ±Inf, never a panic.
func (f *Function) Eval(x float64) float64 { return f.root.eval(x) }

// String prints the expression with minimal parentheses.
func (f *Function) String() string { return f.root.String() }

// Source returns the text Parse was given.
func (f *Function) Source() string { return f.src }

// Variable returns the name of the free variable.
func (f *Function) Variable() string { return f.varName }

// Derivative returns the simplified symbolic derivative d/dx f.
func (f *Function) Derivative() *Function {
	d := simplify(diff(f.root))

	return &Function{src: d.String(), root: d, varName: f.varName}
}

// Antiderivative returns a symbolic F with F' = f, constant term omitted.
// It returns ErrUnavailable when no integration rule applies.
func (f *Function) Antiderivative() (*Function, error) {
	in, ok := integrate(simplify(f.root), variable{name: f.varName})
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, f.root)
	}
	in = simplify(in)

	return &Function{src: in.String(), root: in, varName: f.varName}, nil
}

// DefiniteIntegral returns F(b) - F(a) for the symbolic antiderivative F.
// It returns ErrUnavailable when there is no antiderivative, when F is not
// finite at either bound, or when f has a pole or leaves its domain strictly
// between a and b.
func (f *Function) DefiniteIntegral(a, b float64) (float64, error) {
	F, err := f.Antiderivative()
	if err != nil {
		return 0, err
	}
	if a != b {
		if err = f.checkInterior(math.Min(a, b), math.Max(a, b)); err != nil {
			return 0, err
		}
	}
	v := F.Eval(b) - F.Eval(a)
	if !finite(v) {
		return 0, fmt.Errorf("%w: antiderivative %s is not finite on [%g, %g]", ErrUnavailable, F, a, b)
	}

	return v, nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}

		return false
	}

	return true
}
