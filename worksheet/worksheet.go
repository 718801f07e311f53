// SPDX-License-Identifier: MIT

package worksheet

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/numerics/roots"
)

// Kind selects the engine a problem runs on.
type Kind int

const (
	KindInvalid Kind = iota
	KindFloat
	KindBisection
	KindNewton
	KindGauss
	KindLagrange
	KindLSQ
	KindQuad
	KindTaylor
)

var kindNames = [...]string{
	KindInvalid:   "invalid",
	KindFloat:     "float",
	KindBisection: "bisection",
	KindNewton:    "newton",
	KindGauss:     "gauss",
	KindLagrange:  "lagrange",
	KindLSQ:       "lsq",
	KindQuad:      "quad",
	KindTaylor:    "taylor",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// ParseKind maps a kind name, case-insensitively, to its Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k := KindFloat; int(k) < len(kindNames); k++ {
		if kindNames[k] == name {
			return k, nil
		}
	}

	return KindInvalid, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Model selects the least-squares model of a KindLSQ problem.
type Model int

const (
	ModelInvalid Model = iota
	ModelLinear
	ModelPolynomial
	ModelExponential
	ModelFourier
)

var modelNames = [...]string{
	ModelInvalid:     "invalid",
	ModelLinear:      "linear",
	ModelPolynomial:  "polynomial",
	ModelExponential: "exponential",
	ModelFourier:     "fourier",
}

func (m Model) String() string {
	if m < 0 || int(m) >= len(modelNames) {
		return fmt.Sprintf("Model(%d)", int(m))
	}

	return modelNames[m]
}

// ParseModel maps a model name, case-insensitively, to its Model.
func ParseModel(s string) (Model, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for m := ModelLinear; int(m) < len(modelNames); m++ {
		if modelNames[m] == name {
			return m, nil
		}
	}

	return ModelInvalid, fmt.Errorf("%w: model %q", ErrInvalidField, s)
}

// Rule selects the quadrature rule of a KindQuad problem.
type Rule int

const (
	RuleInvalid Rule = iota
	RuleTrapezoid
	RuleSimpson13
	RuleSimpson38
	RuleGauss
)

var ruleNames = [...]string{
	RuleInvalid:   "invalid",
	RuleTrapezoid: "trapezoid",
	RuleSimpson13: "simpson13",
	RuleSimpson38: "simpson38",
	RuleGauss:     "gauss",
}

func (r Rule) String() string {
	if r < 0 || int(r) >= len(ruleNames) {
		return fmt.Sprintf("Rule(%d)", int(r))
	}

	return ruleNames[r]
}

// ParseRule maps a rule name, case-insensitively, to its Rule.
func ParseRule(s string) (Rule, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for r := RuleTrapezoid; int(r) < len(ruleNames); r++ {
		if ruleNames[r] == name {
			return r, nil
		}
	}

	return RuleInvalid, fmt.Errorf("%w: rule %q", ErrInvalidField, s)
}

// Defaults apply to every problem that does not override them.
type Defaults struct {
	// Tolerance is the stopping tolerance of the root finders.
	Tolerance float64
	// MaxIter is the root finders' iteration budget; 0 keeps each method's own default.
	MaxIter int
	// Pivoting enables partial pivoting in Gaussian elimination.
	Pivoting bool
}

// DefaultDefaults returns Tolerance 1e-6, MaxIter 0 and Pivoting on.
func DefaultDefaults() Defaults {
	return Defaults{Tolerance: roots.DefaultTolerance, Pivoting: true}
}

// Problem is one decoded, validated worksheet entry. Which fields are used
// depends on Kind; pointer fields are nil when absent.
type Problem struct {
	Name string
	Kind Kind

	// Value is the decimal text for KindFloat.
	Value string
	// Function is an expression, or a series name for KindTaylor.
	Function string

	A, B *float64
	X0   *float64
	// X is the taylor evaluation point or the lagrange estimate point.
	X *float64

	Tolerance *float64
	MaxIter   *int
	Pivoting  *bool

	Matrix string
	RHS    string
	Points string

	// Degree is the polynomial degree or the number of harmonics.
	Model  Model
	Degree int

	// N is the subinterval count or the Gauss order.
	Rule Rule
	N    int

	Terms int
}

// Worksheet is a named, ordered list of problems.
type Worksheet struct {
	Name     string
	Defaults Defaults
	Problems []Problem
}
