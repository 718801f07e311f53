// SPDX-License-Identifier: MIT

package quad

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/katalvlaran/numerics/internal/textfmt"
	"github.com/katalvlaran/numerics/plot"
)

const plotSamples = 200

// Integrand is a real function to integrate.
type Integrand interface {
	Eval(x float64) float64
}

// exactIntegrand is implemented by integrands with a closed-form integral,
// such as *expr.Function.
type exactIntegrand interface {
	DefiniteIntegral(a, b float64) (float64, error)
}

// Func adapts a plain function to Integrand.
type Func func(float64) float64

// Eval returns f(x).
func (f Func) Eval(x float64) float64 { return f(x) }

// Sample is one Newton–Cotes abscissa with its integer weight.
type Sample struct {
	I      int
	X, FX  float64
	Weight float64
}

// Node is one Gauss–Legendre node: T and W on [−1, 1], X mapped into [a, b].
type Node struct {
	T, W  float64
	X, FX float64
}

// Result is an approximation with its trace.
type Result struct {
	Rule    string
	Formula string
	A, B    float64
	Value   float64

	// ExactKnown reports whether Exact and AbsError are meaningful.
	ExactKnown bool
	Exact      float64
	AbsError   float64

	// H is the step (Newton–Cotes only); N is the subinterval count or the
	// Gauss order; Factor multiplies the weighted sum.
	H      float64
	N      int
	Factor float64

	Samples []Sample // Newton–Cotes
	Nodes   []Node   // Gauss–Legendre

	Figure *plot.Figure
}

// Integrate approximates ∫ₐᵇ f(x)dx with rule. b < a yields the negated integral.
//
// Errors:
//   - ErrNilIntegrand for a nil f or rule.
//   - ErrBadInterval for non-finite bounds.
//   - ErrInvalidSubdivisionCount, ErrUnsupportedOrder from the rule.
//   - ErrNonFinite if f is NaN or ±Inf at any sample.
//
// Complexity: O(N) evaluations (O(n) for Gauss–Legendre).
func Integrate(f Integrand, a, b float64, rule Rule) (*Result, error) {
	if isNil(f) || isNil(rule) {
		return nil, fmt.Errorf("Integrate: %w", ErrNilIntegrand)
	}
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return nil, fmt.Errorf("Integrate: [%g, %g]: %w", a, b, ErrBadInterval)
	}
	if err := rule.validate(); err != nil {
		return nil, fmt.Errorf("Integrate: %w", err)
	}

	res := &Result{Rule: rule.Name(), Formula: rule.Formula(), A: a, B: b}
	if err := rule.apply(f, a, b, res); err != nil {
		return nil, fmt.Errorf("Integrate: %s: %w", rule.Name(), err)
	}
	if ex, ok := f.(exactIntegrand); ok {
		if v, err := ex.DefiniteIntegral(a, b); err == nil {
			res.ExactKnown, res.Exact, res.AbsError = true, v, math.Abs(res.Value-v)
		}
	}
	res.Figure = figure(f, res)

	return res, nil
}

// isNil reports a nil interface or one holding a nil pointer or func, such
// as a (*expr.Function)(nil).
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Interface:
		return rv.IsNil()
	}

	return false
}

func figure(f Integrand, r *Result) *plot.Figure {
	lo, hi := math.Min(r.A, r.B), math.Max(r.A, r.B)
	fig := &plot.Figure{Title: "Integration: " + r.Rule}
	fig.Add("f(x)", plot.Line, plot.Sample(f.Eval, lo, hi, plotSamples)...)
	if r.Samples != nil {
		pts := make([]plot.Point, len(r.Samples))
		for i, s := range r.Samples {
			pts[i] = plot.Point{X: s.X, Y: s.FX}
		}
		fig.Add("area", plot.Area, pts...)
		fig.Add("samples", plot.Scatter, pts...)
	}
	if r.Nodes != nil {
		pts := make([]plot.Point, len(r.Nodes))
		for i, n := range r.Nodes {
			pts[i] = plot.Point{X: n.X, Y: n.FX}
		}
		fig.Add("area", plot.Area, plot.Sample(f.Eval, lo, hi, plotSamples)...)
		fig.Add("nodes", plot.Scatter, pts...)
	}

	return fig
}

// Report renders the formula, the sample or node table and the value.
func (r *Result) Report() string {
	var sb strings.Builder
	sb.WriteString(textfmt.Section("Numerical integration: " + r.Rule))
	fmt.Fprintf(&sb, "\nformula: %s\n", r.Formula)
	fmt.Fprintf(&sb, "interval [%g, %g]", r.A, r.B)
	if r.Samples != nil {
		fmt.Fprintf(&sb, ", N = %d, h = %.6f\n", r.N, r.H)
		rows := make([][]string, len(r.Samples))
		for i, s := range r.Samples {
			rows[i] = []string{textfmt.I(s.I), textfmt.F(s.X, 6), textfmt.F(s.FX, 6), textfmt.F(s.Weight, 0)}
		}
		sb.WriteString(textfmt.Table([]string{"i", "x_i", "f(x_i)", "weight"}, rows))
	} else {
		fmt.Fprintf(&sb, ", n = %d nodes\n", r.N)
		rows := make([][]string, len(r.Nodes))
		for i, n := range r.Nodes {
			rows[i] = []string{textfmt.F(n.T, 10), textfmt.F(n.W, 10), textfmt.F(n.X, 6), textfmt.F(n.FX, 6)}
		}
		sb.WriteString(textfmt.Table([]string{"t_i", "w_i", "x_i", "f(x_i)"}, rows))
	}
	fmt.Fprintf(&sb, "\nintegral ≈ %.10f", r.Value)
	if r.ExactKnown {
		fmt.Fprintf(&sb, "\nexact     = %.10f\nabs error = %s", r.Exact, textfmt.E(r.AbsError, 3))
	}

	return sb.String()
}
