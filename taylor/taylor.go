// SPDX-License-Identifier: MIT

package taylor

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/numerics/internal/textfmt"
	"github.com/katalvlaran/numerics/plot"
)

// MaxTerms bounds the series length.
const MaxTerms = 1000

const (
	plotSamples = 400
	plotHalfWin = 3.0
)

// Function selects the series to expand.
type Function int

const (
	Sin Function = iota
	Cos
	Exp
)

func (f Function) String() string {
	switch f {
	case Sin:
		return "sin(x)"
	case Cos:
		return "cos(x)"
	case Exp:
		return "e^x"
	default:
		return fmt.Sprintf("Function(%d)", int(f))
	}
}

// ParseFunction accepts "sin", "cos", "exp" with or without "(x)", and "e^x".
func ParseFunction(s string) (Function, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sin", "sin(x)":
		return Sin, nil
	case "cos", "cos(x)":
		return Cos, nil
	case "exp", "exp(x)", "e^x":
		return Exp, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownFunction, s)
}

// exact is the library value of the function.
func (f Function) exact(x float64) float64 {
	switch f {
	case Sin:
		return math.Sin(x)
	case Cos:
		return math.Cos(x)
	default:
		return math.Exp(x)
	}
}

// series returns the first n terms at x.
func (f Function) series(x float64, n int) []float64 {
	terms := make([]float64, n)
	switch f {
	case Sin:
		terms[0] = x
		for i := 1; i < n; i++ {
			k := float64(2 * i)
			terms[i] = -terms[i-1] * x * x / (k * (k + 1))
		}
	case Cos:
		terms[0] = 1
		for i := 1; i < n; i++ {
			k := float64(2 * i)
			terms[i] = -terms[i-1] * x * x / ((k - 1) * k)
		}
	default:
		terms[0] = 1
		for i := 1; i < n; i++ {
			terms[i] = terms[i-1] * x / float64(i)
		}
	}

	return terms
}

func sum(terms []float64) float64 {
	s := 0.0
	for _, t := range terms {
		s += t
	}

	return s
}

// Result compares the truncated series with the true value.
type Result struct {
	Function Function
	X        float64
	Terms    []float64

	True        float64
	Approximate float64
	AbsError    float64
	// RelError is AbsError/|True|; +Inf when True is 0.
	RelError float64

	Figure *plot.Figure
}

// Approximate evaluates the first terms terms of fn's Maclaurin series at x.
//
// Errors:
//   - ErrUnknownFunction, ErrBadTermCount, ErrNonFinite.
func Approximate(fn Function, x float64, terms int) (*Result, error) {
	if fn < Sin || fn > Exp {
		return nil, fmt.Errorf("Approximate: %w: %d", ErrUnknownFunction, int(fn))
	}
	if terms < 1 || terms > MaxTerms {
		return nil, fmt.Errorf("Approximate: %w: %d not in [1, %d]", ErrBadTermCount, terms, MaxTerms)
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, fmt.Errorf("Approximate: %w: %g", ErrNonFinite, x)
	}

	t := fn.series(x, terms)
	res := &Result{Function: fn, X: x, Terms: t, True: fn.exact(x), Approximate: sum(t)}
	res.AbsError = math.Abs(res.True - res.Approximate)
	if res.True == 0 {
		res.RelError = math.Inf(1)
	} else {
		res.RelError = res.AbsError / math.Abs(res.True)
	}

	approx := func(v float64) float64 { return sum(fn.series(v, terms)) }
	res.Figure = &plot.Figure{Title: "Maclaurin approximation of " + fn.String()}
	res.Figure.
		Add(fn.String(), plot.Line, plot.Sample(fn.exact, x-plotHalfWin, x+plotHalfWin, plotSamples)...).
		Add(fmt.Sprintf("%d terms", terms), plot.Line, plot.Sample(approx, x-plotHalfWin, x+plotHalfWin, plotSamples)...).
		Add("x", plot.Marker, plot.Point{X: x, Y: res.Approximate})

	return res, nil
}

// Report renders the terms and the errors.
func (r *Result) Report() string {
	var sb strings.Builder
	sb.WriteString(textfmt.Section(fmt.Sprintf("Truncation error: %s at x = %g", r.Function, r.X)))
	sb.WriteString("\n")

	rows := make([][]string, len(r.Terms))
	partial := 0.0
	for i, t := range r.Terms {
		partial += t
		rows[i] = []string{textfmt.I(i), textfmt.E(t, 6), textfmt.F(partial, 10)}
	}
	sb.WriteString(textfmt.Table([]string{"i", "term", "partial sum"}, rows))
	fmt.Fprintf(&sb, "\ntrue value        %.8f\n", r.True)
	fmt.Fprintf(&sb, "approximation     %.8f (%d terms)\n", r.Approximate, len(r.Terms))
	fmt.Fprintf(&sb, "absolute error    %.8f\n", r.AbsError)
	fmt.Fprintf(&sb, "relative error    %.8f%%", r.RelError*100)

	return sb.String()
}
