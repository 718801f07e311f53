// SPDX-License-Identifier: MIT

package roots

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/numerics/internal/textfmt"
	"github.com/katalvlaran/numerics/plot"
)

// bisectionSamples is the resolution of the plotted curve.
const bisectionSamples = 400

// BisectionStep is one halving: the bracket [A, B] it started from,
// its midpoint C, f(C) and the bracket width B − A.
type BisectionStep struct {
	N     int
	A, B  float64
	C, FC float64
	Width float64
}

// BisectionResult is the outcome of a Bisection run.
type BisectionResult struct {
	Root       float64
	Iterations int
	Status     Status
	Steps      []BisectionStep
	Figure     *plot.Figure
}

// Bisection locates a root of f inside [a, b].
//
// Implementation:
//   - Stage 1: Validate options; order the ends so a < b; require f(a)·f(b) < 0.
//   - Stage 2: For n = 1..MaxIter take c = (a+b)/2 and record (n, a, b, c, f(c), b−a).
//     Stop when |f(c)| < tol or (b−a)/2 < tol.
//   - Stage 3: Keep the half across which f changes sign.
//
// Errors:
//   - ErrBadTolerance, ErrBadMaxIter for invalid options.
//   - ErrNonFinite if f(a), f(b) or any f(c) is NaN or ±Inf.
//   - ErrInvalidBracket if f(a)·f(b) ≥ 0 (no iteration runs).
//   - ErrMaxIterations (soft) with the populated result.
//
// Complexity: O(MaxIter) evaluations of f.
func Bisection(f Func, a, b float64, opts BisectionOptions) (*BisectionResult, error) {
	if err := validate(opts.Tolerance, opts.MaxIter); err != nil {
		return nil, fmt.Errorf("Bisection: %w", err)
	}
	if a > b {
		a, b = b, a
	}
	fa, fb := f(a), f(b)
	if !finite(fa) || !finite(fb) {
		return nil, fmt.Errorf("Bisection: f(%g)=%g, f(%g)=%g: %w", a, fa, b, fb, ErrNonFinite)
	}
	if fa == 0 || fb == 0 || (fa < 0) == (fb < 0) {
		return nil, fmt.Errorf("Bisection: f(%g)=%g, f(%g)=%g: %w", a, fa, b, fb, ErrInvalidBracket)
	}

	res := &BisectionResult{Status: MaxIterationsReached}
	lo, hi := a, b
	for n := 1; n <= opts.MaxIter; n++ {
		c := (lo + hi) / 2
		fc := f(c)
		if !finite(fc) {
			return nil, fmt.Errorf("Bisection: f(%g)=%g: %w", c, fc, ErrNonFinite)
		}
		res.Steps = append(res.Steps, BisectionStep{N: n, A: lo, B: hi, C: c, FC: fc, Width: hi - lo})
		res.Root, res.Iterations = c, n

		if math.Abs(fc) < opts.Tolerance || (hi-lo)/2 < opts.Tolerance {
			res.Status = Converged

			break
		}
		if (fa < 0) != (fc < 0) {
			hi = c
		} else {
			lo, fa = c, fc
		}
	}
	res.Figure = bisectionFigure(f, a, b, res)

	if res.Status == MaxIterationsReached {
		return res, fmt.Errorf("Bisection: %d iterations, last c=%g: %w", opts.MaxIter, res.Root, ErrMaxIterations)
	}

	return res, nil
}

func bisectionFigure(f Func, a, b float64, res *BisectionResult) *plot.Figure {
	fig := &plot.Figure{Title: "Bisection"}
	fig.Add("f(x)", plot.Line, plot.Sample(f, a-1, b+1, bisectionSamples)...)
	for _, s := range res.Steps {
		fig.Add(fmt.Sprintf("bracket %d", s.N), plot.Span, plot.Point{X: s.A}, plot.Point{X: s.B})
	}
	fig.Add("root", plot.Marker, plot.Point{X: res.Root, Y: f(res.Root)})

	return fig
}

// Report renders the iteration table and the outcome.
func (r *BisectionResult) Report() string {
	rows := make([][]string, 0, len(r.Steps))
	for _, s := range r.Steps {
		rows = append(rows, []string{
			textfmt.I(s.N), textfmt.F(s.A, 6), textfmt.F(s.B, 6),
			textfmt.F(s.C, 6), textfmt.E(s.FC, 3), textfmt.E(s.Width, 3),
		})
	}

	var sb strings.Builder
	sb.WriteString(textfmt.Section("Bisection method"))
	sb.WriteString("\n")
	sb.WriteString(textfmt.Table([]string{"n", "a", "b", "c", "f(c)", "b - a"}, rows))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "status: %s after %d iterations\n", r.Status, r.Iterations)
	fmt.Fprintf(&sb, "root ≈ %.8f", r.Root)

	return sb.String()
}
