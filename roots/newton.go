// SPDX-License-Identifier: MIT

package roots

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/numerics/expr"
	"github.com/katalvlaran/numerics/internal/textfmt"
	"github.com/katalvlaran/numerics/plot"
)

const (
	newtonSamples = 400
	newtonHalfWin = 5.0 // the curve is drawn on [x0−5, x0+5]
)

// NewtonStep is one Newton update xₙ → xₙ₊₁, with the tangent drawn on [xₙ−1, xₙ+1].
type NewtonStep struct {
	N       int
	X       float64
	FX, DFX float64
	Delta   float64 // |xₙ₊₁ − xₙ|
	Next    float64
	Tangent [2]plot.Point
}

// NewtonResult is the outcome of a Newton run.
type NewtonResult struct {
	Root       float64
	Iterations int
	Status     Status
	Steps      []NewtonStep
	Figure     *plot.Figure
}

// Newton iterates xₙ₊₁ = xₙ − f(xₙ)/f′(xₙ) from x0.
//
// Errors:
//   - ErrBadTolerance, ErrBadMaxIter for invalid options.
//   - ErrNonFinite if f or df yields NaN or ±Inf.
//   - ErrDerivativeVanished if |f′(xₙ)| < DerivativeGuard. The result holds
//     the steps taken so far and Status == DerivativeVanished.
//   - ErrMaxIterations (soft) with the populated result.
//
// Complexity: O(MaxIter) evaluations of f and df.
func Newton(f, df Func, x0 float64, opts NewtonOptions) (*NewtonResult, error) {
	if err := validate(opts.Tolerance, opts.MaxIter); err != nil {
		return nil, fmt.Errorf("Newton: %w", err)
	}
	if !finite(x0) {
		return nil, fmt.Errorf("Newton: x0=%g: %w", x0, ErrNonFinite)
	}

	res := &NewtonResult{Root: x0, Status: MaxIterationsReached}
	x := x0
	var stop error
	for n := 1; n <= opts.MaxIter; n++ {
		fx, dfx := f(x), df(x)
		if !finite(fx) || !finite(dfx) {
			return nil, fmt.Errorf("Newton: f(%g)=%g, f'(%g)=%g: %w", x, fx, x, dfx, ErrNonFinite)
		}
		if math.Abs(dfx) < DerivativeGuard {
			res.Status = DerivativeVanished
			stop = fmt.Errorf("Newton: |f'(%g)| = %g: %w", x, math.Abs(dfx), ErrDerivativeVanished)

			break
		}

		next := x - fx/dfx
		delta := math.Abs(next - x)
		res.Steps = append(res.Steps, NewtonStep{
			N: n, X: x, FX: fx, DFX: dfx, Delta: delta, Next: next,
			Tangent: [2]plot.Point{
				{X: x - 1, Y: fx - dfx},
				{X: x + 1, Y: fx + dfx},
			},
		})
		res.Root, res.Iterations = next, n
		x = next

		if delta < opts.Tolerance {
			res.Status = Converged

			break
		}
	}
	res.Figure = newtonFigure(f, x0, res)

	switch res.Status {
	case Converged:
		return res, nil
	case DerivativeVanished:
		return res, stop
	default:
		return res, fmt.Errorf("Newton: %d iterations, last x=%g: %w", opts.MaxIter, res.Root, ErrMaxIterations)
	}
}

// NewtonExpr runs Newton on fn with its symbolic derivative.
func NewtonExpr(fn *expr.Function, x0 float64, opts NewtonOptions) (*NewtonResult, error) {
	return Newton(fn.Eval, fn.Derivative().Eval, x0, opts)
}

func newtonFigure(f Func, x0 float64, res *NewtonResult) *plot.Figure {
	fig := &plot.Figure{Title: "Newton–Raphson"}
	fig.Add("f(x)", plot.Line, plot.Sample(f, x0-newtonHalfWin, x0+newtonHalfWin, newtonSamples)...)
	for _, s := range res.Steps {
		fig.Add(fmt.Sprintf("tangent %d", s.N), plot.Segment, s.Tangent[0], s.Tangent[1])
	}
	if y := f(res.Root); finite(y) {
		fig.Add("root", plot.Marker, plot.Point{X: res.Root, Y: y})
	}

	return fig
}

// Report renders the iteration table and the outcome.
func (r *NewtonResult) Report() string {
	rows := make([][]string, 0, len(r.Steps))
	for _, s := range r.Steps {
		rows = append(rows, []string{
			textfmt.I(s.N), textfmt.F(s.X, 8), textfmt.E(s.FX, 3),
			textfmt.E(s.DFX, 3), textfmt.E(s.Delta, 3), textfmt.F(s.Next, 8),
		})
	}

	var sb strings.Builder
	sb.WriteString(textfmt.Section("Newton–Raphson method"))
	sb.WriteString("\n")
	sb.WriteString(textfmt.Table([]string{"n", "x_n", "f(x_n)", "f'(x_n)", "|dx|", "x_n+1"}, rows))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "status: %s after %d iterations\n", r.Status, r.Iterations)
	fmt.Fprintf(&sb, "root ≈ %.8f", r.Root)

	return sb.String()
}
