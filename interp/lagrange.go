// SPDX-License-Identifier: MIT

package interp

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/numerics/internal/textfmt"
	"github.com/katalvlaran/numerics/plot"
	"github.com/katalvlaran/numerics/poly"
)

const (
	plotSamples = 200
	plotMargin  = 1.0
)

// Option configures Lagrange.
type Option func(*options)

type options struct {
	estimate    float64
	hasEstimate bool
}

// WithEstimate asks Lagrange to evaluate the interpolant at x.
func WithEstimate(x float64) Option {
	return func(o *options) { o.estimate, o.hasEstimate = x, true }
}

// Result is the interpolant and its construction.
type Result struct {
	// Points are the nodes ordered by x.
	Points []plot.Point
	// Basis[i] is Lᵢ for Points[i].
	Basis      []poly.Polynomial
	Polynomial poly.Polynomial

	HasEstimate bool
	EstimateX   float64
	Estimate    float64

	Figure *plot.Figure
}

// Eval evaluates the interpolant at x.
func (r *Result) Eval(x float64) float64 { return r.Polynomial.Eval(x) }

// Lagrange interpolates points. The input slice is not modified; nodes are
// sorted by x for presentation, which does not change P.
//
// Errors:
//   - ErrEmptyInput for no points.
//   - ErrNonFinite for NaN or ±Inf coordinates.
//   - ErrDuplicateAbscissa when two points share x.
//
// Complexity: O(k²) polynomial products of degree ≤ k.
func Lagrange(points []plot.Point, opts ...Option) (*Result, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("Lagrange: %w", ErrEmptyInput)
	}
	for i, p := range points {
		if !finite(p.X) || !finite(p.Y) {
			return nil, fmt.Errorf("Lagrange: point %d (%g, %g): %w", i, p.X, p.Y, ErrNonFinite)
		}
	}
	pts := plot.SortByX(points)
	for i := 1; i < len(pts); i++ {
		if pts[i].X == pts[i-1].X {
			return nil, fmt.Errorf("Lagrange: x = %g: %w", pts[i].X, ErrDuplicateAbscissa)
		}
	}

	res := &Result{Points: pts, Basis: make([]poly.Polynomial, len(pts))}
	sum := poly.Constant(0)
	for i, pi := range pts {
		li := poly.Constant(1)
		for j, pj := range pts {
			if j == i {
				continue
			}
			d := pi.X - pj.X
			li = li.Mul(poly.New(-pj.X/d, 1/d))
		}
		res.Basis[i] = li
		sum = sum.Add(li.Scale(pi.Y))
	}
	res.Polynomial = sum

	if o.hasEstimate {
		res.HasEstimate, res.EstimateX, res.Estimate = true, o.estimate, sum.Eval(o.estimate)
	}
	res.Figure = figure(res)

	return res, nil
}

func figure(r *Result) *plot.Figure {
	lo, hi := plot.Bounds(r.Points)
	fig := &plot.Figure{Title: "Lagrange interpolation"}
	fig.Add("P(x)", plot.Line, plot.Sample(r.Eval, lo-plotMargin, hi+plotMargin, plotSamples)...)
	fig.Add("data", plot.Scatter, r.Points...)
	if r.HasEstimate {
		fig.Add("estimate", plot.Marker, plot.Point{X: r.EstimateX, Y: r.Estimate})
	}

	return fig
}

// Report renders the nodes, the basis and the polynomial.
func (r *Result) Report() string {
	var sb strings.Builder
	sb.WriteString(textfmt.Section("Lagrange interpolation"))
	sb.WriteString("\n")

	rows := make([][]string, len(r.Points))
	for i, p := range r.Points {
		rows[i] = []string{textfmt.I(i), textfmt.F(p.X, 4), textfmt.F(p.Y, 4), r.Basis[i].Format(4)}
	}
	sb.WriteString(textfmt.Table([]string{"i", "x_i", "y_i", "L_i(x)"}, rows))
	fmt.Fprintf(&sb, "\nP(x) = %s\n", r.Polynomial.Format(4))
	fmt.Fprintf(&sb, "degree %d", r.Polynomial.Degree())
	if r.HasEstimate {
		fmt.Fprintf(&sb, "\nP(%g) = %.6f", r.EstimateX, r.Estimate)
	}

	return sb.String()
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
