// SPDX-License-Identifier: MIT

package lsq

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/numerics/internal/textfmt"
	"github.com/katalvlaran/numerics/matrix"
	"github.com/katalvlaran/numerics/plot"
)

const plotSamples = 200

// Result is a fitted model with the intermediate normal-equation data.
type Result struct {
	Model  Model
	Points []plot.Point

	Design    *matrix.Dense // A, one row per point
	Normal    *matrix.Dense // AᵗA
	NormalRHS []float64     // Aᵗy (Aᵗ·ln y for Exponential)
	// Linearized solves AᵗA·c = Aᵗy.
	Linearized []float64
	// Coefficients are the model parameters; equal to Linearized except for
	// Exponential, where they are [a, b].
	Coefficients []float64

	// SSR is Σ(yᵢ − f(xᵢ))² on the original y scale.
	SSR float64
	// RSquared is 1 − SSR/SST; NaN when every y is equal.
	RSquared float64
	Equation string
	Func     func(float64) float64

	Figure *plot.Figure
}

// Fit fits model to points.
//
// Implementation:
//   - Stage 1: validate the model and the data; map y to the fitted scale.
//   - Stage 2: build A row by row, then AᵗA and Aᵗy with matrix.Mul/MatVec.
//   - Stage 3: solve the normal equations with matrix.Solve (no inverse).
//   - Stage 4: map back to parameters and measure SSR on the original scale.
//
// Errors:
//   - ErrInvalidModel, ErrInsufficientData, ErrNonFinite, ErrSingular.
//
// Complexity: O(n·k²) to form AᵗA plus O(k³) to solve it.
func Fit(points []plot.Point, model Model) (*Result, error) {
	if model == nil {
		return nil, fmt.Errorf("Fit: nil model: %w", ErrInvalidModel)
	}
	if err := model.validate(); err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}
	k, n := model.Unknowns(), len(points)
	if n < k {
		return nil, fmt.Errorf("Fit: %s needs %d points, got %d: %w", model.Name(), k, n, ErrInsufficientData)
	}

	xs, ys := plot.XY(points)
	if err := matrix.ValidateFinite(xs); err != nil {
		return nil, fmt.Errorf("Fit: x: %w: %w", ErrNonFinite, err)
	}
	if err := matrix.ValidateFinite(ys); err != nil {
		return nil, fmt.Errorf("Fit: y: %w: %w", ErrNonFinite, err)
	}
	rows := make([][]float64, n)
	for i, x := range xs {
		t, err := model.target(ys[i])
		if err != nil {
			return nil, fmt.Errorf("Fit: point %d: %w", i, err)
		}
		rows[i], ys[i] = model.row(x), t
	}

	a, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, fmt.Errorf("Fit: design: %w", err)
	}
	at, err := matrix.Transpose(a)
	if err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}
	ata, err := matrix.Mul(at, a)
	if err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}
	aty, err := matrix.MatVec(at, ys)
	if err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}
	c, err := matrix.Solve(ata, aty)
	if errors.Is(err, matrix.ErrSingular) {
		return nil, fmt.Errorf("Fit: %s: %w", model.Name(), ErrSingular)
	}
	if err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}

	params, f, eq := model.finish(c)
	res := &Result{
		Model:        model,
		Points:       append([]plot.Point(nil), points...),
		Design:       a,
		Normal:       ata,
		NormalRHS:    aty,
		Linearized:   c,
		Coefficients: params,
		Equation:     eq,
		Func:         f,
	}
	res.SSR, res.RSquared = goodness(points, f)
	res.Figure = figure(res)

	return res, nil
}

func goodness(points []plot.Point, f func(float64) float64) (ssr, r2 float64) {
	mean := 0.0
	for _, p := range points {
		mean += p.Y
	}
	mean /= float64(len(points))

	sst := 0.0
	for _, p := range points {
		d := p.Y - f(p.X)
		ssr += d * d
		sst += (p.Y - mean) * (p.Y - mean)
	}
	if sst == 0 {
		return ssr, math.NaN()
	}

	return ssr, 1 - ssr/sst
}

func figure(r *Result) *plot.Figure {
	lo, hi := plot.Bounds(r.Points)
	fig := &plot.Figure{Title: "Least squares: " + r.Model.Name()}
	fig.Add("data", plot.Scatter, r.Points...)
	fig.Add("fit", plot.Line, plot.Sample(r.Func, lo, hi, plotSamples)...)

	return fig
}

// Report renders A, AᵗA, Aᵗy, the coefficients and the fit quality.
func (r *Result) Report() string {
	var sb strings.Builder
	sb.WriteString(textfmt.Section("Least squares: " + r.Model.Name()))
	fmt.Fprintf(&sb, "\n%d points, %d unknowns\n", len(r.Points), r.Model.Unknowns())
	fmt.Fprintf(&sb, "\ndesign matrix A:\n%s\n", r.Design.Format(4))
	fmt.Fprintf(&sb, "\nnormal matrix AᵗA:\n%s\n", r.Normal.Format(4))

	rows := make([][]string, len(r.NormalRHS))
	for i := range r.NormalRHS {
		rows[i] = []string{fmt.Sprintf("c%d", i), textfmt.F(r.NormalRHS[i], 6), textfmt.F(r.Linearized[i], 8)}
	}
	sb.WriteString("\n")
	sb.WriteString(textfmt.Table([]string{"", "Aᵗy", "solution"}, rows))
	fmt.Fprintf(&sb, "\n%s\n", r.Equation)
	fmt.Fprintf(&sb, "SSR = %.6f, R² = %.6f", r.SSR, r.RSquared)

	return sb.String()
}
