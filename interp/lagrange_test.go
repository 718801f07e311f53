// SPDX-License-Identifier: MIT

package interp_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/numerics/interp"
	"github.com/katalvlaran/numerics/plot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pts(xy ...float64) []plot.Point {
	out := make([]plot.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, plot.Point{X: xy[i], Y: xy[i+1]})
	}

	return out
}

func TestLagrange_Quadratic(t *testing.T) {
	res, err := interp.Lagrange(pts(0, 1, 1, 3, 2, 7))
	require.NoError(t, err)

	// x² + x + 1
	if diff := cmp.Diff([]float64{1, 1, 1}, res.Polynomial.Coeffs(), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Fatalf("coefficients (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, res.Polynomial.Degree())
	for _, p := range res.Points {
		assert.InDelta(t, p.Y, res.Eval(p.X), 1e-12)
	}
	assert.Equal(t, "1.0000*x^2 + 1.0000*x + 1.0000", res.Polynomial.String())
	assert.False(t, res.HasEstimate)
}

func TestLagrange_BasisIsKronecker(t *testing.T) {
	res, err := interp.Lagrange(pts(-1, 2, 0.5, -3, 2, 0, 4, 1))
	require.NoError(t, err)
	require.Len(t, res.Basis, 4)
	for i, li := range res.Basis {
		for j, p := range res.Points {
			want := 0.0
			if i == j {
				want = 1
			}
			assert.InDelta(t, want, li.Eval(p.X), 1e-12, "L%d(x%d)", i, j)
		}
	}
	assert.LessOrEqual(t, res.Polynomial.Degree(), 3)
}

func TestLagrange_ReproducesNodesAndIsOrderIndependent(t *testing.T) {
	in := pts(3, -1, 0, 2, -2, 5, 1, 1, 5, 0)
	res, err := interp.Lagrange(in)
	require.NoError(t, err)
	for _, p := range in {
		assert.InDelta(t, p.Y, res.Eval(p.X), 1e-9)
	}

	// Sorted for presentation only; input untouched.
	assert.Equal(t, 3.0, in[0].X)
	assert.Equal(t, -2.0, res.Points[0].X)

	shuffled := pts(5, 0, -2, 5, 1, 1, 3, -1, 0, 2)
	again, err := interp.Lagrange(shuffled)
	require.NoError(t, err)
	if diff := cmp.Diff(res.Polynomial.Coeffs(), again.Polynomial.Coeffs(), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Fatalf("order matters (-first +second):\n%s", diff)
	}
}

func TestLagrange_ExactForPolynomials(t *testing.T) {
	cube := func(x float64) float64 { return 2*x*x*x - x + 4 }
	var nodes []plot.Point
	for _, x := range []float64{-1, 0, 1.5, 3} {
		nodes = append(nodes, plot.Point{X: x, Y: cube(x)})
	}
	res, err := interp.Lagrange(nodes, interp.WithEstimate(2))
	require.NoError(t, err)
	assert.True(t, res.HasEstimate)
	assert.Equal(t, 2.0, res.EstimateX)
	assert.InDelta(t, cube(2), res.Estimate, 1e-10)
	assert.InDelta(t, cube(-0.7), res.Eval(-0.7), 1e-10)
}

func TestLagrange_SinglePoint(t *testing.T) {
	res, err := interp.Lagrange(pts(4, 9))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Polynomial.Degree())
	assert.Equal(t, 9.0, res.Eval(-100))
}

func TestLagrange_Errors(t *testing.T) {
	_, err := interp.Lagrange(nil)
	assert.ErrorIs(t, err, interp.ErrEmptyInput)

	_, err = interp.Lagrange(pts(1, 2, 3, 4, 1, 5))
	assert.ErrorIs(t, err, interp.ErrDuplicateAbscissa)

	_, err = interp.Lagrange(pts(1, math.NaN(), 2, 3))
	assert.ErrorIs(t, err, interp.ErrNonFinite)
}

func TestLagrange_Figure(t *testing.T) {
	res, err := interp.Lagrange(pts(0, 1, 1, 3, 2, 7), interp.WithEstimate(1.5))
	require.NoError(t, err)

	curve, ok := res.Figure.Find("P(x)")
	require.True(t, ok)
	assert.Len(t, curve.Points, 200)
	assert.Equal(t, -1.0, curve.Points[0].X)
	assert.Equal(t, 3.0, curve.Points[199].X)

	data, ok := res.Figure.Find("data")
	require.True(t, ok)
	assert.Equal(t, plot.Scatter, data.Kind)
	assert.Len(t, data.Points, 3)

	est, ok := res.Figure.Find("estimate")
	require.True(t, ok)
	assert.InDelta(t, 4.75, est.Points[0].Y, 1e-12)
}

func TestLagrange_Idempotent(t *testing.T) {
	a, err := interp.Lagrange(pts(0, 1, 1, 3, 2, 7))
	require.NoError(t, err)
	b, err := interp.Lagrange(pts(0, 1, 1, 3, 2, 7))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestResult_Report(t *testing.T) {
	res, err := interp.Lagrange(pts(0, 1, 1, 3, 2, 7), interp.WithEstimate(1.5))
	require.NoError(t, err)
	r := res.Report()
	assert.Contains(t, r, "Lagrange interpolation")
	assert.Contains(t, r, "P(x) = 1.0000*x^2 + 1.0000*x + 1.0000")
	assert.Contains(t, r, "P(1.5) = 4.750000")
}
