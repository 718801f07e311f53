// SPDX-License-Identifier: MIT

package taylor_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numerics/taylor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApproximate_Exp(t *testing.T) {
	res, err := taylor.Approximate(taylor.Exp, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, math.E, res.True)
	assert.Len(t, res.Terms, 10)
	// Remainder ≈ 1/10! · (1 + 1/11 + …)
	assert.Greater(t, res.AbsError, 2.7e-7)
	assert.Less(t, res.AbsError, 3.1e-7)
	assert.InDelta(t, res.AbsError/math.E, res.RelError, 1e-18)

	small, err := taylor.Approximate(taylor.Exp, 2, 4)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2, 2, 4.0 / 3}, small.Terms, 1e-15)
	assert.InDelta(t, 19.0/3, small.Approximate, 1e-14)
}

func TestApproximate_SinCos(t *testing.T) {
	res, err := taylor.Approximate(taylor.Sin, math.Pi/2, 1)
	require.NoError(t, err)
	assert.Equal(t, math.Pi/2, res.Approximate)
	assert.InDelta(t, math.Pi/2-1, res.AbsError, 1e-15)

	res, err = taylor.Approximate(taylor.Sin, 0.5, 3)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, -0.125 / 6, 0.03125 / 120}, res.Terms, 1e-17)

	res, err = taylor.Approximate(taylor.Cos, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Approximate)
	assert.Zero(t, res.AbsError)
	assert.Zero(t, res.RelError)

	res, err = taylor.Approximate(taylor.Cos, 1, 3)
	require.NoError(t, err)
	assert.InDelta(t, 1-0.5+1.0/24, res.Approximate, 1e-15)
}

func TestApproximate_RelativeErrorAtZero(t *testing.T) {
	res, err := taylor.Approximate(taylor.Sin, 0, 3)
	require.NoError(t, err)
	assert.Zero(t, res.True)
	assert.Zero(t, res.AbsError)
	assert.True(t, math.IsInf(res.RelError, 1))
}

func TestApproximate_ErrorShrinksWithTerms(t *testing.T) {
	for _, fn := range []taylor.Function{taylor.Sin, taylor.Cos, taylor.Exp} {
		prev := math.Inf(1)
		for n := 1; n <= 8; n++ {
			res, err := taylor.Approximate(fn, 1.3, n)
			require.NoError(t, err)
			assert.Less(t, res.AbsError, prev, "%s with %d terms", fn, n)
			prev = res.AbsError
		}
	}
}

func TestApproximate_Errors(t *testing.T) {
	_, err := taylor.Approximate(taylor.Sin, 1, 0)
	assert.ErrorIs(t, err, taylor.ErrBadTermCount)
	_, err = taylor.Approximate(taylor.Sin, 1, taylor.MaxTerms+1)
	assert.ErrorIs(t, err, taylor.ErrBadTermCount)
	_, err = taylor.Approximate(taylor.Function(7), 1, 3)
	assert.ErrorIs(t, err, taylor.ErrUnknownFunction)
	_, err = taylor.Approximate(taylor.Exp, math.NaN(), 3)
	assert.ErrorIs(t, err, taylor.ErrNonFinite)
}

func TestParseFunction(t *testing.T) {
	cases := map[string]taylor.Function{
		"sin": taylor.Sin, "sin(x)": taylor.Sin, " COS ": taylor.Cos,
		"exp": taylor.Exp, "e^x": taylor.Exp, "exp(x)": taylor.Exp,
	}
	for in, want := range cases {
		got, err := taylor.ParseFunction(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := taylor.ParseFunction("tan")
	assert.ErrorIs(t, err, taylor.ErrUnknownFunction)
	assert.Equal(t, "e^x", taylor.Exp.String())
}

func TestApproximate_FigureAndReport(t *testing.T) {
	res, err := taylor.Approximate(taylor.Cos, 1, 4)
	require.NoError(t, err)

	exact, ok := res.Figure.Find("cos(x)")
	require.True(t, ok)
	assert.Len(t, exact.Points, 400)
	assert.Equal(t, -2.0, exact.Points[0].X)
	assert.Equal(t, 4.0, exact.Points[399].X)
	approx, ok := res.Figure.Find("4 terms")
	require.True(t, ok)
	assert.Len(t, approx.Points, 400)
	mark, ok := res.Figure.Find("x")
	require.True(t, ok)
	assert.Equal(t, 1.0, mark.Points[0].X)

	r := res.Report()
	assert.Contains(t, r, "Truncation error: cos(x) at x = 1")
	assert.Contains(t, r, "true value        0.54030231")
	assert.Contains(t, r, "(4 terms)")
}
