// SPDX-License-Identifier: MIT

package expr_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numerics/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_EvalPrecedence(t *testing.T) {
	cases := []struct {
		text string
		x    float64
		want float64
	}{
		{"2*3+4", 0, 10},
		{"2+3*4", 0, 14},
		{"-x^2", 3, -9},
		{"2^3^2", 0, 512},
		{"x**2", 3, 9},
		{"(x+1)*(x-1)", 3, 8},
		{"10-4-3", 0, 3},
		{"12/3/2", 0, 2},
		{"2e3", 0, 2000},
		{"1.5e-1", 0, 0.15},
		{".5*x", 4, 2},
		{"pi", 0, math.Pi},
		{"e^x", 1, math.E},
		{"sin(pi/2) + cos(0)", 0, 2},
		{"ln(e) + log(1)", 0, 1},
		{"sqrt(abs(-16))", 0, 4},
		{"+x", 5, 5},
		{"--x", 5, 5},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			f, err := expr.Parse(tc.text)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, f.Eval(tc.x), 1e-12)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		text string
		want error
	}{
		{"", expr.ErrSyntax},
		{"   ", expr.ErrSyntax},
		{"2 +", expr.ErrSyntax},
		{"(x", expr.ErrSyntax},
		{"x)", expr.ErrSyntax},
		{"sin x", expr.ErrSyntax},
		{"x $ 2", expr.ErrSyntax},
		{"2 3", expr.ErrSyntax},
		{"foo(x)", expr.ErrUnknownSymbol},
		{"y + 1", expr.ErrUnknownSymbol},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			_, err := expr.Parse(tc.text)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, expr.ErrInvalidInput)
		})
	}
}

func TestParse_DomainErrorsAreNotPanics(t *testing.T) {
	f := expr.MustParse("ln(x) + 1/x")
	assert.True(t, math.IsInf(f.Eval(0), 0) || math.IsNaN(f.Eval(0)))
	assert.True(t, math.IsNaN(f.Eval(-1)))
}

func TestWithVariable(t *testing.T) {
	f, err := expr.Parse("t^2 + 1", expr.WithVariable("t"))
	require.NoError(t, err)
	assert.Equal(t, "t", f.Variable())
	assert.Equal(t, 5.0, f.Eval(2))

	_, err = expr.Parse("x", expr.WithVariable("t"))
	assert.ErrorIs(t, err, expr.ErrUnknownSymbol)

	assert.Panics(t, func() { expr.WithVariable("pi") })
	assert.Panics(t, func() { expr.WithVariable("sin") })
	assert.Panics(t, func() { expr.WithVariable("2x") })
	assert.Panics(t, func() { expr.WithVariable("") })
}

func TestFunction_StringRoundTrip(t *testing.T) {
	texts := []string{
		"(x+1)*(x-1)",
		"2-(3-x)",
		"-(x+1)",
		"x/(2*x)",
		"(x^2)^3",
		"2^-x",
		"sin(x)^2 + cos(x)^2",
		"exp(-x^2/2)",
	}
	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			f := expr.MustParse(text)
			g, err := expr.Parse(f.String())
			require.NoError(t, err, "printed form %q must parse", f.String())
			for _, x := range []float64{0.3, 1.1, 2.5} {
				assert.InDelta(t, f.Eval(x), g.Eval(x), 1e-12)
			}
		})
	}

	assert.Equal(t, "(x + 1)*(x - 1)", expr.MustParse("(x+1)*(x-1)").String())
	assert.Equal(t, "2 - (3 - x)", expr.MustParse("2-(3-x)").String())
	assert.Equal(t, "x**3 - x - 2", expr.MustParse("x**3 - x - 2").Source())
}

func TestFunction_Derivative(t *testing.T) {
	assert.Equal(t, "3*x^2 - 1", expr.MustParse("x**3 - x - 2").Derivative().String())
	assert.Equal(t, "cos(x)", expr.MustParse("sin(x)").Derivative().String())
	assert.Equal(t, "0", expr.MustParse("pi^2").Derivative().String())

	texts := []string{
		"x^3 - x - 2",
		"sin(x)*x^2",
		"exp(2*x)/(1+x^2)",
		"ln(x)",
		"sqrt(x)",
		"x^x",
		"tan(x)",
		"atan(x)",
		"asin(x/2)",
		"acos(x/2)",
		"2^x",
		"cosh(x) - sinh(x)",
		"tanh(x)",
		"abs(x - 3)",
		"-cos(3*x)",
	}
	const h = 1e-6
	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			f := expr.MustParse(text)
			df := f.Derivative()
			for _, x := range []float64{0.3, 0.7, 1.2} {
				numeric := (f.Eval(x+h) - f.Eval(x-h)) / (2 * h)
				assert.InDelta(t, numeric, df.Eval(x), 1e-5, "f'(%g) for %s = %s", x, text, df)
			}
		})
	}
}

func TestFunction_Antiderivative(t *testing.T) {
	F, err := expr.MustParse("x**3 - x - 2").Antiderivative()
	require.NoError(t, err)
	assert.Equal(t, "x^4/4 - x^2/2 - 2*x", F.String())

	texts := []string{
		"3",
		"x",
		"x^3 - x - 2",
		"(x+1)*(x-2)",
		"(2*x+1)^3",
		"1/x",
		"3/(2*x+1)",
		"(x+1)^-2",
		"sin(x)",
		"cos(2*x)",
		"tan(x)",
		"exp(-x)",
		"2^x",
		"sinh(x) + cosh(x)",
		"ln(x)",
		"sqrt(x)",
		"5*sin(x) - x/2",
		"-exp(3*x)",
	}
	const h = 1e-6
	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			f := expr.MustParse(text)
			F, err := f.Antiderivative()
			require.NoError(t, err)
			for _, x := range []float64{0.4, 0.9, 1.3} {
				numeric := (F.Eval(x+h) - F.Eval(x-h)) / (2 * h)
				assert.InDelta(t, f.Eval(x), numeric, 1e-5, "F'(%g) for %s, F = %s", x, text, F)
			}
		})
	}
}

func TestFunction_DefiniteIntegral(t *testing.T) {
	cases := []struct {
		text string
		a, b float64
		want float64
	}{
		{"x^2", 0, 2, 8.0 / 3},
		{"x**3 - x - 2", 0, 2, -2},
		{"sin(x)", 0, math.Pi, 2},
		{"1/x", 1, math.E, 1},
		{"exp(x)", 0, 1, math.E - 1},
		{"x^2", 2, 0, -8.0 / 3},
		{"x^(-0.5)", 0, 1, 2},
		{"1/(x+2)", -1, 1, math.Log(3)},
		{"tan(x)", 0, 1, -math.Log(math.Cos(1))},
		{"1/x", -2, -1, -math.Ln2},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			v, err := expr.MustParse(tc.text).DefiniteIntegral(tc.a, tc.b)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, v, 1e-12)
		})
	}
}

func TestFunction_IntegralUnavailable(t *testing.T) {
	for _, text := range []string{"x*sin(x)", "exp(x^2)", "sin(x)/x", "x^x"} {
		_, err := expr.MustParse(text).Antiderivative()
		assert.ErrorIs(t, err, expr.ErrUnavailable, text)
	}

	// ln(x) closed form is not finite at 0.
	_, err := expr.MustParse("1/x").DefiniteIntegral(0, 1)
	assert.ErrorIs(t, err, expr.ErrUnavailable)
}

// TestFunction_IntegralAcrossPole checks that a closed form is refused when
// the integrand blows up strictly inside the interval, even though F is
// finite at both bounds.
func TestFunction_IntegralAcrossPole(t *testing.T) {
	cases := []struct {
		text string
		a, b float64
	}{
		{"x^(-2)", -1, 1},
		{"1/(x-0.5)", 0, 2},
		{"1/(x-0.5)", 2, 0},
		{"1/(x-0.3)^2", 0, 1},
		{"tan(x)", 0, 2},
		{"1/(2*x-1.4142)", 0, 3},
		{"sqrt(x)", -1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			_, err := expr.MustParse(tc.text).DefiniteIntegral(tc.a, tc.b)
			assert.ErrorIs(t, err, expr.ErrUnavailable)
		})
	}
}
