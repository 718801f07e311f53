// SPDX-License-Identifier: MIT

package poly_test

import (
	"testing"

	"github.com/katalvlaran/numerics/poly"
	"github.com/stretchr/testify/assert"
)

func TestPolynomial_EvalDegree(t *testing.T) {
	p := poly.New(1, 1, 1) // 1 + x + x²

	assert.Equal(t, 2, p.Degree())
	assert.Equal(t, 1.0, p.Eval(0))
	assert.Equal(t, 7.0, p.Eval(2))
	assert.Equal(t, []float64{1, 1, 1}, p.Descending())

	assert.Equal(t, 0, poly.Polynomial{}.Degree())
	assert.Equal(t, 0.0, poly.Polynomial{}.Eval(3))
	assert.Equal(t, 1, poly.New(2, 3, 0, 0).Degree(), "trailing zeros do not count")
	assert.Equal(t, []float64{3, 2}, poly.New(2, 3, 0, 0).Descending())
}

func TestPolynomial_Arithmetic(t *testing.T) {
	a := poly.New(-1, 1) // x − 1
	b := poly.New(1, 1)  // x + 1

	assert.Equal(t, []float64{-1, 0, 1}, a.Mul(b).Coeffs())
	assert.Equal(t, []float64{0, 2}, a.Add(b).Coeffs())
	assert.Equal(t, []float64{-3, 3}, a.Scale(3).Coeffs())
	assert.Equal(t, []float64{5}, poly.Constant(5).Coeffs())

	// Coeffs is a copy.
	c := a.Coeffs()
	c[0] = 42
	assert.Equal(t, -1.0, a.Eval(0))
}

func TestPolynomial_Format(t *testing.T) {
	assert.Equal(t, "2.0000*x^2 + 1.0000", poly.New(1, 0, 2).String())
	assert.Equal(t, "-1.00*x^2 + 3.00*x - 0.50", poly.New(-0.5, 3, -1).Format(2))
	assert.Equal(t, "0.00", poly.New(1e-12).Format(2))
}
