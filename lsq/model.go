// SPDX-License-Identifier: MIT

package lsq

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/numerics/poly"
)

// Model is a least-squares model family. It is sealed: use Linear,
// Polynomial, Exponential or Fourier.
type Model interface {
	// Name is a short human-readable label ("linear", "polynomial(3)").
	Name() string
	// Unknowns is the number of columns of the design matrix.
	Unknowns() int

	validate() error
	row(x float64) []float64
	// target maps an observed y to the fitted scale.
	target(y float64) (float64, error)
	// finish maps the normal-equation solution to model parameters, a
	// callable fit and its equation.
	finish(c []float64) (params []float64, f func(float64) float64, eq string)
}

// Bounds on the model size accepted by Fit.
const (
	MaxDegree    = 64
	MaxHarmonics = 64
)

// Linear is y = a₀ + a₁x.
func Linear() Model { return linear{} }

// Polynomial is y = a₀ + a₁x + … + a_d x^d.
func Polynomial(degree int) Model { return polynomial{degree: degree} }

// Exponential is y = a·e^(bx); Coefficients are [a, b].
func Exponential() Model { return exponential{} }

// Fourier is y = a₀ + Σ aₖcos(kx) + bₖsin(kx) over k = 1..harmonics.
// Coefficients are [a₀, a₁, b₁, …, aₘ, bₘ].
func Fourier(harmonics int) Model { return fourier{m: harmonics} }

type linear struct{}

func (linear) Name() string                      { return "linear" }
func (linear) Unknowns() int                     { return 2 }
func (linear) validate() error                   { return nil }
func (linear) row(x float64) []float64           { return []float64{1, x} }
func (linear) target(y float64) (float64, error) { return y, nil }
func (linear) finish(c []float64) ([]float64, func(float64) float64, string) {
	p := poly.New(c...)

	return c, p.Eval, "y = " + p.Format(4)
}

type polynomial struct{ degree int }

func (p polynomial) Name() string  { return fmt.Sprintf("polynomial(%d)", p.degree) }
func (p polynomial) Unknowns() int { return p.degree + 1 }
func (p polynomial) validate() error {
	if p.degree < 0 || p.degree > MaxDegree {
		return fmt.Errorf("%w: degree %d outside [0, %d]", ErrInvalidModel, p.degree, MaxDegree)
	}

	return nil
}

func (p polynomial) row(x float64) []float64 {
	r := make([]float64, p.degree+1)
	v := 1.0
	for i := range r {
		r[i] = v
		v *= x
	}

	return r
}

func (polynomial) target(y float64) (float64, error) { return y, nil }
func (polynomial) finish(c []float64) ([]float64, func(float64) float64, string) {
	q := poly.New(c...)

	return c, q.Eval, "y = " + q.Format(4)
}

type exponential struct{}

func (exponential) Name() string            { return "exponential" }
func (exponential) Unknowns() int           { return 2 }
func (exponential) validate() error         { return nil }
func (exponential) row(x float64) []float64 { return []float64{1, x} }
func (exponential) target(y float64) (float64, error) {
	if y <= 0 {
		return 0, fmt.Errorf("%w: exponential fit needs y > 0, got %g", ErrInvalidModel, y)
	}

	return math.Log(y), nil
}

func (exponential) finish(c []float64) ([]float64, func(float64) float64, string) {
	a, b := math.Exp(c[0]), c[1]

	return []float64{a, b},
		func(x float64) float64 { return a * math.Exp(b*x) },
		fmt.Sprintf("y = %.4f*e^(%.4f*x)", a, b)
}

type fourier struct{ m int }

func (f fourier) Name() string  { return fmt.Sprintf("fourier(%d)", f.m) }
func (f fourier) Unknowns() int { return 2*f.m + 1 }
func (f fourier) validate() error {
	if f.m < 1 || f.m > MaxHarmonics {
		return fmt.Errorf("%w: %d harmonics outside [1, %d]", ErrInvalidModel, f.m, MaxHarmonics)
	}

	return nil
}

func (f fourier) row(x float64) []float64 {
	r := make([]float64, 0, 2*f.m+1)
	r = append(r, 1)
	for k := 1; k <= f.m; k++ {
		kx := float64(k) * x
		r = append(r, math.Cos(kx), math.Sin(kx))
	}

	return r
}

func (fourier) target(y float64) (float64, error) { return y, nil }
func (f fourier) finish(c []float64) ([]float64, func(float64) float64, string) {
	eval := func(x float64) float64 {
		s := c[0]
		for k := 1; k <= f.m; k++ {
			kx := float64(k) * x
			s += c[2*k-1]*math.Cos(kx) + c[2*k]*math.Sin(kx)
		}

		return s
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "y = %.4f", c[0])
	for k := 1; k <= f.m; k++ {
		fmt.Fprintf(&sb, " %s %.4f*cos(%dx)", sign(c[2*k-1]), math.Abs(c[2*k-1]), k)
		fmt.Fprintf(&sb, " %s %.4f*sin(%dx)", sign(c[2*k]), math.Abs(c[2*k]), k)
	}

	return c, eval, sb.String()
}

func sign(v float64) string {
	if v < 0 {
		return "-"
	}

	return "+"
}
