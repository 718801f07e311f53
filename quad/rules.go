// SPDX-License-Identifier: MIT

package quad

import (
	"fmt"
	"math"
	"sort"

	gquad "gonum.org/v1/gonum/integrate/quad"
)

// Rule is a quadrature rule. It is sealed: use Trapezoid, Simpson13,
// Simpson38 or GaussLegendre.
type Rule interface {
	// Name is the human-readable rule name including its parameter.
	Name() string
	// Formula is the rule written out for reports.
	Formula() string

	validate() error
	apply(f Integrand, a, b float64, r *Result) error
}

// Trapezoid is the composite trapezoidal rule on n subintervals.
func Trapezoid(n int) Rule { return newtonCotes{kind: trapezoid, n: n} }

// Simpson13 is the composite Simpson 1/3 rule; n must be even.
func Simpson13(n int) Rule { return newtonCotes{kind: simpson13, n: n} }

// Simpson38 is the composite Simpson 3/8 rule; n must be a multiple of 3.
func Simpson38(n int) Rule { return newtonCotes{kind: simpson38, n: n} }

// GaussLegendre is n-point Gauss–Legendre quadrature, n ∈ {2, 3, 4}.
func GaussLegendre(n int) Rule { return gaussLegendre{n: n} }

type ncKind int

const (
	trapezoid ncKind = iota
	simpson13
	simpson38
)

type newtonCotes struct {
	kind ncKind
	n    int
}

func (r newtonCotes) Name() string {
	switch r.kind {
	case trapezoid:
		return fmt.Sprintf("trapezoid (N=%d)", r.n)
	case simpson13:
		return fmt.Sprintf("Simpson 1/3 (N=%d)", r.n)
	default:
		return fmt.Sprintf("Simpson 3/8 (N=%d)", r.n)
	}
}

func (r newtonCotes) Formula() string {
	switch r.kind {
	case trapezoid:
		return "h/2 * [f(x0) + 2*sum f(xi) + f(xN)]"
	case simpson13:
		return "h/3 * [f(x0) + 4*sum f(x_odd) + 2*sum f(x_even) + f(xN)]"
	default:
		return "3h/8 * [f(x0) + 3*sum f(xi, i mod 3 != 0) + 2*sum f(x_3k) + f(xN)]"
	}
}

func (r newtonCotes) validate() error {
	switch {
	case r.n < 1:
		return fmt.Errorf("%w: N=%d < 1", ErrInvalidSubdivisionCount, r.n)
	case r.kind == simpson13 && r.n%2 != 0:
		return fmt.Errorf("%w: Simpson 1/3 needs an even N, got %d", ErrInvalidSubdivisionCount, r.n)
	case r.kind == simpson38 && r.n%3 != 0:
		return fmt.Errorf("%w: Simpson 3/8 needs N divisible by 3, got %d", ErrInvalidSubdivisionCount, r.n)
	}

	return nil
}

// factor is the constant in front of the weighted sum.
func (r newtonCotes) factor(h float64) float64 {
	switch r.kind {
	case trapezoid:
		return h / 2
	case simpson13:
		return h / 3
	default:
		return 3 * h / 8
	}
}

// weight is the integer multiplier of f(xᵢ).
func (r newtonCotes) weight(i int) float64 {
	if i == 0 || i == r.n {
		return 1
	}
	switch r.kind {
	case trapezoid:
		return 2
	case simpson13:
		if i%2 == 1 {
			return 4
		}

		return 2
	default:
		if i%3 == 0 {
			return 2
		}

		return 3
	}
}

func (r newtonCotes) apply(f Integrand, a, b float64, res *Result) error {
	h := (b - a) / float64(r.n)
	res.H, res.N, res.Factor = h, r.n, r.factor(h)
	res.Samples = make([]Sample, 0, r.n+1)

	sum := 0.0
	for i := 0; i <= r.n; i++ {
		x := a + float64(i)*h
		if i == r.n {
			x = b
		}
		fx := f.Eval(x)
		if math.IsNaN(fx) || math.IsInf(fx, 0) {
			return fmt.Errorf("f(%g) = %g: %w", x, fx, ErrNonFinite)
		}
		w := r.weight(i)
		res.Samples = append(res.Samples, Sample{I: i, X: x, FX: fx, Weight: w})
		sum += w * fx
	}
	res.Value = res.Factor * sum

	return nil
}

// Supported Gauss–Legendre orders.
const (
	minLegendre = 2
	maxLegendre = 4
)

// legendre holds the nodes and weights on [−1, 1], ascending t, per order.
var legendre = legendreTable(minLegendre, maxLegendre)

func legendreTable(lo, hi int) map[int][]Node {
	tab := make(map[int][]Node, hi-lo+1)
	for n := lo; n <= hi; n++ {
		t, w := make([]float64, n), make([]float64, n)
		gquad.Legendre{}.FixedLocations(t, w, -1, 1)
		nodes := make([]Node, n)
		for i := range nodes {
			nodes[i] = Node{T: t[i], W: w[i]}
		}
		sort.Slice(nodes, func(i, j int) bool { return nodes[i].T < nodes[j].T })
		tab[n] = nodes
	}

	return tab
}

type gaussLegendre struct{ n int }

func (g gaussLegendre) Name() string { return fmt.Sprintf("Gauss-Legendre (n=%d)", g.n) }
func (gaussLegendre) Formula() string {
	return "(b-a)/2 * sum wi*f(((b-a)*ti + (b+a))/2)"
}

func (g gaussLegendre) validate() error {
	if _, ok := legendre[g.n]; !ok {
		return fmt.Errorf("%w: n=%d, want %d..%d", ErrUnsupportedOrder, g.n, minLegendre, maxLegendre)
	}

	return nil
}

func (g gaussLegendre) apply(f Integrand, a, b float64, res *Result) error {
	half, mid := (b-a)/2, (b+a)/2
	res.N, res.Factor = g.n, half
	res.Nodes = make([]Node, 0, g.n)

	sum := 0.0
	for _, nd := range legendre[g.n] {
		nd.X = half*nd.T + mid
		nd.FX = f.Eval(nd.X)
		if math.IsNaN(nd.FX) || math.IsInf(nd.FX, 0) {
			return fmt.Errorf("f(%g) = %g: %w", nd.X, nd.FX, ErrNonFinite)
		}
		res.Nodes = append(res.Nodes, nd)
		sum += nd.W * nd.FX
	}
	res.Value = half * sum

	return nil
}
