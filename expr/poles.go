// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"math"
)

// Interior singularity scan used by DefiniteIntegral. F(b) - F(a) is only the
// integral when f stays finite on the open interval (a, b).
const (
	scanIntervals = 512
	refineSteps   = 80
	// rootRel is how small |d| must get, relative to its peak on the grid,
	// for a refined minimum to count as a zero of d.
	rootRel = 1e-9
)

// singularities collects the subexpressions whose zeros make n blow up:
// non-constant divisors, bases raised to a negative power and the cosine
// under every tan.
func singularities(n node, out []node) []node {
	switch t := n.(type) {
	case negation:
		return singularities(t.x, out)
	case call:
		if t.fn == "tan" && !isConst(t.arg) {
			out = append(out, call{fn: "cos", arg: t.arg})
		}

		return singularities(t.arg, out)
	case binary:
		switch {
		case t.op == '/' && !isConst(t.r):
			out = append(out, t.r)
		case t.op == '^' && !isConst(t.l) && (!isConst(t.r) || t.r.eval(0) < 0):
			out = append(out, t.l)
		}
		out = singularities(t.l, out)

		return singularities(t.r, out)
	}

	return out
}

// checkInterior reports ErrUnavailable when f has a pole, a non-finite value
// or leaves its domain strictly inside (lo, hi).
func (f *Function) checkInterior(lo, hi float64) error {
	h := (hi - lo) / scanIntervals
	for i := 1; i < scanIntervals; i++ {
		x := lo + float64(i)*h
		if !finite(f.root.eval(x)) {
			return fmt.Errorf("%w: %s is not finite at %g", ErrUnavailable, f, x)
		}
	}
	for _, d := range singularities(f.root, nil) {
		if x, ok := vanishes(d, lo, hi); ok {
			return fmt.Errorf("%w: %s has a singularity near %g in (%g, %g)", ErrUnavailable, f, x, lo, hi)
		}
	}

	return nil
}

// vanishes looks for an interior zero of d on (lo, hi): exact grid zeros,
// sign changes that bisect down to a zero, and local minima of |d| that
// refine down to one.
func vanishes(d node, lo, hi float64) (float64, bool) {
	h := (hi - lo) / scanIntervals
	xs := make([]float64, scanIntervals+1)
	ds := make([]float64, scanIntervals+1)
	var peak float64
	for i := range xs {
		xs[i] = lo + float64(i)*h
		ds[i] = d.eval(xs[i])
		if finite(ds[i]) {
			peak = math.Max(peak, math.Abs(ds[i]))
		}
	}
	xs[scanIntervals] = hi
	ds[scanIntervals] = d.eval(hi)
	if peak == 0 {
		return lo, true
	}
	zero := func(x, v float64) bool {
		return x > lo && x < hi && (!finite(v) || math.Abs(v) <= rootRel*peak)
	}

	for i := 1; i < scanIntervals; i++ {
		if ds[i] == 0 || !finite(ds[i]) {
			return xs[i], true
		}
	}
	for i := 0; i < scanIntervals; i++ {
		if ds[i]*ds[i+1] < 0 {
			if x, v := bisect(d, xs[i], xs[i+1], ds[i]); zero(x, v) {
				return x, true
			}
		}
	}
	for i := 1; i < scanIntervals; i++ {
		a := math.Abs(ds[i])
		if a < math.Abs(ds[i-1]) && a <= math.Abs(ds[i+1]) {
			if x, v := golden(d, xs[i-1], xs[i+1]); zero(x, v) {
				return x, true
			}
		}
	}

	return 0, false
}

// bisect narrows a sign change of d on [l, r]; dl is d(l).
func bisect(d node, l, r, dl float64) (float64, float64) {
	for range refineSteps {
		m := l + (r-l)/2
		if m <= l || m >= r {
			break
		}
		dm := d.eval(m)
		if dm == 0 || !finite(dm) {
			return m, dm
		}
		if (dm < 0) == (dl < 0) {
			l, dl = m, dm
		} else {
			r = m
		}
	}
	if dr := d.eval(r); math.Abs(dr) < math.Abs(dl) {
		return r, dr
	}

	return l, dl
}

// golden minimizes |d| on [a, b] by golden-section search.
func golden(d node, a, b float64) (float64, float64) {
	const invPhi = 0.6180339887498949
	abs := func(x float64) float64 { return math.Abs(d.eval(x)) }
	c, e := b-invPhi*(b-a), a+invPhi*(b-a)
	fc, fe := abs(c), abs(e)
	for range refineSteps {
		if fc < fe {
			b, e, fe = e, c, fc
			c = b - invPhi*(b-a)
			fc = abs(c)
		} else {
			a, c, fc = c, e, fe
			e = a + invPhi*(b-a)
			fe = abs(e)
		}
	}
	x := a + (b-a)/2

	return x, d.eval(x)
}
