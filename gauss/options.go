// SPDX-License-Identifier: MIT

package gauss

import "math"

// DefaultTolerance is the relative pivot threshold: a pivot p of row i with
// |p| <= tol·max_j |A[i,j]| marks the system as singular.
const DefaultTolerance = 1e-12

const panicToleranceInvalid = "gauss: WithTolerance: tolerance must be finite, non-negative"

// Option configures Solve.
type Option func(*options)

type options struct {
	pivoting bool
	tol      float64
}

func gatherOptions(opts ...Option) options {
	o := options{pivoting: true, tol: DefaultTolerance}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithPivoting turns partial pivoting on or off. It is on by default.
func WithPivoting(on bool) Option {
	return func(o *options) { o.pivoting = on }
}

// WithTolerance sets the relative singular-pivot threshold.
// Panics when tol is negative, NaN or ±Inf.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tol = tol }
}
