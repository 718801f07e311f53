// SPDX-License-Identifier: MIT

package roots

import (
	"fmt"
	"math"
)

// Func is a real function of one variable.
type Func func(float64) float64

// Status is the terminal state of a run.
type Status int

const (
	// Converged means the stopping criterion was met.
	Converged Status = iota
	// MaxIterationsReached means the budget ran out; the estimate is the last iterate.
	MaxIterationsReached
	// DerivativeVanished means Newton stopped on |f′| below DerivativeGuard.
	DerivativeVanished
)

func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case MaxIterationsReached:
		return "max iterations reached"
	case DerivativeVanished:
		return "derivative vanished"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// DerivativeGuard is the |f′(xₙ)| under which Newton refuses to divide.
const DerivativeGuard = 1e-12

const (
	// DefaultTolerance is the stopping tolerance of both methods.
	DefaultTolerance = 1e-6
	// DefaultBisectionMaxIter bounds bisection runs.
	DefaultBisectionMaxIter = 100
	// DefaultNewtonMaxIter bounds Newton runs.
	DefaultNewtonMaxIter = 50
)

// BisectionOptions configures Bisection.
//
// Fields:
//   - Tolerance: stop when |f(c)| < Tolerance or (b−a)/2 < Tolerance.
//   - MaxIter: iteration budget.
type BisectionOptions struct {
	Tolerance float64
	MaxIter   int
}

// DefaultBisectionOptions returns Tolerance 1e-6, MaxIter 100.
func DefaultBisectionOptions() BisectionOptions {
	return BisectionOptions{Tolerance: DefaultTolerance, MaxIter: DefaultBisectionMaxIter}
}

// NewtonOptions configures Newton.
//
// Fields:
//   - Tolerance: stop when |xₙ₊₁ − xₙ| < Tolerance.
//   - MaxIter: iteration budget.
type NewtonOptions struct {
	Tolerance float64
	MaxIter   int
}

// DefaultNewtonOptions returns Tolerance 1e-6, MaxIter 50.
func DefaultNewtonOptions() NewtonOptions {
	return NewtonOptions{Tolerance: DefaultTolerance, MaxIter: DefaultNewtonMaxIter}
}

func validate(tol float64, maxIter int) error {
	if !(tol > 0) || math.IsInf(tol, 0) {
		return fmt.Errorf("%w: got %g", ErrBadTolerance, tol)
	}
	if maxIter <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadMaxIter, maxIter)
	}

	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
