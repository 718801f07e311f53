// SPDX-License-Identifier: MIT

package worksheet

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/numerics/expr"
	"github.com/katalvlaran/numerics/floatbits"
	"github.com/katalvlaran/numerics/gauss"
	"github.com/katalvlaran/numerics/input"
	"github.com/katalvlaran/numerics/internal/ctxlog"
	"github.com/katalvlaran/numerics/interp"
	"github.com/katalvlaran/numerics/lsq"
	"github.com/katalvlaran/numerics/quad"
	"github.com/katalvlaran/numerics/roots"
	"github.com/katalvlaran/numerics/taylor"
)

// Outcome is the result of one problem. Report is set whenever the engine
// produced a result, including soft failures such as an exhausted
// iteration budget; Err is nil on success.
type Outcome struct {
	ID     uuid.UUID
	Name   string
	Kind   Kind
	Report string
	Err    error
}

// Run executes the problems of ws in order and returns one Outcome per
// problem. Once ctx is done the remaining problems are not started and
// their outcomes carry ctx.Err().
func Run(ctx context.Context, ws *Worksheet) []Outcome {
	logger := ctxlog.FromContext(ctx).With("worksheet", ws.Name)
	out := make([]Outcome, len(ws.Problems))

	for i, p := range ws.Problems {
		o := Outcome{ID: uuid.New(), Name: p.Name, Kind: p.Kind}
		if err := ctx.Err(); err != nil {
			o.Err = err
			out[i] = o
			continue
		}

		log := logger.With("id", o.ID, "problem", p.Name, "kind", p.Kind.String())
		log.Debug("Problem started")
		start := time.Now()
		o.Report, o.Err = solve(p, ws.Defaults)
		if o.Err != nil {
			log.Warn("Problem failed", "duration", time.Since(start), "error", o.Err)
		} else {
			log.Info("Problem solved", "duration", time.Since(start))
		}
		out[i] = o
	}

	return out
}

func solve(p Problem, d Defaults) (string, error) {
	if err := p.validate(); err != nil {
		return "", err
	}
	switch p.Kind {
	case KindFloat:
		a, err := floatbits.Decompose(p.Value)
		if err != nil {
			return "", err
		}
		return a.Report(), nil

	case KindBisection:
		fn, err := expr.Parse(p.Function)
		if err != nil {
			return "", err
		}
		opts := roots.DefaultBisectionOptions()
		opts.Tolerance, opts.MaxIter = tuning(p, d, opts.Tolerance, opts.MaxIter)
		res, err := roots.Bisection(fn.Eval, *p.A, *p.B, opts)
		if res == nil {
			return "", err
		}
		return res.Report(), err

	case KindNewton:
		fn, err := expr.Parse(p.Function)
		if err != nil {
			return "", err
		}
		opts := roots.DefaultNewtonOptions()
		opts.Tolerance, opts.MaxIter = tuning(p, d, opts.Tolerance, opts.MaxIter)
		res, err := roots.NewtonExpr(fn, *p.X0, opts)
		if res == nil {
			return "", err
		}
		return res.Report(), err

	case KindGauss:
		a, err := input.Matrix(p.Matrix)
		if err != nil {
			return "", err
		}
		b, err := input.Vector(p.RHS)
		if err != nil {
			return "", err
		}
		pivoting := d.Pivoting
		if p.Pivoting != nil {
			pivoting = *p.Pivoting
		}
		res, err := gauss.Solve(a, b, gauss.WithPivoting(pivoting))
		if res == nil {
			return "", err
		}
		return res.Report(), err

	case KindLagrange:
		pts, err := input.Points(p.Points)
		if err != nil {
			return "", err
		}
		var opts []interp.Option
		if p.X != nil {
			opts = append(opts, interp.WithEstimate(*p.X))
		}
		res, err := interp.Lagrange(pts, opts...)
		if err != nil {
			return "", err
		}
		return res.Report(), nil

	case KindLSQ:
		pts, err := input.Points(p.Points)
		if err != nil {
			return "", err
		}
		m, err := model(p)
		if err != nil {
			return "", err
		}
		res, err := lsq.Fit(pts, m)
		if err != nil {
			return "", err
		}
		return res.Report(), nil

	case KindQuad:
		fn, err := expr.Parse(p.Function)
		if err != nil {
			return "", err
		}
		r, err := rule(p)
		if err != nil {
			return "", err
		}
		res, err := quad.Integrate(fn, *p.A, *p.B, r)
		if err != nil {
			return "", err
		}
		return res.Report(), nil

	case KindTaylor:
		fn, err := taylor.ParseFunction(p.Function)
		if err != nil {
			return "", err
		}
		res, err := taylor.Approximate(fn, *p.X, p.Terms)
		if err != nil {
			return "", err
		}
		return res.Report(), nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownKind, p.Kind)
}

// tuning layers the worksheet defaults and then the problem's own values
// over a method's defaults. A zero MaxIter at either level keeps the value
// below it.
func tuning(p Problem, d Defaults, tol float64, maxIter int) (float64, int) {
	if d.Tolerance != 0 {
		tol = d.Tolerance
	}
	if d.MaxIter != 0 {
		maxIter = d.MaxIter
	}
	if p.Tolerance != nil {
		tol = *p.Tolerance
	}
	if p.MaxIter != nil && *p.MaxIter != 0 {
		maxIter = *p.MaxIter
	}

	return tol, maxIter
}

func model(p Problem) (lsq.Model, error) {
	switch p.Model {
	case ModelLinear:
		return lsq.Linear(), nil
	case ModelPolynomial:
		return lsq.Polynomial(p.Degree), nil
	case ModelExponential:
		return lsq.Exponential(), nil
	case ModelFourier:
		return lsq.Fourier(p.Degree), nil
	}

	return nil, fmt.Errorf("%w: model %s", ErrInvalidField, p.Model)
}

func rule(p Problem) (quad.Rule, error) {
	switch p.Rule {
	case RuleTrapezoid:
		return quad.Trapezoid(p.N), nil
	case RuleSimpson13:
		return quad.Simpson13(p.N), nil
	case RuleSimpson38:
		return quad.Simpson38(p.N), nil
	case RuleGauss:
		return quad.GaussLegendre(p.N), nil
	}

	return nil, fmt.Errorf("%w: rule %s", ErrInvalidField, p.Rule)
}
