// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/numerics/internal/textfmt"
	"github.com/katalvlaran/numerics/matrix"
)

// reportDecimals is the precision of tableau snapshots in Report.
const reportDecimals = 4

// StepKind classifies a recorded step.
type StepKind int

const (
	// StepPivot is the partial-pivoting decision for one column (swap or keep).
	StepPivot StepKind = iota
	// StepEliminate is one row operation L_i = L_i − factor·L_k.
	StepEliminate
	// StepBack is one back-substitution solve for x_i.
	StepBack
)

func (k StepKind) String() string {
	switch k {
	case StepPivot:
		return "pivot"
	case StepEliminate:
		return "eliminate"
	default:
		return "back"
	}
}

// Step is one entry of the elimination trace. Rows are 0-based; labels are 1-based.
type Step struct {
	Kind  StepKind
	Label string

	// Column is the elimination column k (pivot and eliminate steps).
	Column int
	// Row is the swapped-in row (pivot), the target row (eliminate) or the
	// unknown being solved (back).
	Row int

	Swapped bool    // pivot: rows Column and Row were exchanged
	Factor  float64 // eliminate: the multiplier M[i,k]/M[k,k]
	Value   float64 // back: the solved x_i

	// Snapshot is the tableau after a pivot or elimination step; nil for back steps.
	Snapshot *matrix.Dense
}

// Result is the outcome of Solve.
type Result struct {
	X        []float64
	Pivoting bool
	// Initial is [A | b] before any operation; Upper is the reduced tableau.
	Initial *matrix.Dense
	Upper   *matrix.Dense
	Steps   []Step
	// Residual is ‖A·x − b‖∞.
	Residual float64
}

// Solve reduces [A | b] and back-substitutes. Neither a nor b is modified.
//
// Implementation:
//   - Stage 1: M = [A | b] via matrix.Augment; s_i = max_j |A[i,j]| is the
//     reference magnitude of row i and travels with it through swaps.
//   - Stage 2: for k = 0..n−2, with pivoting pick max |M[i,k]| for i ≥ k and
//     swap it into row k, recording the decision even when no swap happens;
//     fail when |M[k,k]| <= tol·s_k; for every i > k apply
//     L_i ← L_i − (M[i,k]/M[k,k])·L_k and record a snapshot.
//   - Stage 3: for i = n−1..0 check |M[i,i]| > tol·s_i and solve for x_i.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch,
//     matrix.ErrNaNInf from the tableau construction.
//   - ErrSingular on a pivot at or below tolerance. The partial Result (trace
//     up to the failing column, X nil) is returned with it.
//
// Complexity: O(n³) time, O(n³) memory for the snapshots.
func Solve(a matrix.Matrix, b []float64, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	m, err := matrix.Augment(a, b, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("gauss: Solve: %w", err)
	}
	n := m.Rows()
	scale, err := m.RowScales(n)
	if err != nil {
		return nil, fmt.Errorf("gauss: Solve: %w", err)
	}
	res := &Result{Pivoting: o.pivoting, Initial: snapshot(m)}

	var p, v float64
	for k := 0; k < n-1; k++ {
		if o.pivoting {
			st, err := pivot(m, k, scale)
			if err != nil {
				return nil, fmt.Errorf("gauss: Solve: %w", err)
			}
			res.Steps = append(res.Steps, st)
		}
		if p, err = m.At(k, k); err != nil {
			return nil, fmt.Errorf("gauss: Solve: %w", err)
		}
		if math.Abs(p) <= o.tol*scale[k] {
			res.Upper = snapshot(m)

			return res, fmt.Errorf("gauss: Solve: column %d pivot %g: %w", k, p, ErrSingular)
		}
		for i := k + 1; i < n; i++ {
			if v, err = m.At(i, k); err != nil {
				return nil, fmt.Errorf("gauss: Solve: %w", err)
			}
			factor := v / p
			if err = m.AddScaledRow(i, k, -factor); err != nil {
				return nil, fmt.Errorf("gauss: Solve: %w", err)
			}
			if err = m.Set(i, k, 0); err != nil {
				return nil, fmt.Errorf("gauss: Solve: %w", err)
			}
			res.Steps = append(res.Steps, Step{
				Kind:     StepEliminate,
				Label:    fmt.Sprintf("L%d = L%d - (%.3f)*L%d", i+1, i+1, factor, k+1),
				Column:   k,
				Row:      i,
				Factor:   factor,
				Snapshot: snapshot(m),
			})
		}
	}
	res.Upper = snapshot(m)

	u := m.RawRows()
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		d := u[i][i]
		if math.Abs(d) <= o.tol*scale[i] {
			return res, fmt.Errorf("gauss: Solve: row %d diagonal %g: %w", i, d, ErrSingular)
		}
		sum := u[i][n]
		for j := i + 1; j < n; j++ {
			sum -= u[i][j] * x[j]
		}
		x[i] = sum / d
		res.Steps = append(res.Steps, Step{
			Kind:  StepBack,
			Label: fmt.Sprintf("x%d = %.6g", i+1, x[i]),
			Row:   i,
			Value: x[i],
		})
	}
	res.X = x

	ax, err := matrix.MatVec(a, x)
	if err != nil {
		return nil, fmt.Errorf("gauss: Solve: residual: %w", err)
	}
	for i := range ax {
		res.Residual = math.Max(res.Residual, math.Abs(ax[i]-b[i]))
	}

	return res, nil
}

// pivot moves the largest |M[i,k]|, i ≥ k, into row k and keeps the row
// scales aligned with the rows.
func pivot(m *matrix.Dense, k int, scale []float64) (Step, error) {
	p, err := m.ArgMaxAbsInColumn(k, k)
	if err != nil {
		return Step{}, err
	}
	s := Step{Kind: StepPivot, Column: k, Row: p}
	if p != k {
		if err = m.SwapRows(k, p); err != nil {
			return Step{}, err
		}
		scale[k], scale[p] = scale[p], scale[k]
		s.Swapped = true
		s.Label = fmt.Sprintf("swap L%d <-> L%d", k+1, p+1)
	} else {
		s.Label = fmt.Sprintf("pivot L%d kept", k+1)
	}
	s.Snapshot = snapshot(m)

	return s, nil
}

func snapshot(m *matrix.Dense) *matrix.Dense {
	return m.Clone().(*matrix.Dense)
}

// Report renders the initial tableau, every step and the solution.
func (r *Result) Report() string {
	var sb strings.Builder
	title := "Gaussian elimination"
	if r.Pivoting {
		title += " with partial pivoting"
	}
	sb.WriteString(textfmt.Section(title))
	sb.WriteString("\ninitial augmented matrix:\n")
	sb.WriteString(r.Initial.Format(reportDecimals))
	sb.WriteString("\n")

	for _, s := range r.Steps {
		if s.Kind == StepBack {
			continue
		}
		fmt.Fprintf(&sb, "\n--- %s ---\n%s\n", s.Label, s.Snapshot.Format(reportDecimals))
	}

	if r.X == nil {
		sb.WriteString("\nno unique solution")

		return sb.String()
	}
	sb.WriteString("\nback substitution:\n")
	for _, s := range r.Steps {
		if s.Kind == StepBack {
			sb.WriteString("  " + s.Label + "\n")
		}
	}
	rows := make([][]string, len(r.X))
	for i, v := range r.X {
		rows[i] = []string{fmt.Sprintf("x%d", i+1), textfmt.F(v, 8)}
	}
	sb.WriteString(textfmt.Table([]string{"unknown", "value"}, rows))
	fmt.Fprintf(&sb, "\nresidual ‖Ax - b‖∞ = %s", textfmt.E(r.Residual, 3))

	return sb.String()
}
