// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Augment builds the n×(n+1) augmented matrix [A | b] as a fresh Dense.
// A and b must be finite whatever the policy; opts only shape how the
// returned tableau treats later Set calls.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (A), ErrDimensionMismatch (len(b) != n),
//     ErrNaNInf (non-finite entries in A or b).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Augment(a Matrix, b []float64, opts ...Option) (*Dense, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, err
	}
	n := a.Rows()
	if err := ValidateVecLen(b, n); err != nil {
		return nil, err
	}
	if err := ValidateFinite(b); err != nil {
		return nil, err
	}
	m, err := NewDense(n, n+1, opts...)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < n; i++ {
		row := m.data[i*m.c : i*m.c+n]
		for j := range row {
			if v, err = a.At(i, j); err != nil {
				return nil, err
			}
			row[j] = v
		}
		if err = ValidateFinite(row); err != nil {
			return nil, denseErrorf("Augment", i, 0, err)
		}
		m.data[i*m.c+n] = b[i]
	}
	return m, nil
}

// Solve returns x with A·x = b using Gaussian elimination with partial
// pivoting followed by back substitution. Neither A nor b is mutated.
//
// Implementation:
//   - Stage 1: build [A | b] via Augment.
//   - Stage 2: for k = 0..n−1 pick the largest |M[i,k]|, i ≥ k; fail
//     ErrSingular when it is <= eps times the largest |A| entry of its own
//     row; swap it up and eliminate below.
//   - Stage 3: back substitution x[i] = (M[i,n] − Σ_{j>i} M[i,j]x[j]) / M[i,i].
//
// Errors:
//   - Anything Augment reports, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Solve(a Matrix, b []float64, opts ...Option) ([]float64, error) {
	m, err := Augment(a, b, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	o := gatherOptions(opts...)
	n := m.r

	scale, err := m.RowScales(n)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	var i, k, p int
	var factor float64
	for k = 0; k < n; k++ {
		if p, err = m.ArgMaxAbsInColumn(k, k); err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
		if abs(m.data[p*m.c+k]) <= o.eps*scale[p] {
			return nil, matrixErrorf(opSolve, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		if err = m.SwapRows(k, p); err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
		scale[k], scale[p] = scale[p], scale[k]
		for i = k + 1; i < n; i++ {
			factor = m.data[i*m.c+k] / m.data[k*m.c+k]
			if factor == 0 {
				continue
			}
			if err = m.AddScaledRow(i, k, -factor); err != nil {
				return nil, matrixErrorf(opSolve, err)
			}
			m.data[i*m.c+k] = 0
		}
	}

	return backSubstitute(m), nil
}

// backSubstitute solves an upper-triangular augmented system whose diagonal
// has already been checked non-zero.
func backSubstitute(m *Dense) []float64 {
	n := m.r
	x := make([]float64, n)
	var sum float64
	for i := n - 1; i >= 0; i-- {
		sum = m.data[i*m.c+n]
		for j := i + 1; j < n; j++ {
			sum -= m.data[i*m.c+j] * x[j]
		}
		x[i] = sum / m.data[i*m.c+i]
	}

	return x
}
