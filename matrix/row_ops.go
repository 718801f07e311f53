// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations on *Dense.
//
// The row operations below preserve the solution set of an augmented
// system [A | b]; Solve and gauss.Solve are built exclusively from them.
// They mutate the receiver in place and write straight into the backing
// buffer (no NaN/Inf policy check), so an elimination can record whatever
// arithmetic produced.

package matrix

// SwapRows exchanges rows i and j in place. Swapping a row with itself is a no-op.
// Errors: ErrOutOfRange.
// Complexity: O(c).
func (m *Dense) SwapRows(i, j int) error {
	if i < 0 || i >= m.r {
		return matrixErrorf(opRowOp, denseErrorf("SwapRows", i, j, ErrOutOfRange))
	}
	if j < 0 || j >= m.r {
		return matrixErrorf(opRowOp, denseErrorf("SwapRows", i, j, ErrOutOfRange))
	}
	if i == j {
		return nil
	}
	ri, rj := m.data[i*m.c:(i+1)*m.c], m.data[j*m.c:(j+1)*m.c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}

	return nil
}

// AddScaledRow performs row dst ← row dst + alpha·row src in place.
// Errors: ErrOutOfRange.
// Complexity: O(c).
func (m *Dense) AddScaledRow(dst, src int, alpha float64) error {
	if dst < 0 || dst >= m.r || src < 0 || src >= m.r {
		return matrixErrorf(opRowOp, denseErrorf("AddScaledRow", dst, src, ErrOutOfRange))
	}
	rd, rs := m.data[dst*m.c:(dst+1)*m.c], m.data[src*m.c:(src+1)*m.c]
	for k := range rd {
		rd[k] += alpha * rs[k]
	}

	return nil
}

// RowScales returns, for every row, the largest |m[i,j]| over the first cols
// columns. Elimination compares each pivot with the scale of its own row, so
// a pivot test does not depend on the units of the system.
// Errors: ErrOutOfRange when cols is not in [1, Cols].
// Complexity: O(r*cols).
func (m *Dense) RowScales(cols int) ([]float64, error) {
	if cols < 1 || cols > m.c {
		return nil, matrixErrorf(opRowOp, denseErrorf("RowScales", 0, cols, ErrOutOfRange))
	}
	s := make([]float64, m.r)
	for i := range s {
		for _, v := range m.data[i*m.c : i*m.c+cols] {
			if a := abs(v); a > s[i] {
				s[i] = a
			}
		}
	}

	return s, nil
}

// ArgMaxAbsInColumn returns the row index in [from, Rows) holding the largest
// |m[i,col]|, the first one on ties. It is the partial-pivoting search.
// Errors: ErrOutOfRange.
// Complexity: O(r).
func (m *Dense) ArgMaxAbsInColumn(col, from int) (int, error) {
	if col < 0 || col >= m.c || from < 0 || from >= m.r {
		return 0, matrixErrorf(opRowOp, denseErrorf("ArgMaxAbsInColumn", from, col, ErrOutOfRange))
	}
	best, bestAbs := from, abs(m.data[from*m.c+col])
	for i := from + 1; i < m.r; i++ {
		if v := abs(m.data[i*m.c+col]); v > bestAbs {
			best, bestAbs = i, v
		}
	}

	return best, nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
