// SPDX-License-Identifier: MIT

// Package gauss solves square linear systems A·x = b by Gaussian elimination
// and records every row operation for display.
//
// The augmented tableau [A | b] is reduced to upper-triangular form with
// the elementary row operations of package matrix, then solved by back
// substitution. Each step carries a label in the classroom notation
// ("L2 = L2 - (0.500)*L1", "swap L1 <-> L3") and, for forward steps, a deep
// copy of the tableau after the operation.
//
// Partial pivoting is on by default and can be disabled with
// WithPivoting(false) to show how a small pivot damages the result. In both
// modes a pivot with |p| <= tolerance stops the run with ErrSingular rather
// than dividing by it.
//
// ⚙️ Usage:
//
//	a, _ := matrix.NewDenseFrom([][]float64{{2, 1}, {1, 3}})
//	res, err := gauss.Solve(a, []float64{3, 5})
//	// res.X ≈ [0.8 1.4], res.Steps holds the trace, res.Report() renders it.
package gauss
