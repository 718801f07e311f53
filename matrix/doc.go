// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra primitives used by the
// numerical engines.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors.
//   - Kernels: Mul, Transpose, MatVec.
//   - Elementary row operations (SwapRows, AddScaledRow) and the RowScales
//     pivot reference shared by Solve and by the step-by-step Gaussian
//     elimination in package gauss.
//   - Solve, a partial-pivoting solver for square systems (normal equations
//     in least squares go through it).
//   - Builders: NewDenseFrom, Augment, Hilbert.
//
// All public functions validate eagerly and return sentinel errors from
// errors.go; nothing panics on user input.
package matrix
