// SPDX-License-Identifier: MIT

// Package matrix - deterministic builders for well-known matrices.
package matrix

// Hilbert returns the n×n Hilbert matrix H[i,j] = 1/(i+j+1).
// It is the classic ill-conditioned test system: solving H·x = H·1 loses
// roughly 1.5 decimal digits per extra row.
// Errors: ErrInvalidDimensions when n <= 0.
func Hilbert(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opHilbert, err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.data[i*n+j] = 1 / float64(i+j+1)
		}
	}

	return m, nil
}
