// SPDX-License-Identifier: MIT

package gauss_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/numerics/gauss"
	"github.com/katalvlaran/numerics/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

func TestSolve_TwoByTwo(t *testing.T) {
	a := dense(t, [][]float64{{2, 1}, {1, 3}})
	res, err := gauss.Solve(a, []float64{3, 5})
	require.NoError(t, err)

	if diff := cmp.Diff([]float64{0.8, 1.4}, res.X, approx); diff != "" {
		t.Fatalf("X mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, res.Pivoting)
	assert.Less(t, res.Residual, 1e-12)

	require.Len(t, res.Steps, 4)
	piv := res.Steps[0]
	assert.Equal(t, gauss.StepPivot, piv.Kind)
	assert.False(t, piv.Swapped)
	assert.Equal(t, "pivot L1 kept", piv.Label)

	elim := res.Steps[1]
	assert.Equal(t, gauss.StepEliminate, elim.Kind)
	assert.Equal(t, "L2 = L2 - (0.500)*L1", elim.Label)
	assert.Equal(t, 0.5, elim.Factor)
	assert.Equal(t, [][]float64{{2, 1, 3}, {0, 2.5, 3.5}}, elim.Snapshot.RawRows())

	assert.Equal(t, gauss.StepBack, res.Steps[2].Kind)
	assert.Equal(t, 1, res.Steps[2].Row)
	assert.Equal(t, "x1 = 0.8", res.Steps[3].Label)

	// Inputs are untouched.
	assert.Equal(t, [][]float64{{2, 1}, {1, 3}}, a.RawRows())
	assert.Equal(t, [][]float64{{2, 1, 3}, {1, 3, 5}}, res.Initial.RawRows())
}

func TestSolve_PivotSwapIsRecorded(t *testing.T) {
	a := dense(t, [][]float64{{1, 1, 1}, {4, 2, 1}, {9, 3, 1}})
	res, err := gauss.Solve(a, []float64{6, 11, 18})
	require.NoError(t, err)

	if diff := cmp.Diff([]float64{1, 2, 3}, res.X, approx); diff != "" {
		t.Fatalf("X mismatch (-want +got):\n%s", diff)
	}
	first := res.Steps[0]
	assert.True(t, first.Swapped)
	assert.Equal(t, 2, first.Row)
	assert.Equal(t, "swap L1 <-> L3", first.Label)
	assert.Equal(t, []float64{9, 3, 1, 18}, first.Snapshot.RawRows()[0])

	// Upper triangle: everything below the diagonal is exactly zero.
	up := res.Upper.RawRows()
	for i := range up {
		for j := 0; j < i; j++ {
			assert.Zero(t, up[i][j], "U[%d][%d]", i, j)
		}
	}
}

func TestSolve_SnapshotsAreIndependent(t *testing.T) {
	a := dense(t, [][]float64{{1, 1, 1}, {4, 2, 1}, {9, 3, 1}})
	res, err := gauss.Solve(a, []float64{6, 11, 18})
	require.NoError(t, err)

	before := res.Steps[1].Snapshot.RawRows()
	require.NoError(t, res.Steps[1].Snapshot.Set(0, 0, 42))
	assert.NotEqual(t, 42.0, res.Steps[2].Snapshot.RawRows()[0][0])
	assert.Equal(t, before[1], res.Steps[1].Snapshot.RawRows()[1])
}

func TestSolve_PermutationInvariantWithPivoting(t *testing.T) {
	rows := [][]float64{{3, 2, -1}, {2, -2, 4}, {-1, 0.5, -1}}
	b := []float64{1, -2, 0}

	base, err := gauss.Solve(dense(t, rows), b)
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{1, -2, -2}, base.X, approx); diff != "" {
		t.Fatalf("X mismatch (-want +got):\n%s", diff)
	}

	perms := [][]int{{1, 0, 2}, {2, 1, 0}, {1, 2, 0}, {2, 0, 1}}
	for _, perm := range perms {
		pr := make([][]float64, len(rows))
		pb := make([]float64, len(b))
		for i, p := range perm {
			pr[i], pb[i] = rows[p], b[p]
		}
		res, err := gauss.Solve(dense(t, pr), pb)
		require.NoError(t, err)
		if diff := cmp.Diff(base.X, res.X, approx); diff != "" {
			t.Errorf("perm %v (-want +got):\n%s", perm, diff)
		}
	}
}

func TestSolve_WithoutPivoting(t *testing.T) {
	a := dense(t, [][]float64{{2, 1}, {1, 3}})
	res, err := gauss.Solve(a, []float64{3, 5}, gauss.WithPivoting(false))
	require.NoError(t, err)
	assert.False(t, res.Pivoting)
	for _, s := range res.Steps {
		assert.NotEqual(t, gauss.StepPivot, s.Kind)
	}
	if diff := cmp.Diff([]float64{0.8, 1.4}, res.X, approx); diff != "" {
		t.Fatalf("X mismatch (-want +got):\n%s", diff)
	}

	// A zero leading entry needs a swap: fatal without pivoting, fine with it.
	z := dense(t, [][]float64{{0, 1}, {1, 0}})
	res, err = gauss.Solve(z, []float64{1, 1}, gauss.WithPivoting(false))
	assert.ErrorIs(t, err, gauss.ErrSingular)
	require.NotNil(t, res)
	assert.Nil(t, res.X)

	res, err = gauss.Solve(z, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, res.X)
}

func TestSolve_Singular(t *testing.T) {
	a := dense(t, [][]float64{{1, 2}, {2, 4}})
	for _, pivoting := range []bool{true, false} {
		_, err := gauss.Solve(a, []float64{3, 6}, gauss.WithPivoting(pivoting))
		assert.ErrorIs(t, err, gauss.ErrSingular, "pivoting=%v", pivoting)
		assert.ErrorIs(t, err, matrix.ErrSingular, "pivoting=%v", pivoting)
	}

	one := dense(t, [][]float64{{0}})
	_, err := gauss.Solve(one, []float64{1})
	assert.ErrorIs(t, err, gauss.ErrSingular)

	near := dense(t, [][]float64{{1, 1}, {1, 1 + 1e-9}})
	_, err = gauss.Solve(near, []float64{1, 1})
	assert.NoError(t, err)
	_, err = gauss.Solve(near, []float64{1, 1}, gauss.WithTolerance(1e-6))
	assert.ErrorIs(t, err, gauss.ErrSingular)
}

// TestSolve_SmallScale checks that singularity is judged against the
// magnitude of each row, not an absolute floor.
func TestSolve_SmallScale(t *testing.T) {
	a := dense(t, [][]float64{{2e-13, 1e-13}, {1e-13, 3e-13}})
	for _, pivoting := range []bool{true, false} {
		res, err := gauss.Solve(a, []float64{3e-13, 5e-13}, gauss.WithPivoting(pivoting))
		require.NoError(t, err, "pivoting=%v", pivoting)
		assert.True(t, cmp.Equal([]float64{0.8, 1.4}, res.X, approx), "pivoting=%v: %v", pivoting, res.X)
		assert.Less(t, res.Residual, 1e-24)
	}

	tiny := dense(t, [][]float64{{1e-9, 0}, {0, 1e-9}})
	res, err := gauss.Solve(tiny, []float64{1e-9, 1e-9}, gauss.WithTolerance(1e-6))
	require.NoError(t, err)
	assert.True(t, cmp.Equal([]float64{1, 1}, res.X, approx))
}

func TestSolve_InputErrors(t *testing.T) {
	_, err := gauss.Solve(dense(t, [][]float64{{1, 2}, {3, 4}}), []float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = gauss.Solve(dense(t, [][]float64{{1, 2, 3}, {3, 4, 5}}), []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = gauss.Solve(nil, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	assert.False(t, errors.Is(err, gauss.ErrSingular))

	assert.Panics(t, func() { gauss.WithTolerance(-1) })
}

func TestSolve_Hilbert(t *testing.T) {
	const n = 6
	h, err := matrix.Hilbert(n)
	require.NoError(t, err)
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}
	b, err := matrix.MatVec(h, ones)
	require.NoError(t, err)

	res, err := gauss.Solve(h, b)
	require.NoError(t, err)
	if diff := cmp.Diff(ones, res.X, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
		t.Fatalf("Hilbert solve (-want +got):\n%s", diff)
	}
}

func TestSolve_MatchesMatrixSolve(t *testing.T) {
	a := dense(t, [][]float64{{4, -2, 1}, {-2, 4, -2}, {1, -2, 4}})
	b := []float64{11, -16, 17}

	res, err := gauss.Solve(a, b)
	require.NoError(t, err)
	x, err := matrix.Solve(a, b)
	require.NoError(t, err)
	if diff := cmp.Diff(x, res.X, approx); diff != "" {
		t.Fatalf("(-matrix.Solve +gauss.Solve):\n%s", diff)
	}
}

func TestSolve_Idempotent(t *testing.T) {
	a := dense(t, [][]float64{{1, 1, 1}, {4, 2, 1}, {9, 3, 1}})
	r1, err := gauss.Solve(a, []float64{6, 11, 18})
	require.NoError(t, err)
	r2, err := gauss.Solve(a, []float64{6, 11, 18})
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
}

func TestResult_Report(t *testing.T) {
	res, err := gauss.Solve(dense(t, [][]float64{{2, 1}, {1, 3}}), []float64{3, 5})
	require.NoError(t, err)
	r := res.Report()
	assert.Contains(t, r, "Gaussian elimination with partial pivoting")
	assert.Contains(t, r, "--- L2 = L2 - (0.500)*L1 ---")
	assert.Contains(t, r, "0.80000000")
	assert.Contains(t, r, "residual")

	bad, err := gauss.Solve(dense(t, [][]float64{{1, 2}, {2, 4}}), []float64{3, 6})
	require.Error(t, err)
	assert.Contains(t, bad.Report(), "no unique solution")
}
