// Package gauss_test contains unit tests for the dense elimination solver.
package gauss_test

import (
	"testing"

	"github.com/katalvlaran/linsolve/gauss"
	"github.com/katalvlaran/linsolve/matrix"
	"github.com/stretchr/testify/require"
)

// solveTol bounds the acceptable residual max-norm on well-conditioned fixtures.
const solveTol = 1e-12

// TestSolveKnownSystem checks the documented 2x2 scenario: x ≈ [1/11, 7/11].
func TestSolveKnownSystem(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{{4, 1}, {1, 3}}) // SPD sample
	require.NoError(t, err)

	x, err := gauss.Solve(a, []float64{1, 2}) // solve A·x = f
	require.NoError(t, err)                   // nonsingular, must succeed

	require.InDelta(t, 1.0/11.0, x[0], 1e-12) // x[0] ≈ 0.0909
	require.InDelta(t, 7.0/11.0, x[1], 1e-12) // x[1] ≈ 0.6364
}

// TestSolveResidual verifies max-norm(A·x − f) stays tiny on a 4x4 system.
func TestSolveResidual(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{
		{10, 2, 1, 0},
		{1, 12, -1, 3},
		{2, -3, 9, 1},
		{0, 1, 2, 8},
	}) // diagonally dominant, well conditioned
	require.NoError(t, err)
	f := []float64{13, 15, 9, 11}

	x, err := gauss.Solve(a, f) // compute the solution
	require.NoError(t, err)

	norm, err := matrix.ResidualMaxNorm(a, x, f) // measure the residual
	require.NoError(t, err)
	require.LessOrEqual(t, norm, solveTol) // residual within rounding
}

// TestSolveSingular ensures a zero pivot surfaces ErrSingular.
func TestSolveSingular(t *testing.T) {
	// A[0][0] == 0 and no pivoting: the very first step must fail.
	a, err := matrix.NewDenseFromRows([][]float64{{0, 1}, {1, 1}})
	require.NoError(t, err)

	_, err = gauss.Solve(a, []float64{1, 2})    // attempt the solve
	require.ErrorIs(t, err, gauss.ErrSingular)  // expect the singular sentinel
}

// TestSolveLatentSingular ensures singularity appearing mid-elimination is caught.
func TestSolveLatentSingular(t *testing.T) {
	// Rows are linearly dependent; the zero pivot appears at step 1.
	a, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {2, 4}})
	require.NoError(t, err)

	_, err = gauss.Solve(a, []float64{1, 2})
	require.ErrorIs(t, err, gauss.ErrSingular) // dependent rows are singular
}

// TestSolvePivotTolerance checks the configurable near-zero pivot guard.
func TestSolvePivotTolerance(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{{1e-14, 1}, {1, 1}}) // tiny leading pivot
	require.NoError(t, err)
	f := []float64{1, 2}

	_, err = gauss.Solve(a, f) // exact-zero guard lets the tiny pivot through
	require.NoError(t, err)

	_, err = gauss.Solve(a, f, gauss.WithPivotTolerance(1e-10)) // widened guard
	require.ErrorIs(t, err, gauss.ErrSingular)                  // now rejected
}

// TestSolveDimensionMismatch ensures entry validation rejects bad shapes.
func TestSolveDimensionMismatch(t *testing.T) {
	a, err := matrix.NewDense(3, 3) // square matrix of dimension 3
	require.NoError(t, err)

	_, err = gauss.Solve(a, []float64{1, 2})             // RHS of length 2
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch) // expect mismatch sentinel

	rect, err := matrix.NewDense(2, 3) // non-square matrix
	require.NoError(t, err)
	_, err = gauss.Solve(rect, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrNonSquare) // expect non-square sentinel

	_, err = gauss.Solve(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix) // nil matrix sentinel
}

// TestSolveDoesNotMutateInput verifies the defensive-copy contract and
// idempotence: re-running on unmodified input yields the same result.
func TestSolveDoesNotMutateInput(t *testing.T) {
	rows := [][]float64{{4, 1}, {1, 3}}
	a, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	f := []float64{1, 2}

	first, err := gauss.Solve(a, f) // first run
	require.NoError(t, err)

	// Inputs must be byte-identical after the call.
	var i, j int
	var v float64
	for i = 0; i < 2; i++ {
		require.Equal(t, []float64{1, 2}[i], f[i]) // RHS untouched
		for j = 0; j < 2; j++ {
			v, err = a.At(i, j)
			require.NoError(t, err)
			require.Equal(t, rows[i][j], v) // matrix untouched
		}
	}

	second, err := gauss.Solve(a, f) // second run on the same input
	require.NoError(t, err)
	require.Equal(t, first, second) // bit-for-bit identical output
}

// TestWithPivotTolerancePanics ensures nonsensical option values fail loudly.
func TestWithPivotTolerancePanics(t *testing.T) {
	require.Panics(t, func() { gauss.WithPivotTolerance(-1) }) // negative is programmer error
}
