// Package tridiag_test contains unit tests for the Thomas solver.
package tridiag_test

import (
	"testing"

	"github.com/katalvlaran/linsolve/gauss"
	"github.com/katalvlaran/linsolve/tridiag"
	"github.com/stretchr/testify/require"
)

// solveTol bounds the acceptable deviation on well-conditioned fixtures.
const solveTol = 1e-12

// TestSolveKnownSystem checks the documented 3x3 scenario: x ≈ [0.5, 0, 0.5].
func TestSolveKnownSystem(t *testing.T) {
	s, err := tridiag.NewSystem(
		[]float64{0, 1, 1}, // sub-diagonal, first entry ignored
		[]float64{2, 2, 2}, // main diagonal
		[]float64{1, 1, 0}, // super-diagonal, last entry ignored
		[]float64{1, 1, 1}, // right-hand side
	)
	require.NoError(t, err)

	x, err := tridiag.Solve(s) // run the Thomas sweeps
	require.NoError(t, err)

	require.InDelta(t, 0.5, x[0], solveTol) // x0 = 0.5
	require.InDelta(t, 0.0, x[1], solveTol) // x1 = 0
	require.InDelta(t, 0.5, x[2], solveTol) // x2 = 0.5
}

// TestSolveAgreesWithDense cross-validates against the dense solver on a
// diagonally dominant 6x6 system via the Dense materialization.
func TestSolveAgreesWithDense(t *testing.T) {
	n := 6
	sub := make([]float64, n)
	diag := make([]float64, n)
	super := make([]float64, n)
	rhs := make([]float64, n)
	for i := 0; i < n; i++ {
		sub[i] = -1                // a_i
		diag[i] = 4 + float64(i)   // dominant main diagonal
		super[i] = -1              // c_i
		rhs[i] = float64(i*i) + 1  // arbitrary but fixed RHS
	}
	s, err := tridiag.NewSystem(sub, diag, super, rhs)
	require.NoError(t, err)

	xThomas, err := tridiag.Solve(s) // banded solve
	require.NoError(t, err)

	d, f, err := s.Dense() // equivalent dense system
	require.NoError(t, err)
	xDense, err := gauss.Solve(d, f) // dense solve on the same data
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		require.InDelta(t, xDense[i], xThomas[i], solveTol) // componentwise agreement
	}

	norm, err := tridiag.Residual(s, xThomas) // and the residual stays tiny
	require.NoError(t, err)
	require.LessOrEqual(t, norm, solveTol)
}

// TestSolveZeroDenominator ensures the division-by-zero condition surfaces.
func TestSolveZeroDenominator(t *testing.T) {
	// Diag[0] == 0 makes the first denominator exactly zero (α[0]=0).
	s, err := tridiag.NewSystem(
		[]float64{0, 1},
		[]float64{0, 2},
		[]float64{1, 0},
		[]float64{1, 1},
	)
	require.NoError(t, err)

	_, err = tridiag.Solve(s)
	require.ErrorIs(t, err, tridiag.ErrZeroDenominator) // expect the typed failure
}

// TestNewSystemValidation ensures malformed vector sets are rejected.
func TestNewSystemValidation(t *testing.T) {
	_, err := tridiag.NewSystem(nil, nil, nil, nil) // all nil
	require.ErrorIs(t, err, tridiag.ErrBadSystem)

	_, err = tridiag.NewSystem( // mismatched lengths
		[]float64{0, 1},
		[]float64{2, 2, 2},
		[]float64{1, 0},
		[]float64{1, 1},
	)
	require.ErrorIs(t, err, tridiag.ErrBadSystem)

	_, err = tridiag.SolveDiagonals([]float64{0}, []float64{2, 2}, []float64{0}, []float64{1}) // wrapper path
	require.ErrorIs(t, err, tridiag.ErrBadSystem)
}

// TestSolveDoesNotMutateInput verifies the read-only contract and idempotence.
func TestSolveDoesNotMutateInput(t *testing.T) {
	sub := []float64{0, 1, 1}
	diag := []float64{2, 2, 2}
	super := []float64{1, 1, 0}
	rhs := []float64{1, 1, 1}
	s, err := tridiag.NewSystem(sub, diag, super, rhs)
	require.NoError(t, err)

	first, err := tridiag.Solve(s) // first run
	require.NoError(t, err)

	require.Equal(t, []float64{0, 1, 1}, sub)   // inputs untouched
	require.Equal(t, []float64{2, 2, 2}, diag)
	require.Equal(t, []float64{1, 1, 0}, super)
	require.Equal(t, []float64{1, 1, 1}, rhs)

	second, err := tridiag.Solve(s) // second run on the same system
	require.NoError(t, err)
	require.Equal(t, first, second) // identical output across runs
}

// TestDenseShape checks the materialized dense equivalent band placement.
func TestDenseShape(t *testing.T) {
	s, err := tridiag.NewSystem(
		[]float64{0, 5},
		[]float64{1, 2},
		[]float64{3, 0},
		[]float64{7, 8},
	)
	require.NoError(t, err)

	d, f, err := s.Dense()
	require.NoError(t, err)
	require.Equal(t, []float64{7, 8}, f) // RHS copied verbatim

	want := [][]float64{{1, 3}, {5, 2}} // bands in place, zeros elsewhere
	var v float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, err = d.At(i, j)
			require.NoError(t, err)
			require.Equal(t, want[i][j], v)
		}
	}
}
