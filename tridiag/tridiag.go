// SPDX-License-Identifier: MIT
// Package tridiag: the Thomas sweep kernel. See doc.go for the contract.

package tridiag

import (
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

// opSolve tags all wrapped errors from this package for uniform reporting.
const opSolve = "tridiag.Solve"

// tridiagErrorf wraps err with the operation tag, preserving it for errors.Is.
func tridiagErrorf(err error) error {
	return fmt.Errorf("%s: %w", opSolve, err)
}

// Solve computes x for the tridiagonal system s using the Thomas algorithm.
//
// Implementation:
//   - Stage 1: validate the shared vector length.
//   - Stage 2: forward sweep — build α[1..n], β[1..n] from the seeded
//     α[0]=β[0]=0, guarding each denominator against exact zero.
//   - Stage 3: backward sweep — x[n−1]=β[n], then x[i]=α[i+1]·x[i+1]+β[i+1].
//
// Behavior highlights:
//   - Inputs are read-only; α, β and x are fresh allocations.
//   - Fixed sweep orders; identical inputs give identical output.
//   - Diagonal dominance is assumed, never checked: non-dominant input may
//     return an inaccurate result without error.
//
// Returns:
//   - []float64: solution x of length n.
//
// Errors:
//   - ErrBadSystem from entry validation.
//   - ErrZeroDenominator when Sub[i]·α[i] + Diag[i] == 0 at any step.
//
// Complexity:
//   - Time O(n), Space O(n) for the two coefficient vectors and x.
func Solve(s System) ([]float64, error) {
	// Validate the system shape before any allocation.
	if err := s.validate(); err != nil {
		return nil, tridiagErrorf(err)
	}
	n := s.Dim()

	// Forward sweep: recurrence coefficients of length n+1, seeded at zero.
	alpha := make([]float64, n+1)
	beta := make([]float64, n+1)
	var (
		i     int
		denom float64
	)
	for i = 0; i < n; i++ {
		denom = s.Sub[i]*alpha[i] + s.Diag[i]
		if denom == 0 {
			return nil, tridiagErrorf(ErrZeroDenominator)
		}
		alpha[i+1] = -s.Super[i] / denom
		beta[i+1] = (s.RHS[i] - s.Sub[i]*beta[i]) / denom
	}

	// Backward sweep: unfold the recurrence from the last unknown.
	x := make([]float64, n)
	x[n-1] = beta[n]
	for i = n - 2; i >= 0; i-- {
		x[i] = alpha[i+1]*x[i+1] + beta[i+1]
	}

	return x, nil
}

// SolveDiagonals is a convenience wrapper over Solve for callers holding the
// four vectors directly: sub-diagonal a (a[0] ignored), main diagonal b,
// super-diagonal c (c[n-1] ignored) and right-hand side f.
// Errors and complexity match Solve.
func SolveDiagonals(sub, diag, super, rhs []float64) ([]float64, error) {
	s, err := NewSystem(sub, diag, super, rhs)
	if err != nil {
		return nil, tridiagErrorf(err)
	}

	return Solve(s)
}

// Residual reports max-norm(T·x − RHS) for a computed solution, using the
// dense materialization of the system. Intended for tests and diagnostics.
// Complexity: O(n²) via Dense; prefer sparse accumulation if this ever moves
// to a hot path.
func Residual(s System, x []float64) (float64, error) {
	d, rhs, err := s.Dense()
	if err != nil {
		return 0, tridiagErrorf(err)
	}

	return matrix.ResidualMaxNorm(d, x, rhs)
}
