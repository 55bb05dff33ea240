// SPDX-License-Identifier: MIT
// Package cholesky: factorization and SPD-solve kernels. See doc.go.

package cholesky

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/linsolve/matrix"
)

// ErrNotPositiveDefinite is returned when a diagonal radicand is not strictly
// positive during factorization. Fatal for the call, never retried.
var ErrNotPositiveDefinite = errors.New("cholesky: matrix is not positive-definite")

// DefaultSymmetryTolerance bounds the accepted |A[i,j]−A[j,i]| asymmetry at
// entry. Symmetric inputs assembled from floating-point arithmetic rarely
// match exactly, so a small slack is the practical default.
const DefaultSymmetryTolerance = 1e-9

// Operation tags for unified error wrapping.
const (
	opFactor = "cholesky.Factor"
	opSolve  = "cholesky.Solve"
)

// choleskyErrorf wraps err with an operation tag, preserving it for errors.Is.
func choleskyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Factor computes the lower-triangular L with A = L·Lᵗ.
//
// Implementation:
//   - Stage 1: validate square shape and symmetry within
//     DefaultSymmetryTolerance; take a private flat working copy of A.
//   - Stage 2: column-order recurrence over (i, j≤i) with explicit
//     accumulator loops; guard every radicand.
//
// Behavior highlights:
//   - The caller's matrix is never mutated.
//   - Fixed i→j→k loop order; identical inputs give identical output.
//   - diag(L) > 0 on success, strict upper triangle is exactly zero.
//
// Returns:
//   - *matrix.Dense: the factor L.
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrNonSquare / matrix.ErrAsymmetry from
//     entry validation.
//   - ErrNotPositiveDefinite when a radicand is ≤ 0.
//
// Complexity:
//   - Time O(n³/3), Space O(n²).
func Factor(a matrix.Matrix) (*matrix.Dense, error) {
	// Symmetry implies squareness; the validator checks both.
	if err := matrix.ValidateSymmetric(a, DefaultSymmetryTolerance); err != nil {
		return nil, choleskyErrorf(opFactor, err)
	}

	// Private working copy of A in flat row-major form.
	w, n, _, err := matrix.Flatten(a)
	if err != nil {
		return nil, choleskyErrorf(opFactor, err)
	}

	// l holds the factor in the same flat layout; upper triangle stays zero.
	l := make([]float64, n*n)
	var (
		i, j, k  int     // loop iterators (fixed order)
		sum      float64 // running accumulator for the inner products
		radicand float64 // A[i][i] − Σ L[i][k]²
		baseI    int     // flat offset of row i
		baseJ    int     // flat offset of row j
	)
	for i = 0; i < n; i++ {
		baseI = i * n
		for j = 0; j <= i; j++ {
			baseJ = j * n
			// Σ_{k<j} L[i][k]·L[j][k] — for i==j this is Σ L[i][k]².
			sum = matrix.ZeroSum
			for k = 0; k < j; k++ {
				sum += l[baseI+k] * l[baseJ+k]
			}

			if i == j {
				radicand = w[baseI+i] - sum
				if radicand <= 0 {
					return nil, choleskyErrorf(opFactor, ErrNotPositiveDefinite)
				}
				l[baseI+i] = math.Sqrt(radicand)
			} else {
				// L[j][j] > 0 is guaranteed by the radicand guard above.
				l[baseI+j] = (w[baseI+j] - sum) / l[baseJ+j]
			}
		}
	}

	return matrix.NewDenseFromFlat(n, n, l)
}

// Solve computes x with A·x = f for symmetric positive-definite A by
// factoring A = L·Lᵗ and running two triangular sweeps:
// forward L·y = f, then backward Lᵗ·x = y.
//
// Errors: everything Factor reports, plus matrix.ErrDimensionMismatch when
// len(f) disagrees with A. No partial result is returned on failure.
// Complexity: Time O(n³/3) for the factorization plus O(n²) for the sweeps.
func Solve(a matrix.Matrix, f []float64) ([]float64, error) {
	// Validate the full system shape before factoring.
	if err := matrix.ValidateSystem(a, f); err != nil {
		return nil, choleskyErrorf(opSolve, err)
	}

	l, err := Factor(a)
	if err != nil {
		return nil, choleskyErrorf(opSolve, err)
	}
	lw, n, _, err := matrix.Flatten(l)
	if err != nil {
		return nil, choleskyErrorf(opSolve, err)
	}

	var (
		i, k int
		sum  float64
		base int
	)
	// Forward sweep: L·y = f, top-down.
	y := make([]float64, n)
	for i = 0; i < n; i++ {
		sum = matrix.ZeroSum
		base = i * n
		for k = 0; k < i; k++ {
			sum += lw[base+k] * y[k]
		}
		y[i] = (f[i] - sum) / lw[base+i]
	}

	// Backward sweep: Lᵗ·x = y, bottom-up; Lᵗ[i][k] == L[k][i].
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		sum = matrix.ZeroSum
		for k = i + 1; k < n; k++ {
			sum += lw[k*n+i] * x[k]
		}
		x[i] = (y[i] - sum) / lw[i*n+i]
	}

	return x, nil
}
