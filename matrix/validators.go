// SPDX-License-Identifier: MIT
// Package matrix: canonical validation checks shared by the solver packages.
//
// Purpose:
//   - Provide a single source of truth for entry validation so solver kernels
//     stay minimal and delegate shape/nil/symmetry checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly with their own operation tags.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil (caller must ensure).
// Errors: ErrNonSquare. Complexity: O(1).
func ValidateSquare(m Matrix) error {
	// Check the square condition explicitly.
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and its length matches n.
// Errors: ErrNilMatrix for nil input, ErrDimensionMismatch on length disagreement.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	// Check the exact expected length.
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSystem – Composite: NotNil → Square → VecLen(f, n).
// The canonical entry check for every A·x = f solver.
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch. Complexity: O(1).
func ValidateSystem(a Matrix, f []float64) error {
	if err := ValidateSquareNonNil(a); err != nil {
		return validatorErrorf("ValidateSystem", err)
	}
	if err := ValidateVecLen(f, a.Rows()); err != nil {
		return validatorErrorf("ValidateSystem", err)
	}

	return nil
}

// ValidateSymmetric checks A is symmetric within tolerance tol:
// |A[i,j] - A[j,i]| ≤ tol for all i<j. A negative tol is treated as |tol|.
//
// Errors: ErrNilMatrix, ErrNonSquare on structural issues, ErrAsymmetry on
// violation. Complexity: O(n²) on the strict upper triangle, Space O(1).
func ValidateSymmetric(m Matrix, tol float64) error {
	// Guard nil first to avoid dereferencing.
	if m == nil {
		return validatorErrorf("ValidateSymmetric", ErrNilMatrix)
	}
	// Symmetry only makes sense for square input.
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSymmetric", ErrNonSquare)
	}
	if tol < 0 {
		tol = -tol
	}

	// A 0×0 or 1×1 matrix is trivially symmetric.
	n := m.Rows()
	if n <= 1 {
		return nil
	}

	// Scan the strict upper triangle once in fixed i→j order.
	var (
		i, j int     // loop counters
		aij  float64 // A[i,j]
		aji  float64 // A[j,i]
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, _ = m.At(i, j) // At is O(1); errors are not expected after shape validation
			aji, _ = m.At(j, i) // symmetric counterpart
			if math.Abs(aij-aji) > tol {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateNonZeroDiagonal ensures every diagonal entry satisfies |A[i,i]| > 0.
// The stationary methods divide by the diagonal, so a zero entry is malformed
// input rather than a convergence problem.
// Assumes m is square and non-nil (caller must ensure).
// Errors: ErrZeroDiagonal. Complexity: O(n).
func ValidateNonZeroDiagonal(m Matrix) error {
	n := m.Rows()
	var (
		i   int
		aii float64
	)
	for i = 0; i < n; i++ {
		aii, _ = m.At(i, i) // bounds are valid by construction
		if aii == 0 {
			return validatorErrorf("ValidateNonZeroDiagonal", ErrZeroDiagonal)
		}
	}

	return nil
}
