// SPDX-License-Identifier: MIT
// Package gauss: elimination kernel. See doc.go for the algorithm contract.

package gauss

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/linsolve/matrix"
)

// ErrSingular is returned when a pivot with |A[k][k]| at or below the pivot
// tolerance is encountered during forward reduction. The condition is fatal
// for the call and is never retried.
var ErrSingular = errors.New("gauss: singular matrix")

// opSolve tags all wrapped errors from this package for uniform reporting.
const opSolve = "gauss.Solve"

// gaussErrorf wraps err with the operation tag, preserving it for errors.Is.
func gaussErrorf(err error) error {
	return fmt.Errorf("%s: %w", opSolve, err)
}

// Solve computes x with A·x = f by Gaussian elimination without pivoting.
//
// Implementation:
//   - Stage 1: validate the system shape, take private working copies of A
//     (row-major flat slice) and f.
//   - Stage 2: forward reduction — normalize pivot row k to a unit pivot,
//     eliminate column k below it; guard every pivot against the tolerance.
//   - Stage 3: backward substitution over the unit upper-triangular result.
//
// Behavior highlights:
//   - Caller-held A and f are never mutated (defensive copies at entry).
//   - Fixed k→i→j loop order; identical inputs give identical output.
//   - No partial result on failure.
//
// Inputs:
//   - a: square n×n system matrix (any matrix.Matrix; *Dense is fastest).
//   - f: right-hand side of length n.
//   - opts: WithPivotTolerance to widen the singularity guard.
//
// Returns:
//   - []float64: solution x with A·x ≈ f within rounding, provided every
//     pivot stayed above the tolerance.
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrNonSquare / matrix.ErrDimensionMismatch
//     from entry validation.
//   - ErrSingular when |A[k][k]| <= pivot tolerance at any step.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the working copy.
func Solve(a matrix.Matrix, f []float64, opts ...Option) ([]float64, error) {
	// Validate the full system shape before any allocation.
	if err := matrix.ValidateSystem(a, f); err != nil {
		return nil, gaussErrorf(err)
	}
	o := gatherOptions(opts...)

	// Private working copies: elimination mutates both in place.
	w, n, _, err := matrix.Flatten(a)
	if err != nil {
		return nil, gaussErrorf(err)
	}
	rhs := matrix.CloneVector(f)

	var (
		i, j, k        int     // loop iterators (fixed order)
		pivot, factor  float64 // current pivot and elimination multiplier
		baseK, baseI   int     // flat row offsets for rows k and i
	)
	// Forward reduction: produce a unit upper-triangular working matrix.
	for k = 0; k < n; k++ {
		baseK = k * n
		pivot = w[baseK+k]
		if math.Abs(pivot) <= o.pivotTol {
			return nil, gaussErrorf(ErrSingular)
		}

		// Scale row k (and f[k]) so the pivot becomes exactly 1.
		for j = k; j < n; j++ {
			w[baseK+j] /= pivot
		}
		rhs[k] /= pivot

		// Eliminate column k from every row below the pivot row.
		for i = k + 1; i < n; i++ {
			baseI = i * n
			factor = w[baseI+k]
			if factor == 0 {
				continue // column already zero, skip the row update
			}
			for j = k; j < n; j++ {
				w[baseI+j] -= factor * w[baseK+j]
			}
			rhs[i] -= factor * rhs[k]
		}
	}

	// Backward substitution: the diagonal is 1, so no division is needed.
	x := make([]float64, n)
	var sum float64
	for i = n - 1; i >= 0; i-- {
		sum = matrix.ZeroSum
		baseI = i * n
		for j = i + 1; j < n; j++ {
			sum += w[baseI+j] * x[j]
		}
		x[i] = rhs[i] - sum
	}

	return x, nil
}
