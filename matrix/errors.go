// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package and re-used by the solver packages for entry validation. All
// routines return these sentinels and tests check them via errors.Is. No
// routine panics on user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this, they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a right-hand side vector whose length disagrees with the matrix.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrZeroDiagonal signals that a diagonal entry required to be nonzero is
	// zero (the stationary methods divide by A[i][i]).
	ErrZeroDiagonal = errors.New("matrix: zero diagonal entry")

	// ErrRaggedRows indicates that NewDenseFromRows received rows of
	// differing lengths.
	ErrRaggedRows = errors.New("matrix: all rows must have the same length")
)
