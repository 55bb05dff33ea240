// SPDX-License-Identifier: MIT
// Package stationary: the shared convergence loop and both update rules.

package stationary

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsolve/matrix"
)

// opSolve tags all wrapped errors from this package for uniform reporting.
const opSolve = "stationary.Solve"

// stationaryErrorf wraps err with the operation tag, preserving it for errors.Is.
func stationaryErrorf(err error) error {
	return fmt.Errorf("%s: %w", opSolve, err)
}

// Solve runs the selected stationary method on A·x = f.
//
// Implementation:
//   - Stage 1: validate the system shape, the nonzero diagonal, the method
//     selector and (when provided) the initial-guess length; take private
//     working copies of A, f and x₀.
//   - Stage 2: sweep until the maximum absolute component change is at or
//     below ε, or the iteration cap is reached. Jacobi writes each sweep
//     into a separate vector; Gauss–Seidel updates in place in ascending
//     index order.
//
// Behavior highlights:
//   - Caller-held A, f and x₀ are never mutated.
//   - Deterministic: fixed sweep order, same inputs ⇒ same Result.
//   - On cap exhaustion the best-so-far iterate is returned WITH
//     ErrNoConvergence, since the partial result is useful diagnostically.
//
// Inputs:
//   - a: square n×n matrix with nonzero diagonal (dominance not verified).
//   - f: right-hand side of length n.
//   - method: Jacobi or GaussSeidel.
//   - opts: WithTolerance, WithMaxIterations, WithInitialGuess.
//
// Returns:
//   - Result: final approximation and the number of sweeps performed.
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrNonSquare / matrix.ErrDimensionMismatch
//     and matrix.ErrZeroDiagonal from entry validation (Result is empty).
//   - ErrUnknownMethod for a selector outside the enum (Result is empty).
//   - ErrNoConvergence when the cap is exhausted (Result holds best-so-far).
//
// Complexity:
//   - Time O(n²) per sweep, Space O(n) beyond the working copy of A.
func Solve(a matrix.Matrix, f []float64, method Method, opts ...Option) (Result, error) {
	// Validate the system shape before any allocation.
	if err := matrix.ValidateSystem(a, f); err != nil {
		return Result{}, stationaryErrorf(err)
	}
	// The update divides by A[i][i]: a zero diagonal is malformed input,
	// distinct from a convergence failure.
	if err := matrix.ValidateNonZeroDiagonal(a); err != nil {
		return Result{}, stationaryErrorf(err)
	}
	if method != Jacobi && method != GaussSeidel {
		return Result{}, stationaryErrorf(ErrUnknownMethod)
	}

	o := gatherOptions(opts...)

	// Private working copies; the sweeps only ever touch these.
	w, n, _, err := matrix.Flatten(a)
	if err != nil {
		return Result{}, stationaryErrorf(err)
	}
	rhs := matrix.CloneVector(f)
	x := make([]float64, n) // current iterate, zero vector by default
	if o.guess != nil {
		if err = matrix.ValidateVecLen(o.guess, n); err != nil {
			return Result{}, stationaryErrorf(err)
		}
		copy(x, o.guess)
	}

	newx := make([]float64, n) // next iterate, written every sweep
	var (
		iter   int     // completed sweep count
		i, j   int     // component and column iterators
		base   int     // flat offset of row i
		acc    float64 // Σ_{j≠i} A[i][j]·v[j]
		change float64 // max-abs component change of the sweep
		diff   float64 // per-component change
	)
	for iter = 1; iter <= o.maxIter; iter++ {
		if method == GaussSeidel {
			// Gauss–Seidel reads fresh values below the diagonal, so the
			// sweep starts from the current iterate and updates it in place
			// (ascending order is part of the contract).
			copy(newx, x)
		}

		for i = 0; i < n; i++ {
			acc = matrix.ZeroSum
			base = i * n
			for j = 0; j < n; j++ {
				if j == i {
					continue // the diagonal term is isolated on the left
				}
				// Jacobi: v[j] is the previous iterate for all j.
				// Gauss–Seidel: newx[j] already holds the fresh value for
				// j < i and the previous one for j > i.
				if method == Jacobi {
					acc += w[base+j] * x[j]
				} else {
					acc += w[base+j] * newx[j]
				}
			}
			newx[i] = (rhs[i] - acc) / w[base+i]
		}

		// Convergence test on the full new vector: max-abs change ≤ ε.
		change = matrix.ZeroSum
		for i = 0; i < n; i++ {
			diff = math.Abs(newx[i] - x[i])
			if diff > change {
				change = diff
			}
		}
		copy(x, newx) // the new vector becomes the current iterate

		if change <= o.eps {
			return Result{X: matrix.CloneVector(x), Iterations: iter}, nil
		}
	}

	// Cap exhausted: hand back the best-so-far iterate for diagnostics.
	return Result{X: matrix.CloneVector(x), Iterations: o.maxIter}, stationaryErrorf(ErrNoConvergence)
}
