// SPDX-License-Identifier: MIT
// Package matrix: shared numeric kernels used by the solver packages and by
// their cross-validation tests. All kernels validate fail-fast, never mutate
// their operands, and keep fixed loop orders for deterministic output.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value for accumulation loops (substitutions, norms).
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMatVec    = "MatVec"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opResidual  = "ResidualMaxNorm"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so callers can still match sentinels with errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// CloneVector returns an independent copy of x (nil stays nil).
// Solvers use it to take their defensive right-hand-side copy at entry.
// Complexity: O(n) time and memory.
func CloneVector(x []float64) []float64 {
	if x == nil {
		return nil
	}
	out := make([]float64, len(x))
	copy(out, x)

	return out
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	// Validate m is not nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	// Validate x matches the number of columns.
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows) // allocate exactly rows outputs

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int // indices and row base offset
		var acc float64
		for i = 0; i < d.r; i++ { // iterate rows deterministically
			acc = ZeroSum             // reset accumulator per row
			base = i * d.c            // flat base offset for row i
			for j = 0; j < d.c; j++ { // iterate columns
				acc += d.data[base+j] * x[j] // accumulate a(i,j)*x(j)
			}
			y[i] = acc // store y(i)
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Contract: A, B non-nil; A.Cols == B.Rows.
// Fast-path: *Dense × *Dense uses i→k→j order with row-major strides and
// skips zero A[i,k] entries; the fallback uses i→j→k via At/Set.
// Complexity: Time O(r*n*c), Space O(r*c) for C.
func Mul(a, b Matrix) (Matrix, error) {
	// Validate operands and inner dimensions.
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	// Allocate result Dense.
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue // skip zero for performance
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv // accumulate product
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
//
// Contract: m non-nil; the original matrix is never mutated.
// Fast-path: *Dense copies via flat indexing; fallback uses At/Set.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	// Validate input non-nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate result Dense with flipped dimensions.
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Fast-path for Dense → Dense.
	var i, j int
	if dm, ok := m.(*Dense); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j] // data[i*cols+j] → res[j*rows+i]
			}
		}

		return res, nil
	}

	// Fallback: generic interface loop.
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return res, nil
}

// ResidualMaxNorm reports max-norm(A·x − f), the canonical accuracy measure
// for a computed solution of A·x = f.
//
// Contract: a non-nil square; len(x) == len(f) == n.
// Complexity: Time O(n²), Space O(n) for the intermediate product.
func ResidualMaxNorm(a Matrix, x, f []float64) (float64, error) {
	// Validate the full system shape plus the solution vector.
	if err := ValidateSystem(a, f); err != nil {
		return 0, matrixErrorf(opResidual, err)
	}
	if err := ValidateVecLen(x, a.Rows()); err != nil {
		return 0, matrixErrorf(opResidual, err)
	}

	// Compute A·x once, then fold the max-norm of the difference.
	ax, err := MatVec(a, x)
	if err != nil {
		return 0, matrixErrorf(opResidual, err)
	}
	var (
		i    int
		diff float64
		norm = ZeroSum
	)
	for i = 0; i < len(ax); i++ {
		diff = math.Abs(ax[i] - f[i])
		if diff > norm {
			norm = diff
		}
	}

	return norm, nil
}
