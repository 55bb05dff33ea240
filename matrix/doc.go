// Package matrix provides the numeric storage layer shared by every solver:
// a dense row-major matrix, vector validation helpers, and a handful of
// deterministic kernels (MatVec, Mul, Transpose, residual norms).
//
// The matrix package provides:
//
//   - Dense, a flat-slice row-major implementation of the Matrix interface
//     with O(1) element access and O(r·c) Clone.
//   - Central validators (not-nil, square, vector length, symmetry,
//     nonzero diagonal) returning plain sentinel errors.
//   - Shared kernels used by the solver packages and their cross-validation
//     tests; no solver logic lives here.
//
// All kernels use fixed loop orders, so identical inputs always produce
// identical output. None of them mutates its operands.
//
// See the examples in the solver packages for usage patterns.
package matrix
