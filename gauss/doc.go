// Package gauss solves dense square systems A·x = f by Gaussian elimination
// without pivoting.
//
// The algorithm is the classic two-pass scheme:
//
//   - Forward reduction: at step k the pivot row is scaled by 1/A[k][k] so the
//     pivot becomes 1, then every row below has its k-th column eliminated.
//     After the pass the working matrix is unit upper-triangular.
//   - Backward substitution: x[i] = f[i] − Σ_{j>i} A[i][j]·x[j]; the diagonal
//     is already 1 so no division is needed.
//
// Pivots are taken as-is from the current row — no row interchange is ever
// performed. This keeps the elimination fully deterministic at the cost of
// robustness: a zero (or near-zero, see WithPivotTolerance) pivot aborts the
// solve with ErrSingular. Production workloads with untrusted input should
// precondition or reorder upstream.
//
// The solver never mutates caller-held state: it takes a private working copy
// of both A and f at entry. Cost: O(n³) time, O(n²) auxiliary storage.
package gauss
