// Package cholesky factorizes symmetric positive-definite matrices as
// A = L·Lᵗ with L lower-triangular and strictly positive on the diagonal,
// and solves SPD systems through that factor.
//
// The factorization follows the classical column-order recurrence:
//
//	L[i][i] = sqrt(A[i][i] − Σ_{k<i} L[i][k]²)
//	L[i][j] = (A[i][j] − Σ_{k<j} L[i][k]·L[j][k]) / L[j][j]   for j < i
//
// Entries strictly above the diagonal stay zero. A radicand that is not
// strictly positive proves the input is not positive-definite (a zero
// radicand would make the next division degenerate), so the factorization
// aborts with ErrNotPositiveDefinite. The check is exact: no tolerance is
// applied to the radicand.
//
// Solve factors once and then runs two triangular sweeps, L·y = f forward
// and Lᵗ·x = y backward.
//
// Cost: O(n³/3) time and O(n²) storage for the factor — about half the work
// of an LU factorization on the same matrix. Inputs are never mutated.
package cholesky
