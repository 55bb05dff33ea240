// Package stationary solves A·x = f by fixed-point iteration derived from a
// splitting of A: the Jacobi and Gauss–Seidel methods share one
// convergence-control loop and differ only in which iterate each component
// update reads.
//
// Per-iteration update for component i:
//
//	newx[i] = (f[i] − Σ_{j≠i} A[i][j]·v[j]) / A[i][i]
//
// where v[j] is always the previous iterate for Jacobi, while Gauss–Seidel
// reads the already-updated newx[j] for j < i (components are updated in
// ascending index order — the order is part of the contract).
//
// After each full sweep the loop stops once the maximum absolute
// component-wise change drops to the tolerance or below; otherwise the new
// vector becomes the current iterate and the loop continues up to the
// iteration cap. Exhausting the cap yields ErrNoConvergence together with
// the best-so-far Result — a recoverable outcome: retry with a relaxed
// tolerance, a higher cap, or the other method.
//
// Convergence is assured when A is strictly diagonally dominant (both
// methods) or symmetric positive-definite (Gauss–Seidel). Neither
// precondition is verified; the solver simply runs until convergence or the
// cap. A zero diagonal entry, however, is malformed input and is rejected at
// entry with matrix.ErrZeroDiagonal.
//
// Cost: O(n²) time per iteration, O(n) auxiliary storage. Caller-held
// state is never mutated; tolerance, cap and initial guess are functional
// options with documented defaults.
package stationary
