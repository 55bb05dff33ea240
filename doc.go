// Package linsolve is a compact toolbox for solving square linear systems
// A·x = b with classical, deterministic numerical algorithms — from dense
// elimination to banded and iterative methods.
//
// 🚀 What is linsolve?
//
//	A small, focused library that brings together:
//		• Dense direct solve: Gaussian elimination (forward reduction + back substitution)
//		• Banded solve: the Thomas algorithm for tridiagonal systems, O(n)
//		• Factorization: Cholesky A = L·Lᵗ for symmetric positive-definite input
//		• Stationary iteration: Jacobi and Gauss–Seidel with a shared convergence loop
//		• Thin consumers: linear, Lagrange and cubic-spline interpolation
//
// ✨ Why choose linsolve?
//
//   - Predictable – every kernel uses fixed loop orders; identical inputs give identical output
//   - Safe by construction – each solver works on a private copy, caller data is never mutated
//   - Typed failures – one sentinel per condition (singular pivot, zero denominator,
//     not positive-definite, convergence exhausted), matched with errors.Is
//   - Pure Go – no cgo, no hidden deps in any solver package
//
// Under the hood, everything is organized under focused subpackages:
//
//	matrix/     — Dense storage, vector checks & shared numeric kernels
//	gauss/      — dense Gaussian elimination without pivoting
//	tridiag/    — Thomas algorithm over sub/main/super diagonals
//	cholesky/   — Cholesky factorization & SPD solve
//	stationary/ — Jacobi & Gauss–Seidel iteration
//	interp/     — interpolation routines built on the solvers above
//
// Quick example:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{4, 1}, {1, 3}})
//	x, err := gauss.Solve(a, []float64{1, 2})
//	if err != nil {
//	    // errors.Is(err, gauss.ErrSingular), matrix.ErrDimensionMismatch, ...
//	}
//	fmt.Println(x) // ≈ [0.0909, 0.6364]
//
// Dive into each subpackage's doc.go and example_test.go for full usage
// patterns, error contracts and complexity notes.
//
//	go get github.com/katalvlaran/linsolve
package linsolve
