// Package tridiag solves tridiagonal systems with the Thomas algorithm,
// a specialized Gaussian elimination that runs in linear time.
//
// A System carries the three diagonals and the right-hand side:
//
//	| b0 c0          |   | x0 |   | f0 |
//	| a1 b1 c1       | · | x1 | = | f1 |
//	|    a2 b2 c2    |   | x2 |   | f2 |
//	|       …  …  …  |   | …  |   | …  |
//
// Sub[0] and Super[n-1] are boundary placeholders and are never read.
//
// The solve is a forward sweep building recurrence coefficients α, β
// (seeded α[0]=β[0]=0) followed by a backward sweep:
//
//	denom  = Sub[i]·α[i] + Diag[i]
//	α[i+1] = −Super[i] / denom
//	β[i+1] = (RHS[i] − Sub[i]·β[i]) / denom
//	x[n−1] = β[n];  x[i] = α[i+1]·x[i+1] + β[i+1]
//
// Stability is guaranteed only under diagonal dominance,
// |Diag[i]| ≥ |Sub[i]| + |Super[i]|. The algorithm does not detect or
// reject non-dominant input — it may silently produce an inaccurate
// result. The only runtime failure is an exactly zero denominator,
// reported as ErrZeroDenominator.
//
// Cost: O(n) time and O(n) auxiliary storage — the core advantage over a
// dense solve for this matrix shape. Inputs are read-only; nothing the
// caller holds is ever mutated.
package tridiag
