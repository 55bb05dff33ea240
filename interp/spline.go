// SPDX-License-Identifier: MIT
// Package interp: natural cubic splines on top of the tridiagonal solver.

package interp

import (
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/tridiag"
)

// Spline is a natural cubic spline through fixed nodes: twice continuously
// differentiable, with zero second derivative at both ends. Build it with
// CubicSpline; the zero value is not usable.
type Spline struct {
	xs []float64 // strictly increasing abscissae (owned copy)
	ys []float64 // ordinates (owned copy)
	m  []float64 // second derivatives at the nodes, m[0] == m[n-1] == 0
}

// CubicSpline builds the natural cubic spline through (xs, ys).
//
// Implementation:
//   - Stage 1: validate the node contract and copy both slices.
//   - Stage 2: assemble the interior second-derivative system
//     h[i−1]·m[i−1] + 2(h[i−1]+h[i])·m[i] + h[i]·m[i+1] = 6·(δ[i] − δ[i−1])
//     with δ[i] = (ys[i+1]−ys[i])/h[i] and natural ends m[0] = m[n−1] = 0.
//     The system is diagonally dominant and tridiagonal, so it goes to
//     tridiag.Solve — this package is exactly the thin consumer that needs
//     a solved tridiagonal spline system.
//
// Two nodes degenerate to a single linear segment (no system to solve).
//
// Errors: ErrLengthMismatch, ErrFewPoints, ErrUnsortedPoints; tridiag
// failures are propagated (cannot occur for a valid dominant assembly).
// Complexity: Time O(n), Space O(n).
func CubicSpline(xs, ys []float64) (*Spline, error) {
	if err := validateNodes(xs, ys); err != nil {
		return nil, err
	}
	n := len(xs)

	s := &Spline{
		xs: matrix.CloneVector(xs),
		ys: matrix.CloneVector(ys),
		m:  make([]float64, n),
	}
	// Natural ends: with only one segment every m stays zero.
	if n == 2 {
		return s, nil
	}

	// Interval widths and divided differences.
	h := make([]float64, n-1)
	delta := make([]float64, n-1)
	var i int
	for i = 0; i < n-1; i++ {
		h[i] = xs[i+1] - xs[i]
		delta[i] = (ys[i+1] - ys[i]) / h[i]
	}

	// Interior system of dimension n−2 over m[1..n−2].
	dim := n - 2
	sub := make([]float64, dim)
	diag := make([]float64, dim)
	super := make([]float64, dim)
	rhs := make([]float64, dim)
	for i = 0; i < dim; i++ {
		sub[i] = h[i]                 // couples m[i] below (sub[0] unused)
		diag[i] = 2 * (h[i] + h[i+1]) // dominant main diagonal
		super[i] = h[i+1]             // couples m[i+2] above (super[dim-1] unused)
		rhs[i] = 6 * (delta[i+1] - delta[i])
	}

	sys, err := tridiag.NewSystem(sub, diag, super, rhs)
	if err != nil {
		return nil, fmt.Errorf("interp.CubicSpline: %w", err)
	}
	interior, err := tridiag.Solve(sys)
	if err != nil {
		return nil, fmt.Errorf("interp.CubicSpline: %w", err)
	}
	copy(s.m[1:n-1], interior) // natural ends stay zero

	return s, nil
}

// At evaluates the spline at x.
//
// On [xs[i], xs[i+1]] with width h and second derivatives m[i], m[i+1]:
//
//	S(x) = m[i]·(x₊−x)³/(6h) + m[i+1]·(x−x₋)³/(6h)
//	     + (ys[i]/h − m[i]·h/6)·(x₊−x) + (ys[i+1]/h − m[i+1]·h/6)·(x−x₋)
//
// Errors: ErrOutOfDomain outside the node range.
// Complexity: O(log n) interval lookup, O(1) evaluation.
func (s *Spline) At(x float64) (float64, error) {
	i, err := interval(s.xs, x)
	if err != nil {
		return 0, err
	}

	h := s.xs[i+1] - s.xs[i]
	lo := x - s.xs[i]   // distance from the left node
	hi := s.xs[i+1] - x // distance to the right node

	v := s.m[i]*hi*hi*hi/(6*h) +
		s.m[i+1]*lo*lo*lo/(6*h) +
		(s.ys[i]/h-s.m[i]*h/6)*hi +
		(s.ys[i+1]/h-s.m[i+1]*h/6)*lo

	return v, nil
}

// Domain reports the valid evaluation range [min, max].
func (s *Spline) Domain() (float64, float64) {
	return s.xs[0], s.xs[len(s.xs)-1]
}
