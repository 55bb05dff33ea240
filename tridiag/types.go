// Package tridiag: domain types and entry validation.
package tridiag

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

var (
	// ErrZeroDenominator indicates the recurrence denominator
	// Sub[i]·α[i] + Diag[i] was exactly zero at some step. Fatal for the call.
	ErrZeroDenominator = errors.New("tridiag: zero denominator in recurrence")

	// ErrBadSystem indicates the four vectors are nil, empty, or of
	// differing lengths.
	ErrBadSystem = errors.New("tridiag: diagonals and rhs must share one positive length")
)

// System is a tridiagonal system of dimension n = len(Diag).
// Sub[0] and Super[n-1] are unused boundary placeholders.
//
// Invariant assumed (not enforced) for guaranteed stability:
// |Diag[i]| ≥ |Sub[i]| + |Super[i]| for all i.
type System struct {
	Sub   []float64 // sub-diagonal a, Sub[0] ignored
	Diag  []float64 // main diagonal b
	Super []float64 // super-diagonal c, Super[n-1] ignored
	RHS   []float64 // right-hand side f
}

// NewSystem wraps the four vectors after validating their shared length.
// The slices are referenced, not copied; Solve never mutates them.
// Errors: ErrBadSystem. Complexity: O(1).
func NewSystem(sub, diag, super, rhs []float64) (System, error) {
	s := System{Sub: sub, Diag: diag, Super: super, RHS: rhs}
	if err := s.validate(); err != nil {
		return System{}, err
	}

	return s, nil
}

// validate checks the shared positive length of all four vectors.
func (s System) validate() error {
	n := len(s.Diag)
	if n == 0 || len(s.Sub) != n || len(s.Super) != n || len(s.RHS) != n {
		return fmt.Errorf("validate: %w", ErrBadSystem)
	}

	return nil
}

// Dim returns the system dimension n.
func (s System) Dim() int { return len(s.Diag) }

// Dense materializes the equivalent dense matrix and a copy of the
// right-hand side, for cross-validation against the dense solver.
// Errors: ErrBadSystem. Complexity: O(n²) time and memory.
func (s System) Dense() (*matrix.Dense, []float64, error) {
	// Validate before allocating the n×n grid.
	if err := s.validate(); err != nil {
		return nil, nil, err
	}
	n := s.Dim()

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}
	// Place the three bands; everything else stays zero.
	var i int
	for i = 0; i < n; i++ {
		_ = m.Set(i, i, s.Diag[i]) // indices are valid by construction
		if i > 0 {
			_ = m.Set(i, i-1, s.Sub[i])
		}
		if i < n-1 {
			_ = m.Set(i, i+1, s.Super[i])
		}
	}

	return m, matrix.CloneVector(s.RHS), nil
}
