// Package stationary: method selector, result type and sentinel errors.
package stationary

import "errors"

var (
	// ErrNoConvergence indicates the iteration cap was exhausted before the
	// successive-change criterion was met. Recoverable: the best-so-far
	// Result is returned alongside for diagnostics.
	ErrNoConvergence = errors.New("stationary: iteration cap exhausted before convergence")

	// ErrUnknownMethod indicates a Method value outside the defined enum.
	ErrUnknownMethod = errors.New("stationary: unknown iteration method")
)

// Method selects the stationary update rule.
//
//   - Jacobi      — every component update reads only the previous iterate;
//     the sweep is order-independent and trivially data-parallel.
//   - GaussSeidel — component i reads already-updated values for j < i,
//     in ascending index order; typically converges in fewer
//     iterations on dominant systems.
type Method int

const (
	// Jacobi mode: updates read the previous iterate for every component.
	Jacobi Method = iota

	// GaussSeidel mode: updates read fresh values below the diagonal.
	GaussSeidel
)

// String implements fmt.Stringer for logs and benchmark labels.
func (m Method) String() string {
	switch m {
	case Jacobi:
		return "Jacobi"
	case GaussSeidel:
		return "GaussSeidel"
	default:
		return "Unknown"
	}
}

// Result holds the outcome of an iterative solve.
type Result struct {
	// X is the final approximation vector: the converged solution on
	// success, or the best-so-far iterate when ErrNoConvergence is returned.
	X []float64

	// Iterations is the number of full sweeps performed.
	Iterations int
}
