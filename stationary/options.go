// Package stationary: functional configuration for the convergence loop.
// Defaults are constants (single source of truth); WithX constructors panic
// only on nonsensical values (programmer error), never on data.
package stationary

import "math"

// Defaults for the convergence-control loop.
const (
	// DefaultTolerance is the successive-change threshold ε at or below
	// which iteration is considered converged.
	DefaultTolerance = 1e-10

	// DefaultMaxIterations caps the number of full sweeps.
	DefaultMaxIterations = 1000
)

// Internal panic messages (no magic strings).
const (
	panicToleranceInvalid = "stationary: WithTolerance: eps must be finite, positive"
	panicMaxIterInvalid   = "stationary: WithMaxIterations: cap must be > 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them via gatherOptions.
type Options struct {
	eps     float64   // > 0; DefaultTolerance
	maxIter int       // > 0; DefaultMaxIterations
	guess   []float64 // nil ⇒ zero vector of dimension n
}

// WithTolerance sets the convergence tolerance ε on the maximum absolute
// component-wise change between successive iterates.
// Panics with a stable message when eps is non-positive, NaN or Inf.
func WithTolerance(eps float64) Option {
	// Validate in the constructor so misuse fails loudly at setup time.
	if eps <= 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxIterations sets the iteration cap M.
// Panics with a stable message when m is not strictly positive.
func WithMaxIterations(m int) Option {
	if m <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = m }
}

// WithInitialGuess sets the starting approximation x₀. The slice is copied
// at solve entry, so the caller's vector is never mutated. Its length is
// validated against the system dimension inside Solve (data error, not a
// panic). Passing nil restores the zero-vector default.
func WithInitialGuess(x0 []float64) Option {
	return func(o *Options) { o.guess = x0 }
}

// gatherOptions applies setters over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultTolerance, maxIter: DefaultMaxIterations}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
