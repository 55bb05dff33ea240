// Package gauss: functional configuration for the elimination kernel.
// Defaults are constants (single source of truth); WithX constructors panic
// only on nonsensical values (programmer error), never on data.
package gauss

import "math"

// DefaultPivotTolerance is the magnitude at or below which a pivot is treated
// as zero. The default keeps the exact-zero guard: only a pivot equal to 0.0
// aborts, matching the documented no-pivoting elimination.
const DefaultPivotTolerance = 0.0

// panic message for invalid option arguments (no magic strings).
const panicPivotTolInvalid = "gauss: WithPivotTolerance: tol must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them via gatherOptions.
type Options struct {
	pivotTol float64 // >= 0; DefaultPivotTolerance
}

// WithPivotTolerance treats any pivot with |A[k][k]| <= tol as singular.
// Raising it above zero rejects near-singular systems early instead of
// amplifying rounding error through the elimination.
// Panics with a stable message when tol is negative, NaN or Inf.
func WithPivotTolerance(tol float64) Option {
	// Validate in the constructor so misuse fails loudly at setup time.
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicPivotTolInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// gatherOptions applies setters over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{pivotTol: DefaultPivotTolerance}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
