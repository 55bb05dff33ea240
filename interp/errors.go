package interp

import "errors"

var (
	// ErrFewPoints indicates fewer nodes than the routine needs.
	ErrFewPoints = errors.New("interp: not enough interpolation points")
	// ErrLengthMismatch indicates xs and ys have different lengths.
	ErrLengthMismatch = errors.New("interp: xs and ys must have the same length")
	// ErrUnsortedPoints indicates abscissae are not strictly increasing.
	ErrUnsortedPoints = errors.New("interp: xs must be strictly increasing")
	// ErrOutOfDomain indicates an evaluation point outside [xs[0], xs[n-1]].
	ErrOutOfDomain = errors.New("interp: evaluation point outside the node range")
	// ErrDuplicateNodes indicates repeated abscissae in a Lagrange basis.
	ErrDuplicateNodes = errors.New("interp: duplicate interpolation nodes")
)
