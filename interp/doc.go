// Package interp provides the interpolation routines that sit on top of the
// solver core: piecewise-linear and Lagrange evaluation, and natural cubic
// splines whose second-derivative system is a diagonally dominant
// tridiagonal system solved by the tridiag package.
//
// All constructors validate their nodes fail-fast (shared length, at least
// two points, strictly increasing abscissae) and copy every input slice, so
// a built Spline stays valid no matter what the caller does with its data.
//
// Evaluation outside [xs[0], xs[n-1]] is rejected with ErrOutOfDomain for
// the piecewise forms; the Lagrange polynomial extrapolates by nature and
// has no domain restriction.
package interp
