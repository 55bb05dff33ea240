package interp

import "sort"

// validateNodes checks the shared node contract: equal lengths, at least two
// points, strictly increasing abscissae.
// Errors: ErrLengthMismatch, ErrFewPoints, ErrUnsortedPoints. Complexity: O(n).
func validateNodes(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return ErrLengthMismatch
	}
	if len(xs) < 2 {
		return ErrFewPoints
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return ErrUnsortedPoints
		}
	}

	return nil
}

// interval locates i with xs[i] <= x <= xs[i+1], or reports ErrOutOfDomain.
// Complexity: O(log n) via binary search.
func interval(xs []float64, x float64) (int, error) {
	if x < xs[0] || x > xs[len(xs)-1] {
		return 0, ErrOutOfDomain
	}
	// SearchFloat64s returns the first index with xs[i] >= x.
	i := sort.SearchFloat64s(xs, x)
	if i > 0 {
		i-- // shift to the left node of the containing interval
	}
	if i == len(xs)-1 {
		i-- // x == xs[n-1]: evaluate on the last interval
	}

	return i, nil
}

// Linear evaluates the piecewise-linear interpolant through (xs, ys) at x.
//
// Contract: xs strictly increasing, len(xs) == len(ys) >= 2,
// xs[0] <= x <= xs[n-1]. Inputs are read-only.
// Errors: ErrLengthMismatch, ErrFewPoints, ErrUnsortedPoints, ErrOutOfDomain.
// Complexity: O(n) validation + O(log n) lookup.
func Linear(xs, ys []float64, x float64) (float64, error) {
	if err := validateNodes(xs, ys); err != nil {
		return 0, err
	}
	i, err := interval(xs, x)
	if err != nil {
		return 0, err
	}

	// Affine blend over the containing interval.
	t := (x - xs[i]) / (xs[i+1] - xs[i])

	return ys[i] + t*(ys[i+1]-ys[i]), nil
}
