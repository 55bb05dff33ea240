package interp

// Lagrange evaluates the degree-(n−1) interpolation polynomial through the
// nodes (xs, ys) at x using the classic basis-product form:
//
//	P(x) = Σ_i ys[i] · Π_{j≠i} (x − xs[j]) / (xs[i] − xs[j])
//
// The polynomial extrapolates by nature, so x is unrestricted. Nodes need
// not be sorted but must be pairwise distinct. Inputs are read-only.
//
// Numerical note: the basis-product form is O(n²) and loses accuracy for
// large n or clustered nodes; it is intended for the small node counts the
// surrounding packages use. Prefer splines for dense samplings.
//
// Errors: ErrLengthMismatch, ErrFewPoints, ErrDuplicateNodes.
// Complexity: Time O(n²), Space O(1).
func Lagrange(xs, ys []float64, x float64) (float64, error) {
	// Node validation: distinctness instead of ordering.
	if len(xs) != len(ys) {
		return 0, ErrLengthMismatch
	}
	if len(xs) < 2 {
		return 0, ErrFewPoints
	}
	n := len(xs)

	var (
		i, j int
		term float64 // running basis product ys[i]·Π(...)
		sum  float64 // accumulated polynomial value
	)
	for i = 0; i < n; i++ {
		term = ys[i]
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			if xs[i] == xs[j] {
				return 0, ErrDuplicateNodes
			}
			term *= (x - xs[j]) / (xs[i] - xs[j])
		}
		sum += term
	}

	return sum, nil
}
