package stationary_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/stationary"
)

// ExampleSolve demonstrates Gauss–Seidel on a strictly dominant system.
func ExampleSolve() {
	// System:
	//   10·x0 +  1·x1 = 11
	//    2·x0 + 10·x1 = 12
	// Strict diagonal dominance assures convergence; x* = [1, 1].
	a, _ := matrix.NewDenseFromRows([][]float64{{10, 1}, {2, 10}})

	res, err := stationary.Solve(a, []float64{11, 12}, stationary.GaussSeidel,
		stationary.WithTolerance(1e-6),
		stationary.WithMaxIterations(100),
	)
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}

	fmt.Printf("x = [%.3f, %.3f]\n", res.X[0], res.X[1])
	// Output:
	// x = [1.000, 1.000]
}

// ExampleSolve_noConvergence shows the recoverable cap-exhaustion outcome.
func ExampleSolve_noConvergence() {
	a, _ := matrix.NewDenseFromRows([][]float64{{10, 1}, {2, 10}})

	// Two sweeps cannot reach a 1e-12 tolerance from a zero guess.
	res, err := stationary.Solve(a, []float64{11, 12}, stationary.Jacobi,
		stationary.WithTolerance(1e-12),
		stationary.WithMaxIterations(2),
	)
	fmt.Println(errors.Is(err, stationary.ErrNoConvergence))
	fmt.Println(len(res.X), res.Iterations)
	// Output:
	// true
	// 2 2
}
