package gauss_test

import (
	"fmt"

	"github.com/katalvlaran/linsolve/gauss"
	"github.com/katalvlaran/linsolve/matrix"
)

// ExampleSolve demonstrates solving a small dense system.
func ExampleSolve() {
	// Build the system
	//   4·x0 + 1·x1 = 1
	//   1·x0 + 3·x1 = 2
	a, _ := matrix.NewDenseFromRows([][]float64{{4, 1}, {1, 3}})

	x, err := gauss.Solve(a, []float64{1, 2})
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}

	fmt.Printf("x = [%.4f, %.4f]\n", x[0], x[1])
	// Output:
	// x = [0.0909, 0.6364]
}

// ExampleSolve_singular shows the typed failure on a zero pivot.
func ExampleSolve_singular() {
	// The leading pivot is zero and no row interchange is performed.
	a, _ := matrix.NewDenseFromRows([][]float64{{0, 1}, {1, 1}})

	_, err := gauss.Solve(a, []float64{1, 2})
	fmt.Println(err)
	// Output:
	// gauss.Solve: gauss: singular matrix
}
