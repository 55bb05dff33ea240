package stationary_test

import (
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/stationary"
)

// benchmarkSolve runs the selected method on a strictly dominant n×n system.
// It resets the timer after setup and fails on unexpected errors.
func benchmarkSolve(b *testing.B, n int, method stationary.Method) {
	// Prepare a dominant system with a predictable structure.
	rows := make([][]float64, n)
	f := make([]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if i != j {
				rows[i][j] = 1.0 / float64(i+j+2) // mild off-diagonal decay
			}
		}
		rows[i][i] = float64(n) // strict dominance keeps both methods convergent
		f[i] = float64(i + 1)
	}
	a, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = stationary.Solve(a, f, method); err != nil {
			b.Fatalf("%s failed: %v", method, err) // report and stop on error
		}
	}
}

// BenchmarkSolve_JacobiSmall benchmarks Jacobi on a 32×32 system.
func BenchmarkSolve_JacobiSmall(b *testing.B) { benchmarkSolve(b, 32, stationary.Jacobi) }

// BenchmarkSolve_JacobiMedium benchmarks Jacobi on a 128×128 system.
func BenchmarkSolve_JacobiMedium(b *testing.B) { benchmarkSolve(b, 128, stationary.Jacobi) }

// BenchmarkSolve_GaussSeidelSmall benchmarks Gauss–Seidel on a 32×32 system.
func BenchmarkSolve_GaussSeidelSmall(b *testing.B) { benchmarkSolve(b, 32, stationary.GaussSeidel) }

// BenchmarkSolve_GaussSeidelMedium benchmarks Gauss–Seidel on a 128×128 system.
func BenchmarkSolve_GaussSeidelMedium(b *testing.B) { benchmarkSolve(b, 128, stationary.GaussSeidel) }
