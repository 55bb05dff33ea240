// SPDX-License-Identifier: MIT
// Package main is the solver benchmarking harness: it generates diagonally
// dominant systems across a range of sizes, times every solver family in
// this module against them, validates each solution against a reference
// solve from gonum, and renders timing and convergence plots to PNG.
//
// Scenario:
//
//	A diffusion-style workload produces dense, symmetric positive-definite
//	and tridiagonal systems of growing size. The harness supplies only the
//	matrix/vector inputs, reads back solutions and timings, and never peeks
//	into solver internals. A Crank–Nicolson heat-equation step rounds out
//	the run as the sample workload for the tridiagonal path.
//
// Usage:
//
//	solvebench [-sizes 32,64,128,256] [-out .] [-seed 1] [-eps 1e-10] [-maxiter 10000]
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/linsolve/cholesky"
	"github.com/katalvlaran/linsolve/gauss"
	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/stationary"
	"github.com/katalvlaran/linsolve/tridiag"
)

// residualFloor keeps zero residuals representable on a log-scaled axis.
const residualFloor = 1e-16

func main() {
	// 1. Configuration.
	var (
		sizesFlag = flag.String("sizes", "32,64,128,256", "comma-separated system sizes")
		outDir    = flag.String("out", ".", "directory for the rendered PNG plots")
		seed      = flag.Int64("seed", 1, "seed for the system generator")
		eps       = flag.Float64("eps", 1e-10, "stationary convergence tolerance")
		maxIter   = flag.Int("maxiter", 10000, "stationary iteration cap")
	)
	flag.Parse()

	sizes, err := parseSizes(*sizesFlag)
	if err != nil {
		log.Fatalf("solvebench: %v", err)
	}
	rng := rand.New(rand.NewSource(*seed))

	// 2. Time every solver family across the requested sizes, validating
	//    each solution against the gonum reference solve.
	var (
		gaussPts  = make(plotter.XYs, 0, len(sizes))
		cholPts   = make(plotter.XYs, 0, len(sizes))
		triPts    = make(plotter.XYs, 0, len(sizes))
		jacobiPts = make(plotter.XYs, 0, len(sizes))
		seidelPts = make(plotter.XYs, 0, len(sizes))
	)
	for _, n := range sizes {
		a, f := dominantSPDSystem(n, rng)

		ref, err := referenceSolve(a, f)
		if err != nil {
			log.Fatalf("solvebench: reference solve n=%d: %v", n, err)
		}

		x, elapsed, err := timeSolve(func() ([]float64, error) { return gauss.Solve(a, f) })
		report("gauss", n, x, ref, elapsed, err)
		gaussPts = append(gaussPts, plotter.XY{X: float64(n), Y: elapsed.Seconds()})

		x, elapsed, err = timeSolve(func() ([]float64, error) { return cholesky.Solve(a, f) })
		report("cholesky", n, x, ref, elapsed, err)
		cholPts = append(cholPts, plotter.XY{X: float64(n), Y: elapsed.Seconds()})

		x, elapsed, err = timeSolve(func() ([]float64, error) {
			res, serr := stationary.Solve(a, f, stationary.Jacobi,
				stationary.WithTolerance(*eps), stationary.WithMaxIterations(*maxIter))
			return res.X, serr
		})
		report("jacobi", n, x, ref, elapsed, err)
		jacobiPts = append(jacobiPts, plotter.XY{X: float64(n), Y: elapsed.Seconds()})

		x, elapsed, err = timeSolve(func() ([]float64, error) {
			res, serr := stationary.Solve(a, f, stationary.GaussSeidel,
				stationary.WithTolerance(*eps), stationary.WithMaxIterations(*maxIter))
			return res.X, serr
		})
		report("gauss-seidel", n, x, ref, elapsed, err)
		seidelPts = append(seidelPts, plotter.XY{X: float64(n), Y: elapsed.Seconds()})

		// The tridiagonal path gets its own banded workload of the same size.
		sys := laplacianSystem(n)
		x, elapsed, err = timeSolve(func() ([]float64, error) { return tridiag.Solve(sys) })
		if err != nil {
			log.Fatalf("solvebench: tridiag n=%d: %v", n, err)
		}
		res, err := tridiag.Residual(sys, x)
		if err != nil {
			log.Fatalf("solvebench: tridiag residual n=%d: %v", n, err)
		}
		log.Printf("%-12s n=%-5d time=%-12s residual=%.3e", "tridiag", n, elapsed, res)
		triPts = append(triPts, plotter.XY{X: float64(n), Y: elapsed.Seconds()})
	}

	// 3. Gauss-Seidel convergence history on a fixed mid-size system.
	histPts, err := convergenceHistory(64, rng)
	if err != nil {
		log.Fatalf("solvebench: convergence history: %v", err)
	}

	// 4. Crank–Nicolson heat-equation step through the tridiagonal solver.
	if err := heatDemo(); err != nil {
		log.Fatalf("solvebench: heat demo: %v", err)
	}

	// 5. Render the plots.
	if err := renderTiming(filepath.Join(*outDir, "timing.png"),
		gaussPts, cholPts, triPts, jacobiPts, seidelPts); err != nil {
		log.Fatalf("solvebench: timing plot: %v", err)
	}
	if err := renderConvergence(filepath.Join(*outDir, "convergence.png"), histPts); err != nil {
		log.Fatalf("solvebench: convergence plot: %v", err)
	}
	log.Printf("plots written to %s", *outDir)
}

// parseSizes splits "32,64,128" into sorted-as-given positive ints.
func parseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 2 {
			return nil, fmt.Errorf("bad size %q", p)
		}
		sizes = append(sizes, n)
	}

	return sizes, nil
}

// dominantSPDSystem builds a random symmetric strictly diagonally dominant
// system of dimension n. Dominance with positive diagonal makes the matrix
// positive definite, so the same system feeds every solver family.
func dominantSPDSystem(n int, rng *rand.Rand) (*matrix.Dense, []float64) {
	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v := rng.Float64()*2 - 1 // off-diagonal in (-1, 1)
			rows[i][j] = v
			rows[j][i] = v
		}
	}
	for i = 0; i < n; i++ {
		sum := 0.0
		for j = 0; j < n; j++ {
			if j != i {
				sum += math.Abs(rows[i][j])
			}
		}
		rows[i][i] = sum + 1 // strict dominance
	}

	a, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		log.Fatalf("solvebench: generator: %v", err)
	}
	f := make([]float64, n)
	for i = 0; i < n; i++ {
		f[i] = rng.Float64()*2 - 1
	}

	return a, f
}

// laplacianSystem builds the classic [-1, 4, -1] dominant banded system.
func laplacianSystem(n int) tridiag.System {
	sub := make([]float64, n)
	diag := make([]float64, n)
	super := make([]float64, n)
	rhs := make([]float64, n)
	var i int
	for i = 0; i < n; i++ {
		sub[i] = -1
		diag[i] = 4
		super[i] = -1
		rhs[i] = 1
	}
	sub[0] = 0
	super[n-1] = 0

	sys, err := tridiag.NewSystem(sub, diag, super, rhs)
	if err != nil {
		log.Fatalf("solvebench: generator: %v", err)
	}

	return sys
}

// referenceSolve runs the dense system through gonum's LU-backed solver.
func referenceSolve(a matrix.Matrix, f []float64) ([]float64, error) {
	flat, rows, cols, err := matrix.Flatten(a)
	if err != nil {
		return nil, err
	}

	var xv mat.VecDense
	if err = xv.SolveVec(mat.NewDense(rows, cols, flat), mat.NewVecDense(len(f), matrix.CloneVector(f))); err != nil {
		return nil, err
	}
	ref := make([]float64, len(f))
	var i int
	for i = 0; i < len(ref); i++ {
		ref[i] = xv.AtVec(i)
	}

	return ref, nil
}

// timeSolve runs one solve and reports its wall-clock duration.
func timeSolve(solve func() ([]float64, error)) ([]float64, time.Duration, error) {
	start := time.Now()
	x, err := solve()

	return x, time.Since(start), err
}

// report logs one timing row and aborts on solver failure or reference
// disagreement beyond the dominance-friendly tolerance.
func report(name string, n int, x, ref []float64, elapsed time.Duration, err error) {
	if err != nil {
		log.Fatalf("solvebench: %s n=%d: %v", name, n, err)
	}
	diff := 0.0
	var i int
	for i = 0; i < len(x); i++ {
		if d := math.Abs(x[i] - ref[i]); d > diff {
			diff = d
		}
	}
	if diff > 1e-6 {
		log.Fatalf("solvebench: %s n=%d disagrees with reference by %.3e", name, n, diff)
	}
	log.Printf("%-12s n=%-5d time=%-12s max|x-ref|=%.3e", name, n, elapsed, diff)
}

// convergenceHistory records the Gauss-Seidel residual after every iteration
// count from 1 upward, by re-running with a growing cap. Re-solving is
// quadratic in the history length but the fixed size keeps it cheap.
func convergenceHistory(n int, rng *rand.Rand) (plotter.XYs, error) {
	a, f := dominantSPDSystem(n, rng)

	const histLen = 30
	pts := make(plotter.XYs, 0, histLen)
	var k int
	for k = 1; k <= histLen; k++ {
		res, err := stationary.Solve(a, f, stationary.GaussSeidel,
			stationary.WithTolerance(residualFloor), stationary.WithMaxIterations(k))
		if err != nil && !errors.Is(err, stationary.ErrNoConvergence) {
			return nil, err
		}
		r, err := matrix.ResidualMaxNorm(a, res.X, f)
		if err != nil {
			return nil, err
		}
		if r < residualFloor {
			r = residualFloor
		}
		pts = append(pts, plotter.XY{X: float64(k), Y: r})
	}

	return pts, nil
}

// heatDemo advances u_t = u_xx one Crank–Nicolson step on [0, 1] with zero
// boundary values and a sine initial condition, then checks the interior
// solution against the exact mode decay exp(-π²·dt).
func heatDemo() error {
	const (
		nodes = 101   // interior grid points
		dt    = 1e-3  // time step
		dx    = 1.0 / (nodes + 1)
	)
	r := dt / (2 * dx * dx)

	sub := make([]float64, nodes)
	diag := make([]float64, nodes)
	super := make([]float64, nodes)
	rhs := make([]float64, nodes)
	u := make([]float64, nodes+2) // includes the zero boundary nodes
	var i int
	for i = 0; i < nodes+2; i++ {
		u[i] = math.Sin(math.Pi * float64(i) * dx)
	}
	for i = 0; i < nodes; i++ {
		sub[i] = -r
		diag[i] = 1 + 2*r
		super[i] = -r
		// Explicit half of the scheme on the previous level.
		rhs[i] = r*u[i] + (1-2*r)*u[i+1] + r*u[i+2]
	}
	sub[0] = 0
	super[nodes-1] = 0

	next, err := tridiag.SolveDiagonals(sub, diag, super, rhs)
	if err != nil {
		return err
	}

	decay := math.Exp(-math.Pi * math.Pi * dt)
	maxErr := 0.0
	for i = 0; i < nodes; i++ {
		exact := decay * u[i+1]
		if d := math.Abs(next[i] - exact); d > maxErr {
			maxErr = d
		}
	}
	log.Printf("%-12s nodes=%d dt=%g max|u-exact|=%.3e", "heat step", nodes, dt, maxErr)

	return nil
}

// renderTiming draws seconds-per-solve against system size for every family.
func renderTiming(path string, gaussPts, cholPts, triPts, jacobiPts, seidelPts plotter.XYs) error {
	p := plot.New()
	p.Title.Text = "Solver timing by system size"
	p.X.Label.Text = "system size n"
	p.Y.Label.Text = "seconds per solve"
	p.Legend.Top = true

	if err := plotutil.AddLinePoints(p,
		"gauss", gaussPts,
		"cholesky", cholPts,
		"tridiag", triPts,
		"jacobi", jacobiPts,
		"gauss-seidel", seidelPts,
	); err != nil {
		return err
	}

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// renderConvergence draws the Gauss-Seidel residual history on a log axis.
func renderConvergence(path string, pts plotter.XYs) error {
	p := plot.New()
	p.Title.Text = "Gauss-Seidel convergence"
	p.X.Label.Text = "iterations"
	p.Y.Label.Text = "max-norm residual"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	if err := plotutil.AddLinePoints(p, "residual", pts); err != nil {
		return err
	}

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
