// Package ops provides advanced matrix operations for the matrix package.
// SpectralRadius estimates the dominant eigenvalue magnitude of a general
// (not necessarily symmetric) square matrix via power iteration, adapting
// the iterate-until-convergence shape of a Jacobi eigensolver to a matrix
// that need not be symmetric — the left-corner relation P_L[X,Y] has no
// symmetry guarantee, so a Jacobi rotation (which assumes symmetry) cannot
// be used here.
package ops

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lri/matrix"
)

// SpectralRadius estimates ρ(m), the magnitude of m's dominant eigenvalue,
// by repeated multiplication of a random-free unit vector against m until
// the Rayleigh quotient stabilizes within tol or maxIter is exhausted.
// Returns matrix.ErrNonSquare if m is not square, matrix.ErrEigenFailed if
// the iteration does not converge within maxIter sweeps.
// Complexity: O(maxIter · n²) time, O(n) memory.
func SpectralRadius(m matrix.Matrix, tol float64, maxIter int) (float64, error) {
	n := m.Rows()
	if m.Cols() != n {
		return 0, fmt.Errorf("SpectralRadius: non-square %dx%d: %w", n, m.Cols(), matrix.ErrNonSquare)
	}
	if n == 0 {
		return 0, nil
	}

	// Stage 1: seed a deterministic, non-degenerate starting vector.
	x := make([]float64, n)
	for i := range x {
		x[i] = 1.0 / float64(n+1) + float64(i)*1e-3
	}
	normalize(x)

	// Stage 2: power iteration; track the Rayleigh quotient for convergence.
	var lambda, prevLambda float64
	for iter := 0; iter < maxIter; iter++ {
		y := mulVec(m, x)
		lambda = dot(x, y)
		yn := norm2(y)
		if yn == 0 {
			return 0, nil // nilpotent direction: radius is zero along this vector
		}
		for i := range y {
			y[i] /= yn
		}
		x = y

		if iter > 0 && math.Abs(lambda-prevLambda) <= tol {
			return math.Abs(lambda), nil
		}
		prevLambda = lambda
	}

	return 0, fmt.Errorf("SpectralRadius: %w", matrix.ErrEigenFailed)
}

func mulVec(m matrix.Matrix, x []float64) []float64 {
	n := m.Rows()
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			v, _ := m.At(i, j)
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

func norm2(x []float64) float64 {
	return math.Sqrt(dot(x, x))
}

func normalize(x []float64) {
	n := norm2(x)
	if n == 0 {
		return
	}
	for i := range x {
		x[i] /= n
	}
}
