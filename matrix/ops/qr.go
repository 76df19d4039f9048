// Package ops provides advanced matrix operations for the matrix package.
// QR computes the QR decomposition of a square matrix using Householder
// reflections.
package ops

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lri/matrix"
)

const normZero = 0.0

// QR decomposes m = Q·R and returns (Qt, R), where Qt is the TRANSPOSE of
// the orthogonal factor Q (the Householder reflections are accumulated in
// the same left-multiplying order applied to A, which yields Qᵀ directly).
// This is deliberate: solving A·x = b by QR needs R·x = Qᵀ·b, so callers
// use Qt as returned without transposing again.
// Returns ErrNonSquare if m is not square.
// Complexity: O(n³) time, O(n²) memory where n = m.Rows().
func QR(m matrix.Matrix) (matrix.Matrix, matrix.Matrix, error) {
	// Stage 1: Validate input dimensions
	rows, cols := m.Rows(), m.Cols() // get dimensions
	if rows != cols {                // enforce square matrix
		return nil, nil, fmt.Errorf("QR: non-square %dx%d: %w", rows, cols, matrix.ErrNonSquare)
	}
	n := rows // common dimension

	// Stage 2: Prepare working matrices and Householder vector
	A := m.Clone()                 // deep copy to preserve original
	Qt, err := matrix.NewDense(n, n) // accumulator, starts as identity
	if err != nil {
		return nil, nil, fmt.Errorf("QR: %w", err)
	}
	for i := 0; i < n; i++ {
		_ = Qt.Set(i, i, 1.0) // set diagonal to 1
	}
	v := make([]float64, n) // Householder vector, reused each column

	// Stage 3: Execute Householder reflections
	var (
		k, i, j    int     // loop indices
		sum, alpha float64 // accumulators and reflection scalar
		norm, beta float64 // vector norm and beta = vᵀv
		val        float64 // temporary value holder
		tau        float64 // 2/β factor
	)
	for k = 0; k < n; k++ {
		// 3.1: Compute norm of A[k:n][k]
		norm = normZero
		for i = k; i < n; i++ {
			val, _ = A.At(i, k) // fetch A[i][k]
			norm += val * val   // accumulate square
		}
		norm = math.Sqrt(norm) // take square root
		if norm == normZero {
			continue // skip zero column; no reflection needed
		}
		// 3.2: Compute reflection scalar alpha = -sign(A[k][k]) * norm
		val, _ = A.At(k, k) // pivot element
		alpha = -math.Copysign(norm, val)
		// 3.3: Build Householder vector v
		for i = 0; i < n; i++ {
			v[i] = normZero // clear vector entry
		}
		for i = k; i < n; i++ {
			val, _ = A.At(i, k) // fetch A[i][k]
			v[i] = val          // copy into v
		}
		v[k] -= alpha // adjust first component
		// 3.4: Compute beta = vᵀv
		beta = normZero
		for i = k; i < n; i++ {
			beta += v[i] * v[i]
		}
		if beta == normZero {
			continue // v is the zero vector; no reflection needed
		}
		tau = 2.0 / beta // compute tau

		// 3.5: Apply reflection to A (update toward R)
		for j = k; j < n; j++ {
			// compute projection coefficient sum = vᵀ A[:,j]
			sum = normZero
			for i = k; i < n; i++ {
				val, _ = A.At(i, j)
				sum += v[i] * val
			}
			// A[:,j] -= tau * v * sum
			for i = k; i < n; i++ {
				val, _ = A.At(i, j)
				_ = A.Set(i, j, val-tau*v[i]*sum)
			}
		}

		// 3.6: Apply reflection to Qt (accumulate Householder product)
		for j = 0; j < n; j++ {
			// compute projection coefficient sum = vᵀ Qt[:,j]
			sum = normZero
			for i = k; i < n; i++ {
				val, _ = Qt.At(i, j)
				sum += v[i] * val
			}
			// Qt[:,j] -= tau * v * sum
			for i = k; i < n; i++ {
				val, _ = Qt.At(i, j)
				_ = Qt.Set(i, j, val-tau*v[i]*sum)
			}
		}
	}

	// Stage 4: Finalize and return Qt and R (R is the current A)
	R := A
	return Qt, R, nil
}

// SolveUpperTriangular solves R·x = b by backward substitution, where R is
// upper-triangular (as produced by QR). Returns matrix.ErrSingular if a
// diagonal entry of R is zero.
// Complexity: O(n²).
func SolveUpperTriangular(R matrix.Matrix, b []float64) ([]float64, error) {
	n := R.Rows()
	if R.Cols() != n || len(b) != n {
		return nil, fmt.Errorf("SolveUpperTriangular: %w", matrix.ErrDimensionMismatch)
	}
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := 0.0
		for k := i + 1; k < n; k++ {
			rv, _ := R.At(i, k)
			sum += rv * x[k]
		}
		pivot, _ := R.At(i, i)
		if pivot == 0.0 {
			return nil, fmt.Errorf("SolveUpperTriangular: zero pivot at %d: %w", i, matrix.ErrSingular)
		}
		x[i] = (b[i] - sum) / pivot
	}

	return x, nil
}
