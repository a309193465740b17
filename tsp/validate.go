// Package tsp - distance-matrix validation.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n²) worst-case where n is the matrix size; no hidden allocations.
package tsp

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlearn/matrix"
)

// validateDistMatrix performs full matrix validation:
//   - non-nil, square, n ≥ 2,
//   - off-diagonal entries finite (no NaN, no ±Inf),
//   - off-diagonal entries non-negative.
//
// The diagonal is never read by the solvers and is not inspected.
// Zero off-diagonal distances are accepted here; the colony reports them as
// ErrDegenerateDistance when an ant needs the heuristic for that edge.
//
// Returns n (matrix order) on success.
//
// Complexity: O(n²).
func validateDistMatrix(dist matrix.Matrix) (int, error) {
	if err := matrix.ValidateSquare(dist); err != nil {
		if errors.Is(err, matrix.ErrNilMatrix) {
			return 0, fmt.Errorf("%w: nil matrix", ErrNonSquare)
		}
		return 0, fmt.Errorf("%w: %d×%d", ErrNonSquare, dist.Rows(), dist.Cols())
	}
	n := dist.Rows()
	if n < 2 {
		return 0, fmt.Errorf("%w: n=%d", ErrTooFewCities, n)
	}

	if err := matrix.ValidateFinite(dist, true); err != nil {
		if errors.Is(err, matrix.ErrNaNInf) {
			return 0, fmt.Errorf("%w: %v", ErrNonFinite, err)
		}
		return 0, fmt.Errorf("%w: %v", ErrNonSquare, err)
	}

	var (
		i, j int
		d    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			d, err = dist.At(i, j)
			if err != nil {
				return 0, fmt.Errorf("%w: d(%d,%d): %v", ErrNonSquare, i, j, err)
			}
			if d < 0 {
				return 0, fmt.Errorf("%w: d(%d,%d)=%v", ErrNegativeDistance, i, j, d)
			}
		}
	}

	return n, nil
}

// isSymmetric reports whether |d(i,j) − d(j,i)| ≤ tol for every i<j.
// d is assumed validated and n×n.
//
// Complexity: O(n²) on the upper triangle.
func isSymmetric(d *matrix.Dense, tol float64) bool {
	var (
		n    = d.Rows()
		raw  = d.RawData()
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(raw[i*n+j]-raw[j*n+i]) > tol {
				return false
			}
		}
	}

	return true
}
