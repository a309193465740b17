// Package tsp - tour length.
//
// TourLength sums d(tour[k], tour[k+1]) over consecutive cities plus the
// closing edge d(tour[n-1], tour[0]). For a symmetric table the value is
// invariant under rotation and reversal of the tour.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/lvlearn/matrix"
)

// TourLength validates dist and tour, then returns the cycle length.
// tour may be open (len n) or closed (len n+1, first == last).
//
// Errors: configuration sentinels from validateDistMatrix; ErrDimensionMismatch
// when tour is not a permutation of 0..n-1.
//
// Complexity: O(n²) for validation, O(n) for the sum.
func TourLength(dist matrix.Matrix, tour []int) (float64, error) {
	n, err := validateDistMatrix(dist)
	if err != nil {
		return 0, err
	}
	open := openView(tour)
	if err = ValidatePermutation(open, n); err != nil {
		return 0, fmt.Errorf("tour of %d cities: %w", n, err)
	}

	var (
		sum  float64
		d    float64
		k    int
		u, v int
	)
	for k = 0; k < n; k++ {
		u = open[k]
		v = open[(k+1)%n]
		d, err = dist.At(u, v)
		if err != nil {
			return 0, fmt.Errorf("d(%d,%d): %w", u, v, err)
		}
		sum += d
	}

	return sum, nil
}

// tourLengthDense sums the cycle on a flat n×n buffer; open must be a valid
// permutation of 0..n-1.
//
// Complexity: O(n).
func tourLengthDense(raw []float64, n int, open []int) float64 {
	var (
		sum float64
		k   int
	)
	for k = 0; k < n-1; k++ {
		sum += raw[open[k]*n+open[k+1]]
	}
	sum += raw[open[n-1]*n+open[0]]

	return sum
}
