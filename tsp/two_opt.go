// Package tsp - 2-opt local search (symmetric).
//
// TwoOpt performs deterministic first-improvement 2-opt on a closed tour:
// for positions 1 ≤ i < k ≤ n−1 with a=T[i−1], b=T[i], c=T[k], d=T[k+1],
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d)
//
// and a move with Δ < −eps reverses T[i..k]. The scan restarts after every
// accepted move and stops when a full pass finds nothing. The start city
// (T[0] == T[n]) never moves.
//
// Complexity: O(n²) per pass; each accepted move costs O(n).
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlearn/matrix"
)

// TwoOpt improves a closed tour on a symmetric distance matrix and returns
// the improved closed tour (a fresh slice) with its length. eps==0 selects
// DefaultEps.
//
// Errors: configuration sentinels for dist; ErrConfiguration for an
// asymmetric matrix or a negative eps; ErrDimensionMismatch for a bad tour.
func TwoOpt(dist matrix.Matrix, tour []int, eps float64) ([]int, float64, error) {
	n, err := validateDistMatrix(dist)
	if err != nil {
		return nil, 0, err
	}
	if math.IsNaN(eps) || eps < 0 {
		return nil, 0, fmt.Errorf("%w: eps %v must be ≥ 0", ErrConfiguration, eps)
	}
	if eps == 0 {
		eps = DefaultEps
	}
	if len(tour) == 0 {
		return nil, 0, ErrDimensionMismatch
	}
	if err = ValidateTour(tour, n, tour[0]); err != nil {
		return nil, 0, err
	}
	d, err := matrix.FromMatrix(dist)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	if !isSymmetric(d, symTol) {
		return nil, 0, fmt.Errorf("%w: 2-opt requires a symmetric matrix", ErrConfiguration)
	}

	return twoOptDense(d.RawData(), n, CopyTour(tour), eps)
}

// twoOptDense runs first-improvement 2-opt in place on a validated closed
// tour over a flat symmetric n×n buffer and returns it with its length.
func twoOptDense(w []float64, n int, tour []int, eps float64) ([]int, float64, error) {
	if len(tour) != n+1 {
		return nil, 0, ErrDimensionMismatch
	}

	var (
		improved   = true
		i, k       int
		a, b, c, d int
		delta      float64
	)
	for improved {
		improved = false
	scan:
		for i = 1; i < n-1; i++ {
			a, b = tour[i-1], tour[i]
			for k = i + 1; k < n; k++ {
				c, d = tour[k], tour[k+1]
				delta = w[a*n+c] + w[b*n+d] - w[a*n+b] - w[c*n+d]
				if delta < -eps {
					reverseSegment(tour, i, k)
					improved = true
					break scan
				}
			}
		}
	}

	return tour, tourLengthDense(w, n, tour[:n]), nil
}

// reverseSegment reverses tour[i..k] inclusive.
func reverseSegment(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}
