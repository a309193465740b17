package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlearn/matrix"
)

// MaxExactCities bounds TSPExact; memory grows as n·2ⁿ.
const MaxExactCities = 16

// TSPExact solves the Travelling Salesman Problem exactly on a given
// distance matrix using the Held–Karp dynamic-programming algorithm.
// It serves as the optimality reference for the colony on small instances.
//
// It returns a TSResult containing:
//   - Tour: a slice of length n+1 of vertex indices, starting and ending at 0.
//   - Cost: total cycle cost.
//
// Time complexity:  O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ)
//
// Subsets are indexed by bitmasks that always include vertex 0;
// dp[mask·n + j] is the cheapest path that starts at 0, visits exactly the
// vertices in mask and ends at j.
func TSPExact(dist matrix.Matrix) (TSResult, error) {
	n, err := validateDistMatrix(dist)
	if err != nil {
		return TSResult{}, err
	}
	if n > MaxExactCities {
		return TSResult{}, fmt.Errorf("%w: n=%d > %d", ErrTooManyCities, n, MaxExactCities)
	}
	d, err := matrix.FromMatrix(dist)
	if err != nil {
		return TSResult{}, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	w := d.RawData()

	full := 1 << n
	allMask := full - 1

	dp := make([]float64, full*n)
	parent := make([]int, full*n)
	for i := range dp {
		dp[i] = math.Inf(1)
		parent[i] = -1
	}
	dp[1*n+0] = 0

	for mask := 1; mask <= allMask; mask += 2 { // odd masks contain vertex 0
		for j := 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prev := mask ^ (1 << j)
			for k := 0; k < n; k++ {
				if prev&(1<<k) == 0 || math.IsInf(dp[prev*n+k], 1) {
					continue
				}
				cand := dp[prev*n+k] + w[k*n+j]
				if cand < dp[mask*n+j] {
					dp[mask*n+j] = cand
					parent[mask*n+j] = k
				}
			}
		}
	}

	// Close the tour back to 0.
	bestCost := math.Inf(1)
	last := -1
	for j := 1; j < n; j++ {
		total := dp[allMask*n+j] + w[j*n+0]
		if total < bestCost {
			bestCost = total
			last = j
		}
	}

	tour := make([]int, n+1)
	mask := allMask
	j := last
	for i := n - 1; i >= 1; i-- {
		tour[i] = j
		p := parent[mask*n+j]
		mask ^= 1 << j
		j = p
	}

	return TSResult{Tour: tour, Cost: bestCost}, nil
}
