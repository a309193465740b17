// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/lvlearn/builder"
	"github.com/katalvlaran/lvlearn/matrix"
)

const (
	// epsTiny is the tolerance for comparing tour lengths summed in different orders.
	epsTiny = 1e-9

	// seedDet is a deterministic seed for colony generators.
	seedDet = int64(17)
)

// fourCityRows is the 4-city instance whose three distinct cycles all cost 14.
var fourCityRows = [][]float64{
	{0, 1, 2, 3},
	{1, 0, 4, 5},
	{2, 4, 0, 6},
	{3, 5, 6, 0},
}

// dense wraps rows into a *matrix.Dense and fails the test on error.
func dense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)
	return m
}

// ringPoints places n points on a gently rippled circle (convex position).
func ringPoints(t testing.TB, n int) []builder.Point {
	t.Helper()
	pts, err := builder.RingPoints(n, builder.WithRipple(0.025))
	require.NoError(t, err)
	return pts
}

// euclid builds the symmetric Euclidean distance matrix of pts.
func euclid(t testing.TB, pts []builder.Point) *matrix.Dense {
	t.Helper()
	m, err := builder.Euclidean(pts)
	require.NoError(t, err)
	return m
}

// randomRows builds an n×n table with distances in [0.1, 10.1); symmetric on request.
func randomRows(rng *rand.Rand, n int, symmetric bool) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if symmetric && j < i {
				rows[i][j] = rows[j][i]
				continue
			}
			rows[i][j] = 0.1 + 10*rng.Float64()
		}
	}
	return rows
}

// bruteForceOptimum enumerates every cycle that starts at 0.
func bruteForceOptimum(rows [][]float64) float64 {
	n := len(rows)
	best := math.Inf(1)
	for _, p := range combin.Permutations(n-1, n-1) {
		cur, sum := 0, 0.0
		for _, v := range p {
			sum += rows[cur][v+1]
			cur = v + 1
		}
		sum += rows[cur][0]
		if sum < best {
			best = sum
		}
	}
	return best
}

// isPermutation reports whether tour holds each of 0..n-1 exactly once.
func isPermutation(tour []int, n int) bool {
	if len(tour) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range tour {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
