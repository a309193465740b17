package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlearn/matrix"
	"github.com/katalvlaran/lvlearn/tsp"
)

func TestTSPExact_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for n := 2; n <= 8; n++ {
		for _, symmetric := range []bool{true, false} {
			rows := randomRows(rng, n, symmetric)
			dist := dense(t, rows)

			res, err := tsp.TSPExact(dist)
			require.NoError(t, err)
			require.NoError(t, tsp.ValidateTour(res.Tour, n, 0))
			require.InDelta(t, bruteForceOptimum(rows), res.Cost, epsTiny, "n=%d symmetric=%v", n, symmetric)

			l, err := tsp.TourLength(dist, res.Tour)
			require.NoError(t, err)
			require.InDelta(t, res.Cost, l, epsTiny)
		}
	}
}

func TestTSPExact_Errors(t *testing.T) {
	big, err := matrix.NewDense(tsp.MaxExactCities+1, tsp.MaxExactCities+1)
	require.NoError(t, err)
	_, err = tsp.TSPExact(big)
	require.ErrorIs(t, err, tsp.ErrTooManyCities)
	require.ErrorIs(t, err, tsp.ErrConfiguration)

	_, err = tsp.TSPExact(dense(t, [][]float64{{0, -2}, {1, 0}}))
	require.ErrorIs(t, err, tsp.ErrNegativeDistance)
}
