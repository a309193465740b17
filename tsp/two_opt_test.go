package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlearn/builder"
	"github.com/katalvlaran/lvlearn/tsp"
)

func TestTwoOpt_UncrossesSquare(t *testing.T) {
	dist := euclid(t, []builder.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
	crossed := []int{0, 2, 1, 3, 0}

	before, err := tsp.TourLength(dist, crossed)
	require.NoError(t, err)
	require.InDelta(t, 2+2*math.Sqrt2, before, epsTiny)

	tour, cost, err := tsp.TwoOpt(dist, crossed, 0)
	require.NoError(t, err)
	require.InDelta(t, 4.0, cost, epsTiny)
	require.Equal(t, []int{0, 1, 2, 3, 0}, tour)
	require.Equal(t, []int{0, 2, 1, 3, 0}, crossed, "input must not be modified")
}

func TestTwoOpt_ConvexRingReachesOptimum(t *testing.T) {
	dist := euclid(t, ringPoints(t, 9))
	exact, err := tsp.TSPExact(dist)
	require.NoError(t, err)

	start, err := tsp.MakeTourFromPermutation([]int{0, 4, 8, 3, 7, 2, 6, 1, 5}, 9, 0)
	require.NoError(t, err)
	tour, cost, err := tsp.TwoOpt(dist, start, 0)
	require.NoError(t, err)
	require.NoError(t, tsp.ValidateTour(tour, 9, 0))
	require.InDelta(t, exact.Cost, cost, epsTiny)
}

func TestTwoOpt_Errors(t *testing.T) {
	asym := dense(t, [][]float64{
		{0, 1, 9, 2},
		{9, 0, 1, 2},
		{1, 9, 0, 2},
		{2, 2, 2, 0},
	})
	_, _, err := tsp.TwoOpt(asym, []int{0, 1, 2, 3, 0}, 0)
	require.ErrorIs(t, err, tsp.ErrConfiguration)

	sym := dense(t, fourCityRows)
	_, _, err = tsp.TwoOpt(sym, []int{0, 1, 2, 3}, 0)
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
	_, _, err = tsp.TwoOpt(sym, nil, 0)
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
	_, _, err = tsp.TwoOpt(sym, []int{0, 1, 2, 3, 0}, -1)
	require.ErrorIs(t, err, tsp.ErrConfiguration)
}
