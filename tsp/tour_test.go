package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlearn/tsp"
)

func TestTourLength_RotationAndReversalInvariant(t *testing.T) {
	const n = 8
	dist := euclid(t, ringPoints(t, n))
	c, err := tsp.NewColony(dist)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(11))
	for rep := 0; rep < 10; rep++ {
		perm := rng.Perm(n)
		base, err := tsp.TourLength(dist, perm)
		require.NoError(t, err)

		viaColony, err := c.TourLength(perm)
		require.NoError(t, err)
		require.InDelta(t, base, viaColony, epsTiny)

		for start := 0; start < n; start++ {
			rot, err := tsp.RotateTourToStart(perm, start)
			require.NoError(t, err)
			require.Equal(t, start, rot[0])

			l, err := tsp.TourLength(dist, rot)
			require.NoError(t, err)
			require.InDelta(t, base, l, epsTiny)

			l, err = tsp.TourLength(dist, tsp.ReverseTour(rot))
			require.NoError(t, err)
			require.InDelta(t, base, l, epsTiny)
		}

		closed, err := tsp.MakeTourFromPermutation(perm, n, perm[3])
		require.NoError(t, err)
		require.NoError(t, tsp.ValidateTour(closed, n, perm[3]))
		l, err := tsp.TourLength(dist, closed)
		require.NoError(t, err)
		require.InDelta(t, base, l, epsTiny)
	}
}

func TestTourLength_AsymmetricRotationOnly(t *testing.T) {
	dist := dense(t, [][]float64{
		{0, 1, 9},
		{9, 0, 1},
		{1, 9, 0},
	})
	l, err := tsp.TourLength(dist, []int{1, 2, 0})
	require.NoError(t, err)
	require.Equal(t, 3.0, l)

	l, err = tsp.TourLength(dist, tsp.ReverseTour([]int{0, 1, 2}))
	require.NoError(t, err)
	require.Equal(t, 27.0, l)
}

func TestTourLength_Errors(t *testing.T) {
	dist := dense(t, fourCityRows)
	for _, tour := range [][]int{
		nil,
		{0, 1, 2},
		{0, 1, 2, 2},
		{0, 1, 2, 4},
		{0, 1, 2, 3, 1},
	} {
		_, err := tsp.TourLength(dist, tour)
		require.ErrorIs(t, err, tsp.ErrDimensionMismatch, "tour=%v", tour)
	}

	_, err := tsp.TourLength(nil, []int{0, 1})
	require.ErrorIs(t, err, tsp.ErrNonSquare)
}

func TestValidateTour(t *testing.T) {
	require.NoError(t, tsp.ValidateTour([]int{2, 0, 1, 3, 2}, 4, 2))
	require.ErrorIs(t, tsp.ValidateTour([]int{2, 0, 1, 3}, 4, 2), tsp.ErrDimensionMismatch)
	require.ErrorIs(t, tsp.ValidateTour([]int{2, 0, 1, 3, 0}, 4, 2), tsp.ErrDimensionMismatch)
	require.ErrorIs(t, tsp.ValidateTour([]int{2, 0, 0, 3, 2}, 4, 2), tsp.ErrDimensionMismatch)
	require.ErrorIs(t, tsp.ValidateTour([]int{2, 0, 1, 3, 2}, 4, 7), tsp.ErrStartOutOfRange)
}

func TestTourHelpers(t *testing.T) {
	closed, err := tsp.MakeTourFromPermutation([]int{3, 1, 0, 2}, 4, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 3, 1, 0}, closed)

	_, err = tsp.MakeTourFromPermutation([]int{3, 1, 0, 2}, 4, 4)
	require.ErrorIs(t, err, tsp.ErrStartOutOfRange)

	rot, err := tsp.RotateTourToStart(closed, 3)
	require.NoError(t, err)
	require.Equal(t, []int{3, 1, 0, 2}, rot)

	require.Equal(t, []int{0, 1, 3, 2}, tsp.ReverseTour(closed))
	require.Nil(t, tsp.ReverseTour(nil))

	require.True(t, tsp.EqualToursModuloRotation(closed, rot))
	require.False(t, tsp.EqualToursModuloRotation(closed, tsp.ReverseTour(closed)))
	require.False(t, tsp.EqualToursModuloRotation(closed, []int{0, 1, 2}))

	cp := tsp.CopyTour(closed)
	cp[1] = 99
	require.Equal(t, 2, closed[1])
	require.Nil(t, tsp.CopyTour(nil))
}
