// Package tsp - sentinel errors, result type and shared constants.
package tsp

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is the umbrella for invalid constructor arguments.
	// Every more specific configuration sentinel below matches it via errors.Is.
	ErrConfiguration = errors.New("tsp: invalid configuration")

	// ErrNonSquare indicates the distance matrix is nil or not square.
	ErrNonSquare = fmt.Errorf("%w: distance matrix must be square", ErrConfiguration)

	// ErrTooFewCities indicates n < 2.
	ErrTooFewCities = fmt.Errorf("%w: at least two cities required", ErrConfiguration)

	// ErrNegativeDistance indicates a negative off-diagonal distance.
	ErrNegativeDistance = fmt.Errorf("%w: negative distance", ErrConfiguration)

	// ErrNonFinite indicates a NaN or ±Inf off-diagonal distance.
	ErrNonFinite = fmt.Errorf("%w: non-finite distance", ErrConfiguration)

	// ErrTooManyCities indicates an instance too large for the exact solver.
	ErrTooManyCities = fmt.Errorf("%w: too many cities for exact search", ErrConfiguration)

	// ErrDimensionMismatch indicates a tour that is not a permutation of the
	// colony's cities (wrong length, duplicates, out-of-range ids).
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrStartOutOfRange indicates a start city outside [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start city out of range")

	// ErrDegenerateDistance indicates a zero distance between two distinct
	// cities met while computing the heuristic term η = 1/d.
	ErrDegenerateDistance = errors.New("tsp: zero distance between distinct cities")
)

// TSResult holds the outcome of a TSP solver.
type TSResult struct {
	// Tour is the closed cycle: len(Tour) == n+1 and Tour[0] == Tour[n] == start.
	Tour []int

	// Cost is the total distance of the cycle.
	Cost float64
}

// symTol is the structural tolerance used to detect symmetric distance tables.
const symTol = 1e-12
