// SPDX-License-Identifier: MIT
// Package: lvlearn/builder
//
// distances.go — distance matrices for the tsp package.
//
// Contract:
//   • At least minPoints cities (else ErrTooFewPoints).
//   • The diagonal is always 0.
//   • Euclidean is symmetric by construction.
//   • RandomDistances draws every off-diagonal entry from cfg.weightFn in
//     row-major order; with symmetric=true only the upper triangle is drawn
//     and mirrored, so the draw sequence is (0,1),(0,2),…,(1,2),….
//
// Complexity: O(n²) time and space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlearn/matrix"
)

const (
	methodEuclidean       = "Euclidean"
	methodRandomDistances = "RandomDistances"
)

// Euclidean builds the n×n matrix d(i,j) = |pts[i] − pts[j]|.
// Coincident points yield zero off-diagonal entries, which the colony
// reports as degenerate.
func Euclidean(pts []Point) (*matrix.Dense, error) {
	n := len(pts)
	if n < minPoints {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodEuclidean, n, minPoints, ErrTooFewPoints)
	}
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodEuclidean, err)
	}

	var (
		raw  = m.RawData()
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = pts[i].Dist(pts[j])
			raw[i*n+j] = d
			raw[j*n+i] = d
		}
	}

	return m, nil
}

// RandomDistances builds an n×n distance table whose off-diagonal entries
// come from the configured WeightFn (WithUniformWeight, WithNormalWeight, …).
// Requires WithSeed or WithRand.
func RandomDistances(n int, symmetric bool, opts ...BuilderOption) (*matrix.Dense, error) {
	if n < minPoints {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomDistances, n, minPoints, ErrTooFewPoints)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomDistances, ErrNeedRandSource)
	}
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomDistances, err)
	}

	var (
		raw  = m.RawData()
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case i == j:
				continue
			case symmetric && j < i:
				raw[i*n+j] = raw[j*n+i]
			default:
				raw[i*n+j] = cfg.weightFn(cfg.rng)
			}
		}
	}

	return m, nil
}
