// SPDX-License-Identifier: MIT
// Package: lvlearn/builder
//
// points.go — city coordinates in the plane.
//
// Contract:
//   • n ≥ minPoints (else ErrTooFewPoints).
//   • RingPoints is deterministic and ignores the RNG.
//   • RandomPoints draws x then y per point from cfg.rng (else ErrNeedRandSource).
//
// Complexity: O(n) time and space.

package builder

import (
	"fmt"
	"math"
)

const (
	methodRingPoints   = "RingPoints"
	methodRandomPoints = "RandomPoints"
	minPoints          = 2
)

// Point is a city location.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// RingPoints places n points counter-clockwise around the origin, point i at
// angle 2πi/n and radius radius·(1 + ripple·(i mod 3)).
func RingPoints(n int, opts ...BuilderOption) ([]Point, error) {
	if n < minPoints {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRingPoints, n, minPoints, ErrTooFewPoints)
	}
	cfg := newBuilderConfig(opts...)

	var (
		pts   = make([]Point, n)
		i     int
		theta float64
		r     float64
	)
	for i = 0; i < n; i++ {
		theta = 2 * math.Pi * float64(i) / float64(n)
		r = cfg.radius * (1 + cfg.ripple*float64(i%3))
		pts[i] = Point{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
	}

	return pts, nil
}

// RandomPoints samples n points uniformly in the square [0,side)².
func RandomPoints(n int, opts ...BuilderOption) ([]Point, error) {
	if n < minPoints {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomPoints, n, minPoints, ErrTooFewPoints)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomPoints, ErrNeedRandSource)
	}

	pts := make([]Point, n)
	var i int
	for i = 0; i < n; i++ {
		pts[i].X = cfg.rng.Float64() * cfg.side
		pts[i].Y = cfg.rng.Float64() * cfg.side
	}

	return pts, nil
}
