// SPDX-License-Identifier: MIT
// Package: lvlearn/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a constructor by mutating a builderConfig
// instance before the instance is generated.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-entry distance generator used by
// RandomDistances. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithRadius sets the RingPoints base radius (>0).
func WithRadius(r float64) BuilderOption {
	if !(r > 0) {
		panic(fmt.Sprintf("builder: WithRadius(%g): radius must be > 0", r))
	}
	return func(c *builderConfig) {
		c.radius = r
	}
}

// WithRipple sets the RingPoints radial ripple in [0, 1): point i sits at
// radius·(1 + ripple·(i mod 3)). A small ripple keeps the points in convex
// position while breaking the exact rotational symmetry of a regular polygon.
func WithRipple(ripple float64) BuilderOption {
	if !(ripple >= 0 && ripple < 1) {
		panic(fmt.Sprintf("builder: WithRipple(%g): ripple must lie in [0,1)", ripple))
	}
	return func(c *builderConfig) {
		c.ripple = ripple
	}
}

// WithSide sets the side length (>0) of the square RandomPoints samples from.
func WithSide(side float64) BuilderOption {
	if !(side > 0) {
		panic(fmt.Sprintf("builder: WithSide(%g): side must be > 0", side))
	}
	return func(c *builderConfig) {
		c.side = side
	}
}
