// SPDX-License-Identifier: MIT
// Package: lvlearn/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng      = nil               (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn   (constant DefaultDistance)
//   • radius   = 1.0               (RingPoints)
//   • ripple   = 0.0               (RingPoints, perfect circle)
//   • side     = 1.0               (RandomPoints, unit square)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	rng      *rand.Rand
	weightFn WeightFn
	radius   float64
	ripple   float64
	side     float64
}

const (
	defaultRadius = 1.0
	defaultRipple = 0.0
	defaultSide   = 1.0
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last-wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: DefaultWeightFn,
		radius:   defaultRadius,
		ripple:   defaultRipple,
		side:     defaultSide,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
