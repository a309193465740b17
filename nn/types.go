// Package nn - sentinel errors, defaults and functional options.
package nn

import (
	"errors"
	"math/rand"
)

var (
	// ErrConfiguration reports invalid constructor or setter arguments
	// (fewer than two layers, non-positive layer size, bad rates).
	ErrConfiguration = errors.New("nn: invalid configuration")

	// ErrDimensionMismatch reports a sample/target whose length does not
	// match the input/output layer, or an out-of-range layer/neuron index.
	ErrDimensionMismatch = errors.New("nn: dimension mismatch")

	// ErrNoForwardPass reports Backward called before any Forward.
	ErrNoForwardPass = errors.New("nn: backward requires a preceding forward pass")
)

// Defaults applied by New when no option overrides them.
const (
	// DefaultLearningRate is the step size of each weight update.
	DefaultLearningRate = 0.25

	// DefaultMomentum is the fraction of the previous update carried forward.
	DefaultMomentum = 0.9

	// minLayers is the smallest meaningful network: input + output.
	minLayers = 2
)

// Option mutates Options. Options are validated by New, not by the setters.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	learningRate float64
	momentum     float64
	seed         int64
	rng          *rand.Rand
	weightInit   func(r *rand.Rand) float64
}

// WithLearningRate sets the learning rate (must be finite and > 0).
func WithLearningRate(lr float64) Option {
	return func(o *Options) { o.learningRate = lr }
}

// WithMomentum sets the momentum coefficient (must lie in [0,1]).
func WithMomentum(m float64) Option {
	return func(o *Options) { o.momentum = m }
}

// WithSeed seeds the network-owned generator. Seed 0 selects a fixed default.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithRand hands a caller-owned generator to the network. It takes precedence
// over WithSeed. The network draws from it only inside New.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.rng = r }
}

// WithWeightInit overrides the initial weight distribution (default: uniform
// [0,1) via r.Float64). Bias weights use the same function.
func WithWeightInit(f func(r *rand.Rand) float64) Option {
	return func(o *Options) { o.weightInit = f }
}

// gatherOptions applies user setters on top of the defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		learningRate: DefaultLearningRate,
		momentum:     DefaultMomentum,
		weightInit:   uniformUnit,
	}
	for _, set := range user {
		set(&o)
	}
	if o.weightInit == nil {
		o.weightInit = uniformUnit
	}
	if o.rng == nil {
		o.rng = rngFromSeed(o.seed)
	}

	return o
}

// uniformUnit draws from [0,1).
func uniformUnit(r *rand.Rand) float64 { return r.Float64() }
