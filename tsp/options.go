// Package tsp - colony configuration (functional options).
//
// Options are collected by gatherOptions over the Default* constants and
// validated by NewColony once n is known; setters never fail.
package tsp

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
)

// Defaults applied by NewColony.
const (
	// DefaultEvaporation is ρ, the fraction of pheromone lost per iteration.
	DefaultEvaporation = 0.5

	// DefaultAlpha weights learned pheromone in the desirability score.
	DefaultAlpha = 1.0

	// DefaultBeta weights the distance heuristic η = 1/d in the desirability score.
	DefaultBeta = 2.0

	// DefaultStartCity is where every ant begins.
	DefaultStartCity = 0

	// DefaultDepositEpsilon is ε in ρ/((1−ρ)(L+ε)).
	DefaultDepositEpsilon = 1e-12

	// DefaultEps is the strict improvement threshold for 2-opt moves.
	DefaultEps = 1e-12

	// DefaultPheromoneFloor is the lowest value evaporation may leave on an
	// off-diagonal entry. It sits well above the subnormal range.
	DefaultPheromoneFloor = 1e-300
)

// Option mutates Options.
type Option func(*Options)

// Options stores the effective colony configuration.
type Options struct {
	evaporation float64
	alpha       float64
	beta        float64
	startCity   int
	seed        int64
	rng         *rand.Rand
	workers     int
	depositEps  float64
	tauMin      float64
	localSearch bool
}

// WithEvaporation sets ρ; NewColony requires 0 < ρ < 1.
func WithEvaporation(rho float64) Option {
	return func(o *Options) { o.evaporation = rho }
}

// WithAlpha sets the pheromone exponent α ≥ 0.
func WithAlpha(alpha float64) Option {
	return func(o *Options) { o.alpha = alpha }
}

// WithBeta sets the heuristic exponent β ≥ 0.
func WithBeta(beta float64) Option {
	return func(o *Options) { o.beta = beta }
}

// WithStartCity sets the city every ant of RunIteration starts from.
func WithStartCity(city int) Option {
	return func(o *Options) { o.startCity = city }
}

// WithSeed seeds the colony-owned generator; seed 0 selects a fixed default.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithRand hands a caller-owned generator to the colony (precedence over
// WithSeed). The colony serializes its own draws; the caller must not use r
// concurrently with the colony.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.rng = r }
}

// WithWorkers bounds how many ants construct tours at the same time.
// 0 means runtime.GOMAXPROCS(0); 1 runs ants one after another.
func WithWorkers(n int) Option {
	return func(o *Options) { o.workers = n }
}

// WithDepositEpsilon sets ε in the deposit amount ρ/((1−ρ)(L+ε)).
func WithDepositEpsilon(eps float64) Option {
	return func(o *Options) { o.depositEps = eps }
}

// WithPheromoneFloor sets the lower bound τmin kept on every off-diagonal
// entry after evaporation; NewColony requires 0 < τmin < +Inf.
func WithPheromoneFloor(tauMin float64) Option {
	return func(o *Options) { o.tauMin = tauMin }
}

// WithLocalSearch enables a 2-opt polish of each iteration-best tour before it
// competes with the global best. Ignored for asymmetric distance tables.
func WithLocalSearch(on bool) Option {
	return func(o *Options) { o.localSearch = on }
}

// gatherOptions applies user setters on top of the defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		evaporation: DefaultEvaporation,
		alpha:       DefaultAlpha,
		beta:        DefaultBeta,
		startCity:   DefaultStartCity,
		depositEps:  DefaultDepositEpsilon,
		tauMin:      DefaultPheromoneFloor,
	}
	for _, set := range user {
		set(&o)
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}

// validateOptions checks ranges that do not depend on the matrix, plus the
// start city once n is known.
func validateOptions(o Options, n int) error {
	if !(o.evaporation > 0 && o.evaporation < 1) {
		return fmt.Errorf("%w: evaporation %v must lie in (0,1)", ErrConfiguration, o.evaporation)
	}
	if !isFiniteNonNegative(o.alpha) {
		return fmt.Errorf("%w: alpha %v must be finite and ≥ 0", ErrConfiguration, o.alpha)
	}
	if !isFiniteNonNegative(o.beta) {
		return fmt.Errorf("%w: beta %v must be finite and ≥ 0", ErrConfiguration, o.beta)
	}
	if !isFiniteNonNegative(o.depositEps) {
		return fmt.Errorf("%w: deposit epsilon %v must be finite and ≥ 0", ErrConfiguration, o.depositEps)
	}
	if !(o.tauMin > 0) || math.IsInf(o.tauMin, 1) {
		return fmt.Errorf("%w: pheromone floor %v must be finite and > 0", ErrConfiguration, o.tauMin)
	}
	if o.workers < 0 {
		return fmt.Errorf("%w: workers %d must be ≥ 0", ErrConfiguration, o.workers)
	}
	if o.startCity < 0 || o.startCity >= n {
		return fmt.Errorf("%w: %w: %d not in [0,%d)", ErrConfiguration, ErrStartOutOfRange, o.startCity, n)
	}

	return nil
}

// isFiniteNonNegative reports 0 ≤ x < +Inf (NaN fails).
func isFiniteNonNegative(x float64) bool {
	return x >= 0 && !math.IsInf(x, 1)
}
