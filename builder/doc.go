// Package builder produces reproducible problem instances for the nn and tsp
// packages: point sets, distance matrices and small labelled datasets.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, weight function, ring radius and ripple.
//   - Distance distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant DefaultDistance.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max).
//     – NormalWeightFn:    Gaussian ∼N(mean,stddev), clipped at zero.
//     – ExponentialWeightFn: exponential ∼Exp(rate).
//   - Instances:
//     – RandomPoints, RingPoints: city coordinates in the plane.
//     – Euclidean:         symmetric distance matrix from points.
//     – RandomDistances:   symmetric or directed matrix from a WeightFn.
//     – TruthTable, Parity: boolean datasets for feed-forward training.
//
// Guarantees:
//
//   - Deterministic output for a fixed seed (WithSeed) and option list.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel errors (errors.Is) for invalid build parameters at runtime.
//
// Stochastic constructors (RandomPoints, RandomDistances) need WithSeed or
// WithRand; without one they return ErrNeedRandSource.
package builder
