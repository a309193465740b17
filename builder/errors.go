// SPDX-License-Identifier: MIT
// Package: lvlearn/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach method context with %w.
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewPoints indicates that a size parameter (points, cities, bits) is
// smaller than the allowed minimum for the requested constructor.
var ErrTooFewPoints = errors.New("builder: parameter too small")

// ErrTooLarge indicates that a size parameter exceeds the constructor maximum.
var ErrTooLarge = errors.New("builder: parameter too large")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: random source required")

// ErrUnknownGate indicates a Gate value outside the defined set.
var ErrUnknownGate = errors.New("builder: unknown gate")
