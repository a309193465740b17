// Package tsp provides an ant-colony optimizer for the Travelling Salesman
// Problem together with the tour utilities and reference solvers it relies on.
//
// Solvers on a distance matrix (matrix.Matrix, n×n, n ≥ 2):
//
//   - Colony — Ant Colony Optimization. Ants build tours city by city with
//     roulette-wheel sampling over τ(i,j)^α · η(i,j)^β, η = 1/d(i,j); after each
//     iteration all pheromone evaporates by (1−ρ) and the global-best tour is
//     reinforced by ρ/((1−ρ)(L+ε)).
//
//   - Complexity: O(ants·n²) per iteration.
//
//   - Memory:     O(n²) for distances, visibility and pheromone.
//
//   - TSPExact — Held–Karp dynamic programming, used as an optimality reference.
//
//   - Complexity: O(n²·2ⁿ), n ≤ MaxExactCities.
//
//   - TwoOpt — first-improvement 2-opt local search on a closed tour.
//
// Tours:
//   - An "open" tour is a permutation of 0..n-1; the closing edge is implicit.
//   - A "closed" tour has length n+1 and repeats its first city at the end.
//     TourLength accepts both shapes.
//
// Concurrency:
//   - Within RunIteration ants construct tours concurrently; they only read the
//     distance and pheromone matrices. Pheromone mutation and best-tour
//     replacement run under an exclusive lock, so a Colony may be shared.
//
// Determinism:
//   - Randomness comes from a generator owned by the Colony (WithSeed/WithRand).
//     Per-ant streams are derived in ant order, so a fixed seed yields the same
//     best tour regardless of WithWorkers.
package tsp
