// Package lvlearn is a small toolkit of learning and stochastic-search
// algorithms built on a shared dense-matrix core: a back-propagation
// feed-forward network and an Ant Colony Optimization solver for the
// Travelling Salesman Problem.
//
// 🚀 What is inside?
//
//   - matrix/: row-major Dense storage, validators and sentinel errors
//   - nn/: fully connected logistic network, online training with momentum
//   - tsp/: ant colony (concurrent ants, pheromone learning), Held–Karp
//     exact solver, 2-opt local search and tour utilities
//   - builder/: reproducible instances: point sets, distance tables,
//     truth-table datasets
//
// ✨ Why lvlearn?
//
//   - Deterministic – every stochastic component takes a seed or a *rand.Rand
//   - Explicit errors – sentinel values, checked with errors.Is
//   - Concurrency where it pays – ants walk in parallel under a read lock,
//     results stay independent of scheduling
//   - Pure Go – gonum for vector kernels, x/sync for bounded fan-out
//
// Quick example (colony on a ring of cities):
//
//	pts, _ := builder.RingPoints(12, builder.WithRipple(0.02))
//	dist, _ := builder.Euclidean(pts)
//	colony, _ := tsp.NewColony(dist, tsp.WithSeed(1))
//	res, _ := colony.Run(context.Background(), 100, 12)
//	fmt.Println(res.Tour, res.Cost)
//
// Runnable programs live under examples/.
//
//	go get github.com/katalvlaran/lvlearn
package lvlearn
