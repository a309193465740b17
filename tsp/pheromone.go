// Package tsp - pheromone maintenance.
//
//	evaporation: τ(i,j) ← max((1−ρ)·τ(i,j), τmin)   for every i≠j
//	deposit:     τ(i,j) ← τ(i,j) + ρ/((1−ρ)(L+ε))  for every tour edge (i,j)
//
// The floor τmin keeps off-diagonal entries strictly positive on long runs;
// the diagonal stays exactly zero. On a symmetric table each unordered edge
// of the tour is reinforced once, in both directions.
package tsp

import (
	"fmt"
	"math"
)

// UpdatePheromones evaporates the whole matrix and reinforces every edge of
// tour (closing edge included) using its length.
//
// tour may be open or closed. Both arguments are validated before the
// exclusive section; a failed call leaves τ untouched.
//
// Errors: ErrDimensionMismatch for a bad tour, ErrConfiguration for a
// negative or non-finite length.
//
// Complexity: O(n²) evaporation + O(n) deposit.
func (c *Colony) UpdatePheromones(tour []int, length float64) error {
	open := openView(tour)
	if err := ValidatePermutation(open, c.n); err != nil {
		return err
	}
	if math.IsNaN(length) || math.IsInf(length, 0) || length < 0 {
		return fmt.Errorf("%w: tour length %v", ErrConfiguration, length)
	}
	if length+c.opts.depositEps == 0 {
		return fmt.Errorf("%w: zero tour length with zero deposit epsilon", ErrConfiguration)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.depositLocked(open, length)

	return nil
}

// depositLocked applies evaporation then deposit; c.mu must be held for
// writing. A nil tour only evaporates.
func (c *Colony) depositLocked(open []int, length float64) {
	var (
		rho  = c.opts.evaporation
		n    = c.n
		tau  = c.tau.RawData()
		i, j int
	)
	c.tau.Scale(1 - rho)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j && tau[i*n+j] < c.opts.tauMin {
				tau[i*n+j] = c.opts.tauMin
			}
		}
	}
	if open == nil {
		return
	}

	// With two cities the closing leg retraces the only unordered edge.
	edges := n
	if c.symmetric && n == 2 {
		edges = 1
	}
	var (
		amount = rho / ((1 - rho) * (length + c.opts.depositEps))
		k      int
		u, v   int
	)
	for k = 0; k < edges; k++ {
		u = open[k]
		v = open[(k+1)%n]
		tau[u*n+v] += amount
		if c.symmetric {
			tau[v*n+u] += amount
		}
	}
}

// Pheromone returns τ(i,j).
func (c *Colony) Pheromone(i, j int) (float64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, err := c.tau.At(i, j)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDimensionMismatch, err)
	}

	return v, nil
}
