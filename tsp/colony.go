// Package tsp - the ant colony.
//
// Lifecycle:
//
//	NewColony: distances copied and frozen, τ uniform 1/(n²−n), no best tour.
//	RunIteration: ants build tours (concurrent, read-only) → iteration best →
//	global best replaced if strictly shorter → evaporate + deposit on the
//	global best. There is no terminal state; callers decide when to stop.
//
// Locking:
//   - mu (RW) guards tau, best, bestLen and iterations. Ants hold it for
//     reading during construction; replacement and pheromone updates take it
//     exclusively.
//   - rngMu guards the colony-owned generator.
//   - dist, visibility, n, symmetric and opts are immutable after NewColony.
package tsp

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlearn/matrix"
)

// Colony is an Ant Colony Optimization solver over a fixed distance matrix.
type Colony struct {
	n          int
	dist       *matrix.Dense // frozen copy of the caller's distances
	visibility *matrix.Dense // η(i,j)^β, 0 where d(i,j) == 0
	symmetric  bool
	opts       Options

	mu         sync.RWMutex
	tau        *matrix.Dense
	best       []int // open permutation starting at opts.startCity; nil until first iteration
	bestLen    float64
	iterations int

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewColony validates dist and the options and prepares the pheromone matrix.
//
// Steps:
//  1. Validate the matrix (square, n ≥ 2, finite, non-negative off-diagonal).
//  2. Validate options (ρ ∈ (0,1), α, β ≥ 0, start city in range).
//  3. Copy distances, precompute η^β, set τ = 1/(n²−n) off-diagonal, 0 on it.
//
// Errors: ErrConfiguration and the sentinels that wrap it.
//
// Complexity: O(n²) time and space.
func NewColony(dist matrix.Matrix, opts ...Option) (*Colony, error) {
	o := gatherOptions(opts...)

	n, err := validateDistMatrix(dist)
	if err != nil {
		return nil, err
	}
	if err = validateOptions(o, n); err != nil {
		return nil, err
	}

	d, err := matrix.FromMatrix(dist)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	vis, _ := matrix.NewDense(n, n)
	tau, _ := matrix.NewDense(n, n)

	var (
		raw    = d.RawData()
		visRaw = vis.RawData()
		tauRaw = tau.RawData()
		tau0   = 1 / float64(n*n-n)
		i, j   int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			tauRaw[i*n+j] = tau0
			if raw[i*n+j] > 0 {
				visRaw[i*n+j] = math.Pow(1/raw[i*n+j], o.beta)
			}
		}
	}

	rng := o.rng
	if rng == nil {
		rng = rngFromSeed(o.seed)
	}

	return &Colony{
		n:          n,
		dist:       d,
		visibility: vis,
		symmetric:  isSymmetric(d, symTol),
		opts:       o,
		tau:        tau,
		bestLen:    math.Inf(1),
		rng:        rng,
	}, nil
}

// Cities returns n.
func (c *Colony) Cities() int { return c.n }

// Symmetric reports whether the distance table was detected as symmetric.
func (c *Colony) Symmetric() bool { return c.symmetric }

// TourLength returns the cycle length of tour (open or closed shape) on the
// colony's distances.
//
// Errors: ErrDimensionMismatch when tour is not a permutation of 0..n-1.
func (c *Colony) TourLength(tour []int) (float64, error) {
	open := openView(tour)
	if err := ValidatePermutation(open, c.n); err != nil {
		return 0, err
	}

	return tourLengthDense(c.dist.RawData(), c.n, open), nil
}

// ConstructTour lets a single ant walk from start using the colony generator
// and the current pheromone. It returns an open permutation beginning at start.
// The colony state is not modified apart from advancing the generator.
//
// Errors: ErrStartOutOfRange, ErrDegenerateDistance.
func (c *Colony) ConstructTour(start int) ([]int, error) {
	if start < 0 || start >= c.n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, c.n)
	}
	c.rngMu.Lock()
	rng := deriveRNG(c.rng, 0)
	c.rngMu.Unlock()

	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.constructTour(start, rng)
}

// RunIteration sends numAnts ants from the start city, keeps the shortest
// tour they find if it beats the global best, then evaporates all pheromone
// and reinforces the global-best tour.
//
// Ants run concurrently (bounded by WithWorkers) on streams derived from the
// colony generator in ant order; ties between equally short tours go to the
// lowest ant index, so results do not depend on scheduling.
//
// A failing ant or a cancelled ctx aborts the iteration before any pheromone
// or best-tour mutation. ctx is checked before the ants start and before each
// ant begins; a walk in progress always completes.
//
// Errors: ErrConfiguration (numAnts ≤ 0), ErrDegenerateDistance, ctx.Err().
//
// Complexity: O(numAnts·n²) time, O(numAnts·n) space.
func (c *Colony) RunIteration(ctx context.Context, numAnts int) error {
	if numAnts <= 0 {
		return fmt.Errorf("%w: numAnts %d must be > 0", ErrConfiguration, numAnts)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	rngs := make([]*rand.Rand, numAnts)
	c.rngMu.Lock()
	var k int
	for k = 0; k < numAnts; k++ {
		rngs[k] = deriveRNG(c.rng, uint64(k))
	}
	c.rngMu.Unlock()

	tours := make([][]int, numAnts)
	lengths := make([]float64, numAnts)
	raw := c.dist.RawData()

	c.mu.RLock()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.workers)
	for a := 0; a < numAnts; a++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tour, err := c.constructTour(c.opts.startCity, rngs[a])
			if err != nil {
				return err
			}
			tours[a] = tour
			lengths[a] = tourLengthDense(raw, c.n, tour)
			return nil
		})
	}
	err := g.Wait()
	c.mu.RUnlock()
	if err != nil {
		return err
	}

	bestIdx := 0
	for k = 1; k < numAnts; k++ {
		if lengths[k] < lengths[bestIdx] {
			bestIdx = k
		}
	}
	iterBest, iterLen := tours[bestIdx], lengths[bestIdx]

	if c.opts.localSearch && c.symmetric && c.n >= 4 {
		iterBest, iterLen, err = c.polish(iterBest, iterLen)
		if err != nil {
			return err
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if iterLen < c.bestLen {
		c.best = iterBest
		c.bestLen = iterLen
	}
	c.depositLocked(c.best, c.bestLen)
	c.iterations++

	return nil
}

// Run performs iterations calls of RunIteration and returns the global best
// as a closed tour from the start city.
func (c *Colony) Run(ctx context.Context, iterations, numAnts int) (TSResult, error) {
	if iterations <= 0 {
		return TSResult{}, fmt.Errorf("%w: iterations %d must be > 0", ErrConfiguration, iterations)
	}
	var it int
	for it = 0; it < iterations; it++ {
		if err := c.RunIteration(ctx, numAnts); err != nil {
			return TSResult{}, err
		}
	}

	return c.Result()
}

// Result returns the global best as a closed tour (len n+1) with its length.
// Before the first iteration it returns ErrDimensionMismatch.
func (c *Colony) Result() (TSResult, error) {
	c.mu.RLock()
	best, length := c.best, c.bestLen
	c.mu.RUnlock()
	if best == nil {
		return TSResult{}, fmt.Errorf("%w: no iteration has run", ErrDimensionMismatch)
	}
	tour, err := MakeTourFromPermutation(best, c.n, c.opts.startCity)
	if err != nil {
		return TSResult{}, err
	}

	return TSResult{Tour: tour, Cost: length}, nil
}

// BestTour returns a copy of the global-best open tour, or nil before the
// first iteration.
func (c *Colony) BestTour() []int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return CopyTour(c.best)
}

// BestLength returns the global-best length (+Inf before the first iteration).
func (c *Colony) BestLength() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.bestLen
}

// Iterations returns how many RunIteration calls have completed.
func (c *Colony) Iterations() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.iterations
}

// polish runs 2-opt on an open tour and returns the improved open tour.
func (c *Colony) polish(open []int, length float64) ([]int, float64, error) {
	closed, err := MakeTourFromPermutation(open, c.n, c.opts.startCity)
	if err != nil {
		return nil, 0, err
	}
	improved, cost, err := twoOptDense(c.dist.RawData(), c.n, closed, DefaultEps)
	if err != nil {
		return nil, 0, err
	}
	if cost >= length {
		return open, length, nil
	}

	return improved[:c.n], cost, nil
}
