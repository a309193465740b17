// Package tsp - a single ant's walk.
//
// Each ant owns its partial tour and visited markers; nothing is shared
// between ants except read access to the colony's matrices.
//
// Step (current city c, unvisited candidates C):
//
//	s(j) = τ(c,j)^α · η(c,j)^β,  η(c,j) = 1/d(c,j)
//	p(j) = s(j) / Σ_{k∈C} s(k)
//	pick the first j (ascending id) whose cumulative p exceeds r ~ U[0,1)
package tsp

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// ant is the per-construction state: tour so far and O(1) membership.
type ant struct {
	tour    []int
	visited []bool
}

// newAnt places an ant on start.
func newAnt(n, start int) *ant {
	a := &ant{
		tour:    make([]int, 1, n),
		visited: make([]bool, n),
	}
	a.tour[0] = start
	a.visited[start] = true

	return a
}

// current returns the city the ant stands on.
func (a *ant) current() int { return a.tour[len(a.tour)-1] }

// moveTo appends city to the tour and marks it visited.
func (a *ant) moveTo(city int) {
	a.tour = append(a.tour, city)
	a.visited[city] = true
}

// constructTour walks one ant from start until every city is visited.
// The caller must hold c.mu for reading; rng must be owned by the caller.
//
// Errors: ErrDegenerateDistance on d(cur,j) == 0 for a candidate j ≠ cur.
//
// Complexity: O(n²) time, O(n) space.
func (c *Colony) constructTour(start int, rng *rand.Rand) ([]int, error) {
	var (
		n      = c.n
		dist   = c.dist.RawData()
		vis    = c.visibility.RawData()
		tau    = c.tau.RawData()
		a      = newAnt(n, start)
		cands  = make([]int, 0, n)
		scores = make([]float64, 0, n)
		cur    int
		j, off int
	)
	for len(a.tour) < n {
		cur = a.current()
		off = cur * n
		cands = cands[:0]
		scores = scores[:0]
		for j = 0; j < n; j++ {
			if a.visited[j] {
				continue
			}
			if dist[off+j] == 0 {
				return nil, fmt.Errorf("%w: d(%d,%d)=0", ErrDegenerateDistance, cur, j)
			}
			cands = append(cands, j)
			scores = append(scores, math.Pow(tau[off+j], c.opts.alpha)*vis[off+j])
		}
		a.moveTo(rouletteSelect(cands, scores, rng))
	}

	return a.tour, nil
}

// rouletteSelect samples one candidate proportionally to its score.
//
// Fallbacks when the scores do not form a distribution:
//   - some score is +Inf: the first such candidate wins;
//   - total is zero or NaN (underflow): uniform choice.
//
// Candidates are walked in the given (ascending) order; floating-point
// shortfall in the cumulative sum selects the last candidate.
//
// Complexity: O(len(cands)).
func rouletteSelect(cands []int, scores []float64, rng *rand.Rand) int {
	total := floats.Sum(scores)
	if math.IsInf(total, 1) {
		var k int
		for k = range scores {
			if math.IsInf(scores[k], 1) {
				return cands[k]
			}
		}
	}
	if !(total > 0) || math.IsInf(total, 0) {
		return cands[rng.Intn(len(cands))]
	}

	var (
		r   = rng.Float64()
		acc float64
		k   int
	)
	for k = range scores {
		acc += scores[k] / total
		if acc > r {
			return cands[k]
		}
	}

	return cands[len(cands)-1]
}
