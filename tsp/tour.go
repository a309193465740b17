// Package tsp - tour utilities.
//
// This file contains compact helpers that operate purely on tour structure
// (index sequences), without depending on distance matrices:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - ValidateTour: enforce closed Hamiltonian cycle invariants.
//   - MakeTourFromPermutation: build a closed tour from a permutation, rotated to a start.
//   - RotateTourToStart / ReverseTour: produce the same cycle in another shape.
//   - EqualToursModuloRotation: equality under rotation (same direction).
//   - CopyTour: independent copy.
//
// Design:
//   - No logging, no panics on user input; only sentinel errors from types.go.
//   - O(n) time for every helper; a single O(n) marker slice where needed.
package tsp

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// ValidateTour enforces closed-cycle invariants:
//
//	len(tour) == n+1, tour[0]==tour[n]==start,
//	each vertex v∈[0..n-1] appears exactly once in positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if tour[0] != start || tour[n] != start {
		return ErrDimensionMismatch
	}

	return ValidatePermutation(tour[:n], n)
}

// MakeTourFromPermutation builds a closed tour from a vertex permutation,
// rotated so that it starts and ends at start.
//
// Complexity: O(n) time, O(n) space.
func MakeTourFromPermutation(perm []int, n int, start int) ([]int, error) {
	if err := ValidatePermutation(perm, n); err != nil {
		return nil, err
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	pivot := indexOf(perm, start)
	tour := make([]int, n+1)

	var i int
	for i = 0; i < n; i++ {
		tour[i] = perm[(pivot+i)%n]
	}
	tour[n] = start

	return tour, nil
}

// RotateTourToStart returns a fresh open permutation shifted so that out[0]==start.
// The input may be open (len n) or closed (len n+1, first == last).
//
// Complexity: O(n) time, O(n) space.
func RotateTourToStart(tour []int, start int) ([]int, error) {
	open := openView(tour)
	n := len(open)
	if err := ValidatePermutation(open, n); err != nil {
		return nil, err
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	pivot := indexOf(open, start)
	out := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		out[i] = open[(pivot+i)%n]
	}

	return out, nil
}

// ReverseTour returns the same cycle walked in the opposite direction, as an
// open permutation that keeps the first city in place.
//
// Complexity: O(n) time, O(n) space.
func ReverseTour(tour []int) []int {
	open := openView(tour)
	n := len(open)
	if n == 0 {
		return nil
	}
	out := make([]int, n)
	out[0] = open[0]

	var i int
	for i = 1; i < n; i++ {
		out[i] = open[n-i]
	}

	return out
}

// EqualToursModuloRotation reports whether a and b describe the same cycle in
// the same direction. Open and closed shapes may be mixed.
//
// Complexity: O(n) time.
func EqualToursModuloRotation(a, b []int) bool {
	oa, ob := openView(a), openView(b)
	n := len(oa)
	if n == 0 || len(ob) != n {
		return false
	}
	p := indexOf(ob, oa[0])
	if p == -1 {
		return false
	}

	var i int
	for i = 0; i < n; i++ {
		if oa[i] != ob[(p+i)%n] {
			return false
		}
	}

	return true
}

// CopyTour returns an independent copy of the input tour slice.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// openView drops the closing city of a closed tour (no copy).
func openView(tour []int) []int {
	if len(tour) >= 2 && tour[0] == tour[len(tour)-1] {
		return tour[:len(tour)-1]
	}

	return tour
}

// indexOf returns the first position of v in s, or -1.
func indexOf(s []int, v int) int {
	var i int
	for i = range s {
		if s[i] == v {
			return i
		}
	}

	return -1
}
