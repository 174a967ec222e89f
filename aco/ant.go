// Package aco - single ant simulation.
//
// An ant walks the complete graph from the start node, choosing each next
// node by a roulette-wheel draw over the pheromone weights of the edges to
// the not-yet-visited nodes. It never writes to the snapshot it reads; its
// whole effect is the returned AntResult.
//
// State machine:
//
//	Start(visited={start}) ──SelectNext──▶ … ──SelectNext──▶ Complete(visited=all)
//
// No backtracking, exactly n-1 transitions.
package aco

import (
	"fmt"
	"math"
	"math/rand"
)

// roundTo1 rounds v to one decimal place (half away from zero).
func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}

// BuildRoute runs one ant from start over snap and dist.
//
// Implementation:
//   - Stage 1: visited={start}, cost=0.
//   - Stage 2: while unvisited nodes remain, gather candidates in ascending
//     node order, read w[k]=snap(current, cand[k]) and draw the next node
//     (uniform fallback on all-zero weights unless opts.StrictSelection).
//   - Stage 3: amount = round(opts.PheromonePerRoute / cost, 1).
//   - Stage 4: deposit amount on each traversed edge and on the closing edge
//     (last → start). The closing edge is NOT part of cost.
//
// Errors:
//   - ErrDimensionMismatch when snap and dist disagree on n;
//   - ErrStartOutOfRange for a bad start;
//   - invariant faults from selection, route validation or ErrNonPositiveCost.
//
// A nil rng selects the default deterministic stream.
//
// Complexity: O(n²) time, O(n²) space for the deposit matrix.
func BuildRoute(start int, snap *Pheromone, dist *Distances, rng *rand.Rand, opts Options) (AntResult, error) {
	if snap == nil || dist == nil || snap.Len() != dist.Len() {
		return AntResult{}, fmt.Errorf("BuildRoute: %w", ErrDimensionMismatch)
	}
	var n = dist.Len()
	if start < 0 || start >= n {
		return AntResult{}, fmt.Errorf("BuildRoute: start=%d: %w", start, ErrStartOutOfRange)
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}

	var (
		visited    = make([]bool, n)
		route      = make(Route, 1, n)
		candidates = make([]int, 0, n-1)
		weights    = make([]float64, 0, n-1)
		sampler    wheel
		current    = start
		cost       float64
		w          float64
		idx        int
		v          int
		err        error
	)
	route[0] = start
	visited[start] = true

	for len(route) < n {
		// Candidates are scanned in ascending id order so a seeded stream
		// always maps to the same choice.
		candidates = candidates[:0]
		weights = weights[:0]
		for v = 0; v < n; v++ {
			if visited[v] {
				continue
			}
			if w, err = snap.At(current, v); err != nil {
				return AntResult{}, fmt.Errorf("BuildRoute: %w", err)
			}
			candidates = append(candidates, v)
			weights = append(weights, w)
		}

		if idx, err = sampler.pick(weights, rng, opts.StrictSelection); err != nil {
			return AntResult{}, fmt.Errorf("BuildRoute: step %d from %d: %w", len(route), current, err)
		}
		v = candidates[idx]

		if w, err = dist.At(current, v); err != nil {
			return AntResult{}, fmt.Errorf("BuildRoute: %w", err)
		}
		cost += w
		visited[v] = true
		route = append(route, v)
		current = v
	}

	if err = route.Validate(n, start); err != nil {
		return AntResult{}, fmt.Errorf("BuildRoute: %w", err)
	}
	if !(cost > 0) {
		return AntResult{}, fmt.Errorf("BuildRoute: route %s cost=%g: %w", route, cost, ErrNonPositiveCost)
	}

	amount := roundTo1(opts.PheromonePerRoute / cost)
	deposit, err := depositFor(route, n, amount)
	if err != nil {
		return AntResult{}, fmt.Errorf("BuildRoute: %w", err)
	}

	return AntResult{Route: route, Cost: cost, Amount: amount, Deposit: deposit}, nil
}

// depositFor builds the n×n deposit matrix of a validated route: amount on
// every edge of the closed route, including (route[n-1], route[0]).
func depositFor(route Route, n int, amount float64) (*Pheromone, error) {
	dep, err := zeroPheromone(n)
	if err != nil {
		return nil, err
	}
	var (
		closed = route.Closed()
		i      int
	)
	for i = 0; i+1 < len(closed); i++ {
		if err = dep.Deposit(closed[i], closed[i+1], amount); err != nil {
			return nil, err
		}
	}

	return dep, nil
}
