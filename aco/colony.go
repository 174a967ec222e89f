// Package aco - colony iteration (fork-join).
//
// Protocol of one iteration:
//
//	snapshot := pheromone.Snapshot()
//	fork:  ant_k := BuildRoute(start, snapshot, dist, stream(seed, iter, k))   k ∈ [0, colonySize)
//	join:  wait for all ants
//	fold:  next := aggregate(snapshot, ant deposits)       (single writer, ant order)
//	decay: next.Evaporate(rate)
//
// Ants share nothing mutable: each reads the same immutable snapshot and
// writes its result into its own slot of an index-addressed slice. The fold
// runs in ant-index order, so the outcome is independent of scheduling.
package aco

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// RunIteration executes iteration iter against pher and dist and returns the
// next pheromone table. pher itself is not modified.
//
// Errors: configuration sentinels from opts.Validate, ErrDimensionMismatch,
// ErrPheromoneOverflow when the next table would leave the float64 range,
// or the first ant fault (wrapped with the ant index).
//
// Complexity: O(colonySize · n²) time; O(colonySize · n²) space for deposits.
func RunIteration(iter int, pher *Pheromone, dist *Distances, opts Options) (IterationResult, error) {
	if pher == nil || dist == nil || pher.Len() != dist.Len() {
		return IterationResult{}, fmt.Errorf("RunIteration: %w", ErrDimensionMismatch)
	}
	if err := opts.Validate(dist.Len()); err != nil {
		return IterationResult{}, fmt.Errorf("RunIteration: %w", err)
	}

	snapshot := pher.Snapshot()
	ants, err := runAnts(iter, snapshot, dist, opts)
	if err != nil {
		return IterationResult{}, fmt.Errorf("RunIteration(%d): %w", iter, err)
	}

	next, err := aggregate(snapshot, ants, opts.Aggregation)
	if err != nil {
		return IterationResult{}, fmt.Errorf("RunIteration(%d): %w", iter, err)
	}
	if err = next.Evaporate(opts.EvaporationRate); err != nil {
		return IterationResult{}, fmt.Errorf("RunIteration(%d): %w", iter, err)
	}

	res := IterationResult{
		Iteration: iter,
		Pheromone: next,
		Routes:    make([]Route, len(ants)),
		Costs:     make([]float64, len(ants)),
		Amounts:   make([]float64, len(ants)),
	}
	for k := range ants {
		res.Routes[k] = ants[k].Route
		res.Costs[k] = ants[k].Cost
		res.Amounts[k] = ants[k].Amount
	}

	return res, nil
}

// workerCount resolves opts.Workers against the colony size.
func workerCount(opts Options) int {
	w := opts.Workers
	if w == 0 {
		w = runtime.GOMAXPROCS(0)
	}
	if w > opts.ColonySize {
		w = opts.ColonySize
	}
	if w < 1 {
		w = 1
	}

	return w
}

// runAnts is the fork-join phase. With one worker the ants run inline on the
// calling goroutine; otherwise on an errgroup bounded by workerCount.
func runAnts(iter int, snapshot *Pheromone, dist *Distances, opts Options) ([]AntResult, error) {
	var (
		results = make([]AntResult, opts.ColonySize)
		workers = workerCount(opts)
	)

	one := func(k int) error {
		res, err := BuildRoute(opts.StartNode, snapshot, dist, antStream(opts.Seed, iter, k), opts)
		if err != nil {
			return fmt.Errorf("ant %d: %w", k, err)
		}
		results[k] = res
		return nil
	}

	if workers == 1 {
		for k := 0; k < opts.ColonySize; k++ {
			if err := one(k); err != nil {
				return nil, err
			}
		}
		return results, nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for k := 0; k < opts.ColonySize; k++ {
		g.Go(func() error { return one(k) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// aggregate folds ant deposits into a fresh copy of snapshot.
//
//   - AggregateCompounding: next = snapshot + Σ_k (snapshot + deposit_k)
//   - AggregateNormalized:  next = snapshot + Σ_k deposit_k
func aggregate(snapshot *Pheromone, ants []AntResult, mode Aggregation) (*Pheromone, error) {
	next := snapshot.Snapshot()
	for k := range ants {
		switch mode {
		case AggregateCompounding:
			private := snapshot.Snapshot()
			if err := private.Add(ants[k].Deposit); err != nil {
				return nil, fmt.Errorf("aggregate: ant %d: %w", k, err)
			}
			if err := next.Add(private); err != nil {
				return nil, fmt.Errorf("aggregate: ant %d: %w", k, err)
			}
		case AggregateNormalized:
			if err := next.Add(ants[k].Deposit); err != nil {
				return nil, fmt.Errorf("aggregate: ant %d: %w", k, err)
			}
		default:
			return nil, fmt.Errorf("aggregate: %v: %w", mode, ErrAggregation)
		}
	}

	return next, nil
}

// Colony owns the authoritative pheromone table of a run and the tracker
// that records every route. A Colony is not safe for concurrent use; its
// ants run concurrently inside Step.
type Colony struct {
	dist    *Distances
	opts    Options
	pher    *Pheromone
	tracker *Tracker
	iter    int
}

// NewColony validates opts against dist and builds the initial uniform
// pheromone table.
//
// Errors: configuration sentinels (see Options.Validate).
func NewColony(dist *Distances, opts ...Option) (*Colony, error) {
	if dist == nil {
		return nil, fmt.Errorf("NewColony: %w", ErrNodeCount)
	}
	o := NewOptions(opts...)
	if err := o.Validate(dist.Len()); err != nil {
		return nil, fmt.Errorf("NewColony: %w", err)
	}
	pher, err := NewPheromone(dist.Len(), o.InitialPheromone)
	if err != nil {
		return nil, fmt.Errorf("NewColony: %w", err)
	}

	return &Colony{dist: dist, opts: o, pher: pher, tracker: NewTracker()}, nil
}

// Options returns the resolved options of the colony.
func (c *Colony) Options() Options { return c.opts }

// Iteration returns the number of completed iterations.
func (c *Colony) Iteration() int { return c.iter }

// Pheromone returns a copy of the current authoritative table.
func (c *Colony) Pheromone() *Pheromone { return c.pher.Snapshot() }

// Tracker returns the route tracker of the run.
func (c *Colony) Tracker() *Tracker { return c.tracker }

// Step runs the next iteration, records its routes, replaces the
// authoritative table and notifies OnIteration. The returned result carries
// a private copy of the new table.
func (c *Colony) Step() (IterationResult, error) {
	res, err := RunIteration(c.iter, c.pher, c.dist, c.opts)
	if err != nil {
		return IterationResult{}, err
	}
	for k, r := range res.Routes {
		c.tracker.Record(res.Iteration, r, res.Costs[k])
	}
	c.pher = res.Pheromone
	c.iter++

	res.Pheromone = c.pher.Snapshot()
	if c.opts.OnIteration != nil {
		c.opts.OnIteration(res)
	}

	return res, nil
}

// Run performs the remaining iterations of the fixed budget and returns the
// tracker. There is no convergence-based early exit.
func (c *Colony) Run() (*Tracker, error) {
	for c.iter < c.opts.Iterations {
		if _, err := c.Step(); err != nil {
			return c.tracker, err
		}
	}

	return c.tracker, nil
}
