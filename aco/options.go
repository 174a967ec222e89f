// Package: antpath/aco
//
// options.go: run parameters and functional options.
//
// Contract:
//   • Options are functional (type Option func(*Options)) applied on top of
//     DefaultOptions().
//   • Option constructors PANIC only on nil callbacks (programmer error).
//     Numeric values are stored as given and checked by Options.Validate,
//     which returns configuration sentinels from errors.go.
//   • Determinism is explicit: seeding is done via WithSeed; seed==0 maps to
//     a fixed default stream (see rng.go).

package aco

import "math"

// Reference parameters of the four-node demonstration.
const (
	DefaultColonySize        = 50
	DefaultIterations        = 50
	DefaultPheromonePerRoute = 100.0
	DefaultEvaporationRate   = 1.0
	DefaultInitialPheromone  = 1.0
	DefaultStartNode         = 0
)

// Options holds every parameter of a colony run.
type Options struct {
	// ColonySize is the number of ants per iteration (>= 1).
	ColonySize int

	// Iterations is the fixed iteration budget of Colony.Run (>= 1).
	Iterations int

	// PheromonePerRoute is the total pheromone an ant spreads; the per-edge
	// amount is PheromonePerRoute / RouteCost rounded to one decimal.
	PheromonePerRoute float64

	// EvaporationRate is subtracted from every off-diagonal cell whose value
	// exceeds it, once per iteration (>= 0).
	EvaporationRate float64

	// InitialPheromone is the uniform off-diagonal starting weight (> 0).
	InitialPheromone float64

	// StartNode is the fixed first node of every route.
	StartNode int

	// Seed drives every per-ant random stream. 0 selects the default stream.
	Seed int64

	// Workers bounds the number of ants simulated concurrently.
	// 0 means runtime.GOMAXPROCS(0); 1 runs ants sequentially in the caller.
	Workers int

	// Aggregation selects how deposits are folded into the shared table.
	Aggregation Aggregation

	// StrictSelection turns an all-zero candidate weight vector into
	// ErrZeroWeights instead of falling back to a uniform draw.
	StrictSelection bool

	// OnIteration, if set, is called after every completed iteration with a
	// result whose Pheromone is a private copy.
	OnIteration func(IterationResult)
}

// Option customizes Options before a colony is built.
type Option func(*Options)

// DefaultOptions returns the reference configuration:
//   - 50 ants, 50 iterations,
//   - 100 pheromone per route, evaporation 1, initial pheromone 1,
//   - start node 0, seed 0 (default stream),
//   - GOMAXPROCS workers, compounding aggregation, lenient selection.
func DefaultOptions() Options {
	return Options{
		ColonySize:        DefaultColonySize,
		Iterations:        DefaultIterations,
		PheromonePerRoute: DefaultPheromonePerRoute,
		EvaporationRate:   DefaultEvaporationRate,
		InitialPheromone:  DefaultInitialPheromone,
		StartNode:         DefaultStartNode,
		Aggregation:       AggregateCompounding,
	}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithColonySize sets the number of ants per iteration.
func WithColonySize(n int) Option {
	return func(o *Options) { o.ColonySize = n }
}

// WithIterations sets the fixed iteration budget.
func WithIterations(n int) Option {
	return func(o *Options) { o.Iterations = n }
}

// WithPheromonePerRoute sets the total pheromone spread by one ant.
func WithPheromonePerRoute(q float64) Option {
	return func(o *Options) { o.PheromonePerRoute = q }
}

// WithEvaporationRate sets the per-iteration evaporation amount.
func WithEvaporationRate(rate float64) Option {
	return func(o *Options) { o.EvaporationRate = rate }
}

// WithInitialPheromone sets the uniform starting weight.
func WithInitialPheromone(v float64) Option {
	return func(o *Options) { o.InitialPheromone = v }
}

// WithStartNode sets the fixed first node of every route.
func WithStartNode(node int) Option {
	return func(o *Options) { o.StartNode = node }
}

// WithSeed fixes the base seed of all per-ant random streams.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWorkers bounds ant concurrency; 1 forces sequential execution.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithAggregation selects the deposit folding mode.
func WithAggregation(a Aggregation) Option {
	return func(o *Options) { o.Aggregation = a }
}

// WithStrictSelection makes all-zero candidate weights a fault.
func WithStrictSelection(strict bool) Option {
	return func(o *Options) { o.StrictSelection = strict }
}

// WithOnIteration registers an observer called after every iteration.
// Panics on nil to surface programmer error early.
func WithOnIteration(fn func(IterationResult)) Option {
	if fn == nil {
		panic("aco: WithOnIteration(nil)")
	}
	return func(o *Options) { o.OnIteration = fn }
}

// Validate checks o against a graph of n nodes and returns the first
// violated configuration sentinel, in declaration order of the fields.
//
// Complexity: O(1).
func (o Options) Validate(n int) error {
	if n < 2 {
		return ErrNodeCount
	}
	if o.ColonySize < 1 {
		return ErrColonySize
	}
	if o.Iterations < 1 {
		return ErrIterationCount
	}
	if !positiveFinite(o.PheromonePerRoute) {
		return ErrPheromonePerRoute
	}
	if math.IsNaN(o.EvaporationRate) || math.IsInf(o.EvaporationRate, 0) || o.EvaporationRate < 0 {
		return ErrEvaporationRate
	}
	if !positiveFinite(o.InitialPheromone) {
		return ErrInitialPheromone
	}
	if o.StartNode < 0 || o.StartNode >= n {
		return ErrStartOutOfRange
	}
	if o.Workers < 0 {
		return ErrWorkers
	}
	switch o.Aggregation {
	case AggregateCompounding, AggregateNormalized:
	default:
		return ErrAggregation
	}

	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
