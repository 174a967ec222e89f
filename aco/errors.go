// Package: antpath/aco
//
// errors.go: sentinel errors for the aco package.
//
// Error policy:
//   • Two umbrella classes: ErrConfiguration (bad user input, detected before
//     any simulation runs) and ErrInvariant (a fault during simulation that
//     signals a bug in weight computation or evaporation).
//   • Every concrete sentinel unwraps to exactly one umbrella, so callers can
//     branch either on the class (errors.Is(err, ErrConfiguration)) or on the
//     exact violated check (errors.Is(err, ErrAsymmetric)).
//   • Implementations attach call-site context with %w; sentinel messages are
//     never formatted with parameters at definition site.
//   • Algorithms MUST NOT panic at runtime; panics are confined to option
//     constructors receiving nil functions.

package aco

import "errors"

// ErrConfiguration is the class of all configuration errors.
var ErrConfiguration = errors.New("aco: configuration error")

// ErrInvariant is the class of all invariant faults raised during simulation.
var ErrInvariant = errors.New("aco: invariant violation")

// kindError is a sentinel that belongs to an umbrella class.
type kindError struct {
	class error
	msg   string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.class }

func configKind(msg string) error    { return &kindError{class: ErrConfiguration, msg: msg} }
func invariantKind(msg string) error { return &kindError{class: ErrInvariant, msg: msg} }

// Configuration errors, one per violated check.
var (
	// ErrNodeCount: fewer than two nodes.
	ErrNodeCount = configKind("aco: node count must be at least 2")

	// ErrNodeCountMismatch: declared node count differs from the matrix order.
	ErrNodeCountMismatch = configKind("aco: node count does not match distance matrix")

	// ErrNonSquare: distance matrix is empty, ragged or not square.
	ErrNonSquare = configKind("aco: distance matrix is not square")

	// ErrAsymmetric: d[i][j] != d[j][i] for some pair.
	ErrAsymmetric = configKind("aco: distance matrix is not symmetric")

	// ErrNonZeroDiagonal: d[i][i] != 0 for some i.
	ErrNonZeroDiagonal = configKind("aco: distance matrix diagonal is not zero")

	// ErrNegativeDistance: some distance is below zero.
	ErrNegativeDistance = configKind("aco: negative distance")

	// ErrNonFiniteDistance: some distance is NaN or ±Inf.
	ErrNonFiniteDistance = configKind("aco: distance is NaN or Inf")

	// ErrColonySize: colony size below one.
	ErrColonySize = configKind("aco: colony size must be at least 1")

	// ErrIterationCount: iteration count below one.
	ErrIterationCount = configKind("aco: iteration count must be at least 1")

	// ErrStartOutOfRange: start node outside [0, n).
	ErrStartOutOfRange = configKind("aco: start node out of range")

	// ErrPheromonePerRoute: total pheromone per route is not a positive finite number.
	ErrPheromonePerRoute = configKind("aco: pheromone per route must be > 0")

	// ErrEvaporationRate: evaporation rate is negative or not finite.
	ErrEvaporationRate = configKind("aco: evaporation rate must be >= 0")

	// ErrInitialPheromone: initial pheromone is not a positive finite number.
	ErrInitialPheromone = configKind("aco: initial pheromone must be > 0")

	// ErrWorkers: negative worker count.
	ErrWorkers = configKind("aco: workers must be >= 0")

	// ErrAggregation: unknown aggregation mode.
	ErrAggregation = configKind("aco: unknown aggregation mode")

	// ErrGeneratorRange: RandomDistances bounds are not 0 < lo <= hi.
	ErrGeneratorRange = configKind("aco: generator bounds must satisfy 0 < lo <= hi")

	// ErrEnumerationLimit: EnumerateRoutes was asked for too many nodes.
	ErrEnumerationLimit = configKind("aco: too many nodes to enumerate routes")
)

// Invariant faults.
var (
	// ErrZeroWeights: every candidate weight is zero during a strict selection.
	ErrZeroWeights = invariantKind("aco: all candidate weights are zero")

	// ErrNegativeWeight: a candidate weight is negative or not finite.
	ErrNegativeWeight = invariantKind("aco: candidate weight is negative or not finite")

	// ErrDuplicateNode: a route visits some node twice.
	ErrDuplicateNode = invariantKind("aco: route visits a node twice")

	// ErrRouteShape: a route has the wrong length, an out-of-range node or a wrong start.
	ErrRouteShape = invariantKind("aco: route is not a permutation from the start node")

	// ErrNonPositiveCost: a completed route has cost <= 0.
	ErrNonPositiveCost = invariantKind("aco: route cost is not positive")

	// ErrDimensionMismatch: pheromone and distance tables disagree on node count.
	ErrDimensionMismatch = invariantKind("aco: pheromone and distance dimensions differ")

	// ErrPheromoneOverflow: a pheromone cell or a candidate weight sum left the
	// finite float64 range.
	ErrPheromoneOverflow = invariantKind("aco: pheromone overflow")
)

// IsConfiguration reports whether err is a configuration error.
func IsConfiguration(err error) bool { return errors.Is(err, ErrConfiguration) }

// IsInvariant reports whether err is an invariant fault.
func IsInvariant(err error) bool { return errors.Is(err, ErrInvariant) }
