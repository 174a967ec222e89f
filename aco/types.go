// Package aco defines the value types exchanged between the ant, the colony
// and the result tracker.
package aco

import (
	"fmt"
	"strings"
)

// Aggregation selects how the colony folds per-ant deposits into the shared
// pheromone table at the end of an iteration.
type Aggregation int

const (
	// AggregateCompounding reproduces the reference update: each ant's private
	// matrix is snapshot+deposit, and all of them are added onto the shared
	// matrix which still holds the baseline. The baseline therefore scales by
	// (colonySize+1) every iteration.
	AggregateCompounding Aggregation = iota

	// AggregateNormalized keeps the baseline once and adds only the deposits.
	AggregateNormalized
)

// String returns the configuration spelling of a.
func (a Aggregation) String() string {
	switch a {
	case AggregateCompounding:
		return "compounding"
	case AggregateNormalized:
		return "normalized"
	default:
		return fmt.Sprintf("Aggregation(%d)", int(a))
	}
}

// ParseAggregation maps "compounding" / "normalized" (case-insensitive) to
// an Aggregation. The empty string selects the default AggregateCompounding.
func ParseAggregation(s string) (Aggregation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "compounding":
		return AggregateCompounding, nil
	case "normalized", "normalised":
		return AggregateNormalized, nil
	default:
		return 0, fmt.Errorf("ParseAggregation(%q): %w", s, ErrAggregation)
	}
}

// AntResult is the outcome of one ant run.
type AntResult struct {
	// Route is the visit order; Route[0] is the start node.
	Route Route

	// Cost is the sum of traversed edges, closing edge excluded.
	Cost float64

	// Amount is round(PheromonePerRoute/Cost, 1), the per-edge deposit.
	Amount float64

	// Deposit holds Amount on every traversed edge and on the closing edge,
	// zero elsewhere.
	Deposit *Pheromone
}

// IterationResult is the outcome of one colony iteration.
type IterationResult struct {
	// Iteration is the zero-based iteration index.
	Iteration int

	// Pheromone is the table after aggregation and evaporation.
	Pheromone *Pheromone

	// Routes, Costs and Amounts are indexed by ant.
	Routes  []Route
	Costs   []float64
	Amounts []float64
}
