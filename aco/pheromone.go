// Package aco - mutable pheromone table.
//
// Ownership model:
//   - The colony owns exactly one authoritative *Pheromone between iterations.
//   - Ants receive a Snapshot (value copy) and only read it.
//   - All writers (Deposit, Evaporate, Add) run on the colony goroutine after
//     the ant join barrier, so *Pheromone carries no lock.
package aco

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/antpath/matrix"
)

// Pheromone is an n×n non-negative weight table with a fixed zero diagonal.
type Pheromone struct {
	m *matrix.Dense
}

// NewPheromone returns an n×n table with every off-diagonal cell set to
// initial and the diagonal at 0.
//
// Errors: ErrNodeCount (n<2), ErrInitialPheromone (initial ≤ 0 or not finite).
// Complexity: O(n²).
func NewPheromone(n int, initial float64) (*Pheromone, error) {
	if n < 2 {
		return nil, ErrNodeCount
	}
	if !positiveFinite(initial) {
		return nil, ErrInitialPheromone
	}
	p, err := zeroPheromone(n)
	if err != nil {
		return nil, err
	}
	if err = p.m.Apply(func(i, j int, _ float64) float64 {
		if i == j {
			return 0
		}
		return initial
	}); err != nil {
		return nil, fmt.Errorf("NewPheromone: %w", ErrInitialPheromone)
	}

	return p, nil
}

// zeroPheromone allocates an all-zero n×n table; used for deposit matrices.
func zeroPheromone(n int) (*Pheromone, error) {
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("zeroPheromone(%d): %w", n, ErrNodeCount)
	}

	return &Pheromone{m: m}, nil
}

// Len returns the node count n.
func (p *Pheromone) Len() int { return p.m.Rows() }

// At returns the current weight of edge (i, j).
func (p *Pheromone) At(i, j int) (float64, error) {
	return p.m.At(i, j)
}

// Deposit adds amount to cell (i, j).
//
// Errors:
//   - wrapped matrix.ErrOutOfRange on bad indices;
//   - ErrNegativeWeight if amount is negative/non-finite or i == j
//     (the diagonal is fixed at zero).
func (p *Pheromone) Deposit(i, j int, amount float64) error {
	if i == j || amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("Pheromone.Deposit(%d,%d,%g): %w", i, j, amount, ErrNegativeWeight)
	}
	v, err := p.m.At(i, j)
	if err != nil {
		return fmt.Errorf("Pheromone.Deposit: %w", err)
	}

	return p.m.Set(i, j, v+amount)
}

// Evaporate subtracts amount from every off-diagonal cell whose value
// exceeds amount. Cells at or below amount keep their value, so a cell never
// drops below min(v, amount) and a positive cell never reaches zero.
//
// Errors: ErrPheromoneOverflow if the table holds a non-finite cell; the
// table is checked before any cell is changed.
//
// Complexity: O(n²).
func (p *Pheromone) Evaporate(amount float64) error {
	if amount <= 0 || math.IsNaN(amount) {
		return nil
	}
	if err := matrix.ValidateFinite(p.m); err != nil {
		return fmt.Errorf("Pheromone.Evaporate: %w: %w", ErrPheromoneOverflow, err)
	}
	if err := p.m.Apply(func(i, j int, v float64) float64 {
		if i != j && v > amount {
			return v - amount
		}
		return v
	}); err != nil {
		return fmt.Errorf("Pheromone.Evaporate: %w: %w", ErrPheromoneOverflow, err)
	}

	return nil
}

// Snapshot returns an independent deep copy.
//
// Complexity: O(n²).
func (p *Pheromone) Snapshot() *Pheromone {
	return &Pheromone{m: p.m.CloneDense()}
}

// Add accumulates other into p cell by cell. A failed Add leaves p unchanged.
//
// Errors: ErrDimensionMismatch when the tables differ in size,
// ErrPheromoneOverflow when a sum is not finite.
func (p *Pheromone) Add(other *Pheromone) error {
	if other == nil || other.Len() != p.Len() {
		return fmt.Errorf("Pheromone.Add: %w", ErrDimensionMismatch)
	}
	if err := matrix.AddInPlace(p.m, other.m); err != nil {
		if errors.Is(err, matrix.ErrNaNInf) {
			return fmt.Errorf("Pheromone.Add: %w: %w", ErrPheromoneOverflow, err)
		}
		return fmt.Errorf("Pheromone.Add: %w: %w", ErrDimensionMismatch, err)
	}

	return nil
}

// Rows returns a fresh row-wise copy of the table.
func (p *Pheromone) Rows() [][]float64 { return p.m.ToRows() }

// String renders the table like matrix.Dense.String.
func (p *Pheromone) String() string { return p.m.String() }
