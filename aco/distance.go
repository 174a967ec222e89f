// Package aco - immutable distance table.
//
// Distances wraps a validated matrix.Dense. After construction nothing can
// mutate it: the backing matrix is private and accessors return copies.
package aco

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/antpath/matrix"
)

// symTol is the structural tolerance for symmetry/diagonal checks.
const symTol = 1e-12

// Distances is an n×n symmetric, zero-diagonal, non-negative cost table.
// It is safe for concurrent reads.
type Distances struct {
	m *matrix.Dense
}

// NewDistances validates rows and copies them into an immutable table.
//
// Validation order (first failure wins):
//  1. shape: non-empty, rectangular, square  → ErrNonSquare
//  2. n ≥ 2                                   → ErrNodeCount
//  3. finite entries                          → ErrNonFiniteDistance
//  4. zero diagonal                           → ErrNonZeroDiagonal
//  5. non-negative entries                    → ErrNegativeDistance
//  6. symmetry                                → ErrAsymmetric
//
// Each returned error also wraps the underlying matrix sentinel, if any.
//
// Complexity: O(n²).
func NewDistances(rows [][]float64) (*Distances, error) {
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		switch {
		case errors.Is(err, matrix.ErrNaNInf):
			return nil, fmt.Errorf("NewDistances: %w: %w", ErrNonFiniteDistance, err)
		default:
			return nil, fmt.Errorf("NewDistances: %w: %w", ErrNonSquare, err)
		}
	}

	return NewDistancesFromMatrix(m)
}

// NewDistancesFromMatrix validates any matrix.Matrix and copies it.
// See NewDistances for the validation order.
func NewDistancesFromMatrix(src matrix.Matrix) (*Distances, error) {
	if src == nil {
		return nil, fmt.Errorf("NewDistances: %w: %w", ErrNonSquare, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateSquare(src); err != nil {
		return nil, fmt.Errorf("NewDistances: %w: %w", ErrNonSquare, err)
	}
	if src.Rows() < 2 {
		return nil, fmt.Errorf("NewDistances: %w", ErrNodeCount)
	}
	if err := matrix.ValidateFinite(src); err != nil {
		return nil, fmt.Errorf("NewDistances: %w: %w", ErrNonFiniteDistance, err)
	}
	if err := matrix.ValidateZeroDiagonal(src, symTol); err != nil {
		return nil, fmt.Errorf("NewDistances: %w: %w", ErrNonZeroDiagonal, err)
	}
	if err := matrix.ValidateNonNegative(src); err != nil {
		return nil, fmt.Errorf("NewDistances: %w: %w", ErrNegativeDistance, err)
	}
	if err := matrix.ValidateSymmetric(src, symTol); err != nil {
		return nil, fmt.Errorf("NewDistances: %w: %w", ErrAsymmetric, err)
	}

	// Deep copy so the caller keeps no handle on our storage.
	var (
		n    = src.Rows()
		i, j int
		v    float64
	)
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("NewDistances: %w: %w", ErrNonSquare, err)
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ = src.At(i, j)
			_ = m.Set(i, j, v) // finite, in range: validated above
		}
	}

	return &Distances{m: m}, nil
}

// Len returns the node count n.
func (d *Distances) Len() int { return d.m.Rows() }

// At returns the distance between i and j (0 when i == j).
// Out-of-range indices yield a wrapped matrix.ErrOutOfRange.
func (d *Distances) At(i, j int) (float64, error) {
	return d.m.At(i, j)
}

// Rows returns a fresh row-wise copy of the table.
func (d *Distances) Rows() [][]float64 { return d.m.ToRows() }

// String renders the table like matrix.Dense.String.
func (d *Distances) String() string { return d.m.String() }
