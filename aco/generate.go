package aco

import (
	"fmt"
	"math"
)

// RandomDistances builds a seeded symmetric complete instance of n nodes with
// off-diagonal distances drawn uniformly from [lo, hi] and rounded to one
// decimal (never below lo). The upper triangle is filled in row-major order
// and mirrored, so a seed always yields the same table.
//
// Errors: ErrNodeCount (n<2), ErrGeneratorRange (!(0 < lo <= hi)).
// Complexity: O(n²).
func RandomDistances(n int, seed int64, lo, hi float64) (*Distances, error) {
	if n < 2 {
		return nil, fmt.Errorf("RandomDistances: %w", ErrNodeCount)
	}
	if !positiveFinite(lo) || !positiveFinite(hi) || hi < lo {
		return nil, fmt.Errorf("RandomDistances(lo=%g, hi=%g): %w", lo, hi, ErrGeneratorRange)
	}

	var (
		rng  = rngFromSeed(seed)
		rows = make([][]float64, n)
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = math.Max(lo, roundTo1(lo+rng.Float64()*(hi-lo)))
			rows[i][j] = d
			rows[j][i] = d
		}
	}

	return NewDistances(rows)
}

// ExampleDistances returns the reference four-node instance:
//
//	  A  B   C  D
//	A 0  3   2  2
//	B 3  0   3  1.5
//	C 2  3   0  1
//	D 2  1.5 1  0
func ExampleDistances() [][]float64 {
	return [][]float64{
		{0, 3, 2, 2},
		{3, 0, 3, 1.5},
		{2, 3, 0, 1},
		{2, 1.5, 1, 0},
	}
}
