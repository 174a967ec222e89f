package aco_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antpath/aco"
)

// fourNodes returns the reference four-node instance.
func fourNodes(t testing.TB) *aco.Distances {
	t.Helper()
	d, err := aco.NewDistances(aco.ExampleDistances())
	require.NoError(t, err)

	return d
}

// optimalKey is the unique cheapest open route of the four-node instance.
const optimalKey = "0 2 3 1"

// requirePermutation asserts r visits every node of [0,n) once, starting at start.
func requirePermutation(t *testing.T, r aco.Route, n, start int) {
	t.Helper()
	require.Len(t, r, n)
	require.Equal(t, start, r[0])
	seen := make(map[int]bool, n)
	for _, v := range r {
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, n)
		require.False(t, seen[v], "node %d visited twice in %v", v, r)
		seen[v] = true
	}
}

// requireNonNegative asserts every cell of p is >= 0 and the diagonal is 0.
func requireNonNegative(t *testing.T, p *aco.Pheromone) {
	t.Helper()
	for i, row := range p.Rows() {
		for j, v := range row {
			if i == j {
				require.Zero(t, v)
				continue
			}
			require.GreaterOrEqual(t, v, 0.0, "cell (%d,%d)", i, j)
		}
	}
}

// minOffDiagonal returns the smallest off-diagonal cell of p.
func minOffDiagonal(p *aco.Pheromone) float64 {
	lo := math.Inf(1)
	for i, row := range p.Rows() {
		for j, v := range row {
			if i != j && v < lo {
				lo = v
			}
		}
	}

	return lo
}
