package aco_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antpath/aco"
)

func TestNewPheromone(t *testing.T) {
	p, err := aco.NewPheromone(3, 1.5)
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{0, 1.5, 1.5},
		{1.5, 0, 1.5},
		{1.5, 1.5, 0},
	}, p.Rows())
	require.Equal(t, 1.5, minOffDiagonal(p))

	_, err = aco.NewPheromone(1, 1)
	require.ErrorIs(t, err, aco.ErrNodeCount)
	_, err = aco.NewPheromone(3, 0)
	require.ErrorIs(t, err, aco.ErrInitialPheromone)
	_, err = aco.NewPheromone(3, math.Inf(1))
	require.ErrorIs(t, err, aco.ErrInitialPheromone)
}

func TestPheromoneDeposit(t *testing.T) {
	p, err := aco.NewPheromone(3, 1)
	require.NoError(t, err)

	require.NoError(t, p.Deposit(0, 2, 2.5))
	v, _ := p.At(0, 2)
	require.Equal(t, 3.5, v)

	// Deposits are directed.
	v, _ = p.At(2, 0)
	require.Equal(t, 1.0, v)

	require.ErrorIs(t, p.Deposit(1, 1, 1), aco.ErrNegativeWeight)
	require.ErrorIs(t, p.Deposit(0, 1, -1), aco.ErrNegativeWeight)
	require.ErrorIs(t, p.Deposit(0, 1, math.NaN()), aco.ErrNegativeWeight)
	require.Error(t, p.Deposit(0, 5, 1))
}

func TestPheromoneEvaporateFloor(t *testing.T) {
	p, err := aco.NewPheromone(3, 1)
	require.NoError(t, err)
	require.NoError(t, p.Deposit(0, 1, 4))   // 5
	require.NoError(t, p.Deposit(1, 2, 0.5)) // 1.5

	// 5-1 and 1.5-1; cells at 1 do not exceed the amount and stay.
	require.NoError(t, p.Evaporate(1))
	require.Equal(t, [][]float64{
		{0, 4, 1},
		{1, 0, 0.5},
		{1, 1, 0},
	}, p.Rows())

	// 0.5 ≤ 1 is now floored; repeated evaporation never goes below.
	for i := 0; i < 10; i++ {
		require.NoError(t, p.Evaporate(1))
	}
	requireNonNegative(t, p)
	require.Equal(t, 0.5, minOffDiagonal(p))
	v, _ := p.At(0, 1)
	require.Equal(t, 1.0, v)
}

func TestPheromoneEvaporateNoop(t *testing.T) {
	p, err := aco.NewPheromone(2, 1)
	require.NoError(t, err)
	want := p.Rows()

	require.NoError(t, p.Evaporate(0))
	require.NoError(t, p.Evaporate(-3))
	require.NoError(t, p.Evaporate(math.NaN()))
	require.Equal(t, want, p.Rows())
}

func TestPheromoneSnapshotIndependence(t *testing.T) {
	p, err := aco.NewPheromone(3, 1)
	require.NoError(t, err)
	s := p.Snapshot()

	require.NoError(t, p.Deposit(0, 1, 9))
	v, _ := s.At(0, 1)
	require.Equal(t, 1.0, v)
}

func TestPheromoneAdd(t *testing.T) {
	a, _ := aco.NewPheromone(2, 1)
	b, _ := aco.NewPheromone(2, 2)
	require.NoError(t, a.Add(b))
	require.Equal(t, [][]float64{{0, 3}, {3, 0}}, a.Rows())

	c, _ := aco.NewPheromone(3, 1)
	require.ErrorIs(t, a.Add(c), aco.ErrDimensionMismatch)
	require.ErrorIs(t, a.Add(nil), aco.ErrDimensionMismatch)
}

func TestPheromoneAddOverflow(t *testing.T) {
	a, _ := aco.NewPheromone(3, 1)
	b, _ := aco.NewPheromone(3, 1)
	require.NoError(t, a.Deposit(0, 1, 1.7e308))
	require.NoError(t, b.Deposit(0, 1, 1.7e308))
	want := a.Rows()

	err := a.Add(b)
	require.ErrorIs(t, err, aco.ErrPheromoneOverflow)
	require.True(t, aco.IsInvariant(err))
	require.Equal(t, want, a.Rows(), "a failed Add must not write any cell")

	// The table is still finite, so evaporation applies to every cell.
	require.NoError(t, a.Evaporate(0.5))
	v, _ := a.At(1, 2)
	require.Equal(t, 0.5, v)
}
