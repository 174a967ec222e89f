package aco_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antpath/aco"
	"github.com/katalvlaran/antpath/matrix"
)

func TestNewDistances_Valid(t *testing.T) {
	d := fourNodes(t)
	require.Equal(t, 4, d.Len())

	v, err := d.At(1, 3)
	require.NoError(t, err)
	require.Equal(t, 1.5, v)

	v, err = d.At(3, 1)
	require.NoError(t, err)
	require.Equal(t, 1.5, v)

	_, err = d.At(0, 4)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestNewDistances_Immutable(t *testing.T) {
	rows := aco.ExampleDistances()
	d, err := aco.NewDistances(rows)
	require.NoError(t, err)

	rows[0][1] = 99
	v, _ := d.At(0, 1)
	require.Equal(t, 3.0, v)

	out := d.Rows()
	out[0][1] = 42
	v, _ = d.At(0, 1)
	require.Equal(t, 3.0, v)
}

func TestNewDistances_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want error
	}{
		{"empty", nil, aco.ErrNonSquare},
		{"ragged", [][]float64{{0, 1}, {1}}, aco.ErrNonSquare},
		{"rectangular", [][]float64{{0, 1, 2}, {1, 0, 2}}, aco.ErrNonSquare},
		{"single", [][]float64{{0}}, aco.ErrNodeCount},
		{"nan", [][]float64{{0, math.NaN()}, {1, 0}}, aco.ErrNonFiniteDistance},
		{"diagonal", [][]float64{{1, 2}, {2, 0}}, aco.ErrNonZeroDiagonal},
		{"negative", [][]float64{{0, -1}, {-1, 0}}, aco.ErrNegativeDistance},
		{"asymmetric", [][]float64{{0, 1}, {2, 0}}, aco.ErrAsymmetric},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := aco.NewDistances(tc.rows)
			require.ErrorIs(t, err, tc.want)
			require.True(t, aco.IsConfiguration(err))
			require.False(t, aco.IsInvariant(err))
		})
	}
}

func TestNewDistancesFromMatrix(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{0, 2}, {2, 0}})
	require.NoError(t, err)

	d, err := aco.NewDistancesFromMatrix(m)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 7))

	v, _ := d.At(0, 1)
	require.Equal(t, 2.0, v)

	_, err = aco.NewDistancesFromMatrix(nil)
	require.True(t, errors.Is(err, aco.ErrNonSquare))
}
