package aco_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antpath/aco"
)

func TestRandomDistances(t *testing.T) {
	a, err := aco.RandomDistances(8, 5, 1, 3)
	require.NoError(t, err)
	b, err := aco.RandomDistances(8, 5, 1, 3)
	require.NoError(t, err)
	require.Equal(t, a.Rows(), b.Rows())

	for i, row := range a.Rows() {
		for j, v := range row {
			if i == j {
				require.Zero(t, v)
				continue
			}
			require.GreaterOrEqual(t, v, 1.0)
			require.LessOrEqual(t, v, 3.0)
			w, _ := a.At(j, i)
			require.Equal(t, v, w)
		}
	}

	c, err := aco.RandomDistances(8, 6, 1, 3)
	require.NoError(t, err)
	require.NotEqual(t, a.Rows(), c.Rows())
}

func TestRandomDistances_Errors(t *testing.T) {
	_, err := aco.RandomDistances(1, 0, 1, 2)
	require.ErrorIs(t, err, aco.ErrNodeCount)
	_, err = aco.RandomDistances(3, 0, 0, 2)
	require.ErrorIs(t, err, aco.ErrGeneratorRange)
	_, err = aco.RandomDistances(3, 0, 3, 2)
	require.ErrorIs(t, err, aco.ErrGeneratorRange)
}
