// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/antpath/matrix"
	"github.com/stretchr/testify/require"
)

// mustRows builds a Dense from rows or fails the test.
func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// TestValidateSquare covers nil, square and rectangular inputs.
func TestValidateSquare(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateSquare(mustRows(t, [][]float64{{0, 1}, {1, 0}})))
	require.ErrorIs(t, matrix.ValidateSquare(mustRows(t, [][]float64{{0, 1, 2}, {1, 0, 2}})), matrix.ErrNonSquare)
}

// TestValidateSymmetric walks the symmetric, asymmetric and tolerance cases.
func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rows    [][]float64
		tol     float64
		wantErr error
	}{
		{"1x1 trivially symmetric", [][]float64{{5}}, 0, nil},
		{"symmetric", [][]float64{{0, 3, 2}, {3, 0, 1}, {2, 1, 0}}, 0, nil},
		{"asymmetric", [][]float64{{0, 3, 2}, {3, 0, 1}, {2, 1.5, 0}}, 0, matrix.ErrAsymmetry},
		{"within tolerance", [][]float64{{0, 1}, {1 + 1e-13, 0}}, 1e-12, nil},
		{"negative tolerance flipped", [][]float64{{0, 1}, {1 + 1e-13, 0}}, -1e-12, nil},
		{"NaN tolerance", [][]float64{{0, 1}, {1, 0}}, math.NaN(), matrix.ErrNaNInf},
		{"non-square", [][]float64{{0, 1}}, 0, matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSymmetric(mustRows(t, tc.rows), tc.tol)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateZeroDiagonal rejects any diagonal entry above tolerance.
func TestValidateZeroDiagonal(t *testing.T) {
	require.NoError(t, matrix.ValidateZeroDiagonal(mustRows(t, [][]float64{{0, 1}, {1, 0}}), 0))
	require.ErrorIs(t,
		matrix.ValidateZeroDiagonal(mustRows(t, [][]float64{{0, 1}, {1, 0.5}}), 1e-12),
		matrix.ErrNonZeroDiagonal)
	require.ErrorIs(t, matrix.ValidateZeroDiagonal(nil, 0), matrix.ErrNilMatrix)
}

// TestValidateNonNegativeAndFinite covers the element-wise numeric guards.
func TestValidateNonNegativeAndFinite(t *testing.T) {
	ok := mustRows(t, [][]float64{{0, 1}, {1, 0}})
	require.NoError(t, matrix.ValidateNonNegative(ok))
	require.NoError(t, matrix.ValidateFinite(ok))

	neg := mustRows(t, [][]float64{{0, -1}, {1, 0}})
	require.ErrorIs(t, matrix.ValidateNonNegative(neg), matrix.ErrNegative)

	require.ErrorIs(t, matrix.ValidateFinite(nil), matrix.ErrNilMatrix)
}
