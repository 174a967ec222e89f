// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Operation tags used in error wrappers.
const (
	opAddInPlace = "AddInPlace"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// AddInPlace accumulates src into dst cell by cell (dst += src).
//
// Implementation:
//   - Stage 1: nil-checks and shape match.
//   - Stage 2: fast path on two *Dense operands (flat loop over backing slices).
//   - Stage 3: generic At/Set fallback for other implementations.
//
// Behavior highlights:
//   - Summation order is fixed (row-major), so repeated accumulation of the
//     same operands in the same order is bit-reproducible.
//   - A sum that overflows to ±Inf (or is NaN) fails with ErrNaNInf. On the
//     Dense fast path every sum is checked before the first write, so dst is
//     left untouched.
//
// Complexity: O(r·c) time, O(1) extra space.
func AddInPlace(dst, src Matrix) error {
	if err := ValidateNotNil(dst); err != nil {
		return matrixErrorf(opAddInPlace, err)
	}
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf(opAddInPlace, err)
	}
	if err := ValidateSameShape(dst, src); err != nil {
		return matrixErrorf(opAddInPlace, err)
	}

	if dd, okD := dst.(*Dense); okD {
		if ds, okS := src.(*Dense); okS {
			var (
				idx int
				sum float64
			)
			for idx = range dd.data {
				sum = dd.data[idx] + ds.data[idx]
				if math.IsNaN(sum) || math.IsInf(sum, 0) {
					return matrixErrorf(opAddInPlace,
						denseErrorf(ctxSet, idx/dd.c, idx%dd.c, ErrNaNInf))
				}
			}
			for idx = range dd.data {
				dd.data[idx] += ds.data[idx]
			}

			return nil
		}
	}

	var (
		i, j   int
		av, bv float64
		err    error
	)
	for i = 0; i < dst.Rows(); i++ {
		for j = 0; j < dst.Cols(); j++ {
			av, _ = dst.At(i, j) // safe: bounds ensured
			bv, _ = src.At(i, j) // safe: same shape
			if err = dst.Set(i, j, av+bv); err != nil {
				return matrixErrorf(opAddInPlace, err)
			}
		}
	}

	return nil
}
