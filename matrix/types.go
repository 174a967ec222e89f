// SPDX-License-Identifier: MIT

// Package matrix defines the bounds-checked two-dimensional float64 storage
// shared by the distance and pheromone tables of package aco.
//
// What & Why:
//
//	The Matrix interface is a uniform abstraction over mutable r×c arrays of
//	float64 values. Every accessor is bounds-checked and reports errors instead
//	of panicking, and Clone produces an independent deep copy so that callers
//	can hand out value snapshots without aliasing the original storage.
//
// Complexity:
//
//	Rows() and Cols() run in O(1) time.
//	At() and Set() perform bounds checking in O(1) time.
//	Clone() performs a deep copy in O(rows*cols) time.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}
