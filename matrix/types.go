// SPDX-License-Identifier: MIT

// Package matrix: the public interface shared by Dense and Grid.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Each method enforces bounds checking and returns wrapped sentinels on misuse.
//
// Complexity notes: all methods are expected O(1) except Row (O(cols)) and
// Clone (O(rows*cols)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfBounds if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfBounds if indices are invalid.
	Set(i, j int, v float64) error

	// Row returns a copy of row i, length Cols().
	// Returns ErrOutOfBounds if i<0 or i>=Rows().
	Row(i int) ([]float64, error)

	// Fill writes base + inc*k at row-major linear index k.
	Fill(base, inc float64) error

	// Clone returns a deep copy independent of the receiver.
	Clone() Matrix
}
