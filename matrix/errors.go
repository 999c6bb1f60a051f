// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Public methods wrap
// them with method and coordinate context; callers and tests match them via
// errors.Is. No public method panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Wrap at the
// detection site with fmt.Errorf("ctx: %w", ErrX); errors.Is still matches.

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfBounds indicates that a row or column index is outside the valid range.
	// At/Set/Row MUST return this, not panic.
	ErrOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates a slice or operand whose length/shape does
	// not match the receiver (e.g., Grid.SetRow with len(values) != cols).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value under the finite-only numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// ErrOutOfRange names the same condition as ErrOutOfBounds.
var ErrOutOfRange = ErrOutOfBounds // Deprecated: use ErrOutOfBounds.

// Method tags used in error wrappers.
const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRow    = "Row"
	ctxSetRow = "SetRow"
	ctxFill   = "Fill"
	ctxApply  = "Apply"
)

// denseErrorf wraps err with a uniform "Dense.<method>(row,col)" context.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// gridErrorf is the Grid counterpart of denseErrorf.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}

// rowErrorf wraps err for row-only accessors ("<Type>.<method>(row)").
func rowErrorf(typ, method string, row int, err error) error {
	return fmt.Errorf("%s.%s(%d): %w", typ, method, row, err)
}
