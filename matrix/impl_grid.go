// SPDX-License-Identifier: MIT

// Package matrix - Grid storage (one slice per row).
//
// Purpose:
//   - Offer the same bounds-checked surface as Dense over a row-of-slices layout.
//   - Allow whole-row replacement (SetRow), which is a plain copy here.
//
// Invariants:
//   - len(cells) == r and len(cells[i]) == c for every i; rows never alias each other
//     or any caller-owned slice.

package matrix

import (
	"fmt"
	"strings"
)

// Grid is a rows×cols matrix stored as one []float64 per row.
type Grid struct {
	r, c           int
	cells          [][]float64
	validateNaNInf bool
}

var (
	_ Matrix       = (*Grid)(nil)
	_ fmt.Stringer = (*Grid)(nil)
)

// NewGrid creates an r×c zero Grid.
// Errors: ErrInvalidDimensions when rows<=0, cols<=0 or rows*cols overflows.
// Complexity: O(r*c).
func NewGrid(rows, cols int, opts ...Option) (*Grid, error) {
	if !validShape(rows, cols) {
		return nil, fmt.Errorf("NewGrid(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	cells := make([][]float64, rows)
	for i := range cells {
		cells[i] = make([]float64, cols)
	}

	return &Grid{r: rows, c: cols, cells: cells, validateNaNInf: o.validateNaNInf}, nil
}

// Rows returns the row count.
func (g *Grid) Rows() int { return g.r }

// Cols returns the column count.
func (g *Grid) Cols() int { return g.c }

// Shape packs Rows() and Cols() into a single call.
func (g *Grid) Shape() (rows, cols int) { return g.r, g.c }

// FiniteOnly reports whether the instance rejects NaN/Inf values.
func (g *Grid) FiniteOnly() bool { return g.validateNaNInf }

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.r && col >= 0 && col < g.c
}

// At returns the value at (row, col) or ErrOutOfBounds.
func (g *Grid) At(row, col int) (float64, error) {
	if !g.inBounds(row, col) {
		return 0, gridErrorf(ctxAt, row, col, ErrOutOfBounds)
	}

	return g.cells[row][col], nil
}

// Set stores v at (row, col).
// Errors: ErrOutOfBounds; ErrNaNInf under finite-only policy.
func (g *Grid) Set(row, col int, v float64) error {
	if !g.inBounds(row, col) {
		return gridErrorf(ctxSet, row, col, ErrOutOfBounds)
	}
	if g.validateNaNInf && isNonFinite(v) {
		return gridErrorf(ctxSet, row, col, ErrNaNInf)
	}
	g.cells[row][col] = v

	return nil
}

// Row returns a copy of the given row.
// Errors: ErrOutOfBounds when row is outside [0, r).
// Complexity: O(c).
func (g *Grid) Row(row int) ([]float64, error) {
	if row < 0 || row >= g.r {
		return nil, rowErrorf("Grid", ctxRow, row, ErrOutOfBounds)
	}
	out := make([]float64, g.c)
	copy(out, g.cells[row])

	return out, nil
}

// SetRow replaces an entire row with a copy of values.
// MAIN DESCRIPTION:
//   - Whole-row write; the Grid keeps no reference to values.
//
// Implementation:
//   - Stage 1: bounds-check row, then require len(values) == c.
//   - Stage 2: under finite-only policy, reject the row before writing anything.
//   - Stage 3: copy into the existing row buffer.
//
// Errors:
//   - ErrOutOfBounds, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity:
//   - Time O(c), Space O(1).
func (g *Grid) SetRow(row int, values []float64) error {
	if row < 0 || row >= g.r {
		return rowErrorf("Grid", ctxSetRow, row, ErrOutOfBounds)
	}
	if len(values) != g.c {
		return rowErrorf("Grid", ctxSetRow, row, ErrDimensionMismatch)
	}
	if g.validateNaNInf {
		for j, v := range values {
			if isNonFinite(v) {
				return gridErrorf(ctxSetRow, row, j, ErrNaNInf)
			}
		}
	}
	copy(g.cells[row], values)

	return nil
}

// Fill writes base + inc*k at every row-major linear index k = i*c + j,
// producing exactly the values Dense.Fill produces for the same shape.
// All-or-nothing under finite-only policy; no-op on the zero value Grid{}.
// Complexity: O(r*c).
func (g *Grid) Fill(base, inc float64) error {
	if g.r == 0 || g.c == 0 {
		return nil
	}
	if g.validateNaNInf {
		if err := checkFillFinite(base, inc, g.r*g.c); err != nil {
			return fmt.Errorf("Grid.%s(%g,%g): %w", ctxFill, base, inc, err)
		}
	}
	var i, j int
	for i = 0; i < g.r; i++ {
		for j = 0; j < g.c; j++ {
			g.cells[i][j] = base + inc*float64(i*g.c+j)
		}
	}
	g.cells[0][0] = base // inc*0 is NaN when inc is ±Inf

	return nil
}

// Clone returns a deep copy; no row is shared with the receiver.
func (g *Grid) Clone() Matrix {
	cells := make([][]float64, g.r)
	for i := range cells {
		cells[i] = append([]float64(nil), g.cells[i]...)
	}

	return &Grid{r: g.r, c: g.c, cells: cells, validateNaNInf: g.validateNaNInf}
}

// String renders rows the same way Dense.String does.
func (g *Grid) String() string {
	var b strings.Builder
	for _, row := range g.cells {
		b.WriteString(_fmtRowOpen)
		for j, v := range row {
			b.WriteString(fmt.Sprintf("%g", v))
			if j+1 < g.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
