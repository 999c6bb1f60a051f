// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep traversal deterministic (fixed loop orders).
//   - Enforce an optional numeric policy (rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Row: O(c); Fill/Clone/String: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both fixed at construction.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set, Fill and Apply.
type Dense struct {
	r, c           int       // row and column counts (>0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 and that rows*cols fits the buffer;
//     else ErrInvalidDimensions.
//   - Stage 2: resolve options (numeric policy).
//   - Stage 3: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (non-positive shape, or rows*cols overflows).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if !validShape(rows, cols) {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	// make() zero-fills the buffer deterministically.
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Len returns the number of stored elements (rows*cols).
func (m *Dense) Len() int { return len(m.data) }

// FiniteOnly reports whether the instance rejects NaN/Inf values.
func (m *Dense) FiniteOnly() bool { return m.validateNaNInf }

// indexOf bounds-checks (row,col) and returns the row-major offset.
// Returns the bare ErrOutOfBounds sentinel; public methods wrap it with
// their own method tag and coordinates.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfBounds
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfBounds
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfBounds.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy when enabled.
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfBounds for bounds; ErrNaNInf for non-finite values under policy.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row `row` in column order.
// MAIN DESCRIPTION:
//   - Safe row read; the caller owns the returned slice.
//
// Implementation:
//   - Stage 1: validate 0 ≤ row < r (columns are always in range for a full row).
//   - Stage 2: copy data[row*c : row*c+c] into a fresh slice.
//
// Behavior highlights:
//   - Mutating the result never affects the matrix.
//
// Errors:
//   - ErrOutOfBounds when row is outside [0, r).
//
// Complexity:
//   - Time O(c), Space O(c).
func (m *Dense) Row(row int) ([]float64, error) {
	if row < 0 || row >= m.r {
		return nil, rowErrorf("Dense", ctxRow, row, ErrOutOfBounds)
	}
	base := row * m.c
	out := make([]float64, m.c)
	copy(out, m.data[base:base+m.c])

	return out, nil
}

// Fill writes base + inc*k at every row-major linear index k.
// MAIN DESCRIPTION:
//   - Deterministic full traversal; element 0 is exactly base.
//
// Implementation:
//   - Stage 1: under finite-only policy, verify every generated value first.
//   - Stage 2: write data[0] = base, then data[k] = base + inc*k for k ≥ 1.
//
// Behavior highlights:
//   - All-or-nothing: a policy violation leaves the matrix untouched.
//   - Element 0 is base even when inc is ±Inf (inc*0 would be NaN).
//
//   - No-op on the zero value Dense{}.
//
// Errors:
//   - ErrNaNInf under finite-only policy; never fails otherwise.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Fill(base, inc float64) error {
	n := len(m.data)
	if n == 0 { // zero value Dense{}
		return nil
	}
	if m.validateNaNInf {
		if err := checkFillFinite(base, inc, n); err != nil {
			return fmt.Errorf("Dense.%s(%g,%g): %w", ctxFill, base, inc, err)
		}
	}
	m.data[0] = base
	for k := 1; k < n; k++ {
		m.data[k] = base + inc*float64(k)
	}

	return nil
}

// checkFillFinite reports ErrNaNInf if any value Fill would write is non-finite.
// Complexity: O(n).
func checkFillFinite(base, inc float64, n int) error {
	if isNonFinite(base) {
		return ErrNaNInf
	}
	for k := 1; k < n; k++ {
		if isNonFinite(base + inc*float64(k)) {
			return ErrNaNInf
		}
	}

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// String renders rows as lines with comma-separated %g values.
// Intended for logs and debugging; see package render for presentation.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: O(r*c), no allocations.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
// MAIN DESCRIPTION:
//   - In-place map with policy enforcement and deterministic order.
//
// Behavior highlights:
//   - Early error aborts; elements written before the error remain updated.
//
// Errors:
//   - ErrNaNInf when f produced a non-finite value under finite-only policy.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// Notes:
//   - For all-or-nothing semantics, transform a Clone and swap on success.
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && isNonFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}
