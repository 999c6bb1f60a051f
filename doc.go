// Package lvmatrix is a small toolkit for fixed-size, bounds-checked
// two-dimensional float64 matrices.
//
// What is inside?
//
//	matrix/       — Dense (flat row-major) and Grid (row-of-slices) containers,
//	                bounds-checked At/Set/Row, Fill, Clone, layout conversions
//	render/       — row-by-row printing of any matrix ("[1.0, 2.0, 3.0]")
//	cmd/lvmatrix/ — CLI: `demo` walkthrough and `fill` with cell edits
//
// Why?
//
//   - Every index is checked: out-of-range access returns an error wrapping
//     matrix.ErrOutOfBounds instead of panicking.
//   - Rows come back as copies; the matrix owns its storage.
//   - Deterministic row-major traversal everywhere.
//
// Quick example:
//
//	m, _ := matrix.NewDense(3, 3)
//	_ = m.Fill(1, 1)          // 1..9 in row-major order
//	row, _ := m.Row(1)        // [4 5 6]
//	_, err := m.At(3, 0)      // errors.Is(err, matrix.ErrOutOfBounds)
//
//	go get github.com/katalvlaran/lvmatrix
package lvmatrix
