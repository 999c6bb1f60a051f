// Package matrix offers small, bounds-checked two-dimensional float64 containers.
//
// The matrix package provides:
//
//   - Dense: a fixed-size rows×cols matrix over one flat row-major buffer
//     (offset = row*cols + col), zero-initialized at construction.
//   - Grid: the same surface over one slice per row, with whole-row SetRow.
//   - Row copies, Fill(base, inc) bulk writes, Clone, Do/Apply visitors.
//   - ToDense / ToGrid layout conversions and AllClose comparison.
//
// Every index-taking method returns an error wrapping ErrOutOfBounds instead
// of panicking, so callers can test with errors.Is. Neither type is safe for
// concurrent mutation; serialize access externally.
//
// See the examples in this package and cmd/lvmatrix for usage patterns.
package matrix
