// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures shared by Dense and Grid tests.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic (non-*Dense) paths in AllClose/ToDense/ToGrid.
type hide struct{ matrix.Matrix }

// layout builds a fresh r×c matrix of one concrete type.
type layout struct {
	name string
	make func(r, c int, opts ...matrix.Option) (matrix.Matrix, error)
}

// layouts lists every Matrix implementation so contract tests run on all of them.
var layouts = []layout{
	{"Dense", func(r, c int, opts ...matrix.Option) (matrix.Matrix, error) { return matrix.NewDense(r, c, opts...) }},
	{"Grid", func(r, c int, opts ...matrix.Option) (matrix.Matrix, error) { return matrix.NewGrid(r, c, opts...) }},
}

// mustDense allocates an r×c *Dense or fails the test.
func mustDense(tb testing.TB, r, c int, opts ...matrix.Option) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c, opts...)
	require.NoError(tb, err)

	return m
}

// mustGrid allocates an r×c *Grid or fails the test.
func mustGrid(tb testing.TB, r, c int, opts ...matrix.Option) *matrix.Grid {
	tb.Helper()
	g, err := matrix.NewGrid(r, c, opts...)
	require.NoError(tb, err)

	return g
}

// fillRand writes deterministic pseudo-random values in [-1,1) into m.
func fillRand(tb testing.TB, m matrix.Matrix, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			require.NoError(tb, m.Set(i, j, 2*rng.Float64()-1))
		}
	}
}

// snapshot reads all rows of m via At into a [][]float64.
func snapshot(tb testing.TB, m matrix.Matrix) [][]float64 {
	tb.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(tb, err)
			out[i][j] = v
		}
	}

	return out
}
