// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for the sparse kernels.
//   - Provide a dense reference implementation to cross-check results.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsemat/matrix"
)

// MustSparse builds an r×c matrix from triples or fails the test.
func MustSparse(t testing.TB, r, c int, ts ...matrix.Triple) *matrix.Sparse {
	t.Helper()
	m, err := matrix.FromTriples(r, c, ts)
	require.NoError(t, err)

	return m
}

// tr is shorthand for a Triple literal.
func tr(r, c int, v int64) matrix.Triple {
	return matrix.Triple{Row: r, Col: c, Value: v}
}

// RequireSparse asserts the invariant and the exact entry set of m.
func RequireSparse(t testing.TB, m *matrix.Sparse, rows, cols int, want ...matrix.Triple) {
	t.Helper()
	require.NotNil(t, m)
	require.Equal(t, matrix.Shape{Rows: rows, Cols: cols}, m.Shape())
	require.False(t, matrix.HasStoredZero_TestOnly(m), "stored zero or empty row")
	if len(want) == 0 {
		require.Empty(t, m.Triples())
		return
	}
	require.Equal(t, want, m.Triples())
}

// toDense materializes m for reference comparisons (tests only).
func toDense(m *matrix.Sparse) [][]int64 {
	out := make([][]int64, m.Rows())
	for i := range out {
		out[i] = make([]int64, m.Cols())
		for j := range out[i] {
			out[i][j] = m.At(i, j)
		}
	}

	return out
}

// denseAddSub is the reference for Add (sign=+1) and Sub (sign=-1).
func denseAddSub(a, b [][]int64, sign int64) [][]int64 {
	out := make([][]int64, len(a))
	for i := range a {
		out[i] = make([]int64, len(a[i]))
		for j := range a[i] {
			out[i][j] = a[i][j] + sign*b[i][j]
		}
	}

	return out
}

// denseMul is the reference i→j→k product.
func denseMul(a, b [][]int64, n, c int) [][]int64 {
	out := make([][]int64, len(a))
	for i := range a {
		out[i] = make([]int64, c)
		for j := 0; j < c; j++ {
			var s int64
			for k := 0; k < n; k++ {
				s += a[i][k] * b[k][j]
			}
			out[i][j] = s
		}
	}

	return out
}

// randomSparse fills roughly density*r*c cells with values in [-4,4]
// (zeros included on purpose, so Set-removal paths are exercised).
func randomSparse(t testing.TB, rng *rand.Rand, r, c int, density float64) *matrix.Sparse {
	t.Helper()
	m, err := matrix.NewSparse(r, c)
	require.NoError(t, err)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if rng.Float64() < density {
				require.NoError(t, m.Set(i, j, int64(rng.Intn(9)-4)))
			}
		}
	}

	return m
}
