// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Sparse storage and accessors.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsemat/matrix"
)

func TestNewSparse_EmptyAndZeroShapes(t *testing.T) {
	for _, s := range []matrix.Shape{{Rows: 0, Cols: 0}, {Rows: 0, Cols: 5}, {Rows: 3, Cols: 0}, {Rows: 1000000, Cols: 1000000}} {
		m, err := matrix.NewSparse(s.Rows, s.Cols)
		require.NoError(t, err, s.String())
		assert.Equal(t, s, m.Shape())
		assert.Equal(t, 0, m.NNZ())
		assert.Empty(t, m.Triples())
	}
}

func TestNewSparse_BadShape(t *testing.T) {
	_, err := matrix.NewSparse(-1, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewSparse(2, -1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestAt_AbsentReadsZero(t *testing.T) {
	m := MustSparse(t, 3, 3, tr(1, 2, 7))
	assert.Equal(t, int64(7), m.At(1, 2))
	assert.Equal(t, int64(0), m.At(0, 0))
	// Out-of-range coordinates are absent, not errors.
	assert.Equal(t, int64(0), m.At(10, 10))
	assert.Equal(t, int64(0), m.At(-1, 0))

	var nilM *matrix.Sparse
	assert.Equal(t, int64(0), nilM.At(0, 0))
	assert.False(t, nilM.Has(0, 0))
	assert.Equal(t, 0, nilM.RowNNZ(0))
}

func TestSet_AllocatesRowsOnDemand(t *testing.T) {
	m := MustSparse(t, 3, 3)
	require.NoError(t, m.Set(2, 0, 4))
	require.NoError(t, m.Set(2, 1, 5))
	require.NoError(t, m.Set(0, 2, 6))
	assert.Equal(t, 2, matrix.StoredRows_TestOnly(m))
	assert.Equal(t, 2, m.RowNNZ(2))
	RequireSparse(t, m, 3, 3, tr(0, 2, 6), tr(2, 0, 4), tr(2, 1, 5))
}

func TestSet_ZeroRemovesEntry(t *testing.T) {
	m := MustSparse(t, 2, 2, tr(0, 0, 5), tr(0, 1, 6))
	require.True(t, m.Has(0, 0))

	require.NoError(t, m.Set(0, 0, 0))
	assert.False(t, m.Has(0, 0))
	assert.Equal(t, int64(0), m.At(0, 0))
	assert.Equal(t, 1, m.NNZ())
	assert.NotContains(t, m.String(), "(0, 0,")

	// Removing the last entry of a row drops the row map.
	require.NoError(t, m.Set(0, 1, 0))
	assert.Equal(t, 0, matrix.StoredRows_TestOnly(m))
	RequireSparse(t, m, 2, 2)

	// Removing an absent entry is a no-op.
	require.NoError(t, m.Set(1, 1, 0))
	RequireSparse(t, m, 2, 2)
}

func TestSet_Overwrite(t *testing.T) {
	m := MustSparse(t, 2, 2, tr(1, 1, 3))
	require.NoError(t, m.Set(1, 1, -9))
	RequireSparse(t, m, 2, 2, tr(1, 1, -9))
}

func TestSet_OutOfRange_Strict(t *testing.T) {
	m := MustSparse(t, 2, 3)
	cases := [][2]int{{2, 0}, {0, 3}, {-1, 0}, {0, -1}}
	for _, c := range cases {
		err := m.Set(c[0], c[1], 1)
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "%v", c)
	}
	assert.Equal(t, 0, m.NNZ())
}

func TestSet_OutOfRange_Lenient(t *testing.T) {
	m, err := matrix.NewSparse(2, 2, matrix.WithLenientBounds())
	require.NoError(t, err)
	require.NoError(t, m.Set(5, 7, 1))
	assert.Equal(t, int64(1), m.At(5, 7))
	assert.Equal(t, []matrix.Triple{tr(5, 7, 1)}, m.Triples())
}

func TestSet_NilReceiver(t *testing.T) {
	var m *matrix.Sparse
	require.ErrorIs(t, m.Set(0, 0, 1), matrix.ErrNilMatrix)
}

func TestFromTriples_LaterWinsAndZeroRemoves(t *testing.T) {
	m := MustSparse(t, 2, 2, tr(0, 0, 1), tr(0, 0, 4), tr(1, 1, 2), tr(1, 1, 0))
	RequireSparse(t, m, 2, 2, tr(0, 0, 4))
}

func TestFromTriples_OutOfRange(t *testing.T) {
	m, err := matrix.FromTriples(1, 1, []matrix.Triple{tr(0, 0, 1), tr(1, 0, 1)})
	require.Nil(t, m)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestTriples_RowMajorOrder(t *testing.T) {
	m := MustSparse(t, 4, 4, tr(3, 0, 1), tr(0, 3, 2), tr(0, 1, 3), tr(2, 2, 4), tr(3, 3, 5))
	assert.Equal(t, []matrix.Triple{
		tr(0, 1, 3), tr(0, 3, 2), tr(2, 2, 4), tr(3, 0, 1), tr(3, 3, 5),
	}, m.Triples())
	assert.Equal(t, 2, m.RowNNZ(0))
	assert.Equal(t, 0, m.RowNNZ(1))
}

func TestClone_Independent(t *testing.T) {
	m := MustSparse(t, 2, 2, tr(0, 0, 1), tr(1, 0, 2))
	c := m.Clone()
	require.True(t, m.Equal(c))

	require.NoError(t, c.Set(0, 0, 9))
	require.NoError(t, c.Set(1, 0, 0))
	assert.Equal(t, int64(1), m.At(0, 0))
	assert.Equal(t, int64(2), m.At(1, 0))
	assert.False(t, m.Equal(c))
}

func TestEqual(t *testing.T) {
	a := MustSparse(t, 2, 2, tr(0, 1, 1))
	b := MustSparse(t, 2, 2, tr(0, 1, 1))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(MustSparse(t, 2, 3, tr(0, 1, 1))), "shape differs")
	assert.False(t, a.Equal(MustSparse(t, 2, 2, tr(0, 1, 2))), "value differs")
	assert.False(t, a.Equal(MustSparse(t, 2, 2, tr(1, 0, 1))), "key differs")
	assert.False(t, a.Equal(nil))

	var x, y *matrix.Sparse
	assert.True(t, x.Equal(y))
}

func TestString_TextForm(t *testing.T) {
	m := MustSparse(t, 2, 3, tr(1, 2, -5), tr(0, 0, 1))
	assert.Equal(t, "rows=2\ncols=3\n(0, 0, 1)\n(1, 2, -5)", m.String())
	assert.Equal(t, "rows=0\ncols=0", MustSparse(t, 0, 0).String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteTo_PropagatesWriterError(t *testing.T) {
	m := MustSparse(t, 1, 1, tr(0, 0, 1))
	_, err := m.WriteTo(failingWriter{})
	require.EqualError(t, err, "disk full")
}
