// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (row-indexed maps) & safe accessors.
//
// Purpose:
//   - Store only non-zero entries: row -> col -> value.
//   - Keep the sparsity invariant in exactly one place (the setter).
//   - Give kernels direct access to a whole row so Mul never scans.
//   - Enumerate entries in row-major order whenever output is produced.
//
// Complexity quicksheet:
//   - NewSparse: O(1); At/Set: O(1) average; Clone: O(nnz);
//     Triples/WriteTo: O(nnz log nnz) for the row/col sort.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxSet  = "Set"  // method tag used in error wrappers
	ctxNew  = "New"  // ctor tag for NewSparse
	ctxFrom = "From" // ctor tag for FromTriples
)

// ---------- formatting literals ----------

const (
	_fmtRowsHeader = "rows=%d"
	_fmtColsHeader = "cols=%d"
	_fmtLineSep    = "\n"
)

// sparseErrorf wraps an error with a uniform Sparse context and coordinates.
// Keep tags in constants for grep-ability.
func sparseErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, i, j, err)
}

// Sparse is an integer matrix that stores only its non-zero entries.
//   - r,c hold dimensions (rows, cols); both may be zero.
//   - data maps a row index to that row's non-zero entries; a row key exists
//     only while the row holds at least one entry.
//   - opts carries the bounds policy (options.go).
type Sparse struct {
	r, c int         // row and column counts (>= 0)
	data map[int]row // row -> col -> non-zero value
	opts Options     // resolved construction policy
}

// Compile-time assertions for fmt.Stringer and io.WriterTo conformance.
var (
	_ fmt.Stringer = (*Sparse)(nil)
	_ io.WriterTo  = (*Sparse)(nil)
)

// NewSparse creates an empty rows×cols matrix.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrBadShape.
//   - Stage 2: resolve options and allocate an empty row index.
//
// Errors:
//   - ErrBadShape (negative dimension).
//
// Complexity:
//   - Time O(1), Space O(1).
func NewSparse(rows, cols int, opts ...Option) (*Sparse, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, sparseErrorf(ctxNew, rows, cols, err)
	}

	return &Sparse{
		r:    rows,
		c:    cols,
		data: make(map[int]row),
		opts: gatherOptions(opts...),
	}, nil
}

// FromTriples builds a rows×cols matrix by applying Set for each triple in
// order. Later triples overwrite earlier ones at the same coordinate, and a
// zero value removes whatever was stored there.
//
// Errors:
//   - ErrBadShape, or ErrOutOfRange under the strict bounds policy. No matrix
//     is returned on error.
//
// Complexity:
//   - Time O(len(ts)), Space O(len(ts)).
func FromTriples(rows, cols int, ts []Triple, opts ...Option) (*Sparse, error) {
	m, err := NewSparse(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	for _, t := range ts {
		if err = m.Set(t.Row, t.Col, t.Value); err != nil {
			return nil, fmt.Errorf("%s: %w", ctxFrom, err)
		}
	}

	return m, nil
}

// newLike allocates an empty matrix of the given shape that inherits m's
// policy. Shape is assumed valid (derived from existing operands).
func newLike(m *Sparse, rows, cols int) *Sparse {
	return &Sparse{r: rows, c: cols, data: make(map[int]row), opts: m.opts}
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Sparse) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Sparse) Cols() int { return m.c }

// Shape returns (rows, cols) as a Shape value.
func (m *Sparse) Shape() Shape { return Shape{Rows: m.r, Cols: m.c} }

// Options returns the resolved construction policy.
func (m *Sparse) Options() Options { return m.opts }

// NNZ returns the number of stored (non-zero) entries.
// Complexity: O(number of non-empty rows).
func (m *Sparse) NNZ() int {
	n := 0
	for _, cols := range m.data {
		n += len(cols)
	}

	return n
}

// RowNNZ returns the number of stored entries in row i (0 if absent or if
// m is nil).
func (m *Sparse) RowNNZ(i int) int {
	if m == nil {
		return 0
	}

	return len(m.data[i])
}

// At returns the value stored at (i, j), or 0 when nothing is stored.
// At never fails: a coordinate outside the shape is simply absent and reads
// as 0, as does any coordinate of a nil matrix.
// Complexity: O(1) average.
func (m *Sparse) At(i, j int) int64 {
	if m == nil {
		return 0
	}

	return m.data[i][j] // missing row map reads as nil; nil map index yields 0
}

// Has reports whether a non-zero value is stored at (i, j).
func (m *Sparse) Has(i, j int) bool {
	if m == nil {
		return false
	}
	_, ok := m.data[i][j]

	return ok
}

// Set stores v at (i, j). A zero v removes the entry (restoring the
// sparsity invariant); removing an absent entry is a no-op.
//
// Implementation:
//   - Stage 1: nil guard; bounds check when the policy requires it.
//   - Stage 2: delegate to put, the single writer of the invariant.
//
// Errors:
//   - ErrNilMatrix (nil receiver).
//   - ErrOutOfRange (strict policy, coordinate outside the shape).
//
// Complexity:
//   - Time O(1) average, Space O(1) amortized.
func (m *Sparse) Set(i, j int, v int64) error {
	if m == nil {
		return sparseErrorf(ctxSet, i, j, ErrNilMatrix)
	}
	if m.opts.boundsCheck {
		if err := ValidateIndex(m, i, j); err != nil {
			return sparseErrorf(ctxSet, i, j, err)
		}
	}
	m.put(i, j, v)

	return nil
}

// put writes v at (i, j) without validation and keeps the invariant:
// zero deletes, and a row that becomes empty is dropped.
func (m *Sparse) put(i, j int, v int64) {
	if v == 0 {
		cols, ok := m.data[i]
		if !ok {
			return
		}
		delete(cols, j)
		if len(cols) == 0 {
			delete(m.data, i)
		}
		return
	}

	cols, ok := m.data[i]
	if !ok {
		cols = make(row)
		m.data[i] = cols
	}
	cols[j] = v
}

// accumulate adds delta to (i, j) through put, so a sum that cancels
// to zero removes the entry and a later non-zero revives it.
func (m *Sparse) accumulate(i, j int, delta int64) {
	m.put(i, j, m.data[i][j]+delta)
}

// Clone returns a deep copy; the result shares no storage with m.
// Complexity: O(nnz).
func (m *Sparse) Clone() *Sparse {
	out := newLike(m, m.r, m.c)
	for i, cols := range m.data {
		out.data[i] = maps.Clone(cols)
	}

	return out
}

// Triples returns every stored entry in row-major order (ascending row,
// then ascending column). The slice is freshly allocated.
// Complexity: O(nnz log nnz).
func (m *Sparse) Triples() []Triple {
	out := make([]Triple, 0, m.NNZ())
	for _, i := range slices.Sorted(maps.Keys(m.data)) {
		cols := m.data[i]
		for _, j := range slices.Sorted(maps.Keys(cols)) {
			out = append(out, Triple{Row: i, Col: j, Value: cols[j]})
		}
	}

	return out
}

// Equal reports whether m and other have the same shape and the same set of
// stored entries. Nil matrices are equal only to each other.
// Complexity: O(nnz).
func (m *Sparse) Equal(other *Sparse) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.Shape() != other.Shape() || len(m.data) != len(other.data) {
		return false
	}
	for i, cols := range m.data {
		if !maps.Equal(cols, other.data[i]) {
			return false
		}
	}

	return true
}

// WriteTo writes the text form of m to w:
//
//	rows=<r>
//	cols=<c>
//	(<row>, <col>, <value>)
//	...
//
// Entries follow row-major order; lines are separated by "\n" with no
// trailing newline, so an empty matrix is exactly the two header lines.
// Complexity: O(nnz log nnz).
func (m *Sparse) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64
	write := func(s string) error {
		n, err := bw.WriteString(s)
		total += int64(n)
		return err
	}

	if err := write(fmt.Sprintf(_fmtRowsHeader, m.r) + _fmtLineSep + fmt.Sprintf(_fmtColsHeader, m.c)); err != nil {
		return total, err
	}
	for _, t := range m.Triples() {
		if err := write(_fmtLineSep + t.String()); err != nil {
			return total, err
		}
	}

	return total, bw.Flush()
}

// String implements fmt.Stringer using the text form written by WriteTo.
func (m *Sparse) String() string {
	var sb strings.Builder
	_, _ = m.WriteTo(&sb) // strings.Builder never returns a write error

	return sb.String()
}
