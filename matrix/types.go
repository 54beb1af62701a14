// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the sparse storage, the kernels and
// the text codec. Errors and options live in dedicated files (errors.go,
// options.go).
package matrix

import "fmt"

// Shape is a (rows, cols) pair. It is comparable and safe to use as a map key.
type Shape struct {
	Rows int // number of rows (>= 0)
	Cols int // number of columns (>= 0)
}

// String renders the shape as "RxC", e.g. "2x3".
func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}

// Triple is a single non-zero entry (row, col, value) as exchanged with
// codecs. Triples produced by Sparse.Triples never carry Value == 0.
type Triple struct {
	Row   int   // row index
	Col   int   // column index
	Value int64 // stored value
}

// String renders the triple in the text-format literal form "(r, c, v)".
func (t Triple) String() string {
	return fmt.Sprintf("(%d, %d, %d)", t.Row, t.Col, t.Value)
}

// row holds the non-zero entries of one matrix row keyed by column.
// A row is dropped from its parent map as soon as it becomes empty.
type row map[int]int64
