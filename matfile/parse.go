// SPDX-License-Identifier: MIT

package matfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/sparsemat/matrix"
)

const (
	rowsPrefix  = "rows="
	colsPrefix  = "cols="
	tripleOpen  = "("
	tripleClose = ")"
	fieldSep    = ","
	tripleArity = 3

	// maxLineBytes bounds a single line; triples are short, so this only
	// guards against binary input.
	maxLineBytes = 1 << 20
)

// Parse reads a matrix in text format from r.
//
// Implementation:
//   - Stage 1: line 1 must be "rows=<n>", line 2 "cols=<n>" (surrounding
//     whitespace ignored).
//   - Stage 2: every later non-blank line is "(row, col, value)"; spaces
//     around fields are tolerated. Each triple goes through Sparse.Set, so a
//     repeated coordinate overwrites and a zero value removes.
//
// Errors:
//   - ErrInvalidFormat / ErrMissingHeader with line context.
//   - matrix.ErrBadShape for negative dimensions.
//   - matrix.ErrOutOfRange for a coordinate outside the declared shape
//     under the default bounds policy.
//   - Reader errors as-is.
//
// No matrix is returned on error.
func Parse(r io.Reader, opts ...matrix.Option) (*matrix.Sparse, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	rows, err := scanHeader(sc, 1, rowsPrefix)
	if err != nil {
		return nil, err
	}
	cols, err := scanHeader(sc, 2, colsPrefix)
	if err != nil {
		return nil, err
	}

	m, err := matrix.NewSparse(rows, cols, opts...)
	if err != nil {
		return nil, lineErrorf(2, fmt.Sprintf("%dx%d", rows, cols), err)
	}

	for n := 3; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		t, err := parseTriple(line)
		if err != nil {
			return nil, lineErrorf(n, line, err)
		}
		if err = m.Set(t.Row, t.Col, t.Value); err != nil {
			return nil, lineErrorf(n, line, err)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}

	return m, nil
}

// scanHeader reads line n and parses "<prefix><int>".
func scanHeader(sc *bufio.Scanner, n int, prefix string) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("line %d: %w: expected %q", n, ErrMissingHeader, prefix)
	}
	line := strings.TrimSpace(sc.Text())
	rest, ok := strings.CutPrefix(line, prefix)
	if !ok {
		return 0, lineErrorf(n, line, fmt.Errorf("%w: expected %q", ErrMissingHeader, prefix))
	}
	v, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		return 0, lineErrorf(n, line, fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}

	return v, nil
}

// parseTriple parses "(row, col, value)" from an already-trimmed line.
func parseTriple(line string) (matrix.Triple, error) {
	inner, ok := strings.CutPrefix(line, tripleOpen)
	if ok {
		inner, ok = strings.CutSuffix(inner, tripleClose)
	}
	if !ok {
		return matrix.Triple{}, fmt.Errorf("%w: expected (row, col, value)", ErrInvalidFormat)
	}

	fields := strings.Split(inner, fieldSep)
	if len(fields) != tripleArity {
		return matrix.Triple{}, fmt.Errorf("%w: expected %d fields, got %d", ErrInvalidFormat, tripleArity, len(fields))
	}

	var t matrix.Triple
	var err error
	if t.Row, err = strconv.Atoi(strings.TrimSpace(fields[0])); err != nil {
		return matrix.Triple{}, fmt.Errorf("%w: row: %v", ErrInvalidFormat, err)
	}
	if t.Col, err = strconv.Atoi(strings.TrimSpace(fields[1])); err != nil {
		return matrix.Triple{}, fmt.Errorf("%w: col: %v", ErrInvalidFormat, err)
	}
	if t.Value, err = strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64); err != nil {
		return matrix.Triple{}, fmt.Errorf("%w: value: %v", ErrInvalidFormat, err)
	}

	return t, nil
}

// ReadFile opens path and parses it with Parse.
//
// Errors:
//   - *FileError{Op: OpRead} wrapping the open or parse failure.
func ReadFile(path string, opts ...matrix.Option) (*matrix.Sparse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Op: OpRead, Path: path, Err: err}
	}
	defer f.Close()

	m, err := Parse(f, opts...)
	if err != nil {
		return nil, &FileError{Op: OpRead, Path: path, Err: err}
	}

	return m, nil
}
