// SPDX-License-Identifier: MIT
// Package matfile: sentinel errors and the file-level error wrapper.
// Callers branch with errors.Is(err, ErrInvalidFormat) for malformed input
// and errors.As(err, *FileError) to recover the offending path.

package matfile

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat indicates a malformed header or triple line.
// It is always wrapped with the line number and offending text.
var ErrInvalidFormat = errors.New("matfile: invalid format")

// ErrMissingHeader indicates that the rows= or cols= header line is absent.
// It wraps ErrInvalidFormat, so errors.Is(err, ErrInvalidFormat) also holds.
var ErrMissingHeader = fmt.Errorf("%w: missing header", ErrInvalidFormat)

// File operation tags used by FileError.
const (
	OpRead  = "read"
	OpWrite = "write"
)

// FileError records a failure to read or write a matrix file.
type FileError struct {
	Op   string // OpRead or OpWrite
	Path string // file path as given by the caller
	Err  error  // underlying cause (I/O, ErrInvalidFormat, matrix errors)
}

// Error renders "failed to <op> matrix file: <path>: <cause>".
func (e *FileError) Error() string {
	return fmt.Sprintf("failed to %s matrix file: %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *FileError) Unwrap() error { return e.Err }

// lineErrorf wraps err with the 1-based line number and the raw line text.
func lineErrorf(n int, text string, err error) error {
	return fmt.Errorf("line %d: %q: %w", n, text, err)
}
