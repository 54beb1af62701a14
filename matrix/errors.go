// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and the structured dimension error.
// All kernels MUST return these sentinels (optionally wrapped with %w) and
// tests MUST check them via errors.Is / errors.As. No kernel panics on
// user-triggered conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Context is
// attached at the detection site with fmt.Errorf("ctx: %w", ErrX); callers
// still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> dimension mismatch -> index out of range.

var (
	// ErrBadShape is returned when requested shape is invalid (rows<0 or cols<0).
	// Zero-sized shapes are legal for sparse storage.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Returned by Set under the default bounds policy.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	// Returned inside *DimensionError, which carries both shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Sparse (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidOperation indicates an unrecognized operation keyword.
	ErrInvalidOperation = errors.New("matrix: invalid operation")
)

// DimensionError reports a shape incompatibility for a binary operation.
// It matches ErrDimensionMismatch under errors.Is and exposes both operand
// shapes for diagnostics.
type DimensionError struct {
	Op    Operation // operation that rejected the operands
	Left  Shape     // shape of the left operand
	Right Shape     // shape of the right operand
}

// Error renders a message naming the operation and both shapes. For
// multiplication it also states which dimensions must agree.
func (e *DimensionError) Error() string {
	if e.Op == OpMultiply {
		return fmt.Sprintf(
			"matrix: invalid dimensions for %s: matrix 1 is %s, matrix 2 is %s; "+
				"the number of columns in the first matrix (%d) must equal the number of rows in the second matrix (%d)",
			e.Op.Verb(), e.Left, e.Right, e.Left.Cols, e.Right.Rows)
	}

	return fmt.Sprintf("matrix: dimensions must match for %s: matrix 1 is %s, matrix 2 is %s",
		e.Op.Verb(), e.Left, e.Right)
}

// Is reports whether target is ErrDimensionMismatch.
func (e *DimensionError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

// newDimensionError builds a *DimensionError from two non-nil operands.
func newDimensionError(op Operation, a, b *Sparse) error {
	return &DimensionError{Op: op, Left: a.Shape(), Right: b.Shape()}
}
