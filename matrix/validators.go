// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape/nil/index checks.
//  - Keep kernels minimal by delegating guard logic here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and O(1).
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).
//  - Shape validators return *DimensionError so callers keep both shapes.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Sparse) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape ensures rows and cols are non-negative.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("ValidateShape", ErrBadShape)
	}

	return nil
}

// ValidateIndex ensures 0 <= i < m.Rows() and 0 <= j < m.Cols().
// Assumes m is not nil.
// Complexity: O(1).
func ValidateIndex(m *Sparse, i, j int) error {
	if i < 0 || i >= m.r {
		return validatorErrorf("ValidateIndex: Row", ErrOutOfRange)
	}
	if j < 0 || j >= m.c {
		return validatorErrorf("ValidateIndex: Column", ErrOutOfRange)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil. The returned error is a *DimensionError
// tagged with op.
// Complexity: O(1).
func ValidateSameShape(op Operation, a, b *Sparse) error {
	if a.r != b.r || a.c != b.c {
		return newDimensionError(op, a, b)
	}

	return nil
}

// ValidateMulCompatible ensures the inner dimensions agree (a.Cols == b.Rows).
// Assumes a and b are not nil.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Sparse) error {
	if a.c != b.r {
		return newDimensionError(OpMultiply, a, b)
	}

	return nil
}

// ValidateBinaryNotNil is the composite NotNil(a) → NotNil(b).
func ValidateBinaryNotNil(a, b *Sparse) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinaryNotNil: left", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinaryNotNil: right", err)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
//
// Errors: ErrNilMatrix or *DimensionError (matches ErrDimensionMismatch).
// Complexity: O(1).
func ValidateBinarySameShape(op Operation, a, b *Sparse) error {
	if err := ValidateBinaryNotNil(a, b); err != nil {
		return err
	}

	return ValidateSameShape(op, a, b)
}
