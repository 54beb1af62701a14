// SPDX-License-Identifier: MIT

// Package matrix provides an integer sparse matrix and the arithmetic kernels
// that operate on it without ever visiting implicit zeros.
//
// The matrix package provides:
//
//   - Sparse: a row-indexed map of non-zero int64 entries with O(1) At/Set.
//   - Add, Sub, Mul: kernels whose cost follows the number of stored entries,
//     not rows × cols.
//   - Operation / Apply: a small dispatch table used by command-line callers.
//   - Central validators and sentinel errors shared by every kernel.
//
// Sparsity invariant: a stored value is never zero. Setting a cell to zero
// removes it, so cancellation during Add/Sub/Mul is handled by the setter.
//
// Row-major order (ascending row, then column) is used whenever entries are
// enumerated for output; internal map iteration order is never observable.
//
// See example_test.go for usage patterns.
package matrix
