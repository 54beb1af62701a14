// SPDX-License-Identifier: MIT
// Package matrix provides the sparse arithmetic kernels: element-wise
// addition and subtraction, and matrix multiplication. All functions perform
// strict fail-fast validation and return clear errors on dimension
// mismatches.
//
// Purpose:
//   - Keep every kernel proportional to the number of stored entries.
//   - Route every write through the sparsity-preserving setter (put), so
//     cancellation never leaves an explicit zero behind.
//
// Notes:
//   - Operands are never mutated; each kernel allocates exactly one result.
//   - Integer arithmetic is exact and order-independent, so map iteration
//     order cannot change a result.

package matrix

import "fmt"

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w. Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(op, a, b).
//   - Stage 2: out starts as a deep copy of a's entries.
//   - Stage 3: for each entry of b, accumulate sign*v into out; a sum of zero
//     removes the cell.
//
// Errors:
//   - ErrNilMatrix, *DimensionError (ErrDimensionMismatch).
//
// Complexity:
//   - Time O(nnz(a) + nnz(b)), Space O(nnz(a) + nnz(b)).
func addSub(a, b *Sparse, sign int64, op Operation) (*Sparse, error) {
	if err := ValidateBinarySameShape(op, a, b); err != nil {
		return nil, matrixErrorf(op.Tag(), err)
	}

	out := a.Clone()
	for i, cols := range b.data {
		for j, v := range cols {
			out.accumulate(i, j, sign*v)
		}
	}

	return out, nil
}

// Add computes the element-wise sum C = A + B as a fresh Sparse.
//
// Behavior highlights:
//   - Cells where A[i,j] + B[i,j] == 0 are not stored.
//   - Result inherits A's bounds policy.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(nnz(A) + nnz(B)); never O(rows*cols).
func Add(a, b *Sparse) (*Sparse, error) { return addSub(a, b, +1, OpAdd) }

// Sub computes the element-wise difference C = A - B as a fresh Sparse.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(nnz(A) + nnz(B)).
func Sub(a, b *Sparse) (*Sparse, error) { return addSub(a, b, -1, OpSubtract) }

// Mul computes the matrix product C = A × B.
//
// Implementation:
//   - Stage 1: validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: for each stored (i,k)→v1 of A, look up row k of B directly
//     and accumulate v1*v2 into C[i,j] for each stored (k,j)→v2.
//
// Behavior highlights:
//   - Zero cells of either operand are never visited; the dense
//     rows(A)×cols(B) space is never materialized.
//   - Partial sums may cancel to zero and revive later; put keeps the stored
//     state consistent throughout.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Sparse: new matrix with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(Σ_(i,k)∈A nnz_row_k(B)), Space O(nnz(C)).
func Mul(a, b *Sparse) (*Sparse, error) {
	if err := ValidateBinaryNotNil(a, b); err != nil {
		return nil, matrixErrorf(OpMultiply.Tag(), err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(OpMultiply.Tag(), err)
	}

	out := newLike(a, a.r, b.c)
	for i, aRow := range a.data {
		for k, v1 := range aRow {
			bRow, ok := b.data[k]
			if !ok {
				continue // row k of B is all zeros
			}
			for j, v2 := range bRow {
				out.accumulate(i, j, v1*v2)
			}
		}
	}

	return out, nil
}
