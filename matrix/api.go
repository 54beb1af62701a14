// SPDX-License-Identifier: MIT

// Package matrix: public facade. Short aliases over the kernels plus the
// Operation dispatch table used by the command line.
package matrix

import (
	"fmt"
	"strings"
)

// Operation names a binary sparse operation by its command-line keyword.
type Operation string

// Supported operations.
const (
	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
	OpMultiply Operation = "multiply"
)

// Operations lists every supported operation in display order.
var Operations = []Operation{OpAdd, OpSubtract, OpMultiply}

// operationKernels maps each operation to its kernel. Metadata lookups
// (Tag, Verb) use switches so kernels can call them without an
// initialization cycle through this table.
var operationKernels = map[Operation]func(a, b *Sparse) (*Sparse, error){
	OpAdd:      Add,
	OpSubtract: Sub,
	OpMultiply: Mul,
}

// Valid reports whether op is a supported operation.
func (op Operation) Valid() bool {
	switch op {
	case OpAdd, OpSubtract, OpMultiply:
		return true
	default:
		return false
	}
}

// Tag returns the kernel name used as an error prefix (e.g. "Mul").
func (op Operation) Tag() string {
	switch op {
	case OpAdd:
		return "Add"
	case OpSubtract:
		return "Sub"
	case OpMultiply:
		return "Mul"
	default:
		return string(op)
	}
}

// Verb returns the noun used in messages (e.g. "multiplication").
func (op Operation) Verb() string {
	switch op {
	case OpAdd:
		return "addition"
	case OpSubtract:
		return "subtraction"
	case OpMultiply:
		return "multiplication"
	default:
		return string(op)
	}
}

// String returns the command-line keyword.
func (op Operation) String() string { return string(op) }

// ParseOperation maps a keyword to an Operation. Matching is exact.
//
// Errors:
//   - ErrInvalidOperation, with a message listing the valid keywords.
func ParseOperation(s string) (Operation, error) {
	op := Operation(s)
	if !op.Valid() {
		return "", fmt.Errorf("%w: %q; valid operations are: %s",
			ErrInvalidOperation, s, OperationList())
	}

	return op, nil
}

// OperationList renders the keywords as "add, subtract, or multiply".
func OperationList() string {
	names := make([]string, len(Operations))
	for i, op := range Operations {
		names[i] = string(op)
	}
	if len(names) < 2 {
		return strings.Join(names, "")
	}

	return strings.Join(names[:len(names)-1], ", ") + ", or " + names[len(names)-1]
}

// Apply runs op on (a, b).
//
// Errors:
//   - ErrInvalidOperation for an unsupported op, otherwise the kernel's errors.
func Apply(op Operation, a, b *Sparse) (*Sparse, error) {
	fn, ok := operationKernels[op]
	if !ok {
		return nil, fmt.Errorf("Apply: %w: %q", ErrInvalidOperation, string(op))
	}

	return fn(a, b)
}

// Sum is an alias for Add.
func Sum(a, b *Sparse) (*Sparse, error) { return Add(a, b) }

// Diff is an alias for Sub.
func Diff(a, b *Sparse) (*Sparse, error) { return Sub(a, b) }

// Product is an alias for Mul.
func Product(a, b *Sparse) (*Sparse, error) { return Mul(a, b) }

// NewZeros returns an empty rows×cols matrix (all cells read as 0).
func NewZeros(rows, cols int, opts ...Option) (*Sparse, error) { return NewSparse(rows, cols, opts...) }

// NewIdentity returns the n×n identity matrix.
func NewIdentity(n int, opts ...Option) (*Sparse, error) {
	m, err := NewSparse(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.put(i, i, 1)
	}

	return m, nil
}
