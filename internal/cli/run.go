// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/sparsemat/internal/config"
	"github.com/katalvlaran/sparsemat/matfile"
	"github.com/katalvlaran/sparsemat/matrix"
)

// invocationArgs is the exact positional argument count.
const invocationArgs = 4

// Invocation is one parsed command line: an operation, two input paths and
// an output path.
type Invocation struct {
	Op     matrix.Operation
	Left   string
	Right  string
	Output string
}

// Result describes a completed run. It is the JSON success payload.
type Result struct {
	Operation string `json:"operation"`
	Left      string `json:"left"`   // shape of matrix 1, "RxC"
	Right     string `json:"right"`  // shape of matrix 2, "RxC"
	Shape     string `json:"shape"`  // shape of the result, "RxC"
	NNZ       int    `json:"nnz"`    // stored entries in the result
	Output    string `json:"output"` // path the result was written to
}

// String is the text-mode confirmation line.
func (r Result) String() string {
	return fmt.Sprintf("Operation %q completed successfully. Result written to: %s", r.Operation, r.Output)
}

// ParseInvocation validates the positional arguments. The argument count is
// checked before the operation keyword.
func ParseInvocation(args []string) (Invocation, error) {
	if len(args) != invocationArgs {
		return Invocation{}, WrapExitError(ExitFailure,
			fmt.Sprintf("expected %d arguments, got %d", invocationArgs, len(args)), ErrUsage)
	}

	op, err := matrix.ParseOperation(args[0])
	if err != nil {
		return Invocation{}, WrapExitError(ExitFailure, "invalid operation", err)
	}

	return Invocation{Op: op, Left: args[1], Right: args[2], Output: args[3]}, nil
}

// Execute loads both matrices, applies the operation and writes the result.
// Nothing is written to inv.Output unless every earlier step succeeded.
func Execute(inv Invocation, cfg config.Config, out *OutputFormatter, logger *slog.Logger) error {
	var opts []matrix.Option
	if cfg.Lenient {
		opts = append(opts, matrix.WithLenientBounds())
	}

	left, err := loadMatrix(inv.Left, logger, opts)
	if err != nil {
		return err
	}
	right, err := loadMatrix(inv.Right, logger, opts)
	if err != nil {
		return err
	}

	out.Progress("Performing operation: %s %s %s", left.Shape(), inv.Op, right.Shape())

	start := time.Now()
	result, err := matrix.Apply(inv.Op, left, right)
	if err != nil {
		return WrapExitError(ExitFailure, fmt.Sprintf("%s failed", inv.Op), err)
	}
	logger.Debug("operation finished",
		"op", inv.Op.String(),
		"shape", result.Shape().String(),
		"nnz", result.NNZ(),
		"elapsed", time.Since(start),
	)

	if err := matfile.WriteFile(inv.Output, result); err != nil {
		return WrapExitError(ExitFailure, "write failed", err)
	}
	logger.Info("result written", "path", inv.Output, "nnz", result.NNZ())

	return out.Success(Result{
		Operation: inv.Op.String(),
		Left:      left.Shape().String(),
		Right:     right.Shape().String(),
		Shape:     result.Shape().String(),
		NNZ:       result.NNZ(),
		Output:    inv.Output,
	})
}

// loadMatrix reads one operand and logs its shape.
func loadMatrix(path string, logger *slog.Logger, opts []matrix.Option) (*matrix.Sparse, error) {
	m, err := matfile.ReadFile(path, opts...)
	if err != nil {
		return nil, WrapExitError(ExitFailure, "load failed", err)
	}
	logger.Debug("matrix loaded",
		"path", path,
		"shape", m.Shape().String(),
		"nnz", m.NNZ(),
	)
	return m, nil
}
