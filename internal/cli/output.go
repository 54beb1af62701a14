// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/sparsemat/internal/config"
	"github.com/katalvlaran/sparsemat/matfile"
	"github.com/katalvlaran/sparsemat/matrix"
)

// Exit codes for the command. Every failure kind maps to ExitFailure.
const (
	ExitSuccess = 0 // Successful execution
	ExitFailure = 1 // Usage, parse, dimension or write failure
)

// Error codes used in JSON error responses.
const (
	ErrCodeUsage     = "E_USAGE"
	ErrCodeOperation = "E_OPERATION"
	ErrCodeFormat    = "E_FORMAT"
	ErrCodeDimension = "E_DIMENSION"
	ErrCodeFile      = "E_FILE"
	ErrCodeConfig    = "E_CONFIG"
	ErrCodeGeneric   = "E_GENERIC"
)

// ErrUsage indicates a wrong number of arguments or an invalid flag.
var ErrUsage = errors.New("cli: usage error")

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (ExitFailure)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// ErrorCode classifies err into one of the ErrCode* constants.
// Config and format errors are checked before file errors because they
// usually arrive wrapped in a *matfile.FileError.
func ErrorCode(err error) string {
	var fileErr *matfile.FileError
	switch {
	case errors.Is(err, ErrUsage):
		return ErrCodeUsage
	case errors.Is(err, matrix.ErrInvalidOperation):
		return ErrCodeOperation
	case errors.Is(err, config.ErrInvalidConfig):
		return ErrCodeConfig
	case errors.Is(err, matrix.ErrDimensionMismatch):
		return ErrCodeDimension
	case errors.Is(err, matfile.ErrInvalidFormat),
		errors.Is(err, matrix.ErrOutOfRange),
		errors.Is(err, matrix.ErrBadShape):
		return ErrCodeFormat
	case errors.As(err, &fileErr):
		return ErrCodeFile
	default:
		return ErrCodeGeneric
	}
}

// OutputFormatter handles JSON vs text output for the command.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for errors and progress in text mode (defaults to Writer)
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Error  *CLIError   `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`    // ErrCode* constant
	Message string `json:"message"` // human-readable message
}

// Success outputs a successful result in the configured format.
// Text mode prints data via fmt (Stringer-aware).
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Format == config.FormatJSON {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	_, err := fmt.Fprintln(f.Writer, data)
	return err
}

// Progress prints an informational line in text mode only, keeping JSON
// output a single document.
func (f *OutputFormatter) Progress(format string, args ...interface{}) {
	if f.Format == config.FormatJSON {
		return
	}
	fmt.Fprintf(f.Writer, format+"\n", args...)
}

// Error outputs an error in the configured format. Text goes to ErrWriter
// as "Error: <message>"; JSON goes to Writer.
func (f *OutputFormatter) Error(err error) error {
	if f.Format == config.FormatJSON {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    ErrorCode(err),
				Message: err.Error(),
			},
		})
	}

	w := f.GetErrWriter()
	if _, werr := fmt.Fprintf(w, "Error: %s\n", err); werr != nil {
		return werr
	}
	if errors.Is(err, ErrUsage) {
		_, werr := fmt.Fprint(w, usageText)
		return werr
	}
	return nil
}

// GetErrWriter returns the appropriate writer for diagnostic output.
// Returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}
