// SPDX-License-Identifier: MIT

package cli

import (
	"io"
	"log/slog"
)

// NewLogger builds the structured logger for a run. Records go to w as
// key=value text. Only warnings and errors are emitted unless verbose is
// set, in which case debug records are included.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
