// SPDX-License-Identifier: MIT

package matfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/sparsemat/matrix"
)

// outputPerm is the permission of files created by WriteFile. An existing
// target keeps its own permission bits.
const outputPerm = 0o644

// Format writes m in text format to w: two header lines followed by one
// triple per line in row-major order, with no trailing newline.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil m; writer errors as-is.
func Format(w io.Writer, m *matrix.Sparse) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("Format: %w", err)
	}
	_, err := m.WriteTo(w)

	return err
}

// WriteFile writes m to path atomically: the text goes to a temporary file
// in the same directory, which is renamed over path only after a complete,
// successful write. On any failure path is left untouched. A new file gets
// outputPerm; replacing an existing file preserves its permission bits.
//
// Errors:
//   - *FileError{Op: OpWrite} wrapping the underlying failure.
func WriteFile(path string, m *matrix.Sparse) (err error) {
	if err = matrix.ValidateNotNil(m); err != nil {
		return &FileError{Op: OpWrite, Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return &FileError{Op: OpWrite, Path: path, Err: err}
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Format(tmp, m); err != nil {
		return &FileError{Op: OpWrite, Path: path, Err: err}
	}
	if err = tmp.Chmod(targetPerm(path)); err != nil {
		return &FileError{Op: OpWrite, Path: path, Err: err}
	}
	if err = tmp.Close(); err != nil {
		return &FileError{Op: OpWrite, Path: path, Err: err}
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return &FileError{Op: OpWrite, Path: path, Err: err}
	}

	return nil
}

// targetPerm returns the permission bits of an existing regular file at
// path, or outputPerm when there is none.
func targetPerm(path string) os.FileMode {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return outputPerm
	}

	return info.Mode().Perm()
}
