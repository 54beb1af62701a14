// Package sparsemat is a small toolkit for integer sparse matrix arithmetic:
// storage, a plain-text file format and a command-line front end.
//
// What is inside?
//
//   - Sparse storage: only non-zero entries are kept, rows without entries vanish
//   - Arithmetic: Add, Sub and Mul with exact int64 accumulation
//   - File format: "rows=" / "cols=" header followed by "(row, col, value)" triples
//   - CLI: sparsemat <operation> <matrix1_file> <matrix2_file> <output_file>
//
// Why a separate module?
//
//   - Predictable output: triples are always written in row-major order
//   - Strict by default: out-of-range writes fail unless leniency is requested
//   - Safe writes: the result file is replaced atomically, never half-written
//
// Everything is organized under a few packages:
//
//	matrix/           Sparse type, operations, validators and options
//	matfile/          parsing and formatting of the text file format
//	internal/config/  YAML run configuration
//	internal/cli/     cobra command, output formatting and logging
//	cmd/sparsemat/    the binary
//
// Quick example:
//
//	rows=2          rows=2          rows=2
//	cols=2     +    cols=2     =    cols=2
//	(0, 1, 2)       (0, 0, 1)       (0, 0, 1)
//	                                (0, 1, 2)
//
//	go install github.com/katalvlaran/sparsemat/cmd/sparsemat@latest
package sparsemat
