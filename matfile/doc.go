// SPDX-License-Identifier: MIT

// Package matfile reads and writes sparse matrices in the line-oriented
// text format:
//
//	rows=<integer>
//	cols=<integer>
//	(<row>, <col>, <value>)
//	(<row>, <col>, <value>)
//	...
//
// The first two lines declare the dimensions; every later non-blank line is
// one triple. Output lists entries in row-major order, so a parse/format
// round trip is deterministic. Writes go through a temporary file and a
// rename, so a failed write never leaves a partial output file behind.
package matfile
