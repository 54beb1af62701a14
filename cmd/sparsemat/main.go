// SPDX-License-Identifier: MIT

// Command sparsemat adds, subtracts or multiplies two sparse integer
// matrices stored in text files.
//
//	sparsemat <operation> <matrix1_file> <matrix2_file> <output_file>
package main

import (
	"os"

	"github.com/katalvlaran/sparsemat/internal/cli"
)

func main() {
	os.Exit(cli.Main(os.Args[1:], os.Stdout, os.Stderr))
}
