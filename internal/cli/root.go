// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsemat/internal/config"
	"github.com/katalvlaran/sparsemat/matrix"
)

// usageText is printed after a usage error in text mode.
var usageText = fmt.Sprintf(`Usage: sparsemat <operation> <matrix1_file> <matrix2_file> <output_file>
Operations available: %s
Example: sparsemat add matrix1.txt matrix2.txt result.txt
`, matrix.OperationList())

// RootOptions holds the flags of the command.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
	Format     string
	Lenient    bool

	// resolved is the effective configuration after Resolve.
	resolved config.Config
}

// Resolve merges Default(), the optional config file and explicitly set
// flags, in that order of increasing precedence.
func (o *RootOptions) Resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if o.ConfigPath != "" {
		loaded, err := config.Load(o.ConfigPath)
		if err != nil {
			return config.Config{}, WrapExitError(ExitFailure, "config failed", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = o.Format
	}
	if flags.Changed("verbose") {
		cfg.Verbose = o.Verbose
	}
	if flags.Changed("lenient") {
		cfg.Lenient = o.Lenient
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, WrapExitError(ExitFailure, "invalid flags", err)
	}

	o.resolved = cfg
	return cfg, nil
}

// NewRootCommand creates the sparsemat command.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sparsemat <operation> <matrix1_file> <matrix2_file> <output_file>",
		Short: "Sparse integer matrix arithmetic",
		Long: fmt.Sprintf(`Add, subtract or multiply two sparse integer matrices stored in the
rows=/cols= triple text format and write the result in the same format.

Operations: %s.`, matrix.OperationList()),
		Example:       "  sparsemat add matrix1.txt matrix2.txt result.txt",
		Args:          validateArgCount,
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // We handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Resolve(cmd)
			if err != nil {
				return err
			}
			inv, err := ParseInvocation(args)
			if err != nil {
				return err
			}

			formatter := &OutputFormatter{
				Format:    cfg.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
			}
			logger := NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
			return Execute(inv, cfg, formatter, logger)
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitFailure, err.Error(), ErrUsage)
	})

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "path to a YAML config file")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose (debug) logging on stderr")
	cmd.Flags().StringVar(&opts.Format, "format", config.DefaultFormat, "output format (json|text)")
	cmd.Flags().BoolVar(&opts.Lenient, "lenient", false, "accept triples outside the declared shape")

	return cmd
}

// validateArgCount rejects anything but exactly four positional arguments.
func validateArgCount(_ *cobra.Command, args []string) error {
	if len(args) != invocationArgs {
		return WrapExitError(ExitFailure,
			fmt.Sprintf("expected %d arguments, got %d", invocationArgs, len(args)), ErrUsage)
	}
	return nil
}

// Main runs the command with args and returns the process exit code.
// Errors are reported on stderr (text) or stdout (json).
func Main(args []string, stdout, stderr io.Writer) int {
	opts := &RootOptions{}
	cmd := newRootCommand(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	format := opts.resolved.Format
	if format == "" {
		// failed before Resolve; the parsed flag is the best guess
		format = config.DefaultFormat
		if config.IsValidFormat(opts.Format) {
			format = opts.Format
		}
	}
	reporter := &OutputFormatter{Format: format, Writer: stdout, ErrWriter: stderr}
	_ = reporter.Error(err)

	return GetExitCode(err)
}
