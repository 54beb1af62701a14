// SPDX-License-Identifier: MIT

// Package config holds the run configuration for the sparsemat command.
//
// Configuration is an explicit value passed down from the command line; no
// package keeps global state. Values come from Default(), optionally
// overlaid by a YAML file (Load), then by explicitly set flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatJSON = "json"

	DefaultFormat = FormatText
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{FormatText, FormatJSON}

// ErrInvalidConfig indicates a config value outside its allowed set.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config controls output, logging and parsing policy.
type Config struct {
	// Format selects text or json output on stdout (default "text").
	Format string `yaml:"format"`

	// Verbose enables debug-level logs on stderr.
	Verbose bool `yaml:"verbose"`

	// Lenient disables bounds checking of triple coordinates while parsing.
	Lenient bool `yaml:"lenient"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Format: DefaultFormat}
}

// Load reads a YAML config file on top of Default(). Unknown keys are
// rejected so typos surface instead of being ignored.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that every field holds an allowed value.
func (c Config) Validate() error {
	if !IsValidFormat(c.Format) {
		return fmt.Errorf("%w: format %q must be one of %v", ErrInvalidConfig, c.Format, ValidFormats)
	}
	return nil
}

// IsValidFormat checks if the format is one of the allowed values.
func IsValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
