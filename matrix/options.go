// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Sparse construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//
// Notes:
//   - Bounds policy. At never fails: any absent coordinate, including one
//     outside the shape, reads as 0. Set is strict by default and returns
//     ErrOutOfRange for coordinates outside [0,rows)×[0,cols). Disabling the
//     check reproduces the historical unchecked behavior, where such entries
//     are stored and later enumerated by Triples.
package matrix

// ---------- Defaults (single source of truth) ----------

// DefaultBoundsCheck toggles ErrOutOfRange validation in Set.
const DefaultBoundsCheck = true

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options is the resolved configuration of a Sparse matrix.
// Fields are unexported; callers use WithX constructors.
type Options struct {
	boundsCheck bool // reject out-of-range Set coordinates when true
}

// defaultOptions returns Options populated with the documented defaults.
func defaultOptions() Options {
	return Options{boundsCheck: DefaultBoundsCheck}
}

// WithBoundsCheck enables or disables ErrOutOfRange validation in Set.
// Complexity: O(1).
func WithBoundsCheck(enabled bool) Option {
	return func(o *Options) { o.boundsCheck = enabled }
}

// WithLenientBounds is shorthand for WithBoundsCheck(false).
func WithLenientBounds() Option { return WithBoundsCheck(false) }

// gatherOptions applies opts on top of the defaults, skipping nil entries.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// BoundsCheck reports whether Set validates coordinates.
func (o Options) BoundsCheck() bool { return o.boundsCheck }
