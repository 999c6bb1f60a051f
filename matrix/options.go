// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense and Grid construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public constructors consume ...Option.
//
// Notes:
//   - The numeric policy is per-instance and fixed at construction. Clone and
//     conversions carry it over.
//   - The default accepts any float64 in Set, so set(v) followed by At returns
//     v for every v (NaN compares unequal to itself, which is the caller's concern).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation in Set/Fill/Apply.
	DefaultValidateNaNInf = false
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithFiniteOnly makes Set, Fill and Apply reject NaN and ±Inf with ErrNaNInf.
// Complexity: O(1).
func WithFiniteOnly() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithAnyFloat disables NaN/Inf validation (the default).
func WithAnyFloat() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// defaultOptions returns Options populated with documented defaults.
func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies opts over defaults in order; nil options are skipped.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
