// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults,
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - No global state: the diagnostic logger is resolved per call, so a later
//     slog.SetDefault is honoured.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "log/slog"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultReportTruncation controls whether FromValues logs when it drops
	// input beyond R*C values.
	DefaultReportTruncation = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilLogger = "matrix: WithLogger: logger must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	logger           *slog.Logger // nil ⇒ slog.Default() at use time
	reportTruncation bool         // DefaultReportTruncation
}

// WithLogger routes construction diagnostics to l.
// Panics when l is nil.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithTruncationReport toggles the truncation diagnostic of FromValues.
// Truncation itself always happens; only the log record is affected.
func WithTruncationReport(enabled bool) Option {
	return func(o *Options) { o.reportTruncation = enabled }
}

// gatherOptions applies opts over the documented defaults.
// Implementation:
//   - Stage 1: start from defaults.
//   - Stage 2: apply setters in order (last writer wins).
//   - Stage 3: resolve a nil logger to slog.Default().
func gatherOptions(opts ...Option) Options {
	o := Options{reportTruncation: DefaultReportTruncation}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o
}
