// SPDX-License-Identifier: MIT

// Package quadrature: functional configuration for Study.
//   - No global state: a nil logger resolves to slog.Default() per call.
//   - Panic only on invalid parameters (programmer error).
package quadrature

import "log/slog"

const panicNilLogger = "quadrature: WithLogger: logger must be non-nil"

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	logger *slog.Logger // nil ⇒ slog.Default() at use time
}

// WithLogger routes per-result debug records of Study to l.
// Panics when l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

func gatherOptions(opts ...Option) Options {
	var o Options
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
