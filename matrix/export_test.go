// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes a read-only view of the resolved Options to
// matrix_test without widening the production API.

import "log/slog"

// OptionsSnapshot mirrors the unexported Options fields.
type OptionsSnapshot struct {
	Logger           *slog.Logger
	ReportTruncation bool
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly like constructors do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Logger: o.logger, ReportTruncation: o.reportTruncation}
}

// ExportedDet exposes the flat cofactor kernel.
var ExportedDet = det[float64]
