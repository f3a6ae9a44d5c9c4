// SPDX-License-Identifier: MIT

// Command lvnum exercises the lvnum packages from the shell: quadrature
// estimates, the rule convergence study and small determinants.
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("lvnum failed", "error", err)
		os.Exit(1)
	}
}
