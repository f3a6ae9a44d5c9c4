// SPDX-License-Identifier: MIT

package quadrature

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every message is prefixed with "quadrature: ". Context
// (operation, rule name, step count) is added by wrapping with %w.
var (
	// ErrNoIntervals indicates a step count that is not positive.
	ErrNoIntervals = errors.New("quadrature: number of intervals must be > 0")

	// ErrNilAlgorithm indicates a missing integrand.
	ErrNilAlgorithm = errors.New("quadrature: nil algorithm")

	// ErrNilIntegrator indicates a missing rule.
	ErrNilIntegrator = errors.New("quadrature: nil integrator")

	// ErrNonFiniteBounds indicates a NaN or infinite integration limit.
	ErrNonFiniteBounds = errors.New("quadrature: bounds must be finite")

	// ErrUnknownRule is returned by Lookup for a name not in Rules.
	ErrUnknownRule = errors.New("quadrature: unknown rule")
)

// quadErrorf wraps err with an operation tag.
func quadErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
