// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (possibly wrapped) and
// tests MUST check them via errors.Is. No operation panics on user input.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Context is
// attached with fmt.Errorf("<op>: %w", ErrX) through matrixErrorf/denseErrorf;
// callers still match with errors.Is.

var (
	// ErrInvalidDimensions indicates that a shape type reports a non-positive size.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set/Row/Minor return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates that runtime input (rows of a 2D literal,
	// an adopted backing slice) does not match the static shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil or uninitialised Matrix (receiver or
	// argument) was used. The zero Matrix value is not usable; construct one
	// with New, FromValues, FromRows, FromGrid or Identity.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
