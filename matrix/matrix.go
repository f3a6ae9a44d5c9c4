// SPDX-License-Identifier: MIT

// Package matrix - storage (row-major) & constructors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the index formula i*cols + j.
//   - Keep the shape in the type: R and C are Dim types resolved once per call.
//   - Offer the constructor family New / FromValues / FromRows / FromGrid / Identity.
//
// Complexity quicksheet:
//   - New, FromValues, FromRows, Identity: O(R*C); FromGrid: O(1).

package matrix

import (
	"fmt"
	"log/slog"
)

// ---------- error context tags ----------

const (
	opNew        = "New"
	opFromValues = "FromValues"
	opFromRows   = "FromRows"
	opFromGrid   = "FromGrid"
	opIdentity   = "Identity"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Matrix is an R×C matrix of T stored row-major.
//   - R and C are shape types; the extents are never stored in the value.
//   - data is a flat buffer of length R*C (offset = i*C + j).
//
// Use a *Matrix obtained from a constructor. Assigning a Matrix value copies
// the slice header only; call Clone for an independent copy.
type Matrix[T Number, R, C Dim] struct {
	data []T // contiguous row-major storage (len == R*C)
}

// New creates a zero-filled R×C matrix.
//
// Errors:
//   - ErrInvalidDimensions when R or C reports a non-positive size.
//
// Complexity:
//   - Time O(R*C), Space O(R*C).
func New[T Number, R, C Dim]() (*Matrix[T, R, C], error) {
	rows, cols, err := shapeOf[R, C]()
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	// make() zero-fills deterministically.
	return &Matrix[T, R, C]{data: make([]T, rows*cols)}, nil
}

// FromValues builds an R×C matrix from a flat row-major sequence.
// MAIN DESCRIPTION:
//   - values fill the matrix left to right, top to bottom.
//
// Implementation:
//   - Stage 1: validate the shape and allocate a zero matrix.
//   - Stage 2: if len(values) > R*C, keep the first R*C values and emit a
//     Warn record on the configured logger (never an error).
//   - Stage 3: copy the kept prefix; trailing cells stay zero when the input
//     is shorter than R*C.
//
// Inputs:
//   - values: row-major data; nil or empty yields the zero matrix.
//   - opts: WithLogger / WithTruncationReport.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(R*C), Space O(R*C).
//
// Notes:
//   - The input slice is copied; later changes to values do not leak in.
func FromValues[T Number, R, C Dim](values []T, opts ...Option) (*Matrix[T, R, C], error) {
	rows, cols, err := shapeOf[R, C]()
	if err != nil {
		return nil, matrixErrorf(opFromValues, err)
	}
	o := gatherOptions(opts...)

	capacity := rows * cols
	kept := len(values)
	if kept > capacity {
		if o.reportTruncation {
			o.logger.Warn("matrix: truncating literal values",
				slog.Int("given", kept),
				slog.Int("capacity", capacity),
				slog.String("shape", fmt.Sprintf("%dx%d", rows, cols)),
			)
		}
		kept = capacity
	}

	m := &Matrix[T, R, C]{data: make([]T, capacity)}
	copy(m.data, values[:kept])

	return m, nil
}

// FromRows builds an R×C matrix from a 2D literal.
// There must be exactly R rows of exactly C values each.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//   - ErrDimensionMismatch when the literal does not match R×C.
//
// Complexity:
//   - Time O(R*C), Space O(R*C).
func FromRows[T Number, R, C Dim](rows [][]T) (*Matrix[T, R, C], error) {
	r, c, err := shapeOf[R, C]()
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	if len(rows) != r {
		return nil, matrixErrorf(opFromRows, fmt.Errorf("got %d rows, want %d: %w", len(rows), r, ErrDimensionMismatch))
	}

	m := &Matrix[T, R, C]{data: make([]T, r*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), c, ErrDimensionMismatch))
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// FromGrid adopts grid as the row-major backing storage without copying.
// The caller hands over ownership: grid must not be used afterwards, since
// every mutation of the matrix is visible through it and vice versa.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//   - ErrDimensionMismatch when len(grid) != R*C.
//
// Complexity:
//   - Time O(1), Space O(1).
func FromGrid[T Number, R, C Dim](grid []T) (*Matrix[T, R, C], error) {
	rows, cols, err := shapeOf[R, C]()
	if err != nil {
		return nil, matrixErrorf(opFromGrid, err)
	}
	if len(grid) != rows*cols {
		return nil, matrixErrorf(opFromGrid, fmt.Errorf("got %d values, want %d: %w", len(grid), rows*cols, ErrDimensionMismatch))
	}

	return &Matrix[T, R, C]{data: grid}, nil
}

// Identity returns the R×C matrix with 1 where row == col and 0 elsewhere.
// Rectangular shapes get the diagonal as far as it reaches.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(R*C), Space O(R*C).
func Identity[T Number, R, C Dim]() (*Matrix[T, R, C], error) {
	m, err := New[T, R, C]()
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows && i < cols; i++ {
		m.data[i*cols+i] = 1
	}

	return m, nil
}
