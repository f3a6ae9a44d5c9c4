// SPDX-License-Identifier: MIT

// Package matrix - shape queries & safe accessors.
//
// Purpose:
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep read and write paths separate (At copies out, Set writes in).

package matrix

import "fmt"

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// elementErrorf wraps an error with a uniform Matrix context and callsite indices.
func elementErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Rows returns R. It does not touch the receiver and is safe on nil.
func (m *Matrix[T, R, C]) Rows() int { return sizeOf[R]() }

// Cols returns C. It does not touch the receiver and is safe on nil.
func (m *Matrix[T, R, C]) Cols() int { return sizeOf[C]() }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix[T, R, C]) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// indexOf bounds-checks (row, col) and returns the row-major offset.
// Errors: ErrNilMatrix, ErrOutOfRange (plain sentinels; callers wrap).
// Complexity: O(1).
func (m *Matrix[T, R, C]) indexOf(row, col int) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, err
	}
	cols := m.Cols()
	if err := validateIndex(row, col, m.Rows(), cols); err != nil {
		return 0, err
	}

	return row*cols + col, nil
}

// At returns the value at (row, col).
//
// Errors:
//   - ErrOutOfRange when row ∉ [0,R) or col ∉ [0,C).
//   - ErrNilMatrix on a nil or zero receiver.
//
// Complexity: O(1).
func (m *Matrix[T, R, C]) At(row, col int) (T, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		var zero T

		return zero, elementErrorf(ctxAt, row, col, err)
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
//
// Errors:
//   - ErrOutOfRange when row ∉ [0,R) or col ∉ [0,C).
//   - ErrNilMatrix on a nil or zero receiver.
//
// Complexity: O(1).
func (m *Matrix[T, R, C]) Set(row, col int, v T) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return elementErrorf(ctxSet, row, col, err)
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
func (m *Matrix[T, R, C]) Row(i int) ([]T, error) {
	if _, err := m.indexOf(i, 0); err != nil {
		return nil, elementErrorf(ctxRow, i, 0, err)
	}
	cols := m.Cols()
	out := make([]T, cols)
	copy(out, m.data[i*cols:(i+1)*cols])

	return out, nil
}

// Values returns a row-major copy of every cell, or nil for a nil receiver.
func (m *Matrix[T, R, C]) Values() []T {
	if m == nil || m.data == nil {
		return nil
	}
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Clear resets every cell to zero in place. No-op on a nil receiver.
func (m *Matrix[T, R, C]) Clear() {
	if m == nil {
		return
	}
	clear(m.data)
}

// Clone returns a deep copy; the result shares no storage with m.
// Returns nil for a nil receiver.
func (m *Matrix[T, R, C]) Clone() *Matrix[T, R, C] {
	if m == nil {
		return nil
	}

	return &Matrix[T, R, C]{data: m.Values()}
}

// Equal reports whether m and o hold exactly the same values.
// Two nil matrices are equal; a nil and a non-nil one are not.
// For floating-point T, NaN cells are never equal.
func (m *Matrix[T, R, C]) Equal(o *Matrix[T, R, C]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if len(m.data) != len(o.data) {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}
