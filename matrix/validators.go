// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/index checks here.
//  - Return sentinel errors wrapped with a validator tag so call sites can
//    wrap once more with the operation name.
//
// Note:
//  - Shape agreement between operands is a compile-time property of
//    Matrix[T, R, C]; validators only cover what the type system cannot see.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeOf resolves the extents of R and C and validates them.
// Errors: ErrInvalidDimensions when either extent is not positive.
// Complexity: O(1).
func shapeOf[R, C Dim]() (rows, cols int, err error) {
	rows, cols = sizeOf[R](), sizeOf[C]()
	if rows <= 0 || cols <= 0 {
		return 0, 0, validatorErrorf("ValidateShape", fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions))
	}

	return rows, cols, nil
}

// ValidateNotNil ensures m is non-nil and carries storage for its shape.
//
// Errors: ErrNilMatrix for a nil pointer or a zero Matrix value.
// Complexity: O(1).
func ValidateNotNil[T Number, R, C Dim](m *Matrix[T, R, C]) error {
	if m == nil || m.data == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateBinary is the composite NotNil(a) → NotNil(b) check used by
// two-operand kernels. Shapes already agree by construction of the types.
func ValidateBinary[T Number, R, C Dim](a, b *Matrix[T, R, C]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}

	return nil
}

// validateIndex checks 0 ≤ row < rows and 0 ≤ col < cols.
func validateIndex(row, col, rows, cols int) error {
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return ErrOutOfRange
	}

	return nil
}
