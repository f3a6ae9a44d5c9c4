// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels on Matrix: products,
// transpose, trace and the determinant by cofactor expansion.
//
// Purpose:
//   - Encode the square/inner-dimension requirements in type parameters so
//     misuse is a compile error.
//   - Keep every kernel deterministic: fixed loop orders, no map iteration.
//
// Notes:
//   - Kernels operate on the flat row-major buffers directly.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opMulAssign = "MulAssign"
	opTranspose = "Transpose"
	opTrace     = "Trace"
	opDet       = "Det"
	opMinor     = "Minor"
	opCofactor  = "Cofactor"
)

// mulInto accumulates the product a(rows×inner) · b(inner×cols) into dst.
// dst must be zeroed and must not alias a or b.
// Loop order i→k→j keeps both b and dst walks contiguous.
func mulInto[T Number](dst, a, b []T, rows, inner, cols int) {
	var i, j, k, rowA, rowB, rowD int
	var av T
	for i = 0; i < rows; i++ {
		rowA = i * inner
		rowD = i * cols
		for k = 0; k < inner; k++ {
			av = a[rowA+k]
			rowB = k * cols
			for j = 0; j < cols; j++ {
				dst[rowD+j] += av * b[rowB+j]
			}
		}
	}
}

// Mul performs standard matrix multiplication A(R×K) · B(K×C) = (R×C).
// Any R, K, C are accepted; the shared inner extent K is enforced by the
// type parameters.
//
// Errors:
//   - ErrNilMatrix (nil input).
//
// Complexity:
//   - Time O(R*K*C), Space O(R*C).
func Mul[T Number, R, K, C Dim](a *Matrix[T, R, K], b *Matrix[T, K, C]) (*Matrix[T, R, C], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out, err := New[T, R, C]()
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	mulInto(out.data, a.data, b.data, a.Rows(), a.Cols(), b.Cols())

	return out, nil
}

// MulAssign replaces m with the product m · o for square matrices.
// MAIN DESCRIPTION:
//   - The product is built in a temporary buffer and committed afterwards,
//     since every output cell still needs original values of m. Passing the
//     same matrix twice (MulAssign(m, m)) therefore squares m.
//
// Errors:
//   - ErrNilMatrix (nil input).
//
// Complexity:
//   - Time O(n³), Space O(n²) for the temporary.
//
// Notes:
//   - The commit copies into m's existing buffer, so a grid adopted through
//     FromGrid keeps observing the matrix.
func MulAssign[T Number, N Dim](m, o *Matrix[T, N, N]) error {
	if err := ValidateBinary(m, o); err != nil {
		return matrixErrorf(opMulAssign, err)
	}
	n := m.Rows()
	tmp := make([]T, n*n)
	mulInto(tmp, m.data, o.data, n, n, n)
	copy(m.data, tmp)

	return nil
}

// Transpose returns a new C×R matrix with rows and columns swapped.
//
// Errors:
//   - ErrNilMatrix (nil input).
//
// Complexity:
//   - Time O(R*C), Space O(R*C).
func Transpose[T Number, R, C Dim](m *Matrix[T, R, C]) (*Matrix[T, C, R], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, err := New[T, C, R]()
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Shape()
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			out.data[j*rows+i] = m.data[i*cols+j]
		}
	}

	return out, nil
}

// Trace returns the sum of the main diagonal of a square matrix.
func Trace[T Number, N Dim](m *Matrix[T, N, N]) (T, error) {
	var sum T
	if err := ValidateNotNil(m); err != nil {
		return sum, matrixErrorf(opTrace, err)
	}
	n := m.Rows()
	for i := 0; i < n; i++ {
		sum += m.data[i*n+i]
	}

	return sum, nil
}

// Det returns the determinant of a square matrix.
// MAIN DESCRIPTION:
//   - n = 1: the single element.
//   - n = 2: a00·a11 − a01·a10.
//   - n > 2: Laplace expansion along row 0,
//     det(A) = Σ_col (−1)^col · A[0,col] · det(minor(0,col)).
//
// Errors:
//   - ErrNilMatrix (nil input).
//
// Determinism:
//   - Columns are expanded left to right; integer T gives exact results.
//
// Complexity:
//   - Time O(n!), Space O(n²) live at any recursion depth n.
//
// Notes:
//   - The factorial cost is accepted for the small shapes this package
//     targets (D1..D9); there is no pivoting or row reduction.
func Det[T Number, N Dim](m *Matrix[T, N, N]) (T, error) {
	if err := ValidateNotNil(m); err != nil {
		var zero T

		return zero, matrixErrorf(opDet, err)
	}

	return det(m.data, m.Rows()), nil
}

// det is the recursive cofactor expansion over a flat n×n buffer.
// The minor buffer belongs to this call and is reused across columns.
func det[T Number](a []T, n int) T {
	switch n {
	case 0:
		return 1 // empty product; makes Cofactor well defined for 1×1
	case 1:
		return a[0]
	case 2:
		return a[0]*a[3] - a[1]*a[2]
	}

	var total, term T
	sub := make([]T, (n-1)*(n-1))
	for col := 0; col < n; col++ {
		minorInto(sub, a, n, 0, col)
		term = a[col] * det(sub, n-1)
		if col%2 == 0 {
			total += term
		} else {
			total -= term
		}
	}

	return total
}

// minorInto writes into dst the (n−1)×(n−1) matrix left after deleting
// row skipRow and column skipCol from the n×n buffer a, keeping order.
func minorInto[T Number](dst, a []T, n, skipRow, skipCol int) {
	k := 0
	for i := 0; i < n; i++ {
		if i == skipRow {
			continue
		}
		for j := 0; j < n; j++ {
			if j == skipCol {
				continue
			}
			dst[k] = a[i*n+j]
			k++
		}
	}
}

// Minor returns, row-major, the (n−1)×(n−1) values left after deleting
// row and col from m. The minor of a 1×1 matrix is empty.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrOutOfRange (bad row/col).
func Minor[T Number, N Dim](m *Matrix[T, N, N], row, col int) ([]T, error) {
	if _, err := m.indexOf(row, col); err != nil {
		return nil, matrixErrorf(opMinor, fmt.Errorf("(%d,%d): %w", row, col, err))
	}
	n := m.Rows()
	out := make([]T, (n-1)*(n-1))
	minorInto(out, m.data, n, row, col)

	return out, nil
}

// Cofactor returns (−1)^(row+col) · det(Minor(m, row, col)).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrOutOfRange (bad row/col).
func Cofactor[T Number, N Dim](m *Matrix[T, N, N], row, col int) (T, error) {
	sub, err := Minor(m, row, col)
	if err != nil {
		var zero T

		return zero, matrixErrorf(opCofactor, err)
	}
	d := det(sub, m.Rows()-1)
	if (row+col)%2 == 1 {
		return -d, nil
	}

	return d, nil
}
