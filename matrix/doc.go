// SPDX-License-Identifier: MIT

// Package matrix provides a fixed-shape, generic matrix type for small
// linear-algebra kernels.
//
// What & Why:
//
//	Matrix[T, R, C] stores R×C values of a numeric element type T in a flat
//	row-major buffer. R and C are shape types (see Dim), so the shape is part
//	of the Go type: adding a 2×3 to a 3×2 matrix, multiplying operands whose
//	inner dimensions differ, or asking for the determinant of a rectangular
//	matrix are all rejected by the compiler rather than at run time.
//
// Features:
//   - Constructors: New (zero fill), FromValues (row-major literal with
//     truncation diagnostics), FromRows (2D literal), FromGrid (adopts a
//     backing slice without copying), Identity.
//   - Checked element access: At/Set return ErrOutOfRange instead of panicking.
//   - Arithmetic: AddAssign/SubAssign/Scale in place, MulAssign for square
//     matrices, and the allocating Add, Sub, Mul, Transpose.
//   - Determinant by recursive Laplace (cofactor) expansion along row 0,
//     with closed forms for 1×1 and 2×2.
//   - Bordered text rendering through Print and fmt.Stringer.
//
// Diagnostics:
//
//	FromValues never fails on over-long input. It keeps the first R*C values
//	and reports the truncation on a *slog.Logger (WithLogger; slog.Default()
//	otherwise).
//
// Complexity:
//
//	At/Set O(1); Add/Sub/Scale O(R*C); Mul O(R*K*C); Det O(n!) - the cofactor
//	expansion is intended for the small shapes this package targets.
//
// Example:
//
//	m, _ := matrix.FromRows[int, matrix.D2, matrix.D2]([][]int{{1, 2}, {3, 4}})
//	d, _ := matrix.Det(m) // -2
package matrix
