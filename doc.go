// SPDX-License-Identifier: MIT

// Package lvnum is a small numeric toolkit built on Go generics: matrices
// whose shape lives in the type, and 1-D quadrature with pluggable rules.
//
// What is in the box?
//
//	matrix/                - Matrix[T, R, C]: elementwise arithmetic, products,
//	                         identity, bordered printing, determinant by
//	                         cofactor expansion
//	quadrature/            - Algorithm (integrand) + Integrator (rule) strategy
//	                         pair, Integrate, rule registry, convergence Study
//	quadrature/integrands/ - x^n, cos, sin, exp with closed-form integrals
//	cmd/lvnum/             - CLI: integrate, study (with chart), det, config
//
// Why shapes in types?
//
//   - A 2×3 and a 3×2 matrix are different types, so adding them, taking the
//     determinant of a non-square matrix or multiplying with mismatched
//     inner extents does not compile.
//   - Shapes are D1..D9 (or any type with a Size method); an extent ≤ 0 is
//     caught at construction with matrix.ErrInvalidDimensions.
//
// Quick example:
//
//	m, _ := matrix.FromRows[int, matrix.D2, matrix.D2]([][]int{{1, 2}, {3, 4}})
//	d, _ := matrix.Det(m) // -2
//
//	v, _ := quadrature.Integrate(0.0, 2.0, 100, integrands.Exp[float64](), quadrature.Simpson[float64])
//
// Everything is synchronous and single-goroutine; a *Matrix must not be
// mutated concurrently.
package lvnum
