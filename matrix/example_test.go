// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvnum/matrix"
)

// ExampleDet computes a 3×3 determinant by cofactor expansion.
func ExampleDet() {
	m, _ := matrix.FromRows[int, matrix.D3, matrix.D3]([][]int{
		{6, 1, 1},
		{4, -2, 5},
		{2, 8, 7},
	})
	d, _ := matrix.Det(m)
	fmt.Println(d)
	// Output:
	// -306
}

// ExampleMul multiplies a 2×3 by a 3×2; the result type is 2×2.
func ExampleMul() {
	a, _ := matrix.FromValues[int, matrix.D2, matrix.D3]([]int{1, 2, 3, 4, 5, 6})
	b, _ := matrix.FromValues[int, matrix.D3, matrix.D2]([]int{7, 8, 9, 10, 11, 12})
	p, _ := matrix.Mul(a, b)
	fmt.Println(p.Values())
	// Output:
	// [58 64 139 154]
}

// ExampleMatrix_Print shows the bordered rendering.
func ExampleMatrix_Print() {
	m, _ := matrix.FromRows[int, matrix.D2, matrix.D2]([][]int{{1, -2}, {3, 4}})
	_ = m.Print(os.Stdout)
	// Output:
	// --   --
	// | 1-2 |
	// | 3 4 |
	// --   --
}

// ExampleMatrix_AddAssign accumulates one matrix into another.
func ExampleMatrix_AddAssign() {
	m, _ := matrix.FromRows[float64, matrix.D1, matrix.D2]([][]float64{{1, 2}})
	o, _ := matrix.FromRows[float64, matrix.D1, matrix.D2]([][]float64{{0.5, 0.25}})
	_ = m.AddAssign(o)
	fmt.Println(m.Values())
	// Output:
	// [1.5 2.25]
}
