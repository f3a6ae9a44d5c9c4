// SPDX-License-Identifier: MIT

// Package matrix: element and shape constraints.
// This file contains ONLY the type-level vocabulary (Number, Dim and the
// predefined shape types). Storage lives in matrix.go.
package matrix

import "golang.org/x/exp/constraints"

// Number is the set of element types a Matrix may hold: every integer and
// floating-point type, including named types built on them.
type Number interface {
	constraints.Integer | constraints.Float
}

// Dim is a compile-time shape marker. The zero value of a Dim type reports
// the extent it stands for; the value itself is never stored.
//
// Declare extra extents the same way the predefined ones are declared:
//
//	type D12 struct{}
//
//	func (D12) Size() int { return 12 }
//
// A Dim whose Size is not positive is rejected by every constructor with
// ErrInvalidDimensions.
type Dim interface {
	Size() int
}

// Predefined extents 1 through 9.
type (
	D1 struct{}
	D2 struct{}
	D3 struct{}
	D4 struct{}
	D5 struct{}
	D6 struct{}
	D7 struct{}
	D8 struct{}
	D9 struct{}
)

func (D1) Size() int { return 1 }
func (D2) Size() int { return 2 }
func (D3) Size() int { return 3 }
func (D4) Size() int { return 4 }
func (D5) Size() int { return 5 }
func (D6) Size() int { return 6 }
func (D7) Size() int { return 7 }
func (D8) Size() int { return 8 }
func (D9) Size() int { return 9 }

// sizeOf reports the extent encoded by the shape type D.
func sizeOf[D Dim]() int {
	var d D

	return d.Size()
}
