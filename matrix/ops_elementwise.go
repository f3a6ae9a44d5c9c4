// SPDX-License-Identifier: MIT
// Package matrix: element-wise kernels.
//
// Purpose:
//   - In-place accumulation (AddAssign/SubAssign) and scaling (Scale).
//   - Allocating facades Add/Sub that never mutate their operands.
//
// Notes:
//   - Operands share R and C by type, so there is no runtime shape check;
//     only nil/uninitialised operands are rejected.

package matrix

const (
	opAddAssign = "AddAssign"
	opSubAssign = "SubAssign"
	opScale     = "Scale"
	opAdd       = "Add"
	opSub       = "Sub"
)

// accumulate computes m = m ± o in place.
// Implementation:
//   - Stage 1: ValidateBinary(m, o).
//   - Stage 2: aliasing guard: when o is m the receiver is left unchanged.
//   - Stage 3: single flat loop 0..n-1.
//
// Complexity:
//   - Time O(R*C), Space O(1).
func (m *Matrix[T, R, C]) accumulate(o *Matrix[T, R, C], subtract bool, tag string) error {
	if err := ValidateBinary(m, o); err != nil {
		return matrixErrorf(tag, err)
	}
	if m == o {
		return nil
	}

	if subtract {
		for i := range m.data {
			m.data[i] -= o.data[i]
		}

		return nil
	}
	for i := range m.data {
		m.data[i] += o.data[i]
	}

	return nil
}

// AddAssign adds o to m element-wise in place (m += o).
// Passing m itself is a guarded no-op: m.AddAssign(m) leaves m unchanged.
// Use Add(m, m) for the doubled value.
//
// Errors:
//   - ErrNilMatrix (nil receiver or operand).
func (m *Matrix[T, R, C]) AddAssign(o *Matrix[T, R, C]) error {
	return m.accumulate(o, false, opAddAssign)
}

// SubAssign subtracts o from m element-wise in place (m -= o).
// Passing m itself is a guarded no-op, mirroring AddAssign.
//
// Errors:
//   - ErrNilMatrix (nil receiver or operand).
func (m *Matrix[T, R, C]) SubAssign(o *Matrix[T, R, C]) error {
	return m.accumulate(o, true, opSubAssign)
}

// Scale multiplies every element by t in place (m *= t).
//
// Errors:
//   - ErrNilMatrix (nil receiver).
//
// Complexity:
//   - Time O(R*C), Space O(1).
func (m *Matrix[T, R, C]) Scale(t T) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opScale, err)
	}
	for i := range m.data {
		m.data[i] *= t
	}

	return nil
}

// addSub clones a and accumulates b into the clone.
// Because the clone is a distinct matrix, Add(a, a) yields 2a.
func addSub[T Number, R, C Dim](a, b *Matrix[T, R, C], subtract bool, tag string) (*Matrix[T, R, C], error) {
	if err := ValidateBinary(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out := a.Clone()
	if err := out.accumulate(b, subtract, tag); err != nil {
		return nil, err
	}

	return out, nil
}

// Add computes the element-wise sum A + B and returns a fresh matrix.
// Inputs are never mutated.
//
// Errors:
//   - ErrNilMatrix (nil input).
//
// Complexity:
//   - Time O(R*C), Space O(R*C).
func Add[T Number, R, C Dim](a, b *Matrix[T, R, C]) (*Matrix[T, R, C], error) {
	return addSub(a, b, false, opAdd)
}

// Sub computes the element-wise difference A - B and returns a fresh matrix.
// Inputs are never mutated.
//
// Errors:
//   - ErrNilMatrix (nil input).
//
// Complexity:
//   - Time O(R*C), Space O(R*C).
func Sub[T Number, R, C Dim](a, b *Matrix[T, R, C]) (*Matrix[T, R, C], error) {
	return addSub(a, b, true, opSub)
}
