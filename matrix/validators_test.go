// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateBinary covers nil pointers, zero values and valid operands.
func TestValidateBinary(t *testing.T) {
	t.Parallel()

	type m23 = matrix.Matrix[float64, matrix.D2, matrix.D3]
	fresh := func() *m23 { return MustNew[float64, matrix.D2, matrix.D3](t) }

	tests := []struct {
		name    string
		a, b    *m23
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, fresh(), matrix.ErrNilMatrix},
		{"second nil", fresh(), nil, matrix.ErrNilMatrix},
		{"zero value", &m23{}, fresh(), matrix.ErrNilMatrix},
		{"valid 2x3", fresh(), fresh(), nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinary(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateNotNil(MustNew[int, matrix.D1, matrix.D1](t)))
	require.ErrorIs(t, matrix.ValidateNotNil((*matrix.Matrix[int, matrix.D1, matrix.D1])(nil)), matrix.ErrNilMatrix)
}

// TestErrorMessages pins the operation tags carried by wrapped errors.
func TestErrorMessages(t *testing.T) {
	t.Parallel()

	m := MustNew[int, matrix.D2, matrix.D2](t)
	_, err := m.At(2, 0)
	require.EqualError(t, err, "Matrix.At(2,0): matrix: index out of range")

	_, err = matrix.Det((*matrix.Matrix[int, matrix.D2, matrix.D2])(nil))
	require.EqualError(t, err, "Det: ValidateNotNil: matrix: nil receiver")
}
