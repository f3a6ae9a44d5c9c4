// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for constructors and kernels.
//   • Keep boilerplate (error checks) out of the test bodies.

package matrix_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/stretchr/testify/require"
)

// D0 is a deliberately invalid extent used to exercise ErrInvalidDimensions.
type D0 struct{}

func (D0) Size() int { return 0 }

// MustRows builds an R×C matrix from a 2D literal or fails the test.
func MustRows[T matrix.Number, R, C matrix.Dim](t testing.TB, rows [][]T) *matrix.Matrix[T, R, C] {
	t.Helper()
	m, err := matrix.FromRows[T, R, C](rows)
	require.NoError(t, err)

	return m
}

// MustNew allocates a zero R×C matrix or fails the test.
func MustNew[T matrix.Number, R, C matrix.Dim](t testing.TB) *matrix.Matrix[T, R, C] {
	t.Helper()
	m, err := matrix.New[T, R, C]()
	require.NoError(t, err)

	return m
}

// MustIdentity returns the identity of the given shape or fails the test.
func MustIdentity[T matrix.Number, R, C matrix.Dim](t testing.TB) *matrix.Matrix[T, R, C] {
	t.Helper()
	m, err := matrix.Identity[T, R, C]()
	require.NoError(t, err)

	return m
}

// RandomFill fills m with deterministic pseudo-random integers in [-9, 9]
// converted to T, so float and int matrices see the same data for a seed.
func RandomFill[T matrix.Number, R, C matrix.Dim](t testing.TB, m *matrix.Matrix[T, R, C], seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows, cols := m.Shape()
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			require.NoError(t, m.Set(i, j, T(rng.Intn(19)-9)))
		}
	}
}

// RequireRows asserts that m holds exactly the 2D literal want.
func RequireRows[T matrix.Number, R, C matrix.Dim](t testing.TB, want [][]T, m *matrix.Matrix[T, R, C]) {
	t.Helper()
	rows, cols := m.Shape()
	require.Len(t, want, rows)
	var i int
	for i = 0; i < rows; i++ {
		require.Len(t, want[i], cols)
		got, err := m.Row(i)
		require.NoError(t, err)
		require.Equalf(t, want[i], got, "row %d", i)
	}
}

// logRecorder captures slog records as decoded JSON objects.
type logRecorder struct {
	buf bytes.Buffer
}

func (r *logRecorder) Logger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(&r.buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Records decodes every line written so far.
func (r *logRecorder) Records(t testing.TB) []map[string]any {
	t.Helper()
	var out []map[string]any
	dec := json.NewDecoder(bytes.NewReader(r.buf.Bytes()))
	for dec.More() {
		rec := map[string]any{}
		require.NoError(t, dec.Decode(&rec))
		out = append(out, rec)
	}

	return out
}
