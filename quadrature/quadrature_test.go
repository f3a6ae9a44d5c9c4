// SPDX-License-Identifier: MIT
// Package quadrature_test contains unit tests for rules and Integrate.
package quadrature_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvnum/quadrature"
	"github.com/katalvlaran/lvnum/quadrature/integrands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/integrate/quad"
)

func identity() quadrature.Algorithm[float64] {
	return quadrature.Func("X", func(x float64) float64 { return x })
}

func TestRules_LinearOnTwoSteps(t *testing.T) {
	t.Parallel()

	// ∫_0^2 x dx with h = 1: left sum 0+1, right sum 1+2, midpoints .5+1.5.
	tests := []struct {
		name string
		rule quadrature.Integrator[float64]
		want float64
	}{
		{"first ordinate", quadrature.FirstOrdinate[float64], 1},
		{"last ordinate", quadrature.LastOrdinate[float64], 3},
		{"mid ordinate", quadrature.MidOrdinate[float64], 2},
		{"trapezium", quadrature.Trapezium[float64], 2},
		{"simpson", quadrature.Simpson[float64], 2},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := quadrature.Integrate[float64](0, 2, 2, identity(), tc.rule)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-15)
		})
	}
}

func TestFirstOrdinate_X4(t *testing.T) {
	t.Parallel()

	// 0.2^5 · Σ_{i<10} i^4 = 0.00032 · 15333.
	got, err := quadrature.Integrate[float64](0, 2, 10, integrands.Poly[float64](4), quadrature.FirstOrdinate[float64])
	require.NoError(t, err)
	assert.InDelta(t, 4.90656, got, 1e-9)
}

func TestSimpson_ExactOnCubics(t *testing.T) {
	t.Parallel()

	cubic := quadrature.Func("cubic", func(x float64) float64 { return 2*x*x*x - x*x + 3 })
	// F(x) = x^4/2 − x^3/3 + 3x on [−1, 2]: (8 − 8/3 + 6) − (1/2 + 1/3 − 3).
	want := (8 - 8.0/3 + 6) - (0.5 + 1.0/3 - 3)
	for _, n := range []int{1, 2, 7} {
		got, err := quadrature.Integrate[float64](-1, 2, n, cubic, quadrature.Simpson[float64])
		require.NoError(t, err)
		assert.InDeltaf(t, want, got, 1e-12, "n=%d", n)
	}
}

func TestTrapezium_SecondOrderConvergence(t *testing.T) {
	t.Parallel()

	x4 := integrands.Poly[float64](4)
	errAt := func(n int) float64 {
		got, err := quadrature.Integrate[float64](0, 2, n, x4, quadrature.Trapezium[float64])
		require.NoError(t, err)

		return math.Abs(got - x4.Exact())
	}
	ratio := errAt(10) / errAt(100)
	assert.InDelta(t, 100, ratio, 2, "error should shrink ~h²")
}

func TestWeighted(t *testing.T) {
	t.Parallel()

	exp := integrands.Exp[float64]()
	simpson, err := quadrature.Integrate[float64](0, 2, 10, exp, quadrature.Simpson[float64])
	require.NoError(t, err)
	third, err := quadrature.Integrate[float64](0, 2, 10, exp, quadrature.Weighted(1.0/3))
	require.NoError(t, err)
	assert.InDelta(t, simpson, third, 1e-12)

	mid, err := quadrature.Integrate[float64](0, 2, 10, exp, quadrature.MidOrdinate[float64])
	require.NoError(t, err)
	w0, err := quadrature.Integrate[float64](0, 2, 10, exp, quadrature.Weighted(0.0))
	require.NoError(t, err)
	assert.InDelta(t, mid, w0, 1e-12)

	trap, err := quadrature.Integrate[float64](0, 2, 10, exp, quadrature.Trapezium[float64])
	require.NoError(t, err)
	w1, err := quadrature.Integrate[float64](0, 2, 10, exp, quadrature.Weighted(1.0))
	require.NoError(t, err)
	assert.InDelta(t, trap, w1, 1e-12)
}

func TestIntegrate_AgreesWithGonum(t *testing.T) {
	t.Parallel()

	for _, in := range integrands.Reference[float64]() {
		want := quad.Fixed(in.Execute, in.A, in.B, 20, nil, 0)
		got, err := quadrature.Integrate[float64](in.A, in.B, 1000, in, quadrature.Simpson[float64])
		require.NoError(t, err)
		assert.Truef(t, scalar.EqualWithinAbsOrRel(got, want, 1e-10, 1e-10),
			"%s: simpson %v, gauss-legendre %v", in.Name(), got, want)
	}
}

func TestIntegrate_ReversedBounds(t *testing.T) {
	t.Parallel()

	fwd, err := quadrature.Integrate[float64](0, 2, 50, integrands.Cos[float64](), quadrature.Trapezium[float64])
	require.NoError(t, err)
	rev, err := quadrature.Integrate[float64](2, 0, 50, integrands.Cos[float64](), quadrature.Trapezium[float64])
	require.NoError(t, err)
	assert.InDelta(t, -fwd, rev, 1e-12)
}

func TestIntegrate_Float32(t *testing.T) {
	t.Parallel()

	got, err := quadrature.Integrate[float32](0, 2, 100, integrands.Poly[float32](4), quadrature.Simpson[float32])
	require.NoError(t, err)
	assert.InDelta(t, 6.4, float64(got), 1e-4)
}

func TestIntegrate_Errors(t *testing.T) {
	t.Parallel()

	_, err := quadrature.Integrate[float64](0, 1, 0, identity(), quadrature.Trapezium[float64])
	assert.ErrorIs(t, err, quadrature.ErrNoIntervals)
	_, err = quadrature.Integrate[float64](0, 1, -3, identity(), quadrature.Trapezium[float64])
	assert.ErrorIs(t, err, quadrature.ErrNoIntervals)

	_, err = quadrature.Integrate[float64](0, 1, 4, nil, quadrature.Trapezium[float64])
	assert.ErrorIs(t, err, quadrature.ErrNilAlgorithm)
	_, err = quadrature.Integrate[float64](0, 1, 4, quadrature.Func[float64]("nil", nil), quadrature.Trapezium[float64])
	assert.ErrorIs(t, err, quadrature.ErrNilAlgorithm)

	_, err = quadrature.Integrate[float64](0, 1, 4, identity(), nil)
	assert.ErrorIs(t, err, quadrature.ErrNilIntegrator)

	_, err = quadrature.Integrate[float64](math.Inf(-1), 1, 4, identity(), quadrature.Trapezium[float64])
	assert.ErrorIs(t, err, quadrature.ErrNonFiniteBounds)
	_, err = quadrature.Integrate[float64](0, math.NaN(), 4, identity(), quadrature.Trapezium[float64])
	assert.ErrorIs(t, err, quadrature.ErrNonFiniteBounds)
}

func TestLookup(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		"first-ordinate", "last-ordinate", "mid-ordinate", "trapezium", "simpson", "weighted-mo-trap",
	}, quadrature.RuleNames())

	r, err := quadrature.Lookup[float64]("simpson")
	require.NoError(t, err)
	assert.Equal(t, "Simpson", r.Label)
	got, err := quadrature.Integrate[float64](0, 2, 1, identity(), r.Rule)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, 1e-15)

	for _, nr := range quadrature.Rules[float64]() {
		assert.NotNilf(t, nr.Rule, "rule %s", nr.Name)
	}

	_, err = quadrature.Lookup[float64]("romberg")
	assert.ErrorIs(t, err, quadrature.ErrUnknownRule)
}

func TestWithLogger_PanicsOnNil(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { _ = quadrature.WithLogger(nil) })
}
