// SPDX-License-Identifier: MIT

// Package integrands provides reference integrands with closed-form
// definite integrals, for exercising quadrature rules.
//
// Each constructor returns an Integral over the default interval [0, 2];
// Over moves it. Exact is computed from the antiderivative, so it stays
// correct for any bounds.
package integrands

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvnum/quadrature"
)

// Default integration limits.
const (
	DefaultA = 0.0
	DefaultB = 2.0
)

// ErrUnknownIntegrand is returned by ByName for an unrecognised name.
var ErrUnknownIntegrand = errors.New("integrands: unknown integrand")

// Integral is a definite integral ∫_A^B f(x)dx with a known value.
type Integral[T quadrature.Float] struct {
	quadrature.Algorithm[T]
	A, B T

	antiderivative func(float64) float64
}

// Over returns a copy of in with limits [a, b].
func (in Integral[T]) Over(a, b T) Integral[T] {
	in.A, in.B = a, b

	return in
}

// Exact returns F(B) − F(A).
func (in Integral[T]) Exact() T {
	return T(in.antiderivative(float64(in.B)) - in.antiderivative(float64(in.A)))
}

// Case converts in to a quadrature study case.
func (in Integral[T]) Case() quadrature.Case[T] {
	return quadrature.Case[T]{Algorithm: in.Algorithm, Start: in.A, Finish: in.B, Exact: in.Exact()}
}

func newIntegral[T quadrature.Float](name string, f, antiderivative func(float64) float64) Integral[T] {
	return Integral[T]{
		Algorithm:      quadrature.Func(name, func(x T) T { return T(f(float64(x))) }),
		A:              DefaultA,
		B:              DefaultB,
		antiderivative: antiderivative,
	}
}

// Poly returns ∫ x^degree dx, named "X^degree". degree must be ≥ 0.
func Poly[T quadrature.Float](degree int) Integral[T] {
	d := float64(degree)

	return newIntegral[T](fmt.Sprintf("X^%d", degree),
		func(x float64) float64 { return math.Pow(x, d) },
		func(x float64) float64 { return math.Pow(x, d+1) / (d + 1) },
	)
}

// Cos returns ∫ cos(x) dx.
func Cos[T quadrature.Float]() Integral[T] {
	return newIntegral[T]("COS", math.Cos, math.Sin)
}

// Sin returns ∫ sin(x) dx.
func Sin[T quadrature.Float]() Integral[T] {
	return newIntegral[T]("SIN", math.Sin, func(x float64) float64 { return -math.Cos(x) })
}

// Exp returns ∫ e^x dx.
func Exp[T quadrature.Float]() Integral[T] {
	return newIntegral[T]("EXP", math.Exp, math.Exp)
}

// Reference returns the classic comparison set: x^4, x^5, cos and exp
// over [0, 2].
func Reference[T quadrature.Float]() []Integral[T] {
	return []Integral[T]{Poly[T](4), Poly[T](5), Cos[T](), Exp[T]()}
}

// ByName resolves "x^N" (N ≥ 0), "cos", "sin" or "exp", case-insensitively.
func ByName[T quadrature.Float](name string) (Integral[T], error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "cos":
		return Cos[T](), nil
	case "sin":
		return Sin[T](), nil
	case "exp":
		return Exp[T](), nil
	}
	if rest, ok := strings.CutPrefix(key, "x^"); ok {
		deg, err := strconv.Atoi(rest)
		if err == nil && deg >= 0 {
			return Poly[T](deg), nil
		}
	}

	return Integral[T]{}, fmt.Errorf("ByName(%q): %w", name, ErrUnknownIntegrand)
}
