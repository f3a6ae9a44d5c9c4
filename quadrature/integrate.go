// SPDX-License-Identifier: MIT

package quadrature

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opIntegrate = "Integrate"
	opStudy     = "Study"
	opLookup    = "Lookup"
)

// Integrate approximates ∫_start^finish a(x) dx with n equal steps of rule.
// MAIN DESCRIPTION:
//   - h = (finish − start)/n; x starts at start.
//   - n times: sum += rule(x, h, a); x += h.
//   - finish < start gives a negative step, hence the negated integral.
//
// Errors:
//   - ErrNoIntervals (n ≤ 0), ErrNilAlgorithm, ErrNilIntegrator,
//     ErrNonFiniteBounds (NaN or ±Inf start/finish).
//
// Determinism:
//   - x advances by repeated addition, so rounding drift over large n
//     matches a hand-written loop exactly.
//
// Complexity:
//   - Time O(n) rule calls, Space O(1).
func Integrate[T Float](start, finish T, n int, a Algorithm[T], rule Integrator[T]) (T, error) {
	var sum T
	if n <= 0 {
		return sum, quadErrorf(opIntegrate, fmt.Errorf("n=%d: %w", n, ErrNoIntervals))
	}
	if a == nil {
		return sum, quadErrorf(opIntegrate, ErrNilAlgorithm)
	}
	if rule == nil {
		return sum, quadErrorf(opIntegrate, ErrNilIntegrator)
	}
	if !finite(start) || !finite(finish) {
		return sum, quadErrorf(opIntegrate, fmt.Errorf("[%v, %v]: %w", start, finish, ErrNonFiniteBounds))
	}

	step := (finish - start) / T(n)
	x := start
	for i := 0; i < n; i++ {
		sum += rule(x, step, a)
		x += step
	}

	return sum, nil
}

func finite[T Float](v T) bool {
	f := float64(v)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
