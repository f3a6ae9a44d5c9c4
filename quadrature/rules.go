// SPDX-License-Identifier: MIT

package quadrature

// FirstOrdinate is the left-endpoint rectangle rule: f(in)·step.
func FirstOrdinate[T Float](in, step T, a Algorithm[T]) T {
	return a.Execute(in) * step
}

// LastOrdinate is the right-endpoint rectangle rule: f(in+step)·step.
func LastOrdinate[T Float](in, step T, a Algorithm[T]) T {
	return a.Execute(in+step) * step
}

// MidOrdinate is the midpoint rule: f(in+step/2)·step.
func MidOrdinate[T Float](in, step T, a Algorithm[T]) T {
	return a.Execute(in+step/2) * step
}

// Trapezium averages both endpoints: ½(f(in)+f(in+step))·step.
func Trapezium[T Float](in, step T, a Algorithm[T]) T {
	return (a.Execute(in) + a.Execute(in+step)) / 2 * step
}

// Simpson blends the midpoint and trapezium estimates 2:1, which is exact
// for cubics.
func Simpson[T Float](in, step T, a Algorithm[T]) T {
	return T(2.0/3.0)*MidOrdinate(in, step, a) + T(1.0/3.0)*Trapezium(in, step, a)
}

// Weighted returns the rule (1−w)·MidOrdinate + w·Trapezium.
// Weighted(1.0/3) reproduces Simpson; w = 0 and w = 1 reproduce the
// midpoint and trapezium rules. w is not range checked.
func Weighted[T Float](w T) Integrator[T] {
	return func(in, step T, a Algorithm[T]) T {
		return (1-w)*MidOrdinate(in, step, a) + w*Trapezium(in, step, a)
	}
}
