// SPDX-License-Identifier: MIT

// Package quadrature provides strategy-based numerical integration in one
// dimension.
//
// What:
//
//   - An Algorithm is the integrand: a named function x ↦ f(x).
//   - An Integrator is a rule: the contribution of one sub-interval
//     [x, x+h] to the integral, computed from f.
//   - Integrate splits [start, finish] into n equal steps and sums the rule
//     over them.
//
// Rules:
//
//   - FirstOrdinate  f(x)·h
//   - LastOrdinate   f(x+h)·h
//   - MidOrdinate    f(x+h/2)·h
//   - Trapezium      ½(f(x)+f(x+h))·h
//   - Simpson        ⅔·MidOrdinate + ⅓·Trapezium
//   - Weighted(w)    (1−w)·MidOrdinate + w·Trapezium
//
// Simpson is Weighted(1/3). Rules are plain functions, so callers can add
// their own without touching this package; Rules and Lookup expose the
// built-in set by name.
//
// Study runs every case × rule × step count and returns Result values
// carrying the estimate, the exact value and the percentage error.
// WriteReport prints them as a plain text table grouped per integrand.
//
// Errors:
//
//   - ErrNoIntervals   n ≤ 0
//   - ErrNilAlgorithm  nil integrand
//   - ErrNilIntegrator nil rule
//   - ErrNonFiniteBounds NaN or ±Inf bound
//   - ErrUnknownRule   Lookup miss
//
// Complexity:
//
//   - Integrate is O(n) calls to the rule; each built-in rule evaluates f
//     at most three times.
//
// Example:
//
//	v, err := quadrature.Integrate(0.0, 2.0, 100, quadrature.Func("X^4", func(x float64) float64 {
//		return x * x * x * x
//	}), quadrature.Simpson[float64])
package quadrature
