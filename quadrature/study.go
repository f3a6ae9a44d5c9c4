// SPDX-License-Identifier: MIT

package quadrature

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Case is one definite integral with a known value.
type Case[T Float] struct {
	Algorithm     Algorithm[T]
	Start, Finish T
	Exact         T
}

// Result is one estimate produced by Study.
type Result[T Float] struct {
	Algorithm string // Algorithm.Name()
	Rule      string // NamedRule.Label
	N         int
	Estimate  T
	Exact     T
}

// AbsError returns |Estimate − Exact|.
func (r Result[T]) AbsError() T {
	return T(math.Abs(float64(r.Estimate - r.Exact)))
}

// PercentError returns 100·|Estimate − Exact|/|Exact|. For Exact == 0 the
// denominator is dropped and the result is 100·|Estimate|.
func (r Result[T]) PercentError() T {
	abs := r.AbsError()
	if r.Exact == 0 {
		return 100 * abs
	}

	return 100 * T(float64(abs)/math.Abs(float64(r.Exact)))
}

// Converged reports whether Estimate agrees with Exact within tol, either
// absolutely or relative to the larger magnitude.
func (r Result[T]) Converged(tol float64) bool {
	return scalar.EqualWithinAbsOrRel(float64(r.Estimate), float64(r.Exact), tol, tol)
}

// Study integrates every case with every rule at every step count.
// Results are ordered case-major, then rule, then steps, which is the
// grouping WriteReport expects.
//
// Errors:
//   - The first Integrate failure, wrapped with the case, rule and n.
//   - ErrNilIntegrator for a NamedRule without a Rule.
//
// Complexity:
//   - Time O(len(cases)·len(rules)·Σsteps).
func Study[T Float](cases []Case[T], rules []NamedRule[T], steps []int, opts ...Option) ([]Result[T], error) {
	o := gatherOptions(opts...)
	out := make([]Result[T], 0, len(cases)*len(rules)*len(steps))
	for _, c := range cases {
		if c.Algorithm == nil {
			return nil, quadErrorf(opStudy, ErrNilAlgorithm)
		}
		for _, r := range rules {
			for _, n := range steps {
				est, err := Integrate(c.Start, c.Finish, n, c.Algorithm, r.Rule)
				if err != nil {
					return nil, quadErrorf(opStudy, fmt.Errorf("%s/%s/N=%d: %w", c.Algorithm.Name(), r.Name, n, err))
				}
				res := Result[T]{
					Algorithm: c.Algorithm.Name(),
					Rule:      r.Label,
					N:         n,
					Estimate:  est,
					Exact:     c.Exact,
				}
				o.logger.LogAttrs(context.Background(), slog.LevelDebug, "quadrature: estimate",
					slog.String("algorithm", res.Algorithm),
					slog.String("rule", r.Name),
					slog.Int("n", n),
					slog.Float64("estimate", float64(est)),
					slog.Float64("percent_error", float64(res.PercentError())),
				)
				out = append(out, res)
			}
		}
	}

	return out, nil
}
