// SPDX-License-Identifier: MIT

package quadrature

import "golang.org/x/exp/constraints"

// Float is the set of element types the rules operate on.
type Float interface {
	constraints.Float
}

// Algorithm is an integrand.
type Algorithm[T Float] interface {
	// Execute evaluates the integrand at x.
	Execute(x T) T
	// Name is a short label used in reports, e.g. "X^4".
	Name() string
}

// Integrator is a quadrature rule: the approximate integral of a over the
// single sub-interval [in, in+step].
type Integrator[T Float] func(in, step T, a Algorithm[T]) T

// funcAlgorithm adapts a plain function to Algorithm.
type funcAlgorithm[T Float] struct {
	name string
	f    func(T) T
}

func (a funcAlgorithm[T]) Execute(x T) T { return a.f(x) }
func (a funcAlgorithm[T]) Name() string  { return a.name }

// Func wraps f as a named Algorithm. A nil f yields a nil Algorithm so that
// Integrate reports ErrNilAlgorithm instead of panicking.
func Func[T Float](name string, f func(T) T) Algorithm[T] {
	if f == nil {
		return nil
	}

	return funcAlgorithm[T]{name: name, f: f}
}
