// SPDX-License-Identifier: MIT

package quadrature

import "fmt"

// Rule names accepted by Lookup.
const (
	RuleFirstOrdinate = "first-ordinate"
	RuleLastOrdinate  = "last-ordinate"
	RuleMidOrdinate   = "mid-ordinate"
	RuleTrapezium     = "trapezium"
	RuleSimpson       = "simpson"
	RuleWeighted      = "weighted-mo-trap"
)

// DefaultWeight is the trapezium weight of the registered weighted rule.
// At 1/3 it coincides with Simpson; override through Weighted for others.
const DefaultWeight = 1.0 / 3.0

// NamedRule pairs a rule with its lookup key and display label.
type NamedRule[T Float] struct {
	Name  string // lookup key, e.g. "mid-ordinate"
	Label string // report label, e.g. "Mid Ordinate"
	Rule  Integrator[T]
}

// Rules returns the built-in rules in report order. The slice is fresh on
// every call; callers may reorder or filter it.
func Rules[T Float]() []NamedRule[T] {
	return []NamedRule[T]{
		{Name: RuleFirstOrdinate, Label: "First Ordinate", Rule: FirstOrdinate[T]},
		{Name: RuleLastOrdinate, Label: "Last Ordinate", Rule: LastOrdinate[T]},
		{Name: RuleMidOrdinate, Label: "Mid Ordinate", Rule: MidOrdinate[T]},
		{Name: RuleTrapezium, Label: "Trapezium", Rule: Trapezium[T]},
		{Name: RuleSimpson, Label: "Simpson", Rule: Simpson[T]},
		{Name: RuleWeighted, Label: "Weighted MO/Trap", Rule: Weighted(T(DefaultWeight))},
	}
}

// RuleNames lists the lookup keys of Rules in order.
func RuleNames() []string {
	rules := Rules[float64]()
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.Name
	}

	return names
}

// Lookup returns the built-in rule registered under name.
//
// Errors: ErrUnknownRule.
func Lookup[T Float](name string) (NamedRule[T], error) {
	for _, r := range Rules[T]() {
		if r.Name == name {
			return r, nil
		}
	}

	return NamedRule[T]{}, quadErrorf(opLookup, fmt.Errorf("%q: %w", name, ErrUnknownRule))
}
