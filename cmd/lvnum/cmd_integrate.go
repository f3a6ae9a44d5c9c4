// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnum/quadrature"
	"github.com/katalvlaran/lvnum/quadrature/integrands"
)

func newIntegrateCmd(a *app) *cobra.Command {
	var (
		fn        string
		rule      string
		from, to  float64
		steps     int
		precision int
	)
	cmd := &cobra.Command{
		Use:   "integrate",
		Short: "Estimate one integral and compare it with the closed form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := integrands.ByName[float64](fn)
			if err != nil {
				return err
			}
			in = in.Over(from, to)
			r, err := quadrature.Lookup[float64](rule)
			if err != nil {
				return err
			}
			est, err := quadrature.Integrate[float64](in.A, in.B, steps, in, r.Rule)
			if err != nil {
				return err
			}
			res := quadrature.Result[float64]{Algorithm: in.Name(), Rule: r.Label, N: steps, Estimate: est, Exact: in.Exact()}
			a.logger.Debug("integrate", "algorithm", res.Algorithm, "rule", r.Name, "n", steps)

			g := func(v float64) string { return strconv.FormatFloat(v, 'g', precision, 64) }
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s over [%s, %s], %s, N=%d\n", res.Algorithm, g(in.A), g(in.B), res.Rule, res.N)
			fmt.Fprintf(out, "estimate: %s\n", g(res.Estimate))
			fmt.Fprintf(out, "exact:    %s\n", g(res.Exact))
			fmt.Fprintf(out, "%% error:  %s\n", g(res.PercentError()))

			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&fn, "func", "x^4", "integrand: x^N, cos, sin or exp")
	f.StringVar(&rule, "rule", quadrature.RuleSimpson, "rule name")
	f.Float64Var(&from, "from", integrands.DefaultA, "lower bound")
	f.Float64Var(&to, "to", integrands.DefaultB, "upper bound")
	f.IntVar(&steps, "steps", 100, "number of equal sub-intervals")
	f.IntVar(&precision, "precision", quadrature.DefaultPrecision, "significant digits")

	return cmd
}
