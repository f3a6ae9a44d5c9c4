// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnum/internal/chart"
	"github.com/katalvlaran/lvnum/internal/config"
	"github.com/katalvlaran/lvnum/quadrature"
)

func newStudyCmd(a *app) *cobra.Command {
	var (
		cfgPath   string
		chartPath string
		precision int
	)
	cmd := &cobra.Command{
		Use:   "study",
		Short: "Run every integrand with every rule and step count and report the errors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.DefaultConfig()
			if cfgPath != "" {
				loaded, err := config.Load(cfgPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if cmd.Flags().Changed("precision") {
				cfg.Precision = precision
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			cases, err := cfg.Cases()
			if err != nil {
				return err
			}
			rules, err := cfg.NamedRules()
			if err != nil {
				return err
			}
			results, err := quadrature.Study(cases, rules, cfg.Steps, quadrature.WithLogger(a.logger))
			if err != nil {
				return err
			}
			if err = quadrature.WriteReport(cmd.OutOrStdout(), results, cfg.Precision); err != nil {
				return err
			}

			if chartPath == "" {
				return nil
			}
			p, err := chart.New(cfg.Chart.Title, chart.SeriesFrom(results))
			if err != nil {
				return err
			}
			if err = chart.Save(p, chartPath, cfg.Chart.WidthCM, cfg.Chart.HeightCM); err != nil {
				return err
			}
			a.logger.Info("chart written", "path", chartPath)

			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&cfgPath, "config", "", "YAML study configuration (defaults apply when empty)")
	f.StringVar(&chartPath, "chart", "", "write a log-log error chart to this path (.png, .svg, .pdf)")
	f.IntVar(&precision, "precision", quadrature.DefaultPrecision, "significant digits, overrides the config")

	return cmd
}
