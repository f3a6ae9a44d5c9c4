// SPDX-License-Identifier: MIT

// Package config holds the YAML configuration of the lvnum convergence
// study: which integrands and rules to run, the bounds, the step counts,
// the report precision and the chart geometry.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvnum/quadrature"
	"github.com/katalvlaran/lvnum/quadrature/integrands"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the study configuration.
type Config struct {
	// Bounds of every integral in the study.
	Start  float64 `yaml:"start"`
	Finish float64 `yaml:"finish"`

	Integrands []string `yaml:"integrands"` // e.g. ["x^4", "cos"]
	Rules      []string `yaml:"rules"`      // quadrature rule names
	Steps      []int    `yaml:"steps"`      // e.g. [10, 100, 1000]
	Precision  int      `yaml:"precision"`  // significant digits in the report

	Chart ChartConfig `yaml:"chart"`
}

// ChartConfig sizes the optional convergence chart.
type ChartConfig struct {
	Title    string  `yaml:"title"`
	WidthCM  float64 `yaml:"width_cm"`
	HeightCM float64 `yaml:"height_cm"`
}

// DefaultConfig reproduces the classic comparison: x^4, x^5, cos and exp
// over [0, 2] with the five basic rules at N = 10, 100, 1000.
func DefaultConfig() Config {
	return Config{
		Start:      integrands.DefaultA,
		Finish:     integrands.DefaultB,
		Integrands: []string{"x^4", "x^5", "cos", "exp"},
		Rules: []string{
			quadrature.RuleFirstOrdinate,
			quadrature.RuleLastOrdinate,
			quadrature.RuleMidOrdinate,
			quadrature.RuleTrapezium,
			quadrature.RuleSimpson,
		},
		Steps:     []int{10, 100, 1000},
		Precision: quadrature.DefaultPrecision,
		Chart: ChartConfig{
			Title:    "Quadrature convergence",
			WidthCM:  16,
			HeightCM: 12,
		},
	}
}

// Load reads path over DefaultConfig, so omitted keys keep their defaults,
// and validates the result. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err = Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Decode unmarshals YAML into cfg with unknown-field checking.
// Lists in data replace the defaults already in cfg.
func Decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Validate checks every field and resolves integrand and rule names.
func (c Config) Validate() error {
	var errs []error
	if !isFinite(c.Start) || !isFinite(c.Finish) {
		errs = append(errs, fmt.Errorf("bounds [%v, %v] must be finite", c.Start, c.Finish))
	}
	if len(c.Integrands) == 0 {
		errs = append(errs, errors.New("at least one integrand is required"))
	}
	for _, name := range c.Integrands {
		if _, err := integrands.ByName[float64](name); err != nil {
			errs = append(errs, err)
		}
	}
	if len(c.Rules) == 0 {
		errs = append(errs, errors.New("at least one rule is required"))
	}
	for _, name := range c.Rules {
		if _, err := quadrature.Lookup[float64](name); err != nil {
			errs = append(errs, err)
		}
	}
	if len(c.Steps) == 0 {
		errs = append(errs, errors.New("at least one step count is required"))
	}
	for _, n := range c.Steps {
		if n <= 0 {
			errs = append(errs, fmt.Errorf("steps: %d must be > 0", n))
		}
	}
	if c.Precision < 1 || c.Precision > 17 {
		errs = append(errs, fmt.Errorf("precision: %d not in [1, 17]", c.Precision))
	}
	if c.Chart.WidthCM <= 0 || c.Chart.HeightCM <= 0 {
		errs = append(errs, fmt.Errorf("chart: size %vx%v cm must be positive", c.Chart.WidthCM, c.Chart.HeightCM))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}

// Cases resolves the configured integrands over [Start, Finish].
func (c Config) Cases() ([]quadrature.Case[float64], error) {
	out := make([]quadrature.Case[float64], 0, len(c.Integrands))
	for _, name := range c.Integrands {
		in, err := integrands.ByName[float64](name)
		if err != nil {
			return nil, err
		}
		out = append(out, in.Over(c.Start, c.Finish).Case())
	}

	return out, nil
}

// NamedRules resolves the configured rule names in order.
func (c Config) NamedRules() ([]quadrature.NamedRule[float64], error) {
	out := make([]quadrature.NamedRule[float64], 0, len(c.Rules))
	for _, name := range c.Rules {
		r, err := quadrature.Lookup[float64](name)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
