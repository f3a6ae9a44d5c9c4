// SPDX-License-Identifier: MIT

// Package chart renders quadrature convergence studies as log-log line
// charts: step count on the x axis, percentage error on the y axis, one
// line per integrand and rule.
package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lvnum/quadrature"
)

// ErrNoData is returned when no series has a point that fits a log axis.
var ErrNoData = errors.New("chart: no positive data points")

// Series is one line of the chart.
type Series struct {
	Label  string
	Points plotter.XYs
}

// SeriesFrom groups consecutive results by algorithm and rule. Points with
// a zero, negative or non-finite error cannot sit on a log axis and are
// dropped; a series left empty is dropped too.
func SeriesFrom(results []quadrature.Result[float64]) []Series {
	var out []Series
	for i, r := range results {
		label := r.Algorithm + " " + r.Rule
		if i == 0 || results[i-1].Algorithm != r.Algorithm || results[i-1].Rule != r.Rule {
			out = append(out, Series{Label: label})
		}
		y := r.PercentError()
		if y <= 0 || math.IsInf(y, 0) || math.IsNaN(y) || r.N <= 0 {
			continue
		}
		last := &out[len(out)-1]
		last.Points = append(last.Points, plotter.XY{X: float64(r.N), Y: y})
	}

	kept := out[:0]
	for _, s := range out {
		if len(s.Points) > 0 {
			kept = append(kept, s)
		}
	}

	return kept
}

// New builds a log-log plot of series.
//
// Errors: ErrNoData when series holds no points.
func New(title string, series []Series) (*plot.Plot, error) {
	if len(series) == 0 {
		return nil, ErrNoData
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "N"
	p.Y.Label.Text = "% error"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	args := make([]interface{}, 0, 2*len(series))
	for _, s := range series {
		args = append(args, s.Label, s.Points)
	}
	if err := plotutil.AddLinePoints(p, args...); err != nil {
		return nil, fmt.Errorf("chart: %w", err)
	}
	widen(&p.X)
	widen(&p.Y)

	return p, nil
}

// widen gives a degenerate (single value) axis one decade either side so
// the log scale has a range to normalise over.
func widen(a *plot.Axis) {
	if a.Min == a.Max {
		a.Min /= 10
		a.Max *= 10
	}
}

// Write encodes p to w in format ("png", "svg", "pdf", ...).
func Write(w io.Writer, p *plot.Plot, widthCM, heightCM float64, format string) error {
	wt, err := p.WriterTo(vg.Length(widthCM)*vg.Centimeter, vg.Length(heightCM)*vg.Centimeter, format)
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("chart: %w", err)
	}

	return nil
}

// Save writes p to path; the format follows the file extension.
func Save(p *plot.Plot, path string, widthCM, heightCM float64) error {
	if filepath.Ext(path) == "" {
		return fmt.Errorf("chart: %q has no extension to pick a format from", path)
	}
	if err := p.Save(vg.Length(widthCM)*vg.Centimeter, vg.Length(heightCM)*vg.Centimeter, path); err != nil {
		return fmt.Errorf("chart: save %s: %w", path, err)
	}

	return nil
}
