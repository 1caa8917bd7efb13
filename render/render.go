// Copyright (c) 2026, Trend Tree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render is the boundary between the plottable tree and the
// charting surface: it recomputes a plot node's trace list from scratch
// and projects it onto a [plot.Plot], one styled line per trace.
package render

import (
	"fmt"
	"image/color"
	"log/slog"

	"cogentcore.org/core/colors"
	"cogentcore.org/lab/plot"
	"cogentcore.org/lab/plot/plots"

	"github.com/lucas-wilkins/trendtree/appearance"
	"github.com/lucas-wilkins/trendtree/plottree"
	"github.com/lucas-wilkins/trendtree/trace"
)

// shorthands are the matplotlib-style single letter color names the
// original demo buttons use.
var shorthands = map[string]string{
	"b": "blue",
	"c": "cyan",
	"g": "green",
	"k": "black",
	"m": "magenta",
	"r": "red",
	"w": "white",
	"y": "yellow",
}

// dashes are the supported line style names, as dash patterns in dots.
// A nil pattern is a solid line.
var dashes = map[string][]float32{
	"solid":  nil,
	"dashed": {8, 4},
	"dotted": {2, 4},
}

// Color resolves a trace color attribute value: a single letter
// shorthand, a CSS color name, or a hex string.
func Color(val string) (color.RGBA, error) {
	if name, ok := shorthands[val]; ok {
		val = name
	}
	if len(val) > 0 && val[0] == '#' {
		return colors.FromHex(val)
	}
	return colors.FromName(val)
}

// Dashes resolves a trace line style attribute value to a dash pattern.
func Dashes(val string) ([]float32, error) {
	d, ok := dashes[val]
	if !ok {
		return nil, fmt.Errorf("render: unknown line style %q", val)
	}
	return d, nil
}

// Plot recomputes the given plot node's traces and builds a titled,
// axis-labeled chart from them. It fails if the recompute fails; the
// caller decides what to do with the previous rendering in that case.
func Plot(pn *plottree.Plot) (*plot.Plot, error) {
	traces, err := pn.PlotTraces()
	if err != nil {
		return nil, err
	}
	ap := pn.ResolveAppearance()

	plt := plot.New()
	plt.Title.Text = pn.Name
	plt.X.Label.Text = "X"
	plt.Y.Label.Text = "Y"

	for _, tr := range traces {
		ln, err := Line(tr, ap)
		if err != nil {
			return nil, err
		}
		plt.Add(ln)
	}
	return plt, nil
}

// Line builds one styled line plotter for the given trace. The resolved
// appearance supplies the line color when the trace carries no color
// attribute. Unrecognized attribute values are logged and skipped
// rather than failing the whole plot.
func Line(tr trace.Trace, ap appearance.Appearance) (*plots.Line, error) {
	xys := make(plots.XYs, len(tr.X))
	for i := range tr.X {
		xys[i].X = tr.X[i]
		xys[i].Y = tr.Y[i]
	}
	ln, err := plots.NewLine(xys)
	if err != nil {
		return nil, err
	}
	if val, ok := tr.Attrs[trace.Color]; ok {
		if c, err := Color(val); err == nil {
			ln.LineStyle.Color = colors.Uniform(c)
		} else {
			slog.Error("render: bad color attribute", "value", val, "err", err)
		}
	} else if ap.Color != nil {
		ln.LineStyle.Color = ap.Color
	}
	if val, ok := tr.Attrs[trace.LineStyle]; ok {
		if d, err := Dashes(val); err == nil {
			ln.LineStyle.Dashes = d
		} else {
			slog.Error("render: bad line style attribute", "value", val, "err", err)
		}
	}
	return ln, nil
}
