// Copyright (c) 2026, Trend Tree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"fmt"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/colors/colormap"
)

// ErrUnknownScheme is returned when a scheme modifier is constructed
// with a color scheme name that is not in [colormap.AvailableMaps].
var ErrUnknownScheme = errors.New("trace: unknown color scheme")

// Modifier is one step in a modifier chain: a transformation from a
// batch of traces to a new batch of the same length and order. Apply
// must not modify the input slice or its elements.
type Modifier interface {

	// Apply returns the transformed traces.
	Apply(traces []Trace) ([]Trace, error)

	// Label describes the modifier's configuration for display.
	Label() string
}

// ApplyChain folds the given modifiers over the traces in order, so each
// modifier sees the previous modifier's output. A nil or empty chain
// returns the input unchanged.
func ApplyChain(mods []Modifier, traces []Trace) ([]Trace, error) {
	out := traces
	for _, m := range mods {
		var err error
		out, err = m.Apply(out)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Fixed is a modifier that unconditionally sets the color and/or
// line style attribute on every trace. An empty field is not set
// and leaves any existing value on the trace untouched.
type Fixed struct {

	// Color is the color to set, or empty to leave colors alone.
	Color string

	// LineStyle is the line style to set, or empty to leave
	// line styles alone.
	LineStyle string
}

// NewFixed returns a fixed-attribute modifier setting the given color
// and line style, either of which may be empty.
func NewFixed(color, lineStyle string) *Fixed {
	return &Fixed{Color: color, LineStyle: lineStyle}
}

// Apply sets the configured attributes on a copy of every trace.
func (fm *Fixed) Apply(traces []Trace) ([]Trace, error) {
	out := make([]Trace, len(traces))
	for i, tr := range traces {
		attrs := tr.Attrs.Clone()
		if fm.Color != "" {
			attrs[Color] = fm.Color
		}
		if fm.LineStyle != "" {
			attrs[LineStyle] = fm.LineStyle
		}
		out[i] = tr.WithAttrs(attrs)
	}
	return out, nil
}

func (fm *Fixed) Label() string {
	var parts []string
	if fm.Color != "" {
		parts = append(parts, "color="+fm.Color)
	}
	if fm.LineStyle != "" {
		parts = append(parts, "linestyle="+fm.LineStyle)
	}
	return strings.Join(parts, ", ")
}

// Scheme is a modifier that colors each trace in a batch by sampling a
// named colormap at the trace's relative position: trace i of n gets the
// sample at i/(n-1). A single trace gets the midpoint sample (0.5) and
// an empty batch passes through untouched.
type Scheme struct {

	// Name is the colormap name, resolved in [colormap.AvailableMaps].
	Name string

	cmap *colormap.Map
}

// NewScheme returns a scheme modifier for the named colormap. It returns
// [ErrUnknownScheme] if the name does not resolve.
func NewScheme(name string) (*Scheme, error) {
	cm, ok := colormap.AvailableMaps[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
	}
	return &Scheme{Name: name, cmap: cm}, nil
}

// Apply sets the color attribute on a copy of every trace from the
// colormap sample at the trace's relative position.
func (sm *Scheme) Apply(traces []Trace) ([]Trace, error) {
	n := len(traces)
	out := make([]Trace, n)
	for i, tr := range traces {
		pos := float32(0.5)
		if n > 1 {
			pos = float32(i) / float32(n-1)
		}
		attrs := tr.Attrs.Clone()
		attrs[Color] = colors.AsHex(sm.cmap.Map(pos))
		out[i] = tr.WithAttrs(attrs)
	}
	return out, nil
}

func (sm *Scheme) Label() string {
	return "scheme=" + sm.Name
}
