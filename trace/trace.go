// Copyright (c) 2026, Trend Tree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trace defines the atomic unit handed to the rendering surface,
// a [Trace], and the modifiers that rewrite batches of traces.
package trace

import (
	"fmt"
	"maps"

	"cogentcore.org/core/base/errors"
)

// Attribute keys set by the modifiers in this package. The attribute map
// itself is pass-through: any key meaningful to the rendering surface
// may appear in it.
const (
	// Color is the line color attribute. Values are CSS color names,
	// matplotlib-style single letter shorthands, or hex strings.
	Color = "color"

	// LineStyle is the line dash style attribute. Values are
	// solid, dashed, or dotted.
	LineStyle = "linestyle"
)

// ErrLengthMismatch is returned when the X and Y series of a trace
// do not have the same number of points.
var ErrLengthMismatch = errors.New("trace: x and y must have the same length")

// Attrs is the rendering attribute map of a trace.
type Attrs map[string]string

// Clone returns a copy of the attributes. A nil map clones to an empty
// non-nil map, so modifiers can set keys on the result unconditionally.
func (a Attrs) Clone() Attrs {
	out := Attrs{}
	maps.Copy(out, a)
	return out
}

// Trace is one renderable series: an attribute map plus equal-length
// X and Y values. Traces are values; modifiers return new traces and
// never modify their input. The X and Y slices are shared, not copied,
// and must not be mutated after construction.
type Trace struct {

	// Attrs are the rendering attributes for this series.
	Attrs Attrs

	// X are the horizontal coordinates of the series.
	X []float32

	// Y are the vertical coordinates of the series,
	// with the same length as X.
	Y []float32
}

// New returns a trace over the given series with an empty attribute map.
// It returns [ErrLengthMismatch] if the series lengths differ.
func New(x, y []float32) (Trace, error) {
	if len(x) != len(y) {
		return Trace{}, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(x), len(y))
	}
	return Trace{Attrs: Attrs{}, X: x, Y: y}, nil
}

// WithAttrs returns a copy of the trace carrying the given attribute map.
func (tr Trace) WithAttrs(attrs Attrs) Trace {
	return Trace{Attrs: attrs, X: tr.X, Y: tr.Y}
}
