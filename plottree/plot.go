// Copyright (c) 2026, Trend Tree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plottree

import (
	"cogentcore.org/core/tree"

	"github.com/lucas-wilkins/trendtree/trace"
)

// Plot is the top of a plottable composition: it flattens the traces of
// all plottable children in child order and applies its own modifier
// chain on top. A plot with no plottable children produces an empty
// batch, which is not an error.
type Plot struct {
	PlottableBase
}

// NewPlot adds a new plot under the given parent.
func NewPlot(parent tree.Node, name string) *Plot {
	pt := &Plot{}
	addChild(parent, pt, name)
	return pt
}

// ReferencedTraces concatenates the traces of all immediate plottable
// children, left to right in child order.
func (pt *Plot) ReferencedTraces() ([]trace.Trace, error) {
	var out []trace.Trace
	for _, child := range pt.Children {
		pl, ok := child.(Plottable)
		if !ok {
			continue
		}
		trs, err := pl.PlotTraces()
		if err != nil {
			return nil, err
		}
		out = append(out, trs...)
	}
	return out, nil
}
