// Copyright (c) 2026, Trend Tree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plottree

import (
	"fmt"

	"cogentcore.org/core/tree"

	"github.com/lucas-wilkins/trendtree/trace"
)

// TrendItem is a plottable node that aggregates a set of linked data
// series into one batch, typically so a scheme modifier can color them
// by their position within the trend.
type TrendItem struct {
	PlottableBase
}

// NewTrendItem adds a new trend under the given parent.
func NewTrendItem(parent tree.Node, name string) *TrendItem {
	ti := &TrendItem{}
	addChild(parent, ti, name)
	return ti
}

// ReferencedTraces concatenates the traces of all immediate [DataLink]
// children, left to right in child order. Other children, including
// modifier nodes, are ignored here.
func (ti *TrendItem) ReferencedTraces() ([]trace.Trace, error) {
	var out []trace.Trace
	for _, child := range ti.Children {
		dl, ok := child.(*DataLink)
		if !ok {
			continue
		}
		trs, err := dl.PlotTraces()
		if err != nil {
			return nil, err
		}
		out = append(out, trs...)
	}
	return out, nil
}

// NewLink adds a new link under the given parent that forwards this
// trend's modified traces.
func (ti *TrendItem) NewLink(parent tree.Node) *TrendLink {
	tl := &TrendLink{Src: ti}
	addChild(parent, tl, uniqueName(parent, "link: "+ti.Name))
	return tl
}

// TrendLink is a non-owning reference to a [TrendItem], the trend
// counterpart of [DataLink].
type TrendLink struct {
	PlottableBase

	// Src is the source trend. The link does not own it.
	Src *TrendItem `json:"-"`
}

// ReferencedTraces forwards to the source trend's modified traces.
func (tl *TrendLink) ReferencedTraces() ([]trace.Trace, error) {
	if tl.Src == nil || tl.Src.This == nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidLink, tl.Path())
	}
	return tl.Src.PlotTraces()
}
