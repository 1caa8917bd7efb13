// Copyright (c) 2026, Trend Tree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plottree

import (
	"fmt"

	"cogentcore.org/core/tree"

	"github.com/lucas-wilkins/trendtree/trace"
)

// DataItem is a plottable node that owns a raw X/Y series.
type DataItem struct {
	PlottableBase

	// X and Y are the series owned by this item, of equal length.
	X []float32
	Y []float32
}

// NewDataItem adds a new data item under the given parent. A mismatch
// between the series lengths surfaces when traces are produced, not here.
func NewDataItem(parent tree.Node, name string, x, y []float32) *DataItem {
	di := &DataItem{X: x, Y: y}
	addChild(parent, di, name)
	return di
}

// ReferencedTraces returns one trace over the item's own series, with
// an empty attribute map.
func (di *DataItem) ReferencedTraces() ([]trace.Trace, error) {
	tr, err := trace.New(di.X, di.Y)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", di.Path(), err)
	}
	return []trace.Trace{tr}, nil
}

// NewLink adds a new link under the given parent that forwards this
// item's modified traces.
func (di *DataItem) NewLink(parent tree.Node) *DataLink {
	dl := &DataLink{Src: di}
	addChild(parent, dl, uniqueName(parent, "link: "+di.Name))
	return dl
}

// DataLink is a non-owning reference to a [DataItem]. It produces
// exactly the source item's modified traces at the time of the call,
// so one series can appear in multiple trends and plots without
// duplication.
type DataLink struct {
	PlottableBase

	// Src is the source item. The link does not own it, and reading
	// through the link fails with [ErrInvalidLink] once the source
	// has been destroyed.
	Src *DataItem `json:"-"`
}

// ReferencedTraces forwards to the source item's modified traces.
func (dl *DataLink) ReferencedTraces() ([]trace.Trace, error) {
	if dl.Src == nil || dl.Src.This == nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidLink, dl.Path())
	}
	return dl.Src.PlotTraces()
}
