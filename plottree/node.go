// Copyright (c) 2026, Trend Tree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plottree implements the domain tree of plottable nodes: data
// items holding raw series, links forwarding another node's output,
// trends flattening their linked series, plots flattening everything
// below them, and modifier nodes contributing steps to their parent's
// modifier chain.
//
// The tree is a pure [tree.Node] hierarchy with no display dependency;
// a GUI projects it onto a tree widget separately. Producing traces is
// a side-effect-free read of the current tree shape, safe to repeat on
// every redraw.
package plottree

import (
	"fmt"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/tree"

	"github.com/lucas-wilkins/trendtree/appearance"
	"github.com/lucas-wilkins/trendtree/trace"
)

// ErrInvalidLink is returned when a link's source node has been
// destroyed or removed from its tree.
var ErrInvalidLink = errors.New("plottree: link source is no longer alive")

// Plottable is a tree node that can produce an ordered list of traces,
// either natively or by referencing other nodes.
type Plottable interface {
	tree.Node

	// PlotTraces returns the node's referenced traces with the node's
	// own modifier chain applied, in order.
	PlotTraces() ([]trace.Trace, error)

	// ReferencedTraces is the per-variant production rule: the traces
	// this node gathers before its own modifiers are applied.
	ReferencedTraces() ([]trace.Trace, error)
}

// PlottableBase provides the shared behavior of all plottable nodes:
// the modifier chain over modifier-kind children and appearance
// inheritance. Concrete node types embed it and implement
// [Plottable.ReferencedTraces].
type PlottableBase struct {
	tree.NodeBase

	// Appear holds this node's own appearance settings, each field
	// optional; see [PlottableBase.ResolveAppearance].
	Appear appearance.Appearance `json:"-"`
}

// PlotTraces gathers the node's referenced traces and folds its
// modifier chain over them in attachment order.
func (pb *PlottableBase) PlotTraces() ([]trace.Trace, error) {
	pl, ok := pb.This.(Plottable)
	if !ok {
		return nil, fmt.Errorf("plottree: node %q is not plottable", pb.Name)
	}
	trs, err := pl.ReferencedTraces()
	if err != nil {
		return nil, err
	}
	return trace.ApplyChain(pb.Modifiers(), trs)
}

// ReferencedTraces on the base type is an error; concrete node types
// must implement their own production rule.
func (pb *PlottableBase) ReferencedTraces() ([]trace.Trace, error) {
	return nil, fmt.Errorf("plottree: node %q has no trace production rule", pb.Name)
}

// Modifiers returns the modifiers contributed by this node's immediate
// modifier-kind children, in tree order. Other children are ignored.
func (pb *PlottableBase) Modifiers() []trace.Modifier {
	var mods []trace.Modifier
	for _, child := range pb.Children {
		if mn, ok := child.(*ModifierNode); ok {
			mods = append(mods, mn.Mod)
		}
	}
	return mods
}

// ResolveAppearance folds the appearance settings from the tree root
// down to this node, so unset fields inherit from above and the root
// default guarantees a fully-resolved result.
func (pb *PlottableBase) ResolveAppearance() appearance.Appearance {
	var chain []appearance.Appearance
	for cur := pb.This; cur != nil; cur = cur.AsTree().Parent {
		if ap, ok := cur.(interface{ ownAppearance() appearance.Appearance }); ok {
			chain = append(chain, ap.ownAppearance())
		}
	}
	slices.Reverse(chain)
	return appearance.Resolve(chain...)
}

func (pb *PlottableBase) ownAppearance() appearance.Appearance { return pb.Appear }

// addChild adds the node to the parent, initializing it in the tree,
// and applies the given name if non-empty. A nil parent initializes the
// node standalone.
func addChild(parent tree.Node, n tree.Node, name string) {
	if parent != nil {
		parent.AsTree().AddChild(n)
	} else {
		tree.InitNode(n)
	}
	if name != "" {
		n.AsTree().SetName(name)
	}
}

// uniqueName returns base, suffixed with a counter if needed to be
// unique among the parent's current children. The display sync layer
// requires sibling names to be unique.
func uniqueName(parent tree.Node, base string) string {
	if parent == nil {
		return base
	}
	pt := parent.AsTree()
	name := base
	for i := 2; pt.ChildByName(name) != nil; i++ {
		name = fmt.Sprintf("%s (%d)", base, i)
	}
	return name
}
