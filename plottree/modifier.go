// Copyright (c) 2026, Trend Tree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plottree

import (
	"cogentcore.org/core/tree"

	"github.com/lucas-wilkins/trendtree/trace"
)

// ModifierNode attaches a [trace.Modifier] to the tree. It is not
// itself plottable; a plottable parent picks it up as one step of its
// modifier chain, in child order.
type ModifierNode struct {
	tree.NodeBase

	// Mod is the transformation this node contributes to its
	// parent's modifier chain.
	Mod trace.Modifier `json:"-"`
}

// NewFixedModifier adds a fixed-attribute modifier node under the given
// parent. Either of color and lineStyle may be empty to leave that
// attribute untouched.
func NewFixedModifier(parent tree.Node, color, lineStyle string) *ModifierNode {
	return newModifierNode(parent, trace.NewFixed(color, lineStyle))
}

// NewSchemeModifier adds a trend-scheme modifier node under the given
// parent. It returns [trace.ErrUnknownScheme] if the scheme name does
// not resolve to a colormap, and no node is added in that case.
func NewSchemeModifier(parent tree.Node, scheme string) (*ModifierNode, error) {
	sm, err := trace.NewScheme(scheme)
	if err != nil {
		return nil, err
	}
	return newModifierNode(parent, sm), nil
}

func newModifierNode(parent tree.Node, m trace.Modifier) *ModifierNode {
	mn := &ModifierNode{Mod: m}
	addChild(parent, mn, uniqueName(parent, "modifier: "+m.Label()))
	return mn
}
