// Copyright (c) 2026, Trend Tree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package appearance provides a small record of visual settings with
// right-biased inheritance merging. Settings are resolved by folding
// [Appearance.Override] from the root of a hierarchy down to a leaf,
// with [Default] supplying fully-populated values at the root, so that
// a resolved leaf appearance never has unset fields.
package appearance

import (
	"image"

	"cogentcore.org/core/colors"
)

// Appearance holds the visual settings that a node in a hierarchy can
// specify. Each field is independently optional: a nil Color or an empty
// Scheme means "not set here, inherit from above".
type Appearance struct {

	// Color is the line color, or nil if not set at this level.
	Color image.Image

	// Scheme is the name of the trend color scheme, or empty if not
	// set at this level.
	Scheme string
}

// Override returns a new Appearance where each field takes the incoming
// value if it is set, and this appearance's value otherwise. It is a
// right-biased merge with no partial blending; neither operand is modified.
func (a Appearance) Override(incoming Appearance) Appearance {
	out := a
	if incoming.Color != nil {
		out.Color = incoming.Color
	}
	if incoming.Scheme != "" {
		out.Scheme = incoming.Scheme
	}
	return out
}

// Default returns the fully-populated root appearance: black lines and
// the Jet trend scheme.
func Default() Appearance {
	return Appearance{
		Color:  colors.Uniform(colors.Black),
		Scheme: "Jet",
	}
}

// Resolve folds [Appearance.Override] over the given chain, ordered from
// root to leaf, starting from [Default]. The result always has every
// field set.
func Resolve(chain ...Appearance) Appearance {
	out := Default()
	for _, a := range chain {
		out = out.Override(a)
	}
	return out
}
