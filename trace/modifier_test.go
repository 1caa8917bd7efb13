// Copyright (c) 2026, Trend Tree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"testing"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/colors/colormap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func traces(t *testing.T, n int) []Trace {
	t.Helper()
	out := make([]Trace, n)
	for i := range out {
		tr, err := New([]float32{0, 1, 2}, []float32{float32(i), 1, 0})
		require.NoError(t, err)
		out[i] = tr
	}
	return out
}

// schemeName returns a colormap name that is guaranteed to resolve.
func schemeName(t *testing.T) string {
	t.Helper()
	sl := colormap.AvailableMapsList()
	require.NotEmpty(t, sl)
	return sl[0]
}

func TestFixedSetsConfiguredAttrs(t *testing.T) {
	in := traces(t, 3)
	out, err := NewFixed("r", "").Apply(in)
	require.NoError(t, err)
	require.Len(t, out, 3)
	for i, tr := range out {
		assert.Equal(t, Attrs{Color: "r"}, tr.Attrs)
		// payloads unchanged, input untouched
		assert.Equal(t, in[i].X, tr.X)
		assert.Equal(t, in[i].Y, tr.Y)
		assert.Equal(t, Attrs{}, in[i].Attrs)
	}
}

func TestFixedLeavesUnconfiguredAttrs(t *testing.T) {
	in := traces(t, 1)
	in[0].Attrs[Color] = "g"
	out, err := NewFixed("", "dashed").Apply(in)
	require.NoError(t, err)
	assert.Equal(t, Attrs{Color: "g", LineStyle: "dashed"}, out[0].Attrs)
}

func TestFixedIdempotent(t *testing.T) {
	fm := NewFixed("b", "dotted")
	once, err := fm.Apply(traces(t, 2))
	require.NoError(t, err)
	twice, err := fm.Apply(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestFixedLabel(t *testing.T) {
	assert.Equal(t, "color=r, linestyle=dashed", NewFixed("r", "dashed").Label())
	assert.Equal(t, "color=r", NewFixed("r", "").Label())
	assert.Equal(t, "linestyle=solid", NewFixed("", "solid").Label())
}

func TestSchemeUnknown(t *testing.T) {
	_, err := NewScheme("no-such-scheme")
	assert.ErrorIs(t, err, ErrUnknownScheme)
}

func TestSchemeEndpoints(t *testing.T) {
	name := schemeName(t)
	cm := colormap.AvailableMaps[name]
	sm, err := NewScheme(name)
	require.NoError(t, err)

	out, err := sm.Apply(traces(t, 2))
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, colors.AsHex(cm.Map(0)), out[0].Attrs[Color])
	assert.Equal(t, colors.AsHex(cm.Map(1)), out[1].Attrs[Color])
}

func TestSchemePositions(t *testing.T) {
	name := schemeName(t)
	cm := colormap.AvailableMaps[name]
	sm, err := NewScheme(name)
	require.NoError(t, err)

	const n = 5
	out, err := sm.Apply(traces(t, n))
	require.NoError(t, err)
	require.Len(t, out, n)
	for i := range out {
		pos := float32(i) / float32(n-1)
		assert.Equal(t, colors.AsHex(cm.Map(pos)), out[i].Attrs[Color])
	}
}

func TestSchemeOverridesExistingColor(t *testing.T) {
	name := schemeName(t)
	cm := colormap.AvailableMaps[name]
	sm, err := NewScheme(name)
	require.NoError(t, err)

	in := traces(t, 2)
	in[0].Attrs[Color] = "b"
	out, err := sm.Apply(in)
	require.NoError(t, err)
	assert.Equal(t, colors.AsHex(cm.Map(0)), out[0].Attrs[Color])
}

func TestSchemeSingleTraceMidpoint(t *testing.T) {
	name := schemeName(t)
	cm := colormap.AvailableMaps[name]
	sm, err := NewScheme(name)
	require.NoError(t, err)

	out, err := sm.Apply(traces(t, 1))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, colors.AsHex(cm.Map(0.5)), out[0].Attrs[Color])
}

func TestSchemeEmptyInput(t *testing.T) {
	sm, err := NewScheme(schemeName(t))
	require.NoError(t, err)
	out, err := sm.Apply(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestApplyChainOrder(t *testing.T) {
	// the later modifier sees the earlier one's output and wins
	mods := []Modifier{NewFixed("r", ""), NewFixed("g", "dashed")}
	out, err := ApplyChain(mods, traces(t, 1))
	require.NoError(t, err)
	assert.Equal(t, Attrs{Color: "g", LineStyle: "dashed"}, out[0].Attrs)

	mods = []Modifier{NewFixed("g", "dashed"), NewFixed("r", "")}
	out, err = ApplyChain(mods, traces(t, 1))
	require.NoError(t, err)
	assert.Equal(t, Attrs{Color: "r", LineStyle: "dashed"}, out[0].Attrs)
}

func TestApplyChainEmpty(t *testing.T) {
	in := traces(t, 2)
	out, err := ApplyChain(nil, in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
