// Copyright (c) 2026, Trend Tree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tr, err := New([]float32{0, 1, 2}, []float32{0, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, Attrs{}, tr.Attrs)
	assert.Equal(t, []float32{0, 1, 2}, tr.X)
	assert.Equal(t, []float32{0, 1, 0}, tr.Y)
}

func TestNewLengthMismatch(t *testing.T) {
	_, err := New([]float32{0, 1, 2}, []float32{0, 1})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestAttrsClone(t *testing.T) {
	a := Attrs{"color": "r"}
	c := a.Clone()
	c["color"] = "g"
	c["linestyle"] = "dashed"
	assert.Equal(t, Attrs{"color": "r"}, a)

	// nil clones to a settable empty map
	var n Attrs
	c = n.Clone()
	require.NotNil(t, c)
	c["color"] = "b"
	assert.Equal(t, Attrs{"color": "b"}, c)
}

func TestWithAttrs(t *testing.T) {
	tr, err := New([]float32{0, 1}, []float32{1, 0})
	require.NoError(t, err)
	got := tr.WithAttrs(Attrs{"color": "r"})
	assert.Equal(t, Attrs{"color": "r"}, got.Attrs)
	assert.Equal(t, tr.X, got.X)
	assert.Equal(t, tr.Y, got.Y)
	// the original is untouched
	assert.Equal(t, Attrs{}, tr.Attrs)
}
