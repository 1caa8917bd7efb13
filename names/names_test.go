// Copyright (c) 2026, Trend Tree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeterministic(t *testing.T) {
	a := NewRandom(42)
	b := NewRandom(42)
	for range 20 {
		assert.Equal(t, a.New(), b.New())
	}
}

func TestUnique(t *testing.T) {
	rn := NewRandom(1)
	seen := map[string]bool{}
	for range 1000 {
		name := rn.New()
		assert.False(t, seen[name], "duplicate name %q", name)
		seen[name] = true
	}
}
