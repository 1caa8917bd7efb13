// Copyright (c) 2026, Trend Tree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package names provides the naming service for newly created nodes.
// It is passed in as a capability rather than used as an ambient
// global, so tests can use a fixed seed for deterministic names.
package names

import (
	"strconv"

	"cogentcore.org/lab/base/randx"
)

// Namer provides names for newly created nodes.
type Namer interface {

	// New returns the next name. Names from one Namer are unique.
	New() string
}

var adjectives = []string{
	"amber", "bold", "calm", "deft", "eager", "faint", "grand", "hazy",
	"keen", "lucid", "mellow", "noble", "pale", "quiet", "rapid", "stark",
}

var nouns = []string{
	"aspen", "brook", "cliff", "dune", "ember", "fjord", "glade", "heath",
	"inlet", "knoll", "lagoon", "mesa", "otter", "pine", "ridge", "stone",
}

// Random generates adjective-noun names from a seedable random source.
type Random struct {
	rand randx.Rand
	used map[string]int
}

// NewRandom returns a random namer seeded with the given seed.
func NewRandom(seed int64) *Random {
	return &Random{rand: randx.NewSysRand(seed), used: map[string]int{}}
}

// New returns the next name, suffixing a counter on the rare repeat so
// sibling names stay unique.
func (rn *Random) New() string {
	name := adjectives[rn.rand.Intn(len(adjectives))] + "-" + nouns[rn.rand.Intn(len(nouns))]
	rn.used[name]++
	if n := rn.used[name]; n > 1 {
		name += "-" + strconv.Itoa(n)
	}
	return name
}
