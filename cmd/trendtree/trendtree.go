// Copyright (c) 2026, Trend Tree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command trendtree is an interactive demo: a tree of data series,
// trends, and plots that can be reorganized by drag-and-drop, with
// modifier nodes that restyle everything below their attachment point.
// Every tree change triggers a full recompute and redraw of all plots.
package main

import (
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/tree"
	"cogentcore.org/lab/base/randx"
	"cogentcore.org/lab/plotcore"

	"github.com/lucas-wilkins/trendtree/names"
	"github.com/lucas-wilkins/trendtree/plottree"
	"github.com/lucas-wilkins/trendtree/render"
)

const (
	numData      = 10
	numTrends    = 2
	perTrend     = 5
	numPlots     = 4
	seriesPoints = 100
)

type app struct {
	root  *tree.NodeBase
	plots []*plottree.Plot
	views []*plotcore.Plot
	tv    *core.Tree
}

// update recomputes every plot from scratch and hands the result to its
// widget. A plot whose recompute fails keeps its previous rendering and
// does not affect its siblings.
func (a *app) update() {
	for i, pn := range a.plots {
		plt, err := render.Plot(pn)
		if errors.Log(err) != nil {
			continue
		}
		a.views[i].SetPlot(plt)
	}
}

// resync refreshes the display tree after a programmatic tree mutation
// and redraws all plots.
func (a *app) resync() {
	a.tv.ReSync()
	a.update()
}

// buildTree populates the initial demo tree: random sinusoidal data
// series, two trends of linked series, and four plots wired to links.
func buildTree(namer names.Namer, rnd randx.Rand) *app {
	a := &app{}
	a.root = tree.NewNodeBase()
	a.root.SetName("trend-tree")
	dataRoot := &tree.NodeBase{}
	a.root.AddChild(dataRoot)
	dataRoot.SetName("Data")
	trendRoot := &tree.NodeBase{}
	a.root.AddChild(trendRoot)
	trendRoot.SetName("Trends")
	plotRoot := &tree.NodeBase{}
	a.root.AddChild(plotRoot)
	plotRoot.SetName("Plots")

	datas := make([]*plottree.DataItem, numData)
	for i := range datas {
		x := make([]float32, seriesPoints)
		y := make([]float32, seriesPoints)
		freq := 0.3 * (1 + rnd.Float32())
		phase := 2 * math32.Pi * rnd.Float32()
		for k := range x {
			x[k] = 10 * float32(k) / float32(seriesPoints-1)
			y[k] = math32.Sin(freq*x[k] + phase)
		}
		datas[i] = plottree.NewDataItem(dataRoot, namer.New(), x, y)
	}

	trends := make([]*plottree.TrendItem, numTrends)
	for i := range trends {
		trends[i] = plottree.NewTrendItem(trendRoot, namer.New())
		for k := i * perTrend; k < (i+1)*perTrend; k++ {
			datas[k].NewLink(trends[i])
		}
	}

	a.plots = make([]*plottree.Plot, numPlots)
	for i := range a.plots {
		a.plots[i] = plottree.NewPlot(plotRoot, namer.New())
	}
	datas[0].NewLink(a.plots[0])
	datas[1].NewLink(a.plots[0])
	datas[0].NewLink(a.plots[1])
	datas[1].NewLink(a.plots[1])
	datas[3].NewLink(a.plots[1])
	trends[0].NewLink(a.plots[2])
	trends[0].NewLink(a.plots[3])
	trends[1].NewLink(a.plots[3])
	return a
}

func main() {
	a := buildTree(names.NewRandom(time.Now().UnixNano()), randx.NewGlobalRand())

	b := core.NewBody("Trend Tree")
	sp := core.NewSplits(b)
	sp.SetSplits(0.35, 0.65)

	left := core.NewFrame(sp)
	left.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
	})

	treeFrame := core.NewFrame(left)
	treeFrame.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Overflow.Set(styles.OverflowAuto)
		s.Grow.Set(1, 1)
	})
	a.tv = core.NewTree(treeFrame)
	a.tv.SyncTree(a.root)
	a.tv.OnChange(func(e events.Event) {
		a.update()
	})

	buttons := core.NewFrame(left)
	buttons.Styler(func(s *styles.Style) {
		s.Display = styles.Grid
		s.Columns = 3
	})
	fixed := []struct{ label, color, style string }{
		{"Red", "r", ""},
		{"Green", "g", ""},
		{"Blue", "b", ""},
		{"Solid", "", "solid"},
		{"Dash", "", "dashed"},
		{"Dot", "", "dotted"},
	}
	for _, bd := range fixed {
		core.NewButton(buttons).SetText(bd.label).OnClick(func(e events.Event) {
			plottree.NewFixedModifier(a.root, bd.color, bd.style)
			a.resync()
		})
	}
	for _, scheme := range []string{"Jet", "Viridis", "ColdHot"} {
		core.NewButton(buttons).SetText(scheme).OnClick(func(e events.Event) {
			_, err := plottree.NewSchemeModifier(a.root, scheme)
			if errors.Log(err) != nil {
				return
			}
			a.resync()
		})
	}

	right := core.NewFrame(sp)
	right.Styler(func(s *styles.Style) {
		s.Display = styles.Grid
		s.Columns = 2
		s.Grow.Set(1, 1)
	})
	a.views = make([]*plotcore.Plot, numPlots)
	for i := range a.views {
		a.views[i] = plotcore.NewPlot(right)
		a.views[i].SetReadOnly(true)
	}

	a.update()
	b.RunMainWindow()
}
