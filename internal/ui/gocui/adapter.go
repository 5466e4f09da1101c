/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package gocui provides the gocui-based TUI implementation: a text
// dashboard that summarizes every view instead of drawing it.
package gocui

import (
	"fmt"

	lib "github.com/jroimartin/gocui"

	"github.com/ijuttt/countyscope/internal/analysis"
	"github.com/ijuttt/countyscope/internal/app"
	"github.com/ijuttt/countyscope/internal/logging"
	"github.com/ijuttt/countyscope/internal/ui/render"
	"github.com/ijuttt/countyscope/internal/view"
)

// -----------------------------------------------------------------------------
// View Names
// -----------------------------------------------------------------------------

const (
	ViewHeader       = "header"
	ViewSelection    = "selection"
	ViewDistribution = "distribution"
	ViewMap          = "map"
	ViewFooter       = "footer"
	ViewTooSmall     = "too-small"
)

// -----------------------------------------------------------------------------
// Adapter Implementation
// -----------------------------------------------------------------------------

// Adapter implements ui.UI using gocui.
type Adapter struct {
	gui    *lib.Gui
	state  *app.State
	layout *Layout
}

// New creates a new gocui adapter.
func New() (*Adapter, error) {
	g, err := lib.NewGui(lib.OutputNormal)
	if err != nil {
		return nil, err
	}
	g.Cursor = false
	return &Adapter{gui: g}, nil
}

// Run implements ui.UI.
func (a *Adapter) Run(state *app.State) error {
	a.state = state
	a.gui.SetManagerFunc(a.layoutManager)
	if err := a.setupBindings(); err != nil {
		return err
	}
	err := a.gui.MainLoop()
	if err == lib.ErrQuit {
		return nil
	}
	return err
}

// Close implements ui.UI.
func (a *Adapter) Close() {
	a.gui.Close()
}

// -----------------------------------------------------------------------------
// Layout Management
// -----------------------------------------------------------------------------

// layoutManager creates and updates all views.
func (a *Adapter) layoutManager(g *lib.Gui) error {
	maxX, maxY := g.Size()
	a.layout = NewLayout(maxX, maxY)

	if a.layout.IsTerminalTooSmall() {
		return a.showTooSmall(g, maxX, maxY)
	}
	if err := g.DeleteView(ViewTooSmall); err != nil && err != lib.ErrUnknownView {
		return err
	}

	panels := []struct {
		name   string
		title  string
		bounds func() (int, int, int, int)
	}{
		{ViewHeader, "", a.layout.HeaderBounds},
		{ViewSelection, " Scatterplot selection ", a.layout.SelectionPanelBounds},
		{ViewDistribution, " Histograms ", a.layout.DistributionPanelBounds},
		{ViewMap, " Choropleth ", a.layout.MapPanelBounds},
		{ViewFooter, "", a.layout.FooterBounds},
	}
	for _, p := range panels {
		x0, y0, x1, y1 := p.bounds()
		v, err := g.SetView(p.name, x0, y0, x1, y1)
		if err != nil && err != lib.ErrUnknownView {
			return err
		}
		if p.title == "" {
			v.Frame = false
		} else {
			v.Title = p.title
			v.Wrap = true
		}
	}

	return a.renderAll()
}

// showTooSmall replaces the dashboard with a size hint.
func (a *Adapter) showTooSmall(g *lib.Gui, maxX, maxY int) error {
	v, err := g.SetView(ViewTooSmall, 0, 0, maxX-1, maxY-1)
	if err != nil && err != lib.ErrUnknownView {
		return err
	}
	if _, err := g.SetViewOnTop(ViewTooSmall); err != nil {
		return err
	}
	v.Clear()
	fmt.Fprintf(v, "Terminal too small (%dx%d). Resize or press q.\n", maxX, maxY)
	return nil
}

// -----------------------------------------------------------------------------
// Rendering
// -----------------------------------------------------------------------------

// renderAll updates all view contents.
func (a *Adapter) renderAll() error {
	attr := a.state.Attribute()
	full := a.state.Full()
	filtered := a.state.Filtered()
	xs, ys := a.state.Scales()

	write := func(name string, parts ...string) {
		v, err := a.gui.View(name)
		if err != nil {
			return
		}
		v.Clear()
		for i, p := range parts {
			if i > 0 {
				fmt.Fprint(v, "\n")
			}
			fmt.Fprint(v, p)
		}
	}

	write(ViewHeader, render.Header(attr, len(filtered), len(full), a.state.Revision()))
	write(ViewSelection,
		render.Brush(a.state.Brush(), xs, ys, attr),
		render.Selection(filtered, attr))
	write(ViewDistribution,
		render.Histogram(attr, filtered),
		render.Histogram(view.YAttribute, filtered))
	write(ViewMap, render.Map(a.state.Projected(), filtered))
	write(ViewFooter, render.Help())

	return nil
}

// -----------------------------------------------------------------------------
// Key Bindings
// -----------------------------------------------------------------------------

// setupBindings configures keybindings.
func (a *Adapter) setupBindings() error {
	bindings := []struct {
		key     interface{}
		handler func(*lib.Gui, *lib.View) error
	}{
		{lib.KeyCtrlC, a.quit},
		{'q', a.quit},
		{'a', a.nextAttribute},
		{lib.KeyTab, a.nextAttribute},
		{'x', a.clearBrush},
		{lib.KeyEsc, a.clearBrush},
	}

	for _, b := range bindings {
		if err := a.gui.SetKeybinding("", b.key, lib.ModNone, b.handler); err != nil {
			return err
		}
	}

	return nil
}

func (a *Adapter) quit(g *lib.Gui, v *lib.View) error {
	return lib.ErrQuit
}

func (a *Adapter) nextAttribute(g *lib.Gui, v *lib.View) error {
	next := analysis.Next(a.state.Attribute().Key())
	if err := a.state.SetAttribute(next.Key()); err != nil {
		logging.Warnf("gocui: %v", err)
	}
	return nil
}

func (a *Adapter) clearBrush(g *lib.Gui, v *lib.View) error {
	a.state.ClearBrush()
	return nil
}
