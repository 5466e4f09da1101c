/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package components

import (
	"image/color"
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/ijuttt/countyscope/internal/ui/styles"
	"github.com/ijuttt/countyscope/internal/ui/widgets"
	"github.com/ijuttt/countyscope/internal/view"
)

// -----------------------------------------------------------------------------
// Panel Component
// -----------------------------------------------------------------------------

// Offsets of the canvas inside a panel: one border cell on every side
// plus one padding column left and right.
const (
	ContentOffsetX = 2
	ContentOffsetY = 1
)

// previewColor outlines a brush that has not been applied yet.
var previewColor = color.RGBA{R: 0xFF, G: 0xAF, B: 0x00, A: 0xFF}

// CellBox is an inclusive range of canvas cells.
type CellBox struct {
	Col0, Row0, Col1, Row1 int
}

// PanelView shows one rendered dashboard panel on a terminal canvas.
type PanelView struct {
	name   string
	panel  *view.Panel
	canvas *widgets.Canvas
	width  int
	height int
	active bool

	preview *CellBox
	cursor  *[2]int
}

// NewPanelView creates an empty panel view for the named dashboard panel.
func NewPanelView(name string) PanelView {
	return PanelView{name: name, canvas: widgets.NewCanvas(0, 0, 0, 0)}
}

// Name returns the dashboard panel name.
func (v *PanelView) Name() string { return v.name }

// SetSize updates the outer dimensions, borders included.
func (v *PanelView) SetSize(width, height int) {
	if width == v.width && height == v.height {
		return
	}
	v.width = width
	v.height = height
	v.rasterize()
}

// SetPanel replaces the draw commands shown.
func (v *PanelView) SetPanel(p *view.Panel) {
	v.panel = p
	v.rasterize()
}

// Panel returns the draw commands shown, or nil before the first render.
func (v *PanelView) Panel() *view.Panel { return v.panel }

// SetActive sets the highlight state.
func (v *PanelView) SetActive(active bool) {
	v.active = active
}

// SetPreview outlines an unapplied brush; nil removes it.
func (v *PanelView) SetPreview(b *CellBox) {
	v.preview = b
}

// SetCursor shows the keyboard brush cursor at a cell; ok=false hides it.
func (v *PanelView) SetCursor(col, row int, ok bool) {
	if !ok {
		v.cursor = nil
		return
	}
	v.cursor = &[2]int{col, row}
}

// Canvas returns the rasterized panel. Cells are relative to the content
// origin at (ContentOffsetX, ContentOffsetY).
func (v *PanelView) Canvas() *widgets.Canvas { return v.canvas }

// Cols and Rows return the canvas size in cells.
func (v *PanelView) Cols() int { return max(v.width-2*ContentOffsetX, 0) }
func (v *PanelView) Rows() int { return max(v.height-2*ContentOffsetY, 0) }

func (v *PanelView) rasterize() {
	v.canvas = widgets.Rasterize(v.panel, v.Cols(), v.Rows())
	v.canvas.Ink = styles.ColorText
}

// View renders the panel with its overlays.
func (v PanelView) View() string {
	if v.width <= 0 || v.height <= 0 {
		return ""
	}
	title := v.name
	var body string
	if v.panel == nil {
		body = styles.LoadingStyle.Render("Loading...")
	} else {
		title = v.panel.Title
		c := v.canvas.Clone()
		if v.preview != nil {
			c.Outline(v.preview.Col0, v.preview.Row0, v.preview.Col1, v.preview.Row1, previewColor)
		}
		if v.cursor != nil {
			c.Set(v.cursor[0], v.cursor[1], '✚', previewColor)
		}
		body = c.Render()
	}

	return styles.PanelStyle(title, v.width, v.active).
		Width(v.width - 2).
		Height(v.height - 2).
		Render(body)
}

// ShapeTooltip returns the tooltip of the topmost bar or point under
// pixel (x, y). County polygons are resolved through the geometry index
// instead.
func ShapeTooltip(p *view.Panel, x, y float64) (string, bool) {
	if p == nil {
		return "", false
	}
	for i := len(p.Shapes) - 1; i >= 0; i-- {
		switch s := p.Shapes[i].(type) {
		case view.Box:
			if s.Class != view.ClassBrush && s.Tooltip != "" && s.Rect.Contains(x, y) {
				return s.Tooltip, true
			}
		case view.Circle:
			if s.Tooltip != "" && math.Hypot(s.X-x, s.Y-y) <= s.R {
				return s.Tooltip, true
			}
		}
	}
	return "", false
}

// JoinRow places panel views side by side.
func JoinRow(views ...PanelView) string {
	parts := make([]string, len(views))
	for i, v := range views {
		parts[i] = v.View()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
