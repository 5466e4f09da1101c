/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package widgets provides reusable TUI visualization components.
package widgets

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/ijuttt/countyscope/internal/view"
)

// Glyphs used by the rasterizer.
const (
	GlyphPoint = '●'
	GlyphFill  = '█'
	GlyphHLine = '─'
	GlyphVLine = '│'
	GlyphAxes  = '└'
)

type cell struct {
	r   rune
	fg  color.RGBA
	ink bool // drawn with the canvas ink instead of fg
}

// Canvas maps the pixel space of a view.Panel onto a grid of terminal
// cells. Cell (col, row) covers the pixels [col/sx, (col+1)/sx) by
// [row/sy, (row+1)/sy).
type Canvas struct {
	Cols, Rows int

	// Ink, when set, replaces the color of axes and text so they stay
	// readable on dark terminals.
	Ink lipgloss.TerminalColor

	sx, sy float64
	cells  []cell
}

// NewCanvas creates an empty canvas of cols x rows cells covering a
// width x height pixel panel.
func NewCanvas(cols, rows int, width, height float64) *Canvas {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	c := &Canvas{Cols: cols, Rows: rows, cells: make([]cell, cols*rows)}
	if width > 0 {
		c.sx = float64(cols) / width
	}
	if height > 0 {
		c.sy = float64(rows) / height
	}
	return c
}

// Rasterize draws every shape of p onto a new canvas, in draw order.
func Rasterize(p *view.Panel, cols, rows int) *Canvas {
	if p == nil {
		return NewCanvas(cols, rows, 0, 0)
	}
	c := NewCanvas(cols, rows, p.Width, p.Height)
	for _, s := range p.Shapes {
		c.Draw(s)
	}
	return c
}

// Clone returns an independent copy of c.
func (c *Canvas) Clone() *Canvas {
	cp := *c
	cp.cells = append([]cell(nil), c.cells...)
	return &cp
}

// CellOf returns the cell containing pixel (x, y), clamped to the grid.
func (c *Canvas) CellOf(x, y float64) (col, row int) {
	return clampInt(int(math.Floor(x*c.sx)), 0, c.Cols-1),
		clampInt(int(math.Floor(y*c.sy)), 0, c.Rows-1)
}

// CellRect returns the pixel rectangle covered by the cells between the
// two corners, both inclusive.
func (c *Canvas) CellRect(col0, row0, col1, row1 int) view.Rect {
	if col0 > col1 {
		col0, col1 = col1, col0
	}
	if row0 > row1 {
		row0, row1 = row1, row0
	}
	if c.sx == 0 || c.sy == 0 {
		return view.Rect{}
	}
	return view.Rect{
		X0: float64(col0) / c.sx,
		Y0: float64(row0) / c.sy,
		X1: float64(col1+1) / c.sx,
		Y1: float64(row1+1) / c.sy,
	}
}

// PixelOf returns the pixel at the centre of a cell.
func (c *Canvas) PixelOf(col, row int) (x, y float64) {
	if c.sx == 0 || c.sy == 0 {
		return 0, 0
	}
	return (float64(col) + 0.5) / c.sx, (float64(row) + 0.5) / c.sy
}

// Inside reports whether (col, row) is on the grid.
func (c *Canvas) Inside(col, row int) bool {
	return col >= 0 && col < c.Cols && row >= 0 && row < c.Rows
}

// At returns the glyph at (col, row), or a space.
func (c *Canvas) At(col, row int) rune {
	if !c.Inside(col, row) || c.cells[row*c.Cols+col].r == 0 {
		return ' '
	}
	return c.cells[row*c.Cols+col].r
}

// Set writes one glyph. Writes off the grid are ignored.
func (c *Canvas) Set(col, row int, r rune, fg color.RGBA) {
	if c.Inside(col, row) {
		c.cells[row*c.Cols+col] = cell{r: r, fg: fg}
	}
}

func (c *Canvas) setInk(col, row int, r rune, fg color.RGBA) {
	if c.Inside(col, row) {
		c.cells[row*c.Cols+col] = cell{r: r, fg: fg, ink: true}
	}
}

// Outline draws a box-drawing frame around the cells between two corners.
func (c *Canvas) Outline(col0, row0, col1, row1 int, fg color.RGBA) {
	if col0 > col1 {
		col0, col1 = col1, col0
	}
	if row0 > row1 {
		row0, row1 = row1, row0
	}
	if col0 == col1 && row0 == row1 {
		c.Set(col0, row0, '□', fg)
		return
	}
	for x := col0; x <= col1; x++ {
		c.Set(x, row0, GlyphHLine, fg)
		c.Set(x, row1, GlyphHLine, fg)
	}
	for y := row0; y <= row1; y++ {
		c.Set(col0, y, GlyphVLine, fg)
		c.Set(col1, y, GlyphVLine, fg)
	}
	c.Set(col0, row0, '┌', fg)
	c.Set(col1, row0, '┐', fg)
	c.Set(col0, row1, '└', fg)
	c.Set(col1, row1, '┘', fg)
}

// Draw rasterizes one shape. Tick marks are skipped; their labels are kept.
func (c *Canvas) Draw(s view.Shape) {
	if c.sx == 0 || c.sy == 0 {
		return
	}
	switch s := s.(type) {
	case view.Circle:
		col, row := c.CellOf(s.X, s.Y)
		c.Set(col, row, GlyphPoint, s.Fill)
	case view.Box:
		if s.Class == view.ClassBrush {
			col0, row0 := c.CellOf(s.X0, s.Y0)
			col1, row1 := c.CellOf(s.X1, s.Y1)
			c.Outline(col0, row0, col1, row1, s.Stroke)
			return
		}
		c.drawBar(s)
	case view.Polygon:
		c.drawPolygon(s)
	case view.Line:
		if s.Class == view.ClassAxis {
			c.drawAxis(s)
		}
	case view.Text:
		c.drawText(s)
	}
}

// drawBar fills a box from its bottom edge up, using a partial block for
// the top cell.
func (c *Canvas) drawBar(b view.Box) {
	r := b.Rect.Normalize()
	if r.Width() == 0 || r.Height() == 0 {
		return
	}
	col0, _ := c.CellOf(r.X0, r.Y0)
	col1, _ := c.CellOf(math.Nextafter(r.X1, r.X0), r.Y0)
	top := r.Y0 * c.sy
	topRow := clampInt(int(math.Floor(top)), 0, c.Rows-1)
	_, bottomRow := c.CellOf(r.X0, math.Nextafter(r.Y1, r.Y0))

	for row := topRow; row <= bottomRow; row++ {
		glyph := GlyphFill
		if row == topRow {
			frac := 1 - (top - math.Floor(top))
			glyph = blockFor(frac)
		}
		for col := col0; col <= col1; col++ {
			c.Set(col, row, glyph, b.Fill)
		}
	}
}

// drawPolygon fills every cell whose centre lies in the geometry. A shape
// smaller than a cell claims the empty cell under its bound centre.
func (c *Canvas) drawPolygon(p view.Polygon) {
	if len(p.Geometry) == 0 {
		return
	}
	b := p.Geometry.Bound()
	col0, row0 := c.CellOf(b.Min.X(), b.Min.Y())
	col1, row1 := c.CellOf(b.Max.X(), b.Max.Y())

	hit := false
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			x, y := c.PixelOf(col, row)
			if planar.MultiPolygonContains(p.Geometry, orb.Point{x, y}) {
				c.Set(col, row, GlyphFill, p.Fill)
				hit = true
			}
		}
	}
	if !hit {
		ctr := b.Center()
		col, row := c.CellOf(ctr.X(), ctr.Y())
		if c.At(col, row) == ' ' {
			c.Set(col, row, GlyphFill, p.Fill)
		}
	}
}

func (c *Canvas) drawAxis(l view.Line) {
	col0, row0 := c.CellOf(l.X0, l.Y0)
	col1, row1 := c.CellOf(l.X1, l.Y1)
	if row0 == row1 {
		if col0 > col1 {
			col0, col1 = col1, col0
		}
		for x := col0; x <= col1; x++ {
			c.lineGlyph(x, row0, GlyphHLine, l.Stroke)
		}
		return
	}
	if row0 > row1 {
		row0, row1 = row1, row0
	}
	for y := row0; y <= row1; y++ {
		c.lineGlyph(col0, y, GlyphVLine, l.Stroke)
	}
}

// lineGlyph joins a horizontal and a vertical axis into a corner.
func (c *Canvas) lineGlyph(col, row int, r rune, fg color.RGBA) {
	if prev := c.At(col, row); (prev == GlyphHLine && r == GlyphVLine) || (prev == GlyphVLine && r == GlyphHLine) {
		r = GlyphAxes
	}
	c.setInk(col, row, r, fg)
}

func (c *Canvas) drawText(t view.Text) {
	runes := []rune(t.Value)
	col, row := c.CellOf(t.X, t.Y)
	if t.Vertical {
		start := row - len(runes)/2
		for i, r := range runes {
			c.setInk(col, start+i, r, t.Fill)
		}
		return
	}
	// Text sits on its baseline; the glyph cell is the one above it.
	if t.Size > 0 {
		_, row = c.CellOf(t.X, t.Y-t.Size/2)
	}
	switch t.Anchor {
	case view.AnchorMiddle:
		col -= len(runes) / 2
	case view.AnchorEnd:
		col -= len(runes)
	}
	for i, r := range runes {
		c.setInk(col+i, row, r, t.Fill)
	}
}

// String renders the canvas without color.
func (c *Canvas) String() string {
	var b strings.Builder
	for row := 0; row < c.Rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < c.Cols; col++ {
			b.WriteRune(c.At(col, row))
		}
	}
	return b.String()
}

// Render renders the canvas with colors, one string line per row.
func (c *Canvas) Render() string {
	styles := make(map[string]lipgloss.Style)
	styleFor := func(cl cell) lipgloss.Style {
		if cl.ink && c.Ink != nil {
			return lipgloss.NewStyle().Foreground(c.Ink)
		}
		hex := Hex(cl.fg)
		st, ok := styles[hex]
		if !ok {
			st = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
			styles[hex] = st
		}
		return st
	}

	var b strings.Builder
	for row := 0; row < c.Rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		var run strings.Builder
		var runCell cell
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runCell.r == 0 {
				b.WriteString(run.String())
			} else {
				b.WriteString(styleFor(runCell).Render(run.String()))
			}
			run.Reset()
		}
		for col := 0; col < c.Cols; col++ {
			cl := c.cells[row*c.Cols+col]
			if run.Len() > 0 && !sameInk(cl, runCell) {
				flush()
			}
			runCell = cl
			if cl.r == 0 {
				run.WriteByte(' ')
			} else {
				run.WriteRune(cl.r)
			}
		}
		flush()
	}
	return b.String()
}

func sameInk(a, b cell) bool {
	if (a.r == 0) != (b.r == 0) {
		return false
	}
	return a.r == 0 || (a.ink == b.ink && a.fg == b.fg)
}

// Hex formats a color as #rrggbb.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
