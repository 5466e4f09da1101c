/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package export writes rendered frames to SVG and PNG files.
package export

import (
	"fmt"
	"html"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/paulmach/orb"

	"github.com/ijuttt/countyscope/internal/view"
)

// PanelGap separates panels in the dashboard document.
const PanelGap = 20

// Placement positions a panel inside the dashboard document.
type Placement struct {
	Panel *view.Panel
	X, Y  float64
}

// Layout arranges the frame's panels: every panel but the map on the first
// row, the map alone on the second. It returns the document size.
func Layout(f *view.Frame) (placements []Placement, width, height float64) {
	var x, rowH float64
	var mapPanel *view.Panel
	for _, p := range f.Panels {
		if p.Name == view.PanelMap {
			mapPanel = p
			continue
		}
		placements = append(placements, Placement{Panel: p, X: x})
		x += p.Width + PanelGap
		rowH = math.Max(rowH, p.Height)
	}
	width = math.Max(x-PanelGap, 0)
	height = rowH
	if mapPanel != nil {
		y := rowH
		if len(placements) > 0 {
			y += PanelGap
		}
		placements = append(placements, Placement{Panel: mapPanel, Y: y})
		width = math.Max(width, mapPanel.Width)
		height = y + mapPanel.Height
	}
	return placements, width, height
}

// WriteSVG writes the whole frame as one SVG document.
func WriteSVG(w io.Writer, f *view.Frame) error {
	placements, width, height := Layout(f)
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(iround(width), iround(height), `font-family="Helvetica,Arial,sans-serif"`)
	canvas.Title(fmt.Sprintf("countyscope: %s, %d of %d counties", f.Attribute, f.Subset, f.Total))
	canvas.Rect(0, 0, iround(width), iround(height), "fill:#ffffff")
	for _, pl := range placements {
		canvas.Gtransform(fmt.Sprintf("translate(%s,%s)", num(pl.X), num(pl.Y)))
		drawPanel(canvas, pl.Panel)
		canvas.Gend()
	}
	canvas.End()
	return ew.err
}

// WritePanelSVG writes a single panel as a standalone SVG document.
func WritePanelSVG(w io.Writer, p *view.Panel) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(iround(p.Width), iround(p.Height), `font-family="Helvetica,Arial,sans-serif"`)
	canvas.Rect(0, 0, iround(p.Width), iround(p.Height), "fill:#ffffff")
	drawPanel(canvas, p)
	canvas.End()
	return ew.err
}

func drawPanel(canvas *svg.SVG, p *view.Panel) {
	canvas.Group(fmt.Sprintf(`class="panel %s"`, p.Name))
	if p.Title != "" {
		canvas.Title(p.Title)
	}
	for _, s := range p.Shapes {
		drawShape(canvas, s)
	}
	canvas.Gend()
}

func drawShape(canvas *svg.SVG, s view.Shape) {
	meta := s.Info()
	wrap := meta.Tooltip != "" || meta.RecordID != ""
	if wrap {
		attrs := []string{fmt.Sprintf(`class="%s"`, meta.Class)}
		if meta.RecordID != "" {
			attrs = append(attrs, fmt.Sprintf(`data-id="%s"`, html.EscapeString(meta.RecordID)))
		}
		canvas.Group(attrs...)
		if meta.Tooltip != "" {
			canvas.Title(meta.Tooltip)
		}
	}

	switch v := s.(type) {
	case view.Circle:
		canvas.Circle(iround(v.X), iround(v.Y), iround(v.R), style(v.Style))
	case view.Box:
		r := v.Normalize()
		canvas.Rect(iround(r.X0), iround(r.Y0), iround(r.Width()), iround(r.Height()), style(v.Style))
	case view.Polygon:
		canvas.Path(pathData(v.Geometry), style(v.Style))
	case view.Line:
		canvas.Line(iround(v.X0), iround(v.Y0), iround(v.X1), iround(v.Y1), lineStyle(v.Style))
	case view.Text:
		attrs := []string{
			fmt.Sprintf(`text-anchor="%s"`, anchorName(v.Anchor)),
			fmt.Sprintf(`font-size="%s"`, num(v.Size)),
			fmt.Sprintf(`fill="%s"`, hex(v.Fill)),
		}
		if v.Vertical {
			attrs = append(attrs, fmt.Sprintf(`transform="rotate(-90 %s %s)"`, num(v.X), num(v.Y)))
		}
		canvas.Text(iround(v.X), iround(v.Y), v.Value, attrs...)
	}

	if wrap {
		canvas.Gend()
	}
}

func style(s view.Style) string {
	var b strings.Builder
	if s.Fill.A == 0 {
		b.WriteString("fill:none")
	} else {
		fmt.Fprintf(&b, "fill:%s", hex(s.Fill))
	}
	if s.Stroke.A != 0 && s.StrokeWidth > 0 {
		fmt.Fprintf(&b, ";stroke:%s;stroke-width:%s", hex(s.Stroke), num(s.StrokeWidth))
	}
	if a := s.Alpha(); a < 1 {
		fmt.Fprintf(&b, ";opacity:%s", num(a))
	}
	return b.String()
}

func lineStyle(s view.Style) string {
	w := s.StrokeWidth
	if w <= 0 {
		w = 1
	}
	return fmt.Sprintf("stroke:%s;stroke-width:%s", hex(s.Stroke), num(w))
}

// pathData encodes a multipolygon as SVG path data with one subpath per ring.
func pathData(mp orb.MultiPolygon) string {
	var b strings.Builder
	for _, poly := range mp {
		for _, ring := range poly {
			for i, pt := range ring {
				if i == 0 {
					b.WriteByte('M')
				} else {
					b.WriteByte('L')
				}
				b.WriteString(num(pt[0]))
				b.WriteByte(',')
				b.WriteString(num(pt[1]))
			}
			b.WriteByte('Z')
		}
	}
	return b.String()
}

func anchorName(a view.Anchor) string {
	switch a {
	case view.AnchorMiddle:
		return "middle"
	case view.AnchorEnd:
		return "end"
	}
	return "start"
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func iround(v float64) int { return int(math.Round(v)) }

// errWriter keeps the first write error so the svg calls need no checks.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	if _, err := e.w.Write(p); err != nil {
		e.err = err
	}
	return len(p), nil
}
