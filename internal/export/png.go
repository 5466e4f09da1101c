package export

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ijuttt/countyscope/internal/view"
)

// WritePanelPNG rasterizes a single panel with the go-chart renderer.
func WritePanelPNG(w io.Writer, p *view.Panel) error {
	r, err := chart.PNG(iround(p.Width), iround(p.Height))
	if err != nil {
		return fmt.Errorf("png renderer: %w", err)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("png font: %w", err)
	}
	r.SetFont(font)

	r.SetFillColor(drawing.ColorWhite)
	r.SetStrokeColor(drawing.ColorTransparent)
	r.MoveTo(0, 0)
	r.LineTo(iround(p.Width), 0)
	r.LineTo(iround(p.Width), iround(p.Height))
	r.LineTo(0, iround(p.Height))
	r.Close()
	r.Fill()

	for _, s := range p.Shapes {
		rasterShape(r, s)
	}
	return r.Save(w)
}

func rasterShape(r chart.Renderer, s view.Shape) {
	switch v := s.(type) {
	case view.Circle:
		applyStyle(r, v.Style)
		r.Circle(v.R, iround(v.X), iround(v.Y))
		r.Fill()
	case view.Box:
		b := v.Normalize()
		if b.Width() == 0 || b.Height() == 0 {
			return
		}
		applyStyle(r, v.Style)
		r.MoveTo(iround(b.X0), iround(b.Y0))
		r.LineTo(iround(b.X1), iround(b.Y0))
		r.LineTo(iround(b.X1), iround(b.Y1))
		r.LineTo(iround(b.X0), iround(b.Y1))
		r.Close()
		paint(r, v.Style)
	case view.Polygon:
		applyStyle(r, v.Style)
		for _, poly := range v.Geometry {
			for _, ring := range poly {
				for i, pt := range ring {
					if i == 0 {
						r.MoveTo(iround(pt[0]), iround(pt[1]))
						continue
					}
					r.LineTo(iround(pt[0]), iround(pt[1]))
				}
				r.Close()
			}
		}
		paint(r, v.Style)
	case view.Line:
		r.SetStrokeColor(toDrawing(v.Stroke, 1))
		r.SetStrokeWidth(math.Max(v.StrokeWidth, 1))
		r.MoveTo(iround(v.X0), iround(v.Y0))
		r.LineTo(iround(v.X1), iround(v.Y1))
		r.Stroke()
	case view.Text:
		r.SetFontColor(toDrawing(v.Fill, 1))
		r.SetFontSize(v.Size)
		box := r.MeasureText(v.Value)
		x := iround(v.X)
		switch v.Anchor {
		case view.AnchorMiddle:
			x -= box.Width() / 2
		case view.AnchorEnd:
			x -= box.Width()
		}
		if v.Vertical {
			r.SetTextRotation(-math.Pi / 2)
			r.Text(v.Value, iround(v.X), iround(v.Y)+box.Width()/2)
			r.ClearTextRotation()
			return
		}
		r.Text(v.Value, x, iround(v.Y))
	}
}

func applyStyle(r chart.Renderer, s view.Style) {
	a := s.Alpha()
	r.SetFillColor(toDrawing(s.Fill, a))
	if s.Stroke.A != 0 && s.StrokeWidth > 0 {
		r.SetStrokeColor(toDrawing(s.Stroke, a))
		r.SetStrokeWidth(s.StrokeWidth)
	} else {
		r.SetStrokeColor(drawing.ColorTransparent)
		r.SetStrokeWidth(0)
	}
}

func paint(r chart.Renderer, s view.Style) {
	if s.Stroke.A != 0 && s.StrokeWidth > 0 {
		r.FillStroke()
		return
	}
	r.Fill()
}

func toDrawing(c color.RGBA, alpha float64) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(float64(c.A) * alpha))}
}
