package view

import (
	"fmt"
	"image/color"

	"github.com/ijuttt/countyscope/internal/analysis"
	"github.com/ijuttt/countyscope/internal/config"
	"github.com/ijuttt/countyscope/internal/model"
)

// Scatterplot margins in pixels.
const (
	ScatterMarginTop    = 40
	ScatterMarginRight  = 40
	ScatterMarginBottom = 50
	ScatterMarginLeft   = 70

	PointRadius  = 5
	PointOpacity = 0.7
)

var brushColor = color.RGBA{R: 0x77, G: 0x77, B: 0x77, A: 0xFF}

// YAttribute is the fixed vertical attribute of the scatterplot and the
// second histogram.
var YAttribute analysis.Attribute = analysis.BloodPressureAttribute{}

// ScatterScales returns the scatterplot scales for attr over the full
// dataset. The domains never depend on the filtered subset, so brushing
// does not move the axes. An empty dataset uses the domain [0, 1].
func ScatterScales(full []*model.Record, attr analysis.Attribute) (x, y Linear) {
	plot := ScatterPlotArea()
	x0, x1, ok := analysis.AttributeExtent(full, attr)
	if !ok {
		x0, x1 = 0, 1
	}
	y0, y1, ok := analysis.AttributeExtent(full, YAttribute)
	if !ok {
		y0, y1 = 0, 1
	}
	return NewLinear(x0, x1, plot.X0, plot.X1), NewLinear(y0, y1, plot.Y1, plot.Y0)
}

// ScatterPlotArea is the data area of the scatterplot panel.
func ScatterPlotArea() Rect {
	return Rect{
		X0: ScatterMarginLeft,
		Y0: ScatterMarginTop,
		X1: config.ScatterWidth - ScatterMarginRight,
		Y1: config.ScatterHeight - ScatterMarginBottom,
	}
}

// PointTooltip is the hover text for one record.
func PointTooltip(r *model.Record, attr analysis.Attribute) string {
	s := fmt.Sprintf("%s: %s\n%s: %s",
		analysis.ShortLabel(attr), analysis.FormatValue(attr, attr.Extract(r)),
		analysis.ShortLabel(YAttribute), analysis.FormatValue(YAttribute, YAttribute.Extract(r)))
	return r.Label() + "\n" + s
}

// Scatter renders one circle per filtered record, positioned by the
// full-dataset scales, plus axes and the brush outline when brush is set.
func Scatter(full, filtered []*model.Record, attr analysis.Attribute, brush *Rect) *Panel {
	p := newPanel(PanelScatter, attr.Label()+" vs "+YAttribute.Label(), config.ScatterWidth, config.ScatterHeight)
	p.Plot = ScatterPlotArea()
	xs, ys := ScatterScales(full, attr)

	p.bottomAxis(xs, p.Plot.Y1, 8)
	p.leftAxis(ys, p.Plot.X0, 6)
	p.label((p.Plot.X0+p.Plot.X1)/2, p.Height-10, attr.Label(), labelFont, AnchorMiddle, false)
	p.label(20, (p.Plot.Y0+p.Plot.Y1)/2, YAttribute.Label(), labelFont, AnchorMiddle, true)

	style := Style{Fill: attr.Color(), Opacity: PointOpacity}
	for _, r := range filtered {
		p.add(Circle{
			X:     xs.Map(attr.Extract(r)),
			Y:     ys.Map(YAttribute.Extract(r)),
			R:     PointRadius,
			Style: style,
			Meta:  Meta{Class: ClassPoint, RecordID: r.ID, Tooltip: PointTooltip(r, attr)},
		})
	}

	if brush != nil {
		b := brush.Normalize()
		p.add(Box{Rect: b, Style: Style{Stroke: brushColor, StrokeWidth: 1, Opacity: 0.3,
			Fill: brushColor}, Meta: Meta{Class: ClassBrush}})
	}
	return p
}
