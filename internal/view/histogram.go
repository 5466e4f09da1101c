package view

import (
	"fmt"
	"math"

	"github.com/ijuttt/countyscope/internal/analysis"
	"github.com/ijuttt/countyscope/internal/config"
	"github.com/ijuttt/countyscope/internal/model"
)

// Histogram plot placement inside its panel.
const (
	HistPlotLeft   = 50
	HistPlotTop    = 30
	HistPlotWidth  = config.HistWidth - 100
	HistPlotHeight = config.HistHeight - 50
	BarGap         = 2
	BarOpacity     = 0.7
)

// HistogramPlotArea is the data area of a histogram panel.
func HistogramPlotArea() Rect {
	return Rect{X0: HistPlotLeft, Y0: HistPlotTop, X1: HistPlotLeft + HistPlotWidth, Y1: HistPlotTop + HistPlotHeight}
}

// Histogram renders the distribution of attr over records. The domain is
// the extent of the given records, so the bins rescale with filtering.
// Only non-empty bins get a bar.
func Histogram(name string, records []*model.Record, attr analysis.Attribute) *Panel {
	p := newPanel(name, attr.Label(), config.HistWidth, config.HistHeight)
	p.Plot = HistogramPlotArea()

	h := analysis.BuildHistogram(analysis.BuildColumn(records, attr).Values)
	xs := NewLinear(h.Min, h.Max, p.Plot.X0, p.Plot.X1)
	ys := NewLinear(0, math.Max(float64(h.MaxCount), 1), p.Plot.Y1, p.Plot.Y0)

	p.bottomAxis(xs, p.Plot.Y1, 6)
	p.leftAxis(ys, p.Plot.X0, 5)
	p.label(p.Width/2, HistPlotTop-12, attr.Label(), titleFont, AnchorMiddle, false)

	binW := HistPlotWidth / float64(len(h.Bins))
	barW := math.Max(binW-BarGap, 0)
	style := Style{Fill: attr.Color(), Opacity: BarOpacity}

	for i, b := range h.Bins {
		if b.Count == 0 {
			continue
		}
		x := p.Plot.X0 + float64(i)*binW
		top := ys.Map(float64(b.Count))
		p.add(Box{
			Rect:  Rect{X0: x, Y0: top, X1: x + barW, Y1: p.Plot.Y1},
			Style: style,
			Meta:  Meta{Class: ClassBar, Tooltip: binTooltip(attr, b)},
		})
	}
	return p
}

func binTooltip(attr analysis.Attribute, b analysis.Bin) string {
	noun := "counties"
	if b.Count == 1 {
		noun = "county"
	}
	return fmt.Sprintf("%s to %s: %d %s",
		analysis.FormatValue(attr, b.X0), analysis.FormatValue(attr, b.X1), b.Count, noun)
}
