package view

import "image/color"

var (
	axisColor  = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xFF}
	labelColor = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xFF}
)

const (
	tickLength = 6
	tickFont   = 10
	labelFont  = 12
	titleFont  = 14
)

func axisStyle() Style { return Style{Stroke: axisColor, StrokeWidth: 1} }

// bottomAxis draws a horizontal axis along y with tick marks below it.
func (p *Panel) bottomAxis(s Linear, y float64, ticks int) {
	p.add(Line{X0: s.R0, Y0: y, X1: s.R1, Y1: y, Style: axisStyle(), Meta: Meta{Class: ClassAxis}})
	for _, t := range s.Ticks(ticks) {
		x := s.Map(t)
		p.add(
			Line{X0: x, Y0: y, X1: x, Y1: y + tickLength, Style: axisStyle(), Meta: Meta{Class: ClassTick}},
			Text{X: x, Y: y + tickLength + tickFont + 2, Value: FormatTick(t), Size: tickFont,
				Anchor: AnchorMiddle, Style: Style{Fill: labelColor}, Meta: Meta{Class: ClassTick}},
		)
	}
}

// leftAxis draws a vertical axis along x with tick marks to its left.
func (p *Panel) leftAxis(s Linear, x float64, ticks int) {
	p.add(Line{X0: x, Y0: s.R0, X1: x, Y1: s.R1, Style: axisStyle(), Meta: Meta{Class: ClassAxis}})
	for _, t := range s.Ticks(ticks) {
		y := s.Map(t)
		p.add(
			Line{X0: x - tickLength, Y0: y, X1: x, Y1: y, Style: axisStyle(), Meta: Meta{Class: ClassTick}},
			Text{X: x - tickLength - 3, Y: y + tickFont/3, Value: FormatTick(t), Size: tickFont,
				Anchor: AnchorEnd, Style: Style{Fill: labelColor}, Meta: Meta{Class: ClassTick}},
		)
	}
}

func (p *Panel) label(x, y float64, s string, size float64, anchor Anchor, vertical bool) {
	p.add(Text{X: x, Y: y, Value: s, Size: size, Anchor: anchor, Vertical: vertical,
		Style: Style{Fill: labelColor}, Meta: Meta{Class: ClassLabel}})
}
