package view

import (
	"image/color"

	"github.com/aclements/go-gg/palette"
)

// NeutralFill colors counties with no record in the filtered subset.
var NeutralFill = color.RGBA{R: 0xDD, G: 0xDD, B: 0xDD, A: 0xFF}

// blues is the nine-class ColorBrewer Blues ramp, lightest first.
var blues = []color.RGBA{
	{0xF7, 0xFB, 0xFF, 0xFF},
	{0xDE, 0xEB, 0xF7, 0xFF},
	{0xC6, 0xDB, 0xEF, 0xFF},
	{0x9E, 0xCA, 0xE1, 0xFF},
	{0x6B, 0xAE, 0xD6, 0xFF},
	{0x42, 0x92, 0xC6, 0xFF},
	{0x21, 0x71, 0xB5, 0xFF},
	{0x08, 0x51, 0x9C, 0xFF},
	{0x08, 0x30, 0x6B, 0xFF},
}

// bluesGradient repeats the first stop: RGBGradient.Map holds the first
// segment flat, so Sequential maps t into the segments after it.
var bluesGradient = palette.RGBGradient{Colors: append([]color.RGBA{blues[0]}, blues...)}

// Sequential maps t in [0, 1] onto the Blues ramp. Values outside the
// interval are clamped.
func Sequential(t float64) color.RGBA {
	switch {
	case t <= 0:
		return blues[0]
	case t >= 1:
		return blues[len(blues)-1]
	}
	segs := float64(len(bluesGradient.Colors) - 1)
	c := bluesGradient.Map((1 + t*(segs-1)) / segs)
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// ColorScale maps attribute values onto the sequential ramp.
type ColorScale struct {
	Min, Max float64
}

// Color returns the fill for v. A zero-width domain maps to the middle
// of the ramp.
func (s ColorScale) Color(v float64) color.RGBA {
	if s.Max == s.Min {
		return Sequential(0.5)
	}
	return Sequential((v - s.Min) / (s.Max - s.Min))
}
