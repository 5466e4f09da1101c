package view

import (
	"image/color"

	"github.com/ijuttt/countyscope/internal/analysis"
	"github.com/ijuttt/countyscope/internal/config"
	"github.com/ijuttt/countyscope/internal/geo"
	"github.com/ijuttt/countyscope/internal/model"
)

// Map projection parameters, matching a 600x400 layout centred in the panel's left half.
const (
	MapScale      = config.ScatterWidth
	MapTranslateX = config.ScatterWidth / 2
	MapTranslateY = config.ScatterHeight / 2
)

var countyStroke = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// MapUnavailable is the label drawn when no county geometry is loaded.
const MapUnavailable = "map unavailable"

// NewMapProjection returns the projection the map panel is drawn with.
func NewMapProjection() *geo.AlbersUSA {
	return geo.NewAlbersUSA(MapScale, MapTranslateX, MapTranslateY)
}

// Choropleth fills every county by the value of attr in the filtered
// subset. Counties absent from the subset get NeutralFill. The color
// domain is the extent of attr over filtered.
func Choropleth(features *geo.ProjectedSet, filtered []*model.Record, attr analysis.Attribute) *Panel {
	p := newPanel(PanelMap, attr.Label()+" by county", config.MapWidth, config.MapHeight)
	p.Plot = Rect{X0: 0, Y0: 0, X1: p.Width, Y1: p.Height}

	if features.Len() == 0 {
		p.label(p.Width/2, p.Height/2, MapUnavailable, titleFont, AnchorMiddle, false)
		return p
	}

	byID := make(map[string]*model.Record, len(filtered))
	for _, r := range filtered {
		byID[r.ID] = r
	}
	lo, hi, _ := analysis.AttributeExtent(filtered, attr)
	cs := ColorScale{Min: lo, Max: hi}

	for _, f := range features.Features {
		style := Style{Fill: NeutralFill, Stroke: countyStroke, StrokeWidth: 0.25}
		meta := Meta{Class: ClassCounty, RecordID: f.ID, Tooltip: f.Name}
		if r, ok := byID[f.ID]; ok {
			v := attr.Extract(r)
			style.Fill = cs.Color(v)
			meta.Tooltip = r.Label() + "\n" + analysis.ShortLabel(attr) + ": " + analysis.FormatValue(attr, v)
		}
		p.add(Polygon{Geometry: f.Shape, Style: style, Meta: meta})
	}
	return p
}
