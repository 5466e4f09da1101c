package view

import (
	"github.com/ijuttt/countyscope/internal/analysis"
	"github.com/ijuttt/countyscope/internal/geo"
	"github.com/ijuttt/countyscope/internal/model"
)

// Render builds a full frame: scatterplot, current-attribute histogram,
// blood pressure histogram and map, in that order.
func Render(full, filtered []*model.Record, attr analysis.Attribute, brush *Rect, features *geo.ProjectedSet) *Frame {
	return &Frame{
		Attribute: attr.Key(),
		Subset:    len(filtered),
		Total:     len(full),
		Panels: []*Panel{
			Scatter(full, filtered, attr, brush),
			Histogram(PanelHistogram, filtered, attr),
			Histogram(PanelBloodPressure, filtered, YAttribute),
			Choropleth(features, filtered, attr),
		},
	}
}
