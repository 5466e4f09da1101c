package render

import (
	"strings"
	"testing"

	"github.com/ijuttt/countyscope/internal/analysis"
	"github.com/ijuttt/countyscope/internal/geo"
	"github.com/ijuttt/countyscope/internal/model"
	"github.com/ijuttt/countyscope/internal/view"
)

func records() []*model.Record {
	return []*model.Record{
		{ID: "01001", Name: "Low", PovertyPct: 5, HighBloodPressurePct: 20},
		{ID: "01003", Name: "Mid", PovertyPct: 10, HighBloodPressurePct: 25},
		{ID: "01005", Name: "High", PovertyPct: 15, HighBloodPressurePct: 30},
	}
}

func TestHeader(t *testing.T) {
	got := Header(analysis.PovertyAttribute{}, 1, 3, 4)
	for _, want := range []string{"Poverty (%)", "1/3 counties selected", "render #4"} {
		if !strings.Contains(got, want) {
			t.Errorf("Header() = %q, missing %q", got, want)
		}
	}
}

func TestBrush(t *testing.T) {
	attr := analysis.PovertyAttribute{}
	xs, ys := view.ScatterScales(records(), attr)

	if got := Brush(nil, xs, ys, attr); !strings.Contains(got, "none") {
		t.Errorf("Brush(nil) = %q, want none", got)
	}

	// (70, 350) is the Low county's point, (315, 195) the Mid county's.
	b := &view.Rect{X0: 315, Y0: 195, X1: 70, Y1: 350}
	got := Brush(b, xs, ys, attr)
	for _, want := range []string{"Poverty 5.0%..10.0%", "High Blood Pressure 20.0%..25.0%"} {
		if !strings.Contains(got, want) {
			t.Errorf("Brush() = %q, missing %q", got, want)
		}
	}
}

func TestHistogram(t *testing.T) {
	got := Histogram(analysis.PovertyAttribute{}, records())
	if !strings.Contains(got, "=== POVERTY ===") {
		t.Errorf("missing section header: %q", got)
	}
	if !strings.Contains(got, "5.0% .. 15.0%  (3 counties, peak 1 per bin)") {
		t.Errorf("missing range line: %q", got)
	}

	empty := Histogram(analysis.PovertyAttribute{}, nil)
	if !strings.Contains(empty, "no counties selected") {
		t.Errorf("empty histogram = %q", empty)
	}
}

func TestSelection(t *testing.T) {
	var many []*model.Record
	for i := 0; i < MaxListedCounties+3; i++ {
		many = append(many, &model.Record{ID: "x", Name: strings.Repeat("n", 40), PovertyPct: 1})
	}
	got := Selection(many, analysis.PovertyAttribute{})
	if !strings.Contains(got, "... and 3 more") {
		t.Errorf("Selection() = %q, want overflow line", got)
	}
	if strings.Contains(got, strings.Repeat("n", NameDisplayWidth+1)) {
		t.Error("long names are not truncated")
	}
	if got := Selection(nil, analysis.PovertyAttribute{}); !strings.Contains(got, "none") {
		t.Errorf("Selection(nil) = %q", got)
	}
}

func TestMap(t *testing.T) {
	if got := Map(nil, records()); !strings.Contains(got, view.MapUnavailable) {
		t.Errorf("Map(nil) = %q, want %q", got, view.MapUnavailable)
	}

	ps := &geo.ProjectedSet{Features: []*geo.ProjectedFeature{{ID: "01001"}, {ID: "01003"}, {ID: "99999"}}}
	got := Map(ps, records()[:1])
	if !strings.Contains(got, "3 counties drawn") || !strings.Contains(got, "1 colored") ||
		!strings.Contains(got, "2 neutral") {
		t.Errorf("Map() = %q", got)
	}
}
