/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package app

import (
	"errors"
	"math/rand"
	"strconv"
	"sync"
	"testing"

	"github.com/paulmach/orb"

	"github.com/ijuttt/countyscope/internal/analysis"
	"github.com/ijuttt/countyscope/internal/geo"
	"github.com/ijuttt/countyscope/internal/model"
	"github.com/ijuttt/countyscope/internal/view"
)

func scenario() *model.Dataset {
	return &model.Dataset{Records: []*model.Record{
		{ID: "01001", PovertyPct: 5, HighBloodPressurePct: 20, MedianHouseholdIncome: 40000, NoHealthInsurancePct: 9},
		{ID: "01003", PovertyPct: 10, HighBloodPressurePct: 25, MedianHouseholdIncome: 50000, NoHealthInsurancePct: 7},
		{ID: "01005", PovertyPct: 15, HighBloodPressurePct: 30, MedianHouseholdIncome: 60000, NoHealthInsurancePct: 12},
	}}
}

func randomDataset(n int, seed int64) *model.Dataset {
	rng := rand.New(rand.NewSource(seed))
	ds := &model.Dataset{}
	for i := 0; i < n; i++ {
		ds.Records = append(ds.Records, &model.Record{
			ID:                    model.NormalizeID(strconv.Itoa(1000 + i)),
			PovertyPct:            rng.Float64() * 40,
			HighBloodPressurePct:  20 + rng.Float64()*30,
			MedianHouseholdIncome: 25000 + rng.Float64()*100000,
			NoHealthInsurancePct:  rng.Float64() * 25,
		})
	}
	return ds
}

func newState(t *testing.T, ds *model.Dataset, fs *geo.FeatureSet) *State {
	t.Helper()
	s, err := NewState(ds, fs, model.PovertyPct)
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	return s
}

func ids(rs []*model.Record) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.ID
	}
	return out
}

func sameRecords(t *testing.T, got, want []*model.Record) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("subset = %v, want %v", ids(got), ids(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("subset[%d] = %s, want %s (same record, dataset order)", i, got[i].ID, want[i].ID)
		}
	}
}

func TestScenarioBrushThenSwitchAttribute(t *testing.T) {
	ds := scenario()
	s := newState(t, ds, nil)

	s.ApplyBrush(&view.Rect{X0: 300, Y0: 180, X1: 330, Y1: 210})
	got := s.Filtered()
	if len(got) != 1 || got[0].PovertyPct != 10 {
		t.Fatalf("filtered = %v, want only the poverty 10 county", ids(got))
	}
	if b := s.Brush(); b == nil || *b != (view.Rect{X0: 300, Y0: 180, X1: 330, Y1: 210}) {
		t.Errorf("Brush() = %v", b)
	}

	if err := s.SetAttribute(model.MedianHouseholdIncome); err != nil {
		t.Fatalf("SetAttribute: %v", err)
	}
	sameRecords(t, s.Filtered(), ds.Records)
	if s.Brush() != nil {
		t.Error("brush survived attribute change")
	}
	if s.Attribute().Key() != model.MedianHouseholdIncome {
		t.Errorf("Attribute() = %s", s.Attribute().Key())
	}
}

func TestSetAttributeResetsForEveryKey(t *testing.T) {
	ds := randomDataset(50, 1)
	s := newState(t, ds, nil)

	for _, a := range analysis.DefaultAttributes() {
		s.ApplyBrush(&view.Rect{X0: 100, Y0: 100, X1: 250, Y1: 250})
		if err := s.SetAttribute(a.Key()); err != nil {
			t.Fatalf("SetAttribute(%s): %v", a.Key(), err)
		}
		sameRecords(t, s.Filtered(), ds.Records)
	}
}

func TestSetAttributeUnknown(t *testing.T) {
	s := newState(t, scenario(), nil)
	s.ApplyBrush(&view.Rect{X0: 300, Y0: 180, X1: 330, Y1: 210})
	rev := s.Revision()

	err := s.SetAttribute("obesity")
	if !errors.Is(err, ErrUnknownAttribute) {
		t.Fatalf("err = %v, want ErrUnknownAttribute", err)
	}
	if s.Revision() != rev || len(s.Filtered()) != 1 || s.Attribute().Key() != model.PovertyPct {
		t.Error("state changed after rejected attribute")
	}

	if _, err := NewState(scenario(), nil, "obesity"); !errors.Is(err, ErrUnknownAttribute) {
		t.Errorf("NewState err = %v, want ErrUnknownAttribute", err)
	}
}

func TestBrushEnclosingEverything(t *testing.T) {
	ds := randomDataset(200, 2)
	s := newState(t, ds, nil)

	for _, r := range []view.Rect{
		view.ScatterPlotArea(),
		{X0: -1000, Y0: -1000, X1: 1000, Y1: 1000},
		{X0: 560, Y0: 350, X1: 70, Y1: 40}, // inverted corners
	} {
		s.ApplyBrush(&r)
		sameRecords(t, s.Filtered(), ds.Records)
	}
}

func TestBrushDisjoint(t *testing.T) {
	s := newState(t, randomDataset(100, 3), nil)

	for _, r := range []view.Rect{
		{X0: 0, Y0: 0, X1: 60, Y1: 30},
		{X0: 580, Y0: 360, X1: 600, Y1: 400},
	} {
		s.ApplyBrush(&r)
		if n := len(s.Filtered()); n != 0 {
			t.Fatalf("filtered = %d, want 0", n)
		}
		f := s.Frame()
		for _, name := range []string{view.PanelHistogram, view.PanelBloodPressure} {
			p := f.Panel(name)
			if p.Count(view.ClassBar) != 0 {
				t.Errorf("%s bars = %d, want 0", name, p.Count(view.ClassBar))
			}
		}
		if f.Panel(view.PanelScatter).Count(view.ClassPoint) != 0 {
			t.Error("scatter still shows points")
		}
	}
}

func TestNilBrushRestores(t *testing.T) {
	ds := randomDataset(80, 4)
	s := newState(t, ds, nil)

	rects := []*view.Rect{
		{X0: 100, Y0: 100, X1: 200, Y1: 200},
		{X0: 0, Y0: 0, X1: 1, Y1: 1},
		nil,
		{X0: 300, Y0: 50, X1: 500, Y1: 300},
	}
	for _, r := range rects {
		s.ApplyBrush(r)
		s.ApplyBrush(nil)
		sameRecords(t, s.Filtered(), ds.Records)
		if s.Brush() != nil {
			t.Error("Brush() not cleared")
		}
	}
}

func TestBrushMatchesLinearScan(t *testing.T) {
	ds := randomDataset(300, 5)
	s := newState(t, ds, nil)
	rng := rand.New(rand.NewSource(6))

	for i := 0; i < 50; i++ {
		r := view.Rect{
			X0: rng.Float64() * 600, Y0: rng.Float64() * 400,
			X1: rng.Float64() * 600, Y1: rng.Float64() * 400,
		}
		s.ApplyBrush(&r)

		xs, ys := s.Scales()
		var want []*model.Record
		for _, rec := range ds.Records {
			if r.Contains(xs.Map(rec.PovertyPct), ys.Map(rec.HighBloodPressurePct)) {
				want = append(want, rec)
			}
		}
		sameRecords(t, s.Filtered(), want)
	}
}

func TestFrameConsistency(t *testing.T) {
	s := newState(t, scenario(), nil)
	if s.Revision() != 1 {
		t.Errorf("initial Revision() = %d, want 1", s.Revision())
	}

	s.ApplyBrush(&view.Rect{X0: 300, Y0: 180, X1: 330, Y1: 210})
	f := s.Frame()
	if f.Revision != 2 || s.Revision() != 2 {
		t.Errorf("revision = %d/%d, want 2", f.Revision, s.Revision())
	}
	if f.Subset != 1 || f.Total != 3 || f.Attribute != model.PovertyPct {
		t.Errorf("frame = %+v", f)
	}
	want := []string{view.PanelScatter, view.PanelHistogram, view.PanelBloodPressure, view.PanelMap}
	for i, name := range want {
		if f.Panels[i].Name != name {
			t.Errorf("panel %d = %s, want %s", i, f.Panels[i].Name, name)
		}
	}
	if n := f.Panel(view.PanelScatter).Count(view.ClassPoint); n != 1 {
		t.Errorf("scatter points = %d, want 1", n)
	}
	for _, name := range want[1:3] {
		if n := f.Panel(name).Count(view.ClassBar); n != 1 {
			t.Errorf("%s bars = %d, want 1 (degenerate single record)", name, n)
		}
	}
}

func TestEmptyDataset(t *testing.T) {
	s := newState(t, &model.Dataset{}, nil)
	s.ApplyBrush(&view.Rect{X0: 0, Y0: 0, X1: 600, Y1: 400})
	if len(s.Filtered()) != 0 {
		t.Error("records appeared in empty dataset")
	}
	if err := s.SetAttribute(model.NoHealthInsurancePct); err != nil {
		t.Fatal(err)
	}
	if s.Frame().Panel(view.PanelMap).Count(view.ClassLabel) != 1 {
		t.Error("map without geometry should show one label")
	}
}

func countySquare(lon, lat float64) orb.MultiPolygon {
	return orb.MultiPolygon{{{
		{lon - 0.5, lat - 0.5}, {lon + 0.5, lat - 0.5}, {lon + 0.5, lat + 0.5},
		{lon - 0.5, lat + 0.5}, {lon - 0.5, lat - 0.5},
	}}}
}

func TestMapJoinAndFeatureAt(t *testing.T) {
	fs := geo.NewFeatureSet([]geo.Feature{
		{ID: "01001", Name: "Low", Geometry: countySquare(-96.6, 38.7)},
		{ID: "01003", Name: "Mid", Geometry: countySquare(-92, 38.7)},
		{ID: "01005", Name: "High", Geometry: countySquare(-88, 38.7)},
	})
	s := newState(t, scenario(), fs)
	s.ApplyBrush(&view.Rect{X0: 300, Y0: 180, X1: 330, Y1: 210})

	for _, sh := range s.Frame().Panel(view.PanelMap).Select(view.ClassCounty) {
		poly := sh.(view.Polygon)
		neutral := poly.Fill == view.NeutralFill
		if poly.RecordID == "01003" && neutral {
			t.Error("selected county drawn with neutral fill")
		}
		if poly.RecordID != "01003" && !neutral {
			t.Errorf("filtered-out county %s fill = %v, want neutral", poly.RecordID, poly.Fill)
		}
	}

	f, rec, ok := s.FeatureAt(300, 200)
	if !ok || f.ID != "01001" {
		t.Fatalf("FeatureAt(300, 200) = %v, %v", f, ok)
	}
	if rec != nil {
		t.Errorf("record for filtered-out county = %v, want nil", rec.ID)
	}
	if _, _, ok := s.FeatureAt(5, 5); ok {
		t.Error("FeatureAt(5, 5) hit empty space")
	}
}

func TestPointsInRespectsFilter(t *testing.T) {
	s := newState(t, scenario(), nil)
	all := view.Rect{X0: 0, Y0: 0, X1: 600, Y1: 400}

	if got := s.PointsIn(all); len(got) != 3 {
		t.Errorf("PointsIn(all) = %v, want 3", ids(got))
	}
	s.ApplyBrush(&view.Rect{X0: 60, Y0: 340, X1: 80, Y1: 360})
	got := s.PointsIn(all)
	if len(got) != 1 || got[0].ID != "01001" {
		t.Errorf("PointsIn after brush = %v, want [01001]", ids(got))
	}
}

func TestConcurrentReaders(t *testing.T) {
	s := newState(t, randomDataset(100, 7), nil)
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				f := s.Frame()
				if len(f.Panels) != 4 {
					t.Errorf("panels = %d", len(f.Panels))
					return
				}
				_ = s.Filtered()
			}
		}()
	}
	for j := 0; j < 20; j++ {
		s.ApplyBrush(&view.Rect{X0: float64(j * 10), Y0: 0, X1: float64(j*10 + 100), Y1: 400})
	}
	wg.Wait()
}

func TestPointAtPicksClosestSelected(t *testing.T) {
	ds := scenario()
	s := newState(t, ds, nil)

	// Points sit at (70, 350), (315, 195) and (560, 40).
	tests := []struct {
		x, y, radius float64
		want         string
	}{
		{318, 190, 10, "01003"},
		{75, 345, 10, "01001"},
		{318, 190, 2, ""},
		{440, 120, 200, "01005"},
	}
	for _, tt := range tests {
		r, ok := s.PointAt(tt.x, tt.y, tt.radius)
		got := ""
		if ok {
			got = r.ID
		}
		if got != tt.want {
			t.Errorf("PointAt(%v, %v, %v) = %q, want %q", tt.x, tt.y, tt.radius, got, tt.want)
		}
	}

	// With only the first county selected, the filtered-out neighbour is
	// skipped in favour of the selected one further away.
	s.ApplyBrush(&view.Rect{X0: 0, Y0: 300, X1: 100, Y1: 400})
	if _, ok := s.PointAt(315, 195, 10); ok {
		t.Error("PointAt found a filtered-out county")
	}
	r, ok := s.PointAt(200, 270, 300)
	if !ok || r != ds.Records[0] {
		t.Errorf("PointAt(200, 270, 300) = %v, %v, want the selected county 01001", r, ok)
	}
}
