/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package export

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/orb"

	"github.com/ijuttt/countyscope/internal/analysis"
	"github.com/ijuttt/countyscope/internal/geo"
	"github.com/ijuttt/countyscope/internal/model"
	"github.com/ijuttt/countyscope/internal/view"
)

func testFrame(filtered int) *view.Frame {
	full := []*model.Record{
		{ID: "01001", Name: "Low & Co", PovertyPct: 5, HighBloodPressurePct: 20},
		{ID: "01003", Name: "Mid", PovertyPct: 10, HighBloodPressurePct: 25},
		{ID: "01005", Name: "High", PovertyPct: 15, HighBloodPressurePct: 30},
	}
	sq := func(lon float64) orb.MultiPolygon {
		return orb.MultiPolygon{{{{lon - .5, 38}, {lon + .5, 38}, {lon + .5, 39}, {lon - .5, 39}, {lon - .5, 38}}}}
	}
	fs := geo.NewFeatureSet([]geo.Feature{
		{ID: "01001", Geometry: sq(-96)},
		{ID: "01003", Geometry: sq(-92)},
		{ID: "01005", Geometry: sq(-88)},
		{ID: "01007", Geometry: sq(-84)},
	})
	ps := geo.Project(fs, view.NewMapProjection())
	return view.Render(full, full[:filtered], analysis.PovertyAttribute{}, nil, ps)
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSVG(&buf, testFrame(2)); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "<?xml") || !strings.Contains(out, "</svg>") {
		t.Fatalf("not a complete SVG document:\n%.200s", out)
	}
	if n := strings.Count(out, "<circle"); n != 2 {
		t.Errorf("circles = %d, want one per filtered record (2)", n)
	}
	if n := strings.Count(out, "<path"); n != 4 {
		t.Errorf("paths = %d, want one per county (4)", n)
	}
	if !strings.Contains(out, "Low &amp; Co") {
		t.Error("tooltip text not escaped")
	}
	if !strings.Contains(out, `data-id="01003"`) {
		t.Error("record id missing")
	}
	if !strings.Contains(out, "fill:#dddddd") {
		t.Error("neutral fill missing for filtered-out counties")
	}
}

func TestLayout(t *testing.T) {
	pl, w, h := Layout(testFrame(3))
	if len(pl) != 4 {
		t.Fatalf("placements = %d, want 4", len(pl))
	}
	if pl[3].Panel.Name != view.PanelMap || pl[3].Y != 400+PanelGap {
		t.Errorf("map placement = %+v", pl[3])
	}
	if pl[1].X != 600+PanelGap || pl[2].X != 1000+2*PanelGap {
		t.Errorf("row placements = %v, %v", pl[1].X, pl[2].X)
	}
	if w != 1400+2*PanelGap || h != 800+PanelGap {
		t.Errorf("size = %vx%v", w, h)
	}
}

func TestWritePanelPNG(t *testing.T) {
	for _, p := range testFrame(3).Panels {
		t.Run(p.Name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WritePanelPNG(&buf, p); err != nil {
				t.Fatalf("WritePanelPNG: %v", err)
			}
			img, err := png.Decode(&buf)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			b := img.Bounds()
			if b.Dx() != int(p.Width) || b.Dy() != int(p.Height) {
				t.Errorf("image = %dx%d, want %vx%v", b.Dx(), b.Dy(), p.Width, p.Height)
			}
		})
	}
}

func TestWriteFrame(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	f := testFrame(1)

	paths, err := WriteFrame(dir, f, FormatSVG)
	if err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	want := []string{"scatter.svg", "histogram.svg", "bp-histogram.svg", "map.svg", DashboardFile}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v", paths)
	}
	for i, name := range want {
		if filepath.Base(paths[i]) != name {
			t.Errorf("paths[%d] = %s, want %s", i, paths[i], name)
		}
		if info, err := os.Stat(paths[i]); err != nil || info.Size() == 0 {
			t.Errorf("%s not written: %v", paths[i], err)
		}
	}

	pngs, err := WriteFrame(dir, f, FormatPNG)
	if err != nil {
		t.Fatalf("WriteFrame png: %v", err)
	}
	if len(pngs) != 4 {
		t.Errorf("png paths = %v, want 4", pngs)
	}

	if _, err := WriteFrame(dir, f, "gif"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestWritePanelSVGEscapesRecordID(t *testing.T) {
	p := &view.Panel{Name: view.PanelScatter, Width: 100, Height: 100, Shapes: []view.Shape{
		view.Circle{X: 50, Y: 50, R: 5, Meta: view.Meta{Class: view.ClassPoint, RecordID: `01"&<7`}},
	}}
	var buf bytes.Buffer
	if err := WritePanelSVG(&buf, p); err != nil {
		t.Fatalf("WritePanelSVG: %v", err)
	}
	out := buf.String()
	if want := `data-id="01&#34;&amp;&lt;7"`; !strings.Contains(out, want) {
		t.Errorf("output missing %s:\n%s", want, out)
	}
	if strings.Contains(out, `01"&<7`) {
		t.Error("raw record id written into the attribute")
	}
}
