/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package geo

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/paulmach/orb"
)

const twoSquares = `{
  "type": "Topology",
  "transform": {"scale": [0.5, 0.5], "translate": [10, 20]},
  "objects": {
    "counties": {
      "type": "GeometryCollection",
      "geometries": [
        {"type": "Polygon", "id": "1001", "properties": {"name": "Left"}, "arcs": [[0, 1]]},
        {"type": "MultiPolygon", "id": 1003, "arcs": [[[2, -1]]]},
        {"type": null}
      ]
    }
  },
  "arcs": [
    [[1, 0], [0, 1]],
    [[1, 1], [-1, 0], [0, -1], [1, 0]],
    [[1, 0], [1, 0], [0, 1], [-1, 0]]
  ]
}`

func TestDecodeTopology(t *testing.T) {
	fs, err := Decode([]byte(twoSquares), "counties")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if fs.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", fs.Len())
	}

	left, ok := fs.Lookup("01001")
	if !ok {
		t.Fatal("Lookup(01001) missed")
	}
	if left.Name != "Left" {
		t.Errorf("Name = %q, want Left", left.Name)
	}
	wantLeft := orb.Ring{{10.5, 20}, {10.5, 20.5}, {10, 20.5}, {10, 20}, {10.5, 20}}
	if got := left.Geometry[0][0]; !reflect.DeepEqual(got, wantLeft) {
		t.Errorf("left ring = %v, want %v", got, wantLeft)
	}

	right, ok := fs.Lookup("01003")
	if !ok {
		t.Fatal("Lookup(01003) missed (numeric id)")
	}
	wantRight := orb.Ring{{10.5, 20}, {11, 20}, {11, 20.5}, {10.5, 20.5}, {10.5, 20}}
	if got := right.Geometry[0][0]; !reflect.DeepEqual(got, wantRight) {
		t.Errorf("right ring = %v, want %v", got, wantRight)
	}
}

func TestDecodeTopologyErrors(t *testing.T) {
	if _, err := Decode([]byte(twoSquares), "states"); !errors.Is(err, ErrNoObject) {
		t.Errorf("err = %v, want ErrNoObject", err)
	}
	if _, err := Decode([]byte(`{"type":"Point"}`), "counties"); !errors.Is(err, ErrUnknownInput) {
		t.Errorf("err = %v, want ErrUnknownInput", err)
	}
	bad := `{"type":"Topology","objects":{"c":{"type":"Polygon","arcs":[[5]]}},"arcs":[]}`
	if _, err := Decode([]byte(bad), "c"); err == nil {
		t.Error("out of range arc accepted")
	}
}

func TestDecodeGeoJSON(t *testing.T) {
	doc := `{"type":"FeatureCollection","features":[
	  {"type":"Feature","id":"06037","properties":{"name":"Los Angeles"},
	   "geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,0]]]}},
	  {"type":"Feature","properties":{"fips":"6059"},
	   "geometry":{"type":"MultiPolygon","coordinates":[[[[0,0],[1,0],[1,1],[0,0]]]]}},
	  {"type":"Feature","id":"x","geometry":{"type":"Point","coordinates":[0,0]}}
	]}`

	fs, err := DecodeGeoJSON([]byte(doc), "fips")
	if err != nil {
		t.Fatalf("DecodeGeoJSON: %v", err)
	}
	if fs.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (point skipped)", fs.Len())
	}
	if f, ok := fs.Lookup("06037"); !ok || f.Name != "Los Angeles" {
		t.Errorf("Lookup(06037) = %+v, %v", f, ok)
	}
	if _, ok := fs.Lookup("06059"); !ok {
		t.Error("id from property not normalized")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counties-10m.json")
	if err := os.WriteFile(path, []byte(twoSquares), 0o644); err != nil {
		t.Fatal(err)
	}
	fs, err := LoadFile(path, "counties")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if fs.Source != path || fs.Len() != 2 {
		t.Errorf("Source = %q, Len = %d", fs.Source, fs.Len())
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "none.json"), "counties"); err == nil {
		t.Error("missing file accepted")
	}
}

func TestAlbersUSA(t *testing.T) {
	a := NewAlbersUSA(600, 300, 200)

	x, y, ok := a.Project(-96.6, 38.7)
	if !ok || math.Abs(x-300) > 1e-9 || math.Abs(y-200) > 1e-9 {
		t.Errorf("center = (%v, %v, %v), want (300, 200)", x, y, ok)
	}

	// East of the center moves right, north moves up.
	ex, _, _ := a.Project(-90, 38.7)
	_, ny, _ := a.Project(-96.6, 44)
	if ex <= 300 || ny >= 200 {
		t.Errorf("orientation: east x = %v, north y = %v", ex, ny)
	}

	tests := []struct {
		name     string
		lon, lat float64
		box      extent
	}{
		{"anchorage", -149.9, 61.2, a.alaskaClip},
		{"honolulu", -157.86, 21.3, a.hawaiiClip},
		{"kansas", -98, 38.5, a.lower48Clip},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := a.Project(tt.lon, tt.lat)
			if !ok {
				t.Fatal("point dropped")
			}
			if !tt.box.contains(x, y) {
				t.Errorf("(%v, %v) outside inset %+v", x, y, tt.box)
			}
		})
	}

	if _, _, ok := a.Project(-30, 30); ok {
		t.Error("Atlantic point projected, want dropped")
	}
}

func square(lon, lat, half float64) orb.MultiPolygon {
	return orb.MultiPolygon{{{
		{lon - half, lat - half}, {lon + half, lat - half},
		{lon + half, lat + half}, {lon - half, lat + half},
		{lon - half, lat - half},
	}}}
}

func TestProjectedSetLocate(t *testing.T) {
	fs := NewFeatureSet([]Feature{
		{ID: "20001", Geometry: square(-96.6, 38.7, 0.5)},
		{ID: "20003", Geometry: square(-90, 38.7, 0.5)},
		{ID: "99999", Geometry: square(-30, 30, 0.5)},
	})
	ps := Project(fs, NewAlbersUSA(600, 300, 200))

	if ps.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (Atlantic feature dropped)", ps.Len())
	}
	f, ok := ps.Locate(300, 200)
	if !ok || f.ID != "20001" {
		t.Errorf("Locate(300, 200) = %v, %v; want 20001", f, ok)
	}
	if _, ok := ps.Locate(5, 5); ok {
		t.Error("Locate(5, 5) hit, want miss")
	}

	var empty *ProjectedSet
	if _, ok := empty.Locate(1, 1); ok {
		t.Error("nil set located a feature")
	}
	if Project(nil, NewAlbersUSA(600, 300, 200)).Len() != 0 {
		t.Error("Project(nil) not empty")
	}
}
