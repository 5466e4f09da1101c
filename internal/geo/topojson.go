package geo

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/paulmach/orb"

	"github.com/ijuttt/countyscope/internal/logging"
	"github.com/ijuttt/countyscope/internal/model"
)

type topology struct {
	Type      string                     `json:"type"`
	Transform *topoTransform             `json:"transform"`
	Objects   map[string]json.RawMessage `json:"objects"`
	Arcs      [][][]float64              `json:"arcs"`
}

type topoTransform struct {
	Scale     [2]float64 `json:"scale"`
	Translate [2]float64 `json:"translate"`
}

type topoObject struct {
	Type       string          `json:"type"`
	ID         json.RawMessage `json:"id"`
	Properties map[string]any  `json:"properties"`
	Arcs       json.RawMessage `json:"arcs"`
	Geometries []topoObject    `json:"geometries"`
}

// DecodeTopology converts the named object of a TopoJSON topology into
// features. Quantized arcs are delta-decoded with the topology transform.
func DecodeTopology(data []byte, object string) (*FeatureSet, error) {
	var topo topology
	if err := json.Unmarshal(data, &topo); err != nil {
		return nil, fmt.Errorf("decode topology: %w", err)
	}
	raw, ok := topo.Objects[object]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoObject, object)
	}
	var obj topoObject
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("decode object %q: %w", object, err)
	}

	arcs := decodeArcs(topo.Arcs, topo.Transform)

	geoms := obj.Geometries
	if obj.Type != "GeometryCollection" {
		geoms = []topoObject{obj}
	}

	features := make([]Feature, 0, len(geoms))
	for i, g := range geoms {
		mp, err := g.multiPolygon(arcs)
		if err != nil {
			return nil, fmt.Errorf("geometry %d: %w", i, err)
		}
		if mp == nil {
			continue
		}
		f := Feature{ID: decodeID(g.ID), Geometry: mp}
		if name, ok := g.Properties["name"].(string); ok {
			f.Name = name
		}
		if f.ID == "" {
			logging.Debugf("geo: geometry %d has no id", i)
		}
		features = append(features, f)
	}
	return NewFeatureSet(features), nil
}

// decodeArcs turns quantized, delta-encoded arcs into absolute positions.
func decodeArcs(in [][][]float64, tr *topoTransform) [][]orb.Point {
	out := make([][]orb.Point, len(in))
	for i, arc := range in {
		pts := make([]orb.Point, 0, len(arc))
		var x, y float64
		for _, pos := range arc {
			if len(pos) < 2 {
				continue
			}
			if tr == nil {
				pts = append(pts, orb.Point{pos[0], pos[1]})
				continue
			}
			x += pos[0]
			y += pos[1]
			pts = append(pts, orb.Point{
				x*tr.Scale[0] + tr.Translate[0],
				y*tr.Scale[1] + tr.Translate[1],
			})
		}
		out[i] = pts
	}
	return out
}

func (g topoObject) multiPolygon(arcs [][]orb.Point) (orb.MultiPolygon, error) {
	switch g.Type {
	case "Polygon":
		var rings [][]int
		if err := json.Unmarshal(g.Arcs, &rings); err != nil {
			return nil, err
		}
		poly, err := stitchPolygon(rings, arcs)
		if err != nil {
			return nil, err
		}
		return orb.MultiPolygon{poly}, nil
	case "MultiPolygon":
		var polys [][][]int
		if err := json.Unmarshal(g.Arcs, &polys); err != nil {
			return nil, err
		}
		mp := make(orb.MultiPolygon, 0, len(polys))
		for _, rings := range polys {
			poly, err := stitchPolygon(rings, arcs)
			if err != nil {
				return nil, err
			}
			mp = append(mp, poly)
		}
		return mp, nil
	case "", "null":
		return nil, nil
	}
	logging.Debugf("geo: skipping %s geometry", g.Type)
	return nil, nil
}

func stitchPolygon(rings [][]int, arcs [][]orb.Point) (orb.Polygon, error) {
	poly := make(orb.Polygon, 0, len(rings))
	for _, refs := range rings {
		ring, err := stitchRing(refs, arcs)
		if err != nil {
			return nil, err
		}
		poly = append(poly, ring)
	}
	return poly, nil
}

// stitchRing concatenates the referenced arcs. A negative reference ~i
// walks arc i backwards; the shared endpoint between arcs is kept once.
func stitchRing(refs []int, arcs [][]orb.Point) (orb.Ring, error) {
	var ring orb.Ring
	for k, ref := range refs {
		idx, reverse := ref, false
		if ref < 0 {
			idx, reverse = ^ref, true
		}
		if idx >= len(arcs) {
			return nil, fmt.Errorf("arc index %d out of range (%d arcs)", idx, len(arcs))
		}
		arc := arcs[idx]
		for j := range arc {
			if k > 0 && j == 0 {
				continue
			}
			p := arc[j]
			if reverse {
				p = arc[len(arc)-1-j]
			}
			ring = append(ring, p)
		}
	}
	return ring, nil
}

// decodeID accepts string or numeric ids.
func decodeID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return model.NormalizeID(s)
	}
	if n, err := strconv.ParseFloat(string(raw), 64); err == nil {
		return model.IDFromNumber(n)
	}
	return ""
}
