package geo

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// minExtent keeps zero-width features valid as tree entries.
const minExtent = 1e-6

// ProjectedFeature is a feature in screen pixels.
type ProjectedFeature struct {
	ID    string
	Name  string
	Shape orb.MultiPolygon
	Bound orb.Bound
	index int
}

func (f *ProjectedFeature) Bounds() rtreego.Rect {
	lengths := []float64{
		math.Max(f.Bound.Max[0]-f.Bound.Min[0], minExtent),
		math.Max(f.Bound.Max[1]-f.Bound.Min[1], minExtent),
	}
	r, err := rtreego.NewRect(rtreego.Point{f.Bound.Min[0], f.Bound.Min[1]}, lengths)
	if err != nil {
		return rtreego.Point{f.Bound.Min[0], f.Bound.Min[1]}.ToRect(minExtent)
	}
	return r
}

// ProjectedSet holds every feature projected once, plus a spatial index of
// their bounds for pixel lookups.
type ProjectedSet struct {
	Features []*ProjectedFeature
	tree     *rtreego.Rtree
}

// Project projects fs through proj. Features with no polygon inside any
// inset are dropped. A nil FeatureSet yields an empty set.
func Project(fs *FeatureSet, proj *AlbersUSA) *ProjectedSet {
	ps := &ProjectedSet{}
	if fs == nil {
		ps.tree = rtreego.NewTree(2, 25, 50)
		return ps
	}

	objs := make([]rtreego.Spatial, 0, fs.Len())
	for _, f := range fs.Features {
		shape := proj.ProjectMultiPolygon(f.Geometry)
		if len(shape) == 0 {
			continue
		}
		pf := &ProjectedFeature{
			ID:    f.ID,
			Name:  f.Name,
			Shape: shape,
			Bound: shape.Bound(),
			index: len(ps.Features),
		}
		ps.Features = append(ps.Features, pf)
		objs = append(objs, pf)
	}
	ps.tree = rtreego.NewTree(2, 25, 50, objs...)
	return ps
}

// Len returns the number of projected features.
func (ps *ProjectedSet) Len() int {
	if ps == nil {
		return 0
	}
	return len(ps.Features)
}

// Locate returns the feature containing the pixel (x, y). When shapes
// overlap, the one drawn last wins.
func (ps *ProjectedSet) Locate(x, y float64) (*ProjectedFeature, bool) {
	if ps.Len() == 0 {
		return nil, false
	}
	pt := orb.Point{x, y}
	var hit *ProjectedFeature
	for _, obj := range ps.tree.SearchIntersect(rtreego.Point{x, y}.ToRect(minExtent)) {
		f := obj.(*ProjectedFeature)
		if !planar.MultiPolygonContains(f.Shape, pt) {
			continue
		}
		if hit == nil || f.index > hit.index {
			hit = f
		}
	}
	return hit, hit != nil
}
