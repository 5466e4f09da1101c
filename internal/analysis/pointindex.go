package analysis

import (
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
)

// pointTolerance pads each point into a small box so the tree never holds
// zero-size rectangles. Hits are confirmed with exact comparisons.
const pointTolerance = 0.5

type indexedPoint struct {
	idx  int
	x, y float64
}

func (p *indexedPoint) Bounds() rtreego.Rect {
	return rtreego.Point{p.x, p.y}.ToRect(pointTolerance)
}

// PointIndex answers rectangle queries over projected 2-D points.
type PointIndex struct {
	tree *rtreego.Rtree
	n    int
}

// NewPointIndex indexes the points (xs[i], ys[i]). Points with a non-finite
// coordinate are left out.
func NewPointIndex(xs, ys []float64) *PointIndex {
	objs := make([]rtreego.Spatial, 0, len(xs))
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			continue
		}
		objs = append(objs, &indexedPoint{idx: i, x: xs[i], y: ys[i]})
	}
	return &PointIndex{
		tree: rtreego.NewTree(2, 25, 50, objs...),
		n:    len(objs),
	}
}

// Len returns the number of indexed points.
func (pi *PointIndex) Len() int { return pi.n }

// Within returns the indices of the points inside [x0,x1]x[y0,y1], bounds
// inclusive, in ascending order. Corners may be given in any order.
func (pi *PointIndex) Within(x0, y0, x1, y1 float64) []int {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if pi.n == 0 {
		return nil
	}
	query, err := rtreego.NewRectFromPoints(
		rtreego.Point{x0 - pointTolerance, y0 - pointTolerance},
		rtreego.Point{x1 + pointTolerance, y1 + pointTolerance},
	)
	if err != nil {
		return nil
	}

	var hits []int
	for _, obj := range pi.tree.SearchIntersect(query) {
		p := obj.(*indexedPoint)
		if p.x >= x0 && p.x <= x1 && p.y >= y0 && p.y <= y1 {
			hits = append(hits, p.idx)
		}
	}
	sort.Ints(hits)
	return hits
}

// Nearest returns the index of the indexed point closest to (x, y) and its
// distance. ok is false for an empty index.
func (pi *PointIndex) Nearest(x, y float64) (idx int, dist float64, ok bool) {
	if pi.n == 0 {
		return 0, 0, false
	}
	obj := pi.tree.NearestNeighbor(rtreego.Point{x, y})
	if obj == nil {
		return 0, 0, false
	}
	p := obj.(*indexedPoint)
	return p.idx, math.Hypot(p.x-x, p.y-y), true
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
