package geo

import (
	"math"

	"github.com/paulmach/orb"
)

const radians = math.Pi / 180

// conic is a conic equal-area projection with a longitude rotation, a
// projected center and a screen scale/translate.
type conic struct {
	n, c, r0 float64
	rotate   float64 // radians added to longitude
	cx, cy   float64 // raw projection of the center
	k        float64
	tx, ty   float64
}

func newConic(rotate, centerLon, centerLat, phi0, phi1 float64) *conic {
	sy0 := math.Sin(phi0 * radians)
	n := (sy0 + math.Sin(phi1*radians)) / 2
	c := 1 + sy0*(2*n-sy0)
	p := &conic{n: n, c: c, r0: math.Sqrt(c) / n, rotate: rotate * radians, k: 1}
	p.cx, p.cy = p.raw(centerLon*radians, centerLat*radians)
	return p
}

func (p *conic) raw(lambda, phi float64) (float64, float64) {
	r := math.Sqrt(p.c-2*p.n*math.Sin(phi)) / p.n
	lambda *= p.n
	return r * math.Sin(lambda), p.r0 - r*math.Cos(lambda)
}

func (p *conic) project(lon, lat float64) (float64, float64) {
	lambda := lon*radians + p.rotate
	if lambda > math.Pi {
		lambda -= 2 * math.Pi
	} else if lambda < -math.Pi {
		lambda += 2 * math.Pi
	}
	x, y := p.raw(lambda, lat*radians)
	return p.tx + (x-p.cx)*p.k, p.ty - (y-p.cy)*p.k
}

// extent is a screen-space clip box for one inset.
type extent struct{ x0, y0, x1, y1 float64 }

func (e extent) contains(x, y float64) bool {
	return x >= e.x0 && x < e.x1 && y >= e.y0 && y < e.y1
}

// AlbersUSA is the composite projection used for US county maps: the lower
// 48 states on an Albers conic, with Alaska and Hawaii moved into insets
// below the southwest corner.
type AlbersUSA struct {
	Scale      float64
	TranslateX float64
	TranslateY float64

	lower48, alaska, hawaii             *conic
	lower48Clip, alaskaClip, hawaiiClip extent
}

// NewAlbersUSA builds the composite projection for the given scale and
// translate. A scale of 1070 and translate (480, 250) fits a 960x500 canvas.
func NewAlbersUSA(scale, tx, ty float64) *AlbersUSA {
	a := &AlbersUSA{
		Scale:      scale,
		TranslateX: tx,
		TranslateY: ty,
		lower48:    newConic(96, -0.6, 38.7, 29.5, 45.5),
		alaska:     newConic(154, -2, 58.5, 55, 65),
		hawaii:     newConic(157, -3, 19.9, 8, 18),
	}
	k := scale
	a.lower48.k, a.lower48.tx, a.lower48.ty = k, tx, ty
	a.alaska.k, a.alaska.tx, a.alaska.ty = 0.35*k, tx-0.307*k, ty+0.201*k
	a.hawaii.k, a.hawaii.tx, a.hawaii.ty = k, tx-0.205*k, ty+0.212*k

	a.lower48Clip = extent{tx - 0.455*k, ty - 0.238*k, tx + 0.455*k, ty + 0.238*k}
	a.alaskaClip = extent{tx - 0.425*k, ty + 0.120*k, tx - 0.214*k, ty + 0.234*k}
	a.hawaiiClip = extent{tx - 0.214*k, ty + 0.166*k, tx - 0.115*k, ty + 0.234*k}
	return a
}

// inset picks the sub-projection whose clip box receives (lon, lat).
func (a *AlbersUSA) inset(lon, lat float64) *conic {
	for _, c := range []struct {
		p    *conic
		clip extent
	}{
		{a.lower48, a.lower48Clip},
		{a.alaska, a.alaskaClip},
		{a.hawaii, a.hawaiiClip},
	} {
		if x, y := c.p.project(lon, lat); c.clip.contains(x, y) {
			return c.p
		}
	}
	return nil
}

// Project maps a longitude/latitude pair to screen pixels. ok is false for
// points outside every inset.
func (a *AlbersUSA) Project(lon, lat float64) (x, y float64, ok bool) {
	p := a.inset(lon, lat)
	if p == nil {
		return 0, 0, false
	}
	x, y = p.project(lon, lat)
	return x, y, true
}

// ProjectPolygon projects every ring of poly with a single inset, chosen by
// the center of the polygon's bounds, so an island chain is never split
// between insets. ok is false when the polygon falls outside every inset.
func (a *AlbersUSA) ProjectPolygon(poly orb.Polygon) (orb.Polygon, bool) {
	if len(poly) == 0 || len(poly[0]) == 0 {
		return nil, false
	}
	c := poly.Bound().Center()
	p := a.inset(c[0], c[1])
	if p == nil {
		p = a.inset(poly[0][0][0], poly[0][0][1])
	}
	if p == nil {
		return nil, false
	}
	out := make(orb.Polygon, len(poly))
	for i, ring := range poly {
		r := make(orb.Ring, len(ring))
		for j, pt := range ring {
			x, y := p.project(pt[0], pt[1])
			r[j] = orb.Point{x, y}
		}
		out[i] = r
	}
	return out, true
}

// ProjectMultiPolygon projects each member polygon, dropping those outside
// every inset.
func (a *AlbersUSA) ProjectMultiPolygon(mp orb.MultiPolygon) orb.MultiPolygon {
	out := make(orb.MultiPolygon, 0, len(mp))
	for _, poly := range mp {
		if pp, ok := a.ProjectPolygon(poly); ok {
			out = append(out, pp)
		}
	}
	return out
}
