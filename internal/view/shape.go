/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package view renders the dashboard panels as draw commands. Every
// renderer is a pure function of the records and attribute it is given;
// surfaces (terminal, SVG, PNG) only consume the resulting shapes.
package view

import (
	"image/color"
	"math"

	"github.com/paulmach/orb"
)

// Class tags a shape with its role so surfaces can style or hit-test it.
type Class string

const (
	ClassPoint  Class = "point"
	ClassBar    Class = "bar"
	ClassCounty Class = "county"
	ClassAxis   Class = "axis"
	ClassTick   Class = "tick"
	ClassLabel  Class = "label"
	ClassBrush  Class = "brush"
)

// Rect is an axis-aligned rectangle in pixels. Corners may be in any order
// until Normalize is called.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Normalize returns r with X0 <= X1 and Y0 <= Y1.
func (r Rect) Normalize() Rect {
	if r.X0 > r.X1 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Y0 > r.Y1 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}
	return r
}

// Contains reports whether (x, y) lies in the normalized rectangle,
// bounds inclusive.
func (r Rect) Contains(x, y float64) bool {
	n := r.Normalize()
	return x >= n.X0 && x <= n.X1 && y >= n.Y0 && y <= n.Y1
}

func (r Rect) Width() float64  { return math.Abs(r.X1 - r.X0) }
func (r Rect) Height() float64 { return math.Abs(r.Y1 - r.Y0) }

// Style is the paint applied to a shape. A zero Stroke alpha means no
// outline; Opacity 0 is treated as fully opaque.
type Style struct {
	Fill        color.RGBA
	Stroke      color.RGBA
	StrokeWidth float64
	Opacity     float64
}

// Alpha returns the effective opacity in [0, 1].
func (s Style) Alpha() float64 {
	if s.Opacity <= 0 || s.Opacity > 1 {
		return 1
	}
	return s.Opacity
}

// Meta is the non-visual data carried by a shape.
type Meta struct {
	Class    Class
	RecordID string
	Tooltip  string
}

// Shape is one draw command.
type Shape interface {
	Info() Meta
}

// Circle is a filled disc centred on (X, Y).
type Circle struct {
	X, Y, R float64
	Style
	Meta
}

// Box is a filled rectangle.
type Box struct {
	Rect
	Style
	Meta
}

// Polygon is a filled multipolygon in panel pixels.
type Polygon struct {
	Geometry orb.MultiPolygon
	Style
	Meta
}

// Line is a straight stroke.
type Line struct {
	X0, Y0, X1, Y1 float64
	Style
	Meta
}

// Anchor is the horizontal alignment of a Text.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Text is a label whose baseline starts at (X, Y). Vertical text is
// rotated -90 degrees around its anchor point.
type Text struct {
	X, Y     float64
	Value    string
	Size     float64
	Anchor   Anchor
	Vertical bool
	Style
	Meta
}

func (c Circle) Info() Meta  { return c.Meta }
func (b Box) Info() Meta     { return b.Meta }
func (p Polygon) Info() Meta { return p.Meta }
func (l Line) Info() Meta    { return l.Meta }
func (t Text) Info() Meta    { return t.Meta }
