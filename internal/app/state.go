/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package app provides the shared filter state and the render loop that
// keeps every view in step with it.
package app

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/ijuttt/countyscope/internal/analysis"
	"github.com/ijuttt/countyscope/internal/geo"
	"github.com/ijuttt/countyscope/internal/logging"
	"github.com/ijuttt/countyscope/internal/model"
	"github.com/ijuttt/countyscope/internal/view"
)

// ErrUnknownAttribute is returned for attribute keys outside the catalog.
var ErrUnknownAttribute = errors.New("unknown attribute")

// State holds the current attribute, the filtered subset and the brush,
// and re-renders all four panels after every change. It is safe for
// concurrent use.
type State struct {
	mu sync.RWMutex

	full     []*model.Record
	features *geo.ProjectedSet

	attr     analysis.Attribute
	filtered []*model.Record
	selected []bool // parallel to full
	brush    *view.Rect

	xs, ys view.Linear
	index  *analysis.PointIndex

	frame    *view.Frame
	revision uint64
}

// NewState builds the controller over ds and performs the initial render.
// features may be nil, in which case the map panel reports that it is
// unavailable. An empty key selects the first catalog attribute.
func NewState(ds *model.Dataset, features *geo.FeatureSet, key model.AttributeKey) (*State, error) {
	if key == "" {
		key = analysis.DefaultAttributes()[0].Key()
	}
	attr, ok := analysis.ByKey(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAttribute, key)
	}

	s := &State{attr: attr}
	if ds != nil {
		s.full = ds.Records
	}
	start := time.Now()
	s.features = geo.Project(features, view.NewMapProjection())
	logging.TimeTrack(start, "project counties")

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rescale()
	s.setFiltered(nil)
	s.render()
	return s, nil
}

// SetAttribute switches the plotted attribute, clears the brush and resets
// the filtered subset to the full dataset. Unknown keys leave the state
// untouched.
func (s *State) SetAttribute(key model.AttributeKey) error {
	attr, ok := analysis.ByKey(key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAttribute, key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.attr = attr
	s.rescale()
	s.setFiltered(nil)
	s.render()
	logging.Debugf("app: attribute %s, revision %d", key, s.revision)
	return nil
}

// ApplyBrush filters the dataset to the records whose scatterplot point
// lies inside rect, bounds inclusive. A nil rect clears the filter.
func (s *State) ApplyBrush(rect *view.Rect) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rect == nil {
		s.setFiltered(nil)
	} else {
		r := rect.Normalize()
		s.setFiltered(&r)
	}
	s.render()
	logging.Debugf("app: brush %v selects %d of %d", rect, len(s.filtered), len(s.full))
}

// ClearBrush is ApplyBrush(nil).
func (s *State) ClearBrush() { s.ApplyBrush(nil) }

// rescale recomputes the scatterplot scales and the projected point index
// for the current attribute. Caller holds the write lock.
func (s *State) rescale() {
	s.xs, s.ys = view.ScatterScales(s.full, s.attr)
	px := make([]float64, len(s.full))
	py := make([]float64, len(s.full))
	for i, r := range s.full {
		px[i] = s.xs.Map(s.attr.Extract(r))
		py[i] = s.ys.Map(view.YAttribute.Extract(r))
	}
	s.index = analysis.NewPointIndex(px, py)
}

// setFiltered recomputes the filtered subset for rect. Caller holds the
// write lock.
func (s *State) setFiltered(rect *view.Rect) {
	s.brush = rect
	s.selected = make([]bool, len(s.full))
	if rect == nil {
		s.filtered = s.full
		for i := range s.selected {
			s.selected[i] = true
		}
		return
	}
	hits := s.index.Within(rect.X0, rect.Y0, rect.X1, rect.Y1)
	s.filtered = make([]*model.Record, 0, len(hits))
	for _, i := range hits {
		s.selected[i] = true
		s.filtered = append(s.filtered, s.full[i])
	}
}

// render rebuilds every panel from the current state. Caller holds the
// write lock.
func (s *State) render() {
	s.revision++
	f := view.Render(s.full, s.filtered, s.attr, s.brush, s.features)
	f.Revision = s.revision
	s.frame = f
}

// Frame returns the most recent render.
func (s *State) Frame() *view.Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.frame
}

// Revision counts completed renders.
func (s *State) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// Attribute returns the current attribute.
func (s *State) Attribute() analysis.Attribute {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.attr
}

// Full returns every accepted record (read-only).
func (s *State) Full() []*model.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.full
}

// Filtered returns the current subset in dataset order (read-only).
func (s *State) Filtered() []*model.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filtered
}

// Brush returns a copy of the active brush, or nil.
func (s *State) Brush() *view.Rect {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.brush == nil {
		return nil
	}
	b := *s.brush
	return &b
}

// Scales returns the scatterplot scales for the current attribute.
func (s *State) Scales() (x, y view.Linear) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.xs, s.ys
}

// Projected returns the county geometry in map pixels.
func (s *State) Projected() *geo.ProjectedSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.features
}

// PointsIn returns the filtered records whose scatterplot point lies in
// rect, in dataset order.
func (s *State) PointsIn(rect view.Rect) []*model.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r := rect.Normalize()
	var out []*model.Record
	for _, i := range s.index.Within(r.X0, r.Y0, r.X1, r.Y1) {
		if s.selected[i] {
			out = append(out, s.full[i])
		}
	}
	return out
}

// PointAt returns the filtered record whose scatterplot point is closest
// to pixel (x, y), within radius.
func (s *State) PointAt(x, y, radius float64) (*model.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i, d, ok := s.index.Nearest(x, y); ok && s.selected[i] {
		if d > radius {
			return nil, false
		}
		return s.full[i], true
	}

	// The nearest point is filtered out; look for a selected one nearby.
	best, bestD := -1, radius
	for _, i := range s.index.Within(x-radius, y-radius, x+radius, y+radius) {
		if !s.selected[i] {
			continue
		}
		r := s.full[i]
		d := math.Hypot(s.xs.Map(s.attr.Extract(r))-x, s.ys.Map(view.YAttribute.Extract(r))-y)
		if d <= radius && (best < 0 || d < bestD) {
			best, bestD = i, d
		}
	}
	if best < 0 {
		return nil, false
	}
	return s.full[best], true
}

// FeatureAt returns the county under map pixel (x, y) and its record in
// the filtered subset, if any.
func (s *State) FeatureAt(x, y float64) (*geo.ProjectedFeature, *model.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.features.Locate(x, y)
	if !ok {
		return nil, nil, false
	}
	for _, r := range s.filtered {
		if r.ID == f.ID {
			return f, r, true
		}
	}
	return f, nil, true
}
