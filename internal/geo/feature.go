/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package geo loads county boundaries, projects them to screen space and
// answers point-in-county lookups.
package geo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/paulmach/orb"

	"github.com/ijuttt/countyscope/internal/config"
	"github.com/ijuttt/countyscope/internal/logging"
)

var (
	ErrNoObject     = errors.New("topology object not found")
	ErrUnknownInput = errors.New("unrecognized geometry document")
)

// Feature is one county boundary in longitude/latitude degrees.
type Feature struct {
	ID       string
	Name     string
	Geometry orb.MultiPolygon
}

// FeatureSet holds the county boundaries in file order.
type FeatureSet struct {
	Source   string
	Features []Feature
	byID     map[string]int
}

// NewFeatureSet indexes features by ID. Later duplicates are dropped.
func NewFeatureSet(features []Feature) *FeatureSet {
	fs := &FeatureSet{byID: make(map[string]int, len(features))}
	for _, f := range features {
		if _, dup := fs.byID[f.ID]; dup && f.ID != "" {
			logging.Warnf("geo: duplicate feature id %s dropped", f.ID)
			continue
		}
		fs.byID[f.ID] = len(fs.Features)
		fs.Features = append(fs.Features, f)
	}
	return fs
}

// Len returns the number of features.
func (fs *FeatureSet) Len() int {
	if fs == nil {
		return 0
	}
	return len(fs.Features)
}

// Lookup returns the feature with the given id.
func (fs *FeatureSet) Lookup(id string) (*Feature, bool) {
	if fs == nil {
		return nil, false
	}
	i, ok := fs.byID[id]
	if !ok {
		return nil, false
	}
	return &fs.Features[i], true
}

// LoadFile reads a TopoJSON topology or a GeoJSON FeatureCollection.
// object names the topology member holding the counties and is ignored for
// GeoJSON input.
func LoadFile(path, object string) (*FeatureSet, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("geo: %w", err)
	}
	if info.Size() > config.MaxFileSize {
		return nil, fmt.Errorf("geo: %s exceeds maximum size (%d bytes)", path, config.MaxFileSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("geo: %w", err)
	}
	fs, err := Decode(data, object)
	if err != nil {
		return nil, fmt.Errorf("geo: %s: %w", path, err)
	}
	fs.Source = path
	logging.Infof("geo: loaded %d features from %s", fs.Len(), path)
	return fs, nil
}

// Decode sniffs the document type and dispatches to the matching decoder.
func Decode(data []byte, object string) (*FeatureSet, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(bytes.TrimSpace(data), &head); err != nil {
		return nil, err
	}
	switch head.Type {
	case "Topology":
		return DecodeTopology(data, object)
	case "FeatureCollection":
		return DecodeGeoJSON(data, "")
	}
	return nil, fmt.Errorf("%w: type %q", ErrUnknownInput, head.Type)
}
