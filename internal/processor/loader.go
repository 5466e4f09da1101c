/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package processor runs the startup loads off the UI event loop.
package processor

import (
	"errors"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ijuttt/countyscope/internal/config"
	"github.com/ijuttt/countyscope/internal/dataset"
	"github.com/ijuttt/countyscope/internal/geo"
	"github.com/ijuttt/countyscope/internal/logging"
	"github.com/ijuttt/countyscope/internal/model"
)

// ErrNoGeometry marks a load that had no geometry file to read.
var ErrNoGeometry = errors.New("no county geometry file")

// -----------------------------------------------------------------------------
// Messages
// -----------------------------------------------------------------------------

// LoadResultMsg is sent once both startup loads have finished. Err is
// fatal; GeoErr only disables the map.
type LoadResultMsg struct {
	Data     FileInfo
	Geo      FileInfo
	Dataset  *model.Dataset
	Features *geo.FeatureSet
	Err      error
	GeoErr   error
}

// -----------------------------------------------------------------------------
// Commands
// -----------------------------------------------------------------------------

// LoadCmd creates a command that loads the table and the geometry.
func LoadCmd(opts config.Options) tea.Cmd {
	return func() tea.Msg {
		return Load(opts)
	}
}

// Load reads the table and the geometry concurrently and reports both.
func Load(opts config.Options) LoadResultMsg {
	defer logging.TimeTrack(time.Now(), "startup load")

	msg := LoadResultMsg{Data: statFile(opts.DataPath), Geo: statFile(opts.GeoPath)}
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		loader := dataset.NewLoader(
			dataset.WithDelimiter(opts.Delim()),
			dataset.WithMissingTokens(opts.MissingTokens()...),
		)
		msg.Dataset, msg.Err = loader.LoadFile(opts.DataPath)
	}()

	if opts.GeoPath == "" {
		msg.GeoErr = ErrNoGeometry
	} else {
		wg.Add(1)
		go func() {
			defer wg.Done()
			object := opts.GeoObject
			if object == "" {
				object = config.DefaultGeoObject
			}
			msg.Features, msg.GeoErr = geo.LoadFile(opts.GeoPath, object)
		}()
	}
	wg.Wait()

	if msg.GeoErr != nil {
		logging.Errorf("map unavailable: %v", msg.GeoErr)
	}
	return msg
}
