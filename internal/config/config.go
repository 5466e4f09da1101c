/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package config provides configuration constants and path discovery for countyscope.
package config

import (
	"os"
	"path/filepath"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	// AppName is the application identifier.
	AppName = "countyscope"

	// DefaultDataDir is the system-wide data directory.
	DefaultDataDir = "/usr/share/countyscope"

	// DataFilePattern matches health statistics tables in a data directory.
	DataFilePattern = "national_health_data*.csv"

	// GeoFilePattern matches county boundary files in a data directory.
	GeoFilePattern = "counties*.json"

	// DefaultGeoObject is the TopoJSON object holding county geometries.
	DefaultGeoObject = "counties"
)

// -----------------------------------------------------------------------------
// Size Constants
// -----------------------------------------------------------------------------

const (
	// KiBToMiB converts kibibytes to mebibytes.
	KiBToMiB = 1024

	// MaxFileSize is the maximum accepted input file size (64 MiB). The
	// 10m county topology is a few MiB; anything bigger is a wrong file.
	MaxFileSize = 64 * KiBToMiB * KiBToMiB
)

// -----------------------------------------------------------------------------
// Dashboard Geometry (pixels)
// -----------------------------------------------------------------------------

const (
	// ScatterWidth and ScatterHeight size the scatterplot panel.
	ScatterWidth  = 600
	ScatterHeight = 400

	// HistWidth and HistHeight size each histogram panel.
	HistWidth  = 400
	HistHeight = 300

	// MapWidth and MapHeight size the choropleth panel.
	MapWidth  = ScatterWidth * 2
	MapHeight = ScatterHeight

	// HistogramBins is the fixed number of equal-width histogram bins.
	HistogramBins = 20
)

// -----------------------------------------------------------------------------
// Environment Variables
// -----------------------------------------------------------------------------

const (
	// EnvDataDir overrides the default data directory.
	EnvDataDir = "COUNTYSCOPE_DATA_DIR"

	// EnvXDGDataHome is the XDG data home environment variable.
	EnvXDGDataHome = "XDG_DATA_HOME"
)

// -----------------------------------------------------------------------------
// Path Resolution
// -----------------------------------------------------------------------------

// GetDataPaths returns an ordered list of directories to search for input files.
// Priority order:
//  1. $COUNTYSCOPE_DATA_DIR (if set)
//  2. the current working directory
//  3. $XDG_DATA_HOME/countyscope (or ~/.local/share/countyscope)
//  4. /usr/share/countyscope (system default)
func GetDataPaths() []string {
	var paths []string

	// Priority 1: Environment variable override
	if envDir := os.Getenv(EnvDataDir); envDir != "" {
		paths = append(paths, envDir)
	}

	// Priority 2: where the browser version expected its files
	if wd, err := os.Getwd(); err == nil {
		paths = append(paths, wd)
	}

	// Priority 3: XDG Data Home
	xdgDataHome := os.Getenv(EnvXDGDataHome)
	if xdgDataHome == "" {
		if home, err := os.UserHomeDir(); err == nil {
			xdgDataHome = filepath.Join(home, ".local", "share")
		}
	}
	if xdgDataHome != "" {
		paths = append(paths, filepath.Join(xdgDataHome, AppName))
	}

	// Priority 4: System default
	paths = append(paths, DefaultDataDir)

	return paths
}
