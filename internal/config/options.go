/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package config

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Options collects the command-line settings shared by the countyscope commands.
type Options struct {
	DataPath  string
	GeoPath   string
	GeoObject string
	Attribute string
	Delimiter string
	Missing   string // comma separated extra missing-value tokens
	UI        string
	LogPath   string
	LogLevel  string
}

// DefaultOptions returns the settings used when no flag overrides them.
func DefaultOptions() Options {
	return Options{
		GeoObject: DefaultGeoObject,
		Attribute: "poverty_perc",
		Delimiter: ",",
		UI:        "bubbletea",
		LogLevel:  "info",
	}
}

// Validate checks option values and resolves empty input paths through
// discovery. A missing geometry file is not an error: the map stays empty.
func (o *Options) Validate() error {
	if utf8.RuneCountInString(o.Delimiter) != 1 {
		return fmt.Errorf("-delim must be a single character, got %q", o.Delimiter)
	}
	switch o.UI {
	case "bubbletea", "gocui":
	default:
		return fmt.Errorf("-ui must be bubbletea or gocui, got %q", o.UI)
	}
	switch strings.ToLower(o.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("-log-level must be debug, info, warn or error, got %q", o.LogLevel)
	}
	if o.GeoObject == "" {
		o.GeoObject = DefaultGeoObject
	}

	if o.DataPath == "" {
		p, err := DiscoverDataFile()
		if err != nil {
			return fmt.Errorf("no -data given and discovery failed: %w", err)
		}
		o.DataPath = p
	}
	if o.GeoPath == "" {
		if p, err := DiscoverGeoFile(); err == nil {
			o.GeoPath = p
		}
	}
	return nil
}

// Delim returns the delimiter as a rune. Call after Validate.
func (o Options) Delim() rune {
	r, _ := utf8.DecodeRuneInString(o.Delimiter)
	return r
}

// MissingTokens splits the extra missing-value tokens.
func (o Options) MissingTokens() []string {
	if strings.TrimSpace(o.Missing) == "" {
		return nil
	}
	var out []string
	for _, tok := range strings.Split(o.Missing, ",") {
		out = append(out, strings.TrimSpace(tok))
	}
	return out
}
