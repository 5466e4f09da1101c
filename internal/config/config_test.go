/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func touch(t *testing.T, path string, mod time.Time) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, mod, mod); err != nil {
		t.Fatal(err)
	}
}

func TestGetDataPathsHonoursOverride(t *testing.T) {
	t.Setenv(EnvDataDir, "/tmp/override")
	t.Setenv(EnvXDGDataHome, "/tmp/xdg")

	paths := GetDataPaths()
	if len(paths) < 3 {
		t.Fatalf("GetDataPaths() = %v, want at least 3 entries", paths)
	}
	if paths[0] != "/tmp/override" {
		t.Errorf("paths[0] = %q, want override dir", paths[0])
	}
	if want := filepath.Join("/tmp/xdg", AppName); paths[len(paths)-2] != want {
		t.Errorf("paths[-2] = %q, want %q", paths[len(paths)-2], want)
	}
	if paths[len(paths)-1] != DefaultDataDir {
		t.Errorf("last path = %q, want %q", paths[len(paths)-1], DefaultDataDir)
	}
}

func TestDiscoverLatestPicksNewest(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	touch(t, filepath.Join(dir, "national_health_data_2023.csv"), now.Add(-time.Hour))
	touch(t, filepath.Join(dir, "national_health_data_2024.csv"), now)
	touch(t, filepath.Join(dir, "counties-10m.json"), now)

	got, err := DiscoverLatest([]string{"/does/not/exist", dir}, DataFilePattern)
	if err != nil {
		t.Fatalf("DiscoverLatest: %v", err)
	}
	if filepath.Base(got) != "national_health_data_2024.csv" {
		t.Errorf("DiscoverLatest = %q, want the 2024 file", got)
	}
}

func TestDiscoverLatestNoMatch(t *testing.T) {
	_, err := DiscoverLatest([]string{t.TempDir()}, GeoFilePattern)
	if !errors.Is(err, ErrNoDataFile) {
		t.Errorf("err = %v, want ErrNoDataFile", err)
	}
}

func TestOptionsValidate(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "national_health_data_2024.csv")
	touch(t, data, time.Now())

	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr bool
	}{
		{name: "defaults with explicit data", mutate: func(o *Options) {}},
		{name: "tab delimiter", mutate: func(o *Options) { o.Delimiter = "\t" }},
		{name: "empty delimiter", mutate: func(o *Options) { o.Delimiter = "" }, wantErr: true},
		{name: "two char delimiter", mutate: func(o *Options) { o.Delimiter = ";;" }, wantErr: true},
		{name: "unknown ui", mutate: func(o *Options) { o.UI = "fyne" }, wantErr: true},
		{name: "unknown level", mutate: func(o *Options) { o.LogLevel = "trace" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions()
			o.DataPath = data
			o.GeoPath = filepath.Join(dir, "counties-10m.json")
			tt.mutate(&o)
			err := o.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOptionsDiscoversDataFile(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "national_health_data_2024.csv"), time.Now())
	touch(t, filepath.Join(dir, "counties-10m.json"), time.Now())
	t.Setenv(EnvDataDir, dir)

	o := DefaultOptions()
	if err := o.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if filepath.Dir(o.DataPath) != dir {
		t.Errorf("DataPath = %q, want file in %q", o.DataPath, dir)
	}
	if filepath.Base(o.GeoPath) != "counties-10m.json" {
		t.Errorf("GeoPath = %q, want discovered topology", o.GeoPath)
	}
}

func TestMissingTokens(t *testing.T) {
	o := Options{Missing: " -1, n/a "}
	got := o.MissingTokens()
	if len(got) != 2 || got[0] != "-1" || got[1] != "n/a" {
		t.Errorf("MissingTokens() = %q, want [-1 n/a]", got)
	}
	if (Options{}).MissingTokens() != nil {
		t.Error("MissingTokens() on empty option should be nil")
	}
}
