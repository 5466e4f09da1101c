/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package dataset parses the county health statistics table into typed records.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/ijuttt/countyscope/internal/config"
	"github.com/ijuttt/countyscope/internal/logging"
	"github.com/ijuttt/countyscope/internal/model"
)

// Column names of the source table.
const (
	ColumnID   = "cnty_fips"
	ColumnName = "display_name"
)

var (
	ErrMissingColumn = errors.New("missing required column")
	ErrDuplicateID   = errors.New("duplicate county identifier")
	ErrEmptyID       = errors.New("empty county identifier")
	ErrMissingValue  = errors.New("missing value")
	ErrNotFinite     = errors.New("value is not finite")
)

// LoadError is a fatal load failure. Stage is one of "open", "header" or "read".
type LoadError struct {
	Path  string
	Stage string
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %s stage: %v", e.Path, e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Loader parses delimited tables. The zero value is not usable; use NewLoader.
type Loader struct {
	comma   rune
	missing map[string]bool
}

// Option configures a Loader.
type Option func(*Loader)

// WithDelimiter sets the field delimiter (default ',').
func WithDelimiter(r rune) Option {
	return func(l *Loader) { l.comma = r }
}

// WithMissingTokens adds tokens that mark a missing measure, in addition to
// the defaults "", "NA", "N/A" and "null". Matching is case-insensitive.
func WithMissingTokens(tokens ...string) Option {
	return func(l *Loader) {
		for _, t := range tokens {
			l.missing[strings.ToLower(strings.TrimSpace(t))] = true
		}
	}
}

// NewLoader creates a loader with the given options.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		comma: ',',
		missing: map[string]bool{
			"":     true,
			"na":   true,
			"n/a":  true,
			"null": true,
		},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadFile reads and parses the table at path.
func (l *Loader) LoadFile(path string) (*model.Dataset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &LoadError{Path: path, Stage: "open", Err: err}
	}
	if info.Size() > config.MaxFileSize {
		return nil, &LoadError{Path: path, Stage: "open",
			Err: fmt.Errorf("file exceeds maximum size (%d bytes)", config.MaxFileSize)}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Stage: "open", Err: err}
	}
	defer f.Close()

	ds, err := l.Parse(f)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, err
	}
	ds.Source = path
	return ds, nil
}

// Parse reads a table from r. Rows with an unusable identifier or measure
// are dropped and reported in Dataset.Rejected; structural problems
// (missing header columns, malformed CSV) fail the whole load.
func (l *Loader) Parse(r io.Reader) (*model.Dataset, error) {
	cr := csv.NewReader(r)
	cr.Comma = l.comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			err = errors.New("empty file")
		}
		return nil, &LoadError{Stage: "header", Err: err}
	}
	cols, err := indexColumns(header)
	if err != nil {
		return nil, &LoadError{Stage: "header", Err: err}
	}

	ds := &model.Dataset{}
	seen := make(map[string]int)

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &LoadError{Stage: "read", Err: err}
		}
		line, _ := cr.FieldPos(0)

		rec, rowErr := l.parseRow(row, cols, line)
		if rowErr != nil {
			ds.Rejected = append(ds.Rejected, *rowErr)
			logging.Warnf("dataset: dropping row: %v", rowErr)
			continue
		}
		if first, dup := seen[rec.ID]; dup {
			e := model.RowError{Line: line, Column: ColumnID, Value: rec.ID,
				Err: fmt.Errorf("%w (first seen on line %d)", ErrDuplicateID, first)}
			ds.Rejected = append(ds.Rejected, e)
			logging.Warnf("dataset: dropping row: %v", e)
			continue
		}
		seen[rec.ID] = line
		ds.Records = append(ds.Records, rec)
	}

	logging.Infof("dataset: %d records accepted, %d rejected", len(ds.Records), len(ds.Rejected))
	return ds, nil
}

// columnIndex maps the columns the loader needs to their positions.
type columnIndex struct {
	id       int
	name     int // -1 when absent
	measures map[model.AttributeKey]int
}

func indexColumns(header []string) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := pos[h]; !dup {
			pos[h] = i
		}
	}

	cols := columnIndex{name: -1, measures: make(map[model.AttributeKey]int, len(model.MeasureKeys))}
	var missing []string

	if i, ok := pos[ColumnID]; ok {
		cols.id = i
	} else {
		missing = append(missing, ColumnID)
	}
	if i, ok := pos[ColumnName]; ok {
		cols.name = i
	}
	for _, key := range model.MeasureKeys {
		i, ok := pos[string(key)]
		if !ok {
			missing = append(missing, string(key))
			continue
		}
		cols.measures[key] = i
	}

	if len(missing) > 0 {
		return cols, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return cols, nil
}

func (l *Loader) parseRow(row []string, cols columnIndex, line int) (*model.Record, *model.RowError) {
	field := func(i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	rec := &model.Record{
		ID:   model.NormalizeID(field(cols.id)),
		Name: field(cols.name),
	}
	if rec.ID == "" {
		return nil, &model.RowError{Line: line, Column: ColumnID, Err: ErrEmptyID}
	}

	for _, key := range model.MeasureKeys {
		raw := field(cols.measures[key])
		v, err := l.parseMeasure(raw)
		if err != nil {
			return nil, &model.RowError{Line: line, Column: string(key), Value: raw, Err: err}
		}
		rec.SetValue(key, v)
	}
	return rec, nil
}

func (l *Loader) parseMeasure(raw string) (float64, error) {
	if l.missing[strings.ToLower(raw)] {
		return 0, ErrMissingValue
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) {
			return 0, ne.Err
		}
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotFinite
	}
	return v, nil
}
