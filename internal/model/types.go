/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package model provides the record types shared by the loaders, the
// controller and the views.
package model

import "fmt"

// AttributeKey names one numeric measure of a Record. The values match the
// column headers of the source file.
type AttributeKey string

const (
	PovertyPct            AttributeKey = "poverty_perc"
	HighBloodPressurePct  AttributeKey = "percent_high_blood_pressure"
	MedianHouseholdIncome AttributeKey = "median_household_income"
	NoHealthInsurancePct  AttributeKey = "percent_no_heath_insurance" // sic, as in the source data
)

// MeasureKeys lists the measures in column order.
var MeasureKeys = []AttributeKey{
	PovertyPct,
	HighBloodPressurePct,
	MedianHouseholdIncome,
	NoHealthInsurancePct,
}

// Record is one county's row of statistics.
type Record struct {
	ID   string // normalized county FIPS code, the join key for the map
	Name string // optional display name, e.g. "Autauga County, AL"

	PovertyPct            float64
	HighBloodPressurePct  float64
	MedianHouseholdIncome float64
	NoHealthInsurancePct  float64
}

// Value returns the measure named by key. Unknown keys panic; callers
// resolve keys through the attribute registry first.
func (r *Record) Value(key AttributeKey) float64 {
	switch key {
	case PovertyPct:
		return r.PovertyPct
	case HighBloodPressurePct:
		return r.HighBloodPressurePct
	case MedianHouseholdIncome:
		return r.MedianHouseholdIncome
	case NoHealthInsurancePct:
		return r.NoHealthInsurancePct
	}
	panic(fmt.Sprintf("model: unknown attribute %q", string(key)))
}

// SetValue stores v into the measure named by key.
func (r *Record) SetValue(key AttributeKey, v float64) {
	switch key {
	case PovertyPct:
		r.PovertyPct = v
	case HighBloodPressurePct:
		r.HighBloodPressurePct = v
	case MedianHouseholdIncome:
		r.MedianHouseholdIncome = v
	case NoHealthInsurancePct:
		r.NoHealthInsurancePct = v
	default:
		panic(fmt.Sprintf("model: unknown attribute %q", string(key)))
	}
}

// Label returns the display name if present, otherwise the identifier.
func (r *Record) Label() string {
	if r.Name != "" {
		return r.Name
	}
	return r.ID
}

// Dataset is the ordered result of a load. Records keeps file order.
type Dataset struct {
	Source   string
	Records  []*Record
	Rejected []RowError
}

// Len returns the number of accepted records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// RowError describes one rejected input row.
type RowError struct {
	Line   int    // 1-based line number in the source file
	Column string // offending column, empty for row-level problems
	Value  string
	Err    error
}

func (e RowError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: column %s: value %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e RowError) Unwrap() error { return e.Err }
