/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package analysis provides viewer-side computation over county records.
// This layer sits between the raw model types and the views, computing
// attribute extents, histogram bins and the spatial point index used for
// brushing.
package analysis

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/ijuttt/countyscope/internal/model"
)

// SteelBlue is the render color the dashboard uses for every measure.
var SteelBlue = color.RGBA{R: 0x46, G: 0x82, B: 0xB4, A: 0xFF}

// Attribute describes one plottable measure.
// Implement this interface to add new attributes without modifying rendering code.
type Attribute interface {
	Key() model.AttributeKey
	Label() string
	Unit() string
	Color() color.RGBA
	Extract(r *model.Record) float64
}

// PovertyAttribute extracts the poverty percentage.
type PovertyAttribute struct{}

func (PovertyAttribute) Key() model.AttributeKey         { return model.PovertyPct }
func (PovertyAttribute) Label() string                   { return "Poverty (%)" }
func (PovertyAttribute) Unit() string                    { return "%" }
func (PovertyAttribute) Color() color.RGBA               { return SteelBlue }
func (PovertyAttribute) Extract(r *model.Record) float64 { return r.PovertyPct }

// BloodPressureAttribute extracts the high blood pressure percentage.
type BloodPressureAttribute struct{}

func (BloodPressureAttribute) Key() model.AttributeKey         { return model.HighBloodPressurePct }
func (BloodPressureAttribute) Label() string                   { return "High Blood Pressure (%)" }
func (BloodPressureAttribute) Unit() string                    { return "%" }
func (BloodPressureAttribute) Color() color.RGBA               { return SteelBlue }
func (BloodPressureAttribute) Extract(r *model.Record) float64 { return r.HighBloodPressurePct }

// IncomeAttribute extracts the median household income in dollars.
type IncomeAttribute struct{}

func (IncomeAttribute) Key() model.AttributeKey         { return model.MedianHouseholdIncome }
func (IncomeAttribute) Label() string                   { return "Median Household Income ($)" }
func (IncomeAttribute) Unit() string                    { return "$" }
func (IncomeAttribute) Color() color.RGBA               { return SteelBlue }
func (IncomeAttribute) Extract(r *model.Record) float64 { return r.MedianHouseholdIncome }

// UninsuredAttribute extracts the no-health-insurance percentage.
type UninsuredAttribute struct{}

func (UninsuredAttribute) Key() model.AttributeKey         { return model.NoHealthInsurancePct }
func (UninsuredAttribute) Label() string                   { return "No Health Insurance (%)" }
func (UninsuredAttribute) Unit() string                    { return "%" }
func (UninsuredAttribute) Color() color.RGBA               { return SteelBlue }
func (UninsuredAttribute) Extract(r *model.Record) float64 { return r.NoHealthInsurancePct }

// FormatValue renders v with the attribute's unit: dollars get a leading
// "$" and no decimals, everything else keeps one decimal and a suffix.
func FormatValue(a Attribute, v float64) string {
	switch a.Unit() {
	case "$":
		return "$" + strconv.FormatFloat(v, 'f', 0, 64)
	case "":
		return strconv.FormatFloat(v, 'g', 6, 64)
	}
	return fmt.Sprintf("%.1f%s", v, a.Unit())
}

// ShortLabel strips the unit suffix from the label, e.g. "Poverty".
func ShortLabel(a Attribute) string {
	l := a.Label()
	if i := strings.LastIndexByte(l, '('); i > 0 {
		return strings.TrimSpace(l[:i])
	}
	return l
}
