/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package render

import (
	"fmt"
	"strings"

	"github.com/ijuttt/countyscope/internal/analysis"
	"github.com/ijuttt/countyscope/internal/geo"
	"github.com/ijuttt/countyscope/internal/model"
	"github.com/ijuttt/countyscope/internal/ui/widgets"
	"github.com/ijuttt/countyscope/internal/view"
)

// Header formats the header line.
func Header(attr analysis.Attribute, subset, total int, revision uint64) string {
	return fmt.Sprintf("%scountyscope%s | %s%s%s | %d/%d counties selected | render #%d\n",
		Bold, Reset, Yellow, attr.Label(), Reset, subset, total, revision)
}

// Brush describes the active brush in data units.
func Brush(b *view.Rect, xs, ys view.Linear, attr analysis.Attribute) string {
	if b == nil {
		return fmt.Sprintf("Brush: %snone%s\n", Dim, Reset)
	}
	r := b.Normalize()
	// Pixel y grows downwards, so the bottom edge is the low value.
	return fmt.Sprintf("Brush: %s%s %s..%s%s, %s%s %s..%s%s\n",
		Green, analysis.ShortLabel(attr),
		analysis.FormatValue(attr, xs.Invert(r.X0)), analysis.FormatValue(attr, xs.Invert(r.X1)), Reset,
		Green, analysis.ShortLabel(view.YAttribute),
		analysis.FormatValue(view.YAttribute, ys.Invert(r.Y1)), analysis.FormatValue(view.YAttribute, ys.Invert(r.Y0)), Reset)
}

// Histogram formats the distribution of attr over records as a block strip.
func Histogram(attr analysis.Attribute, records []*model.Record) string {
	h := analysis.BuildHistogram(analysis.BuildColumn(records, attr).Values)
	counts := make([]int, len(h.Bins))
	for i, b := range h.Bins {
		counts[i] = b.Count
	}

	var s string
	s += fmt.Sprintf(SectionHeaderFormat, Bold, strings.ToUpper(analysis.ShortLabel(attr)), Reset)
	s += fmt.Sprintf("%s|%s|%s\n", Blue, widgets.NewBinStrip(counts, StripWidth).Plain(), Reset)
	if h.Total == 0 {
		s += fmt.Sprintf("%sno counties selected%s\n", Dim, Reset)
		return s
	}
	s += fmt.Sprintf("%s .. %s  (%d counties, peak %d per bin)\n",
		analysis.FormatValue(attr, h.Min), analysis.FormatValue(attr, h.Max), h.Total, h.MaxCount)
	return s
}

// Selection lists the first selected counties with their attribute value.
func Selection(records []*model.Record, attr analysis.Attribute) string {
	var s string
	s += fmt.Sprintf(SectionHeaderFormat, Bold, "SELECTED COUNTIES", Reset)

	for i, r := range records {
		if i == MaxListedCounties {
			s += fmt.Sprintf("%s... and %d more%s\n", Dim, len(records)-i, Reset)
			break
		}
		s += fmt.Sprintf("%s%-*s%s %*s\n",
			Cyan, NameDisplayWidth, truncate(r.Label(), NameDisplayWidth), Reset,
			ValueDisplayWidth, analysis.FormatValue(attr, attr.Extract(r)))
	}
	if len(records) == 0 {
		s += fmt.Sprintf("%snone%s\n", Dim, Reset)
	}
	return s
}

// Map summarizes how the choropleth joins the selection.
func Map(features *geo.ProjectedSet, filtered []*model.Record) string {
	var s string
	s += fmt.Sprintf(SectionHeaderFormat, Bold, "MAP", Reset)
	if features.Len() == 0 {
		s += fmt.Sprintf("%s%s%s\n", Red, view.MapUnavailable, Reset)
		return s
	}

	selected := make(map[string]bool, len(filtered))
	for _, r := range filtered {
		selected[r.ID] = true
	}
	colored := 0
	for _, f := range features.Features {
		if selected[f.ID] {
			colored++
		}
	}
	s += fmt.Sprintf("%d counties drawn, %s%d colored%s, %d neutral\n",
		features.Len(), Yellow, colored, Reset, features.Len()-colored)
	return s
}

// Help returns the help text for the footer.
func Help() string {
	return "a: Next attribute  x: Clear brush  q: Quit\n"
}

// truncate cuts s to n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
