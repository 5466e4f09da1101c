/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SelectionBar shows how much of the dataset the current filter keeps.
type SelectionBar struct {
	Selected    int
	Total       int
	Width       int
	FilledColor lipgloss.Color
	EmptyColor  lipgloss.Color
}

// NewSelectionBar creates a selection bar with default styling.
func NewSelectionBar(selected, total, width int) SelectionBar {
	return SelectionBar{
		Selected:    selected,
		Total:       total,
		Width:       width,
		FilledColor: lipgloss.Color("67"),  // Steel blue
		EmptyColor:  lipgloss.Color("240"), // Dark gray
	}
}

// Ratio returns the selected share in [0, 1]. An empty dataset has ratio 0.
func (p SelectionBar) Ratio() float64 {
	if p.Total <= 0 {
		return 0
	}
	r := float64(p.Selected) / float64(p.Total)
	if r > 1 {
		r = 1
	}
	if r < 0 {
		r = 0
	}
	return r
}

// Filled returns the number of filled cells. Any non-empty selection
// fills at least one cell.
func (p SelectionBar) Filled() int {
	if p.Width <= 0 {
		return 0
	}
	n := int(p.Ratio() * float64(p.Width))
	if n == 0 && p.Selected > 0 {
		n = 1
	}
	return n
}

// Label returns e.g. "12/3142 (0.4%)".
func (p SelectionBar) Label() string {
	return fmt.Sprintf("%d/%d (%.1f%%)", p.Selected, p.Total, p.Ratio()*100)
}

// Render produces the bar followed by its label.
func (p SelectionBar) Render() string {
	if p.Width <= 0 {
		return p.Label()
	}
	filled := p.Filled()
	filledStyle := lipgloss.NewStyle().Foreground(p.FilledColor)
	emptyStyle := lipgloss.NewStyle().Foreground(p.EmptyColor)

	return filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", p.Width-filled)) +
		" " + p.Label()
}
