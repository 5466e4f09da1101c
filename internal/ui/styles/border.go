/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BuildTitledBorder returns a lipgloss.Border whose Top field contains the
// panel title embedded into the border line, e.g.:
//
//	╭─ Poverty (%) vs High Blood Pressure (%) ─╮
//
// Titles wider than the border are cut at the right corner.
func BuildTitledBorder(title string, totalWidth int, b lipgloss.Border) lipgloss.Border {
	// innerWidth = total panel width minus the two corner runes (TopLeft + TopRight)
	innerWidth := totalWidth - lipgloss.Width(b.TopLeft) - lipgloss.Width(b.TopRight)
	if innerWidth <= 0 {
		return b
	}

	label := "─ " + title + " "
	if lipgloss.Width(label) > innerWidth {
		label = truncate(label, innerWidth)
	}
	remaining := innerWidth - lipgloss.Width(label)

	// Fill the rest of the top border with the border's normal horizontal char
	topChar := b.Top
	if topChar == "" {
		topChar = "─"
	}
	b.Top = label + strings.Repeat(topChar, remaining)
	return b
}

// truncate cuts s to at most width cells.
func truncate(s string, width int) string {
	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		if w+rw > width {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	return b.String()
}
