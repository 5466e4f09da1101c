/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package styles provides Lipgloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// -----------------------------------------------------------------------------
// Color Palette
// -----------------------------------------------------------------------------

var (
	// Primary colors follow the dashboard's steel blue
	ColorPrimary   = lipgloss.Color("67")  // Steel Blue
	ColorSecondary = lipgloss.Color("238") // Dark Gray (Borders)
	ColorAccent    = lipgloss.Color("214") // Orange (brush, highlights)
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorDanger    = lipgloss.Color("196") // Bright Red
	ColorMuted     = lipgloss.Color("60")  // Cool Gray
	ColorDarkGray  = lipgloss.Color("240") // Dark Gray (for empty/background)

	// Text colors
	ColorText        = lipgloss.Color("252") // Light Gray (axes, labels)
	ColorTextDim     = lipgloss.Color("246") // Dim Gray
	ColorTextBold    = lipgloss.Color("231") // Bright White
	ColorBlack       = lipgloss.Color("16")  // Black (for inverted text)
	ColorStatusBarBg = lipgloss.Color("235") // Very Dark Gray (status bar background)
)

// -----------------------------------------------------------------------------
// Panel Styles
// -----------------------------------------------------------------------------

var (
	// BasePanelStyle is the foundation style for all panels.
	BasePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(0, 1)

	// ActivePanelStyle is used for the panel under the pointer or brush cursor.
	ActivePanelStyle = BasePanelStyle.
				BorderForeground(ColorPrimary)

	// PanelTitleStyle styles the application title.
	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)
)

// -----------------------------------------------------------------------------
// List Item Styles
// -----------------------------------------------------------------------------

var (
	// SelectedItemStyle is for the highlighted dropdown entry.
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorBlack).
				Background(ColorPrimary).
				Bold(true).
				Padding(0, 1)

	// NormalItemStyle is for other dropdown entries.
	NormalItemStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 1)

	// DimItemStyle is for less important items.
	DimItemStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim).
			Padding(0, 1)
)

// -----------------------------------------------------------------------------
// Data Display Styles
// -----------------------------------------------------------------------------

var (
	// LabelStyle is for field labels.
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// ValueStyle is for field values.
	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	// HighlightValueStyle is for the active attribute and brush extents.
	HighlightValueStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	// TooltipStyle is for hover text in the status line.
	TooltipStyle = lipgloss.NewStyle().
			Foreground(ColorTextBold)

	// DropdownStyle frames the attribute picker.
	DropdownStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(1, 2)
)

// -----------------------------------------------------------------------------
// Status Bar Styles
// -----------------------------------------------------------------------------

var (
	// StatusBarStyle is the main status bar style.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorStatusBarBg).
			Padding(0, 1)

	// HelpKeyStyle is for keyboard shortcut keys.
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// HelpDescStyle is for keyboard shortcut descriptions.
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// -----------------------------------------------------------------------------
// Loading & Error Styles
// -----------------------------------------------------------------------------

var (
	// LoadingStyle is for loading indicators.
	LoadingStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Italic(true)

	// ErrorStyle is for error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)

	// SuccessStyle is for success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)
)

// PanelStyle returns the frame for a panel of the given outer width, with
// the title set into the top border.
func PanelStyle(title string, width int, active bool) lipgloss.Style {
	style := BasePanelStyle
	if active {
		style = ActivePanelStyle
	}
	return style.Border(BuildTitledBorder(title, width, lipgloss.RoundedBorder()))
}
