// Package render formats the dashboard state as plain ANSI text for the
// gocui backend.
package render

// -----------------------------------------------------------------------------
// Display Limits
// -----------------------------------------------------------------------------

const (
	// MaxListedCounties is the number of selected counties listed by name.
	MaxListedCounties = 12

	// NameDisplayWidth is the width for displaying county names.
	NameDisplayWidth = 28

	// ValueDisplayWidth is the width for displaying attribute values.
	ValueDisplayWidth = 9

	// StripWidth is the number of cells of a histogram strip; one per bin.
	StripWidth = 20
)

// -----------------------------------------------------------------------------
// Format Strings
// -----------------------------------------------------------------------------

const (
	// SectionHeaderFormat is the format for section titles.
	SectionHeaderFormat = "%s=== %s ===%s\n"
)
