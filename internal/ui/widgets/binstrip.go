package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sparkBlocks are Unicode block elements for 8 levels of height.
var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// blockFor returns the block glyph covering frac of a cell, frac in (0, 1].
func blockFor(frac float64) rune {
	i := int(frac*8+0.5) - 1
	if i < 0 {
		i = 0
	}
	if i > 7 {
		i = 7
	}
	return sparkBlocks[i]
}

// BinStrip renders histogram bin counts as one block glyph per bin. Heights
// are relative to the largest count; empty bins are blank.
type BinStrip struct {
	Counts         []int
	Width          int // 0 keeps one cell per bin
	HighlightIndex int
	NormalColor    lipgloss.Color
	HighlightColor lipgloss.Color
}

// NewBinStrip creates a strip with default styling.
func NewBinStrip(counts []int, width int) BinStrip {
	return BinStrip{
		Counts:         counts,
		Width:          width,
		HighlightIndex: -1,
		NormalColor:    lipgloss.Color("67"),  // Steel blue
		HighlightColor: lipgloss.Color("214"), // Orange
	}
}

// WithHighlight sets the bin to highlight.
func (s BinStrip) WithHighlight(idx int) BinStrip {
	s.HighlightIndex = idx
	return s
}

// Glyphs returns the uncolored strip.
func (s BinStrip) Glyphs() []rune {
	samples := s.sample()
	peak := 0
	for _, c := range samples {
		if c > peak {
			peak = c
		}
	}
	out := make([]rune, len(samples))
	for i, c := range samples {
		if c <= 0 || peak == 0 {
			out[i] = ' '
			continue
		}
		out[i] = blockFor(float64(c) / float64(peak))
	}
	return out
}

// Plain returns the strip as a string without color escapes.
func (s BinStrip) Plain() string { return string(s.Glyphs()) }

// Render produces the colored strip.
func (s BinStrip) Render() string {
	glyphs := s.Glyphs()
	if len(glyphs) == 0 {
		return ""
	}
	normal := lipgloss.NewStyle().Foreground(s.NormalColor)
	highlight := lipgloss.NewStyle().Foreground(s.HighlightColor).Bold(true)

	var b strings.Builder
	for i, g := range glyphs {
		if s.HighlightIndex >= 0 && s.binOf(i, len(glyphs)) == s.HighlightIndex {
			b.WriteString(highlight.Render(string(g)))
		} else {
			b.WriteString(normal.Render(string(g)))
		}
	}
	return b.String()
}

// sample fits the counts to Width cells. Narrower strips keep the largest
// count of the bins each cell covers; wider strips repeat bins.
func (s BinStrip) sample() []int {
	n := len(s.Counts)
	if s.Width <= 0 || s.Width == n || n == 0 {
		return s.Counts
	}
	out := make([]int, s.Width)
	for i := range out {
		lo := i * n / s.Width
		hi := (i + 1) * n / s.Width
		if hi <= lo {
			hi = lo + 1
		}
		for _, c := range s.Counts[lo:hi] {
			if c > out[i] {
				out[i] = c
			}
		}
	}
	return out
}

// binOf maps a cell back to the first bin it covers.
func (s BinStrip) binOf(cellIdx, cells int) int {
	if cells == 0 {
		return 0
	}
	return cellIdx * len(s.Counts) / cells
}
