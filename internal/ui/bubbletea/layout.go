package bubbletea

import "github.com/ijuttt/countyscope/internal/ui/components"

// -----------------------------------------------------------------------------
// Layout
// -----------------------------------------------------------------------------

const (
	// HeaderHeight is the number of header lines above the panels.
	HeaderHeight = 1

	// StatusHeight is the status line holding tooltips and the selection bar.
	StatusHeight = 1

	// ScatterRatio is the share of the top row given to the scatterplot.
	ScatterRatio = 0.5

	// SelectionBarWidth is the width of the selection share bar.
	SelectionBarWidth = 20
)

// box is a panel's outer rectangle in terminal cells.
type box struct {
	X, Y, W, H int
}

// Contains reports whether the terminal cell (x, y) is inside the box.
func (b box) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// cell converts a terminal position to canvas coordinates.
func (b box) cell(x, y int) (col, row int) {
	return x - b.X - components.ContentOffsetX, y - b.Y - components.ContentOffsetY
}

// layout places the scatterplot and both histograms in the top row and
// the map across the bottom row.
type layout struct {
	scatter box
	hist    box
	bp      box
	mapBox  box
}

func computeLayout(width, height, helpHeight int) layout {
	content := height - HeaderHeight - StatusHeight - helpHeight
	if content < 0 {
		content = 0
	}
	top := content / 2
	bottom := content - top

	sw := int(float64(width) * ScatterRatio)
	hw := (width - sw) / 2
	bw := width - sw - hw

	y := HeaderHeight
	return layout{
		scatter: box{X: 0, Y: y, W: sw, H: top},
		hist:    box{X: sw, Y: y, W: hw, H: top},
		bp:      box{X: sw + hw, Y: y, W: bw, H: top},
		mapBox:  box{X: 0, Y: y + top, W: width, H: bottom},
	}
}
