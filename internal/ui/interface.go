// Package ui defines the UI interface for the countyscope viewer.
package ui

import "github.com/ijuttt/countyscope/internal/app"

// UI abstracts a terminal front end that drives an already loaded State.
// The gocui dashboard implements it; the Bubble Tea app loads its own
// state and is run as a tea.Program instead.
type UI interface {
	// Run starts the UI main loop with the given application state.
	Run(state *app.State) error
	// Close releases UI resources.
	Close()
}
