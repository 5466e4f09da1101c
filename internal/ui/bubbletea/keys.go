package bubbletea

import "github.com/charmbracelet/bubbles/key"

// -----------------------------------------------------------------------------
// Key Bindings
// -----------------------------------------------------------------------------

// KeyMap defines all keyboard shortcuts for the application.
type KeyMap struct {
	// Brush cursor
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Brushing
	Brush  key.Binding
	Anchor key.Binding
	Apply  key.Binding
	Clear  key.Binding
	Escape key.Binding

	// Attributes
	Attribute     key.Binding
	NextAttribute key.Binding

	// Application
	Quit   key.Binding
	Help   key.Binding
	Reload key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Brush: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "brush"),
		),
		Anchor: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "anchor"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x/esc", "clear brush"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Attribute: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "attribute"),
		),
		NextAttribute: key.NewBinding(
			key.WithKeys("n", "tab"),
			key.WithHelp("n/tab", "next attribute"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
	}
}

// ShortHelp returns abbreviated help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Attribute, k.Brush, k.Clear, k.Help, k.Quit}
}

// FullHelp returns complete help.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Brush, k.Anchor, k.Apply, k.Clear},
		{k.Attribute, k.NextAttribute},
		{k.Reload, k.Help, k.Quit},
	}
}

// fullHelpHeight is the number of lines the expanded help takes.
func (k KeyMap) fullHelpHeight() int {
	n := 0
	for _, col := range k.FullHelp() {
		if len(col) > n {
			n = len(col)
		}
	}
	return n
}
