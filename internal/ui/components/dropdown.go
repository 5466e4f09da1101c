// Package components provides reusable TUI components.
package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ijuttt/countyscope/internal/analysis"
	"github.com/ijuttt/countyscope/internal/model"
	"github.com/ijuttt/countyscope/internal/ui/styles"
)

// -----------------------------------------------------------------------------
// Attribute Dropdown Component
// -----------------------------------------------------------------------------

const dropdownWidth = 36

// DropdownResult is returned when the user closes the dropdown.
type DropdownResult struct {
	Key       model.AttributeKey
	Confirmed bool
}

// attributeItem adapts an Attribute to list.DefaultItem.
type attributeItem struct {
	attr analysis.Attribute
}

func (i attributeItem) Title() string       { return i.attr.Label() }
func (i attributeItem) Description() string { return string(i.attr.Key()) }
func (i attributeItem) FilterValue() string { return i.attr.Label() }

// Dropdown is a modal attribute picker.
type Dropdown struct {
	list    list.Model
	visible bool
	width   int
	height  int
}

// Key bindings for the dropdown
var (
	selectKey = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	)
	cancelKey = key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "cancel"),
	)
)

// NewDropdown creates a dropdown over attrs, in the given order.
func NewDropdown(attrs []analysis.Attribute) Dropdown {
	items := make([]list.Item, len(attrs))
	for i, a := range attrs {
		items[i] = attributeItem{attr: a}
	}

	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = styles.SelectedItemStyle
	d.Styles.SelectedDesc = styles.DimItemStyle
	d.Styles.NormalTitle = styles.NormalItemStyle
	d.Styles.NormalDesc = styles.DimItemStyle
	d.SetSpacing(0)

	l := list.New(items, d, dropdownWidth, len(items)*d.Height())
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	return Dropdown{list: l}
}

// Show opens the dropdown with current highlighted.
func (d *Dropdown) Show(current model.AttributeKey) {
	for i, it := range d.list.Items() {
		if it.(attributeItem).attr.Key() == current {
			d.list.Select(i)
			break
		}
	}
	d.visible = true
}

// Hide closes the dropdown.
func (d *Dropdown) Hide() {
	d.visible = false
}

// IsVisible returns whether the dropdown is currently open.
func (d *Dropdown) IsVisible() bool {
	return d.visible
}

// SetSize sets the area the dropdown is centred in.
func (d *Dropdown) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// Highlighted returns the attribute under the cursor.
func (d *Dropdown) Highlighted() analysis.Attribute {
	if it, ok := d.list.SelectedItem().(attributeItem); ok {
		return it.attr
	}
	return nil
}

// Update handles input while the dropdown is open. handled is true when
// the dropdown closed.
func (d *Dropdown) Update(msg tea.Msg) (result DropdownResult, handled bool) {
	if !d.visible {
		return DropdownResult{}, false
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, selectKey):
			d.Hide()
			if a := d.Highlighted(); a != nil {
				return DropdownResult{Key: a.Key(), Confirmed: true}, true
			}
			return DropdownResult{}, true

		case key.Matches(msg, cancelKey):
			d.Hide()
			return DropdownResult{}, true
		}
	}

	d.list, _ = d.list.Update(msg)
	return DropdownResult{}, false
}

// View renders the dropdown centred in its area.
func (d Dropdown) View() string {
	if !d.visible {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.ColorAccent).
		Bold(true)

	hintStyle := lipgloss.NewStyle().
		Foreground(styles.ColorMuted).
		MarginTop(1)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Plot attribute"))
	b.WriteString("\n\n")
	b.WriteString(d.list.View())
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("[↑/↓] move  [enter] select  [esc] cancel"))

	dialog := styles.DropdownStyle.Render(b.String())

	if d.width > 0 && d.height > 0 {
		return lipgloss.Place(
			d.width, d.height,
			lipgloss.Center, lipgloss.Center,
			dialog,
		)
	}

	return dialog
}
