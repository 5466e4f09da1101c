/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package bubbletea provides the main TUI application using Bubble Tea.
package bubbletea

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ijuttt/countyscope/internal/analysis"
	"github.com/ijuttt/countyscope/internal/app"
	"github.com/ijuttt/countyscope/internal/config"
	"github.com/ijuttt/countyscope/internal/logging"
	"github.com/ijuttt/countyscope/internal/model"
	"github.com/ijuttt/countyscope/internal/processor"
	"github.com/ijuttt/countyscope/internal/ui/components"
	"github.com/ijuttt/countyscope/internal/ui/styles"
	"github.com/ijuttt/countyscope/internal/ui/widgets"
	"github.com/ijuttt/countyscope/internal/view"
)

// successMark prefixes status messages that report a completed action.
const successMark = "✓ "

// cell is a canvas position.
type cell struct{ col, row int }

// App is the main application model.
type App struct {
	opts  config.Options
	state *app.State
	data  processor.FileInfo

	// Components
	scatter  components.PanelView
	hist     components.PanelView
	bp       components.PanelView
	choro    components.PanelView
	dropdown components.Dropdown
	help     help.Model

	// Status
	loading   bool
	statusMsg string
	errMsg    string
	tooltip   string
	fatal     error

	// Layout
	width  int
	height int
	layout layout

	// Mouse brushing
	dragging bool
	anchor   cell
	current  cell

	// Keyboard brushing
	brushMode bool
	anchorSet bool
	cursor    cell

	// Key bindings
	keys KeyMap
}

// NewApp creates a new application instance for the given settings.
func NewApp(opts config.Options) App {
	return App{
		opts:      opts,
		scatter:   components.NewPanelView(view.PanelScatter),
		hist:      components.NewPanelView(view.PanelHistogram),
		bp:        components.NewPanelView(view.PanelBloodPressure),
		choro:     components.NewPanelView(view.PanelMap),
		dropdown:  components.NewDropdown(analysis.DefaultAttributes()),
		help:      newHelp(),
		keys:      DefaultKeyMap(),
		loading:   true,
		statusMsg: "Loading county data...",
	}
}

// newHelp returns the help bar in the dashboard palette.
func newHelp() help.Model {
	h := help.New()
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.FullKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpDescStyle
	h.Styles.FullDesc = styles.HelpDescStyle
	return h
}

// Init starts the table and geometry loads.
func (a App) Init() tea.Cmd {
	return processor.LoadCmd(a.opts)
}

// Update handles messages and updates the model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The dropdown takes all keys while open
	if _, isKey := msg.(tea.KeyMsg); isKey && a.dropdown.IsVisible() {
		if res, handled := a.dropdown.Update(msg); handled {
			if res.Confirmed {
				a.setAttribute(res.Key)
			} else {
				a.statusMsg = "Attribute unchanged"
			}
		}
		return a, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.dropdown.SetSize(msg.Width, msg.Height)
		a.help.Width = msg.Width
		a.updateComponentSizes()

	case processor.LoadResultMsg:
		a.handleLoad(msg)

	case tea.MouseMsg:
		if a.state != nil && !a.dropdown.IsVisible() {
			a.handleMouse(msg)
		}

	case tea.KeyMsg:
		if a.fatal != nil {
			if key.Matches(msg, a.keys.Quit) {
				return a, tea.Quit
			}
			return a, nil
		}
		if a.brushMode && a.handleBrushKey(msg) {
			return a, nil
		}

		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit

		case key.Matches(msg, a.keys.Help):
			a.help.ShowAll = !a.help.ShowAll
			a.updateComponentSizes()

		case key.Matches(msg, a.keys.Reload):
			a.loading = true
			a.statusMsg = "Reloading county data..."
			cmds = append(cmds, processor.LoadCmd(a.opts))

		case a.state == nil:
			// Nothing to brush or recolor before the first load.

		case key.Matches(msg, a.keys.Clear), key.Matches(msg, a.keys.Escape):
			a.state.ClearBrush()
			a.statusMsg = "Brush cleared"
			a.syncPanels()

		case key.Matches(msg, a.keys.Attribute):
			a.dropdown.Show(a.state.Attribute().Key())

		case key.Matches(msg, a.keys.NextAttribute):
			a.setAttribute(analysis.Next(a.state.Attribute().Key()).Key())

		case key.Matches(msg, a.keys.Brush):
			a.brushMode = true
			a.anchorSet = false
			a.cursor = cell{a.scatter.Cols() / 2, a.scatter.Rows() / 2}
			a.statusMsg = "Brush: move with arrows, space to anchor, enter to apply"
			a.showBrushCursor()
		}
	}

	return a, tea.Batch(cmds...)
}

// handleLoad installs a freshly loaded dataset.
func (a *App) handleLoad(msg processor.LoadResultMsg) {
	a.loading = false
	if msg.Err != nil {
		logging.Errorf("load %s: %v", a.opts.DataPath, msg.Err)
		if a.state == nil {
			a.fatal = msg.Err
			return
		}
		a.errMsg = msg.Err.Error()
		a.statusMsg = "Reload failed, keeping previous data"
		return
	}

	attr := model.AttributeKey(a.opts.Attribute)
	if a.state != nil {
		attr = a.state.Attribute().Key()
	}
	st, err := app.NewState(msg.Dataset, msg.Features, attr)
	if err != nil {
		a.fatal = err
		return
	}
	a.state = st
	a.data = msg.Data
	a.errMsg = ""
	a.exitBrushMode()
	a.dragging = false

	status := fmt.Sprintf(successMark+"Loaded %d counties from %s",
		msg.Dataset.Len(), components.DescribeFile(msg.Data, time.Now()))
	if msg.Dataset != nil && len(msg.Dataset.Rejected) > 0 {
		status += fmt.Sprintf(", %d rows rejected", len(msg.Dataset.Rejected))
	}
	if msg.GeoErr != nil {
		status += " (" + view.MapUnavailable + ")"
	}
	a.statusMsg = status
	a.syncPanels()
}

// setAttribute switches the plotted attribute and resets the brush.
func (a *App) setAttribute(k model.AttributeKey) {
	if a.state == nil {
		return
	}
	if err := a.state.SetAttribute(k); err != nil {
		a.errMsg = err.Error()
		return
	}
	a.exitBrushMode()
	a.tooltip = ""
	a.statusMsg = "Plotting " + a.state.Attribute().Label()
	a.syncPanels()
}

// -----------------------------------------------------------------------------
// Mouse
// -----------------------------------------------------------------------------

func (a *App) handleMouse(msg tea.MouseMsg) {
	sb := a.layout.scatter
	col, row := sb.cell(msg.X, msg.Y)
	c := a.scatter.Canvas()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !sb.Contains(msg.X, msg.Y) || !c.Inside(col, row) {
			return
		}
		a.brushMode = false
		a.scatter.SetCursor(0, 0, false)
		a.dragging = true
		a.anchor = cell{col, row}
		a.current = a.anchor
		a.scatter.SetPreview(cellBox(a.anchor, a.current))

	case tea.MouseActionMotion:
		if a.dragging {
			a.current = a.clampCell(col, row)
			a.scatter.SetPreview(cellBox(a.anchor, a.current))
			return
		}
		a.hover(msg.X, msg.Y)

	case tea.MouseActionRelease:
		if !a.dragging {
			return
		}
		a.dragging = false
		a.current = a.clampCell(col, row)
		a.scatter.SetPreview(nil)
		if a.current == a.anchor {
			a.state.ClearBrush()
			a.statusMsg = "Brush cleared"
		} else {
			a.applyCells(a.anchor, a.current)
		}
		a.syncPanels()
	}
}

// hover updates the tooltip for the panel under the pointer.
func (a *App) hover(x, y int) {
	a.tooltip = ""
	panels := []struct {
		b box
		v *components.PanelView
	}{
		{a.layout.scatter, &a.scatter},
		{a.layout.hist, &a.hist},
		{a.layout.bp, &a.bp},
		{a.layout.mapBox, &a.choro},
	}
	for _, p := range panels {
		p.v.SetActive(false)
	}
	for _, p := range panels {
		if !p.b.Contains(x, y) {
			continue
		}
		p.v.SetActive(true)
		col, row := p.b.cell(x, y)
		c := p.v.Canvas()
		if !c.Inside(col, row) {
			return
		}
		switch p.v.Name() {
		case view.PanelScatter:
			r := c.CellRect(col, row, col, row)
			px, py := c.PixelOf(col, row)
			rec, ok := a.state.PointAt(px, py, math.Hypot(r.Width(), r.Height())/2+view.PointRadius)
			if !ok {
				return
			}
			a.tooltip = view.PointTooltip(rec, a.state.Attribute())
			r = view.Rect{
				X0: r.X0 - view.PointRadius, Y0: r.Y0 - view.PointRadius,
				X1: r.X1 + view.PointRadius, Y1: r.Y1 + view.PointRadius,
			}
			if n := len(a.state.PointsIn(r)); n > 1 {
				a.tooltip += fmt.Sprintf("\n+%d nearby", n-1)
			}
		case view.PanelMap:
			px, py := c.PixelOf(col, row)
			f, rec, ok := a.state.FeatureAt(px, py)
			if !ok {
				return
			}
			if rec != nil {
				attr := a.state.Attribute()
				a.tooltip = rec.Label() + "\n" + analysis.ShortLabel(attr) + ": " +
					analysis.FormatValue(attr, attr.Extract(rec))
			} else if f.Name != "" {
				a.tooltip = f.Name + "\nnot in selection"
			} else {
				a.tooltip = f.ID + "\nnot in selection"
			}
		default:
			px, py := c.PixelOf(col, row)
			if tip, ok := components.ShapeTooltip(p.v.Panel(), px, py); ok {
				a.tooltip = tip
			}
		}
		return
	}
}

// -----------------------------------------------------------------------------
// Keyboard brushing
// -----------------------------------------------------------------------------

// handleBrushKey consumes the keys that drive the brush cursor. Other
// keys fall through to the global bindings.
func (a *App) handleBrushKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, a.keys.Up):
		a.cursor = a.clampCell(a.cursor.col, a.cursor.row-1)
	case key.Matches(msg, a.keys.Down):
		a.cursor = a.clampCell(a.cursor.col, a.cursor.row+1)
	case key.Matches(msg, a.keys.Left):
		a.cursor = a.clampCell(a.cursor.col-1, a.cursor.row)
	case key.Matches(msg, a.keys.Right):
		a.cursor = a.clampCell(a.cursor.col+1, a.cursor.row)
	case key.Matches(msg, a.keys.Anchor):
		a.anchor = a.cursor
		a.anchorSet = true
	case key.Matches(msg, a.keys.Apply):
		if !a.anchorSet {
			a.statusMsg = "Press space to anchor the brush first"
			return true
		}
		a.exitBrushMode()
		a.applyCells(a.anchor, a.cursor)
		a.syncPanels()
		return true
	case key.Matches(msg, a.keys.Escape):
		a.exitBrushMode()
		a.statusMsg = "Brush cancelled"
		return true
	default:
		return false
	}
	a.showBrushCursor()
	return true
}

func (a *App) showBrushCursor() {
	a.scatter.SetCursor(a.cursor.col, a.cursor.row, true)
	if a.anchorSet {
		a.scatter.SetPreview(cellBox(a.anchor, a.cursor))
	} else {
		a.scatter.SetPreview(nil)
	}
}

func (a *App) exitBrushMode() {
	a.brushMode = false
	a.anchorSet = false
	a.scatter.SetCursor(0, 0, false)
	a.scatter.SetPreview(nil)
}

// applyCells brushes the scatterplot pixels covered by the cells between
// two corners.
func (a *App) applyCells(from, to cell) {
	r := a.scatter.Canvas().CellRect(from.col, from.row, to.col, to.row)
	a.state.ApplyBrush(&r)
	a.statusMsg = fmt.Sprintf("Brushed %d of %d counties", len(a.state.Filtered()), len(a.state.Full()))
}

func (a *App) clampCell(col, row int) cell {
	c := a.scatter.Canvas()
	return cell{
		col: min(max(col, 0), max(c.Cols-1, 0)),
		row: min(max(row, 0), max(c.Rows-1, 0)),
	}
}

func cellBox(p, q cell) *components.CellBox {
	return &components.CellBox{Col0: p.col, Row0: p.row, Col1: q.col, Row1: q.row}
}

// -----------------------------------------------------------------------------
// Layout and Rendering
// -----------------------------------------------------------------------------

// updateComponentSizes recalculates component dimensions.
func (a *App) updateComponentSizes() {
	helpHeight := 1
	if a.help.ShowAll {
		helpHeight = a.keys.fullHelpHeight()
	}
	a.layout = computeLayout(a.width, a.height, helpHeight)
	a.scatter.SetSize(a.layout.scatter.W, a.layout.scatter.H)
	a.hist.SetSize(a.layout.hist.W, a.layout.hist.H)
	a.bp.SetSize(a.layout.bp.W, a.layout.bp.H)
	a.choro.SetSize(a.layout.mapBox.W, a.layout.mapBox.H)
	if a.brushMode {
		a.cursor = a.clampCell(a.cursor.col, a.cursor.row)
		a.showBrushCursor()
	}
}

// syncPanels pushes the latest frame into the panel views.
func (a *App) syncPanels() {
	f := a.state.Frame()
	a.scatter.SetPanel(f.Panel(view.PanelScatter))
	a.hist.SetPanel(f.Panel(view.PanelHistogram))
	a.bp.SetPanel(f.Panel(view.PanelBloodPressure))
	a.choro.SetPanel(f.Panel(view.PanelMap))
}

// View renders the application.
func (a App) View() string {
	if a.fatal != nil {
		return a.renderFatal()
	}
	if a.width == 0 {
		return "Initializing..."
	}
	if a.dropdown.IsVisible() {
		return a.dropdown.View()
	}

	var b strings.Builder
	b.WriteString(a.renderHeader())
	b.WriteString("\n")
	b.WriteString(components.JoinRow(a.scatter, a.hist, a.bp))
	b.WriteString("\n")
	b.WriteString(a.choro.View())
	b.WriteString("\n")
	b.WriteString(a.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(a.help.View(a.keys))
	return b.String()
}

// renderHeader renders the title, the attribute and the brush extents.
func (a App) renderHeader() string {
	parts := []string{styles.PanelTitleStyle.Render("▦ countyscope")}
	if a.state == nil {
		return parts[0]
	}

	attr := a.state.Attribute()
	parts = append(parts,
		styles.LabelStyle.Render("x:")+" "+styles.HighlightValueStyle.Render(attr.Label()),
		styles.LabelStyle.Render("y:")+" "+styles.ValueStyle.Render(view.YAttribute.Label()),
	)

	brush := "none"
	if r := a.state.Brush(); r != nil {
		xs, ys := a.state.Scales()
		// Pixel y grows downwards, so the bottom edge is the low value.
		brush = fmt.Sprintf("%s..%s × %s..%s",
			analysis.FormatValue(attr, xs.Invert(r.X0)), analysis.FormatValue(attr, xs.Invert(r.X1)),
			analysis.FormatValue(view.YAttribute, ys.Invert(r.Y1)), analysis.FormatValue(view.YAttribute, ys.Invert(r.Y0)))
	}
	parts = append(parts, styles.LabelStyle.Render("brush:")+" "+styles.ValueStyle.Render(brush))
	if a.data.Name != "" {
		parts = append(parts, styles.DimItemStyle.Render(a.data.Name))
	}
	return lipgloss.NewStyle().MaxWidth(a.width).Render(strings.Join(parts, "  "))
}

// statusStyle picks the style of the plain status text.
func (a App) statusStyle() lipgloss.Style {
	switch {
	case a.loading:
		return styles.LoadingStyle
	case strings.HasPrefix(a.statusMsg, successMark):
		return styles.SuccessStyle
	default:
		return styles.DimItemStyle
	}
}

// renderStatusBar renders the tooltip or status text and the selection share.
func (a App) renderStatusBar() string {
	var left, right string

	switch {
	case a.errMsg != "":
		left = styles.ErrorStyle.Render(a.errMsg)
	case a.tooltip != "":
		left = styles.TooltipStyle.Render(strings.ReplaceAll(a.tooltip, "\n", " · "))
	default:
		left = a.statusStyle().Render(a.statusMsg)
	}

	if a.state != nil {
		bar := widgets.NewSelectionBar(len(a.state.Filtered()), len(a.state.Full()), SelectionBarWidth)
		right = bar.Render() + " " + bar.Label()
	}

	padding := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 0 {
		padding = 0
	}

	return styles.StatusBarStyle.
		Width(a.width).
		MaxHeight(StatusHeight).
		Render(left + strings.Repeat(" ", padding) + right)
}

func (a App) renderFatal() string {
	msg := styles.ErrorStyle.Render("Failed to load county data") + "\n\n" +
		styles.ValueStyle.Render(a.fatal.Error()) + "\n\n" +
		styles.DimItemStyle.Render("press q to quit")
	if a.width > 0 && a.height > 0 {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, msg)
	}
	return msg
}
