package components

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ijuttt/countyscope/internal/analysis"
	"github.com/ijuttt/countyscope/internal/model"
	"github.com/ijuttt/countyscope/internal/processor"
	"github.com/ijuttt/countyscope/internal/view"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDropdownSelect(t *testing.T) {
	d := NewDropdown(analysis.DefaultAttributes())
	if _, handled := d.Update(keyMsg("enter")); handled {
		t.Fatal("hidden dropdown handled input")
	}

	d.Show(model.MedianHouseholdIncome)
	if !d.IsVisible() {
		t.Fatal("Show did not open the dropdown")
	}
	if got := d.Highlighted().Key(); got != model.MedianHouseholdIncome {
		t.Errorf("Highlighted() = %s, want the current attribute", got)
	}

	if _, handled := d.Update(keyMsg("down")); handled {
		t.Error("cursor movement closed the dropdown")
	}
	res, handled := d.Update(keyMsg("enter"))
	if !handled || !res.Confirmed {
		t.Fatalf("enter = %+v, %v, want confirmed", res, handled)
	}
	if res.Key != model.NoHealthInsurancePct {
		t.Errorf("Key = %s, want %s", res.Key, model.NoHealthInsurancePct)
	}
	if d.IsVisible() {
		t.Error("dropdown still open after selection")
	}
}

func TestDropdownCancel(t *testing.T) {
	d := NewDropdown(analysis.DefaultAttributes())
	d.SetSize(80, 24)
	d.Show(model.PovertyPct)

	if v := d.View(); !strings.Contains(v, "Poverty (%)") {
		t.Errorf("View() does not list attributes:\n%s", v)
	}

	res, handled := d.Update(keyMsg("esc"))
	if !handled || res.Confirmed {
		t.Errorf("esc = %+v, %v, want cancelled", res, handled)
	}
	if d.View() != "" {
		t.Error("hidden dropdown rendered")
	}
}

func TestShapeTooltip(t *testing.T) {
	p := &view.Panel{Width: 100, Height: 100, Shapes: []view.Shape{
		view.Box{Rect: view.Rect{X0: 10, Y0: 10, X1: 20, Y1: 90}, Meta: view.Meta{Class: view.ClassBar, Tooltip: "bar"}},
		view.Circle{X: 50, Y: 50, R: 5, Meta: view.Meta{Class: view.ClassPoint, Tooltip: "point"}},
		view.Box{Rect: view.Rect{X0: 0, Y0: 0, X1: 100, Y1: 100}, Meta: view.Meta{Class: view.ClassBrush}},
	}}

	tests := []struct {
		x, y float64
		want string
		ok   bool
	}{
		{15, 50, "bar", true},
		{53, 53, "point", true},
		{56, 50, "", false},
		{90, 90, "", false},
	}
	for _, tt := range tests {
		got, ok := ShapeTooltip(p, tt.x, tt.y)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ShapeTooltip(%v, %v) = %q, %v, want %q, %v", tt.x, tt.y, got, ok, tt.want, tt.ok)
		}
	}
	if _, ok := ShapeTooltip(nil, 0, 0); ok {
		t.Error("ShapeTooltip(nil) found a shape")
	}
}

func TestPanelViewSize(t *testing.T) {
	v := NewPanelView(view.PanelScatter)
	v.SetSize(30, 10)
	if v.Cols() != 26 || v.Rows() != 8 {
		t.Errorf("content = %dx%d, want 26x8", v.Cols(), v.Rows())
	}
	if !strings.Contains(v.View(), "Loading") {
		t.Error("empty panel does not show a loading hint")
	}

	v.SetPanel(&view.Panel{Name: view.PanelScatter, Title: "T", Width: 260, Height: 80, Shapes: []view.Shape{
		view.Circle{X: 5, Y: 5, R: 1},
	}})
	if got := v.Canvas().At(0, 0); got != '●' {
		t.Errorf("canvas(0, 0) = %q, want a point", got)
	}
	lines := strings.Split(v.View(), "\n")
	if len(lines) != 10 {
		t.Errorf("View() has %d lines, want 10", len(lines))
	}
}

func TestDescribeFile(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	fi := processor.FileInfo{
		Path:    "/data/counties-10m.json",
		Name:    "counties-10m.json",
		Size:    3 * 1024 * 1024,
		ModTime: now.Add(-time.Hour),
	}
	if got, want := DescribeFile(fi, now), "counties-10m.json, 3.0 MB, Today at 11:00:00"; got != want {
		t.Errorf("DescribeFile = %q, want %q", got, want)
	}
	if got := DescribeFile(processor.FileInfo{}, now); got != "none" {
		t.Errorf("DescribeFile(zero) = %q, want \"none\"", got)
	}

	sizes := map[int64]string{512: "512 B", 2048: "2.0 KB", 5 << 30: "5.0 GB"}
	for n, want := range sizes {
		if got := FormatFileSize(n); got != want {
			t.Errorf("FormatFileSize(%d) = %q, want %q", n, got, want)
		}
	}
}
