package view

import "github.com/ijuttt/countyscope/internal/model"

// Panel names, in render order.
const (
	PanelScatter       = "scatter"
	PanelHistogram     = "histogram"
	PanelBloodPressure = "bp-histogram"
	PanelMap           = "map"
)

// Panel is one view's draw commands in panel-local pixels.
type Panel struct {
	Name   string
	Title  string
	Width  float64
	Height float64
	Plot   Rect // data area; brushes and hit tests are clipped to it
	Shapes []Shape
}

func newPanel(name, title string, w, h float64) *Panel {
	return &Panel{Name: name, Title: title, Width: w, Height: h}
}

func (p *Panel) add(s ...Shape) { p.Shapes = append(p.Shapes, s...) }

// Count returns the number of shapes tagged with class.
func (p *Panel) Count(class Class) int {
	n := 0
	for _, s := range p.Shapes {
		if s.Info().Class == class {
			n++
		}
	}
	return n
}

// Select returns the shapes tagged with class, in draw order.
func (p *Panel) Select(class Class) []Shape {
	var out []Shape
	for _, s := range p.Shapes {
		if s.Info().Class == class {
			out = append(out, s)
		}
	}
	return out
}

// Frame is the output of one render pass: the four panels in fixed order,
// all computed from the same attribute and subset.
type Frame struct {
	Revision  uint64
	Attribute model.AttributeKey
	Subset    int
	Total     int
	Panels    []*Panel
}

// Panel returns the panel with the given name, or nil.
func (f *Frame) Panel(name string) *Panel {
	if f == nil {
		return nil
	}
	for _, p := range f.Panels {
		if p.Name == name {
			return p
		}
	}
	return nil
}
