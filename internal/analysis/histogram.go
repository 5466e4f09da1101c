package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// BinCount is the fixed number of equal-width histogram bins.
const BinCount = 20

// Bin is one histogram bucket covering [X0, X1). The last bin is closed on
// the right so the maximum value is counted.
type Bin struct {
	X0, X1 float64
	Count  int
}

// Histogram holds BinCount bins over the extent of the binned values.
type Histogram struct {
	Min, Max float64
	Bins     []Bin
	MaxCount int
	Total    int
}

// Degenerate reports whether every value was equal (zero-width bins).
func (h Histogram) Degenerate() bool { return h.Total > 0 && h.Min == h.Max }

// BuildHistogram partitions the extent of vs into BinCount equal-width bins.
// Non-finite values are ignored. An empty input yields BinCount empty bins
// over [0, 0]; a constant input puts every value in the first bin.
func BuildHistogram(vs []float64) Histogram {
	x := finiteOnly(vs)
	h := Histogram{Bins: make([]Bin, BinCount), Total: len(x)}
	if len(x) == 0 {
		return h
	}
	sort.Float64s(x)
	h.Min, h.Max = x[0], x[len(x)-1]

	if h.Min == h.Max {
		for i := range h.Bins {
			h.Bins[i] = Bin{X0: h.Min, X1: h.Min}
		}
		h.Bins[0].Count = len(x)
		h.MaxCount = len(x)
		return h
	}

	dividers := floats.Span(make([]float64, BinCount+1), h.Min, h.Max)
	dividers[BinCount] = math.Nextafter(h.Max, math.Inf(1))
	counts := stat.Histogram(nil, dividers, x, nil)

	for i, c := range counts {
		n := int(c)
		h.Bins[i] = Bin{X0: dividers[i], X1: dividers[i+1], Count: n}
		if n > h.MaxCount {
			h.MaxCount = n
		}
	}
	h.Bins[BinCount-1].X1 = h.Max
	return h
}
