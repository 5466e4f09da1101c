package view

import (
	"math"
	"strconv"

	"github.com/aclements/go-moremath/scale"
)

// Linear maps a data domain onto a pixel range. A zero-width domain maps
// every value to the middle of the range.
type Linear struct {
	domain scale.Linear
	R0, R1 float64
}

// NewLinear returns a scale from [d0, d1] to [r0, r1].
func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{domain: scale.Linear{Min: d0, Max: d1}, R0: r0, R1: r1}
}

// Domain returns the domain bounds.
func (l Linear) Domain() (float64, float64) { return l.domain.Min, l.domain.Max }

// Degenerate reports whether the domain has zero width.
func (l Linear) Degenerate() bool { return l.domain.Min == l.domain.Max }

// Map converts a data value to pixels.
func (l Linear) Map(v float64) float64 {
	if l.Degenerate() {
		return (l.R0 + l.R1) / 2
	}
	return l.R0 + l.domain.Map(v)*(l.R1-l.R0)
}

// Invert converts pixels back to a data value.
func (l Linear) Invert(px float64) float64 {
	if l.Degenerate() || l.R0 == l.R1 {
		return l.domain.Min
	}
	t := (px - l.R0) / (l.R1 - l.R0)
	return l.domain.Min + t*(l.domain.Max-l.domain.Min)
}

// Ticks returns at most max evenly spaced tick positions inside the
// domain, stepping by 1, 2, 2.5 or 5 times a power of ten.
func (l Linear) Ticks(max int) []float64 {
	lo, hi := l.Domain()
	if max < 1 || math.IsNaN(lo) || math.IsNaN(hi) {
		return nil
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if l.Degenerate() {
		return []float64{lo}
	}

	mag := math.Pow(10, math.Floor(math.Log10((hi-lo)/float64(max))))
	var step, first, last float64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step = c * mag
		first, last = math.Ceil(lo/step-1e-9), math.Floor(hi/step+1e-9)
		if last-first+1 <= float64(max) {
			break
		}
	}

	out := make([]float64, 0, max)
	for i := first; i <= last; i++ {
		out = append(out, math.Round(i*step*1e6)/1e6)
	}
	return out
}

// FormatTick renders a tick value compactly: large values as integers,
// smaller ones with a precision that still tells neighbouring ticks apart.
func FormatTick(v float64) string {
	v = math.Round(v*1e6) / 1e6
	av := math.Abs(v)
	switch {
	case av >= 1000:
		return strconv.FormatInt(int64(math.Round(v)), 10)
	case av >= 10 || v == math.Trunc(v):
		return strconv.FormatFloat(v, 'f', -1, 64)
	case av >= 1:
		return strconv.FormatFloat(v, 'f', 1, 64)
	default:
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
}
