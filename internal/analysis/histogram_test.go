/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package analysis

import (
	"math"
	"testing"
)

func binTotal(h Histogram) int {
	n := 0
	for _, b := range h.Bins {
		n += b.Count
	}
	return n
}

func TestBuildHistogramCountsEveryValue(t *testing.T) {
	vs := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 10, 10}
	h := BuildHistogram(vs)

	if len(h.Bins) != BinCount {
		t.Fatalf("len(Bins) = %d, want %d", len(h.Bins), BinCount)
	}
	if got := binTotal(h); got != len(vs) {
		t.Errorf("sum of counts = %d, want %d", got, len(vs))
	}
	if h.Bins[0].X0 != 0 || h.Bins[BinCount-1].X1 != 10 {
		t.Errorf("domain = [%v, %v], want [0, 10]", h.Bins[0].X0, h.Bins[BinCount-1].X1)
	}
	if h.Bins[BinCount-1].Count != 3 {
		t.Errorf("last bin count = %d, want 3 (maximum is included)", h.Bins[BinCount-1].Count)
	}
	if h.MaxCount != 3 {
		t.Errorf("MaxCount = %d, want 3", h.MaxCount)
	}
	for i, b := range h.Bins {
		if w := b.X1 - b.X0; math.Abs(w-0.5) > 1e-9 {
			t.Errorf("bin %d width = %v, want 0.5", i, w)
		}
	}
}

func TestBuildHistogramEdgeCases(t *testing.T) {
	tests := []struct {
		name       string
		vs         []float64
		wantTotal  int
		wantFirst  int
		degenerate bool
	}{
		{name: "empty", vs: nil, wantTotal: 0, wantFirst: 0},
		{name: "single", vs: []float64{42}, wantTotal: 1, wantFirst: 1, degenerate: true},
		{name: "constant", vs: []float64{7, 7, 7}, wantTotal: 3, wantFirst: 3, degenerate: true},
		{name: "nan ignored", vs: []float64{math.NaN(), 3}, wantTotal: 1, wantFirst: 1, degenerate: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := BuildHistogram(tt.vs)
			if len(h.Bins) != BinCount {
				t.Fatalf("len(Bins) = %d, want %d", len(h.Bins), BinCount)
			}
			if got := binTotal(h); got != tt.wantTotal {
				t.Errorf("sum of counts = %d, want %d", got, tt.wantTotal)
			}
			if h.Bins[0].Count != tt.wantFirst {
				t.Errorf("first bin = %d, want %d", h.Bins[0].Count, tt.wantFirst)
			}
			if h.Degenerate() != tt.degenerate {
				t.Errorf("Degenerate() = %v, want %v", h.Degenerate(), tt.degenerate)
			}
		})
	}
}
