package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/ijuttt/countyscope/internal/model"
)

// Column is one attribute's values across a record subset, in subset order.
type Column struct {
	Key      model.AttributeKey
	Label    string
	Unit     string
	Values   []float64
	MinValue float64
	MaxValue float64
}

// BuildColumn extracts attr from every record. NaN values are skipped when
// computing the extent but kept in Values so indices line up with records.
func BuildColumn(records []*model.Record, attr Attribute) Column {
	col := Column{
		Key:    attr.Key(),
		Label:  attr.Label(),
		Unit:   attr.Unit(),
		Values: make([]float64, len(records)),
	}
	for i, r := range records {
		col.Values[i] = attr.Extract(r)
	}
	col.MinValue, col.MaxValue, _ = Extent(col.Values)
	return col
}

// Extent returns the minimum and maximum of the finite values in vs.
// ok is false when there are none, in which case min and max are zero.
func Extent(vs []float64) (min, max float64, ok bool) {
	finite := vs
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			finite = finiteOnly(vs)
			break
		}
	}
	if len(finite) == 0 {
		return 0, 0, false
	}
	return floats.Min(finite), floats.Max(finite), true
}

// AttributeExtent is Extent over attr extracted from records.
func AttributeExtent(records []*model.Record, attr Attribute) (min, max float64, ok bool) {
	return Extent(BuildColumn(records, attr).Values)
}

func finiteOnly(vs []float64) []float64 {
	out := make([]float64, 0, len(vs))
	for _, v := range vs {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}
