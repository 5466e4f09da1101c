package analysis

import "github.com/ijuttt/countyscope/internal/model"

// DefaultAttributes returns the attribute catalog in selector order.
func DefaultAttributes() []Attribute {
	return []Attribute{
		PovertyAttribute{},
		BloodPressureAttribute{},
		IncomeAttribute{},
		UninsuredAttribute{},
	}
}

// ByKey looks up an attribute in the default catalog.
func ByKey(key model.AttributeKey) (Attribute, bool) {
	for _, a := range DefaultAttributes() {
		if a.Key() == key {
			return a, true
		}
	}
	return nil, false
}

// Next returns the attribute after key in catalog order, wrapping around.
// An unknown key yields the first attribute.
func Next(key model.AttributeKey) Attribute {
	attrs := DefaultAttributes()
	for i, a := range attrs {
		if a.Key() == key {
			return attrs[(i+1)%len(attrs)]
		}
	}
	return attrs[0]
}
