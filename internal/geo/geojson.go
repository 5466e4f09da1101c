package geo

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/ijuttt/countyscope/internal/model"
)

// DecodeGeoJSON converts a FeatureCollection into features. The id comes
// from the feature id, or from idProperty when the id member is absent.
func DecodeGeoJSON(data []byte, idProperty string) (*FeatureSet, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("decode feature collection: %w", err)
	}

	features := make([]Feature, 0, len(fc.Features))
	for _, f := range fc.Features {
		var mp orb.MultiPolygon
		switch g := f.Geometry.(type) {
		case orb.Polygon:
			mp = orb.MultiPolygon{g}
		case orb.MultiPolygon:
			mp = g
		default:
			continue
		}
		features = append(features, Feature{
			ID:       featureID(f, idProperty),
			Name:     f.Properties.MustString("name", ""),
			Geometry: mp,
		})
	}
	return NewFeatureSet(features), nil
}

func featureID(f *geojson.Feature, idProperty string) string {
	id := f.ID
	if id == nil && idProperty != "" {
		id = f.Properties[idProperty]
	}
	switch v := id.(type) {
	case string:
		return model.NormalizeID(v)
	case float64:
		return model.IDFromNumber(v)
	}
	return ""
}
