package visibility

import (
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// LoadObstacles reads a GeoJSON FeatureCollection and returns its Polygon and
// MultiPolygon geometries as obstacles. Other geometry types are skipped.
func LoadObstacles(r io.Reader) ([]orb.Polygon, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read obstacles: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse obstacles: %w", err)
	}

	var out []orb.Polygon
	for _, f := range fc.Features {
		switch g := f.Geometry.(type) {
		case orb.Polygon:
			out = append(out, g)
		case orb.MultiPolygon:
			out = append(out, g...)
		}
	}

	return out, nil
}
