package sentinel

import (
	"errors"
	"fmt"

	"github.com/airbusgeo/godal"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// GeometryFromGeoJSON loads the first feature geometry of an AOI file.
func GeometryFromGeoJSON(path string) (*godal.Geometry, error) {
	ds, err := godal.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open AOI %s: %w", path, err)
	}
	defer ds.Close()

	layers := ds.Layers()
	if len(layers) == 0 {
		return nil, fmt.Errorf("AOI %s has no layers", path)
	}
	feat := layers[0].NextFeature()
	if feat == nil {
		return nil, fmt.Errorf("AOI %s has no features", path)
	}
	defer feat.Close()
	geom := feat.Geometry()
	wkb, err := geom.WKB()
	if err != nil {
		return nil, err
	}
	return godal.NewGeometryFromWKB(wkb, geom.SpatialRef())
}

// Centroid returns the AOI center as (lat, lon).
func Centroid(g *godal.Geometry) (float64, float64, error) {
	raw, err := g.GeoJSON()
	if err != nil {
		return 0, 0, err
	}
	geomT, err := geojson.UnmarshalGeometry([]byte(raw))
	if err != nil {
		return 0, 0, err
	}
	centroid, area := planar.CentroidArea(geomT.Coordinates)
	if area <= 0 {
		return 0, 0, errors.New("error getting centroid")
	}
	return centroid.Y(), centroid.X(), nil
}
