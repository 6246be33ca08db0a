package engine

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/forest-guardian/hyper-indices-cli/internal/cache"
	"github.com/forest-guardian/hyper-indices-cli/internal/palette"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

type bandStats struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

var statsCache = cache.NewFileCache[bandStats]("band_stats")

// cachedStats returns the finite min/max of the computed values, keyed by
// the source image, its mtime and the index name so re-runs over the same
// scene skip the scan.
func cachedStats(indexName string, values []float64, opts Options) (float64, float64) {
	key := ""
	if info, err := os.Stat(opts.ImagePath); err == nil {
		key = statsCache.Key(opts.ImagePath, info.ModTime().Unix(), indexName)
		if stats, ok := statsCache.Get(key); ok {
			return stats.Min, stats.Max
		}
	}

	min, max := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min > max {
		min, max = 0, 1
	}
	if key != "" {
		statsCache.Set(key, bandStats{Min: min, Max: max})
	}
	return min, max
}

func renderPNG(path string, values []float64, width, height int, ramp palette.Ramp, min, span float64) error {
	dc := gg.NewContext(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := values[y*width+x]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				dc.SetRGBA(0, 0, 0, 0)
				dc.SetPixel(x, y)
				continue
			}
			c := ramp.At((v - min) / span)
			dc.SetRGBA255(int(c.R), int(c.G), int(c.B), 255)
			dc.SetPixel(x, y)
		}
	}
	return dc.SavePNG(path)
}

// writeFootprint stores the processed extent plus the produced rasters as a
// GeoJSON feature next to the outputs.
func writeFootprint(opts Options, gt [6]float64, width, height int, outputs []Output) error {
	xMin := gt[0]
	yMax := gt[3]
	xMax := xMin + gt[1]*float64(width)
	yMin := yMax + gt[5]*float64(height)

	ring := orb.Ring{
		{xMin, yMin}, {xMax, yMin}, {xMax, yMax}, {xMin, yMax}, {xMin, yMin},
	}
	feature := geojson.NewFeature(orb.Polygon{ring})
	feature.Properties["source"] = opts.ImagePath
	names := make([]string, 0, len(outputs))
	for _, out := range outputs {
		names = append(names, out.Index)
	}
	feature.Properties["indices"] = names

	fc := geojson.NewFeatureCollection()
	fc.Append(feature)
	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal footprint: %w", err)
	}
	path := filepath.Join(opts.OutputDir, fmt.Sprintf("%s_footprint.geojson", opts.Prefix))
	return os.WriteFile(path, data, 0644)
}
