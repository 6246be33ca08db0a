package sentinel

import (
	"math"
	"sort"

	"github.com/forest-guardian/hyper-indices-cli/internal/matcher"
)

// Sentinel-2 L2A band centers in nm.
var bandCenters = map[string]float64{
	"B01": 443,
	"B02": 490,
	"B03": 560,
	"B04": 665,
	"B05": 705,
	"B06": 740,
	"B07": 783,
	"B08": 842,
	"B8A": 865,
	"B09": 945,
	"B11": 1610,
	"B12": 2190,
}

// SelectBands picks, for each requested wavelength, the nearest Sentinel-2
// band, deduplicated and ordered by wavelength. The result feeds straight
// into the matcher: band names are the S2 identifiers, wavelengths their
// true centers rather than the requested ones.
func SelectBands(wavelengths []float64) []matcher.Band {
	chosen := map[string]bool{}
	for _, wl := range wavelengths {
		best, bestDist := "", math.Inf(1)
		for name, center := range bandCenters {
			if d := math.Abs(center - wl); d < bestDist {
				best, bestDist = name, d
			}
		}
		chosen[best] = true
	}

	out := make([]matcher.Band, 0, len(chosen))
	for name := range chosen {
		out = append(out, matcher.Band{Name: name, WavelengthNm: bandCenters[name]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WavelengthNm < out[j].WavelengthNm })
	return out
}
