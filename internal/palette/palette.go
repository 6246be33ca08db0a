// Package palette provides the color ramps applied to index previews, one
// per thematic family, mirroring the color tables the indices are usually
// rendered with.
package palette

import (
	"image/color"

	"github.com/forest-guardian/hyper-indices-cli/internal/catalog"
)

// Ramp linearly interpolates between ordered color stops over [0,1].
type Ramp struct {
	stops []color.RGBA
}

// At maps a normalized value to a color. Out-of-range values clamp to the
// end stops.
func (r Ramp) At(t float64) color.RGBA {
	if t <= 0 {
		return r.stops[0]
	}
	if t >= 1 {
		return r.stops[len(r.stops)-1]
	}
	pos := t * float64(len(r.stops)-1)
	lower := int(pos)
	upper := lower + 1
	if upper >= len(r.stops) {
		upper = len(r.stops) - 1
	}
	return lerp(r.stops[lower], r.stops[upper], pos-float64(lower))
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: 255,
	}
}

// ndvi ramp: browns through yellow to deep green.
var ndvi = Ramp{stops: []color.RGBA{
	{R: 145, G: 82, B: 45, A: 255},
	{R: 196, G: 168, B: 100, A: 255},
	{R: 255, G: 255, B: 191, A: 255},
	{R: 145, G: 191, B: 82, A: 255},
	{R: 26, G: 120, B: 26, A: 255},
}}

// water ramp: dry tan to deep blue.
var water = Ramp{stops: []color.RGBA{
	{R: 222, G: 196, B: 150, A: 255},
	{R: 190, G: 214, B: 230, A: 255},
	{R: 100, G: 160, B: 210, A: 255},
	{R: 20, G: 60, B: 160, A: 255},
}}

// viridis approximation used for everything without a dedicated ramp.
var viridis = Ramp{stops: []color.RGBA{
	{R: 68, G: 1, B: 84, A: 255},
	{R: 59, G: 82, B: 139, A: 255},
	{R: 33, G: 145, B: 140, A: 255},
	{R: 94, G: 201, B: 98, A: 255},
	{R: 253, G: 231, B: 37, A: 255},
}}

// ForTheme picks the ramp an index of the given theme is rendered with.
func ForTheme(t catalog.Theme) Ramp {
	switch t {
	case catalog.Vegetation, catalog.Pigments, catalog.Stress:
		return ndvi
	case catalog.Water:
		return water
	}
	return viridis
}
