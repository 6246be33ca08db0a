package palette

import (
	"image/color"
	"testing"

	"github.com/forest-guardian/hyper-indices-cli/internal/catalog"
	"github.com/stretchr/testify/assert"
)

func TestRampClampsAtEnds(t *testing.T) {
	r := ForTheme(catalog.Vegetation)
	assert.Equal(t, color.RGBA{R: 145, G: 82, B: 45, A: 255}, r.At(-0.5))
	assert.Equal(t, color.RGBA{R: 145, G: 82, B: 45, A: 255}, r.At(0))
	assert.Equal(t, color.RGBA{R: 26, G: 120, B: 26, A: 255}, r.At(1))
	assert.Equal(t, color.RGBA{R: 26, G: 120, B: 26, A: 255}, r.At(2))
}

func TestRampInterpolates(t *testing.T) {
	r := Ramp{stops: []color.RGBA{
		{R: 0, G: 0, B: 0, A: 255},
		{R: 200, G: 100, B: 50, A: 255},
	}}
	mid := r.At(0.5)
	assert.Equal(t, color.RGBA{R: 100, G: 50, B: 25, A: 255}, mid)
}

func TestForTheme(t *testing.T) {
	assert.Equal(t, ForTheme(catalog.Vegetation), ForTheme(catalog.Stress))
	assert.NotEqual(t, ForTheme(catalog.Vegetation), ForTheme(catalog.Water))
	assert.Equal(t, ForTheme(catalog.Soil), ForTheme(catalog.Urban))
}
