package delivery

import (
	"testing"

	"github.com/forest-guardian/hyper-indices-cli/internal/catalog"
	"github.com/forest-guardian/hyper-indices-cli/internal/matcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBands = []matcher.Band{
	{Name: "b_blue", WavelengthNm: 490},
	{Name: "b_green", WavelengthNm: 560},
	{Name: "b_red", WavelengthNm: 665},
	{Name: "b_nir", WavelengthNm: 850},
}

func TestComputeSingleIndex(t *testing.T) {
	res, err := Compute(Request{Indices: []string{"NDVI"}}, testBands)
	require.NoError(t, err)
	require.Len(t, res.Expressions, 1)
	assert.Empty(t, res.Skipped)
	assert.Empty(t, res.Warnings)

	ce := res.Expressions[0]
	assert.Equal(t, "NDVI", ce.IndexName)
	assert.Equal(t, "(b_nir - b_red) / (b_nir + b_red + 1e-6)", ce.Expression)
	assert.False(t, ce.Normalized)
}

func TestComputeNormalize(t *testing.T) {
	res, err := Compute(Request{Indices: []string{"NDVI"}, Normalize: true}, testBands)
	require.NoError(t, err)
	require.Len(t, res.Expressions, 1)
	assert.True(t, res.Expressions[0].Normalized)
	assert.Equal(t,
		"(((b_nir - b_red) / (b_nir + b_red + 1e-6)) - (-1)) / 2",
		res.Expressions[0].Expression)
}

func TestComputePreservesRequestOrder(t *testing.T) {
	res, err := Compute(Request{Indices: []string{"SAVI", "NDVI", "GNDVI"}}, testBands)
	require.NoError(t, err)
	require.Len(t, res.Expressions, 3)
	assert.Equal(t, "SAVI", res.Expressions[0].IndexName)
	assert.Equal(t, "NDVI", res.Expressions[1].IndexName)
	assert.Equal(t, "GNDVI", res.Expressions[2].IndexName)
}

func TestComputeSkipsPartialMatches(t *testing.T) {
	res, err := Compute(Request{Indices: []string{"NDVI"}},
		[]matcher.Band{{Name: "b_red", WavelengthNm: 665}})
	require.NoError(t, err)
	assert.Empty(t, res.Expressions)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, "NDVI", res.Skipped[0].Index)
	assert.Equal(t, "missing role(s) NIR (830nm)", res.Skipped[0].Reason)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "index NDVI skipped: missing role(s) NIR (830nm)", res.Warnings[0])
}

func TestComputeThemeWithUselessBand(t *testing.T) {
	// A lone blue band cannot fully match any vegetation index, so the
	// whole batch lands in the skip report.
	res, err := Compute(Request{Theme: "vegetation"},
		[]matcher.Band{{Name: "b1", WavelengthNm: 480}})
	require.NoError(t, err)
	assert.Empty(t, res.Expressions)

	defs, err := catalog.ByTheme(catalog.Vegetation)
	require.NoError(t, err)
	assert.Len(t, res.Skipped, len(defs))
	assert.Len(t, res.Warnings, len(defs))
}

func TestComputeThemeTakesPrecedence(t *testing.T) {
	res, err := Compute(Request{Indices: []string{"MNDWI"}, Theme: "vegetation"}, testBands)
	require.NoError(t, err)
	for _, ce := range res.Expressions {
		assert.NotEqual(t, "MNDWI", ce.IndexName)
	}
	for _, s := range res.Skipped {
		assert.NotEqual(t, "MNDWI", s.Index)
	}
}

func TestComputeAllKeyword(t *testing.T) {
	res, err := Compute(Request{Indices: []string{"all"}}, testBands)
	require.NoError(t, err)
	assert.Equal(t, len(catalog.All()), len(res.Expressions)+len(res.Skipped))
}

func TestComputeUnknownIndexAborts(t *testing.T) {
	_, err := Compute(Request{Indices: []string{"NDVI", "nope"}}, testBands)
	assert.ErrorIs(t, err, catalog.ErrUnknownIndex)
}

func TestComputeUnknownThemeAborts(t *testing.T) {
	_, err := Compute(Request{Theme: "nope"}, testBands)
	assert.ErrorIs(t, err, catalog.ErrUnknownTheme)
}

func TestComputeEmptyRequest(t *testing.T) {
	_, err := Compute(Request{}, testBands)
	assert.ErrorIs(t, err, catalog.ErrUnknownIndex)
}

func TestComputeInvalidBands(t *testing.T) {
	_, err := Compute(Request{Indices: []string{"NDVI"}}, nil)
	assert.ErrorIs(t, err, matcher.ErrInvalidInput)
}
