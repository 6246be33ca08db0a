package expression

import (
	"testing"

	"github.com/forest-guardian/hyper-indices-cli/internal/catalog"
	"github.com/forest-guardian/hyper-indices-cli/internal/matcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNDVI(t *testing.T) {
	ndvi, err := catalog.Lookup("NDVI")
	require.NoError(t, err)

	m, err := matcher.Match(ndvi, []matcher.Band{
		{Name: "b_red", WavelengthNm: 665},
		{Name: "b_nir", WavelengthNm: 850},
	})
	require.NoError(t, err)
	require.Equal(t, matcher.FullyMatched, m.Status)

	ce, err := Build(ndvi, m)
	require.NoError(t, err)
	assert.Equal(t, "NDVI", ce.IndexName)
	assert.Equal(t, "(b_nir - b_red) / (b_nir + b_red + 1e-6)", ce.Expression)
	assert.False(t, ce.Normalized)
}

func TestBuildRejectsPartialMatch(t *testing.T) {
	ndvi, err := catalog.Lookup("NDVI")
	require.NoError(t, err)

	m, err := matcher.Match(ndvi, []matcher.Band{{Name: "b_red", WavelengthNm: 665}})
	require.NoError(t, err)
	require.Equal(t, matcher.PartiallyMatched, m.Status)

	_, err = Build(ndvi, m)
	assert.ErrorIs(t, err, ErrNotFullyMatched)
}

func TestNormalizeWithRange(t *testing.T) {
	ndvi, err := catalog.Lookup("NDVI")
	require.NoError(t, err)
	require.NotNil(t, ndvi.Range)

	ce := ComputedExpression{
		IndexName:  "NDVI",
		Expression: "(b_nir - b_red) / (b_nir + b_red + 1e-6)",
	}
	out := Normalize(ce, ndvi)
	assert.True(t, out.Normalized)
	assert.Equal(t,
		"(((b_nir - b_red) / (b_nir + b_red + 1e-6)) - (-1)) / 2",
		out.Expression)
	assert.Empty(t, out.Warnings)

	// input untouched
	assert.False(t, ce.Normalized)
	assert.Equal(t, "(b_nir - b_red) / (b_nir + b_red + 1e-6)", ce.Expression)
}

func TestNormalizeWithoutRange(t *testing.T) {
	idx := catalog.SpectralIndex{
		Name:    "NORANGE",
		Roles:   []catalog.RoleSpec{{ID: "X", CenterNm: 500, ToleranceNm: 50}},
		Formula: "{X}",
	}
	ce := ComputedExpression{IndexName: "NORANGE", Expression: "b1"}
	out := Normalize(ce, idx)
	assert.False(t, out.Normalized)
	assert.Equal(t, "b1", out.Expression)
	require.Len(t, out.Warnings, 1)
	assert.Contains(t, out.Warnings[0], "NORANGE")
	assert.Contains(t, out.Warnings[0], "normalization skipped")
}

func TestNormalizeZeroBasedRange(t *testing.T) {
	idx := catalog.SpectralIndex{
		Name:    "ZB",
		Roles:   []catalog.RoleSpec{{ID: "X", CenterNm: 500, ToleranceNm: 50}},
		Formula: "{X}",
		Range:   &catalog.Range{Min: 0, Max: 5},
	}
	out := Normalize(ComputedExpression{IndexName: "ZB", Expression: "b1"}, idx)
	assert.True(t, out.Normalized)
	assert.Equal(t, "((b1) - 0) / 5", out.Expression)
}
