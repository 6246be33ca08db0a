package matcher

import (
	"testing"

	"github.com/forest-guardian/hyper-indices-cli/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchNDVI(t *testing.T) {
	ndvi, err := catalog.Lookup("NDVI")
	require.NoError(t, err)

	res, err := Match(ndvi, []Band{
		{Name: "b_red", WavelengthNm: 665},
		{Name: "b_nir", WavelengthNm: 850},
	})
	require.NoError(t, err)
	assert.Equal(t, FullyMatched, res.Status)
	assert.Equal(t, map[string]string{"RED": "b_red", "NIR": "b_nir"}, res.Bindings)
	assert.Empty(t, res.Missing)
}

func TestMatchOutsideTolerance(t *testing.T) {
	ndvi, err := catalog.Lookup("NDVI")
	require.NoError(t, err)

	res, err := Match(ndvi, []Band{{Name: "b1", WavelengthNm: 480}})
	require.NoError(t, err)
	assert.Equal(t, Unmatched, res.Status)
	assert.Empty(t, res.Bindings)
	require.Len(t, res.Missing, 2)
	assert.Equal(t, "RED", res.Missing[0].ID)
	assert.Equal(t, "NIR", res.Missing[1].ID)
}

func TestMatchPartial(t *testing.T) {
	ndvi, err := catalog.Lookup("NDVI")
	require.NoError(t, err)

	res, err := Match(ndvi, []Band{{Name: "b_red", WavelengthNm: 665}})
	require.NoError(t, err)
	assert.Equal(t, PartiallyMatched, res.Status)
	assert.Equal(t, map[string]string{"RED": "b_red"}, res.Bindings)
	require.Len(t, res.Missing, 1)
	assert.Equal(t, "NIR", res.Missing[0].ID)
}

func TestMatchTieBreakEarliestInput(t *testing.T) {
	idx := catalog.SpectralIndex{
		Name:    "TIE",
		Roles:   []catalog.RoleSpec{{ID: "X", CenterNm: 100, ToleranceNm: 50}},
		Formula: "{X}",
	}
	res, err := Match(idx, []Band{
		{Name: "early", WavelengthNm: 90},
		{Name: "late", WavelengthNm: 110},
	})
	require.NoError(t, err)
	assert.Equal(t, FullyMatched, res.Status)
	assert.Equal(t, "early", res.Bindings["X"])
}

func TestMatchBandClaimedOnce(t *testing.T) {
	// Earlier roles claim the closest band before later roles compete.
	idx := catalog.SpectralIndex{
		Name: "TWIN",
		Roles: []catalog.RoleSpec{
			{ID: "A", CenterNm: 700, ToleranceNm: 50},
			{ID: "B", CenterNm: 700, ToleranceNm: 50},
		},
		Formula: "{A} / {B}",
	}
	res, err := Match(idx, []Band{
		{Name: "b1", WavelengthNm: 705},
		{Name: "b2", WavelengthNm: 720},
	})
	require.NoError(t, err)
	assert.Equal(t, FullyMatched, res.Status)
	assert.Equal(t, "b1", res.Bindings["A"])
	assert.Equal(t, "b2", res.Bindings["B"])
}

func TestMatchSingleBandCannotFillTwoRoles(t *testing.T) {
	idx := catalog.SpectralIndex{
		Name: "TWIN",
		Roles: []catalog.RoleSpec{
			{ID: "A", CenterNm: 700, ToleranceNm: 50},
			{ID: "B", CenterNm: 700, ToleranceNm: 50},
		},
		Formula: "{A} / {B}",
	}
	res, err := Match(idx, []Band{{Name: "b1", WavelengthNm: 700}})
	require.NoError(t, err)
	assert.Equal(t, PartiallyMatched, res.Status)
	assert.Equal(t, "b1", res.Bindings["A"])
	require.Len(t, res.Missing, 1)
	assert.Equal(t, "B", res.Missing[0].ID)
}

func TestValidateBands(t *testing.T) {
	assert.ErrorIs(t, ValidateBands(nil), ErrInvalidInput)
	assert.ErrorIs(t, ValidateBands([]Band{}), ErrInvalidInput)
	assert.ErrorIs(t, ValidateBands([]Band{
		{Name: "b1", WavelengthNm: 480},
		{Name: "b1", WavelengthNm: 560},
	}), ErrInvalidInput)
	assert.ErrorIs(t, ValidateBands([]Band{{Name: "", WavelengthNm: 480}}), ErrInvalidInput)
	assert.NoError(t, ValidateBands([]Band{
		{Name: "b1", WavelengthNm: 480},
		{Name: "b2", WavelengthNm: 560},
	}))
}

func TestMatchDoesNotMutateInputs(t *testing.T) {
	ndvi, err := catalog.Lookup("NDVI")
	require.NoError(t, err)

	bands := []Band{
		{Name: "b_red", WavelengthNm: 665},
		{Name: "b_nir", WavelengthNm: 850},
	}
	_, err = Match(ndvi, bands)
	require.NoError(t, err)
	assert.Equal(t, []Band{
		{Name: "b_red", WavelengthNm: 665},
		{Name: "b_nir", WavelengthNm: 850},
	}, bands)
}
