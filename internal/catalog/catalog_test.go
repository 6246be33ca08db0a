package catalog

import (
	"testing"

	"github.com/forest-guardian/hyper-indices-cli/internal/formula"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	idx, err := Lookup("NDVI")
	require.NoError(t, err)
	assert.Equal(t, "NDVI", idx.Name)
	assert.Equal(t, Vegetation, idx.Theme)
	require.Len(t, idx.Roles, 2)
	assert.Equal(t, "RED", idx.Roles[0].ID)
	assert.Equal(t, "NIR", idx.Roles[1].ID)

	lower, err := Lookup("ndvi")
	require.NoError(t, err)
	assert.Equal(t, idx.Name, lower.Name)

	_, err = Lookup("NOPE")
	assert.ErrorIs(t, err, ErrUnknownIndex)
}

func TestCatalogInvariants(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)

	seen := map[string]bool{}
	for _, idx := range all {
		assert.False(t, seen[idx.Name], "duplicate index %s", idx.Name)
		seen[idx.Name] = true

		require.NotEmpty(t, idx.Roles, "%s has no roles", idx.Name)
		roleIDs := map[string]bool{}
		for _, r := range idx.Roles {
			assert.Greater(t, r.ToleranceNm, 0.0, "%s role %s", idx.Name, r.ID)
			assert.Greater(t, r.CenterNm, 0.0, "%s role %s", idx.Name, r.ID)
			roleIDs[r.ID] = true
		}

		expr, err := formula.Parse(idx.Formula)
		require.NoError(t, err, "%s formula does not parse", idx.Name)
		for _, v := range formula.Vars(expr) {
			assert.True(t, roleIDs[v], "%s formula references undeclared role %s", idx.Name, v)
		}
	}
}

func TestByTheme(t *testing.T) {
	veg, err := ByTheme(Vegetation)
	require.NoError(t, err)
	names := make([]string, 0, len(veg))
	for _, idx := range veg {
		names = append(names, idx.Name)
		assert.Equal(t, Vegetation, idx.Theme)
	}
	assert.Equal(t, []string{
		"ARVI", "CIrededge", "DVI", "EVI", "GNDVI", "MCARI", "MSAVI",
		"MTCI", "NDRE", "NDVI", "REIP", "SAVI", "TVI", "VARI",
	}, names)

	// Stable across repeated calls.
	again, err := ByTheme(Vegetation)
	require.NoError(t, err)
	assert.Equal(t, veg, again)

	_, err = ByTheme(Theme("volcano"))
	assert.ErrorIs(t, err, ErrUnknownTheme)
}

func TestByThemeAll(t *testing.T) {
	all, err := ByTheme(ThemeAll)
	require.NoError(t, err)
	assert.Equal(t, All(), all)

	total := 0
	for _, theme := range Themes() {
		entries, err := ByTheme(theme)
		require.NoError(t, err)
		total += len(entries)
	}
	assert.Equal(t, len(all), total)
}

func TestParseTheme(t *testing.T) {
	theme, err := ParseTheme(" Water ")
	require.NoError(t, err)
	assert.Equal(t, Water, theme)

	theme, err = ParseTheme("all")
	require.NoError(t, err)
	assert.Equal(t, ThemeAll, theme)

	_, err = ParseTheme("lava")
	assert.ErrorIs(t, err, ErrUnknownTheme)
}
