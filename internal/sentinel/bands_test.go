package sentinel

import (
	"testing"

	"github.com/forest-guardian/hyper-indices-cli/internal/matcher"
	"github.com/stretchr/testify/assert"
)

func TestSelectBands(t *testing.T) {
	bands := SelectBands([]float64{660, 850})
	assert.Equal(t, []matcher.Band{
		{Name: "B04", WavelengthNm: 665},
		{Name: "B08", WavelengthNm: 842},
	}, bands)
}

func TestSelectBandsDeduplicates(t *testing.T) {
	bands := SelectBands([]float64{660, 665, 670})
	assert.Equal(t, []matcher.Band{{Name: "B04", WavelengthNm: 665}}, bands)
}

func TestSelectBandsEmpty(t *testing.T) {
	assert.Empty(t, SelectBands(nil))
}
