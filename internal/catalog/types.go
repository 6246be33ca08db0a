package catalog

import "errors"

var (
	ErrUnknownIndex = errors.New("unknown index")
	ErrUnknownTheme = errors.New("unknown theme")
)

type Theme string

const (
	Vegetation  Theme = "vegetation"
	Pigments    Theme = "pigments"
	Metabolism  Theme = "metabolism"
	Biochemical Theme = "biochemical"
	Water       Theme = "water"
	Soil        Theme = "soil"
	Urban       Theme = "urban"
	Stress      Theme = "stress"
	Materials   Theme = "materials"

	// ThemeAll is the pseudo-theme selecting every index once.
	ThemeAll Theme = "all"
)

// DefaultToleranceNm is the matching tolerance for roles the literature
// defines as a point wavelength rather than a range.
const DefaultToleranceNm = 50.0

// RoleSpec is one abstract spectral requirement of an index: a semantic
// label plus the wavelength window a concrete band must fall into.
type RoleSpec struct {
	ID          string
	CenterNm    float64
	ToleranceNm float64
}

// Range is the theoretical output range of an index, used for optional
// normalization to [0,1].
type Range struct {
	Min, Max float64
}

// SpectralIndex is one immutable catalog entry. Formula is a template over
// role placeholders written as {ROLE}; it is parsed and guarded by the
// expression layer, never evaluated here.
type SpectralIndex struct {
	Name        string
	Description string
	Theme       Theme
	Roles       []RoleSpec
	Formula     string
	Range       *Range
	Reference   string
}
