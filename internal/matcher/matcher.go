// Package matcher resolves the abstract spectral roles of an index to the
// caller's concrete bands by nearest-wavelength proximity.
package matcher

import (
	"errors"
	"fmt"
	"math"

	"github.com/forest-guardian/hyper-indices-cli/internal/catalog"
)

var ErrInvalidInput = errors.New("invalid band input")

// Band is one user-supplied raster band tagged with its center wavelength.
type Band struct {
	Name         string
	WavelengthNm float64
}

type Status int

const (
	Unmatched Status = iota
	PartiallyMatched
	FullyMatched
)

func (s Status) String() string {
	switch s {
	case FullyMatched:
		return "FULLY_MATCHED"
	case PartiallyMatched:
		return "PARTIALLY_MATCHED"
	}
	return "UNMATCHED"
}

// Result binds the roles of one index to band names. Missing keeps the
// unresolved roles in declaration order so callers can report them.
type Result struct {
	Index    string
	Bindings map[string]string
	Missing  []catalog.RoleSpec
	Status   Status
}

// ValidateBands rejects inputs the matcher cannot work with: an empty list
// or duplicate band names.
func ValidateBands(bands []Band) error {
	if len(bands) == 0 {
		return fmt.Errorf("%w: no bands supplied", ErrInvalidInput)
	}
	seen := make(map[string]bool, len(bands))
	for _, b := range bands {
		if b.Name == "" {
			return fmt.Errorf("%w: band with empty name", ErrInvalidInput)
		}
		if seen[b.Name] {
			return fmt.Errorf("%w: duplicate band name %s", ErrInvalidInput, b.Name)
		}
		seen[b.Name] = true
	}
	return nil
}

// Match resolves each role of the index, in declaration order, to the
// nearest unclaimed band within the role's tolerance. A band can fill at
// most one role per index. Ties on distance go to the earliest-listed band.
// Missing bands are not an error; they surface in the result.
func Match(idx catalog.SpectralIndex, bands []Band) (Result, error) {
	if err := ValidateBands(bands); err != nil {
		return Result{}, err
	}

	res := Result{
		Index:    idx.Name,
		Bindings: make(map[string]string, len(idx.Roles)),
	}
	claimed := make([]bool, len(bands))

	for _, r := range idx.Roles {
		best := -1
		bestDist := math.Inf(1)
		for i, b := range bands {
			if claimed[i] {
				continue
			}
			if d := math.Abs(b.WavelengthNm - r.CenterNm); d < bestDist {
				best, bestDist = i, d
			}
		}
		if best >= 0 && bestDist <= r.ToleranceNm {
			claimed[best] = true
			res.Bindings[r.ID] = bands[best].Name
		} else {
			res.Missing = append(res.Missing, r)
		}
	}

	switch len(res.Bindings) {
	case len(idx.Roles):
		res.Status = FullyMatched
	case 0:
		res.Status = Unmatched
	default:
		res.Status = PartiallyMatched
	}
	return res, nil
}
