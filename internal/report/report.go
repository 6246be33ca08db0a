// Package report is the read-only projection over the index catalog used
// for listings, per-index detail and CSV export.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/forest-guardian/hyper-indices-cli/internal/catalog"
	"github.com/gocarina/gocsv"
)

type IndexSummary struct {
	Name        string
	Description string
}

type ThemeListing struct {
	Theme   catalog.Theme
	Indices []IndexSummary
}

// Listing groups catalog entries by theme in display order. An empty filter
// (or "all") covers every theme.
func Listing(themeFilter string) ([]ThemeListing, error) {
	selected := catalog.Themes()
	if themeFilter != "" {
		t, err := catalog.ParseTheme(themeFilter)
		if err != nil {
			return nil, err
		}
		if t != catalog.ThemeAll {
			selected = []catalog.Theme{t}
		}
	}

	out := make([]ThemeListing, 0, len(selected))
	for _, t := range selected {
		entries, err := catalog.ByTheme(t)
		if err != nil {
			return nil, err
		}
		listing := ThemeListing{Theme: t}
		for _, idx := range entries {
			listing.Indices = append(listing.Indices, IndexSummary{
				Name:        idx.Name,
				Description: idx.Description,
			})
		}
		out = append(out, listing)
	}
	return out, nil
}

type Detail struct {
	Name        string
	Description string
	Theme       catalog.Theme
	Formula     string
	Reference   string
	Roles       []catalog.RoleSpec
}

// Describe returns the full record of one index.
func Describe(name string) (Detail, error) {
	idx, err := catalog.Lookup(name)
	if err != nil {
		return Detail{}, err
	}
	return Detail{
		Name:        idx.Name,
		Description: idx.Description,
		Theme:       idx.Theme,
		Formula:     idx.Formula,
		Reference:   idx.Reference,
		Roles:       append([]catalog.RoleSpec(nil), idx.Roles...),
	}, nil
}

type csvRow struct {
	Name        string `csv:"name"`
	Theme       string `csv:"theme"`
	Description string `csv:"description"`
	Roles       string `csv:"roles"`
	Formula     string `csv:"formula"`
	Reference   string `csv:"reference"`
}

// ExportCSV writes one row per catalog entry, grouped by theme.
func ExportCSV(w io.Writer, themeFilter string) error {
	listings, err := Listing(themeFilter)
	if err != nil {
		return err
	}
	var rows []csvRow
	for _, l := range listings {
		for _, summary := range l.Indices {
			idx, err := catalog.Lookup(summary.Name)
			if err != nil {
				return err
			}
			roles := make([]string, 0, len(idx.Roles))
			for _, r := range idx.Roles {
				roles = append(roles, fmt.Sprintf("%s@%gnm±%g", r.ID, r.CenterNm, r.ToleranceNm))
			}
			rows = append(rows, csvRow{
				Name:        idx.Name,
				Theme:       string(idx.Theme),
				Description: idx.Description,
				Roles:       strings.Join(roles, "; "),
				Formula:     idx.Formula,
				Reference:   idx.Reference,
			})
		}
	}
	return gocsv.Marshal(&rows, w)
}
