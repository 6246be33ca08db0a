package ui

import (
	"fmt"
	"strings"

	"github.com/forest-guardian/hyper-indices-cli/internal/report"
)

// ListIndices prints the catalog grouped by theme, optionally with
// formulas, required roles and references.
func ListIndices(detailed bool) {
	listings, err := report.Listing("")
	if err != nil {
		PrintError(err.Error())
		return
	}

	divider := strings.Repeat("=", 70)
	fmt.Println(divider)
	fmt.Println("AVAILABLE SPECTRAL INDICES")
	fmt.Println(divider)

	total := 0
	for _, listing := range listings {
		fmt.Printf("\n%s INDICES (%d):\n", strings.ToUpper(string(listing.Theme)), len(listing.Indices))
		fmt.Println(strings.Repeat("-", 70))
		for _, idx := range listing.Indices {
			total++
			if !detailed {
				fmt.Printf("  %-15s - %s\n", idx.Name, idx.Description)
				continue
			}
			detail, err := report.Describe(idx.Name)
			if err != nil {
				PrintError(err.Error())
				return
			}
			roles := make([]string, 0, len(detail.Roles))
			for _, r := range detail.Roles {
				roles = append(roles, fmt.Sprintf("%s@%gnm±%g", r.ID, r.CenterNm, r.ToleranceNm))
			}
			fmt.Printf("\n  %s: %s\n", detail.Name, detail.Description)
			fmt.Printf("    Required bands: %s\n", strings.Join(roles, ", "))
			fmt.Printf("    Formula: %s\n", detail.Formula)
			fmt.Printf("    Reference: %s\n", detail.Reference)
		}
	}

	fmt.Println("\n" + divider)
	fmt.Printf("Total indices available: %d\n", total)
	fmt.Println(divider)
}

// ShowIndexDetail prints everything known about a single index.
func ShowIndexDetail() {
	name := prompt("Enter the index name")
	detail, err := report.Describe(name)
	if err != nil {
		PrintError(err.Error())
		return
	}
	fmt.Printf("\n%s: %s (%s)\n", detail.Name, detail.Description, detail.Theme)
	fmt.Printf("  Formula: %s\n", detail.Formula)
	fmt.Printf("  Reference: %s\n", detail.Reference)
	fmt.Println("  Roles:")
	for _, r := range detail.Roles {
		fmt.Printf("    %-10s center %gnm, tolerance ±%gnm\n", r.ID, r.CenterNm, r.ToleranceNm)
	}
}
