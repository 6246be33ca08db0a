package ui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/forest-guardian/hyper-indices-cli/internal/catalog"
	"github.com/forest-guardian/hyper-indices-cli/internal/properties"
	"github.com/forest-guardian/hyper-indices-cli/internal/report"
)

// ExportCatalog writes the catalog listing to a CSV file under data/result.
func ExportCatalog() {
	theme := prompt("Enter a theme to filter by (empty for all)")

	dir := filepath.Join(properties.RootPath(), "data", "result")
	if err := os.MkdirAll(dir, 0755); err != nil {
		PrintError(err.Error())
		return
	}
	name := "indices.csv"
	if theme != "" {
		name = fmt.Sprintf("indices_%s.csv", theme)
	}
	path := filepath.Join(dir, name)

	file, err := os.Create(path)
	if err != nil {
		PrintError(err.Error())
		return
	}
	defer file.Close()

	if err := report.ExportCSV(file, theme); err != nil {
		PrintError(err.Error())
		return
	}
	PrintSuccess("Catalog exported to " + path)
}

func isTheme(s string) bool {
	_, err := catalog.ParseTheme(s)
	return err == nil
}
