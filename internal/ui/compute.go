package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/forest-guardian/hyper-indices-cli/internal/delivery"
	"github.com/forest-guardian/hyper-indices-cli/internal/engine"
	"github.com/forest-guardian/hyper-indices-cli/internal/matcher"
	"github.com/forest-guardian/hyper-indices-cli/internal/notification"
	"github.com/forest-guardian/hyper-indices-cli/internal/properties"
)

// ComputeIndices handles the UI for computing indices from a raster image
func ComputeIndices() {
	PrintWarning("\nWarning:")
	PrintWarning("- The input image must be a GeoTIFF whose bands match the wavelength list, in order.")
	PrintWarning("- Wavelengths are given in nanometers, e.g. 490,560,665,842.\n")

	imagePath := prompt("Enter the image path")
	if imagePath == "" {
		PrintError("an image path is required")
		return
	}

	wavelengths, err := promptFloats("Enter the band wavelengths (comma-separated, nm)")
	if err != nil {
		PrintError(err.Error())
		return
	}

	names := promptList("Enter band names (comma-separated, empty for b1,b2,...)")
	if len(names) == 0 {
		for i := range wavelengths {
			names = append(names, fmt.Sprintf("b%d", i+1))
		}
	}
	if len(names) != len(wavelengths) {
		PrintError(fmt.Sprintf("number of band names (%d) must match number of wavelengths (%d)",
			len(names), len(wavelengths)))
		return
	}
	bands := make([]matcher.Band, len(names))
	for i := range names {
		bands[i] = matcher.Band{Name: names[i], WavelengthNm: wavelengths[i]}
	}

	req := delivery.Request{Progress: true}
	selection := prompt("Enter indices (comma-separated), a theme name, or 'all'")
	if selection == "" {
		selection = "NDVI"
	}
	if isTheme(selection) {
		req.Theme = selection
	} else {
		req.Indices = strings.Split(selection, ",")
	}
	req.Normalize = promptYesNo("Normalize indices to [0,1] where applicable?")

	prefix := prompt("Enter the output prefix")
	if prefix == "" {
		prefix = "indices"
	}

	result, err := delivery.Compute(req, bands)
	if err != nil {
		PrintError(err.Error())
		notification.SendDiscordErrorNotification(err.Error())
		return
	}
	for _, w := range result.Warnings {
		PrintWarning(w)
	}
	if len(result.Expressions) == 0 {
		PrintError("no indices could be computed with the supplied bands")
		return
	}

	outputs, err := engine.Evaluate(engine.Options{
		ImagePath: imagePath,
		BandNames: names,
		OutputDir: filepath.Join(properties.RootPath(), "data", "result"),
		Prefix:    prefix,
		Preview:   true,
	}, result.Expressions)
	if err != nil {
		PrintError(err.Error())
		notification.SendDiscordErrorNotification(err.Error())
		return
	}

	for _, out := range outputs {
		PrintSuccess(fmt.Sprintf("  -> Created %s (%s)", out.RasterPath, out.Index))
	}
	summary := fmt.Sprintf("%d indices calculated, %d skipped", len(outputs), len(result.Skipped))
	PrintSuccess("SUMMARY: " + summary)
	notification.SendDiscordSuccessNotification(summary)
}
