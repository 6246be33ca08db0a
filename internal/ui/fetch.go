package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/forest-guardian/hyper-indices-cli/internal/sentinel"
)

// FetchSentinelBands downloads the Sentinel-2 bands covering the requested
// wavelengths for an AOI, ready to be fed into the compute flow.
func FetchSentinelBands() {
	PrintWarning("\nWarning:")
	PrintWarning("- The AOI must be a '.geojson' file with at least one feature.")
	PrintWarning("- COPERNICUS_CLIENT_ID, COPERNICUS_CLIENT_SECRET and COPERNICUS_TOKEN_URL must be set.\n")

	aoiPath := prompt("Enter the AOI geojson path")
	if aoiPath == "" {
		PrintError("an AOI path is required")
		return
	}

	endDateInput := prompt("Enter the end date (YYYY-MM-DD)")
	endDate, err := time.Parse("2006-01-02", endDateInput)
	if err != nil {
		PrintError(fmt.Sprintf("invalid date format: %s. Please use YYYY-MM-DD.", endDateInput))
		return
	}

	daysInput := prompt("Enter number of days to look back")
	days, err := strconv.Atoi(daysInput)
	if err != nil || days <= 0 {
		PrintError(fmt.Sprintf("invalid number of days: %s. Please enter a positive integer.", daysInput))
		return
	}
	startDate := endDate.AddDate(0, 0, -days)

	wavelengths, err := promptFloats("Enter the wavelengths to cover (comma-separated, nm)")
	if err != nil {
		PrintError(err.Error())
		return
	}
	if len(wavelengths) == 0 {
		PrintError("at least one wavelength is required")
		return
	}

	if geometry, err := sentinel.GeometryFromGeoJSON(aoiPath); err == nil {
		if lat, lon, err := sentinel.Centroid(geometry); err == nil {
			fmt.Printf("AOI centered at %.5f, %.5f\n", lat, lon)
		}
		geometry.Close()
	}

	path, bands, err := sentinel.FetchBands(aoiPath, startDate, endDate, wavelengths)
	if err != nil {
		PrintError(err.Error())
		return
	}

	names := make([]string, 0, len(bands))
	centers := make([]string, 0, len(bands))
	for _, b := range bands {
		names = append(names, b.Name)
		centers = append(centers, fmt.Sprintf("%g", b.WavelengthNm))
	}
	PrintSuccess("Image saved to " + path)
	fmt.Printf("Band order: %s\n", strings.Join(names, ","))
	fmt.Printf("Wavelengths: %s\n", strings.Join(centers, ","))
}
