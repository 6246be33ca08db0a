package sentinel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/airbusgeo/godal"
	"github.com/forest-guardian/hyper-indices-cli/internal/matcher"
	"github.com/forest-guardian/hyper-indices-cli/internal/properties"
	"golang.org/x/oauth2/clientcredentials"
)

const processURL = "https://sh.dataspace.copernicus.eu/api/v1/process"

func calculatePixels(distance float64, resolution float64) int {
	pixels := distance * (111_000.0 / resolution)
	if pixels < 1 {
		return 1
	}
	return int(pixels)
}

// evalscript returns the Sentinel Hub script selecting exactly the bands
// the caller needs, in the order they will appear in the downloaded image.
func evalscript(bands []matcher.Band) string {
	names := make([]string, 0, len(bands))
	samples := make([]string, 0, len(bands))
	for _, b := range bands {
		names = append(names, fmt.Sprintf("%q", b.Name))
		samples = append(samples, "sample."+b.Name)
	}
	return fmt.Sprintf(`
    //VERSION=3
    function setup() {
      return {
        input: [%s],
        output: {
          id: "default",
          bands: %d,
          sampleType: SampleType.FLOAT32,
        },
      }
    }

    function evaluatePixel(sample) {
      return [%s];
    }
  `, strings.Join(names, ", "), len(bands), strings.Join(samples, ", "))
}

// FetchBands downloads a Float32 GeoTIFF of the selected Sentinel-2 bands
// over the AOI for the given time range and stores it under the data
// directory. The returned band list matches the raster band order.
func FetchBands(aoiPath string, startDate, endDate time.Time, wavelengths []float64) (string, []matcher.Band, error) {
	bands := SelectBands(wavelengths)
	if len(bands) == 0 {
		return "", nil, fmt.Errorf("no Sentinel-2 bands cover the requested wavelengths")
	}

	geometry, err := GeometryFromGeoJSON(aoiPath)
	if err != nil {
		return "", nil, err
	}
	defer geometry.Close()

	content, err := requestImage(startDate, endDate, geometry, bands)
	if err != nil {
		return "", nil, err
	}

	dir := filepath.Join(properties.RootPath(), "data", "images")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", nil, err
	}
	name := fmt.Sprintf("%s_%s.tiff",
		strings.TrimSuffix(filepath.Base(aoiPath), filepath.Ext(aoiPath)),
		endDate.Format("2006-01-02"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", nil, err
	}
	return path, bands, nil
}

func requestImage(startDate, endDate time.Time, geometry *godal.Geometry, bands []matcher.Band) ([]byte, error) {
	bbox, err := geometry.Bounds()
	if err != nil {
		return nil, fmt.Errorf("failed to get geometry bounds: %v", err)
	}

	widthPixels := calculatePixels(bbox[2]-bbox[0], 10)
	heightPixels := calculatePixels(bbox[3]-bbox[1], 10)
	// Clamp to the API's allowed range (1-2500)
	if widthPixels > 2500 {
		widthPixels = 2500
	}
	if heightPixels > 2500 {
		heightPixels = 2500
	}

	geometryGeojson, err := geometry.GeoJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to export geometry to GeoJSON: %w", err)
	}
	var geojsonMap map[string]interface{}
	if err := json.Unmarshal([]byte(geometryGeojson), &geojsonMap); err != nil {
		return nil, fmt.Errorf("failed to parse GeoJSON: %w", err)
	}

	requestPayload := map[string]interface{}{
		"input": map[string]interface{}{
			"bounds": map[string]interface{}{
				"geometry": geojsonMap,
			},
			"data": []map[string]interface{}{
				{
					"dataFilter": map[string]interface{}{
						"timeRange": map[string]string{
							"from": startDate.Format(time.RFC3339),
							"to":   endDate.Format(time.RFC3339),
						},
					},
					"type": "sentinel-2-l2a",
				},
			},
		},
		"output": map[string]interface{}{
			"width":  widthPixels,
			"height": heightPixels,
			"responses": []map[string]interface{}{
				{
					"identifier": "default",
					"format": map[string]string{
						"type": "image/tiff",
					},
				},
			},
		},
		"evalscript": evalscript(bands),
		"mosaicking": "mostRecent",
	}

	requestBody, err := json.Marshal(requestPayload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request payload: %v", err)
	}

	clientID := properties.CopernicusClientID()
	clientSecret := properties.CopernicusClientSecret()
	tokenURL := properties.CopernicusTokenURL()
	if clientID == "" || clientSecret == "" || tokenURL == "" {
		return nil, fmt.Errorf("missing required environment variables: COPERNICUS_CLIENT_ID, COPERNICUS_CLIENT_SECRET, or COPERNICUS_TOKEN_URL")
	}

	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
	}
	httpClient := config.Client(context.Background())

	retries := 10
	for attempt := 1; attempt <= retries; attempt++ {
		response, err := httpClient.Post(processURL, "application/json", bytes.NewBuffer(requestBody))
		if err != nil {
			fmt.Printf("Attempt %d failed: %v\n", attempt, err)
			time.Sleep(5 * time.Second)
			continue
		}
		body, readErr := io.ReadAll(response.Body)
		response.Body.Close()
		if readErr != nil {
			return nil, fmt.Errorf("failed to read response body: %v", readErr)
		}
		if response.StatusCode == http.StatusOK {
			return body, nil
		}
		if response.StatusCode == http.StatusForbidden {
			return nil, fmt.Errorf("unauthorized access, check your client ID and secret")
		}
		fmt.Printf("Attempt %d failed: %s\n", attempt, string(body))
		time.Sleep(5 * time.Second)
	}
	return nil, fmt.Errorf("failed to request image after %d attempts", retries)
}
