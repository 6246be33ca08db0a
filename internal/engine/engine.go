// Package engine is the raster algebra collaborator: it binds band
// identifiers to the bands of a GeoTIFF, evaluates computed expressions per
// pixel and persists the results. The expression layer above never touches
// pixel data; this package never decides which bands an index needs.
package engine

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/airbusgeo/godal"
	"github.com/forest-guardian/hyper-indices-cli/internal/catalog"
	"github.com/forest-guardian/hyper-indices-cli/internal/expression"
	"github.com/forest-guardian/hyper-indices-cli/internal/formula"
	"github.com/forest-guardian/hyper-indices-cli/internal/palette"
	"github.com/schollz/progressbar/v3"
)

// Options binds the caller's band names, in order, to the raster bands of
// the input image.
type Options struct {
	ImagePath string
	BandNames []string
	OutputDir string
	Prefix    string
	Preview   bool
}

type Output struct {
	Index       string
	RasterPath  string
	PreviewPath string
}

// Evaluate computes every expression over the input image and writes one
// Float32 GeoTIFF per index, carrying over the source geotransform and
// projection. With Preview set it also renders a palette PNG per index and
// a GeoJSON footprint of the processed extent.
func Evaluate(opts Options, exprs []expression.ComputedExpression) ([]Output, error) {
	if len(exprs) == 0 {
		return nil, nil
	}
	ds, err := godal.Open(opts.ImagePath, godal.ErrLogger(func(ec godal.ErrorCategory, code int, msg string) error {
		if ec == godal.CE_Warning {
			return nil
		}
		return fmt.Errorf("gdal: %s", msg)
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", opts.ImagePath, err)
	}
	defer ds.Close()

	structure := ds.Structure()
	width, height := structure.SizeX, structure.SizeY
	rasterBands := ds.Bands()
	if len(rasterBands) < len(opts.BandNames) {
		return nil, fmt.Errorf("image has %d bands but %d band names were supplied",
			len(rasterBands), len(opts.BandNames))
	}

	bandData := make(map[string][]float64, len(opts.BandNames))
	for i, name := range opts.BandNames {
		data := make([]float64, width*height)
		if err := rasterBands[i].Read(0, 0, data, width, height); err != nil {
			return nil, fmt.Errorf("failed to read band %s: %w", name, err)
		}
		bandData[name] = data
	}

	gt, err := ds.GeoTransform()
	if err != nil {
		return nil, fmt.Errorf("failed to read geotransform: %w", err)
	}
	sr := ds.SpatialRef()
	if sr != nil {
		defer sr.Close()
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, err
	}

	bar := progressbar.Default(int64(len(exprs)), "Evaluating rasters")
	outputs := make([]Output, 0, len(exprs))
	for _, ce := range exprs {
		out, err := evaluateOne(ce, bandData, width, height, gt, sr, opts)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, out)
		bar.Add(1)
	}

	if opts.Preview {
		if err := writeFootprint(opts, gt, width, height, outputs); err != nil {
			return outputs, err
		}
	}
	return outputs, nil
}

func evaluateOne(ce expression.ComputedExpression, bandData map[string][]float64,
	width, height int, gt [6]float64, sr *godal.SpatialRef, opts Options) (Output, error) {

	expr, err := formula.Parse(ce.Expression)
	if err != nil {
		return Output{}, fmt.Errorf("index %s: %w", ce.IndexName, err)
	}
	for _, v := range formula.Vars(expr) {
		if _, ok := bandData[v]; !ok {
			return Output{}, fmt.Errorf("index %s references unknown band %s", ce.IndexName, v)
		}
	}

	values := make([]float64, width*height)
	vals := make(map[string]float64, len(bandData))
	for i := range values {
		for name, data := range bandData {
			vals[name] = data[i]
		}
		values[i] = formula.Eval(expr, vals)
	}

	outPath := filepath.Join(opts.OutputDir, fmt.Sprintf("%s_%s.tif", opts.Prefix, ce.IndexName))
	if err := writeRaster(outPath, values, width, height, gt, sr); err != nil {
		return Output{}, fmt.Errorf("index %s: %w", ce.IndexName, err)
	}

	out := Output{Index: ce.IndexName, RasterPath: outPath}
	if opts.Preview {
		previewPath := filepath.Join(opts.OutputDir, fmt.Sprintf("%s_%s.png", opts.Prefix, ce.IndexName))
		if err := writePreview(previewPath, ce, values, width, height, opts); err != nil {
			return Output{}, fmt.Errorf("index %s preview: %w", ce.IndexName, err)
		}
		out.PreviewPath = previewPath
	}
	return out, nil
}

func writeRaster(path string, values []float64, width, height int, gt [6]float64, sr *godal.SpatialRef) error {
	data := make([]float32, len(values))
	for i, v := range values {
		data[i] = float32(v)
	}

	ds, err := godal.Create(godal.GTiff, path, 1, godal.Float32, width, height)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := ds.SetGeoTransform(gt); err != nil {
		ds.Close()
		return err
	}
	if sr != nil {
		if err := ds.SetSpatialRef(sr); err != nil {
			ds.Close()
			return err
		}
	}
	if err := ds.Bands()[0].Write(0, 0, data, width, height); err != nil {
		ds.Close()
		return err
	}
	return ds.Close()
}

// stretchRange picks the display range for a preview: the index's known
// output range when the catalog defines one, otherwise the finite min/max
// of the computed values (cached per image+index).
func stretchRange(ce expression.ComputedExpression, values []float64, opts Options) (float64, float64) {
	if !ce.Normalized {
		if idx, err := catalog.Lookup(ce.IndexName); err == nil && idx.Range != nil {
			return idx.Range.Min, idx.Range.Max
		}
	} else {
		return 0, 1
	}
	return cachedStats(ce.IndexName, values, opts)
}

func writePreview(path string, ce expression.ComputedExpression, values []float64, width, height int, opts Options) error {
	theme := catalog.Theme("")
	if idx, err := catalog.Lookup(ce.IndexName); err == nil {
		theme = idx.Theme
	}
	ramp := palette.ForTheme(theme)

	min, max := stretchRange(ce, values, opts)
	span := max - min
	if span <= 0 {
		span = 1
	}
	return renderPNG(path, values, width, height, ramp, min, span)
}
