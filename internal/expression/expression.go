// Package expression turns a fully matched index into the arithmetic text
// handed to the raster algebra engine.
package expression

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/forest-guardian/hyper-indices-cli/internal/catalog"
	"github.com/forest-guardian/hyper-indices-cli/internal/formula"
	"github.com/forest-guardian/hyper-indices-cli/internal/matcher"
)

var ErrNotFullyMatched = errors.New("index not fully matched")

// ComputedExpression is the per-index output contract: pure text over band
// identifiers, operators and literals. It is never evaluated at this layer.
type ComputedExpression struct {
	IndexName  string
	Expression string
	Normalized bool
	Warnings   []string
}

// Build substitutes the matched band names into the index formula and
// injects the safe-division guard into every band-dependent denominator.
// The guard lives here, not in catalog entries, so no formula author can
// forget it.
func Build(idx catalog.SpectralIndex, m matcher.Result) (ComputedExpression, error) {
	if m.Status != matcher.FullyMatched {
		return ComputedExpression{}, fmt.Errorf("%w: %s", ErrNotFullyMatched, idx.Name)
	}
	expr, err := formula.Parse(idx.Formula)
	if err != nil {
		return ComputedExpression{}, fmt.Errorf("index %s: %w", idx.Name, err)
	}
	return ComputedExpression{
		IndexName:  idx.Name,
		Expression: formula.Render(expr, m.Bindings, true),
	}, nil
}

// Normalize rescales the expression from the index's theoretical range to
// [0,1]. Indices without a known range pass through unchanged with a
// warning; clamping is left to the evaluation engine.
func Normalize(ce ComputedExpression, idx catalog.SpectralIndex) ComputedExpression {
	out := ce
	out.Warnings = append([]string(nil), ce.Warnings...)
	if idx.Range == nil {
		out.Warnings = append(out.Warnings,
			fmt.Sprintf("index %s has no defined range; normalization skipped", idx.Name))
		return out
	}
	span := idx.Range.Max - idx.Range.Min
	out.Expression = fmt.Sprintf("((%s) - %s) / %s",
		ce.Expression, literal(idx.Range.Min), literal(span))
	out.Normalized = true
	return out
}

func literal(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if v < 0 {
		return "(" + s + ")"
	}
	return s
}
