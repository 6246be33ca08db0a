// Package delivery orchestrates a batch computation request: it resolves
// which indices to compute, matches bands, builds expressions and collects
// the skip report.
package delivery

import (
	"fmt"
	"strings"

	"github.com/forest-guardian/hyper-indices-cli/internal/catalog"
	"github.com/forest-guardian/hyper-indices-cli/internal/expression"
	"github.com/forest-guardian/hyper-indices-cli/internal/matcher"
	"github.com/forest-guardian/hyper-indices-cli/internal/properties"
	"github.com/gammazero/workerpool"
	"github.com/schollz/progressbar/v3"
)

// Request selects indices either by explicit names, by theme, or with the
// literal name "all". Theme takes precedence when both are set.
type Request struct {
	Indices   []string
	Theme     string
	Normalize bool
	Progress  bool
}

type Skip struct {
	Index  string
	Reason string
}

// Result carries every successfully built expression plus the itemized
// skip list. Warnings preserve request order.
type Result struct {
	Expressions []expression.ComputedExpression
	Skipped     []Skip
	Warnings    []string
}

// Compute runs one batch. Lookup and input errors abort immediately;
// partial matches never do, they surface as warnings while the rest of the
// batch proceeds. Indices are independent, so matching and building fan
// out over a worker pool.
func Compute(req Request, bands []matcher.Band) (Result, error) {
	if err := matcher.ValidateBands(bands); err != nil {
		return Result{}, err
	}
	defs, err := resolve(req)
	if err != nil {
		return Result{}, err
	}

	type outcome struct {
		expr *expression.ComputedExpression
		skip *Skip
	}
	outcomes := make([]outcome, len(defs))

	var bar *progressbar.ProgressBar
	if req.Progress {
		bar = progressbar.Default(int64(len(defs)), "Building expressions")
	}

	wp := workerpool.New(properties.Workers())
	for i, def := range defs {
		i, def := i, def
		wp.Submit(func() {
			if bar != nil {
				defer bar.Add(1)
			}
			m, err := matcher.Match(def, bands)
			if err != nil {
				outcomes[i].skip = &Skip{Index: def.Name, Reason: err.Error()}
				return
			}
			if m.Status != matcher.FullyMatched {
				outcomes[i].skip = &Skip{Index: def.Name, Reason: "missing role(s) " + missingRoles(m)}
				return
			}
			ce, err := expression.Build(def, m)
			if err != nil {
				outcomes[i].skip = &Skip{Index: def.Name, Reason: err.Error()}
				return
			}
			if req.Normalize {
				ce = expression.Normalize(ce, def)
			}
			outcomes[i].expr = &ce
		})
	}
	wp.StopWait()

	var res Result
	for _, o := range outcomes {
		switch {
		case o.expr != nil:
			res.Expressions = append(res.Expressions, *o.expr)
			res.Warnings = append(res.Warnings, o.expr.Warnings...)
		case o.skip != nil:
			res.Skipped = append(res.Skipped, *o.skip)
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("index %s skipped: %s", o.skip.Index, o.skip.Reason))
		}
	}
	return res, nil
}

// resolve expands the request into concrete definitions, in request order
// for explicit names and in catalog order otherwise. Unknown names and
// themes abort before any matching.
func resolve(req Request) ([]catalog.SpectralIndex, error) {
	if req.Theme != "" {
		t, err := catalog.ParseTheme(req.Theme)
		if err != nil {
			return nil, err
		}
		return catalog.ByTheme(t)
	}
	if len(req.Indices) == 1 && strings.EqualFold(strings.TrimSpace(req.Indices[0]), "all") {
		return catalog.All(), nil
	}
	if len(req.Indices) == 0 {
		return nil, fmt.Errorf("%w: no indices requested", catalog.ErrUnknownIndex)
	}
	defs := make([]catalog.SpectralIndex, 0, len(req.Indices))
	for _, name := range req.Indices {
		idx, err := catalog.Lookup(name)
		if err != nil {
			return nil, err
		}
		defs = append(defs, idx)
	}
	return defs, nil
}

func missingRoles(m matcher.Result) string {
	parts := make([]string, 0, len(m.Missing))
	for _, r := range m.Missing {
		parts = append(parts, fmt.Sprintf("%s (%gnm)", r.ID, r.CenterNm))
	}
	return strings.Join(parts, ", ")
}
