package evaluate

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gobwas/glob"
	"golang.org/x/sync/errgroup"

	"github.com/Sul4v/capstone/internal/config"
	"github.com/Sul4v/capstone/internal/dataset"
	"github.com/Sul4v/capstone/internal/log"
	"github.com/Sul4v/capstone/internal/metrics"
	"github.com/Sul4v/capstone/internal/store"
)

// responseSuffix marks the columns holding a model's raw answers.
const responseSuffix = "_response"

// Runner drives the scoring pipeline: it reads a dataset, resolves which
// models and metrics apply to it, computes scores row by row, appends the
// score columns, and writes the result. Resources are read-only during a
// run, so rows can be scored concurrently.
type Runner struct {
	Config    *config.Config
	Resources *metrics.Resources
	Log       *log.Logger
	History   *store.Store
}

// scoredModel is one model's slice of the output schema.
type scoredModel struct {
	name    string
	respIdx int   // index of the response column, -1 when missing
	cols    []int // score column per registry metric, registry order
}

// Run scores the dataset at inputPath and writes the scored copy to
// outputPath. Every resolved model gets a full set of score columns even
// when its response column is missing or a metric is disabled; such cells
// keep their initialized zero. The only fatal failures are an unreadable
// input and an unwritable output.
func (r *Runner) Run(ctx context.Context, inputPath, outputPath string) (*Report, error) {
	start := time.Now()

	tbl, err := dataset.Read(inputPath)
	if err != nil {
		return nil, err
	}

	models, metricCfgs := config.Effective(r.Config, inputPath)
	resolved, warnings := resolveModels(models, tbl.Header)

	params, err := buildParams(metricCfgs)
	if err != nil {
		return nil, err
	}
	env := &metrics.Env{Resources: r.Resources, Params: params}

	all := metrics.All()
	compute := make([]bool, len(all))
	for i, def := range all {
		mc, ok := metricCfgs[def.Name]
		compute[i] = !ok || mc.Enabled
	}

	zero := formatScore(0)
	plan := make([]scoredModel, 0, len(resolved))
	for _, name := range resolved {
		sm := scoredModel{name: name, respIdx: -1, cols: make([]int, len(all))}
		if idx, ok := tbl.Column(name + responseSuffix); ok {
			sm.respIdx = idx
		} else {
			warnings = append(warnings,
				fmt.Sprintf("no %q column; %s scores left at zero", name+responseSuffix, name))
		}
		for i, def := range all {
			sm.cols[i] = tbl.AddColumn(name+"_"+def.Column, zero)
		}
		plan = append(plan, sm)
	}

	normalize := true
	if r.Config.Normalize != nil {
		normalize = *r.Config.Normalize
	}

	scoreRow := func(row int) {
		for _, sm := range plan {
			if sm.respIdx < 0 {
				continue
			}
			doc := metrics.NewDocument(tbl.Get(row, sm.respIdx), normalize)
			for i, def := range all {
				if !compute[i] {
					continue
				}
				tbl.Set(row, sm.cols[i], formatScore(def.Compute(doc, env)))
			}
		}
	}

	total := tbl.Len()
	if r.Config.Workers > 1 && total > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(r.Config.Workers)
		var done atomic.Int64
		for row := 0; row < total; row++ {
			if gctx.Err() != nil {
				break
			}
			row := row
			g.Go(func() error {
				scoreRow(row)
				r.Log.Progress(int(done.Add(1))-1, total)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	} else {
		for row := 0; row < total; row++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			r.Log.Progress(row, total)
			scoreRow(row)
		}
	}

	if err := dataset.Write(outputPath, tbl); err != nil {
		return nil, err
	}

	columns := make([]string, 0, len(plan)*len(all))
	for _, sm := range plan {
		for _, def := range all {
			columns = append(columns, sm.name+"_"+def.Column)
		}
	}

	report := &Report{
		Dataset:     inputPath,
		Output:      outputPath,
		Rows:        total,
		SkippedRows: tbl.Skipped,
		Models:      resolved,
		Columns:     columns,
		Means:       dataset.Means(tbl, columns),
		Warnings:    warnings,
		Duration:    time.Since(start),
	}
	r.recordHistory(ctx, report)
	return report, nil
}

// recordHistory writes the run to the history store when one is attached.
// Failures degrade to a report warning; they never abort a finished run.
func (r *Runner) recordHistory(ctx context.Context, rep *Report) {
	if r.History == nil {
		return
	}
	run := store.Run{
		Dataset:  rep.Dataset,
		Output:   rep.Output,
		Rows:     rep.Rows,
		Models:   rep.Models,
		Duration: rep.Duration,
	}
	id, err := r.History.RecordRun(ctx, run, rep.Means)
	if err != nil {
		rep.Warnings = append(rep.Warnings, fmt.Sprintf("recording run history: %v", err))
		return
	}
	r.Log.Debugf("run %s recorded", id)
}

// resolveModels expands the configured model list against the dataset
// header. Entries containing glob metacharacters are matched against the
// names of *_response columns, in header order; literal entries pass
// through unchanged so a missing column can be reported later.
func resolveModels(patterns, header []string) (models, warnings []string) {
	var available []string
	for _, col := range header {
		if name, ok := strings.CutSuffix(col, responseSuffix); ok && name != "" {
			available = append(available, name)
		}
	}

	seen := make(map[string]bool)
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			models = append(models, name)
		}
	}

	for _, p := range patterns {
		if !strings.ContainsAny(p, "*?[{") {
			add(p)
			continue
		}
		g, err := glob.Compile(p)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("invalid model pattern %q", p))
			continue
		}
		matched := false
		for _, name := range available {
			if g.Match(name) {
				add(name)
				matched = true
			}
		}
		if !matched {
			warnings = append(warnings, fmt.Sprintf("model pattern %q matched no response columns", p))
		}
	}

	return models, warnings
}

// buildParams resolves metric settings into computation parameters.
// Config validation normally rejects bad values before this runs; direct
// callers still get a real error.
func buildParams(cfgs map[string]config.MetricCfg) (metrics.Params, error) {
	var p metrics.Params
	mc, ok := cfgs["causal-depth"]
	if !ok {
		return p, nil
	}
	raw, ok := mc.Settings["mode"]
	if !ok {
		return p, nil
	}
	s, ok := raw.(string)
	if !ok {
		return p, fmt.Errorf("causal-depth: mode must be a string, got %T", raw)
	}
	mode, err := metrics.ParseCausalMode(s)
	if err != nil {
		return p, fmt.Errorf("causal-depth: %w", err)
	}
	p.CausalMode = mode
	return p, nil
}

// formatScore renders a metric value the shortest way that round-trips.
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
