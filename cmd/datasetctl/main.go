package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Sul4v/capstone/internal/dataset"
	"github.com/Sul4v/capstone/internal/evaluate"
	"github.com/Sul4v/capstone/internal/metrics"
	"github.com/Sul4v/capstone/internal/output"
	"github.com/Sul4v/capstone/internal/store"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "datasetctl: %v\n", err)
		os.Exit(2)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return usageError()
	}

	switch args[0] {
	case "merge":
		return runMerge(args[1:])
	case "extract":
		return runExtract(args[1:])
	case "summary":
		return runSummary(args[1:])
	case "compare":
		return runCompare(args[1:])
	case "history":
		return runHistory(args[1:])
	default:
		return usageError()
	}
}

func runMerge(args []string) error {
	fs := flag.NewFlagSet("merge", flag.ContinueOnError)
	outPath := fs.String("out", "", "path to write the merged csv")
	key := fs.String("key", "base_question_id", "join column present in every input")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *outPath == "" {
		return errors.New("merge requires -out")
	}
	files := fs.Args()
	if len(files) < 2 {
		return errors.New("merge requires at least two input files")
	}

	tables := make([]*dataset.Table, 0, len(files))
	for _, path := range files {
		tbl, err := dataset.Read(path)
		if err != nil {
			return err
		}
		tables = append(tables, tbl)
	}

	merged, err := dataset.Merge(tables, *key)
	if err != nil {
		return err
	}
	if err := dataset.Write(*outPath, merged); err != nil {
		return err
	}

	fmt.Printf("merged: %s (%d rows, %d columns)\n", *outPath, merged.Len(), len(merged.Header))
	return nil
}

func runExtract(args []string) error {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	inPath := fs.String("in", "", "path to the source csv")
	outPath := fs.String("out", "", "path to write the extracted column")
	column := fs.String("column", "generated_prompt", "column to extract")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" {
		return errors.New("extract requires -in and -out")
	}

	tbl, err := dataset.Read(*inPath)
	if err != nil {
		return err
	}
	extracted, err := dataset.ExtractColumn(tbl, *column)
	if err != nil {
		return err
	}
	if err := dataset.Write(*outPath, extracted); err != nil {
		return err
	}

	fmt.Printf("extracted: %s (%d rows)\n", *outPath, extracted.Len())
	return nil
}

// runSummary recomputes nothing: it reads a scored csv and reports the
// means of whatever score columns it already carries.
func runSummary(args []string) error {
	fs := flag.NewFlagSet("summary", flag.ContinueOnError)
	inPath := fs.String("in", "", "path to a scored csv")
	format := fs.String("format", "text", "output format: text, json")
	modelsRaw := fs.String("models", "", "comma-separated models (defaults to every *_response column)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" {
		return errors.New("summary requires -in")
	}

	tbl, err := dataset.Read(*inPath)
	if err != nil {
		return err
	}

	models := splitList(*modelsRaw)
	if len(models) == 0 {
		models = responseModels(tbl.Header)
	}
	if len(models) == 0 {
		return fmt.Errorf("%s has no *_response columns; pass -models", *inPath)
	}

	var columns []string
	for _, model := range models {
		for _, suffix := range metrics.Columns() {
			col := model + "_" + suffix
			if _, ok := tbl.Column(col); ok {
				columns = append(columns, col)
			}
		}
	}

	formatter, err := output.New(*format)
	if err != nil {
		return err
	}

	report := &evaluate.Report{
		Dataset:     *inPath,
		Rows:        tbl.Len(),
		SkippedRows: tbl.Skipped,
		Models:      models,
		Columns:     columns,
		Means:       dataset.Means(tbl, columns),
	}
	return formatter.Format(os.Stdout, report)
}

// driftReport captures how a candidate scoring run moved against a
// baseline: per-column mean deltas plus the row-count change.
type driftReport struct {
	Baseline  string             `json:"baseline"`
	Candidate string             `json:"candidate"`
	RowsDelta int                `json:"rows_delta"`
	Deltas    map[string]float64 `json:"deltas"`
}

// runCompare diffs the column means of two scored csvs, for checking
// how a prompt or model change shifted the scores.
func runCompare(args []string) error {
	fs := flag.NewFlagSet("compare", flag.ContinueOnError)
	basePath := fs.String("baseline", "", "path to the baseline scored csv")
	candPath := fs.String("candidate", "", "path to the candidate scored csv")
	format := fs.String("format", "text", "output format: text, json")
	modelsRaw := fs.String("models", "", "comma-separated models (defaults to the baseline's *_response columns)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *basePath == "" || *candPath == "" {
		return errors.New("compare requires -baseline and -candidate")
	}

	base, err := dataset.Read(*basePath)
	if err != nil {
		return err
	}
	cand, err := dataset.Read(*candPath)
	if err != nil {
		return err
	}

	models := splitList(*modelsRaw)
	if len(models) == 0 {
		models = responseModels(base.Header)
	}
	if len(models) == 0 {
		return fmt.Errorf("%s has no *_response columns; pass -models", *basePath)
	}

	var columns []string
	for _, model := range models {
		for _, suffix := range metrics.Columns() {
			col := model + "_" + suffix
			_, inBase := base.Column(col)
			_, inCand := cand.Column(col)
			if inBase && inCand {
				columns = append(columns, col)
			}
		}
	}
	if len(columns) == 0 {
		return errors.New("the inputs share no score columns")
	}

	baseMeans := dataset.Means(base, columns)
	candMeans := dataset.Means(cand, columns)
	report := driftReport{
		Baseline:  *basePath,
		Candidate: *candPath,
		RowsDelta: cand.Len() - base.Len(),
		Deltas:    make(map[string]float64, len(columns)),
	}
	for _, col := range columns {
		report.Deltas[col] = candMeans[col] - baseMeans[col]
	}

	switch *format {
	case "", "text":
		fmt.Printf("%s -> %s: %+d rows\n", report.Baseline, report.Candidate, report.RowsDelta)
		width := 0
		for _, col := range columns {
			if len(col) > width {
				width = len(col)
			}
		}
		for _, col := range columns {
			fmt.Printf("%-*s  %+.3f\n", width, col, report.Deltas[col])
		}
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	default:
		return fmt.Errorf("unknown output format %q (supported: text, json)", *format)
	}
	return nil
}

func runHistory(args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	dbPath := fs.String("db", "", "path to the run history sqlite file")
	limit := fs.Int("limit", 20, "most recent runs to show (0 = all)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *dbPath == "" {
		return errors.New("history requires -db")
	}

	st, err := store.Open(*dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.ListRuns(context.Background(), *limit)
	if err != nil {
		return err
	}

	for _, r := range runs {
		fmt.Printf("%s  %s  %d rows  [%s]  %s -> %s\n",
			r.CreatedAt.Format(time.RFC3339), r.ID, r.Rows,
			strings.Join(r.Models, ","), r.Dataset, r.Output)
	}
	return nil
}

// responseModels lists the models that have a *_response column, in
// header order.
func responseModels(header []string) []string {
	var models []string
	for _, col := range header {
		if name, ok := strings.CutSuffix(col, "_response"); ok && name != "" {
			models = append(models, name)
		}
	}
	return models
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func usageError() error {
	return errors.New("usage: datasetctl <merge|extract|summary|compare|history> [flags]")
}
