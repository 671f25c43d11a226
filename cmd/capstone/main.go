package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/Sul4v/capstone/internal/config"
	"github.com/Sul4v/capstone/internal/discovery"
	"github.com/Sul4v/capstone/internal/evaluate"
	"github.com/Sul4v/capstone/internal/log"
	"github.com/Sul4v/capstone/internal/metrics"
	"github.com/Sul4v/capstone/internal/output"
	"github.com/Sul4v/capstone/internal/store"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

const usageText = `Usage: capstone <command> [flags] [datasets...]

Commands:
  score     Score model responses in CSV datasets
  metrics   List metrics or show one metric's reference page
  init      Generate a default .capstone.yml config file
  version   Print version and exit

Global flags:
  -h, --help      Show this help

Run 'capstone <command> --help' for more information on a command.
`

func run(args []string) int {
	// Handle no arguments: print usage, exit 0.
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	// Handle global flags before subcommand dispatch.
	first := args[0]

	switch first {
	case "--help", "-h", "help":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	// Dispatch to subcommand.
	switch first {
	case "score":
		return runScore(args[1:])
	case "metrics":
		return runMetrics(args[1:])
	case "init":
		return runInit(args[1:])
	case "version":
		printVersion()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "capstone: unknown command %q\n\n%s", first, usageText)
		return 2
	}
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("capstone %s\n", version)
}

// runScore implements the "score" subcommand: score datasets.
func runScore(args []string) int {
	fs := flag.NewFlagSet("score", flag.ContinueOnError)
	var (
		configPath  string
		outputPath  string
		suffix      string
		format      string
		models      []string
		workers     int
		historyPath string
		noNormalize bool
		verbose     bool
		quiet       bool
	)

	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&outputPath, "output", "o", "", "Output CSV path (single dataset only)")
	fs.StringVar(&suffix, "suffix", "_with_scores", "Output filename suffix for multi-dataset runs")
	fs.StringVarP(&format, "format", "f", "text", "Report format: text, json")
	fs.StringSliceVar(&models, "models", nil, "Model names or glob patterns (overrides config)")
	fs.IntVar(&workers, "workers", 0, "Rows scored concurrently (overrides config)")
	fs.StringVar(&historyPath, "history", "", "SQLite file recording run history (overrides config)")
	fs.BoolVar(&noNormalize, "no-normalize", false, "Score raw text without Markdown stripping")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Log run detail")
	fs.BoolVarP(&quiet, "quiet", "q", false, "Suppress reports and warnings")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: capstone score [flags] <datasets...>\n\n"+
			"Score {model}_response columns and append {model}_{metric} columns.\n\n"+
			"Datasets can be CSV paths or glob patterns (** crosses directories).\n"+
			"Each dataset is written as a scored copy; the original is untouched.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "capstone: score requires at least one dataset\n")
		return 2
	}

	datasets, err := discovery.Expand(fs.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "capstone: %v\n", err)
		return 2
	}

	if outputPath != "" && len(datasets) > 1 {
		fmt.Fprintf(os.Stderr, "capstone: --output needs a single dataset, got %d\n", len(datasets))
		return 2
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "capstone: %v\n", err)
		return 2
	}

	// Command-line flags override whatever the config file says.
	if len(models) > 0 {
		cfg.Models = models
	}
	if workers > 0 {
		cfg.Workers = workers
	}
	if noNormalize {
		normalize := false
		cfg.Normalize = &normalize
	}
	if historyPath != "" {
		cfg.History = historyPath
	}

	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "capstone: %v\n", err)
		return 2
	}

	formatter, err := output.New(format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "capstone: %v\n", err)
		return 2
	}

	logg := log.New(os.Stderr, verbose)
	if quiet {
		logg = log.Discard()
	}

	resources, warnings := evaluate.BuildResources(cfg.Resources)
	for _, w := range warnings {
		logg.Warnf("%s", w)
	}

	var history *store.Store
	if cfg.History != "" {
		history, err = store.Open(cfg.History)
		if err != nil {
			logg.Warnf("run history disabled: %v", err)
		} else {
			defer history.Close()
		}
	}

	runner := &evaluate.Runner{
		Config:    cfg,
		Resources: resources,
		Log:       logg,
		History:   history,
	}

	ctx := context.Background()
	failed := 0
	for _, ds := range datasets {
		out := outputPath
		if out == "" {
			out = scoredPath(ds, suffix, len(datasets) == 1)
		}

		report, err := runner.Run(ctx, ds, out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "capstone: %v\n", err)
			failed++
			continue
		}

		if quiet {
			continue
		}
		if err := formatter.Format(os.Stdout, report); err != nil {
			fmt.Fprintf(os.Stderr, "capstone: error writing report: %v\n", err)
			return 2
		}
	}

	if failed > 0 {
		return 1
	}
	return 0
}

// scoredPath picks the output path for a dataset without an explicit
// --output. Single-dataset runs write output_with_scores.csv next to the
// input; batches get per-file suffixed copies.
func scoredPath(input, suffix string, single bool) string {
	if single {
		return filepath.Join(filepath.Dir(input), "output_with_scores.csv")
	}
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + suffix + ext
}

const metricsUsageText = `Usage: capstone metrics [id|name]

Without arguments, lists every metric. With an ID (MT004) or a name
(causal-depth), prints that metric's reference page.
`

// runMetrics implements the "metrics" subcommand.
func runMetrics(args []string) int {
	if len(args) == 0 {
		return listMetrics()
	}

	switch args[0] {
	case "--help", "-h":
		fmt.Fprint(os.Stderr, metricsUsageText)
		return 0
	}

	return showMetric(args[0])
}

func listMetrics() int {
	for _, def := range metrics.All() {
		fmt.Printf("%-6s %-24s %s\n", def.ID, def.Name, def.Description)
	}
	return 0
}

func showMetric(query string) int {
	content, err := metrics.LookupDoc(query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "capstone: %v\n", err)
		return 2
	}
	fmt.Print(content)
	return 0
}

// runInit implements the "init" subcommand: generate .capstone.yml.
func runInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: capstone init\n\n"+
			"Generate a default .capstone.yml config file in the current directory.\n")
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "capstone: init takes no arguments\n")
		return 2
	}

	const configFile = ".capstone.yml"

	// Check if config file already exists.
	if _, err := os.Stat(configFile); err == nil {
		fmt.Fprintf(os.Stderr, "capstone: %s already exists\n", configFile)
		return 2
	}

	cfg := config.DumpDefaults()

	// Set normalize: true as default.
	normalize := true
	cfg.Normalize = &normalize

	data, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "capstone: marshalling config: %v\n", err)
		return 2
	}

	if err := os.WriteFile(configFile, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "capstone: writing %s: %v\n", configFile, err)
		return 2
	}

	fmt.Fprintf(os.Stderr, "capstone: created %s\n", configFile)
	return 0
}

// loadConfig loads configuration by either using the specified path or
// discovering a config file from the current directory.
func loadConfig(configPath string) (*config.Config, error) {
	defaults := config.Defaults()

	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		return config.Merge(defaults, loaded), nil
	}

	// Try to discover a config file.
	cwd, err := os.Getwd()
	if err != nil {
		return config.Merge(defaults, nil), nil
	}

	discovered, err := config.Discover(cwd)
	if err != nil {
		return config.Merge(defaults, nil), nil
	}

	if discovered == "" {
		return config.Merge(defaults, nil), nil
	}

	loaded, err := config.Load(discovered)
	if err != nil {
		return nil, err
	}

	return config.Merge(defaults, loaded), nil
}
