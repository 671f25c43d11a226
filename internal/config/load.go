package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Sul4v/capstone/internal/metrics"
	"gopkg.in/yaml.v3"
)

const configFileName = ".capstone.yml"

// DefaultModels are the response columns scored when neither the config
// file nor the command line names any.
var DefaultModels = []string{"claude", "gemini", "openai"}

// Load reads and parses a config file at the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

// Discover walks up the directory tree from startDir looking for a
// .capstone.yml config file. It stops searching when it encounters a .git
// directory (the repository root) or reaches the filesystem root.
// Returns the path to the config file, or "" if none was found.
func Discover(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		// A .git directory marks the repo root; do not search
		// further up.
		gitDir := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", nil
		}
		dir = parent
	}
}

// Defaults returns a Config with every registered metric enabled with
// default settings, the standard model list, and a single worker.
func Defaults() *Config {
	all := metrics.All()
	m := make(map[string]MetricCfg, len(all))
	for _, def := range all {
		m[def.Name] = MetricCfg{Enabled: true}
	}
	return &Config{
		Models:  append([]string(nil), DefaultModels...),
		Workers: 1,
		Metrics: m,
	}
}

// DumpDefaults returns a Config with every registered metric enabled and
// default settings spelled out for the metrics that take any.
// This is consumed by `capstone init` to generate a starter config file.
func DumpDefaults() *Config {
	cfg := Defaults()
	cfg.Metrics["causal-depth"] = MetricCfg{
		Enabled:  true,
		Settings: map[string]any{"mode": "strict"},
	}
	return cfg
}

// Validate checks that cfg only names registered metrics and that metric
// settings carry supported values. It is run once after Merge, so both
// the top-level metrics and the overrides are checked.
func Validate(cfg *Config) error {
	if cfg.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", cfg.Workers)
	}
	for _, model := range cfg.Models {
		if strings.TrimSpace(model) == "" {
			return fmt.Errorf("models must not contain blank entries")
		}
	}
	if err := validateMetricCfgs(cfg.Metrics); err != nil {
		return err
	}
	for i, o := range cfg.Overrides {
		if len(o.Datasets) == 0 {
			return fmt.Errorf("override %d: no dataset patterns", i+1)
		}
		if err := validateMetricCfgs(o.Metrics); err != nil {
			return fmt.Errorf("override %d: %w", i+1, err)
		}
	}
	return nil
}

func validateMetricCfgs(cfgs map[string]MetricCfg) error {
	for name, mc := range cfgs {
		if _, ok := metrics.Lookup(name); !ok {
			return fmt.Errorf("unknown metric %q", name)
		}
		raw, ok := mc.Settings["mode"]
		if !ok {
			continue
		}
		mode, ok := raw.(string)
		if !ok {
			return fmt.Errorf("metric %q: mode must be a string, got %T", name, raw)
		}
		if _, err := metrics.ParseCausalMode(mode); err != nil {
			return fmt.Errorf("metric %q: %w", name, err)
		}
	}
	return nil
}
