package config

import (
	"path/filepath"

	"github.com/gobwas/glob"
)

// Merge merges a loaded config on top of defaults. The loaded config's
// metrics override the defaults; any metric not mentioned in loaded keeps
// its default value. Scalar fields are taken from loaded only when set.
// Overrides come from the loaded config only.
func Merge(defaults, loaded *Config) *Config {
	merged := &Config{
		Models:    append([]string(nil), defaults.Models...),
		Workers:   defaults.Workers,
		Normalize: defaults.Normalize,
		Resources: defaults.Resources,
		History:   defaults.History,
		Metrics:   copyMetricCfgs(defaults.Metrics),
	}
	if loaded == nil {
		// No user config: return a copy of defaults.
		return merged
	}

	if len(loaded.Models) > 0 {
		merged.Models = append([]string(nil), loaded.Models...)
	}
	if loaded.Workers != 0 {
		merged.Workers = loaded.Workers
	}
	if loaded.Normalize != nil {
		merged.Normalize = loaded.Normalize
	}
	if loaded.Resources.ConcretenessLexicon != "" {
		merged.Resources.ConcretenessLexicon = loaded.Resources.ConcretenessLexicon
	}
	if loaded.Resources.CommonWords != "" {
		merged.Resources.CommonWords = loaded.Resources.CommonWords
	}
	if loaded.Resources.Stopwords != "" {
		merged.Resources.Stopwords = loaded.Resources.Stopwords
	}
	if loaded.History != "" {
		merged.History = loaded.History
	}

	// Apply loaded metrics on top.
	for k, v := range loaded.Metrics {
		merged.Metrics[k] = v
	}
	merged.Overrides = loaded.Overrides

	return merged
}

func copyMetricCfgs(cfgs map[string]MetricCfg) map[string]MetricCfg {
	out := make(map[string]MetricCfg, len(cfgs))
	for k, v := range cfgs {
		out[k] = v
	}
	return out
}

// Effective returns the model list and metric configuration to use for a
// given dataset path. It starts with the top-level values and then applies
// each override whose dataset patterns match, in order. Later overrides
// take precedence. An override replaces the model list only when it names
// models of its own.
func Effective(cfg *Config, datasetPath string) ([]string, map[string]MetricCfg) {
	models := append([]string(nil), cfg.Models...)
	metricCfgs := copyMetricCfgs(cfg.Metrics)

	for _, o := range cfg.Overrides {
		if !matchesAny(o.Datasets, datasetPath) {
			continue
		}
		if len(o.Models) > 0 {
			models = append([]string(nil), o.Models...)
		}
		for k, v := range o.Metrics {
			metricCfgs[k] = v
		}
	}

	return models, metricCfgs
}

// matchesAny returns true if path matches any of the given glob patterns.
// Paths are normalized to forward slashes before matching.
func matchesAny(patterns []string, path string) bool {
	p := filepath.ToSlash(path)
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			// Skip invalid patterns silently.
			continue
		}
		if g.Match(p) {
			return true
		}
	}
	return false
}
