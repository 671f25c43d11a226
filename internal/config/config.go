package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration.
type Config struct {
	Models    []string             `yaml:"models"`
	Workers   int                  `yaml:"workers"`
	Normalize *bool                `yaml:"normalize"`
	Resources ResourcePaths        `yaml:"resources"`
	History   string               `yaml:"history"`
	Metrics   map[string]MetricCfg `yaml:"metrics"`
	Overrides []Override           `yaml:"overrides"`
}

// ResourcePaths names the optional word-list files backing some of the
// metrics. An empty path leaves the corresponding metric running in its
// degraded form.
type ResourcePaths struct {
	ConcretenessLexicon string `yaml:"concreteness-lexicon"`
	CommonWords         string `yaml:"common-words"`
	Stopwords           string `yaml:"stopwords"`
}

// Override applies model and metric settings to datasets matching glob patterns.
type Override struct {
	Datasets []string             `yaml:"datasets"`
	Models   []string             `yaml:"models"`
	Metrics  map[string]MetricCfg `yaml:"metrics"`
}

// MetricCfg is a YAML union: can be bool (enable/disable) or map[string]any (settings).
type MetricCfg struct {
	Enabled  bool
	Settings map[string]any
}

// UnmarshalYAML implements custom YAML unmarshalling for MetricCfg.
// It handles three forms:
//   - false -> Enabled=false, Settings=nil
//   - true  -> Enabled=true,  Settings=nil
//   - {key: val, ...} -> Enabled=true, Settings={key: val, ...}
func (m *MetricCfg) UnmarshalYAML(value *yaml.Node) error {
	// Try bool first
	if value.Kind == yaml.ScalarNode {
		var b bool
		if err := value.Decode(&b); err == nil {
			m.Enabled = b
			m.Settings = nil
			return nil
		}
	}

	// Try map
	if value.Kind == yaml.MappingNode {
		var s map[string]any
		if err := value.Decode(&s); err != nil {
			return fmt.Errorf("invalid metric config: %w", err)
		}
		m.Enabled = true
		m.Settings = s
		return nil
	}

	return fmt.Errorf("metric config must be a bool or a mapping, got %v", value.Kind)
}

// MarshalYAML renders the union back out in its source form: a bare bool
// when there are no settings, otherwise the settings mapping. A mapping
// implies enabled, so settings on a disabled metric do not round-trip.
func (m MetricCfg) MarshalYAML() (any, error) {
	if len(m.Settings) == 0 {
		return m.Enabled, nil
	}
	return m.Settings, nil
}
