// Package config provides configuration loading and management for rxnkg.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cwru-sdle/rxnkg/graph"
)

// Config represents the complete rxnkg configuration
type Config struct {
	Ontology OntologyConfig `yaml:"ontology"`
	Datasets DatasetsConfig `yaml:"datasets"`
	Output   OutputConfig   `yaml:"output"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// OntologyConfig configures the ontology source
type OntologyConfig struct {
	// Path is the OWL ontology file to resolve classes against
	Path string `yaml:"path"`
}

// DatasetsConfig configures dataset discovery
type DatasetsConfig struct {
	// Root is the directory searched recursively for dataset files
	Root string `yaml:"root"`
}

// OutputConfig configures where documents and logs are written
type OutputConfig struct {
	// Dir receives one serialized document per reaction
	Dir string `yaml:"dir"`
	// ErrorLogDir receives per-dataset logs and the run index
	ErrorLogDir string `yaml:"error_log_dir"`
	// Format is the serialization format: turtle, ntriples, or jsonld
	Format string `yaml:"format"`
}

// MetricsConfig configures the Prometheus exposition endpoint
type MetricsConfig struct {
	// Enabled turns the metrics endpoint on
	Enabled bool `yaml:"enabled"`
	// ListenAddr is the address the /metrics handler binds to
	ListenAddr string `yaml:"listen_addr"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Ontology: OntologyConfig{
			Path: "ontology/mds.owl",
		},
		Datasets: DatasetsConfig{
			Root: "data",
		},
		Output: OutputConfig{
			Dir:         "output",
			ErrorLogDir: "error_logs",
			Format:      string(graph.FormatTurtle),
		},
		Metrics: MetricsConfig{
			Enabled:    false,
			ListenAddr: ":9090",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Ontology.Path == "" {
		return fmt.Errorf("ontology.path is required")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}
	if c.Output.ErrorLogDir == "" {
		return fmt.Errorf("output.error_log_dir is required")
	}
	if _, err := graph.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if c.Metrics.Enabled && c.Metrics.ListenAddr == "" {
		return fmt.Errorf("metrics.listen_addr is required when metrics are enabled")
	}
	return nil
}

// Format returns the parsed serialization format. Call Validate first.
func (c *Config) Format() graph.Format {
	f, err := graph.ParseFormat(c.Output.Format)
	if err != nil {
		return graph.FormatTurtle
	}
	return f
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Ontology
	if other.Ontology.Path != "" {
		c.Ontology.Path = other.Ontology.Path
	}

	// Datasets
	if other.Datasets.Root != "" {
		c.Datasets.Root = other.Datasets.Root
	}

	// Output
	if other.Output.Dir != "" {
		c.Output.Dir = other.Output.Dir
	}
	if other.Output.ErrorLogDir != "" {
		c.Output.ErrorLogDir = other.Output.ErrorLogDir
	}
	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}

	// Metrics
	if other.Metrics.Enabled {
		c.Metrics.Enabled = true
	}
	if other.Metrics.ListenAddr != "" {
		c.Metrics.ListenAddr = other.Metrics.ListenAddr
	}
}
