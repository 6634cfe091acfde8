package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output.Format != "turtle" {
		t.Errorf("expected default format turtle, got %s", cfg.Output.Format)
	}
	if cfg.Output.Dir != "output" {
		t.Errorf("expected default output dir output, got %s", cfg.Output.Dir)
	}
	if cfg.Output.ErrorLogDir != "error_logs" {
		t.Errorf("expected default error log dir error_logs, got %s", cfg.Output.ErrorLogDir)
	}
	if cfg.Metrics.Enabled {
		t.Error("expected metrics disabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing ontology path",
			modify:  func(c *Config) { c.Ontology.Path = "" },
			wantErr: true,
		},
		{
			name:    "missing output dir",
			modify:  func(c *Config) { c.Output.Dir = "" },
			wantErr: true,
		},
		{
			name:    "missing error log dir",
			modify:  func(c *Config) { c.Output.ErrorLogDir = "" },
			wantErr: true,
		},
		{
			name:    "unknown format",
			modify:  func(c *Config) { c.Output.Format = "rdfxml" },
			wantErr: true,
		},
		{
			name: "metrics enabled without listen addr",
			modify: func(c *Config) {
				c.Metrics.Enabled = true
				c.Metrics.ListenAddr = ""
			},
			wantErr: true,
		},
		{
			name:    "ntriples format",
			modify:  func(c *Config) { c.Output.Format = "ntriples" },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temp file with config
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
ontology:
  path: "/data/mds.owl"
datasets:
  root: "/data/ord"
output:
  dir: "/out/docs"
  error_log_dir: "/out/errors"
  format: "jsonld"
metrics:
  enabled: true
  listen_addr: ":9191"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Ontology.Path != "/data/mds.owl" {
		t.Errorf("expected ontology path /data/mds.owl, got %s", cfg.Ontology.Path)
	}
	if cfg.Datasets.Root != "/data/ord" {
		t.Errorf("expected dataset root /data/ord, got %s", cfg.Datasets.Root)
	}
	if cfg.Output.Dir != "/out/docs" {
		t.Errorf("expected output dir /out/docs, got %s", cfg.Output.Dir)
	}
	if cfg.Output.Format != "jsonld" {
		t.Errorf("expected format jsonld, got %s", cfg.Output.Format)
	}
	if !cfg.Metrics.Enabled {
		t.Error("expected metrics enabled")
	}
	if cfg.Metrics.ListenAddr != ":9191" {
		t.Errorf("expected listen addr :9191, got %s", cfg.Metrics.ListenAddr)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	// Layered loading treats a missing file as "no layer present", so the
	// wrapped error must still report not-exist through errors.Is.
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist in chain, got %v", err)
	}
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	override := &Config{
		Ontology: OntologyConfig{
			Path: "/override/mds.owl",
		},
		Output: OutputConfig{
			Format: "ntriples",
		},
	}

	base.Merge(override)

	if base.Ontology.Path != "/override/mds.owl" {
		t.Errorf("expected ontology path /override/mds.owl, got %s", base.Ontology.Path)
	}
	if base.Output.Format != "ntriples" {
		t.Errorf("expected format ntriples, got %s", base.Output.Format)
	}
	// Output dir should remain from base since override didn't set it
	if base.Output.Dir != "output" {
		t.Errorf("expected output dir to remain default, got %s", base.Output.Dir)
	}
}

func TestConfigSaveToFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.yaml")

	cfg := DefaultConfig()
	cfg.Ontology.Path = "/saved/mds.owl"

	if err := cfg.SaveToFile(configPath); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	// Verify file was created
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("config file was not created")
	}

	// Load and verify
	loaded, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if loaded.Ontology.Path != "/saved/mds.owl" {
		t.Errorf("expected ontology path /saved/mds.owl, got %s", loaded.Ontology.Path)
	}
}
