// Package config provides the configuration loader for forge.
package config

import (
	"os"
	"time"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up in the working
// directory.
const DefaultFilename = "forge.yaml"

// Config is the resolved application configuration.
type Config struct {
	Version        string `yaml:"version"`
	Converter      string `yaml:"converter"`
	CacheDir       string `yaml:"cache_dir"`
	MaxMemoryMB    int    `yaml:"max_memory_mb"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	Workers        int    `yaml:"workers"`
	RecentLimit    int    `yaml:"recent_limit"`
	DerivedSuffix  string `yaml:"derived_suffix"`
	SourceSuffix   string `yaml:"source_suffix"`
	CacheEnabled   *bool  `yaml:"cache_enabled"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	enabled := true
	return &Config{
		Converter:      "tools/fcbconverter",
		CacheDir:       "cache",
		MaxMemoryMB:    500,
		TimeoutSeconds: 30,
		RecentLimit:    10,
		DerivedSuffix:  ".converted.xml",
		SourceSuffix:   ".data.fcb",
		CacheEnabled:   &enabled,
	}
}

// Load reads the configuration from path. A missing file yields the
// defaults; a malformed file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is provided by user
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}
	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults backfills zero values left by a sparse config file.
func (c *Config) applyDefaults() {
	d := Default()
	if c.CacheDir == "" {
		c.CacheDir = d.CacheDir
	}
	if c.MaxMemoryMB <= 0 {
		c.MaxMemoryMB = d.MaxMemoryMB
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = d.TimeoutSeconds
	}
	if c.RecentLimit <= 0 {
		c.RecentLimit = d.RecentLimit
	}
	if c.DerivedSuffix == "" {
		c.DerivedSuffix = d.DerivedSuffix
	}
	if c.SourceSuffix == "" {
		c.SourceSuffix = d.SourceSuffix
	}
	if c.Converter == "" {
		c.Converter = d.Converter
	}
	if c.CacheEnabled == nil {
		c.CacheEnabled = d.CacheEnabled
	}
}

// MaxMemoryBytes returns the memory budget in bytes.
func (c *Config) MaxMemoryBytes() int64 {
	return int64(c.MaxMemoryMB) * 1024 * 1024
}

// Timeout returns the per-task conversion time bound.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Enabled reports whether caching is globally enabled.
func (c *Config) Enabled() bool {
	return c.CacheEnabled == nil || *c.CacheEnabled
}
