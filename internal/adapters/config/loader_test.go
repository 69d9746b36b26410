package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/config"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "forge.yaml"))
	require.NoError(t, err)
	require.Equal(t, "cache", cfg.CacheDir)
	require.Equal(t, 500, cfg.MaxMemoryMB)
	require.Equal(t, 30*time.Second, cfg.Timeout())
	require.Equal(t, ".converted.xml", cfg.DerivedSuffix)
	require.Equal(t, ".data.fcb", cfg.SourceSuffix)
	require.True(t, cfg.Enabled())
}

func TestLoad_SparseFileBackfillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: \"1\"\nconverter: /opt/tools/fcbconverter\nworkers: 4\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "/opt/tools/fcbconverter", cfg.Converter)
	require.Equal(t, 4, cfg.Workers)
	require.Equal(t, "cache", cfg.CacheDir)
	require.Equal(t, 10, cfg.RecentLimit)
}

func TestLoad_DisabledCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache_enabled: false\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.False(t, cfg.Enabled())
}

func TestLoad_MalformedFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache_dir: [unclosed"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
}
