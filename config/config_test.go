package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, validateConfig(cfg))
	require.False(t, cfg.Compression.Gzip)
	require.Equal(t, -1, cfg.Compression.Level)
	require.Equal(t, 2048, cfg.Compression.BufferSize)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := `
log_level: debug
compression:
  gzip: true
  level: 9
  buffer_size: 4096
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.True(t, cfg.Compression.Gzip)
	require.Equal(t, 9, cfg.Compression.Level)
	require.Equal(t, 4096, cfg.Compression.BufferSize)
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, os.WriteFile(path, []byte("compression:\n  level: 40\n  buffer_size: 10\n"), 0o644))
	_, err := LoadConfig(path)
	require.ErrorContains(t, err, "level")

	require.NoError(t, os.WriteFile(path, []byte("compression:\n  level: 1\n  buffer_size: 0\n"), 0o644))
	_, err = LoadConfig(path)
	require.ErrorContains(t, err, "buffer_size")

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
