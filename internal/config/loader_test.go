package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/schmitthub/sevlog/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Defaults(t *testing.T) {
	cfg, err := NewLoader(t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, logger.DebugLevel, cfg.Threshold())
}

func TestLoader_File(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
backend: zerolog
prefix: Net
level: warning
logging:
  file_enabled: true
  max_size_mb: 5
`)

	loader := NewLoader(dir)
	assert.True(t, loader.Exists())

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, BackendZerolog, cfg.Backend)
	assert.Equal(t, "Net", cfg.Prefix)
	assert.Equal(t, logger.WarningLevel, cfg.Threshold())
	assert.True(t, cfg.Logging.FileEnabled)
	assert.Equal(t, 5, cfg.Logging.MaxSizeMB)
	assert.Equal(t, 7, cfg.Logging.MaxAgeDays)
}

func TestLoader_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "backend: zerolog\nprefix: File\n")
	t.Setenv("SEVLOG_PREFIX", "Env")
	t.Setenv("SEVLOG_LOGGING_MAX_BACKUPS", "9")

	cfg, err := NewLoader(dir).Load()
	require.NoError(t, err)

	assert.Equal(t, BackendZerolog, cfg.Backend)
	assert.Equal(t, "Env", cfg.Prefix)
	assert.Equal(t, 9, cfg.Logging.MaxBackups)
}

func TestLoader_Invalid(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "backend: syslog\nlevel: loud\n")

	_, err := NewLoader(dir).Load()
	require.Error(t, err)

	var multi *MultiValidationError
	require.True(t, errors.As(err, &multi))
	assert.Len(t, multi.Errors, 2)
	assert.Contains(t, err.Error(), "found 2 configuration errors")
}

func TestFileLoader_Missing(t *testing.T) {
	_, err := NewFileLoader(filepath.Join(t.TempDir(), "nope.yaml")).Load()
	require.Error(t, err)
	assert.True(t, IsConfigNotFound(err))
	assert.True(t, IsConfigNotFound(fmt.Errorf("loading: %w", err)))
	assert.False(t, IsConfigNotFound(errors.New("other")))
}

func TestFileLoader_Present(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "level: error\n")

	cfg, err := NewFileLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, logger.ErrorLevel, cfg.Threshold())
}
