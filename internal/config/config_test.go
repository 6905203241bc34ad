package config

import (
	"path/filepath"
	"testing"

	"github.com/schmitthub/sevlog/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "nop backend", mutate: func(c *Config) { c.Backend = BackendNop }},
		{name: "upper-case level", mutate: func(c *Config) { c.Level = "CRITICAL" }},
		{
			name:    "unknown backend",
			mutate:  func(c *Config) { c.Backend = "syslog" },
			wantErr: "invalid backend",
		},
		{
			name:    "unknown level",
			mutate:  func(c *Config) { c.Level = "trace" },
			wantErr: "invalid level",
		},
		{
			name:    "negative size",
			mutate:  func(c *Config) { c.Logging.MaxSizeMB = -1 },
			wantErr: "invalid logging.max_size_mb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestThreshold_InvalidFallsBackToDebug(t *testing.T) {
	cfg := &Config{Level: "nonsense"}
	assert.Equal(t, logger.DebugLevel, cfg.Threshold())
}

func TestHome(t *testing.T) {
	t.Setenv(HomeEnv, "/tmp/sevlog-home")
	home, err := Home()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/sevlog-home", home)
}

func TestLogsDir(t *testing.T) {
	t.Setenv(HomeEnv, "/tmp/sevlog-home")

	cfg := DefaultConfig()
	dir, err := cfg.LogsDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/sevlog-home", LogsSubdir), dir)

	cfg.Logging.Dir = "/var/log/sevlog"
	dir, err = cfg.LogsDir()
	require.NoError(t, err)
	assert.Equal(t, "/var/log/sevlog", dir)
}
