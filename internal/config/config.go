// Package config loads sevlog.yaml and SEVLOG_* environment overrides.
package config

import (
	"os"
	"path/filepath"

	"github.com/schmitthub/sevlog/pkg/logger"
)

const (
	// ConfigFileName is the configuration file looked up in the work dir.
	ConfigFileName = "sevlog.yaml"
	// EnvPrefix prefixes environment overrides, e.g. SEVLOG_BACKEND.
	EnvPrefix = "SEVLOG"
	// HomeEnv overrides the sevlog home directory.
	HomeEnv = "SEVLOG_HOME"
	// DefaultHomeDir is the home directory name under the user's home.
	DefaultHomeDir = ".sevlog"
	// LogsSubdir holds the diagnostic log file.
	LogsSubdir = "logs"
)

// Backends accepted in Config.Backend.
const (
	BackendSimple  = "simple"
	BackendZerolog = "zerolog"
	BackendNop     = "nop"
)

// Config is the sevlog configuration.
type Config struct {
	// Backend selects the facade implementation "emit" writes through.
	Backend string `mapstructure:"backend"`
	// Prefix, when non-empty, wraps the backend in a PrefixedLogger.
	Prefix string `mapstructure:"prefix"`
	// Level is the least severe label that is still written.
	Level string `mapstructure:"level"`

	Logging LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig controls the CLI's own diagnostic log file.
type LoggingConfig struct {
	FileEnabled bool   `mapstructure:"file_enabled"`
	Dir         string `mapstructure:"dir"`
	MaxSizeMB   int    `mapstructure:"max_size_mb"`
	MaxAgeDays  int    `mapstructure:"max_age_days"`
	MaxBackups  int    `mapstructure:"max_backups"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Backend: BackendSimple,
		Level:   logger.DebugLevel.String(),
		Logging: LoggingConfig{
			MaxSizeMB:  10,
			MaxAgeDays: 7,
			MaxBackups: 3,
		},
	}
}

// Threshold returns the parsed Level. Call Validate first; an invalid label
// yields DebugLevel.
func (c *Config) Threshold() logger.Level {
	level, err := logger.ParseLevel(c.Level)
	if err != nil {
		return logger.DebugLevel
	}
	return level
}

// Home returns the sevlog home directory: $SEVLOG_HOME or ~/.sevlog.
func Home() (string, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultHomeDir), nil
}

// LogsDir returns the diagnostic logs directory, honouring Logging.Dir.
func (c *Config) LogsDir() (string, error) {
	if c.Logging.Dir != "" {
		return c.Logging.Dir, nil
	}
	home, err := Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, LogsSubdir), nil
}
