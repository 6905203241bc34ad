package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader reads sevlog configuration from a work dir and the environment.
type Loader struct {
	file     string
	explicit bool
	viper    *viper.Viper
}

// NewLoader creates a loader that looks for sevlog.yaml in workDir.
// A missing file there is not an error; defaults and environment apply.
func NewLoader(workDir string) *Loader {
	return &Loader{
		file:  filepath.Join(workDir, ConfigFileName),
		viper: viper.New(),
	}
}

// NewFileLoader creates a loader for an explicit file that must exist.
func NewFileLoader(path string) *Loader {
	return &Loader{
		file:     path,
		explicit: true,
		viper:    viper.New(),
	}
}

// Load reads the configuration, applies SEVLOG_* overrides and validates it.
func (l *Loader) Load() (*Config, error) {
	defaults := DefaultConfig()
	l.viper.SetDefault("backend", defaults.Backend)
	l.viper.SetDefault("prefix", defaults.Prefix)
	l.viper.SetDefault("level", defaults.Level)
	l.viper.SetDefault("logging.file_enabled", defaults.Logging.FileEnabled)
	l.viper.SetDefault("logging.dir", defaults.Logging.Dir)
	l.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	l.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	l.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)

	l.viper.SetEnvPrefix(EnvPrefix)
	l.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.viper.AutomaticEnv()

	if l.Exists() {
		l.viper.SetConfigFile(l.file)
		l.viper.SetConfigType("yaml")
		if err := l.viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if l.explicit {
		return nil, &ConfigNotFoundError{Path: l.file}
	}

	var cfg Config
	if err := l.viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Exists checks if the configuration file exists
func (l *Loader) Exists() bool {
	_, err := os.Stat(l.file)
	return err == nil
}

// ConfigNotFoundError is returned when an explicit config file doesn't exist
type ConfigNotFoundError struct {
	Path string
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("configuration file not found: %s", e.Path)
}

// IsConfigNotFound returns true if err is or wraps a ConfigNotFoundError
func IsConfigNotFound(err error) bool {
	var notFound *ConfigNotFoundError
	return errors.As(err, &notFound)
}
