package factory

import (
	"os"
	"sync"

	"github.com/schmitthub/sevlog/internal/cmdutil"
	"github.com/schmitthub/sevlog/internal/config"
	"github.com/schmitthub/sevlog/internal/iostreams"
	"github.com/schmitthub/sevlog/pkg/logger"
)

// New creates a fully-wired Factory with lazy-initialized dependency closures.
// Called exactly once at the CLI entry point (internal/sevlog/cmd.go).
// Tests should NOT import this package; construct &cmdutil.Factory{} directly.
func New(version, commit string) *cmdutil.Factory {
	ios := iostreams.NewIOStreams()

	// Respect NO_COLOR environment variable
	if !ios.IsOutputTTY() || os.Getenv("NO_COLOR") != "" {
		ios.SetColorEnabled(false)
	}

	f := &cmdutil.Factory{
		Version:   version,
		Commit:    commit,
		IOStreams: ios,
	}

	// Config is read once, after flag parsing has set WorkDir and ConfigFile.
	var (
		configOnce sync.Once
		configData *config.Config
		configErr  error
	)
	f.Config = func() (*config.Config, error) {
		configOnce.Do(func() {
			loader := config.NewLoader(f.WorkDir)
			if f.ConfigFile != "" {
				loader = config.NewFileLoader(f.ConfigFile)
			}
			configData, configErr = loader.Load()
		})
		return configData, configErr
	}

	f.NewLogger = func(cfg *config.Config) (logger.Logger, error) {
		return cmdutil.BuildLogger(cfg, ios.Out)
	}

	return f
}
