// Package cmdutil provides shared plumbing for sevlog commands.
package cmdutil

import (
	"github.com/schmitthub/sevlog/internal/config"
	"github.com/schmitthub/sevlog/internal/iostreams"
	"github.com/schmitthub/sevlog/pkg/logger"
)

// Factory provides shared dependencies for CLI commands.
// The struct defines what dependencies exist; internal/cmd/factory wires the
// real implementations. Tests construct &cmdutil.Factory{} directly.
type Factory struct {
	// Configuration from flags (set before command execution)
	WorkDir    string
	ConfigFile string
	Debug      bool

	// Version info (set at build time via ldflags)
	Version string
	Commit  string

	IOStreams *iostreams.IOStreams

	// Config lazily loads ConfigFile, or sevlog.yaml from WorkDir when unset.
	Config func() (*config.Config, error)

	// NewLogger builds the facade Logger described by cfg.
	NewLogger func(cfg *config.Config) (logger.Logger, error)
}
