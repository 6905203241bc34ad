package cmdutil

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/schmitthub/sevlog/internal/config"
	"github.com/schmitthub/sevlog/pkg/logger"
)

// BuildLogger assembles the facade described by cfg, writing to out.
// The backend is wrapped in a LevelFilter when the threshold is below debug,
// and the result in a PrefixedLogger when a prefix is set.
func BuildLogger(cfg *config.Config, out io.Writer) (logger.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var l logger.Logger
	switch cfg.Backend {
	case config.BackendSimple:
		l = logger.NewSimpleWriter(out)
	case config.BackendZerolog:
		l = logger.NewZerolog(zerolog.New(out).With().Timestamp().Logger())
	case config.BackendNop:
		l = logger.NewNop()
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}

	if threshold := cfg.Threshold(); threshold != logger.DebugLevel {
		l = logger.NewLevelFilter(l, threshold)
	}
	if cfg.Prefix != "" {
		l = logger.NewPrefixed(l, cfg.Prefix)
	}
	return l, nil
}
