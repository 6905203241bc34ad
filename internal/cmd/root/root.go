package root

import (
	"os"

	"github.com/schmitthub/sevlog/internal/cmd/emit"
	"github.com/schmitthub/sevlog/internal/cmd/levels"
	versioncmd "github.com/schmitthub/sevlog/internal/cmd/version"
	"github.com/schmitthub/sevlog/internal/cmdutil"
	"github.com/schmitthub/sevlog/internal/logger"
	"github.com/spf13/cobra"
)

// NewCmdRoot creates the root command for the sevlog CLI.
func NewCmdRoot(f *cmdutil.Factory, version, buildDate string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sevlog",
		Short: "Write leveled log lines from the command line",
		Long: `Sevlog writes messages at one of eight severities:
emergency, alert, critical, error, warning, notice, info, debug.

Quick start:
  sevlog emit --level error "disk full"      # [ERROR] disk full
  sevlog emit --prefix Net -l warning timeout # [WARNING] [Net] timeout
  sevlog levels                               # list severities

Configuration is read from sevlog.yaml in the working directory, or the
file named by --config, and SEVLOG_* environment variables.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if f.WorkDir == "" {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				f.WorkDir = wd
			}

			ios := f.IOStreams
			logger.SetConsole(ios.ErrOut, ios.IsStderrTTY() && os.Getenv("NO_COLOR") == "")
			initializeLogger(f)
			logger.SetCommand(cmd.Name())

			logger.Debug().
				Str("version", f.Version).
				Str("workdir", f.WorkDir).
				Bool("debug", f.Debug).
				Msg("sevlog starting")

			return nil
		},
		Version: f.Version,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&f.Debug, "debug", "D", false, "Enable debug logging")
	cmd.PersistentFlags().StringVarP(&f.WorkDir, "workdir", "w", "", "Working directory (default: current directory)")
	cmd.PersistentFlags().StringVarP(&f.ConfigFile, "config", "c", "", "Config file (default: sevlog.yaml in the working directory)")

	// Version template
	cmd.SetVersionTemplate(versioncmd.Format(version, buildDate))

	cmd.AddCommand(emit.NewCmdEmit(f, nil))
	cmd.AddCommand(levels.NewCmdLevels(f, nil))
	cmd.AddCommand(versioncmd.NewCmdVersion(f, version, buildDate))

	return cmd
}

// initializeLogger sets up diagnostics with file logging if configured.
// Falls back to console-only logging on any errors.
func initializeLogger(f *cmdutil.Factory) {
	cfg, err := f.Config()
	if err != nil {
		logger.Init(f.Debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to load config")
		return
	}

	logsDir, err := cfg.LogsDir()
	if err != nil {
		logger.Init(f.Debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to get logs directory")
		return
	}

	logCfg := &logger.LoggingConfig{
		FileEnabled: cfg.Logging.FileEnabled,
		MaxSizeMB:   cfg.Logging.MaxSizeMB,
		MaxAgeDays:  cfg.Logging.MaxAgeDays,
		MaxBackups:  cfg.Logging.MaxBackups,
	}

	if err := logger.InitWithFile(f.Debug, logsDir, logCfg); err != nil {
		logger.Init(f.Debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to initialize file writer")
	}
}
