// Package emit implements "sevlog emit", which writes messages through the
// configured facade backend installed as the global logger.
package emit

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/schmitthub/sevlog/internal/cmdutil"
	"github.com/schmitthub/sevlog/internal/config"
	"github.com/schmitthub/sevlog/internal/iostreams"
	diag "github.com/schmitthub/sevlog/internal/logger"
	"github.com/schmitthub/sevlog/pkg/logger"
	"github.com/spf13/cobra"
)

// EmitOptions holds the inputs of the emit command.
type EmitOptions struct {
	IOStreams *iostreams.IOStreams
	Config    func() (*config.Config, error)
	NewLogger func(cfg *config.Config) (logger.Logger, error)

	Level     logger.Level
	Prefix    string
	Threshold string
	Backend   string
	Exception bool
	Stack     bool
	Trace     string

	Messages []string
}

// NewCmdEmit creates the "emit" subcommand.
func NewCmdEmit(f *cmdutil.Factory, runF func(*EmitOptions) error) *cobra.Command {
	opts := &EmitOptions{
		IOStreams: f.IOStreams,
		Config:    f.Config,
		NewLogger: f.NewLogger,
	}

	cmd := &cobra.Command{
		Use:   "emit [flags] [MESSAGE...]",
		Short: "Write a message at a severity level",
		Long: `Write a message through the configured logger.

Each argument is logged as one message. With no arguments, every line read
from stdin is logged.`,
		Example: `  sevlog emit --level error "disk full"
  sevlog emit --prefix Net --level warning timeout
  sevlog emit --exception --stack "connection refused"
  tail -f app.out | sevlog emit --level info`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Messages = args
			if opts.Trace != "" && !opts.Exception {
				return cmdutil.FlagErrorf("--trace requires --exception")
			}
			if opts.Stack && !opts.Exception {
				return cmdutil.FlagErrorf("--stack requires --exception")
			}
			if runF != nil {
				return runF(opts)
			}
			return emitRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().VarP(newLevelValue(logger.InfoLevel, &opts.Level), "level", "l", "Severity to log at ("+levelNames()+")")
	cmd.Flags().StringVarP(&opts.Prefix, "prefix", "p", "", "Tag every message with [PREFIX] (overrides config)")
	cmd.Flags().StringVar(&opts.Threshold, "threshold", "", "Drop messages less severe than this level (overrides config)")
	cmd.Flags().StringVar(&opts.Backend, "backend", "", "Logger backend: simple, zerolog or nop (overrides config)")
	cmd.Flags().BoolVarP(&opts.Exception, "exception", "e", false, "Log each message as an error at critical severity")
	cmd.Flags().BoolVar(&opts.Stack, "stack", false, "Attach a captured stack trace to logged errors")
	cmd.Flags().StringVar(&opts.Trace, "trace", "", "Explicit trace text to log after each error")

	return cmd
}

func emitRun(ctx context.Context, opts *EmitOptions) error {
	cfg, err := opts.Config()
	if err != nil {
		if config.IsConfigNotFound(err) {
			return cmdutil.FlagErrorWrap(err)
		}
		return err
	}

	effective := *cfg
	if opts.Prefix != "" {
		effective.Prefix = opts.Prefix
	}
	if opts.Threshold != "" {
		effective.Level = opts.Threshold
	}
	if opts.Backend != "" {
		effective.Backend = opts.Backend
	}

	l, err := opts.NewLogger(&effective)
	if err != nil {
		var multi *config.MultiValidationError
		if errors.As(err, &multi) {
			return cmdutil.FlagErrorWrap(err)
		}
		return err
	}
	logger.SetGlobal(l)

	log := diag.WithField("backend", effective.Backend)
	log.Debug().
		Str("prefix", effective.Prefix).
		Str("threshold", effective.Level).
		Str("level", opts.Level.String()).
		Int("args", len(opts.Messages)).
		Msg("emitting")

	if len(opts.Messages) == 0 {
		if err := emitLines(ctx, opts); err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		log.Debug().Bool("canceled", ctx.Err() != nil).Msg("stdin done")
		return nil
	}

	for _, msg := range opts.Messages {
		emitOne(opts, msg)
	}
	return nil
}

func emitOne(opts *EmitOptions, msg string) {
	if !opts.Exception {
		logger.Global().Log(opts.Level, msg)
		return
	}

	var err error
	if opts.Stack {
		err = pkgerrors.New(msg)
	} else {
		err = errors.New(msg)
	}
	logger.Global().LogException(err, opts.Trace)
}

// emitLines logs stdin line by line as it arrives, skipping blank lines.
// It stops before reading the next line once ctx is done; a line already
// read is still logged.
func emitLines(ctx context.Context, opts *EmitOptions) error {
	scanner := bufio.NewScanner(opts.IOStreams.In)
	for ctx.Err() == nil && scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		emitOne(opts, line)
	}
	return scanner.Err()
}
