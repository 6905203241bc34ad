package sevlog

import (
	"context"
	"errors"
	"fmt"

	"github.com/schmitthub/sevlog/internal/cmd/factory"
	"github.com/schmitthub/sevlog/internal/cmd/root"
	"github.com/schmitthub/sevlog/internal/cmdutil"
	"github.com/schmitthub/sevlog/internal/logger"
	"github.com/schmitthub/sevlog/internal/signals"
)

// Build-time variables injected via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = ""
)

const (
	exitOk    = 0
	exitError = 1
	exitUsage = 2
)

// Main is the entry point for the sevlog CLI.
// It initializes the Factory, creates the root command, and executes it.
func Main() int {
	// Ensure logs are flushed on exit
	defer logger.CloseFileWriter()

	f := factory.New(Version, Commit)
	rootCmd := root.NewCmdRoot(f, Version, BuildDate)

	ctx, cancel := signals.SetupSignalContext(context.Background())
	defer cancel()

	// Execute - use ExecuteC to get the executed command for contextual hint
	rootCmd.SetContext(ctx)
	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		return exitCode(f, err, cmd.CommandPath(), cmd.UsageString())
	}
	return exitOk
}

// exitCode maps a command error to a process exit status, printing usage
// for flag errors and a help hint otherwise. Cobra has already printed
// "Error: ..." for the err itself.
func exitCode(f *cmdutil.Factory, err error, cmdPath, usage string) int {
	var flagErr *cmdutil.FlagError
	if errors.As(err, &flagErr) {
		fmt.Fprint(f.IOStreams.ErrOut, "\n"+usage)
		return exitUsage
	}

	cmdutil.PrintHelpHint(f.IOStreams, cmdPath)
	return exitError
}
