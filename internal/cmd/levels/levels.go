// Package levels implements "sevlog levels".
package levels

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/schmitthub/sevlog/internal/cmdutil"
	"github.com/schmitthub/sevlog/internal/iostreams"
	"github.com/schmitthub/sevlog/pkg/logger"
	"github.com/spf13/cobra"
)

// LevelsOptions holds the inputs of the levels command.
type LevelsOptions struct {
	IOStreams *iostreams.IOStreams
}

// NewCmdLevels creates the "levels" subcommand.
func NewCmdLevels(f *cmdutil.Factory, runF func(*LevelsOptions) error) *cobra.Command {
	opts := &LevelsOptions{IOStreams: f.IOStreams}

	cmd := &cobra.Command{
		Use:   "levels",
		Short: "List severity levels, most urgent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(opts)
			}
			return levelsRun(opts)
		},
	}

	return cmd
}

func levelsRun(opts *LevelsOptions) error {
	ios := opts.IOStreams
	cs := ios.ColorScheme()

	for _, level := range logger.Levels() {
		label, err := logger.LevelToLabel(level)
		if err != nil {
			return err
		}
		fmt.Fprintf(ios.Out, "%s  %-9s  %s\n",
			cs.Muted(strconv.Itoa(int(level))),
			label,
			cs.Level(level, "["+strings.ToUpper(label)+"]"),
		)
	}
	return nil
}
