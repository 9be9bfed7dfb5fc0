// Package cli implements the upgrade-insight command-line interface.
//
// The command tree has three commands: serve (HTTP report), check
// (terminal report), and cache (response cache management). All commands
// support --verbose for debug-level logging; loggers are passed through
// context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/smithellis/upgrade-insight/pkg/buildinfo"
)

// Execute runs the upgrade-insight CLI and returns an error if any
// command fails.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "upgrade-insight",
		Short:        "upgrade-insight reports how far your Python dependencies lag behind PyPI",
		Long:         `upgrade-insight reads a pyproject.toml, looks up each dependency's latest release on PyPI, and reports update severity (major/minor/none) as a sortable web page or a terminal table.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			logger.Debug("starting", "build", buildinfo.String())
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newServeCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newCacheCmd())

	return root.ExecuteContext(ctx)
}
