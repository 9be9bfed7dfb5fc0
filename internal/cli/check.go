package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smithellis/upgrade-insight/pkg/report"
)

// newCheckCmd creates the check command, which prints the report to the
// terminal instead of serving it.
func newCheckCmd() *cobra.Command {
	var (
		opts         analyzerOpts
		descriptions bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Print the dependency report to the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			analyzer, closeBackend, err := opts.build(cmd.Context(), logger)
			if err != nil {
				return err
			}
			defer closeBackend()

			prog := newProgress(logger)
			reports, err := analyzer.Analyze(cmd.Context())
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Checked %d packages", len(reports)))

			renderTable(cmd.OutOrStdout(), reports, descriptions)
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&descriptions, "descriptions", false, "include package descriptions")

	return cmd
}

// renderTable writes a fixed-width severity-colored table. Major updates
// are bold red, minor updates yellow, up-to-date rows unstyled.
func renderTable(w io.Writer, reports []report.Report, descriptions bool) {
	name, current, latest := columnWidths(reports)

	fmt.Fprintf(w, "%-*s  %-*s  %-*s  %s\n", name, "PACKAGE", current, "CURRENT", latest, "LATEST", "UPGRADE")
	for _, r := range reports {
		line := fmt.Sprintf("%-*s  %-*s  %-*s  %s",
			name, r.Name,
			current, orDash(r.Current),
			latest, orDash(r.Latest),
			r.Tier)

		switch r.Tier {
		case report.TierMajor:
			line = styleMajor.Render(line)
		case report.TierMinor:
			line = styleMinor.Render(line)
		}
		fmt.Fprintln(w, line)

		if descriptions && r.Description != "" {
			fmt.Fprintf(w, "%-*s  %s\n", name, "", styleDim.Render(r.Description))
		}
	}
}

func columnWidths(reports []report.Report) (name, current, latest int) {
	name, current, latest = len("PACKAGE"), len("CURRENT"), len("LATEST")
	for _, r := range reports {
		name = max(name, len(r.Name))
		current = max(current, len(orDash(r.Current)))
		latest = max(latest, len(orDash(r.Latest)))
	}
	return name, current, latest
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
