package cli

import (
	"github.com/spf13/cobra"

	"github.com/smithellis/upgrade-insight/internal/server"
)

// newServeCmd creates the serve command, which runs the HTTP report page.
func newServeCmd() *cobra.Command {
	var (
		opts         analyzerOpts
		addr         string
		descriptions bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dependency report as a web page",
		Long: `Serve the dependency report on an HTTP endpoint.

Every request to / re-reads the manifest and re-queries PyPI (through the
response cache), so the page always reflects the manifest on disk.

Examples:
  upgrade-insight serve
  upgrade-insight serve --manifest path/to/pyproject.toml --addr :9000
  upgrade-insight serve --sequential --no-cache`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			analyzer, closeBackend, err := opts.build(cmd.Context(), logger)
			if err != nil {
				return err
			}
			defer closeBackend()

			srv, err := server.New(server.Config{
				Addr:             addr,
				ShowDescriptions: descriptions,
			}, analyzer, logger)
			if err != nil {
				return err
			}
			return srv.ListenAndServe(cmd.Context())
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&descriptions, "descriptions", false, "include the package description column")

	return cmd
}
