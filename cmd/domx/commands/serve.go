package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/domx/internal/app"
)

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"dev"},
		Short:   "Run the development server with live reload",
		Long: "Run the development server. Changed inputs are invalidated and the bundle is rebuilt.\n" +
			"The server runs in development mode, with transform caching off, unless told otherwise.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			host, _ := cmd.Flags().GetString("host")
			port, _ := cmd.Flags().GetInt("port")
			metricsPort, _ := cmd.Flags().GetInt("metrics-port")

			return c.app.Serve(cmd.Context(), app.ServeOptions{
				SessionOptions: sessionOptions(cmd),
				Host:           host,
				Port:           port,
				MetricsPort:    metricsPort,
			})
		},
	}
	cmd.Flags().String("host", "", "Listen host (default from domx.yaml, or 127.0.0.1)")
	cmd.Flags().IntP("port", "p", 0, "Listen port (default from domx.yaml, or 5173)")
	cmd.Flags().Int("metrics-port", 0, "Expose Prometheus metrics on this port")
	return cmd
}
