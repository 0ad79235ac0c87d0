package main

import (
	"fmt"
	"os"

	"github.com/aretw0/computor/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Exposes the solver as a JSON API over HTTP:

  GET  /solve?equation=...
  POST /solve            {"equation": "..."}
  GET  /health, /info, /openapi.yaml
  GET  /metrics          (Prometheus, unless disabled in the config)`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app, err := setup(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer app.Close()

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		if err := cli.Serve(ctx, app, app.Config.Server.Addr, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			app.Close()
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
}
