package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/aretw0/computor/internal/cli"
	"github.com/aretw0/computor/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts computor as an MCP Server exposing the solve_equation tool
(and list_history when a cache is configured).

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		app, err := setup(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer app.Close()
		slog.SetDefault(app.Logger)

		var opts []mcp.Option
		if app.Cache != nil {
			opts = append(opts, mcp.WithHistory(app.Engine))
		}
		srv := mcp.NewServer(app.Engine, opts...)

		switch transport {
		case "stdio":
			// Ensure logs don't corrupt JSON-RPC on Stdout
			log.SetOutput(os.Stderr)
			app.Logger.Info("Starting computor MCP Server (Stdio)")
			err = srv.ServeStdio()
		case "sse":
			ctx := cli.NewSignalContext(cmd.Context())
			defer ctx.Cancel()
			err = srv.ServeSSE(ctx, port)
		default:
			err = fmt.Errorf("unknown transport %q", transport)
		}
		if err != nil {
			app.Logger.Error("MCP Server execution failed", "err", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			app.Close()
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().String("transport", "stdio", "Transport: stdio or sse")
	mcpCmd.Flags().Int("port", 8081, "Port for the sse transport")
}
