package main

import (
	"fmt"
	"os"

	"github.com/aretw0/computor/internal/cli"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Solve every equation of a file, one per line",
	Long: `Solves one equation per line. Blank lines and lines starting with '#' are skipped.
Use "-" to read from stdin. With --watch the file is solved again whenever it changes.

The command exits 1 when any equation fails.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		watch, _ := cmd.Flags().GetBool("watch")

		app, err := setup(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer app.Close()

		r, err := app.Renderer(os.Stdout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts := cli.BatchOptions{
			Path:     args[0],
			Workers:  app.Config.Workers,
			Renderer: r,
			Out:      os.Stdout,
			In:       os.Stdin,
		}

		if watch {
			ctx := cli.NewSignalContext(cmd.Context())
			defer ctx.Cancel()
			opts.Status = os.Stderr
			if err := cli.WatchBatch(ctx, app, opts); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				app.Close()
				os.Exit(1)
			}
			return
		}

		summary, err := cli.Batch(cmd.Context(), app, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			app.Close()
			os.Exit(1)
		}
		if summary.Failed > 0 {
			app.Close()
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().Bool("watch", false, "Solve again when the file changes")
	batchCmd.Flags().Int("workers", 4, "Equations solved concurrently")
}
