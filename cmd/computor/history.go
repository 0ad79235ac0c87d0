package main

import (
	"fmt"
	"os"

	"github.com/aretw0/computor/internal/cli"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List the reports stored in the cache",
	Long:  `Prints every cached report. Requires a persistent cache, e.g. --cache file, badger or redis.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app, err := setup(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer app.Close()

		r, err := app.Renderer(os.Stdout)
		if err == nil {
			err = cli.History(cmd.Context(), app, r, os.Stdout)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			app.Close()
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
