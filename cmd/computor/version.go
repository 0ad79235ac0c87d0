package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/computor"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of computor",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("computor version %s\n", strings.TrimSpace(computor.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
