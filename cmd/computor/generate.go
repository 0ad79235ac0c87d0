package main

import (
	"fmt"
	"os"
	"time"

	"github.com/aretw0/computor/internal/cli"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print random quadratic equations",
	Long: `Prints equations of the form a*X^2 + b*X + c = d*X^2 + e*X + f with coefficients
drawn uniformly from [-200, 200). The output can be piped to "computor batch -".`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		count, _ := cmd.Flags().GetInt("count")
		seed, _ := cmd.Flags().GetUint64("seed")
		if !cmd.Flags().Changed("seed") {
			seed = uint64(time.Now().UnixNano())
		}
		if err := cli.Generate(os.Stdout, count, seed); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntP("count", "n", 1, "Number of equations")
	generateCmd.Flags().Uint64("seed", 0, "Random seed (default: current time)")
}
