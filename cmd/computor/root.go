package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/computor/internal/cli"
	"github.com/aretw0/computor/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "computor <equation>",
	Short: "Solve polynomial equations of degree 2 or lower",
	Long: `Computor reduces a polynomial equation in X to the form a * X^2 + b * X^1 + c * X^0 = 0,
reports its degree and prints its real solutions.

Example:
  computor "5 * X^0 + 4 * X^1 - 9.3 * X^2 = 1 * X^0"

Equations starting with '-' must follow "--" so they are not read as flags.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
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
		if err := cli.Solve(cmd.Context(), app, args[0], r, os.Stdout, os.Stderr); err != nil {
			app.Close()
			os.Exit(1)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Config file (default "+config.DefaultPath+" if present)")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format: text, json or markdown")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().Bool("strict", false, "Reject terms with more than one X factor")
	rootCmd.PersistentFlags().String("cache", config.CacheNone, "Report cache: none, memory, file, redis or badger")
}

// loadConfig reads the config file and applies flags explicitly set on the command line.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if flags.Changed("strict") {
		cfg.StrictFactors, _ = flags.GetBool("strict")
	}
	if flags.Changed("cache") {
		backend, _ := flags.GetString("cache")
		cfg.SetCacheBackend(backend)
	}
	if flags.Lookup("workers") != nil && flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Lookup("addr") != nil && flags.Changed("addr") {
		cfg.Server.Addr, _ = flags.GetString("addr")
	}
	return cfg, cfg.Validate()
}

// setup loads the configuration and builds the application.
func setup(cmd *cobra.Command) (*cli.App, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	debug, _ := cmd.Flags().GetBool("debug")
	logger, err := cli.NewLogger(debug, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return cli.NewApp(cmd.Context(), cfg, logger)
}
