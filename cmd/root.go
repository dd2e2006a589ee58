package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "pizzabot",
	Short: "PizzaBot - conversational pizza ordering",
	Long: `PizzaBot takes pizza orders through a chat assistant backed by a dialogue model.

The model works through a fixed set of tools that read the menu, build draft
orders, check them out and report their status. The same tools are exposed
over HTTP together with a small admin API for the kitchen.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "optional config file (yaml, json or toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads the configuration and builds the root logger.
func setup(cmd *cobra.Command) (Config, zerolog.Logger, error) {
	cfg, err := LoadConfig(configFile)
	if err != nil {
		return Config{}, zerolog.Nop(), err
	}
	logger, err := NewLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return Config{}, zerolog.Nop(), err
	}
	return cfg, logger, nil
}
