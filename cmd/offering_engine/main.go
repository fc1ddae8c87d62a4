package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"frizo/offering_engine/internal/config"
	"frizo/offering_engine/internal/logger"
	"frizo/offering_engine/internal/version"
)

var (
	// Global flags
	configFile string
	logLevel   string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "offering_engine",
	Short: "Offering Engine - bonus share calculator and investor intake service",
	Long: `Offering Engine prices a share offering with volume bonuses.

Investors buy shares at a fixed price and receive bonus shares once their
investment reaches a tier threshold. Accredited investors use a separate,
higher tier table.

Run "offering_engine serve" to start the HTTP API.`,
	Version:       version.Short(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", ".env.local", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(tiersCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Default().Error("Command failed", "error", err)
		os.Exit(1)
	}
}

// setup loads configuration and installs the process logger.
func setup() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}

	// Override log level from command line
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	logger.SetDefault(log)
	return cfg, log, nil
}
