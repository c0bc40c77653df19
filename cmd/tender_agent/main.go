// Package main provides the tender-insight CLI: tender analysis, suitability
// scoring and the HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/thabo/tender-insight/internal/config"
	"github.com/thabo/tender-insight/internal/logger"
	"github.com/thabo/tender-insight/internal/schemas"
)

var (
	flagConfig   string
	flagVerbose  bool
	flagJSONLogs bool
)

var rootCmd = &cobra.Command{
	Use:   "tender_agent",
	Short: "Tender readiness analysis",
	Long:  "tender_agent turns unstructured procurement-tender text into structured requirements and scores a company's readiness to bid.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagJSONLogs, "json-logs", false, "Emit JSON logs")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads configuration and builds the logger shared by all commands.
func setup() (*config.Config, *zap.Logger, error) {
	cfg := &config.Config{}
	if flagConfig != "" {
		if err := schemas.ValidateConfigFile(flagConfig); err != nil {
			return nil, nil, fmt.Errorf("config failed schema validation: %w", err)
		}
		loaded, err := config.LoadConfig(flagConfig)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}
	cfg.FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	merged := cfg.MergeWithDefaults(config.Config{Port: 8080})

	log, err := logger.New(flagJSONLogs || merged.JSONLogs, flagVerbose || merged.Verbose)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return &merged, log, nil
}
