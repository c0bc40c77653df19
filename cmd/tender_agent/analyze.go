package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thabo/tender-insight/internal/engine"
	"github.com/thabo/tender-insight/internal/ingestion"
)

var (
	analyzeTitle  string
	analyzeMaxLen int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <tender-text-file>",
	Short: "Analyze a tender document",
	Long:  "Extracts requirements, classifies the industry sector, estimates complexity and summarizes the given tender text file.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read tender file: %w", err)
		}

		eng, err := engine.New(cfg.EngineOptions(log))
		if err != nil {
			return err
		}

		text := ingestion.Normalize(string(raw))
		result := eng.AnalyzeTender(text, analyzeTitle)

		maxLen := analyzeMaxLen
		if maxLen <= 0 {
			maxLen = cfg.SummaryLength
		}
		if maxLen > 0 && maxLen != engine.DefaultSummaryLength {
			result.Summary = eng.Summarize(text, maxLen)
		}

		return printJSON(result)
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeTitle, "title", "", "Tender title (weighted in sector classification)")
	analyzeCmd.Flags().IntVar(&analyzeMaxLen, "max-length", 0, "Maximum summary length in characters")
	rootCmd.AddCommand(analyzeCmd)
}

// printJSON writes indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}
