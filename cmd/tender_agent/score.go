package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thabo/tender-insight/internal/engine"
	"github.com/thabo/tender-insight/internal/ingestion"
	"github.com/thabo/tender-insight/internal/types"
)

var (
	scoreProfile string
	scoreTender  string
	scoreTitle   string
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a company profile against a tender",
	Long:  "Extracts requirements from the tender text and scores the company profile against them, printing the suitability result.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		profileRaw, err := os.ReadFile(scoreProfile)
		if err != nil {
			return fmt.Errorf("failed to read profile file: %w", err)
		}
		var profile types.CompanyProfile
		if err := json.Unmarshal(profileRaw, &profile); err != nil {
			return fmt.Errorf("failed to parse profile JSON: %w", err)
		}
		if err := profile.Validate(); err != nil {
			return fmt.Errorf("invalid company profile: %w", err)
		}

		tenderRaw, err := os.ReadFile(scoreTender)
		if err != nil {
			return fmt.Errorf("failed to read tender file: %w", err)
		}

		eng, err := engine.New(cfg.EngineOptions(log))
		if err != nil {
			return err
		}

		requirements := eng.ExtractRequirements(ingestion.Normalize(string(tenderRaw)), scoreTitle)
		result := eng.ScoreSuitability(profile, requirements)

		return printJSON(struct {
			Requirements types.TenderRequirements `json:"requirements"`
			Result       types.ScoringResult      `json:"result"`
		}{requirements, result})
	},
}

func init() {
	scoreCmd.Flags().StringVar(&scoreProfile, "profile", "", "Path to company profile JSON file")
	scoreCmd.Flags().StringVar(&scoreTender, "tender", "", "Path to tender text file")
	scoreCmd.Flags().StringVar(&scoreTitle, "title", "", "Tender title")
	_ = scoreCmd.MarkFlagRequired("profile")
	_ = scoreCmd.MarkFlagRequired("tender")
	rootCmd.AddCommand(scoreCmd)
}
