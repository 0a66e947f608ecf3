package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-agent/internal/suggest"
)

var (
	suggestProfile string
	suggestRules   string
	suggestJD      string
	suggestOut     string
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Generate improvement suggestions for a profile",
	RunE:  runSuggest,
}

func init() {
	suggestCmd.Flags().StringVar(&suggestProfile, "profile", "", "Path to profile JSON file (required)")
	suggestCmd.Flags().StringVar(&suggestRules, "rules", "", "Path to rules JSON file")
	suggestCmd.Flags().StringVar(&suggestJD, "jd", "", "Target job description (text or file path)")
	suggestCmd.Flags().StringVar(&suggestOut, "out", "", "Write suggestions JSON to this file (default: stdout)")
	_ = suggestCmd.MarkFlagRequired("profile")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	profile, err := loadProfileFile(suggestProfile)
	if err != nil {
		return err
	}
	rules, err := loadRulesFile(suggestRules)
	if err != nil {
		return err
	}
	jobDescription, err := loadTextFileOrValue(suggestJD)
	if err != nil {
		return err
	}

	gateway, err := newGateway(ctx)
	if err != nil {
		return err
	}
	defer gateway.Close()

	suggester := suggest.NewSuggester(gateway)
	response := suggester.Suggest(ctx, profile, rules, jobDescription)

	return writeJSONFile(suggestOut, response)
}
