package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-agent/internal/refine"
)

var (
	generateProfile     string
	generateRules       string
	generateJD          string
	generateInstruction string
	generateOut         string
	generateCritiqueOut string
	generateIterations  int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a resume draft from profile and rules files",
	Long:  `Run the full generate/critique/refine loop against a profile JSON file and optional rules file, without a database.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateProfile, "profile", "", "Path to profile JSON file (required)")
	generateCmd.Flags().StringVar(&generateRules, "rules", "", "Path to rules JSON file")
	generateCmd.Flags().StringVar(&generateJD, "jd", "", "Target job description (text or file path)")
	generateCmd.Flags().StringVar(&generateInstruction, "instruction", "", "Free-form instruction for this run")
	generateCmd.Flags().StringVar(&generateOut, "out", "", "Write the draft to this file (default: stdout)")
	generateCmd.Flags().StringVar(&generateCritiqueOut, "critique-out", "", "Write the final critique JSON to this file")
	generateCmd.Flags().IntVar(&generateIterations, "iterations", 0, "Maximum refinement iterations (default from the loop)")
	_ = generateCmd.MarkFlagRequired("profile")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	profile, err := loadProfileFile(generateProfile)
	if err != nil {
		return err
	}
	rules, err := loadRulesFile(generateRules)
	if err != nil {
		return err
	}
	jobDescription, err := loadTextFileOrValue(generateJD)
	if err != nil {
		return err
	}

	gateway, err := newGateway(ctx)
	if err != nil {
		return err
	}
	defer gateway.Close()

	orchestrator := refine.NewOrchestrator(gateway)
	result := orchestrator.Run(ctx, refine.Request{
		Profile:         profile,
		Rules:           rules,
		FreeInstruction: generateInstruction,
		JobDescription:  jobDescription,
		MaxIterations:   generateIterations,
	})

	if generateOut == "" {
		fmt.Println(result.Content)
	} else if err := os.WriteFile(generateOut, []byte(result.Content+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write draft: %w", err)
	}

	if generateCritiqueOut != "" && result.Critique != nil {
		if err := writeJSONFile(generateCritiqueOut, result.Critique); err != nil {
			return err
		}
	}

	return nil
}
