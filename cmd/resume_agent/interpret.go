package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-agent/internal/feedback"
	"github.com/jonathan/resume-agent/internal/rules"
	"github.com/jonathan/resume-agent/internal/types"
)

var (
	interpretProfile string
	interpretRules   string
	interpretComment string
)

var interpretCmd = &cobra.Command{
	Use:   "interpret",
	Short: "Interpret a feedback comment and apply it to profile and rules files",
	Long:  `Run the feedback interpreter against local profile and rules JSON files. The files are rewritten in place with the applied changes.`,
	RunE:  runInterpret,
}

func init() {
	interpretCmd.Flags().StringVar(&interpretProfile, "profile", "", "Path to profile JSON file (required)")
	interpretCmd.Flags().StringVar(&interpretRules, "rules", "", "Path to rules JSON file (required)")
	interpretCmd.Flags().StringVar(&interpretComment, "comment", "", "Feedback comment to interpret (required)")
	_ = interpretCmd.MarkFlagRequired("profile")
	_ = interpretCmd.MarkFlagRequired("rules")
	_ = interpretCmd.MarkFlagRequired("comment")
	rootCmd.AddCommand(interpretCmd)
}

// fileProfileStore adapts a single profile value to the interpreter's store
// interface.
type fileProfileStore struct {
	profile types.Profile
}

func (s *fileProfileStore) LoadProfile(_ context.Context, _ uuid.UUID) (types.Profile, error) {
	return s.profile, nil
}

func (s *fileProfileStore) SaveProfile(_ context.Context, _ uuid.UUID, p types.Profile) error {
	s.profile = p
	return nil
}

func runInterpret(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	profile, err := loadProfileFile(interpretProfile)
	if err != nil {
		return err
	}
	ruleList, err := loadRulesFile(interpretRules)
	if err != nil {
		return err
	}

	gateway, err := newGateway(ctx)
	if err != nil {
		return err
	}
	defer gateway.Close()

	owner := uuid.New()
	ruleStore := rules.NewMemoryStore()
	ruleStore.Seed(owner, ruleList)
	profileStore := &fileProfileStore{profile: profile}

	interpreter := feedback.NewInterpreter(gateway, ruleStore, profileStore)
	summary, err := interpreter.Process(ctx, owner, []types.FeedbackItem{{Comment: interpretComment}})
	if err != nil {
		return fmt.Errorf("failed to process feedback: %w", err)
	}

	updatedRules, err := ruleStore.List(ctx, owner)
	if err != nil {
		return err
	}
	if err := writeJSONFile(interpretRules, updatedRules); err != nil {
		return err
	}
	if err := writeJSONFile(interpretProfile, profileStore.profile); err != nil {
		return err
	}

	fmt.Printf("Applied: %d rule(s) added, %d updated, %d removed; profile changed: %t\n",
		summary.RulesAdded, summary.RulesUpdated, summary.RulesRemoved, summary.ProfileChanged)
	for _, warning := range summary.Warnings {
		fmt.Printf("Warning: %s\n", warning)
	}
	return nil
}
