package refine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-agent/internal/llm"
	"github.com/jonathan/resume-agent/internal/types"
)

// DraftStore persists generated drafts. Drafts are append-only; there is no
// update surface.
type DraftStore interface {
	SaveDraft(ctx context.Context, owner uuid.UUID, draft types.Draft) error
	ListDrafts(ctx context.Context, owner uuid.UUID) ([]types.Draft, error)
	GetDraft(ctx context.Context, owner uuid.UUID, id uuid.UUID) (types.Draft, error)
}

// ProfileSource loads the generation-time profile for an owner.
type ProfileSource interface {
	LoadProfile(ctx context.Context, owner uuid.UUID) (types.Profile, error)
}

// RuleSource loads the generation-time rule list for an owner.
type RuleSource interface {
	List(ctx context.Context, owner uuid.UUID) ([]types.Rule, error)
}

// GenerateParams are the caller-supplied knobs for one resume generation.
type GenerateParams struct {
	VersionName     string
	FreeInstruction string
	JobDescription  string
	MaxIterations   int
}

// Service runs the loop against an owner's stored profile and rules and
// persists exactly one immutable draft per run.
type Service struct {
	orchestrator *Orchestrator
	profiles     ProfileSource
	rules        RuleSource
	drafts       DraftStore
	now          func() time.Time
}

// NewService wires a generation service.
func NewService(orchestrator *Orchestrator, profiles ProfileSource, rules RuleSource, drafts DraftStore) *Service {
	return &Service{
		orchestrator: orchestrator,
		profiles:     profiles,
		rules:        rules,
		drafts:       drafts,
		now:          time.Now,
	}
}

// Generate loads the owner's current profile and rules, runs the loop, and
// persists the final draft with snapshots of the exact inputs used. A
// sentinel final draft is an error here: nothing is persisted and the caller
// gets the sentinel text in the error.
func (s *Service) Generate(ctx context.Context, owner uuid.UUID, params GenerateParams) (types.Draft, error) {
	profile, err := s.profiles.LoadProfile(ctx, owner)
	if err != nil {
		return types.Draft{}, fmt.Errorf("failed to load profile: %w", err)
	}
	rules, err := s.rules.List(ctx, owner)
	if err != nil {
		return types.Draft{}, fmt.Errorf("failed to load rules: %w", err)
	}

	result := s.orchestrator.Run(ctx, Request{
		Profile:         profile,
		Rules:           rules,
		FreeInstruction: params.FreeInstruction,
		JobDescription:  params.JobDescription,
		MaxIterations:   params.MaxIterations,
	})

	if llm.IsSentinel(result.Content) {
		return types.Draft{}, fmt.Errorf("resume generation failed: %s", result.Content)
	}

	draft := types.Draft{
		ID:              uuid.New(),
		VersionName:     params.VersionName,
		Content:         result.Content,
		Timestamp:       s.now().UTC().Format(time.RFC3339),
		ProfileSnapshot: profile,
		RulesSnapshot:   rules,
		Critique:        result.Critique,
	}
	if draft.VersionName == "" {
		draft.VersionName = "Resume " + s.now().UTC().Format("2006-01-02 15:04")
	}
	if params.JobDescription != "" {
		jd := params.JobDescription
		draft.TargetJobDescription = &jd
	}

	if err := s.drafts.SaveDraft(ctx, owner, draft); err != nil {
		return types.Draft{}, fmt.Errorf("failed to save draft: %w", err)
	}

	return draft, nil
}
