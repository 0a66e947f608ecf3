package refine

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-agent/internal/llm"
	"github.com/jonathan/resume-agent/internal/types"
)

type fakeProfileSource struct {
	profile types.Profile
}

func (f *fakeProfileSource) LoadProfile(_ context.Context, _ uuid.UUID) (types.Profile, error) {
	return f.profile, nil
}

type fakeRuleSource struct {
	rules []types.Rule
}

func (f *fakeRuleSource) List(_ context.Context, _ uuid.UUID) ([]types.Rule, error) {
	return f.rules, nil
}

type fakeDraftStore struct {
	saved []types.Draft
}

func (f *fakeDraftStore) SaveDraft(_ context.Context, _ uuid.UUID, draft types.Draft) error {
	f.saved = append(f.saved, draft)
	return nil
}

func (f *fakeDraftStore) ListDrafts(_ context.Context, _ uuid.UUID) ([]types.Draft, error) {
	return f.saved, nil
}

func (f *fakeDraftStore) GetDraft(_ context.Context, _ uuid.UUID, id uuid.UUID) (types.Draft, error) {
	for _, d := range f.saved {
		if d.ID == id {
			return d, nil
		}
	}
	return types.Draft{}, nil
}

func TestService_Generate(t *testing.T) {
	gateway := &fakeGateway{
		drafts:    []string{"Final draft text"},
		critiques: []string{cleanCritique},
	}
	profiles := &fakeProfileSource{profile: types.Profile{FullName: "Jane Doe"}}
	ruleSource := &fakeRuleSource{rules: []types.Rule{
		{ID: "rule_1", Rule: "No tables", Type: types.RuleStylistic, Active: true},
	}}
	drafts := &fakeDraftStore{}

	service := NewService(NewOrchestrator(gateway), profiles, ruleSource, drafts)
	service.now = func() time.Time {
		return time.Date(2026, 8, 28, 12, 30, 0, 0, time.UTC)
	}

	jd := "Backend engineer role"
	draft, err := service.Generate(context.Background(), uuid.New(), GenerateParams{
		VersionName:    "For Acme",
		JobDescription: jd,
	})
	require.NoError(t, err)

	assert.Equal(t, "Final draft text", draft.Content)
	assert.Equal(t, "For Acme", draft.VersionName)
	assert.Equal(t, "2026-08-28T12:30:00Z", draft.Timestamp)
	assert.Equal(t, "Jane Doe", draft.ProfileSnapshot.FullName)
	require.Len(t, draft.RulesSnapshot, 1)
	require.NotNil(t, draft.TargetJobDescription)
	assert.Equal(t, jd, *draft.TargetJobDescription)
	require.NotNil(t, draft.Critique)

	// Exactly one draft is persisted per run.
	require.Len(t, drafts.saved, 1)
	assert.Equal(t, draft.ID, drafts.saved[0].ID)
}

func TestService_Generate_DefaultVersionName(t *testing.T) {
	gateway := &fakeGateway{
		drafts:    []string{"Draft"},
		critiques: []string{cleanCritique},
	}
	service := NewService(NewOrchestrator(gateway), &fakeProfileSource{}, &fakeRuleSource{}, &fakeDraftStore{})
	service.now = func() time.Time {
		return time.Date(2026, 8, 28, 9, 5, 0, 0, time.UTC)
	}

	draft, err := service.Generate(context.Background(), uuid.New(), GenerateParams{})
	require.NoError(t, err)
	assert.Equal(t, "Resume 2026-08-28 09:05", draft.VersionName)
	assert.Nil(t, draft.TargetJobDescription)
}

func TestService_Generate_SentinelFails(t *testing.T) {
	gateway := &fakeGateway{
		drafts:    []string{llm.SentinelBlocked},
		critiques: []string{cleanCritique},
	}
	drafts := &fakeDraftStore{}
	service := NewService(NewOrchestrator(gateway), &fakeProfileSource{}, &fakeRuleSource{}, drafts)

	_, err := service.Generate(context.Background(), uuid.New(), GenerateParams{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), llm.SentinelBlocked)
	assert.Empty(t, drafts.saved, "failed runs persist nothing")
}
