package feedback

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-agent/internal/llm"
	"github.com/jonathan/resume-agent/internal/rules"
	"github.com/jonathan/resume-agent/internal/types"
)

// fakeGateway returns scripted responses in order.
type fakeGateway struct {
	responses []string
	calls     int
}

func (f *fakeGateway) Generate(_ context.Context, _ string, _ llm.Options) string {
	if f.calls >= len(f.responses) {
		return "Error: no scripted response"
	}
	response := f.responses[f.calls]
	f.calls++
	return response
}

func (f *fakeGateway) Close() error { return nil }

// memProfileStore keeps a single profile in memory.
type memProfileStore struct {
	profile types.Profile
	saves   int
}

func (s *memProfileStore) LoadProfile(_ context.Context, _ uuid.UUID) (types.Profile, error) {
	return s.profile, nil
}

func (s *memProfileStore) SaveProfile(_ context.Context, _ uuid.UUID, p types.Profile) error {
	s.profile = p
	s.saves++
	return nil
}

func newTestInterpreter(responses []string, seed []types.Rule) (*Interpreter, *rules.MemoryStore, *memProfileStore, uuid.UUID) {
	owner := uuid.New()
	ruleStore := rules.NewMemoryStore()
	ruleStore.Seed(owner, seed)
	profiles := &memProfileStore{}
	gateway := &fakeGateway{responses: responses}
	return NewInterpreter(gateway, ruleStore, profiles), ruleStore, profiles, owner
}

func TestProcess_AddRuleAndSkill(t *testing.T) {
	response := `{
		"rules": [{"action": "add", "rule": "Never mention the 2015 internship.", "type": "exclusion"}],
		"core_data_updates": {"skills_add": ["Kubernetes"]}
	}`
	interpreter, ruleStore, profiles, owner := newTestInterpreter([]string{response}, nil)

	summary, err := interpreter.Process(context.Background(), owner, []types.FeedbackItem{
		{Comment: "Please don't include my old internship, and add Kubernetes to my skills."},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.ItemsProcessed)
	assert.Equal(t, 1, summary.RulesAdded)
	assert.True(t, summary.ProfileChanged)

	list, _ := ruleStore.List(context.Background(), owner)
	require.Len(t, list, 1)
	assert.Equal(t, types.RuleExclusion, list[0].Type)
	assert.True(t, list[0].Active)

	assert.Equal(t, []string{"Kubernetes"}, profiles.profile.Skills)
	assert.Equal(t, 1, profiles.saves)
}

func TestProcess_UpdateAndRemoveExistingRules(t *testing.T) {
	seed := []types.Rule{
		{ID: "rule_a", Rule: "No tables", Type: types.RuleStylistic, Active: true},
		{ID: "rule_b", Rule: "Never mention Acme", Type: types.RuleExclusion, Active: true},
	}
	response := `{
		"rules": [
			{"action": "update", "id": "rule_a", "active": false},
			{"action": "remove", "id": "rule_b"}
		],
		"core_data_updates": {}
	}`
	interpreter, ruleStore, _, owner := newTestInterpreter([]string{response}, seed)

	summary, err := interpreter.Process(context.Background(), owner, []types.FeedbackItem{
		{Comment: "Actually tables are fine now, and you can mention Acme again."},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.RulesUpdated)
	assert.Equal(t, 1, summary.RulesRemoved)

	list, _ := ruleStore.List(context.Background(), owner)
	require.Len(t, list, 1)
	assert.Equal(t, "rule_a", list[0].ID)
	assert.False(t, list[0].Active)
	assert.Equal(t, "No tables", list[0].Rule, "unspecified update fields are preserved")
}

func TestProcess_UnknownRuleIdentity(t *testing.T) {
	response := `{
		"rules": [
			{"action": "update", "id": "rule_ghost", "rule": "x"},
			{"action": "remove", "id": "rule_phantom"}
		],
		"core_data_updates": {}
	}`
	interpreter, ruleStore, _, owner := newTestInterpreter([]string{response}, nil)

	summary, err := interpreter.Process(context.Background(), owner, []types.FeedbackItem{
		{Comment: "Change that rule."},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, summary.RulesUpdated)
	assert.Equal(t, 0, summary.RulesRemoved)
	assert.Len(t, summary.Warnings, 2)

	list, _ := ruleStore.List(context.Background(), owner)
	assert.Empty(t, list)
}

func TestProcess_UninterpretableComment(t *testing.T) {
	interpreter, ruleStore, profiles, owner := newTestInterpreter([]string{"I don't understand."}, nil)

	summary, err := interpreter.Process(context.Background(), owner, []types.FeedbackItem{
		{Comment: "something vague"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.ItemsProcessed)
	assert.Len(t, summary.Warnings, 1)
	assert.False(t, summary.ProfileChanged)

	list, _ := ruleStore.List(context.Background(), owner)
	assert.Empty(t, list)
	assert.Equal(t, 0, profiles.saves)
}

func TestProcess_UnsupportedCoreDataOps(t *testing.T) {
	response := `{
		"rules": [],
		"core_data_updates": {"job_history_update": [{"index": 0, "title": "CTO"}]}
	}`
	interpreter, _, profiles, owner := newTestInterpreter([]string{response}, nil)

	summary, err := interpreter.Process(context.Background(), owner, []types.FeedbackItem{
		{Comment: "My title at Acme was actually CTO."},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"job_history_update"}, summary.SkippedOps)
	assert.False(t, summary.ProfileChanged, "unsupported operations never touch the profile")
	assert.Equal(t, 0, profiles.saves)
}

func TestProcess_SequentialAccumulation(t *testing.T) {
	first := `{
		"rules": [{"action": "add", "rule": "Lead with impact metrics.", "type": "stylistic"}],
		"core_data_updates": {}
	}`
	second := `{
		"rules": [],
		"core_data_updates": {"skills_add": ["Terraform"]}
	}`
	interpreter, ruleStore, profiles, owner := newTestInterpreter([]string{first, second}, nil)

	summary, err := interpreter.Process(context.Background(), owner, []types.FeedbackItem{
		{Comment: "Start bullets with measurable impact."},
		{Comment: "Add Terraform."},
		{Comment: ""}, // empty comments are skipped entirely
	})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.ItemsProcessed)
	assert.Equal(t, 1, summary.RulesAdded)
	assert.True(t, summary.ProfileChanged)

	list, _ := ruleStore.List(context.Background(), owner)
	assert.Len(t, list, 1)
	assert.Equal(t, []string{"Terraform"}, profiles.profile.Skills)
}
