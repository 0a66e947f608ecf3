package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobsByRecency(t *testing.T) {
	profile := Profile{
		JobHistory: []Job{
			{Title: "Analyst", Company: "Acme", StartDate: "2019-01"},
			{Title: "Engineer", Company: "Initech", StartDate: "2022-06"},
			{Title: "Intern", Company: "Globex"}, // no start date
			{Title: "Developer", Company: "Umbrella", StartDate: "2020-03"},
		},
	}

	jobs := profile.JobsByRecency()
	require.Len(t, jobs, 4)
	assert.Equal(t, "2022-06", jobs[0].StartDate)
	assert.Equal(t, "2020-03", jobs[1].StartDate)
	assert.Equal(t, "2019-01", jobs[2].StartDate)
	assert.Equal(t, "", jobs[3].StartDate, "jobs without a start date sort last")

	// The receiver's slice is untouched.
	assert.Equal(t, "Analyst", profile.JobHistory[0].Title)
}

func TestJobsByRecency_Empty(t *testing.T) {
	profile := Profile{}
	assert.Empty(t, profile.JobsByRecency())
}

func TestHasSkill(t *testing.T) {
	profile := Profile{Skills: []string{"Go", "PostgreSQL"}}

	assert.True(t, profile.HasSkill("Go"))
	assert.False(t, profile.HasSkill("go"), "matching is case-sensitive")
	assert.False(t, profile.HasSkill("Rust"))
}

func TestCritiqueRecompute(t *testing.T) {
	critique := ResumeCritique{HasIssues: true}
	critique.Recompute()
	assert.False(t, critique.HasIssues, "no issues means no has_issues, whatever the model said")

	critique.Issues = []CritiqueIssue{{Category: CategoryStylistic, Severity: "low", Description: "too wordy"}}
	critique.HasIssues = false
	critique.Recompute()
	assert.True(t, critique.HasIssues)
}

func TestNormalizeRuleType(t *testing.T) {
	assert.Equal(t, RuleStylistic, NormalizeRuleType("stylistic"))
	assert.Equal(t, RuleExclusion, NormalizeRuleType("exclusion"))
	assert.Equal(t, RuleInclusion, NormalizeRuleType("inclusion"))
	assert.Equal(t, RuleStylistic, NormalizeRuleType(""), "unknown types default to stylistic")
	assert.Equal(t, RuleStylistic, NormalizeRuleType("bogus"))
}

func TestActiveRules(t *testing.T) {
	rules := []Rule{
		{ID: "rule_1", Rule: "No tables", Type: RuleStylistic, Active: true},
		{ID: "rule_2", Rule: "Never mention Acme", Type: RuleExclusion, Active: false},
		{ID: "rule_3", Rule: "Always list Go first", Type: RuleInclusion, Active: true},
	}

	active := ActiveRules(rules)
	require.Len(t, active, 2)
	assert.Equal(t, "rule_1", active[0].ID)
	assert.Equal(t, "rule_3", active[1].ID)
}
