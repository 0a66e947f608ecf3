package prompting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-agent/internal/types"
)

func sampleProfile() types.Profile {
	return types.Profile{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		JobHistory: []types.Job{
			{Title: "Analyst", Company: "Acme", StartDate: "2019-01", EndDate: "2020-02",
				Responsibilities: []string{"Analyzed data"}},
			{Title: "Engineer", Company: "Initech", StartDate: "2022-06", EndDate: "present",
				Responsibilities: []string{"Built services"}},
		},
		Skills: []string{"Go", "SQL"},
	}
}

func sampleRules() []types.Rule {
	return []types.Rule{
		{ID: "rule_1", Rule: "Prefer short bullets.", Type: types.RuleStylistic, Active: true},
		{ID: "rule_2", Rule: "the 2015 internship", Type: types.RuleExclusion, Active: true},
		{ID: "rule_3", Rule: "the AWS migration", Type: types.RuleInclusion, Active: true},
		{ID: "rule_4", Rule: "Use tables.", Type: types.RuleStylistic, Active: false},
	}
}

func TestCompileDraftPrompt_Deterministic(t *testing.T) {
	a := CompileDraftPrompt(sampleProfile(), sampleRules(), "keep it to one page", "Backend role")
	b := CompileDraftPrompt(sampleProfile(), sampleRules(), "keep it to one page", "Backend role")
	assert.Equal(t, a, b)
}

func TestCompileDraftPrompt_Content(t *testing.T) {
	prompt := CompileDraftPrompt(sampleProfile(), sampleRules(), "keep it to one page", "Backend role")

	assert.Contains(t, prompt, "Jane Doe")
	assert.Contains(t, prompt, "keep it to one page")
	assert.Contains(t, prompt, "Backend role")

	// Active rules appear partitioned by type; inactive rules do not appear.
	assert.Contains(t, prompt, "Prefer short bullets.")
	assert.Contains(t, prompt, "the 2015 internship")
	assert.Contains(t, prompt, "the AWS migration")
	assert.NotContains(t, prompt, "Use tables.")

	// Jobs render most recent first.
	initech := strings.Index(prompt, "Initech")
	acme := strings.Index(prompt, "Acme")
	require.Greater(t, initech, -1)
	require.Greater(t, acme, -1)
	assert.Less(t, initech, acme)
}

func TestCompileDraftPrompt_Placeholders(t *testing.T) {
	prompt := CompileDraftPrompt(types.Profile{}, nil, "", "")

	assert.Contains(t, prompt, "Not provided")
	assert.NotContains(t, prompt, "Target Job Description")
	assert.NotContains(t, prompt, "User's specific instruction")
}

func TestCompileDraftPrompt_EmptyResponsibilities(t *testing.T) {
	profile := types.Profile{
		FullName:   "Jane Doe",
		JobHistory: []types.Job{{Title: "Engineer", Company: "Acme", StartDate: "2021-01"}},
	}

	prompt := CompileDraftPrompt(profile, nil, "", "")
	assert.Contains(t, prompt, "Contributed to team objectives in this role")
}

func TestCompileCritiquePrompt(t *testing.T) {
	prompt := CompileCritiquePrompt("The draft text.", sampleRules(), "Backend role")

	assert.Contains(t, prompt, "The draft text.")
	assert.Contains(t, prompt, "Backend role")
	assert.Contains(t, prompt, "rule_1", "rule identities go in so the critique can reference them")
	assert.NotContains(t, prompt, "rule_4", "inactive rules are not critique context")
}

func TestCompileRefinementPrompt(t *testing.T) {
	issues := []types.CritiqueIssue{
		{Category: types.CategoryStylistic, Severity: "low", Description: "Too wordy.",
			SuggestedAction: "Shorten the summary."},
		{Category: types.CategoryRuleViolation, Severity: "high", Description: "Mentions the internship.",
			RelevantRuleID: "rule_2"},
	}

	prompt := CompileRefinementPrompt("Previous draft.", issues, sampleProfile(), sampleRules(), "")

	assert.Contains(t, prompt, "Previous draft.")
	assert.Contains(t, prompt, "1. [Stylistic, severity: low] Too wordy.")
	assert.Contains(t, prompt, "Shorten the summary.")
	assert.Contains(t, prompt, "(violates rule rule_2)")
	assert.Contains(t, prompt, "Jane Doe", "profile is restated as ground truth")
}

func TestCompileFeedbackPrompt_IncludesInactiveRules(t *testing.T) {
	prompt := CompileFeedbackPrompt("Don't use tables.", sampleProfile(), sampleRules())

	assert.Contains(t, prompt, "Don't use tables.")
	assert.Contains(t, prompt, "rule_4", "the interpreter may target inactive rules, so the full list goes in")
}

func TestCompileFeedbackPrompt_EmptyRules(t *testing.T) {
	prompt := CompileFeedbackPrompt("comment", types.Profile{}, nil)
	assert.Contains(t, prompt, "[]")
}

func TestCompileExtractionPrompt(t *testing.T) {
	prompt := CompileExtractionPrompt("JANE DOE\nSoftware Engineer")
	assert.Contains(t, prompt, "JANE DOE")
}

func TestCompileSuggestionsPrompt(t *testing.T) {
	withJD := CompileSuggestionsPrompt(sampleProfile(), sampleRules(), "Backend role")
	withoutJD := CompileSuggestionsPrompt(sampleProfile(), sampleRules(), "")

	assert.Contains(t, withJD, "Backend role")
	assert.NotContains(t, withoutJD, "Backend role")
}
