package refine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-agent/internal/llm"
	"github.com/jonathan/resume-agent/internal/types"
)

const (
	cleanCritique = `{"issues": [], "overall_assessment": "Looks good.", "has_issues": false}`
	issueCritique = `{"issues": [{"category": "Stylistic", "severity": "low", "description": "Too wordy."}],
		"overall_assessment": "Needs work.", "has_issues": true}`
)

// fakeGateway scripts draft and critique responses. Draft calls are told
// apart from critique calls by their sampling options.
type fakeGateway struct {
	drafts    []string
	critiques []string

	draftCalls    int
	critiqueCalls int
}

func (f *fakeGateway) Generate(_ context.Context, _ string, opts llm.Options) string {
	if opts == llm.DraftOptions {
		response := f.drafts[min(f.draftCalls, len(f.drafts)-1)]
		f.draftCalls++
		return response
	}
	response := f.critiques[min(f.critiqueCalls, len(f.critiques)-1)]
	f.critiqueCalls++
	return response
}

func (f *fakeGateway) Close() error { return nil }

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func testRequest() Request {
	return Request{
		Profile: types.Profile{FullName: "Jane Doe", Skills: []string{"Go"}},
	}
}

func TestRun_CleanFirstCritique(t *testing.T) {
	gateway := &fakeGateway{
		drafts:    []string{"Draft v1"},
		critiques: []string{cleanCritique},
	}

	result := NewOrchestrator(gateway).Run(context.Background(), testRequest())

	assert.Equal(t, "Draft v1", result.Content)
	assert.Equal(t, 1, result.Generations)
	assert.Equal(t, 1, result.CritiqueRuns)
	assert.Equal(t, 0, result.Iterations)
	require.NotNil(t, result.Critique)
	assert.False(t, result.Critique.HasIssues)
}

func TestRun_RefinesUntilClean(t *testing.T) {
	gateway := &fakeGateway{
		drafts:    []string{"Draft v1", "Draft v2"},
		critiques: []string{issueCritique, cleanCritique},
	}

	result := NewOrchestrator(gateway).Run(context.Background(), testRequest())

	assert.Equal(t, "Draft v2", result.Content)
	assert.Equal(t, 2, result.Generations)
	assert.Equal(t, 2, result.CritiqueRuns)
	assert.Equal(t, 1, result.Iterations)
	assert.False(t, result.Critique.HasIssues)
}

func TestRun_IterationBudgetExhausted(t *testing.T) {
	gateway := &fakeGateway{
		drafts:    []string{"Draft v1", "Draft v2", "Draft v3"},
		critiques: []string{issueCritique}, // always has issues
	}

	result := NewOrchestrator(gateway).Run(context.Background(), testRequest())

	// Default budget of 2 refinements: 3 generations and 3 critiques total.
	assert.Equal(t, "Draft v3", result.Content)
	assert.Equal(t, 3, result.Generations)
	assert.Equal(t, 3, result.CritiqueRuns)
	assert.Equal(t, 2, result.Iterations)
	assert.True(t, result.Critique.HasIssues, "the last critique still reports the open issues")
}

func TestRun_MalformedCritiqueStopsLoop(t *testing.T) {
	gateway := &fakeGateway{
		drafts:    []string{"Draft v1"},
		critiques: []string{"I cannot critique this."},
	}

	result := NewOrchestrator(gateway).Run(context.Background(), testRequest())

	assert.Equal(t, "Draft v1", result.Content)
	assert.Equal(t, 1, result.Generations)
	assert.Equal(t, 1, result.CritiqueRuns)
	require.NotNil(t, result.Critique)
	require.Len(t, result.Critique.Issues, 1)
	assert.Equal(t, types.CategoryError, result.Critique.Issues[0].Category)
	assert.False(t, result.Critique.HasIssues)
}

func TestRun_InitialDraftSentinel(t *testing.T) {
	gateway := &fakeGateway{
		drafts:    []string{llm.SentinelBlocked},
		critiques: []string{cleanCritique},
	}

	result := NewOrchestrator(gateway).Run(context.Background(), testRequest())

	assert.Equal(t, llm.SentinelBlocked, result.Content)
	assert.Equal(t, 1, result.Generations)
	assert.Equal(t, 0, result.CritiqueRuns, "a failed initial draft is never critiqued")
	assert.Nil(t, result.Critique)
}

func TestRun_RefinementSentinelKeepsLastDraft(t *testing.T) {
	gateway := &fakeGateway{
		drafts:    []string{"Draft v1", llm.SentinelEmpty},
		critiques: []string{issueCritique},
	}

	result := NewOrchestrator(gateway).Run(context.Background(), testRequest())

	assert.Equal(t, "Draft v1", result.Content, "failed refinement falls back to the previous draft")
	assert.Equal(t, 2, result.Generations)
	assert.Equal(t, 1, result.CritiqueRuns)
	assert.Equal(t, 0, result.Iterations)
}

func TestRun_CustomIterationBudget(t *testing.T) {
	gateway := &fakeGateway{
		drafts:    []string{"Draft v1", "Draft v2"},
		critiques: []string{issueCritique},
	}

	req := testRequest()
	req.MaxIterations = 1
	result := NewOrchestrator(gateway).Run(context.Background(), req)

	assert.Equal(t, "Draft v2", result.Content)
	assert.Equal(t, 2, result.Generations)
	assert.Equal(t, 2, result.CritiqueRuns)
}
