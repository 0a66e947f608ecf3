// Package refine runs the bounded generate/critique/refine loop that turns a
// profile and rule set into a finished resume draft.
package refine

import (
	"context"
	"log"

	"github.com/jonathan/resume-agent/internal/llm"
	"github.com/jonathan/resume-agent/internal/prompting"
	"github.com/jonathan/resume-agent/internal/schemas"
	"github.com/jonathan/resume-agent/internal/types"
)

// DefaultMaxIterations bounds the number of refinement passes after the
// initial generation. With the default of 2 the loop makes at most 3
// generation calls and 3 critique calls.
const DefaultMaxIterations = 2

// Request carries everything one loop run needs.
type Request struct {
	Profile         types.Profile
	Rules           []types.Rule
	FreeInstruction string
	JobDescription  string
	MaxIterations   int // 0 means DefaultMaxIterations
}

// Result is the outcome of one loop run.
type Result struct {
	Content      string
	Critique     *types.ResumeCritique
	Iterations   int // refinement passes actually performed
	Generations  int
	CritiqueRuns int
}

// Orchestrator drives the loop against a gateway.
type Orchestrator struct {
	gateway llm.Gateway
}

// NewOrchestrator wires an orchestrator to its gateway.
func NewOrchestrator(gateway llm.Gateway) *Orchestrator {
	return &Orchestrator{gateway: gateway}
}

// Run generates an initial draft, then alternates critique and refinement
// until the critique is clean, the critique is unusable, the draft comes
// back as a failure sentinel, or the iteration budget runs out. The returned
// content is always the latest draft text, sentinel or not; callers decide
// whether a sentinel is an error for their surface.
func (o *Orchestrator) Run(ctx context.Context, req Request) Result {
	maxIterations := req.MaxIterations
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}

	var result Result

	prompt := prompting.CompileDraftPrompt(req.Profile, req.Rules, req.FreeInstruction, req.JobDescription)
	result.Content = o.gateway.Generate(ctx, prompt, llm.DraftOptions)
	result.Generations++

	if llm.IsSentinel(result.Content) {
		log.Printf("refine: initial generation failed: %s", result.Content)
		return result
	}

	for i := 0; i <= maxIterations; i++ {
		critique := o.critique(ctx, result.Content, req.Rules, req.JobDescription)
		result.CritiqueRuns++
		result.Critique = &critique

		if !critique.HasIssues {
			return result
		}
		if i == maxIterations {
			log.Printf("refine: iteration budget exhausted with %d open issues", len(critique.Issues))
			return result
		}

		refinePrompt := prompting.CompileRefinementPrompt(result.Content, critique.Issues, req.Profile, req.Rules, req.JobDescription)
		refined := o.gateway.Generate(ctx, refinePrompt, llm.DraftOptions)
		result.Generations++

		if llm.IsSentinel(refined) {
			// Keep the last good draft rather than surfacing the sentinel.
			log.Printf("refine: refinement pass %d failed: %s", i+1, refined)
			return result
		}

		result.Content = refined
		result.Iterations++
	}

	return result
}

// critique runs one critique pass over the current draft. Parse failures come
// back as the synthesized error critique with HasIssues false, which the
// caller treats as a stop condition.
func (o *Orchestrator) critique(ctx context.Context, draft string, rules []types.Rule, jobDescription string) types.ResumeCritique {
	prompt := prompting.CompileCritiquePrompt(draft, rules, jobDescription)
	raw := o.gateway.Generate(ctx, prompt, llm.StructuredOptions)
	return schemas.DecodeCritique(llm.Sanitize(raw))
}
