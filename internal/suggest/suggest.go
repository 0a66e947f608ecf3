// Package suggest produces proactive improvement suggestions for a profile,
// optionally aimed at a target job description.
package suggest

import (
	"context"

	"github.com/jonathan/resume-agent/internal/llm"
	"github.com/jonathan/resume-agent/internal/prompting"
	"github.com/jonathan/resume-agent/internal/schemas"
	"github.com/jonathan/resume-agent/internal/types"
)

// Suggester generates suggestion lists through the gateway.
type Suggester struct {
	gateway llm.Gateway
}

// NewSuggester wires a suggester to its gateway.
func NewSuggester(gateway llm.Gateway) *Suggester {
	return &Suggester{gateway: gateway}
}

// Suggest asks for improvement suggestions against the profile and active
// rules. It never fails: unusable model output degrades to an empty list with
// an explanatory message.
func (s *Suggester) Suggest(ctx context.Context, profile types.Profile, rules []types.Rule, jobDescription string) types.SuggestionsResponse {
	prompt := prompting.CompileSuggestionsPrompt(profile, rules, jobDescription)
	raw := s.gateway.Generate(ctx, prompt, llm.StructuredOptions)
	return schemas.DecodeSuggestions(llm.Sanitize(raw))
}
