package llm

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Sentinel strings returned in place of model output when generation fails.
// Callers that expect JSON treat these as parse failures; they are never
// mistaken for resume prose by downstream consumers because every JSON
// consumer validates its payload.
const (
	SentinelBlocked = "Content generation blocked due to safety concerns with the prompt."
	SentinelEmpty   = "No text generated or response blocked."
	sentinelPrefix  = "Error: "
)

// IsSentinel reports whether text is one of the gateway's failure sentinels.
func IsSentinel(text string) bool {
	return text == SentinelBlocked || text == SentinelEmpty || strings.HasPrefix(text, sentinelPrefix)
}

// Gateway is the boundary abstraction over the external text-generation
// capability. Generate never returns an error: blocked or failed calls
// degrade to a sentinel string so the calling pipeline stays bounded.
type Gateway interface {
	Generate(ctx context.Context, prompt string, opts Options) string
	Close() error
}

// GeminiGateway implements Gateway on top of Google Gemini.
type GeminiGateway struct {
	client *genai.Client
	config *Config
}

// NewGeminiGateway creates a gateway backed by the Gemini API.
func NewGeminiGateway(ctx context.Context, config *Config, apiKey string) (*GeminiGateway, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultConfig()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGateway{client: client, config: config}, nil
}

// Generate produces text from a prompt with the given sampling controls.
// Transport and policy failures are converted to sentinel strings.
func (g *GeminiGateway) Generate(ctx context.Context, prompt string, opts Options) string {
	modelName := g.config.GetModel(opts.Tier)
	if modelName == "" {
		return sentinelPrefix + "no model configured for tier " + string(opts.Tier)
	}

	model := g.client.GenerativeModel(modelName)
	model.SetTemperature(opts.Temperature)
	if opts.MaxTokens > 0 {
		model.SetMaxOutputTokens(opts.MaxTokens)
	}
	// Resume content trips safety filters surprisingly often (security roles,
	// defense industry experience), so relax the thresholds.
	model.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockNone},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("llm: generation failed: %v", err)
		return sentinelPrefix + err.Error()
	}

	text, ok := extractText(resp)
	if !ok {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
			log.Printf("llm: prompt blocked: %v", resp.PromptFeedback.BlockReason)
			return SentinelBlocked
		}
		return SentinelEmpty
	}

	return strings.TrimSpace(text)
}

// Close releases resources held by the underlying client.
func (g *GeminiGateway) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// extractText joins the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) (string, bool) {
	if len(resp.Candidates) == 0 {
		return "", false
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", false
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", false
	}

	return strings.Join(parts, ""), true
}
