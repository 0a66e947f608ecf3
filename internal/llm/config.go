// Package llm provides the gateway abstraction over the external
// text-generation capability.
package llm

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: extraction, classification
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: critique, structured output
	TierStandard ModelTier = "standard"
	// TierAdvanced is for complex reasoning: drafting, refinement
	TierAdvanced ModelTier = "advanced"
)

// Config holds the model configuration for the application
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model configuration
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// Options controls sampling and length for a single generation call.
type Options struct {
	Tier        ModelTier
	Temperature float32 // [0,1]; 0 for structured-JSON prompts
	MaxTokens   int32
}

// Sampling presets observed across the prompt kinds. Structured-JSON prompts
// run at temperature 0; free-text drafting runs warmer.
var (
	// DraftOptions is used for resume draft and refinement generation.
	DraftOptions = Options{Tier: TierAdvanced, Temperature: 0.7, MaxTokens: 4096}
	// StructuredOptions is used for critique, suggestions, and profile
	// extraction prompts.
	StructuredOptions = Options{Tier: TierStandard, Temperature: 0, MaxTokens: 2048}
	// FeedbackOptions is used for feedback interpretation; the output nests
	// JSON so it gets a generous token budget.
	FeedbackOptions = Options{Tier: TierStandard, Temperature: 0.1, MaxTokens: 1024}
)
