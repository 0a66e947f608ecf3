package ingestion

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-agent/internal/llm"
	"github.com/jonathan/resume-agent/internal/profile"
	"github.com/jonathan/resume-agent/internal/prompting"
	"github.com/jonathan/resume-agent/internal/schemas"
	"github.com/jonathan/resume-agent/internal/types"
)

// Extractor converts resume text into a structured profile via the model.
type Extractor struct {
	gateway llm.Gateway
}

// NewExtractor wires an extractor to its gateway.
func NewExtractor(gateway llm.Gateway) *Extractor {
	return &Extractor{gateway: gateway}
}

// ExtractProfile asks the model to structure raw resume text into a profile.
func (e *Extractor) ExtractProfile(ctx context.Context, rawText string) (types.Profile, error) {
	if rawText == "" {
		return types.Profile{}, fmt.Errorf("resume text is empty")
	}

	prompt := prompting.CompileExtractionPrompt(rawText)
	raw := e.gateway.Generate(ctx, prompt, llm.StructuredOptions)

	extracted, ok := schemas.DecodeProfile(llm.Sanitize(raw))
	if !ok {
		return types.Profile{}, fmt.Errorf("could not extract a structured profile from the resume text")
	}
	return extracted, nil
}

// IngestFile runs the full upload path: extract text from the file bytes,
// structure it, and merge the result into the existing profile.
func (e *Extractor) IngestFile(ctx context.Context, existing types.Profile, data []byte, fileType string) (types.Profile, error) {
	text, err := ExtractText(data, fileType)
	if err != nil {
		return types.Profile{}, err
	}

	extracted, err := e.ExtractProfile(ctx, text)
	if err != nil {
		return types.Profile{}, err
	}

	return profile.Merge(existing, extracted), nil
}
