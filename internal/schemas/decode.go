// Package schemas validates every JSON payload the model returns and decodes
// it into a typed value. Model output is untrusted external input: each
// decode either yields a schema-valid typed value or the payload kind's
// documented fallback. Nothing here panics or returns loosely-typed maps.
package schemas

import (
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-agent/internal/types"
)

//go:embed *.json
var schemaFiles embed.FS

// ValidationError aggregates the field-level failures of one payload.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single validation failure at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// validate checks a JSON document against one of the embedded schemas.
func validate(schemaName, document string) error {
	schemaContent, err := schemaFiles.ReadFile(schemaName)
	if err != nil {
		return fmt.Errorf("failed to read embedded schema %s: %w", schemaName, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaContent),
		gojsonschema.NewStringLoader(document),
	)
	if err != nil {
		return fmt.Errorf("schema validation failed to run: %w", err)
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}

// DecodeCritique parses a sanitized critique payload. On any parse or schema
// failure it returns a synthesized critique carrying a single "Error" issue
// with HasIssues forced false, so the refinement loop terminates instead of
// chasing unusable critiques. On success HasIssues is recomputed from the
// issue list; the model's own flag is never trusted.
func DecodeCritique(raw string) types.ResumeCritique {
	if err := validate("critique.json", raw); err != nil {
		log.Printf("schemas: critique payload rejected: %v", err)
		return errorCritique(err)
	}

	var critique types.ResumeCritique
	if err := json.Unmarshal([]byte(raw), &critique); err != nil {
		log.Printf("schemas: critique payload unmarshal failed: %v", err)
		return errorCritique(err)
	}

	critique.Recompute()
	return critique
}

func errorCritique(cause error) types.ResumeCritique {
	return types.ResumeCritique{
		Issues: []types.CritiqueIssue{
			{
				Category:    types.CategoryError,
				Severity:    "high",
				Description: fmt.Sprintf("The critique response could not be parsed: %v", cause),
			},
		},
		OverallAssessment: "Critique unavailable: the model did not return a valid critique payload.",
		// Forced false so the loop stops rather than refining against an
		// unusable critique.
		HasIssues: false,
	}
}

// DecodeSuggestions parses a sanitized suggestions payload. On failure it
// returns an empty suggestion list with an error message.
func DecodeSuggestions(raw string) types.SuggestionsResponse {
	if err := validate("suggestions.json", raw); err != nil {
		log.Printf("schemas: suggestions payload rejected: %v", err)
		return types.SuggestionsResponse{
			Suggestions: []types.SuggestionItem{},
			Message:     "Suggestions unavailable: the model did not return a valid suggestion list.",
		}
	}

	var suggestions []types.SuggestionItem
	if err := json.Unmarshal([]byte(raw), &suggestions); err != nil {
		log.Printf("schemas: suggestions payload unmarshal failed: %v", err)
		return types.SuggestionsResponse{
			Suggestions: []types.SuggestionItem{},
			Message:     "Suggestions unavailable: the model did not return a valid suggestion list.",
		}
	}

	return types.SuggestionsResponse{
		Suggestions: suggestions,
		Message:     "Suggestions generated successfully.",
	}
}

// DecodeFeedbackUpdate parses a sanitized feedback-interpretation payload.
// On failure it returns an empty mutation set and false, so feedback
// processing degrades to a no-op instead of failing the batch.
func DecodeFeedbackUpdate(raw string) (types.FeedbackUpdate, bool) {
	empty := types.FeedbackUpdate{Rules: []types.RuleMutation{}}

	if err := validate("feedback_update.json", raw); err != nil {
		log.Printf("schemas: feedback update payload rejected: %v", err)
		return empty, false
	}

	var update types.FeedbackUpdate
	if err := json.Unmarshal([]byte(raw), &update); err != nil {
		log.Printf("schemas: feedback update payload unmarshal failed: %v", err)
		return empty, false
	}
	if update.Rules == nil {
		update.Rules = []types.RuleMutation{}
	}

	return update, true
}

// DecodeProfile parses a sanitized extracted-profile payload. On failure it
// returns a zero profile and false.
func DecodeProfile(raw string) (types.Profile, bool) {
	if err := validate("profile.json", raw); err != nil {
		log.Printf("schemas: extracted profile payload rejected: %v", err)
		return types.Profile{}, false
	}

	var profile types.Profile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		log.Printf("schemas: extracted profile unmarshal failed: %v", err)
		return types.Profile{}, false
	}

	return profile, true
}
