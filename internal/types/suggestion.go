package types

// SuggestionItem is a single proactive improvement suggestion, generated
// outside the refinement loop and never persisted.
type SuggestionItem struct {
	Category      string `json:"category"`
	Suggestion    string `json:"suggestion"`
	ActionType    string `json:"action_type,omitempty"`
	RelevantField string `json:"relevant_field,omitempty"`
}

// SuggestionsResponse wraps a suggestion list with a human-readable status
// message.
type SuggestionsResponse struct {
	Suggestions []SuggestionItem `json:"suggestions"`
	Message     string           `json:"message"`
}
