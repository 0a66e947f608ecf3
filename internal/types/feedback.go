package types

import "encoding/json"

// FeedbackItem is one piece of free-text user feedback on a generated resume.
type FeedbackItem struct {
	Section        string `json:"section"`
	Text           string `json:"text"`
	Comment        string `json:"comment"`
	IsPositive     bool   `json:"is_positive"`
	HighlightRange []int  `json:"highlight_range,omitempty"`
}

// ResumeFeedback is a batch of feedback items against one draft. Items are
// processed sequentially; each sees the accumulated effect of prior items.
type ResumeFeedback struct {
	ResumeVersionID string         `json:"resume_version_id"`
	FeedbackItems   []FeedbackItem `json:"feedback_items"`
}

// RuleMutationAction is the closed set of rule mutations the feedback
// interpreter may emit.
type RuleMutationAction string

const (
	RuleAdd    RuleMutationAction = "add"
	RuleUpdate RuleMutationAction = "update"
	RuleRemove RuleMutationAction = "remove"
)

// RuleMutation is one rule change extracted from a feedback comment.
// For "add", ID is empty and the store assigns one. For "update" and
// "remove", ID addresses an existing rule; unknown identities are no-ops.
type RuleMutation struct {
	Action RuleMutationAction `json:"action"`
	ID     string             `json:"id,omitempty"`
	Rule   string             `json:"rule,omitempty"`
	Type   string             `json:"type,omitempty"`
	Active *bool              `json:"active,omitempty"`
}

// ProfileUpdates carries factual core-data changes extracted from feedback.
// Scalar pointers overwrite when non-nil; skill lists merge by exact string
// match; the *_add lists append wholesale.
//
// The update/remove variants for jobs, education, and projects are accepted
// into the schema the model produces but are not applied in this generation
// of the design; they are logged and skipped.
type ProfileUpdates struct {
	FullName          *string `json:"full_name,omitempty"`
	Email             *string `json:"email,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	Link              *string `json:"link,omitempty"`
	YearsOfExperience *int    `json:"years_of_experience,omitempty"`

	SkillsAdd    []string `json:"skills_add,omitempty"`
	SkillsRemove []string `json:"skills_remove,omitempty"`

	JobHistoryAdd []Job       `json:"job_history_add,omitempty"`
	EducationAdd  []Education `json:"education_add,omitempty"`
	ProjectsAdd   []Project   `json:"projects_add,omitempty"`

	// Accepted but unsupported; kept so their presence can be logged rather
	// than silently dropped.
	JobHistoryUpdate json.RawMessage `json:"job_history_update,omitempty"`
	JobHistoryRemove json.RawMessage `json:"job_history_remove,omitempty"`
	EducationUpdate  json.RawMessage `json:"education_update,omitempty"`
	EducationRemove  json.RawMessage `json:"education_remove,omitempty"`
	ProjectsUpdate   json.RawMessage `json:"projects_update,omitempty"`
	ProjectsRemove   json.RawMessage `json:"projects_remove,omitempty"`
}

// FeedbackUpdate is the full structured payload the interpreter asks the
// model to emit for one feedback comment.
type FeedbackUpdate struct {
	Rules           []RuleMutation `json:"rules"`
	CoreDataUpdates ProfileUpdates `json:"core_data_updates"`
}
