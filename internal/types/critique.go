package types

// IssueCategory is the closed set of critique issue categories the model may
// report.
type IssueCategory string

// Issue categories. "Error" is reserved for synthesized critiques when the
// model's critique payload could not be parsed.
const (
	CategoryRuleViolation    IssueCategory = "Rule Violation"
	CategoryStylistic        IssueCategory = "Stylistic"
	CategoryContentGap       IssueCategory = "Content Gap"
	CategoryJDMismatch       IssueCategory = "Target JD Mismatch"
	CategoryBestPractice     IssueCategory = "Best Practice"
	CategoryQuantification   IssueCategory = "Quantification"
	CategoryImpact           IssueCategory = "Impact vs. Responsibility"
	CategoryGenericPhrases   IssueCategory = "Generic Phrases"
	CategoryActionVerbs      IssueCategory = "Action Verbs"
	CategoryConciseness      IssueCategory = "Conciseness"
	CategoryATSRelevance     IssueCategory = "ATS/JD Relevance"
	CategoryError            IssueCategory = "Error"
	CategoryOther            IssueCategory = "Other"
)

// CritiqueIssue is a single problem found in a draft.
type CritiqueIssue struct {
	Category        IssueCategory `json:"category"`
	Severity        string        `json:"severity"` // low | medium | high
	Description     string        `json:"description"`
	SuggestedAction string        `json:"suggested_action,omitempty"`
	RelevantRuleID  string        `json:"relevant_rule_id,omitempty"`
}

// ResumeCritique is the structured evaluation of one draft against the rule
// set and resume best practices.
type ResumeCritique struct {
	Issues            []CritiqueIssue `json:"issues"`
	OverallAssessment string          `json:"overall_assessment"`
	HasIssues         bool            `json:"has_issues"`
}

// Recompute sets HasIssues from the issue list. The flag reported by the
// model is never trusted.
func (c *ResumeCritique) Recompute() {
	c.HasIssues = len(c.Issues) > 0
}
