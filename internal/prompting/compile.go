// Package prompting renders the prompt kinds used by the resume pipeline.
// Every compile function is pure and deterministic: typed data in, one prompt
// string out, no I/O.
package prompting

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-agent/internal/prompts"
	"github.com/jonathan/resume-agent/internal/types"
)

const notProvided = "Not provided"

// placeholderResponsibility stands in when a job lists no responsibilities,
// so the model expands something instead of emitting an empty section.
const placeholderResponsibility = "Contributed to team objectives in this role"

// CompileDraftPrompt renders the resume draft prompt from the candidate's
// profile, the active rules, an optional free-text instruction, and an
// optional target job description.
func CompileDraftPrompt(profile types.Profile, rules []types.Rule, freeInstruction, jobDescription string) string {
	var sb strings.Builder

	sb.WriteString(prompts.MustGet("resume.json", "base-instructions"))
	sb.WriteString("\n\nHere is the candidate's core information:\n")
	writeProfileSections(&sb, profile)

	if freeInstruction != "" {
		sb.WriteString("\nUser's specific instruction for this generation: ")
		sb.WriteString(freeInstruction)
		sb.WriteString("\n")
	}

	if jobDescription != "" {
		sb.WriteString("\nTarget Job Description (emphasize relevant skills/experience): ")
		sb.WriteString(jobDescription)
		sb.WriteString("\n")
		sb.WriteString(prompts.MustGet("resume.json", "jd-alignment"))
		sb.WriteString("\n")
	}

	writeRuleSections(&sb, rules)

	sb.WriteString("\n")
	sb.WriteString(prompts.MustGet("resume.json", "draft-closing"))

	return sb.String()
}

// CompileCritiquePrompt renders the critique prompt for a draft.
func CompileCritiquePrompt(draftText string, rules []types.Rule, jobDescription string) string {
	var sb strings.Builder

	sb.WriteString(prompts.MustGet("resume.json", "critique-intro"))
	sb.WriteString("\n\n")

	writeRulesAsJSON(&sb, rules)

	if jobDescription != "" {
		sb.WriteString("Target job description:\n")
		sb.WriteString(jobDescription)
		sb.WriteString("\n\n")
	}

	sb.WriteString("Resume draft to critique:\n\"\"\"\n")
	sb.WriteString(draftText)
	sb.WriteString("\n\"\"\"\n\n")

	sb.WriteString(prompts.MustGet("resume.json", "critique-format"))

	return sb.String()
}

// CompileRefinementPrompt renders the refinement prompt: the previous draft,
// every critique issue as a mandatory fix, and the profile and rules restated
// as ground truth.
func CompileRefinementPrompt(previousDraft string, issues []types.CritiqueIssue, profile types.Profile, rules []types.Rule, jobDescription string) string {
	var sb strings.Builder

	sb.WriteString(prompts.MustGet("resume.json", "refinement-intro"))
	sb.WriteString("\n\nIssues that MUST all be fixed:\n")
	for i, issue := range issues {
		sb.WriteString(fmt.Sprintf("%d. [%s, severity: %s] %s", i+1, issue.Category, issue.Severity, issue.Description))
		if issue.SuggestedAction != "" {
			sb.WriteString(" Suggested action: ")
			sb.WriteString(issue.SuggestedAction)
		}
		if issue.RelevantRuleID != "" {
			sb.WriteString(fmt.Sprintf(" (violates rule %s)", issue.RelevantRuleID))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\nPrevious draft:\n\"\"\"\n")
	sb.WriteString(previousDraft)
	sb.WriteString("\n\"\"\"\n")

	sb.WriteString("\nGround truth candidate information:\n")
	writeProfileSections(&sb, profile)
	writeRuleSections(&sb, rules)

	if jobDescription != "" {
		sb.WriteString("\nTarget Job Description (emphasize relevant skills/experience): ")
		sb.WriteString(jobDescription)
		sb.WriteString("\n")
	}

	return sb.String()
}

// CompileSuggestionsPrompt renders the proactive-suggestions prompt.
func CompileSuggestionsPrompt(profile types.Profile, rules []types.Rule, jobDescription string) string {
	var sb strings.Builder

	sb.WriteString(prompts.MustGet("resume.json", "suggestions-intro"))
	sb.WriteString("\n\nCandidate profile data:\n")
	writeProfileSections(&sb, profile)

	writeRulesAsJSON(&sb, rules)

	if jobDescription != "" {
		sb.WriteString("Target job description to tailor suggestions toward:\n")
		sb.WriteString(jobDescription)
		sb.WriteString("\n\n")
	}

	sb.WriteString(prompts.MustGet("resume.json", "suggestions-format"))

	return sb.String()
}

// CompileExtractionPrompt renders the profile-extraction prompt for raw
// resume text.
func CompileExtractionPrompt(rawResumeText string) string {
	var sb strings.Builder

	sb.WriteString(prompts.MustGet("resume.json", "extraction-intro"))
	sb.WriteString("\n\nRaw resume text:\n\"\"\"\n")
	sb.WriteString(rawResumeText)
	sb.WriteString("\n\"\"\"\n\n")
	sb.WriteString(prompts.MustGet("resume.json", "extraction-format"))

	return sb.String()
}

// CompileFeedbackPrompt renders the structured-extraction prompt the feedback
// interpreter sends for one feedback comment. The current profile and rules
// are embedded as JSON context.
func CompileFeedbackPrompt(comment string, profile types.Profile, rules []types.Rule) string {
	var sb strings.Builder

	sb.WriteString(prompts.MustGet("resume.json", "feedback-intro"))

	profileJSON, _ := json.MarshalIndent(profile, "", "  ")
	sb.WriteString("\n\nCurrent profile data (JSON):\n")
	sb.Write(profileJSON)
	sb.WriteString("\n\n")

	// The interpreter may update or remove any rule, inactive ones included,
	// so the full list goes in rather than just the active subset.
	sb.WriteString("Current learned rules (JSON):\n")
	if len(rules) == 0 {
		sb.WriteString("[]\n\n")
	} else {
		rulesJSON, _ := json.MarshalIndent(rules, "", "  ")
		sb.Write(rulesJSON)
		sb.WriteString("\n\n")
	}

	sb.WriteString("User feedback comment:\n\"\"\"\n")
	sb.WriteString(comment)
	sb.WriteString("\n\"\"\"\n\n")

	sb.WriteString(prompts.MustGet("resume.json", "feedback-format"))

	return sb.String()
}

// writeProfileSections serializes the profile into prompt sections. Missing
// fields render as explicit "Not provided" placeholders rather than being
// omitted, so the model cannot hallucinate structure from absence.
func writeProfileSections(sb *strings.Builder, profile types.Profile) {
	sb.WriteString("- Full Name: ")
	sb.WriteString(orPlaceholder(profile.FullName))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("- Contact: Email: %s, Phone: %s, Link: %s\n",
		orPlaceholder(profile.Email), orPlaceholder(profile.Phone), orPlaceholder(profile.Link)))

	if profile.YearsOfExperience > 0 {
		sb.WriteString(fmt.Sprintf("- Total Years of Experience: %d years\n", profile.YearsOfExperience))
	} else {
		sb.WriteString("- Total Years of Experience: Not provided\n")
	}

	sb.WriteString("\n- Job History (most recent first; expand each job's raw responsibilities into 3-5 quantified bullet points with strong action verbs):\n")
	jobs := profile.JobsByRecency()
	if len(jobs) == 0 {
		sb.WriteString("  Not provided\n")
	}
	for _, job := range jobs {
		responsibilities := job.Responsibilities
		if len(responsibilities) == 0 {
			responsibilities = []string{placeholderResponsibility}
		}
		sb.WriteString(fmt.Sprintf("  * %s at %s (%s): %s\n",
			orPlaceholder(job.Title), orPlaceholder(job.Company),
			formatDates(job.StartDate, job.EndDate),
			strings.Join(responsibilities, "; ")))
	}

	sb.WriteString("\n- Education:\n")
	if len(profile.Education) == 0 {
		sb.WriteString("  Not provided\n")
	}
	for _, edu := range profile.Education {
		sb.WriteString(fmt.Sprintf("  * %s in %s from %s (%s)",
			orPlaceholder(edu.Degree), orPlaceholder(edu.Major),
			orPlaceholder(edu.Institution), formatDates(edu.StartDate, edu.EndDate)))
		if edu.Description != "" {
			sb.WriteString(": ")
			sb.WriteString(edu.Description)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n- Skills: ")
	sb.WriteString(orPlaceholderList(profile.Skills))
	sb.WriteString("\n- Certifications: ")
	sb.WriteString(orPlaceholderList(profile.Certifications))
	sb.WriteString("\n")

	sb.WriteString("\n- Projects:\n")
	if len(profile.Projects) == 0 {
		sb.WriteString("  Not provided\n")
	}
	for _, proj := range profile.Projects {
		sb.WriteString(fmt.Sprintf("  * %s: %s\n", orPlaceholder(proj.Name), orPlaceholder(proj.Description)))
	}
}

// writeRuleSections appends the active rules partitioned by type: stylistic
// rules as guidelines, exclusions as a hard do-not-mention list, inclusions
// as a hard must-highlight list.
func writeRuleSections(sb *strings.Builder, rules []types.Rule) {
	var stylistic, exclusion, inclusion []string

	for _, rule := range types.ActiveRules(rules) {
		if rule.Rule == "" {
			continue
		}
		switch types.NormalizeRuleType(string(rule.Type)) {
		case types.RuleExclusion:
			exclusion = append(exclusion, rule.Rule)
		case types.RuleInclusion:
			inclusion = append(inclusion, rule.Rule)
		default:
			stylistic = append(stylistic, rule.Rule)
		}
	}

	writeRuleList(sb, "rules-stylistic-header", stylistic)
	writeRuleList(sb, "rules-exclusion-header", exclusion)
	writeRuleList(sb, "rules-inclusion-header", inclusion)
}

func writeRuleList(sb *strings.Builder, headerKey string, rules []string) {
	if len(rules) == 0 {
		return
	}
	sb.WriteString("\n")
	sb.WriteString(prompts.MustGet("resume.json", headerKey))
	sb.WriteString("\n")
	for _, rule := range rules {
		sb.WriteString("- ")
		sb.WriteString(rule)
		sb.WriteString("\n")
	}
}

// writeRulesAsJSON embeds the full rule list (including ids) as JSON context
// for prompts whose output may reference rules by identity.
func writeRulesAsJSON(sb *strings.Builder, rules []types.Rule) {
	active := types.ActiveRules(rules)
	sb.WriteString("Current learned rules (JSON):\n")
	if len(active) == 0 {
		sb.WriteString("[]\n\n")
		return
	}
	rulesJSON, _ := json.MarshalIndent(active, "", "  ")
	sb.Write(rulesJSON)
	sb.WriteString("\n\n")
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return notProvided
	}
	return s
}

func orPlaceholderList(items []string) string {
	if len(items) == 0 {
		return notProvided
	}
	return strings.Join(items, ", ")
}

func formatDates(start, end string) string {
	if start == "" && end == "" {
		return "dates not provided"
	}
	if end == "" {
		end = "present"
	}
	if start == "" {
		start = "unknown"
	}
	return start + " - " + end
}
