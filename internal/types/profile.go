// Package types provides type definitions for structured data used throughout the resume-agent system.
package types

import "sort"

// Job is one entry in the candidate's work history.
type Job struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	StartDate        string   `json:"start_date"` // YYYY-MM, may be empty
	EndDate          string   `json:"end_date"`   // YYYY-MM or "present"
	Responsibilities []string `json:"responsibilities"`
}

// Education is one entry in the candidate's education history.
type Education struct {
	Degree      string `json:"degree"`
	Major       string `json:"major"`
	Institution string `json:"institution"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description,omitempty"`
}

// Project is a personal or professional project the candidate wants listed.
type Project struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Profile holds the factual core data about a candidate. It is created empty
// at registration and mutated only through profile setup, resume upload
// extraction, and feedback-derived updates.
type Profile struct {
	FullName          string      `json:"full_name"`
	Email             string      `json:"email"`
	Phone             string      `json:"phone"`
	Link              string      `json:"link"`
	YearsOfExperience int         `json:"years_of_experience"`
	JobHistory        []Job       `json:"job_history"`
	Education         []Education `json:"education"`
	Skills            []string    `json:"skills"`
	Certifications    []string    `json:"certifications"`
	Projects          []Project   `json:"projects"`
}

// JobsByRecency returns the job history sorted reverse-chronologically by
// start date. Entries without a start date sort last. The receiver's slice is
// not modified.
func (p *Profile) JobsByRecency() []Job {
	jobs := make([]Job, len(p.JobHistory))
	copy(jobs, p.JobHistory)

	sort.SliceStable(jobs, func(i, j int) bool {
		a, b := jobs[i].StartDate, jobs[j].StartDate
		if a == "" {
			return false
		}
		if b == "" {
			return true
		}
		// Dates are ISO-style (YYYY-MM), so string comparison orders them.
		return a > b
	})

	return jobs
}

// HasSkill reports whether the profile already lists the skill. Matching is
// case-sensitive exact match, the same semantics the skill merge uses.
func (p *Profile) HasSkill(skill string) bool {
	for _, s := range p.Skills {
		if s == skill {
			return true
		}
	}
	return false
}
