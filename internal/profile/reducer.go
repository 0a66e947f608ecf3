// Package profile applies typed update operations to a candidate profile.
// Every mutation the system performs on core data is expressed as one of the
// operation variants here and flows through the single Apply reducer, so the
// full set of possible profile changes is enumerable and testable.
package profile

import (
	"github.com/jonathan/resume-agent/internal/types"
)

// Field names addressable by SetField.
const (
	FieldFullName          = "full_name"
	FieldEmail             = "email"
	FieldPhone             = "phone"
	FieldLink              = "link"
	FieldYearsOfExperience = "years_of_experience"
)

// Op is one typed profile mutation.
type Op interface {
	isOp()
}

// SetField overwrites a scalar field.
type SetField struct {
	Field string
	Text  string // for string fields
	Int   int    // for years_of_experience
}

// AddSkills unions skills into the skill set (case-sensitive exact match,
// de-duplicated).
type AddSkills struct {
	Skills []string
}

// RemoveSkills filters skills out of the skill set by exact string match.
type RemoveSkills struct {
	Skills []string
}

// AppendJobs appends job entries wholesale.
type AppendJobs struct {
	Jobs []types.Job
}

// AppendEducation appends education entries wholesale.
type AppendEducation struct {
	Entries []types.Education
}

// AppendProjects appends project entries wholesale.
type AppendProjects struct {
	Projects []types.Project
}

func (SetField) isOp()        {}
func (AddSkills) isOp()       {}
func (RemoveSkills) isOp()    {}
func (AppendJobs) isOp()      {}
func (AppendEducation) isOp() {}
func (AppendProjects) isOp()  {}

// Apply runs every operation against a copy of the profile and returns the
// result. The input profile is not modified.
func Apply(p types.Profile, ops []Op) types.Profile {
	result := clone(p)

	for _, op := range ops {
		switch o := op.(type) {
		case SetField:
			applySetField(&result, o)
		case AddSkills:
			for _, skill := range o.Skills {
				if skill != "" && !result.HasSkill(skill) {
					result.Skills = append(result.Skills, skill)
				}
			}
		case RemoveSkills:
			remove := make(map[string]bool, len(o.Skills))
			for _, skill := range o.Skills {
				remove[skill] = true
			}
			kept := result.Skills[:0]
			for _, skill := range result.Skills {
				if !remove[skill] {
					kept = append(kept, skill)
				}
			}
			result.Skills = kept
		case AppendJobs:
			result.JobHistory = append(result.JobHistory, o.Jobs...)
		case AppendEducation:
			result.Education = append(result.Education, o.Entries...)
		case AppendProjects:
			result.Projects = append(result.Projects, o.Projects...)
		}
	}

	return result
}

func applySetField(p *types.Profile, op SetField) {
	switch op.Field {
	case FieldFullName:
		p.FullName = op.Text
	case FieldEmail:
		p.Email = op.Text
	case FieldPhone:
		p.Phone = op.Text
	case FieldLink:
		p.Link = op.Text
	case FieldYearsOfExperience:
		if op.Int >= 0 {
			p.YearsOfExperience = op.Int
		}
	}
}

// OpsFromUpdates converts a model-extracted ProfileUpdates payload into typed
// operations. Scalars convert only when present and non-empty. Update/remove
// variants for jobs, education, and projects are not supported in this
// design generation; their names are returned in skipped so the caller can
// log the gap and continue.
func OpsFromUpdates(u types.ProfileUpdates) (ops []Op, skipped []string) {
	if u.FullName != nil && *u.FullName != "" {
		ops = append(ops, SetField{Field: FieldFullName, Text: *u.FullName})
	}
	if u.Email != nil && *u.Email != "" {
		ops = append(ops, SetField{Field: FieldEmail, Text: *u.Email})
	}
	if u.Phone != nil && *u.Phone != "" {
		ops = append(ops, SetField{Field: FieldPhone, Text: *u.Phone})
	}
	if u.Link != nil && *u.Link != "" {
		ops = append(ops, SetField{Field: FieldLink, Text: *u.Link})
	}
	if u.YearsOfExperience != nil && *u.YearsOfExperience >= 0 {
		ops = append(ops, SetField{Field: FieldYearsOfExperience, Int: *u.YearsOfExperience})
	}

	if len(u.SkillsAdd) > 0 {
		ops = append(ops, AddSkills{Skills: u.SkillsAdd})
	}
	if len(u.SkillsRemove) > 0 {
		ops = append(ops, RemoveSkills{Skills: u.SkillsRemove})
	}
	if len(u.JobHistoryAdd) > 0 {
		ops = append(ops, AppendJobs{Jobs: u.JobHistoryAdd})
	}
	if len(u.EducationAdd) > 0 {
		ops = append(ops, AppendEducation{Entries: u.EducationAdd})
	}
	if len(u.ProjectsAdd) > 0 {
		ops = append(ops, AppendProjects{Projects: u.ProjectsAdd})
	}

	if len(u.JobHistoryUpdate) > 0 {
		skipped = append(skipped, "job_history_update")
	}
	if len(u.JobHistoryRemove) > 0 {
		skipped = append(skipped, "job_history_remove")
	}
	if len(u.EducationUpdate) > 0 {
		skipped = append(skipped, "education_update")
	}
	if len(u.EducationRemove) > 0 {
		skipped = append(skipped, "education_remove")
	}
	if len(u.ProjectsUpdate) > 0 {
		skipped = append(skipped, "projects_update")
	}
	if len(u.ProjectsRemove) > 0 {
		skipped = append(skipped, "projects_remove")
	}

	return ops, skipped
}

// Merge folds an extracted profile into an existing one: non-empty scalars
// from the extraction win, skills union, and list sections append. Used by
// resume-upload extraction.
func Merge(existing, extracted types.Profile) types.Profile {
	ops := make([]Op, 0, 8)

	if extracted.FullName != "" {
		ops = append(ops, SetField{Field: FieldFullName, Text: extracted.FullName})
	}
	if extracted.Email != "" {
		ops = append(ops, SetField{Field: FieldEmail, Text: extracted.Email})
	}
	if extracted.Phone != "" {
		ops = append(ops, SetField{Field: FieldPhone, Text: extracted.Phone})
	}
	if extracted.Link != "" {
		ops = append(ops, SetField{Field: FieldLink, Text: extracted.Link})
	}
	if extracted.YearsOfExperience > 0 {
		ops = append(ops, SetField{Field: FieldYearsOfExperience, Int: extracted.YearsOfExperience})
	}
	if len(extracted.Skills) > 0 {
		ops = append(ops, AddSkills{Skills: extracted.Skills})
	}
	if len(extracted.JobHistory) > 0 {
		ops = append(ops, AppendJobs{Jobs: extracted.JobHistory})
	}
	if len(extracted.Education) > 0 {
		ops = append(ops, AppendEducation{Entries: extracted.Education})
	}
	if len(extracted.Projects) > 0 {
		ops = append(ops, AppendProjects{Projects: extracted.Projects})
	}

	result := Apply(existing, ops)

	// Certifications union with the same exact-match semantics as skills.
	for _, cert := range extracted.Certifications {
		if cert != "" && !contains(result.Certifications, cert) {
			result.Certifications = append(result.Certifications, cert)
		}
	}

	return result
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// clone deep-copies the profile's slices so Apply never aliases its input.
func clone(p types.Profile) types.Profile {
	out := p
	out.JobHistory = append([]types.Job(nil), p.JobHistory...)
	for i := range out.JobHistory {
		out.JobHistory[i].Responsibilities = append([]string(nil), p.JobHistory[i].Responsibilities...)
	}
	out.Education = append([]types.Education(nil), p.Education...)
	out.Skills = append([]string(nil), p.Skills...)
	out.Certifications = append([]string(nil), p.Certifications...)
	out.Projects = append([]types.Project(nil), p.Projects...)
	return out
}
