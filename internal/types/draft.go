package types

import "github.com/google/uuid"

// Draft is one persisted, immutable resume output together with the exact
// generation context that produced it. Each orchestrator run persists exactly
// one Draft: the last iteration's content.
type Draft struct {
	ID                   uuid.UUID       `json:"id"`
	VersionName          string          `json:"version_name"`
	Content              string          `json:"content"`
	Timestamp            string          `json:"timestamp"` // ISO-8601, UTC, 'Z'-suffixed
	ProfileSnapshot      Profile         `json:"profile_snapshot"`
	RulesSnapshot        []Rule          `json:"rules_snapshot"`
	TargetJobDescription *string         `json:"target_job_description,omitempty"`
	Critique             *ResumeCritique `json:"critique,omitempty"`
}
