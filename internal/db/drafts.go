package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-agent/internal/types"
)

// ErrDraftNotFound is returned by GetDraft when no version matches.
var ErrDraftNotFound = fmt.Errorf("draft not found")

// SaveDraft stores one generated resume version with its snapshots. Versions
// are append-only; there is no update path.
func (db *DB) SaveDraft(ctx context.Context, owner uuid.UUID, draft types.Draft) error {
	profileJSON, err := json.Marshal(draft.ProfileSnapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal profile snapshot: %w", err)
	}
	rulesJSON, err := json.Marshal(draft.RulesSnapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal rules snapshot: %w", err)
	}
	var critiqueJSON []byte
	if draft.Critique != nil {
		critiqueJSON, err = json.Marshal(draft.Critique)
		if err != nil {
			return fmt.Errorf("failed to marshal critique: %w", err)
		}
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO resume_versions
		 (id, user_id, version_name, content, generated_at,
		  profile_snapshot, rules_snapshot, target_job_description, critique)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		draft.ID, owner, draft.VersionName, draft.Content, draft.Timestamp,
		profileJSON, rulesJSON, draft.TargetJobDescription, critiqueJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

// ListDrafts retrieves the user's resume versions, newest first.
func (db *DB) ListDrafts(ctx context.Context, owner uuid.UUID) ([]types.Draft, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, version_name, content, generated_at,
		        profile_snapshot, rules_snapshot, target_job_description, critique
		 FROM resume_versions WHERE user_id = $1 ORDER BY created_at DESC`,
		owner,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	defer rows.Close()

	var drafts []types.Draft
	for rows.Next() {
		draft, err := scanDraft(rows)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, draft)
	}
	return drafts, nil
}

// GetDraft retrieves one resume version by ID.
func (db *DB) GetDraft(ctx context.Context, owner uuid.UUID, id uuid.UUID) (types.Draft, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, version_name, content, generated_at,
		        profile_snapshot, rules_snapshot, target_job_description, critique
		 FROM resume_versions WHERE user_id = $1 AND id = $2`,
		owner, id,
	)
	draft, err := scanDraft(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return types.Draft{}, ErrDraftNotFound
		}
		return types.Draft{}, err
	}
	return draft, nil
}

func scanDraft(row pgx.Row) (types.Draft, error) {
	var draft types.Draft
	var profileJSON, rulesJSON, critiqueJSON []byte

	err := row.Scan(&draft.ID, &draft.VersionName, &draft.Content, &draft.Timestamp,
		&profileJSON, &rulesJSON, &draft.TargetJobDescription, &critiqueJSON)
	if err != nil {
		if err == pgx.ErrNoRows {
			return types.Draft{}, pgx.ErrNoRows
		}
		return types.Draft{}, fmt.Errorf("failed to scan draft: %w", err)
	}

	if err := json.Unmarshal(profileJSON, &draft.ProfileSnapshot); err != nil {
		return types.Draft{}, fmt.Errorf("failed to decode profile snapshot: %w", err)
	}
	if err := json.Unmarshal(rulesJSON, &draft.RulesSnapshot); err != nil {
		return types.Draft{}, fmt.Errorf("failed to decode rules snapshot: %w", err)
	}
	if len(critiqueJSON) > 0 {
		var critique types.ResumeCritique
		if err := json.Unmarshal(critiqueJSON, &critique); err != nil {
			return types.Draft{}, fmt.Errorf("failed to decode critique: %w", err)
		}
		draft.Critique = &critique
	}
	return draft, nil
}
