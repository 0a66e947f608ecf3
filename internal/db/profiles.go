package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-agent/internal/types"
)

// LoadProfile retrieves the user's profile. A user with no stored profile
// gets a zero profile, not an error; every other surface treats the profile
// as always-present.
func (db *DB) LoadProfile(ctx context.Context, owner uuid.UUID) (types.Profile, error) {
	var raw []byte
	err := db.pool.QueryRow(ctx,
		`SELECT profile FROM user_profiles WHERE user_id = $1`,
		owner,
	).Scan(&raw)
	if err != nil {
		if err == pgx.ErrNoRows {
			return types.Profile{}, nil
		}
		return types.Profile{}, fmt.Errorf("failed to load profile: %w", err)
	}

	var profile types.Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return types.Profile{}, fmt.Errorf("failed to decode stored profile: %w", err)
	}
	return profile, nil
}

// SaveProfile upserts the user's profile wholesale.
func (db *DB) SaveProfile(ctx context.Context, owner uuid.UUID, profile types.Profile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO user_profiles (user_id, profile)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET profile = $2, updated_at = NOW()`,
		owner, raw,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}
