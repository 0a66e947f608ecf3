package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/resume-agent/internal/types"
)

// List returns the user's rules in insertion order.
func (db *DB) List(ctx context.Context, owner uuid.UUID) ([]types.Rule, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, rule, rule_type, active
		 FROM learned_preferences WHERE user_id = $1 ORDER BY position ASC`,
		owner,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}
	defer rows.Close()

	var rules []types.Rule
	for rows.Next() {
		var r types.Rule
		var ruleType string
		if err := rows.Scan(&r.ID, &r.Rule, &ruleType, &r.Active); err != nil {
			return nil, fmt.Errorf("failed to scan rule: %w", err)
		}
		r.Type = types.NormalizeRuleType(ruleType)
		rules = append(rules, r)
	}
	return rules, nil
}

// Add inserts a rule.
func (db *DB) Add(ctx context.Context, owner uuid.UUID, rule types.Rule) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO learned_preferences (id, user_id, rule, rule_type, active)
		 VALUES ($1, $2, $3, $4, $5)`,
		rule.ID, owner, rule.Rule, string(rule.Type), rule.Active,
	)
	if err != nil {
		return fmt.Errorf("failed to add rule: %w", err)
	}
	return nil
}

// Update replaces the rule with the matching identity. An unknown identity
// affects zero rows and is not an error.
func (db *DB) Update(ctx context.Context, owner uuid.UUID, rule types.Rule) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE learned_preferences SET rule = $1, rule_type = $2, active = $3
		 WHERE user_id = $4 AND id = $5`,
		rule.Rule, string(rule.Type), rule.Active, owner, rule.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update rule: %w", err)
	}
	return nil
}

// Remove deletes the rule with the matching identity. An unknown identity
// affects zero rows and is not an error.
func (db *DB) Remove(ctx context.Context, owner uuid.UUID, id string) error {
	_, err := db.pool.Exec(ctx,
		`DELETE FROM learned_preferences WHERE user_id = $1 AND id = $2`,
		owner, id,
	)
	if err != nil {
		return fmt.Errorf("failed to remove rule: %w", err)
	}
	return nil
}
