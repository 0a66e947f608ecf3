// Package feedback turns freeform user feedback into durable rule mutations
// and factual profile updates.
package feedback

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/jonathan/resume-agent/internal/llm"
	"github.com/jonathan/resume-agent/internal/profile"
	"github.com/jonathan/resume-agent/internal/prompting"
	"github.com/jonathan/resume-agent/internal/rules"
	"github.com/jonathan/resume-agent/internal/schemas"
	"github.com/jonathan/resume-agent/internal/types"
)

// ProfileStore is the persistence surface the interpreter needs for core
// data.
type ProfileStore interface {
	LoadProfile(ctx context.Context, owner uuid.UUID) (types.Profile, error)
	SaveProfile(ctx context.Context, owner uuid.UUID, p types.Profile) error
}

// Summary reports what a feedback batch actually changed.
type Summary struct {
	ItemsProcessed int      `json:"items_processed"`
	RulesAdded     int      `json:"rules_added"`
	RulesUpdated   int      `json:"rules_updated"`
	RulesRemoved   int      `json:"rules_removed"`
	ProfileChanged bool     `json:"profile_changed"`
	SkippedOps     []string `json:"skipped_ops,omitempty"`
	Warnings       []string `json:"warnings,omitempty"`
}

// Interpreter extracts structured preference updates from feedback comments
// and applies them.
type Interpreter struct {
	gateway  llm.Gateway
	rules    rules.Store
	profiles ProfileStore
}

// NewInterpreter wires an interpreter to its collaborators.
func NewInterpreter(gateway llm.Gateway, ruleStore rules.Store, profiles ProfileStore) *Interpreter {
	return &Interpreter{gateway: gateway, rules: ruleStore, profiles: profiles}
}

// Interpret runs the structured-extraction prompt for one feedback comment
// against the supplied context and parses the result. On parse failure it
// returns an empty mutation set and false; it never fails the caller.
func (it *Interpreter) Interpret(ctx context.Context, comment string, current types.Profile, currentRules []types.Rule) (types.FeedbackUpdate, bool) {
	prompt := prompting.CompileFeedbackPrompt(comment, current, currentRules)
	raw := it.gateway.Generate(ctx, prompt, llm.FeedbackOptions)
	return schemas.DecodeFeedbackUpdate(llm.Sanitize(raw))
}

// Process interprets and applies a batch of feedback items sequentially.
// Each item sees the accumulated effect of the items before it. A single
// uninterpretable item degrades to a warning; the rest of the batch still
// applies.
func (it *Interpreter) Process(ctx context.Context, owner uuid.UUID, items []types.FeedbackItem) (Summary, error) {
	var summary Summary

	for _, item := range items {
		if item.Comment == "" {
			continue
		}
		summary.ItemsProcessed++

		current, err := it.profiles.LoadProfile(ctx, owner)
		if err != nil {
			return summary, err
		}
		currentRules, err := it.rules.List(ctx, owner)
		if err != nil {
			return summary, err
		}

		update, ok := it.Interpret(ctx, item.Comment, current, currentRules)
		if !ok {
			log.Printf("feedback: could not interpret comment %q; skipping", item.Comment)
			summary.Warnings = append(summary.Warnings, "feedback comment could not be interpreted: "+item.Comment)
			continue
		}

		if err := it.applyRuleMutations(ctx, owner, currentRules, update.Rules, &summary); err != nil {
			return summary, err
		}

		ops, skipped := profile.OpsFromUpdates(update.CoreDataUpdates)
		for _, name := range skipped {
			// Known limitation: in-place update/removal of job history,
			// education, and project entries is not applied yet.
			log.Printf("feedback: unsupported core data operation %q requested; skipping", name)
			summary.SkippedOps = append(summary.SkippedOps, name)
		}
		if len(ops) > 0 {
			updated := profile.Apply(current, ops)
			if err := it.profiles.SaveProfile(ctx, owner, updated); err != nil {
				return summary, err
			}
			summary.ProfileChanged = true
		}
	}

	return summary, nil
}

// applyRuleMutations applies rule mutations in list order. Unknown
// identities on update/remove are no-ops at the store, surfaced here as
// warnings rather than errors.
func (it *Interpreter) applyRuleMutations(ctx context.Context, owner uuid.UUID, currentRules []types.Rule, mutations []types.RuleMutation, summary *Summary) error {
	known := make(map[string]types.Rule, len(currentRules))
	for _, r := range currentRules {
		known[r.ID] = r
	}

	for _, m := range mutations {
		switch m.Action {
		case types.RuleAdd:
			if m.Rule == "" {
				continue
			}
			active := true
			if m.Active != nil {
				active = *m.Active
			}
			rule := types.Rule{
				ID:     rules.NewID(),
				Rule:   m.Rule,
				Type:   types.NormalizeRuleType(m.Type),
				Active: active,
			}
			if err := it.rules.Add(ctx, owner, rule); err != nil {
				return err
			}
			known[rule.ID] = rule
			summary.RulesAdded++

		case types.RuleUpdate:
			existing, ok := known[m.ID]
			if !ok {
				log.Printf("feedback: update for unknown rule id %q ignored", m.ID)
				summary.Warnings = append(summary.Warnings, "update referenced unknown rule id "+m.ID)
				continue
			}
			if m.Rule != "" {
				existing.Rule = m.Rule
			}
			if m.Type != "" {
				existing.Type = types.NormalizeRuleType(m.Type)
			}
			if m.Active != nil {
				existing.Active = *m.Active
			}
			if err := it.rules.Update(ctx, owner, existing); err != nil {
				return err
			}
			known[m.ID] = existing
			summary.RulesUpdated++

		case types.RuleRemove:
			if _, ok := known[m.ID]; !ok {
				log.Printf("feedback: remove for unknown rule id %q ignored", m.ID)
				summary.Warnings = append(summary.Warnings, "remove referenced unknown rule id "+m.ID)
				continue
			}
			if err := it.rules.Remove(ctx, owner, m.ID); err != nil {
				return err
			}
			delete(known, m.ID)
			summary.RulesRemoved++
		}
	}

	return nil
}
