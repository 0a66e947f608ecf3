// Package rules holds the durable preference model: the typed rule list per
// owner and the mutation semantics applied to it.
package rules

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/resume-agent/internal/types"
)

// Store is the persistence surface for learned rules. Update and Remove on
// an identity that does not exist are silent no-ops; callers that want to
// surface the miss can check existence via List first.
type Store interface {
	List(ctx context.Context, owner uuid.UUID) ([]types.Rule, error)
	Add(ctx context.Context, owner uuid.UUID, rule types.Rule) error
	Update(ctx context.Context, owner uuid.UUID, rule types.Rule) error
	Remove(ctx context.Context, owner uuid.UUID, id string) error
}

// NewID generates a rule identity. Identities are random UUIDs so uniqueness
// per owner holds for the owner's lifetime, not just the current list length;
// removals can never cause an identity to be reissued.
func NewID() string {
	return "rule_" + uuid.NewString()
}

// ApplyMutation applies one mutation to an in-memory rule list and returns
// the updated list. Unknown identities on update/remove leave the list
// unchanged. The input slice is not modified.
func ApplyMutation(rules []types.Rule, m types.RuleMutation) []types.Rule {
	out := append([]types.Rule(nil), rules...)

	switch m.Action {
	case types.RuleAdd:
		if m.Rule == "" {
			return out
		}
		active := true
		if m.Active != nil {
			active = *m.Active
		}
		id := m.ID
		if id == "" {
			id = NewID()
		}
		out = append(out, types.Rule{
			ID:     id,
			Rule:   m.Rule,
			Type:   types.NormalizeRuleType(m.Type),
			Active: active,
		})

	case types.RuleUpdate:
		for i := range out {
			if out[i].ID != m.ID {
				continue
			}
			if m.Rule != "" {
				out[i].Rule = m.Rule
			}
			if m.Type != "" {
				out[i].Type = types.NormalizeRuleType(m.Type)
			}
			if m.Active != nil {
				out[i].Active = *m.Active
			}
			break
		}

	case types.RuleRemove:
		for i := range out {
			if out[i].ID == m.ID {
				out = append(out[:i], out[i+1:]...)
				break
			}
		}
	}

	return out
}

// MemoryStore is an in-memory Store used by tests and the file-based CLI
// commands.
type MemoryStore struct {
	mu    sync.Mutex
	rules map[uuid.UUID][]types.Rule
}

// NewMemoryStore creates an empty in-memory rule store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rules: make(map[uuid.UUID][]types.Rule)}
}

// Seed replaces an owner's rule list wholesale.
func (s *MemoryStore) Seed(owner uuid.UUID, rules []types.Rule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules[owner] = append([]types.Rule(nil), rules...)
}

// List returns the owner's rules in insertion order.
func (s *MemoryStore) List(_ context.Context, owner uuid.UUID) ([]types.Rule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.Rule(nil), s.rules[owner]...), nil
}

// Add appends a rule.
func (s *MemoryStore) Add(_ context.Context, owner uuid.UUID, rule types.Rule) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules[owner] = append(s.rules[owner], rule)
	return nil
}

// Update replaces the rule with the matching identity; unknown identities
// are a no-op.
func (s *MemoryStore) Update(_ context.Context, owner uuid.UUID, rule types.Rule) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.rules[owner]
	for i := range list {
		if list[i].ID == rule.ID {
			list[i] = rule
			break
		}
	}
	return nil
}

// Remove deletes the rule with the matching identity; unknown identities are
// a no-op.
func (s *MemoryStore) Remove(_ context.Context, owner uuid.UUID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.rules[owner]
	for i := range list {
		if list[i].ID == id {
			s.rules[owner] = append(list[:i], list[i+1:]...)
			break
		}
	}
	return nil
}
