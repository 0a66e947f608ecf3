package types

// RuleType classifies how a learned preference influences generation.
type RuleType string

const (
	// RuleStylistic rules are rendered as writing guidelines.
	RuleStylistic RuleType = "stylistic"
	// RuleExclusion rules become a hard "do not mention" list.
	RuleExclusion RuleType = "exclusion"
	// RuleInclusion rules become a hard "must highlight" list.
	RuleInclusion RuleType = "inclusion"
)

// NormalizeRuleType maps unknown or empty type strings to the stylistic
// default.
func NormalizeRuleType(t string) RuleType {
	switch RuleType(t) {
	case RuleExclusion:
		return RuleExclusion
	case RuleInclusion:
		return RuleInclusion
	default:
		return RuleStylistic
	}
}

// Rule is one durable learned preference. Identity is unique per owner for
// the owner's lifetime; update and remove address rules strictly by identity.
type Rule struct {
	ID     string   `json:"id"`
	Rule   string   `json:"rule"`
	Type   RuleType `json:"type"`
	Active bool     `json:"active"`
}

// ActiveRules filters a rule list down to the active entries, preserving
// order.
func ActiveRules(rules []Rule) []Rule {
	active := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if r.Active {
			active = append(active, r)
		}
	}
	return active
}
