package detect

import "strings"

// CategoryRule maps description keywords to one or more category tags.
// Higher priority rules are evaluated first, which matters only for the
// ordering of tags in the result since every matching rule contributes.
type CategoryRule struct {
	Name       string
	Keywords   []string
	Categories []string
	Priority   int
}

// Categorizer assigns semantic category tags to a pattern from its
// normalized name and representative amount. Pure and deterministic; the
// rule table is injected so deployments can tune it and tests can isolate it.
type Categorizer struct {
	rules            []CategoryRule
	smallAmountLimit float64
	largeAmountLimit float64
}

// NewCategorizer creates a categorizer from the given rule table and the
// config's amount buckets. A nil rule table falls back to the defaults.
func NewCategorizer(cfg Config, rules []CategoryRule) *Categorizer {
	if rules == nil {
		rules = DefaultCategoryRules()
	}

	sorted := make([]CategoryRule, len(rules))
	copy(sorted, rules)

	// Sort by priority, highest first. Stable for equal priorities.
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].Priority > sorted[j-1].Priority; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	return &Categorizer{
		rules:            sorted,
		smallAmountLimit: cfg.SmallAmountLimit,
		largeAmountLimit: cfg.LargeAmountLimit,
	}
}

// Categorize returns the category tags for a pattern. The result is never
// empty: when no rule matches, a tag derived from the amount bucket is
// assigned, and small amounts always carry the generic subscription tag.
func (c *Categorizer) Categorize(name string, amount float64) []string {
	lower := strings.ToLower(name)

	var tags []string
	seen := make(map[string]bool)

	for _, rule := range c.rules {
		if !ruleMatches(rule, lower) {
			continue
		}
		for _, cat := range rule.Categories {
			if !seen[cat] {
				seen[cat] = true
				tags = append(tags, cat)
			}
		}
	}

	if len(tags) == 0 {
		switch {
		case amount < c.smallAmountLimit:
			tags = append(tags, "subscription")
			seen["subscription"] = true
		case amount <= c.largeAmountLimit:
			tags = append(tags, "services")
		default:
			tags = append(tags, "large payment")
		}
	}

	// Small recurring charges are usually subscriptions, whatever else
	// they matched.
	if amount < c.smallAmountLimit && !seen["subscription"] {
		tags = append(tags, "subscription")
	}

	return tags
}

func ruleMatches(rule CategoryRule, lowerName string) bool {
	for _, kw := range rule.Keywords {
		if strings.Contains(lowerName, kw) {
			return true
		}
	}
	return false
}
