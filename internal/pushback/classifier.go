package pushback

// Rule is one ordered classification rule. Returns the category and a
// confidence (0.0-1.0), or ("", 0) if the rule doesn't apply.
type Rule interface {
	Name() string
	Classify(t *Turn) (Category, float64)
}

// DefaultRules returns the rules in priority order. Hollow praise sits
// first: a turn can read as both hollow praise and engagement, and
// praise-without-understanding is the stronger authenticity-risk signal,
// so it must win.
func DefaultRules() []Rule {
	return []Rule{
		&HollowPraiseRule{},
		&UnsupportedAuthorityRule{},
		&MisrepresentationRule{},
		&GenuineEngagementRule{},
	}
}

// RunRules executes rules in order and returns the first match, or
// ("", 0, "") if no rule applies.
func RunRules(rules []Rule, t *Turn) (Category, float64, string) {
	for _, r := range rules {
		cat, conf := r.Classify(t)
		if cat != "" {
			return cat, conf, r.Name()
		}
	}
	return "", 0, ""
}

// Classify runs the default rules over a student turn. Classification is
// heuristic and never fails: when no rule applies the turn is CategoryNone.
// Given identical layer text the result is always the same.
func Classify(t *Turn) Category {
	cat, _, _ := RunRules(DefaultRules(), t)
	if cat == "" {
		return CategoryNone
	}
	return cat
}
