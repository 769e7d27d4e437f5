package templates

// Category names a template fragment category. The three core categories
// feed the student model; libraries may carry additional categories, which
// are preserved but only consulted when asked for by name.
type Category string

const (
	CategoryBelief Category = "belief"
	CategoryKoan   Category = "koan"
	CategoryMarker Category = "marker"
)

// CoreCategories returns the categories every library must fill.
func CoreCategories() []Category {
	return []Category{CategoryBelief, CategoryKoan, CategoryMarker}
}

// Props is the read-only property view that fragment predicates match
// against. The student package converts its validated profile config into
// this shape; templates never sees the config itself.
type Props struct {
	Confidence    float64
	SuccessRate   float64
	EmotionalState string
	LearningStage  string
	Flags          map[string]bool
}

// Fragment is one candidate template entry within a category.
type Fragment struct {
	// ID uniquely names the fragment within its category.
	ID string `json:"id"`

	// Text is the fragment content (a belief statement, a koan, or an
	// authenticity marker criterion).
	Text string `json:"text"`

	// When gates the fragment on student profile properties. A zero
	// predicate matches every profile.
	When Predicate `json:"when,omitempty"`

	// Fallback marks the category-level default used when no other
	// fragment in the category matches a profile.
	Fallback bool `json:"fallback,omitempty"`
}

// Predicate gates a fragment on student profile properties. Every set
// condition must hold for the predicate to match. Numeric bounds are
// inclusive.
type Predicate struct {
	MinConfidence *float64 `json:"min_confidence,omitempty"`
	MaxConfidence *float64 `json:"max_confidence,omitempty"`

	MinSuccessRate *float64 `json:"min_success_rate,omitempty"`
	MaxSuccessRate *float64 `json:"max_success_rate,omitempty"`

	// EmotionalStates matches when the profile's emotional state is any
	// of the listed labels.
	EmotionalStates []string `json:"emotional_states,omitempty"`

	// LearningStages matches when the profile's learning stage is any of
	// the listed stages.
	LearningStages []string `json:"learning_stages,omitempty"`

	// RequireFlags must all be set on the profile.
	RequireFlags []string `json:"require_flags,omitempty"`

	// AbsentFlags must all be unset on the profile.
	AbsentFlags []string `json:"absent_flags,omitempty"`
}

// Matches reports whether every set condition holds for p.
func (pr Predicate) Matches(p Props) bool {
	if pr.MinConfidence != nil && p.Confidence < *pr.MinConfidence {
		return false
	}
	if pr.MaxConfidence != nil && p.Confidence > *pr.MaxConfidence {
		return false
	}
	if pr.MinSuccessRate != nil && p.SuccessRate < *pr.MinSuccessRate {
		return false
	}
	if pr.MaxSuccessRate != nil && p.SuccessRate > *pr.MaxSuccessRate {
		return false
	}
	if len(pr.EmotionalStates) > 0 && !contains(pr.EmotionalStates, p.EmotionalState) {
		return false
	}
	if len(pr.LearningStages) > 0 && !contains(pr.LearningStages, p.LearningStage) {
		return false
	}
	for _, f := range pr.RequireFlags {
		if !p.Flags[f] {
			return false
		}
	}
	for _, f := range pr.AbsentFlags {
		if p.Flags[f] {
			return false
		}
	}
	return true
}

// Specificity counts the gated conditions. Fragments gated on more
// properties outrank broader ones during composition.
func (pr Predicate) Specificity() int {
	n := 0
	if pr.MinConfidence != nil {
		n++
	}
	if pr.MaxConfidence != nil {
		n++
	}
	if pr.MinSuccessRate != nil {
		n++
	}
	if pr.MaxSuccessRate != nil {
		n++
	}
	if len(pr.EmotionalStates) > 0 {
		n++
	}
	if len(pr.LearningStages) > 0 {
		n++
	}
	n += len(pr.RequireFlags)
	n += len(pr.AbsentFlags)
	return n
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
