package templates

import (
	"strings"
	"testing"
)

func TestSeedLoads(t *testing.T) {
	lib := Seed()
	if lib.Version() != "1.0.0" {
		t.Errorf("version = %q, want 1.0.0", lib.Version())
	}
	for _, cat := range CoreCategories() {
		if len(lib.Fragments(cat)) == 0 {
			t.Errorf("category %q is empty", cat)
		}
		if _, ok := lib.Fallback(cat); !ok {
			t.Errorf("category %q has no fallback", cat)
		}
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	src := `{
		"version": "1.0.0",
		"categories": {
			"belief": [{"id": "b1", "text": "x", "wieght": 3}],
			"koan": [{"id": "k1", "text": "x"}],
			"marker": [{"id": "m1", "text": "x"}]
		}
	}`
	_, err := Parse(strings.NewReader(src))
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestParseRejectsWrongMajorVersion(t *testing.T) {
	src := `{
		"version": "2.0.0",
		"categories": {
			"belief": [{"id": "b1", "text": "x"}],
			"koan": [{"id": "k1", "text": "x"}],
			"marker": [{"id": "m1", "text": "x"}]
		}
	}`
	_, err := Parse(strings.NewReader(src))
	if err == nil || !strings.Contains(err.Error(), "unsupported library version") {
		t.Fatalf("expected version error, got: %v", err)
	}
}

func TestParseRejectsMissingCoreCategory(t *testing.T) {
	src := `{
		"version": "1.0.0",
		"categories": {
			"belief": [{"id": "b1", "text": "x"}]
		}
	}`
	_, err := Parse(strings.NewReader(src))
	if err == nil || !strings.Contains(err.Error(), "missing core category") {
		t.Fatalf("expected missing-category error, got: %v", err)
	}
}

func TestParseRejectsDuplicateIDs(t *testing.T) {
	src := `{
		"version": "1.0.0",
		"categories": {
			"belief": [{"id": "b1", "text": "x"}, {"id": "b1", "text": "y"}],
			"koan": [{"id": "k1", "text": "x"}],
			"marker": [{"id": "m1", "text": "x"}]
		}
	}`
	_, err := Parse(strings.NewReader(src))
	if err == nil || !strings.Contains(err.Error(), "duplicate fragment id") {
		t.Fatalf("expected duplicate-id error, got: %v", err)
	}
}

func TestPredicateMatching(t *testing.T) {
	lowConfidence := Props{Confidence: 3, SuccessRate: 0.4, EmotionalState: "confused", LearningStage: "early", Flags: map[string]bool{}}
	overconfident := Props{Confidence: 8, SuccessRate: 0.3, EmotionalState: "confident", LearningStage: "mid", Flags: map[string]bool{"overconfident": true}}

	tests := []struct {
		name string
		pred Predicate
		p    Props
		want bool
	}{
		{"max confidence holds", Predicate{MaxConfidence: fptr(4)}, lowConfidence, true},
		{"max confidence exceeded", Predicate{MaxConfidence: fptr(4)}, overconfident, false},
		{"min confidence holds", Predicate{MinConfidence: fptr(7)}, overconfident, true},
		{"required flag present", Predicate{RequireFlags: []string{"overconfident"}}, overconfident, true},
		{"required flag absent", Predicate{RequireFlags: []string{"overconfident"}}, lowConfidence, false},
		{"absent flag violated", Predicate{AbsentFlags: []string{"overconfident"}}, overconfident, false},
		{"emotional state listed", Predicate{EmotionalStates: []string{"confused", "anxious"}}, lowConfidence, true},
		{"learning stage listed", Predicate{LearningStages: []string{"early"}}, lowConfidence, true},
		{"learning stage not listed", Predicate{LearningStages: []string{"late"}}, lowConfidence, false},
		{"compound all hold", Predicate{RequireFlags: []string{"overconfident"}, MaxSuccessRate: fptr(0.5)}, overconfident, true},
		{"compound one fails", Predicate{RequireFlags: []string{"overconfident"}, MinSuccessRate: fptr(0.5)}, overconfident, false},
		{"empty matches everything", Predicate{}, lowConfidence, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pred.Matches(tt.p); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpecificityCounts(t *testing.T) {
	tests := []struct {
		name string
		pred Predicate
		want int
	}{
		{"empty", Predicate{}, 0},
		{"one bound", Predicate{MaxConfidence: fptr(4)}, 1},
		{"two bounds", Predicate{MinConfidence: fptr(2), MaxConfidence: fptr(4)}, 2},
		{"flags count individually", Predicate{RequireFlags: []string{"a", "b"}, AbsentFlags: []string{"c"}}, 3},
		{"list counts once", Predicate{EmotionalStates: []string{"bored", "frustrated"}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pred.Specificity(); got != tt.want {
				t.Errorf("Specificity() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMatchOrdersMostSpecificFirst(t *testing.T) {
	lib := Seed()
	p := Props{
		Confidence:     8,
		SuccessRate:    0.3,
		EmotionalState: "confident",
		LearningStage:  "mid",
		Flags:          map[string]bool{"overconfident": true},
	}

	matched := lib.Match(CategoryBelief, p)
	if len(matched) < 2 {
		t.Fatalf("expected at least 2 matches, got %d", len(matched))
	}
	// The two-condition overconfident+low-success fragment outranks the
	// single-flag overconfident fragment.
	if matched[0].ID != "belief-overconfident-failing" {
		t.Errorf("first match = %q, want belief-overconfident-failing", matched[0].ID)
	}

	for i := 1; i < len(matched); i++ {
		if matched[i].When.Specificity() > matched[i-1].When.Specificity() {
			t.Errorf("match %d more specific than match %d", i, i-1)
		}
	}
}

func TestMatchExcludesFallback(t *testing.T) {
	lib := Seed()
	p := Props{Confidence: 3, LearningStage: "early", Flags: map[string]bool{}}

	for _, fr := range lib.Match(CategoryBelief, p) {
		if fr.Fallback {
			t.Errorf("fallback fragment %q returned by Match", fr.ID)
		}
	}
}

func TestMatchIsDeterministic(t *testing.T) {
	lib := Seed()
	p := Props{Confidence: 3, SuccessRate: 0.4, EmotionalState: "frustrated", LearningStage: "early", Flags: map[string]bool{"disengaged": true}}

	first := lib.Match(CategoryBelief, p)
	for i := 0; i < 10; i++ {
		again := lib.Match(CategoryBelief, p)
		if len(again) != len(first) {
			t.Fatalf("run %d: length %d, want %d", i, len(again), len(first))
		}
		for j := range first {
			if again[j].ID != first[j].ID {
				t.Fatalf("run %d: position %d = %q, want %q", i, j, again[j].ID, first[j].ID)
			}
		}
	}
}
