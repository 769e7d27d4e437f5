package student

import (
	"errors"
	"strings"
	"testing"

	"github.com/kelsic/dialogia/internal/templates"
)

func validConfig() ProfileConfig {
	return ProfileConfig{
		Name:              "Confused_Beginner",
		Domain:            "recursion",
		Confidence:        3,
		RecentSuccessRate: 0.4,
		EmotionalState:    "confused",
		LearningStage:     StageEarly,
	}
}

func TestComposeFillsEveryCategory(t *testing.T) {
	lib := templates.Seed()

	m, err := Compose(validConfig(), lib)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if len(m.Beliefs) == 0 {
		t.Error("no beliefs selected")
	}
	if len(m.Koans) == 0 {
		t.Error("no koans selected")
	}
	if len(m.Markers) == 0 {
		t.Error("no markers selected")
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	lib := templates.Seed()
	cfg := ProfileConfig{
		Name:              "Overconfident_Faller",
		Domain:            "debugging",
		Confidence:        8,
		RecentSuccessRate: 0.3,
		EmotionalState:    "confident",
		LearningStage:     StageMid,
		Overconfident:     true,
		Disengaged:        true,
	}

	first, err := Compose(cfg, lib)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Compose(cfg, lib)
		if err != nil {
			t.Fatalf("compose run %d: %v", i, err)
		}
		assertSameFragments(t, first.Beliefs, again.Beliefs)
		assertSameFragments(t, first.Koans, again.Koans)
		assertSameFragments(t, first.Markers, again.Markers)
	}
}

func assertSameFragments(t *testing.T, want, got []templates.Fragment) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("fragment count %d, want %d", len(got), len(want))
	}
	for i := range want {
		if want[i].ID != got[i].ID {
			t.Fatalf("fragment %d = %q, want %q", i, got[i].ID, want[i].ID)
		}
	}
}

func TestComposeAllowsContradiction(t *testing.T) {
	lib := templates.Seed()
	// Overconfident with a poor success rate selects both "I already
	// understand this better than most people" and "I am about to fail".
	cfg := ProfileConfig{
		Name:              "Contradictory",
		Domain:            "data_structures",
		Confidence:        8,
		RecentSuccessRate: 0.3,
		EmotionalState:    "confident",
		LearningStage:     StageMid,
		Overconfident:     true,
	}

	m, err := Compose(cfg, lib)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}

	ids := map[string]bool{}
	for _, b := range m.Beliefs {
		ids[b.ID] = true
	}
	if !ids["belief-overconfident-failing"] || !ids["belief-overconfident-mastery"] {
		t.Errorf("expected contradictory belief pair, got %v", ids)
	}
}

func TestComposeAnyFlagCombination(t *testing.T) {
	lib := templates.Seed()

	// Every flag on at once is valid input.
	cfg := validConfig()
	cfg.Overconfident = true
	cfg.BreakthroughMoment = true
	cfg.Disengaged = true
	cfg.Neurodivergent = true
	cfg.BadPriorTeacher = true
	cfg.RejectsMetaphor = true
	cfg.ExecutiveFunctionGap = true
	cfg.HyperfocusTrait = true

	m, err := Compose(cfg, lib)
	if err != nil {
		t.Fatalf("compose with all flags: %v", err)
	}
	if len(m.Beliefs) == 0 || len(m.Koans) == 0 || len(m.Markers) == 0 {
		t.Error("model left a category empty")
	}

	// Every flag off is equally valid.
	off := validConfig()
	if _, err := Compose(off, lib); err != nil {
		t.Fatalf("compose with no flags: %v", err)
	}
}

func TestComposeFallsBackWhenNothingMatches(t *testing.T) {
	// A library whose only gated belief never matches, leaving just the
	// fallback.
	src := `{
		"version": "1.0.0",
		"categories": {
			"belief": [
				{"id": "b-never", "text": "x", "when": {"require_flags": ["hyperfocus_trait", "disengaged"], "min_confidence": 9}},
				{"id": "b-fallback", "text": "fallback belief", "fallback": true}
			],
			"koan": [{"id": "k1", "text": "a koan"}],
			"marker": [{"id": "m1", "text": "a marker"}]
		}
	}`
	lib, err := templates.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	m, err := Compose(validConfig(), lib)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if len(m.Beliefs) != 1 || m.Beliefs[0].ID != "b-fallback" {
		t.Errorf("beliefs = %v, want the fallback only", m.Beliefs)
	}
}

func TestComposeErrorsWithoutFallback(t *testing.T) {
	src := `{
		"version": "1.0.0",
		"categories": {
			"belief": [{"id": "b-never", "text": "x", "when": {"min_confidence": 9.5}}],
			"koan": [{"id": "k1", "text": "a koan"}],
			"marker": [{"id": "m1", "text": "a marker"}]
		}
	}`
	lib, err := templates.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	_, err = Compose(validConfig(), lib)
	var ce *CompositionError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CompositionError, got %v", err)
	}
	if ce.Category != templates.CategoryBelief {
		t.Errorf("category = %q, want belief", ce.Category)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ProfileConfig)
		wantErr bool
	}{
		{"valid", func(c *ProfileConfig) {}, false},
		{"missing name", func(c *ProfileConfig) { c.Name = "" }, true},
		{"confidence too high", func(c *ProfileConfig) { c.Confidence = 11 }, true},
		{"confidence negative", func(c *ProfileConfig) { c.Confidence = -1 }, true},
		{"success rate above one", func(c *ProfileConfig) { c.RecentSuccessRate = 1.5 }, true},
		{"missing emotional state", func(c *ProfileConfig) { c.EmotionalState = "" }, true},
		{"unknown stage", func(c *ProfileConfig) { c.LearningStage = "post" }, true},
		{"boundary confidence", func(c *ProfileConfig) { c.Confidence = 10 }, false},
		{"boundary success rate", func(c *ProfileConfig) { c.RecentSuccessRate = 1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseConfigRejectsUnknownFields(t *testing.T) {
	src := `{"name": "X", "domain": "d", "confidence": 5, "recent_success_rate": 0.5,
		"emotional_state": "calm", "learning_stage": "mid", "overconfidnet": true}`
	_, err := ParseConfig(strings.NewReader(src))
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestParseConfigs(t *testing.T) {
	src := `[
		{"name": "A", "domain": "d", "confidence": 5, "recent_success_rate": 0.5,
		 "emotional_state": "calm", "learning_stage": "mid"},
		{"name": "B", "domain": "d", "confidence": 2, "recent_success_rate": 0.1,
		 "emotional_state": "frustrated", "learning_stage": "early", "disengaged": true}
	]`
	cfgs, err := ParseConfigs(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(cfgs) != 2 {
		t.Fatalf("expected 2 configs, got %d", len(cfgs))
	}
	if !cfgs[1].Disengaged {
		t.Error("disengaged flag not decoded")
	}
}
