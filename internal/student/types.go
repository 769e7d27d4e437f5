package student

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kelsic/dialogia/internal/templates"
)

// LearningStage is how far along the student is with the material.
type LearningStage string

const (
	StageEarly LearningStage = "early"
	StageMid   LearningStage = "mid"
	StageLate  LearningStage = "late"
)

// Confidence bounds for ProfileConfig.Confidence.
const (
	MinConfidence = 0.0
	MaxConfidence = 10.0
)

// ProfileConfig is the closed set of properties describing a simulated
// student. The field set is fixed; loading a config with unknown JSON keys
// fails rather than silently ignoring them. Boolean flags may combine
// freely, including combinations that pull in opposite directions
// (overconfident + disengaged is valid input, not an error).
type ProfileConfig struct {
	// Name labels the config in reports and run events.
	Name string `json:"name"`

	// Domain is the subject area the student is working in.
	Domain string `json:"domain"`

	// Confidence is self-assessed, on a 0-10 scale.
	Confidence float64 `json:"confidence"`

	// RecentSuccessRate is the fraction of recent attempts that went well.
	RecentSuccessRate float64 `json:"recent_success_rate"`

	// EmotionalState is a free label from a bounded vocabulary
	// ("confused", "frustrated", "bored", ...). Must be non-empty.
	EmotionalState string `json:"emotional_state"`

	// LearningStage is one of early, mid, late.
	LearningStage LearningStage `json:"learning_stage"`

	// Trait flags.
	Overconfident        bool `json:"overconfident"`
	BreakthroughMoment   bool `json:"breakthrough_moment"`
	Disengaged           bool `json:"disengaged"`
	Neurodivergent       bool `json:"neurodivergent"`
	BadPriorTeacher      bool `json:"bad_prior_teacher"`
	RejectsMetaphor      bool `json:"rejects_metaphor"`
	ExecutiveFunctionGap bool `json:"executive_function_gap"`
	HyperfocusTrait      bool `json:"hyperfocus_trait"`
}

// Validate checks that every property is within its bounds.
func (c *ProfileConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("student config: name is required")
	}
	if c.Confidence < MinConfidence || c.Confidence > MaxConfidence {
		return fmt.Errorf("student config %s: confidence %.1f out of range [%.0f, %.0f]",
			c.Name, c.Confidence, MinConfidence, MaxConfidence)
	}
	if c.RecentSuccessRate < 0 || c.RecentSuccessRate > 1 {
		return fmt.Errorf("student config %s: recent_success_rate %.2f out of range [0, 1]",
			c.Name, c.RecentSuccessRate)
	}
	if c.EmotionalState == "" {
		return fmt.Errorf("student config %s: emotional_state is required", c.Name)
	}
	switch c.LearningStage {
	case StageEarly, StageMid, StageLate:
	default:
		return fmt.Errorf("student config %s: unknown learning_stage %q", c.Name, c.LearningStage)
	}
	return nil
}

// ParseConfig decodes and validates a single config from JSON. Unknown
// fields are an error.
func ParseConfig(r io.Reader) (*ProfileConfig, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var cfg ProfileConfig
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode student config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseConfigs decodes and validates a JSON array of configs.
func ParseConfigs(r io.Reader) ([]ProfileConfig, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var cfgs []ProfileConfig
	if err := dec.Decode(&cfgs); err != nil {
		return nil, fmt.Errorf("decode student configs: %w", err)
	}
	for i := range cfgs {
		if err := cfgs[i].Validate(); err != nil {
			return nil, err
		}
	}
	return cfgs, nil
}

// props converts the config into the property view template predicates
// match against.
func (c *ProfileConfig) props() templates.Props {
	return templates.Props{
		Confidence:     c.Confidence,
		SuccessRate:    c.RecentSuccessRate,
		EmotionalState: c.EmotionalState,
		LearningStage:  string(c.LearningStage),
		Flags: map[string]bool{
			"overconfident":          c.Overconfident,
			"breakthrough_moment":    c.BreakthroughMoment,
			"disengaged":             c.Disengaged,
			"neurodivergent":         c.Neurodivergent,
			"bad_prior_teacher":      c.BadPriorTeacher,
			"rejects_metaphor":       c.RejectsMetaphor,
			"executive_function_gap": c.ExecutiveFunctionGap,
			"hyperfocus_trait":       c.HyperfocusTrait,
		},
	}
}

// Model is the composed student mental model. Created once per run by
// Compose and immutable afterwards; never shared across concurrent runs.
// Beliefs are allowed to contradict each other: contradiction between
// property-driven categories is a design feature the composer preserves.
type Model struct {
	Config  ProfileConfig
	Beliefs []templates.Fragment
	Koans   []templates.Fragment
	Markers []templates.Fragment
}

// CompositionError means a category had no matching fragment and no
// fallback. This is a template library configuration bug and is fatal for
// the run.
type CompositionError struct {
	Category templates.Category
	Config   string
}

func (e *CompositionError) Error() string {
	return fmt.Sprintf("compose %s: no fragment matches category %q and the category has no fallback",
		e.Config, e.Category)
}
