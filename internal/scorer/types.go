package scorer

import "fmt"

// Rubric dimensions. Each one is scored by a separate oracle call so a
// bad reading on one axis never contaminates the others.
const (
	DimTraumaBoundaryRespect = "trauma_boundary_respect"
	DimFlowZoneEngagement    = "flow_zone_engagement"
	DimAgencyPreservation    = "agency_preservation"
	DimAnswerAvoidance       = "answer_avoidance"
)

// Dimensions returns every rubric dimension in scoring order.
func Dimensions() []string {
	return []string{
		DimTraumaBoundaryRespect,
		DimFlowZoneEngagement,
		DimAgencyPreservation,
		DimAnswerAvoidance,
	}
}

// Hard-stop boundaries. Any single one crossing fails the whole run
// regardless of the dimensional scores.
const (
	HardStopShaming            = "shaming"
	HardStopCompleteAnswer     = "complete_answer"
	HardStopEmotionalDismissal = "emotional_dismissal"
	HardStopAgencyRemoval      = "agency_removal"
)

// HardStops returns the closed set of recognized hard-stop names.
func HardStops() []string {
	return []string{
		HardStopShaming,
		HardStopCompleteAnswer,
		HardStopEmotionalDismissal,
		HardStopAgencyRemoval,
	}
}

// Score bounds for every dimension.
const (
	MinScore = 0.0
	MaxScore = 10.0
)

// RationaleScoringFailed marks a verdict rejected because the scoring
// oracle's output could not be used, not because the dialogue was bad.
const RationaleScoringFailed = "scoring_failed"

// DimensionScore is one scored rubric axis. NotApplicable axes carry a
// zero score that must not be read as a real measurement.
type DimensionScore struct {
	Name          string  `json:"name"`
	Score         float64 `json:"score"`
	NotApplicable bool    `json:"not_applicable,omitempty"`
	Rationale     string  `json:"rationale"`
}

// Verdict is the accept/reject decision for one completed transcript.
type Verdict struct {
	RunID      string           `json:"run_id"`
	Accept     bool             `json:"accept"`
	HardStop   bool             `json:"hard_stop"`
	HardStops  []string         `json:"hard_stops,omitempty"`
	Dimensions []DimensionScore `json:"dimensions"`
	Rationale  string           `json:"rationale"`
}

// Thresholds are the acceptance cutoffs. Both bounds are inclusive.
type Thresholds struct {
	// TraumaMax is the highest trauma risk score an accepted run may carry.
	TraumaMax float64

	// FlowMin is the lowest flow engagement score an accepted run may carry.
	FlowMin float64
}

// DefaultThresholds returns the acceptance cutoffs used when none are
// configured.
func DefaultThresholds() Thresholds {
	return Thresholds{TraumaMax: 2, FlowMin: 7}
}

// ErrPartialTranscript is returned when a transcript marked partial is
// offered for scoring. Partial transcripts are never scored.
var ErrPartialTranscript = fmt.Errorf("transcript is partial, refusing to score")

// ScoringParseError wraps an oracle response that could not be read as a
// dimension score. It triggers the fail-closed reject path.
type ScoringParseError struct {
	Dimension string
	Err       error
}

func (e *ScoringParseError) Error() string {
	return fmt.Sprintf("scoring %s: %v", e.Dimension, e.Err)
}

func (e *ScoringParseError) Unwrap() error { return e.Err }
