package scorer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kelsic/dialogia/internal/dialogue"
	"github.com/kelsic/dialogia/internal/oracle"
)

// Config holds the scorer's tunables.
type Config struct {
	Thresholds Thresholds

	// MaxTokens and Temperature are passed through to the oracle.
	// Scoring runs at temperature zero.
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the scorer defaults.
func DefaultConfig() Config {
	return Config{
		Thresholds: DefaultThresholds(),
		MaxTokens:  500,
	}
}

// Scorer evaluates completed transcripts against the pedagogical rubric
// and emits an accept/reject verdict. Each dimension is a separate
// oracle call; the accept decision itself is computed locally.
type Scorer struct {
	provider oracle.Provider
	cfg      Config
}

// NewScorer creates a scorer using the given oracle provider.
func NewScorer(provider oracle.Provider, cfg Config) *Scorer {
	return &Scorer{provider: provider, cfg: cfg}
}

// Score evaluates a completed transcript and returns a verdict.
//
// Transcripts marked partial are refused with ErrPartialTranscript.
// Persona-only transcripts (no student turns) are legal legacy input:
// agency preservation and answer avoidance come back not-applicable and
// the decision rests on the trauma and flow dimensions alone.
//
// Scoring fails closed: an unparseable or out-of-range oracle response
// produces a reject verdict with the scoring_failed rationale, never a
// default score. Transport failures propagate as errors so the caller
// can record the run as failed rather than rejected.
func (s *Scorer) Score(ctx context.Context, t *dialogue.Transcript) (*Verdict, error) {
	if t.Partial {
		return nil, fmt.Errorf("run %s: %w", t.RunID, ErrPartialTranscript)
	}

	ctx = oracle.WithRunID(ctx, t.RunID)
	ctx = oracle.WithPurpose(ctx, "rubric-score")

	rendered := renderForScoring(t)
	hasStudent := t.StudentExchangeCount() > 0

	verdict := &Verdict{RunID: t.RunID}

	trauma, err := s.scoreDimension(ctx, DimTraumaBoundaryRespect, rendered)
	if err != nil {
		return s.failClosed(verdict, err)
	}
	verdict.HardStops = trauma.HardStops
	verdict.HardStop = len(trauma.HardStops) > 0
	verdict.Dimensions = append(verdict.Dimensions, DimensionScore{
		Name:      DimTraumaBoundaryRespect,
		Score:     trauma.Score,
		Rationale: trauma.Rationale,
	})

	flow, err := s.scoreDimension(ctx, DimFlowZoneEngagement, rendered)
	if err != nil {
		return s.failClosed(verdict, err)
	}
	verdict.Dimensions = append(verdict.Dimensions, DimensionScore{
		Name:      DimFlowZoneEngagement,
		Score:     flow.Score,
		Rationale: flow.Rationale,
	})

	// The agency and answer dimensions measure how the student was
	// treated; without student turns there is nothing to measure.
	for _, dim := range []string{DimAgencyPreservation, DimAnswerAvoidance} {
		if !hasStudent {
			verdict.Dimensions = append(verdict.Dimensions, DimensionScore{
				Name:          dim,
				NotApplicable: true,
				Rationale:     "no student exchanges",
			})
			continue
		}
		out, err := s.scoreDimension(ctx, dim, rendered)
		if err != nil {
			return s.failClosed(verdict, err)
		}
		verdict.Dimensions = append(verdict.Dimensions, DimensionScore{
			Name:      dim,
			Score:     out.Score,
			Rationale: out.Rationale,
		})
	}

	s.decide(verdict, trauma.Score, flow.Score)
	return verdict, nil
}

// decide applies the acceptance policy: trauma risk at or below the low
// cutoff, flow at or above the high cutoff, and no hard stop.
func (s *Scorer) decide(v *Verdict, trauma, flow float64) {
	th := s.cfg.Thresholds
	var reasons []string
	if v.HardStop {
		reasons = append(reasons, fmt.Sprintf("hard stop: %v", v.HardStops))
	}
	if trauma > th.TraumaMax {
		reasons = append(reasons, fmt.Sprintf("trauma risk %.1f above %.1f", trauma, th.TraumaMax))
	}
	if flow < th.FlowMin {
		reasons = append(reasons, fmt.Sprintf("flow %.1f below %.1f", flow, th.FlowMin))
	}
	if len(reasons) == 0 {
		v.Accept = true
		v.Rationale = "accepted"
		return
	}
	v.Accept = false
	v.Rationale = fmt.Sprintf("rejected: %s", joinReasons(reasons))
}

func joinReasons(reasons []string) string {
	out := reasons[0]
	for _, r := range reasons[1:] {
		out += "; " + r
	}
	return out
}

// failClosed turns a parse failure into a reject verdict and lets every
// other failure propagate.
func (s *Scorer) failClosed(v *Verdict, err error) (*Verdict, error) {
	var parseErr *ScoringParseError
	if !errors.As(err, &parseErr) {
		return nil, err
	}
	v.Accept = false
	v.Rationale = RationaleScoringFailed
	return v, nil
}

func (s *Scorer) scoreDimension(ctx context.Context, dim, rendered string) (*dimResult, error) {
	schema := scoreSchema
	if dim == DimTraumaBoundaryRespect {
		schema = traumaSchema
	}

	req := oracle.Request{
		System: rubricSystem,
		Messages: []oracle.Message{
			{Role: oracle.RoleUser, Content: rubricMessage(dim, rendered)},
		},
		Schema:      schema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		var invalid *oracle.ErrInvalidResponse
		if errors.As(err, &invalid) {
			return nil, &ScoringParseError{Dimension: dim, Err: err}
		}
		return nil, fmt.Errorf("score %s: %w", dim, err)
	}

	var raw scoreOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &ScoringParseError{Dimension: dim, Err: err}
	}
	if raw.Score == nil {
		return nil, &ScoringParseError{Dimension: dim, Err: fmt.Errorf("response has no score")}
	}
	if *raw.Score < MinScore || *raw.Score > MaxScore {
		return nil, &ScoringParseError{
			Dimension: dim,
			Err:       fmt.Errorf("score %.2f out of range [%.0f, %.0f]", *raw.Score, MinScore, MaxScore),
		}
	}
	for _, hs := range raw.HardStops {
		if !knownHardStop(hs) {
			return nil, &ScoringParseError{
				Dimension: dim,
				Err:       fmt.Errorf("unknown hard stop %q", hs),
			}
		}
	}
	return &dimResult{Score: *raw.Score, HardStops: raw.HardStops, Rationale: raw.Rationale}, nil
}

// dimResult is a validated dimension score.
type dimResult struct {
	Score     float64
	HardStops []string
	Rationale string
}

func knownHardStop(name string) bool {
	for _, hs := range HardStops() {
		if hs == name {
			return true
		}
	}
	return false
}
