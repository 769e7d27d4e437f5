package scorer

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/kelsic/dialogia/internal/dialogue"
	"github.com/kelsic/dialogia/internal/oracle"
	"github.com/kelsic/dialogia/internal/pushback"
)

func scoreResp(t *testing.T, score float64, rationale string) oracle.MockResponse {
	t.Helper()
	raw, err := json.Marshal(map[string]any{"score": score, "rationale": rationale})
	if err != nil {
		t.Fatalf("marshal score: %v", err)
	}
	return oracle.MockResponse{Content: raw}
}

func traumaResp(t *testing.T, score float64, hardStops []string) oracle.MockResponse {
	t.Helper()
	if hardStops == nil {
		hardStops = []string{}
	}
	raw, err := json.Marshal(map[string]any{
		"score":      score,
		"hard_stops": hardStops,
		"rationale":  "boundary check",
	})
	if err != nil {
		t.Fatalf("marshal trauma score: %v", err)
	}
	return oracle.MockResponse{Content: raw}
}

func fullTranscript() *dialogue.Transcript {
	return &dialogue.Transcript{
		RunID:       "run-1",
		ScenarioID:  "recursion-wall",
		PersonaIDs:  []string{"indira"},
		StudentName: "Casey",
		Exchanges: []dialogue.Exchange{
			{Role: dialogue.RolePersona, SpeakerID: "indira", Diegetic: "What happens on the first call?"},
			{
				Role: dialogue.RoleStudent, SpeakerID: "Casey",
				Diegetic: "It splits the list, I think?", NonDiegetic: "unsure but engaged",
				Pushback: pushback.CategoryGenuineEngagement,
			},
		},
	}
}

func personaOnlyTranscript() *dialogue.Transcript {
	return &dialogue.Transcript{
		RunID:      "run-legacy",
		ScenarioID: "recursion-wall",
		PersonaIDs: []string{"indira", "marcus"},
		Exchanges: []dialogue.Exchange{
			{Role: dialogue.RolePersona, SpeakerID: "indira", Diegetic: "What have you tried?"},
			{Role: dialogue.RolePersona, SpeakerID: "marcus", Diegetic: "Where does it get stuck?"},
		},
	}
}

func TestScoreAccept(t *testing.T) {
	mock := oracle.NewMockProvider(
		traumaResp(t, 1, nil),
		scoreResp(t, 8, "well calibrated"),
		scoreResp(t, 8, "student led"),
		scoreResp(t, 9, "all questions"),
	)
	s := NewScorer(mock, DefaultConfig())

	v, err := s.Score(context.Background(), fullTranscript())
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if !v.Accept {
		t.Errorf("accept = false (%s), want true", v.Rationale)
	}
	if v.HardStop {
		t.Error("hard stop flagged on clean run")
	}
	if len(v.Dimensions) != 4 {
		t.Fatalf("dimension count = %d, want 4", len(v.Dimensions))
	}
	for i, name := range Dimensions() {
		if v.Dimensions[i].Name != name {
			t.Errorf("dimension %d = %s, want %s", i, v.Dimensions[i].Name, name)
		}
		if v.Dimensions[i].NotApplicable {
			t.Errorf("dimension %s not applicable on full transcript", name)
		}
	}
	if mock.CallCount() != 4 {
		t.Errorf("oracle calls = %d, want 4", mock.CallCount())
	}
}

func TestScoreRejectsHardStop(t *testing.T) {
	mock := oracle.NewMockProvider(
		traumaResp(t, 1, []string{HardStopShaming}),
		scoreResp(t, 9, "good pacing"),
		scoreResp(t, 9, "student led"),
		scoreResp(t, 9, "all questions"),
	)
	s := NewScorer(mock, DefaultConfig())

	v, err := s.Score(context.Background(), fullTranscript())
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if v.Accept {
		t.Error("accepted a run with a hard stop")
	}
	if !v.HardStop {
		t.Error("hard stop not flagged")
	}
	if !strings.Contains(v.Rationale, "hard stop") {
		t.Errorf("rationale %q does not name the hard stop", v.Rationale)
	}
}

func TestScoreRejectsHighTrauma(t *testing.T) {
	mock := oracle.NewMockProvider(
		traumaResp(t, 6, nil),
		scoreResp(t, 9, "good pacing"),
		scoreResp(t, 9, "student led"),
		scoreResp(t, 9, "all questions"),
	)
	s := NewScorer(mock, DefaultConfig())

	v, err := s.Score(context.Background(), fullTranscript())
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if v.Accept {
		t.Error("accepted a run with trauma risk above the cutoff")
	}
}

func TestScoreRejectsLowFlow(t *testing.T) {
	mock := oracle.NewMockProvider(
		traumaResp(t, 0, nil),
		scoreResp(t, 3, "too easy throughout"),
		scoreResp(t, 9, "student led"),
		scoreResp(t, 9, "all questions"),
	)
	s := NewScorer(mock, DefaultConfig())

	v, err := s.Score(context.Background(), fullTranscript())
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if v.Accept {
		t.Error("accepted a run with flow below the cutoff")
	}
}

func TestScoreThresholdsConfigurable(t *testing.T) {
	mock := oracle.NewMockProvider(
		traumaResp(t, 4, nil),
		scoreResp(t, 5, "middling"),
		scoreResp(t, 5, "middling"),
		scoreResp(t, 5, "middling"),
	)
	cfg := DefaultConfig()
	cfg.Thresholds = Thresholds{TraumaMax: 5, FlowMin: 4}
	s := NewScorer(mock, cfg)

	v, err := s.Score(context.Background(), fullTranscript())
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if !v.Accept {
		t.Errorf("loosened thresholds should accept, got %s", v.Rationale)
	}
}

func TestScoringFailsClosedOnUnparseable(t *testing.T) {
	// Free text where a score object was required.
	mock := oracle.NewMockProvider(
		oracle.TextResponse("this dialogue seems fine to me"),
	)
	s := NewScorer(mock, DefaultConfig())

	v, err := s.Score(context.Background(), fullTranscript())
	if err != nil {
		t.Fatalf("parse failure must fail closed, not error: %v", err)
	}
	if v.Accept {
		t.Error("accepted despite unparseable scoring output")
	}
	if v.Rationale != RationaleScoringFailed {
		t.Errorf("rationale = %q, want %q", v.Rationale, RationaleScoringFailed)
	}
}

func TestScoringFailsClosedOnOutOfRange(t *testing.T) {
	mock := oracle.NewMockProvider(
		traumaResp(t, 1, nil),
		scoreResp(t, 42, "over-enthusiastic"),
	)
	s := NewScorer(mock, DefaultConfig())

	v, err := s.Score(context.Background(), fullTranscript())
	if err != nil {
		t.Fatalf("out-of-range score must fail closed, not error: %v", err)
	}
	if v.Accept || v.Rationale != RationaleScoringFailed {
		t.Errorf("verdict = accept=%v rationale=%q, want reject scoring_failed", v.Accept, v.Rationale)
	}
}

func TestScoringFailsClosedOnMissingScore(t *testing.T) {
	raw, _ := json.Marshal(map[string]any{"rationale": "forgot the number"})
	mock := oracle.NewMockProvider(oracle.MockResponse{Content: raw})
	s := NewScorer(mock, DefaultConfig())

	v, err := s.Score(context.Background(), fullTranscript())
	if err != nil {
		t.Fatalf("missing score must fail closed, not error: %v", err)
	}
	if v.Accept || v.Rationale != RationaleScoringFailed {
		t.Errorf("verdict = accept=%v rationale=%q, want reject scoring_failed", v.Accept, v.Rationale)
	}
}

func TestTransportErrorPropagates(t *testing.T) {
	mock := oracle.NewMockProvider(
		oracle.MockResponse{Err: &oracle.ErrProviderUnavailable{}},
	)
	s := NewScorer(mock, DefaultConfig())

	v, err := s.Score(context.Background(), fullTranscript())
	if err == nil {
		t.Fatal("expected transport error to propagate")
	}
	if v != nil {
		t.Error("transport failure must not produce a verdict")
	}
}

func TestPersonaOnlyTranscript(t *testing.T) {
	mock := oracle.NewMockProvider(
		traumaResp(t, 1, nil),
		scoreResp(t, 8, "well calibrated"),
	)
	s := NewScorer(mock, DefaultConfig())

	v, err := s.Score(context.Background(), personaOnlyTranscript())
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("oracle calls = %d, want 2 (agency and answer skipped)", mock.CallCount())
	}
	if !v.Accept {
		t.Errorf("accept = false (%s), want true on trauma and flow alone", v.Rationale)
	}
	var na []string
	for _, d := range v.Dimensions {
		if d.NotApplicable {
			na = append(na, d.Name)
		}
	}
	if len(na) != 2 || na[0] != DimAgencyPreservation || na[1] != DimAnswerAvoidance {
		t.Errorf("not-applicable dimensions = %v, want agency and answer avoidance", na)
	}
}

func TestPartialTranscriptRefused(t *testing.T) {
	tr := fullTranscript()
	tr.Partial = true
	s := NewScorer(oracle.NewMockProvider(), DefaultConfig())

	v, err := s.Score(context.Background(), tr)
	if !errors.Is(err, ErrPartialTranscript) {
		t.Fatalf("err = %v, want ErrPartialTranscript", err)
	}
	if v != nil {
		t.Error("partial transcript must not produce a verdict")
	}
	if s.provider.(*oracle.MockProvider).CallCount() != 0 {
		t.Error("partial transcript reached the oracle")
	}
}
