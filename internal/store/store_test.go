package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceMonotonicAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendOracleRequest(ctx, OracleRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "persona-turn", Success: true,
	})
	if err != nil {
		t.Fatalf("append oracle request: %v", err)
	}
	err = repo.AppendRun(ctx, RunEventData{RunID: "run-1", Action: "start"})
	if err != nil {
		t.Fatalf("append run: %v", err)
	}
	err = repo.AppendVerdict(ctx, VerdictEventData{RunID: "run-1", Accept: true})
	if err != nil {
		t.Fatalf("append verdict: %v", err)
	}

	events, err := repo.QueryOracleEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query oracle events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 oracle event, got %d", len(events))
	}
	oracleSeq := events[0].Sequence

	verdict, err := repo.VerdictForRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("verdict for run: %v", err)
	}
	if verdict == nil {
		t.Fatal("expected verdict")
	}
	if verdict.Sequence <= oracleSeq {
		t.Errorf("verdict sequence %d should follow oracle sequence %d",
			verdict.Sequence, oracleSeq)
	}
}

func TestOracleEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendOracleRequest(ctx, OracleRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-20250514",
		Purpose:      "rubric-score",
		RunID:        "run-42",
		InputTokens:  120,
		OutputTokens: 40,
		LatencyMs:    830,
		Success:      true,
		RequestBody:  "[system]\nScore the transcript.",
		ResponseBody: `{"score":1}`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryOracleEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	got, err := repo.GetOracleEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected event")
	}
	if got.Purpose != "rubric-score" {
		t.Errorf("purpose = %q, want rubric-score", got.Purpose)
	}
	if got.RunID != "run-42" {
		t.Errorf("run ID = %q, want run-42", got.RunID)
	}
	if got.InputTokens != 120 || got.OutputTokens != 40 {
		t.Errorf("tokens = %d/%d, want 120/40", got.InputTokens, got.OutputTokens)
	}
	if got.ResponseBody != `{"score":1}` {
		t.Errorf("response body = %q", got.ResponseBody)
	}
}

func TestGetOracleEventNotFound(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()

	got, err := repo.GetOracleEvent(context.Background(), 9999)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestOracleUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []OracleRequestEventData{
		{Provider: "mock", Model: "mock", Purpose: "persona-turn", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true},
		{Provider: "mock", Model: "mock", Purpose: "persona-turn", InputTokens: 200, OutputTokens: 60, LatencyMs: 400, Success: true},
		{Provider: "mock", Model: "mock", Purpose: "rubric-score", InputTokens: 300, OutputTokens: 10, LatencyMs: 100, Success: true},
	}
	for i, a := range appends {
		if err := repo.AppendOracleRequest(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	usage, err := repo.OracleUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("expected 2 purpose groups, got %d", len(usage))
	}

	byPurpose := map[string]OracleUsage{}
	for _, u := range usage {
		byPurpose[u.Purpose] = u
	}

	pt := byPurpose["persona-turn"]
	if pt.Calls != 2 {
		t.Errorf("persona-turn calls = %d, want 2", pt.Calls)
	}
	if pt.InputTokens != 300 {
		t.Errorf("persona-turn input tokens = %d, want 300", pt.InputTokens)
	}
	if pt.AvgLatencyMs != 300 {
		t.Errorf("persona-turn avg latency = %d, want 300", pt.AvgLatencyMs)
	}

	rs := byPurpose["rubric-score"]
	if rs.Calls != 1 || rs.InputTokens != 300 {
		t.Errorf("rubric-score = %+v", rs)
	}
}

func TestRunOutcomes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	runs := []RunEventData{
		{RunID: "r1", Action: "start"},
		{RunID: "r1", Action: "finish", Outcome: "accepted", Exchanges: 7, StudentExchanges: 3, PushbackRate: 0.5},
		{RunID: "r2", Action: "start"},
		{RunID: "r2", Action: "finish", Outcome: "accepted", Exchanges: 5, StudentExchanges: 2, PushbackRate: 1.0},
		{RunID: "r3", Action: "start"},
		{RunID: "r3", Action: "finish", Outcome: "failed", ErrorMessage: "oracle exhausted"},
	}
	for i, r := range runs {
		if err := repo.AppendRun(ctx, r); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.RunOutcomes(ctx)
	if err != nil {
		t.Fatalf("outcomes: %v", err)
	}

	byOutcome := map[string]RunOutcomeStats{}
	for _, st := range stats {
		byOutcome[st.Outcome] = st
	}

	acc := byOutcome["accepted"]
	if acc.Runs != 2 {
		t.Errorf("accepted runs = %d, want 2", acc.Runs)
	}
	if acc.AvgExchanges != 6 {
		t.Errorf("accepted avg exchanges = %f, want 6", acc.AvgExchanges)
	}
	if acc.AvgPushbackRate != 0.75 {
		t.Errorf("accepted avg pushback rate = %f, want 0.75", acc.AvgPushbackRate)
	}

	if byOutcome["failed"].Runs != 1 {
		t.Errorf("failed runs = %d, want 1", byOutcome["failed"].Runs)
	}
}

func TestVerdictRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendVerdict(ctx, VerdictEventData{
		RunID:    "run-7",
		Accept:   false,
		HardStop: true,
		Dimensions: []DimensionScoreData{
			{Name: "socratic_restraint", Score: 0, Rationale: "gave the answer away"},
			{Name: "emotional_attunement", Score: 1},
		},
		Rationale: "hard stop: complete answer provided",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	v, err := repo.VerdictForRun(ctx, "run-7")
	if err != nil {
		t.Fatalf("verdict: %v", err)
	}
	if v == nil {
		t.Fatal("expected verdict")
	}
	if v.Accept {
		t.Error("expected reject")
	}
	if !v.HardStop {
		t.Error("expected hard stop flag")
	}
	if len(v.Dimensions) != 2 {
		t.Fatalf("expected 2 dimensions, got %d", len(v.Dimensions))
	}
	if v.Dimensions[0].Name != "socratic_restraint" || v.Dimensions[0].Score != 0 {
		t.Errorf("dimension 0 = %+v", v.Dimensions[0])
	}

	// Missing run yields nil, not an error.
	none, err := repo.VerdictForRun(ctx, "run-none")
	if err != nil {
		t.Fatalf("verdict (missing): %v", err)
	}
	if none != nil {
		t.Fatal("expected nil verdict for unknown run")
	}
}
