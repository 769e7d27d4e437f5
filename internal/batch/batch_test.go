package batch

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/kelsic/dialogia/internal/content"
	"github.com/kelsic/dialogia/internal/dialogue"
	"github.com/kelsic/dialogia/internal/oracle"
	"github.com/kelsic/dialogia/internal/store"
	"github.com/kelsic/dialogia/internal/student"
	"github.com/kelsic/dialogia/internal/templates"
)

func turnResp(t *testing.T, diegetic string) oracle.MockResponse {
	t.Helper()
	raw, err := json.Marshal(map[string]any{"diegetic": diegetic, "non_diegetic": "r"})
	if err != nil {
		t.Fatalf("marshal turn: %v", err)
	}
	return oracle.MockResponse{Content: raw}
}

func scoreResp(t *testing.T, score float64, hardStops []string) oracle.MockResponse {
	t.Helper()
	body := map[string]any{"score": score, "rationale": "r"}
	if hardStops != nil {
		body["hard_stops"] = hardStops
	}
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal score: %v", err)
	}
	return oracle.MockResponse{Content: raw}
}

// One run with a single persona and one round makes seven oracle calls:
// opening, persona turn, student turn, then four rubric dimensions.
func runResponses(t *testing.T, traumaStops []string) []oracle.MockResponse {
	t.Helper()
	if traumaStops == nil {
		traumaStops = []string{}
	}
	return []oracle.MockResponse{
		turnResp(t, "Where does your trace get stuck?"),
		turnResp(t, "What happens on the very first call?"),
		turnResp(t, "Does the base case ever fire?"),
		scoreResp(t, 1, traumaStops),
		scoreResp(t, 8, nil),
		scoreResp(t, 8, nil),
		scoreResp(t, 9, nil),
	}
}

func cycleConfig(iterations int, artifactDir string) Config {
	return Config{
		Students: []student.ProfileConfig{{
			Name:              "Confused_Beginner",
			Domain:            "recursion",
			Confidence:        3,
			RecentSuccessRate: 0.4,
			EmotionalState:    "confused",
			LearningStage:     student.StageEarly,
		}},
		Scenarios:         content.SeedScenarios()[:1],
		Deck:              content.SeedQuestions(),
		Library:           templates.Seed(),
		IterationsPerPair: iterations,
		Seed:              42,
		Concurrency:       1,
		ArtifactDir:       artifactDir,
		Scheduler:         dialogue.Config{MaxRounds: 1, MaxTokens: 200, Temperature: 0.9},
	}
}

// eventCapture is a store.EventRepo that records run and verdict appends.
type eventCapture struct {
	mu       sync.Mutex
	runs     []store.RunEventData
	verdicts []store.VerdictEventData
}

func (c *eventCapture) AppendOracleRequest(context.Context, store.OracleRequestEventData) error {
	return nil
}

func (c *eventCapture) QueryOracleEvents(context.Context, store.QueryOpts) ([]store.OracleEvent, error) {
	return nil, nil
}

func (c *eventCapture) GetOracleEvent(context.Context, int) (*store.OracleEvent, error) {
	return nil, nil
}

func (c *eventCapture) OracleUsageByPurpose(context.Context) ([]store.OracleUsage, error) {
	return nil, nil
}

func (c *eventCapture) OracleUsageByModel(context.Context) ([]store.OracleUsage, error) {
	return nil, nil
}

func (c *eventCapture) AppendRun(_ context.Context, data store.RunEventData) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.runs = append(c.runs, data)
	return nil
}

func (c *eventCapture) RunOutcomes(context.Context) ([]store.RunOutcomeStats, error) {
	return nil, nil
}

func (c *eventCapture) AppendVerdict(_ context.Context, data store.VerdictEventData) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.verdicts = append(c.verdicts, data)
	return nil
}

func (c *eventCapture) VerdictForRun(context.Context, string) (*store.Verdict, error) {
	return nil, nil
}

func TestRunCycleAcceptAndReject(t *testing.T) {
	var responses []oracle.MockResponse
	responses = append(responses, runResponses(t, nil)...)
	responses = append(responses, runResponses(t, []string{"complete_answer"})...)
	mock := oracle.NewMockProvider(responses...)

	events := &eventCapture{}
	runner := NewRunner(mock, events, nil)

	artifactDir := t.TempDir()
	report, err := runner.RunCycle(context.Background(), cycleConfig(2, artifactDir))
	if err != nil {
		t.Fatalf("run cycle: %v", err)
	}

	if report.Total != 2 || report.Accepted != 1 || report.Rejected != 1 || report.Failed != 0 {
		t.Errorf("counts = %d/%d/%d/%d, want total 2, accepted 1, rejected 1, failed 0",
			report.Total, report.Accepted, report.Rejected, report.Failed)
	}
	if len(report.Analysis.Pairs) != 1 {
		t.Fatalf("pair findings = %d, want 1", len(report.Analysis.Pairs))
	}
	if got := report.Analysis.Pairs[0].PassRate; got != 0.5 {
		t.Errorf("pass rate = %.2f, want 0.5", got)
	}
	if len(report.Analysis.TopQuestions) == 0 {
		t.Error("no top questions from the accepted run")
	}

	// 2 starts + 2 finishes, one verdict per scored run.
	if len(events.runs) != 4 {
		t.Errorf("run events = %d, want 4", len(events.runs))
	}
	if len(events.verdicts) != 2 {
		t.Errorf("verdict events = %d, want 2", len(events.verdicts))
	}

	cycleDir := filepath.Join(artifactDir, report.CycleID)
	loaded, err := LoadReport(cycleDir)
	if err != nil {
		t.Fatalf("load report: %v", err)
	}
	if loaded.CycleID != report.CycleID || loaded.Total != 2 {
		t.Errorf("reloaded report mismatch: %+v", loaded)
	}

	entries, err := os.ReadDir(filepath.Join(cycleDir, AcceptedDirName))
	if err != nil {
		t.Fatalf("read accepted dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("accepted exports = %d, want 1", len(entries))
	}
}

func TestRunCycleFailureIsolated(t *testing.T) {
	// First run dies on its opening call; the second completes cleanly.
	var responses []oracle.MockResponse
	responses = append(responses, oracle.MockResponse{Err: &oracle.ErrProviderUnavailable{}})
	responses = append(responses, runResponses(t, nil)...)
	mock := oracle.NewMockProvider(responses...)

	runner := NewRunner(mock, nil, nil)
	report, err := runner.RunCycle(context.Background(), cycleConfig(2, ""))
	if err != nil {
		t.Fatalf("run cycle: %v", err)
	}

	if report.Failed != 1 || report.Accepted != 1 {
		t.Errorf("failed = %d, accepted = %d, want 1 and 1", report.Failed, report.Accepted)
	}
	var failed *Result
	for i := range report.Results {
		if report.Results[i].Outcome == OutcomeFailed {
			failed = &report.Results[i]
		}
	}
	if failed == nil {
		t.Fatal("no failed result recorded")
	}
	if failed.Error == "" {
		t.Error("failed result carries no error message")
	}
	if failed.Verdict != nil {
		t.Error("failed run must not carry a verdict")
	}
}

func TestRunCycleDeterministicPersonas(t *testing.T) {
	// Same seed, same deck: both cycles must plan the same personas.
	run := func() []string {
		var responses []oracle.MockResponse
		for i := 0; i < 2; i++ {
			responses = append(responses, runResponses(t, nil)...)
		}
		runner := NewRunner(oracle.NewMockProvider(responses...), nil, nil)
		report, err := runner.RunCycle(context.Background(), cycleConfig(2, ""))
		if err != nil {
			t.Fatalf("run cycle: %v", err)
		}
		var keys []string
		for _, res := range report.Results {
			keys = append(keys, res.QuestionKeys...)
		}
		return keys
	}

	first, second := run(), run()
	if len(first) != len(second) {
		t.Fatalf("question key counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("key %d differs: %s vs %s", i, first[i], second[i])
		}
	}
}

func TestRunCycleValidation(t *testing.T) {
	runner := NewRunner(oracle.NewMockProvider(), nil, nil)

	cfg := cycleConfig(1, "")
	cfg.Students = nil
	if _, err := runner.RunCycle(context.Background(), cfg); err == nil {
		t.Error("expected error for empty student set")
	}

	cfg = cycleConfig(0, "")
	if _, err := runner.RunCycle(context.Background(), cfg); err == nil {
		t.Error("expected error for zero iterations")
	}
}

func TestAnalyzeRanksQuestions(t *testing.T) {
	results := []Result{
		{Student: "A", ScenarioID: "s1", Outcome: OutcomeAccepted, QuestionKeys: []string{"q1", "q2"}},
		{Student: "A", ScenarioID: "s1", Outcome: OutcomeAccepted, QuestionKeys: []string{"q1", "q3"}},
		{Student: "A", ScenarioID: "s1", Outcome: OutcomeRejected, QuestionKeys: []string{"q4"}},
		{Student: "B", ScenarioID: "s1", Outcome: OutcomeFailed},
	}

	a := Analyze(results)
	if len(a.Pairs) != 2 {
		t.Fatalf("pairs = %d, want 2", len(a.Pairs))
	}
	if a.Pairs[0].Student != "A" || a.Pairs[1].Student != "B" {
		t.Errorf("pair order = %s, %s; want A then B", a.Pairs[0].Student, a.Pairs[1].Student)
	}
	if a.Pairs[0].PassRate != 2.0/3.0 {
		t.Errorf("pass rate = %f, want 2/3", a.Pairs[0].PassRate)
	}
	if a.Pairs[1].Failed != 1 || a.Pairs[1].PassRate != 0 {
		t.Errorf("pair B = %+v, want one failed and zero pass rate", a.Pairs[1])
	}

	// q1 twice, then q2 and q3 alphabetically. q4 was rejected, not counted.
	want := []QuestionCount{{"q1", 2}, {"q2", 1}, {"q3", 1}}
	if len(a.TopQuestions) != len(want) {
		t.Fatalf("top questions = %v, want %v", a.TopQuestions, want)
	}
	for i, w := range want {
		if a.TopQuestions[i] != w {
			t.Errorf("top question %d = %v, want %v", i, a.TopQuestions[i], w)
		}
	}
}
