package dialogue

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/kelsic/dialogia/internal/content"
	"github.com/kelsic/dialogia/internal/oracle"
	"github.com/kelsic/dialogia/internal/pushback"
	"github.com/kelsic/dialogia/internal/student"
	"github.com/kelsic/dialogia/internal/templates"
)

func turnResp(diegetic, nonDiegetic string) oracle.MockResponse {
	raw, _ := json.Marshal(turnOutput{Diegetic: diegetic, NonDiegetic: nonDiegetic})
	return oracle.MockResponse{Content: raw}
}

func testStudent(t *testing.T) *student.Model {
	t.Helper()
	m, err := student.Compose(student.ProfileConfig{
		Name:              "Casey",
		Domain:            "recursion",
		Confidence:        3,
		RecentSuccessRate: 0.4,
		EmotionalState:    "confused",
		LearningStage:     student.StageEarly,
	}, templates.Seed())
	if err != nil {
		t.Fatalf("compose test student: %v", err)
	}
	return m
}

func testInput(t *testing.T, personaCount int) RunInput {
	t.Helper()
	all := []content.Persona{
		content.SeedPersonas()["indira"],
		content.SeedPersonas()["marcus"],
		content.SeedPersonas()["sable"],
	}
	return RunInput{
		RunID:    "test-run",
		Scenario: content.SeedScenarios()[0],
		Personas: all[:personaCount],
		Deck:     content.SeedQuestions(),
		Student:  testStudent(t),
	}
}

func TestRunThreePersonasTwoRounds(t *testing.T) {
	// 3 openings + 2 persona turns + 2 student turns = 7 exchanges.
	mock := oracle.NewMockProvider(
		turnResp("Opening one.", "r"),
		turnResp("Opening two.", "r"),
		turnResp("Opening three.", "r"),
		turnResp("First round question.", "r"),
		turnResp("But that never worked when I tried it on the recursion problem.", "honest pushback"),
		turnResp("Second round question.", "r"),
		turnResp("Okay.", "just acknowledging"),
	)

	cfg := DefaultConfig()
	cfg.MaxRounds = 2
	sched := NewScheduler(mock, cfg)

	transcript, err := sched.Run(context.Background(), testInput(t, 3))
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if got := len(transcript.Exchanges); got != 7 {
		t.Fatalf("exchange count = %d, want 7", got)
	}
	if transcript.Partial {
		t.Error("completed transcript marked partial")
	}

	// Openings land before any student turn.
	for i := 0; i < 3; i++ {
		if transcript.Exchanges[i].Role != RolePersona {
			t.Errorf("exchange %d role = %s, want persona", i, transcript.Exchanges[i].Role)
		}
	}

	stats, err := Replay(transcript)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if stats.StudentExchanges != 2 {
		t.Errorf("student exchanges = %d, want 2", stats.StudentExchanges)
	}
	total := 0
	for _, n := range stats.Histogram {
		total += n
	}
	if total != 2 {
		t.Errorf("histogram sum = %d, want 2", total)
	}
	if stats.PushbackRate < 0 || stats.PushbackRate > 1 {
		t.Errorf("pushback rate %f out of [0,1]", stats.PushbackRate)
	}
}

func TestRunRoundRobinNeverRepeatsPersona(t *testing.T) {
	var responses []oracle.MockResponse
	// 2 openings + 5 rounds of (persona, student).
	responses = append(responses, turnResp("Opening A.", "r"), turnResp("Opening B.", "r"))
	for i := 0; i < 5; i++ {
		responses = append(responses,
			turnResp(fmt.Sprintf("Persona turn %d.", i), "r"),
			turnResp("Okay.", "acknowledging"),
		)
	}
	mock := oracle.NewMockProvider(responses...)

	cfg := DefaultConfig()
	cfg.MaxRounds = 5
	sched := NewScheduler(mock, cfg)

	transcript, err := sched.Run(context.Background(), testInput(t, 2))
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	lastPersona := ""
	for i, e := range transcript.Exchanges {
		if e.Role != RolePersona {
			continue
		}
		if e.SpeakerID == lastPersona {
			t.Errorf("exchange %d: persona %q spoke twice in a row", i, e.SpeakerID)
		}
		lastPersona = e.SpeakerID
	}
}

func TestRunStudentTurnsClassified(t *testing.T) {
	mock := oracle.NewMockProvider(
		turnResp("Let's look at the scenario together.", "opening"),
		turnResp("What have you tried?", "r"),
		turnResp("Does the base case fire when the list is empty?", "a real question"),
	)

	cfg := DefaultConfig()
	cfg.MaxRounds = 1
	sched := NewScheduler(mock, cfg)

	transcript, err := sched.Run(context.Background(), testInput(t, 1))
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	last := transcript.Exchanges[len(transcript.Exchanges)-1]
	if last.Role != RoleStudent {
		t.Fatalf("last exchange role = %s, want student", last.Role)
	}
	if last.Pushback != pushback.CategoryGenuineEngagement {
		t.Errorf("classification = %q, want genuine_engagement", last.Pushback)
	}
}

func TestRunEarlyStop(t *testing.T) {
	mock := oracle.NewMockProvider(
		turnResp("Opening A.", "r"),
		turnResp("Opening B.", "r"),
		turnResp("Round one question.", "r"),
		turnResp("Okay.", "checked out"),
	)

	cfg := DefaultConfig()
	cfg.MaxRounds = 5
	cfg.EarlyStop = func(st Stats) bool {
		return st.StudentExchanges >= 1
	}
	sched := NewScheduler(mock, cfg)

	transcript, err := sched.Run(context.Background(), testInput(t, 2))
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	// Stopped after round one: 2 openings + 1 persona + 1 student.
	if got := len(transcript.Exchanges); got != 4 {
		t.Errorf("exchange count = %d, want 4", got)
	}
	if transcript.Partial {
		t.Error("early-stopped transcript marked partial; early stop completes the run")
	}
}

func TestRunOracleFailureMarksPartial(t *testing.T) {
	mock := oracle.NewMockProvider(
		turnResp("Opening A.", "r"),
		oracle.MockResponse{Err: &oracle.ErrProviderUnavailable{}},
	)

	sched := NewScheduler(mock, DefaultConfig())
	transcript, err := sched.Run(context.Background(), testInput(t, 2))
	if err == nil {
		t.Fatal("expected error")
	}
	if transcript == nil {
		t.Fatal("expected partial transcript alongside the error")
	}
	if !transcript.Partial {
		t.Error("abandoned transcript not marked partial")
	}
	if got := len(transcript.Exchanges); got != 1 {
		t.Errorf("exchange count = %d, want 1", got)
	}
	if !strings.Contains(err.Error(), "AWAITING_OPENINGS") {
		t.Errorf("error %q does not name the state", err)
	}
}

func TestRunStudentSeesLiteralPersonaTurn(t *testing.T) {
	personaLine := "Walk me through exactly what happens on the first call."
	mock := oracle.NewMockProvider(
		turnResp("Tell me about the problem.", "opening"),
		turnResp(personaLine, "r"),
		turnResp("The first call splits the list.", "tracing it"),
	)

	cfg := DefaultConfig()
	cfg.MaxRounds = 1
	sched := NewScheduler(mock, cfg)

	if _, err := sched.Run(context.Background(), testInput(t, 1)); err != nil {
		t.Fatalf("run: %v", err)
	}

	// The student call is the last mock call; its message must quote the
	// persona's literal text, not a paraphrase.
	studentCall := mock.Calls[len(mock.Calls)-1]
	if len(studentCall.Messages) == 0 || !strings.Contains(studentCall.Messages[0].Content, personaLine) {
		t.Error("student turn context does not contain the literal persona turn")
	}
}

func TestRunRejectsEmptyPersonaSet(t *testing.T) {
	sched := NewScheduler(oracle.NewMockProvider(), DefaultConfig())
	in := testInput(t, 1)
	in.Personas = nil
	if _, err := sched.Run(context.Background(), in); err == nil {
		t.Fatal("expected error for empty persona set")
	}
}
