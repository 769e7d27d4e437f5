// Package batch runs procgen discovery cycles: random personas tested
// against every student-config and scenario pair, scored, analyzed for
// patterns, and written out as cycle artifacts.
package batch

import (
	"time"

	"github.com/kelsic/dialogia/internal/content"
	"github.com/kelsic/dialogia/internal/dialogue"
	"github.com/kelsic/dialogia/internal/scorer"
	"github.com/kelsic/dialogia/internal/student"
	"github.com/kelsic/dialogia/internal/templates"
)

// Run outcomes. A failed run (oracle broke, composition failed) is kept
// distinct from a run that completed and was rejected by the rubric.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Config describes one discovery cycle.
type Config struct {
	Students  []student.ProfileConfig
	Scenarios []content.Scenario
	Deck      content.QuestionDeck
	Library   *templates.Library

	// IterationsPerPair is how many random personas to test against each
	// student-scenario pair.
	IterationsPerPair int

	// Seed drives the procgen persona generator. The same seed over the
	// same deck produces the same persona sequence.
	Seed int64

	// Concurrency bounds how many runs execute at once. Zero or negative
	// means DefaultConcurrency.
	Concurrency int

	// ArtifactDir, when set, receives a per-cycle directory with the
	// cycle report and the accepted transcript exports.
	ArtifactDir string

	Scheduler dialogue.Config
	Scorer    scorer.Config
}

// DefaultConcurrency is the run parallelism used when none is configured.
const DefaultConcurrency = 4

// Result is the outcome of one run inside a cycle.
type Result struct {
	RunID        string   `json:"run_id"`
	Student      string   `json:"student"`
	ScenarioID   string   `json:"scenario_id"`
	Persona      string   `json:"persona"`
	QuestionKeys []string `json:"question_keys"`

	Outcome          string  `json:"outcome"`
	Exchanges        int     `json:"exchanges"`
	StudentExchanges int     `json:"student_exchanges"`
	PushbackRate     float64 `json:"pushback_rate"`

	Verdict *scorer.Verdict `json:"verdict,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Report is the full record of one discovery cycle.
type Report struct {
	CycleID    string    `json:"cycle_id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	Total    int `json:"total"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
	Failed   int `json:"failed"`

	Results  []Result `json:"results"`
	Analysis Analysis `json:"analysis"`
}
