package dialogue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kelsic/dialogia/internal/content"
	"github.com/kelsic/dialogia/internal/oracle"
	"github.com/kelsic/dialogia/internal/pushback"
	"github.com/kelsic/dialogia/internal/student"
)

// State is the scheduler's position in a run. Transitions are strictly
// linear per round; there is no backtracking.
type State int

const (
	StateAwaitingOpenings State = iota
	StateAwaitingPersonaTurn
	StateAwaitingStudentTurn
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateAwaitingOpenings:
		return "AWAITING_OPENINGS"
	case StateAwaitingPersonaTurn:
		return "AWAITING_PERSONA_TURN"
	case StateAwaitingStudentTurn:
		return "AWAITING_STUDENT_TURN"
	case StateComplete:
		return "COMPLETE"
	}
	return "UNKNOWN"
}

// Config holds the scheduler's tunables.
type Config struct {
	// MaxRounds is the number of persona-turn/student-turn rounds after
	// the opening phase.
	MaxRounds int

	// MaxTokens and Temperature are passed through to the oracle.
	MaxTokens   int
	Temperature float64

	// EarlyStop, when set, is consulted after each completed round with
	// the running stats. A true return ends the run early. The signal is
	// advisory; the transcript still completes normally.
	EarlyStop func(Stats) bool
}

// DefaultConfig returns the scheduler defaults.
func DefaultConfig() Config {
	return Config{
		MaxRounds:   2,
		MaxTokens:   400,
		Temperature: 0.9,
	}
}

// RunInput is everything one dialogue run needs. Each run owns its own
// student model and transcript; nothing here is shared with other runs
// except the read-only deck.
type RunInput struct {
	RunID    string
	Scenario content.Scenario
	Personas []content.Persona
	Deck     content.QuestionDeck
	Student  *student.Model
}

// Scheduler drives one dialogue run: an opening turn from every persona,
// then up to MaxRounds of one persona turn followed by one student turn,
// with every student turn classified as it lands.
type Scheduler struct {
	provider oracle.Provider
	cfg      Config
}

// NewScheduler creates a scheduler using the given oracle provider.
func NewScheduler(provider oracle.Provider, cfg Config) *Scheduler {
	return &Scheduler{provider: provider, cfg: cfg}
}

// Run executes the full exchange sequence and returns the frozen
// transcript. On oracle failure the partial transcript is returned
// alongside the error, marked Partial so it is never scored as complete.
// A retried oracle call resolves to a single response inside the provider,
// so no exchange is ever appended twice.
func (s *Scheduler) Run(ctx context.Context, in RunInput) (*Transcript, error) {
	if len(in.Personas) == 0 {
		return nil, fmt.Errorf("run %s: no personas", in.RunID)
	}
	if in.Student == nil {
		return nil, fmt.Errorf("run %s: no student model", in.RunID)
	}

	ctx = oracle.WithRunID(ctx, in.RunID)

	transcript := &Transcript{
		RunID:       in.RunID,
		ScenarioID:  in.Scenario.ID,
		StudentName: in.Student.Config.Name,
	}
	for _, p := range in.Personas {
		transcript.PersonaIDs = append(transcript.PersonaIDs, p.Name)
	}
	acc := NewAccumulator(transcript)

	studentSystem := studentSystemPrompt(in.Student, in.Scenario)

	// Opening phase: every persona addresses the scenario independently.
	// No persona sees another's opening, so the context is the scenario
	// prompt alone.
	state := StateAwaitingOpenings
	for _, p := range in.Personas {
		out, err := s.generateTurn(
			oracle.WithPurpose(ctx, "persona-opening"),
			content.PersonaSystemPrompt(p, in.Deck),
			in.Scenario.Prompt,
		)
		if err != nil {
			return s.abandon(transcript, state, fmt.Errorf("opening for %s: %w", p.Name, err))
		}
		appendErr := acc.Append(Exchange{
			Role:        RolePersona,
			SpeakerID:   p.Name,
			Diegetic:    out.Diegetic,
			NonDiegetic: out.NonDiegetic,
		})
		if appendErr != nil {
			return s.abandon(transcript, state, appendErr)
		}
	}

	for round := 1; round <= s.cfg.MaxRounds; round++ {
		// Round-robin over the persona set. The previous round's speaker
		// (or the last opener, for round one) is always a different
		// persona when the set has two or more.
		p := in.Personas[(round-1)%len(in.Personas)]

		state = StateAwaitingPersonaTurn
		out, err := s.generateTurn(
			oracle.WithPurpose(ctx, "persona-turn"),
			content.PersonaSystemPrompt(p, in.Deck),
			personaTurnMessage(in.Scenario, transcript, in.Student),
		)
		if err != nil {
			return s.abandon(transcript, state, fmt.Errorf("round %d persona turn: %w", round, err))
		}
		personaTurn := Exchange{
			Role:        RolePersona,
			SpeakerID:   p.Name,
			Diegetic:    out.Diegetic,
			NonDiegetic: out.NonDiegetic,
		}
		if err := acc.Append(personaTurn); err != nil {
			return s.abandon(transcript, state, err)
		}

		state = StateAwaitingStudentTurn
		out, err = s.generateTurn(
			oracle.WithPurpose(ctx, "student-turn"),
			studentSystem,
			studentTurnMessage(transcript, &personaTurn),
		)
		if err != nil {
			return s.abandon(transcript, state, fmt.Errorf("round %d student turn: %w", round, err))
		}

		// The student answered the literal persona turn; classification
		// checks the reply against that exact text.
		category := pushback.Classify(&pushback.Turn{
			Diegetic:         out.Diegetic,
			NonDiegetic:      out.NonDiegetic,
			PriorPersonaText: personaTurn.Diegetic,
		})

		appendErr := acc.Append(Exchange{
			Role:        RoleStudent,
			SpeakerID:   in.Student.Config.Name,
			Diegetic:    out.Diegetic,
			NonDiegetic: out.NonDiegetic,
			Pushback:    category,
		})
		if appendErr != nil {
			return s.abandon(transcript, state, appendErr)
		}

		if s.cfg.EarlyStop != nil && s.cfg.EarlyStop(acc.Stats()) {
			break
		}
	}

	// COMPLETE: freeze the transcript; appends are rejected from here on.
	acc.Freeze()
	return transcript, nil
}

// Replay computes the statistics of a finished transcript by running it
// back through a fresh accumulator.
func Replay(t *Transcript) (Stats, error) {
	acc := NewAccumulator(&Transcript{})
	for _, e := range t.Exchanges {
		if err := acc.Append(e); err != nil {
			return Stats{}, err
		}
	}
	return acc.Stats(), nil
}

func (s *Scheduler) abandon(t *Transcript, state State, err error) (*Transcript, error) {
	t.Partial = true
	return t, fmt.Errorf("abandoned in %s: %w", state, err)
}

func (s *Scheduler) generateTurn(ctx context.Context, system, message string) (*turnOutput, error) {
	req := oracle.Request{
		System: system,
		Messages: []oracle.Message{
			{Role: oracle.RoleUser, Content: message},
		},
		Schema:      TurnSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	var out turnOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse turn: %w", err)
	}
	if out.Diegetic == "" {
		return nil, fmt.Errorf("turn has empty diegetic layer")
	}
	return &out, nil
}
