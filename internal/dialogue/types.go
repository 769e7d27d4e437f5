package dialogue

import (
	"github.com/kelsic/dialogia/internal/pushback"
)

// Role identifies an exchange's speaker kind.
type Role string

const (
	RolePersona Role = "persona"
	RoleStudent Role = "student"
)

// Exchange is one turn by one speaker. Student exchanges carry a pushback
// classification; persona exchanges never do.
type Exchange struct {
	Role      Role   `json:"role"`
	SpeakerID string `json:"speaker_id"`

	// Diegetic is what the speaker says, in voice.
	Diegetic string `json:"diegetic"`

	// NonDiegetic is the speaker's declared reasoning for saying it.
	NonDiegetic string `json:"non_diegetic,omitempty"`

	// Pushback is set only when Role is RoleStudent.
	Pushback pushback.Category `json:"pushback,omitempty"`
}

// Stats are the running aggregate statistics over a transcript's student
// exchanges.
type Stats struct {
	// PushbackRate is pushback-classified student exchanges over all
	// student exchanges, in [0, 1]. Zero when there are no student
	// exchanges.
	PushbackRate float64 `json:"pushback_rate"`

	// Histogram counts every student exchange by category, including
	// none, so its values always sum to the student exchange count.
	Histogram map[pushback.Category]int `json:"histogram"`

	// StudentExchanges is the number of student exchanges classified.
	StudentExchanges int `json:"student_exchanges"`
}

// Transcript is the full ordered record of one dialogue run. Created at
// run start, mutated only through its Accumulator, frozen once the
// scheduler declares the run complete. A transcript is owned by exactly
// one run and never shared.
type Transcript struct {
	RunID       string     `json:"run_id"`
	ScenarioID  string     `json:"scenario_id"`
	PersonaIDs  []string   `json:"persona_ids"`
	StudentName string     `json:"student_name"`
	Exchanges   []Exchange `json:"exchanges"`

	// Partial marks a transcript abandoned mid-run. Partial transcripts
	// must never be scored as if complete.
	Partial bool `json:"partial,omitempty"`
}

// StudentExchangeCount returns the number of student exchanges.
func (t *Transcript) StudentExchangeCount() int {
	n := 0
	for _, e := range t.Exchanges {
		if e.Role == RoleStudent {
			n++
		}
	}
	return n
}

// LastPersonaExchange returns the most recent persona exchange, or nil.
func (t *Transcript) LastPersonaExchange() *Exchange {
	for i := len(t.Exchanges) - 1; i >= 0; i-- {
		if t.Exchanges[i].Role == RolePersona {
			return &t.Exchanges[i]
		}
	}
	return nil
}
