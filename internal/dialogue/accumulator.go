package dialogue

import (
	"errors"
	"fmt"

	"github.com/kelsic/dialogia/internal/pushback"
)

// ErrTranscriptFrozen is returned on append after the transcript has been
// marked complete.
var ErrTranscriptFrozen = errors.New("dialogue: transcript is frozen")

// Accumulator owns a transcript's mutation. Appends are ordered and
// append-only; once frozen every further append fails. Histogram counts
// only grow until the freeze.
type Accumulator struct {
	transcript *Transcript
	histogram  map[pushback.Category]int
	students   int
	pushbacks  int
	frozen     bool
}

// NewAccumulator creates an accumulator around an empty transcript.
func NewAccumulator(t *Transcript) *Accumulator {
	return &Accumulator{
		transcript: t,
		histogram:  make(map[pushback.Category]int),
	}
}

// Append adds an exchange to the transcript and updates the running
// statistics. Student exchanges must carry a classification; persona
// exchanges must not.
func (a *Accumulator) Append(e Exchange) error {
	if a.frozen {
		return ErrTranscriptFrozen
	}

	switch e.Role {
	case RoleStudent:
		if e.Pushback == "" {
			return fmt.Errorf("student exchange from %s has no classification", e.SpeakerID)
		}
		a.students++
		a.histogram[e.Pushback]++
		if e.Pushback.IsPushback() {
			a.pushbacks++
		}
	case RolePersona:
		if e.Pushback != "" {
			return fmt.Errorf("persona exchange from %s carries a classification", e.SpeakerID)
		}
	default:
		return fmt.Errorf("unknown exchange role %q", e.Role)
	}

	a.transcript.Exchanges = append(a.transcript.Exchanges, e)
	return nil
}

// Stats returns the running statistics.
func (a *Accumulator) Stats() Stats {
	rate := 0.0
	if a.students > 0 {
		rate = float64(a.pushbacks) / float64(a.students)
	}

	hist := make(map[pushback.Category]int, len(a.histogram))
	for c, n := range a.histogram {
		hist[c] = n
	}

	return Stats{
		PushbackRate:     rate,
		Histogram:        hist,
		StudentExchanges: a.students,
	}
}

// Freeze marks the transcript complete. Further appends fail with
// ErrTranscriptFrozen.
func (a *Accumulator) Freeze() {
	a.frozen = true
}

// Frozen reports whether the transcript has been frozen.
func (a *Accumulator) Frozen() bool {
	return a.frozen
}

// Transcript returns the underlying transcript.
func (a *Accumulator) Transcript() *Transcript {
	return a.transcript
}
