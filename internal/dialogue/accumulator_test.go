package dialogue

import (
	"errors"
	"testing"

	"github.com/kelsic/dialogia/internal/pushback"
)

func TestAppendAndStats(t *testing.T) {
	acc := NewAccumulator(&Transcript{RunID: "r1"})

	exchanges := []Exchange{
		{Role: RolePersona, SpeakerID: "Indira", Diegetic: "What have you tried so far?"},
		{Role: RoleStudent, SpeakerID: "Casey", Diegetic: "But it loops forever when I tried that.", Pushback: pushback.CategoryGenuineEngagement},
		{Role: RolePersona, SpeakerID: "Marcus", Diegetic: "Walk me through the loop."},
		{Role: RoleStudent, SpeakerID: "Casey", Diegetic: "Okay.", Pushback: pushback.CategoryNone},
	}
	for i, e := range exchanges {
		if err := acc.Append(e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats := acc.Stats()
	if stats.StudentExchanges != 2 {
		t.Errorf("student exchanges = %d, want 2", stats.StudentExchanges)
	}
	if stats.PushbackRate != 0.5 {
		t.Errorf("pushback rate = %f, want 0.5", stats.PushbackRate)
	}

	total := 0
	for _, n := range stats.Histogram {
		total += n
	}
	if total != stats.StudentExchanges {
		t.Errorf("histogram sum = %d, want %d", total, stats.StudentExchanges)
	}
	if stats.Histogram[pushback.CategoryNone] != 1 {
		t.Errorf("none count = %d, want 1", stats.Histogram[pushback.CategoryNone])
	}
}

func TestPushbackRateBounds(t *testing.T) {
	acc := NewAccumulator(&Transcript{})

	// No student exchanges: rate is zero, not NaN.
	if rate := acc.Stats().PushbackRate; rate != 0 {
		t.Errorf("empty rate = %f, want 0", rate)
	}

	for _, cat := range pushback.Categories() {
		err := acc.Append(Exchange{Role: RoleStudent, SpeakerID: "s", Diegetic: "x", Pushback: cat})
		if err != nil {
			t.Fatalf("append %s: %v", cat, err)
		}
		rate := acc.Stats().PushbackRate
		if rate < 0 || rate > 1 {
			t.Fatalf("rate %f out of [0,1] after %s", rate, cat)
		}
	}
}

func TestHistogramMonotonic(t *testing.T) {
	acc := NewAccumulator(&Transcript{})

	prev := map[pushback.Category]int{}
	cats := []pushback.Category{
		pushback.CategoryNone, pushback.CategoryGenuineEngagement,
		pushback.CategoryNone, pushback.CategoryHollowPraise,
		pushback.CategoryMisrepresentation,
	}
	for _, cat := range cats {
		if err := acc.Append(Exchange{Role: RoleStudent, SpeakerID: "s", Diegetic: "x", Pushback: cat}); err != nil {
			t.Fatal(err)
		}
		cur := acc.Stats().Histogram
		for c, n := range prev {
			if cur[c] < n {
				t.Fatalf("histogram[%s] decreased from %d to %d", c, n, cur[c])
			}
		}
		prev = cur
	}
}

func TestAppendAfterFreezeFails(t *testing.T) {
	acc := NewAccumulator(&Transcript{})
	if err := acc.Append(Exchange{Role: RolePersona, SpeakerID: "p", Diegetic: "x"}); err != nil {
		t.Fatal(err)
	}

	acc.Freeze()

	err := acc.Append(Exchange{Role: RoleStudent, SpeakerID: "s", Diegetic: "y", Pushback: pushback.CategoryNone})
	if !errors.Is(err, ErrTranscriptFrozen) {
		t.Fatalf("expected ErrTranscriptFrozen, got %v", err)
	}
	if got := len(acc.Transcript().Exchanges); got != 1 {
		t.Errorf("exchange count after rejected append = %d, want 1", got)
	}
}

func TestStudentExchangeRequiresClassification(t *testing.T) {
	acc := NewAccumulator(&Transcript{})
	err := acc.Append(Exchange{Role: RoleStudent, SpeakerID: "s", Diegetic: "x"})
	if err == nil {
		t.Fatal("expected error for unclassified student exchange")
	}
}

func TestPersonaExchangeRejectsClassification(t *testing.T) {
	acc := NewAccumulator(&Transcript{})
	err := acc.Append(Exchange{Role: RolePersona, SpeakerID: "p", Diegetic: "x", Pushback: pushback.CategoryNone})
	if err == nil {
		t.Fatal("expected error for classified persona exchange")
	}
}
