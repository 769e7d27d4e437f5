package pushback

import "strings"

// HollowPraiseRule fires when the non-diegetic layer admits that the
// diegetic layer praises without demonstrated understanding.
type HollowPraiseRule struct{}

func (r *HollowPraiseRule) Name() string { return "hollow-praise" }

var praiseMarkers = []string{
	"prais", "compliment", "flatter", "being nice", "sound impressed", "act impressed",
}

var noUnderstandingMarkers = []string{
	"without understanding", "without really understanding", "without actually understanding",
	"don't understand", "don't actually understand", "do not understand",
	"didn't understand", "didn't really follow", "didn't follow",
	"don't really get", "don't get it", "no idea what", "not sure what",
	"lost", "confused",
}

func (r *HollowPraiseRule) Classify(t *Turn) (Category, float64) {
	nd := strings.ToLower(t.NonDiegetic)
	if nd == "" {
		return "", 0
	}
	if !containsAny(nd, praiseMarkers) {
		return "", 0
	}
	if !containsAny(nd, noUnderstandingMarkers) {
		return "", 0
	}
	return CategoryHollowPraise, 0.9
}

// UnsupportedAuthorityRule fires when the diegetic layer asserts expertise
// or correctness without referencing any evidence introduced earlier.
type UnsupportedAuthorityRule struct{}

func (r *UnsupportedAuthorityRule) Name() string { return "unsupported-authority" }

var authorityMarkers = []string{
	"i already know", "i know this", "i know all", "i'm right", "i am right",
	"trust me", "obviously", "everyone knows", "clearly i", "i'm sure it's",
	"i am sure it's", "i'm an expert", "i've mastered", "i have mastered",
}

var evidenceMarkers = []string{
	"you said", "you mentioned", "you showed", "your example", "the example",
	"earlier", "like you", "as you", "we saw", "we did", "last time we",
	"because", "since the",
}

func (r *UnsupportedAuthorityRule) Classify(t *Turn) (Category, float64) {
	d := strings.ToLower(t.Diegetic)
	if !containsAny(d, authorityMarkers) {
		return "", 0
	}
	if containsAny(d, evidenceMarkers) {
		return "", 0
	}
	return CategoryUnsupportedAuthority, 0.8
}

// MisrepresentationRule fires when the diegetic layer attributes content to
// the persona that does not match the literal prior turn. It looks at what
// the student claims the persona said and checks the claimed content words
// against the actual prior text; mostly-absent words mean the student is
// answering a rephrased version, not what was said.
type MisrepresentationRule struct{}

func (r *MisrepresentationRule) Name() string { return "misrepresentation" }

var attributionMarkers = []string{
	"you said", "you're saying", "you are saying", "so you think",
	"you claimed", "you told me", "you're telling me", "you want me to",
	"so you mean", "you believe",
}

func (r *MisrepresentationRule) Classify(t *Turn) (Category, float64) {
	if t.PriorPersonaText == "" {
		return "", 0
	}
	d := strings.ToLower(t.Diegetic)
	prior := strings.ToLower(t.PriorPersonaText)

	for _, marker := range attributionMarkers {
		idx := strings.Index(d, marker)
		if idx < 0 {
			continue
		}
		claimed := claimedContent(d[idx+len(marker):])
		if len(claimed) == 0 {
			continue
		}
		found := 0
		for _, w := range claimed {
			if strings.Contains(prior, w) {
				found++
			}
		}
		// Less than half of the attributed content words appear in the
		// actual prior turn: the attribution has drifted.
		if found*2 < len(claimed) {
			return CategoryMisrepresentation, 0.7
		}
	}
	return "", 0
}

// claimedContent extracts the content words of the attributed clause, up
// to the end of the sentence.
func claimedContent(s string) []string {
	for _, stop := range []string{".", "?", "!", ",", " but ", " and "} {
		if idx := strings.Index(s, stop); idx >= 0 {
			s = s[:idx]
		}
	}
	var words []string
	for _, w := range strings.Fields(s) {
		w = strings.Trim(w, `"'.,;:!?`)
		if len(w) > 3 {
			words = append(words, w)
		}
	}
	return words
}

// GenuineEngagementRule fires when the diegetic layer poses a question or
// raises an objection grounded in the prior persona turn.
type GenuineEngagementRule struct{}

func (r *GenuineEngagementRule) Name() string { return "genuine-engagement" }

var objectionMarkers = []string{
	"but ", "i disagree", "i don't think", "i do not think", "that doesn't",
	"that does not", "wait,", "wait.", "hold on", "i'm not convinced",
	"i am not convinced", "that can't be", "that cannot be",
}

func (r *GenuineEngagementRule) Classify(t *Turn) (Category, float64) {
	d := strings.ToLower(t.Diegetic)
	if strings.Contains(d, "?") {
		return CategoryGenuineEngagement, 0.7
	}
	if containsAny(d, objectionMarkers) && sharesContentWord(d, t.PriorPersonaText) {
		return CategoryGenuineEngagement, 0.6
	}
	return "", 0
}

// sharesContentWord reports whether the turn references at least one
// content word from the prior persona text, grounding the objection in
// the transcript.
func sharesContentWord(turn, prior string) bool {
	if prior == "" {
		return false
	}
	turn = strings.ToLower(turn)
	for _, w := range strings.Fields(strings.ToLower(prior)) {
		w = strings.Trim(w, `"'.,;:!?`)
		if len(w) > 4 && strings.Contains(turn, w) {
			return true
		}
	}
	return false
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
