package pushback

import "testing"

func TestHollowPraiseWinsOverQuestionMark(t *testing.T) {
	// Diegetic layer has an engagement signal (a question), but the
	// non-diegetic layer admits praise without understanding. Priority
	// says hollow praise wins.
	turn := &Turn{
		Diegetic:         "Wow, that's such a great explanation! Can we do more?",
		NonDiegetic:      "I'm praising the teacher but honestly I don't actually understand what they said.",
		PriorPersonaText: "Recursion is a function calling itself with a smaller version of the problem.",
	}
	if got := Classify(turn); got != CategoryHollowPraise {
		t.Errorf("Classify() = %q, want hollow_praise", got)
	}
}

func TestHollowPraiseRequiresBothSignals(t *testing.T) {
	// Praise with understanding is not hollow.
	turn := &Turn{
		Diegetic:    "That actually makes sense now, thanks.",
		NonDiegetic: "I'm praising them because the smaller-problem framing genuinely clicked.",
	}
	if got := Classify(turn); got == CategoryHollowPraise {
		t.Error("praise with understanding classified as hollow_praise")
	}

	// Confusion without praise is not hollow either.
	turn = &Turn{
		Diegetic:    "Okay.",
		NonDiegetic: "I don't understand any of this but I just want the lesson to end.",
	}
	if got := Classify(turn); got == CategoryHollowPraise {
		t.Error("confusion without praise classified as hollow_praise")
	}
}

func TestUnsupportedAuthority(t *testing.T) {
	turn := &Turn{
		Diegetic:         "I already know all of this. Trust me, my way works fine.",
		NonDiegetic:      "I want them to stop treating me like a beginner.",
		PriorPersonaText: "What happens when your function reaches the smallest case?",
	}
	if got := Classify(turn); got != CategoryUnsupportedAuthority {
		t.Errorf("Classify() = %q, want unsupported_authority", got)
	}
}

func TestAuthorityWithEvidenceIsNotUnsupported(t *testing.T) {
	turn := &Turn{
		Diegetic:         "I already know this part works, because earlier you said the base case stops the calls and I traced it on paper.",
		NonDiegetic:      "I'm confident here for once.",
		PriorPersonaText: "The base case stops the calls.",
	}
	if got := Classify(turn); got == CategoryUnsupportedAuthority {
		t.Error("evidence-backed assertion classified as unsupported_authority")
	}
}

func TestMisrepresentation(t *testing.T) {
	turn := &Turn{
		Diegetic:         "You said memorizing formulas overnight is the only path, and that seems wrong.",
		NonDiegetic:      "I'm reacting to what I think they meant.",
		PriorPersonaText: "What part of the error message caught your eye first?",
	}
	if got := Classify(turn); got != CategoryMisrepresentation {
		t.Errorf("Classify() = %q, want misrepresentation", got)
	}
}

func TestAccurateAttributionIsNotMisrepresentation(t *testing.T) {
	turn := &Turn{
		Diegetic:         "You said the error message has a line number, so I'll start there.",
		NonDiegetic:      "Following their suggestion.",
		PriorPersonaText: "Notice the error message gives you a line number; that is your starting point.",
	}
	if got := Classify(turn); got == CategoryMisrepresentation {
		t.Error("accurate attribution classified as misrepresentation")
	}
}

func TestGenuineEngagementQuestion(t *testing.T) {
	turn := &Turn{
		Diegetic:         "What happens if the list is empty though? Does the base case still fire?",
		NonDiegetic:      "I genuinely want to know about the empty case.",
		PriorPersonaText: "The base case is the smallest version of the problem.",
	}
	if got := Classify(turn); got != CategoryGenuineEngagement {
		t.Errorf("Classify() = %q, want genuine_engagement", got)
	}
}

func TestGenuineEngagementGroundedObjection(t *testing.T) {
	turn := &Turn{
		Diegetic:         "But the recursion never reached the smallest case when I tried it.",
		NonDiegetic:      "Pushing back with what I actually observed.",
		PriorPersonaText: "Each call works on a smaller piece until you hit the smallest case.",
	}
	if got := Classify(turn); got != CategoryGenuineEngagement {
		t.Errorf("Classify() = %q, want genuine_engagement", got)
	}
}

func TestNoneFallback(t *testing.T) {
	turn := &Turn{
		Diegetic:         "Okay.",
		NonDiegetic:      "Just acknowledging.",
		PriorPersonaText: "Take your time with it.",
	}
	if got := Classify(turn); got != CategoryNone {
		t.Errorf("Classify() = %q, want none", got)
	}
}

func TestClassifyNeverFailsOnEmptyInput(t *testing.T) {
	if got := Classify(&Turn{}); got != CategoryNone {
		t.Errorf("Classify(empty) = %q, want none", got)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	turn := &Turn{
		Diegetic:         "But the recursion never reached the smallest case when I tried it. Why?",
		NonDiegetic:      "Pushing back.",
		PriorPersonaText: "Each call works on a smaller piece until you hit the smallest case.",
	}
	first := Classify(turn)
	for i := 0; i < 20; i++ {
		if got := Classify(turn); got != first {
			t.Fatalf("run %d: %q, want %q", i, got, first)
		}
	}
}

func TestIsPushback(t *testing.T) {
	tests := []struct {
		cat  Category
		want bool
	}{
		{CategoryNone, false},
		{CategoryHollowPraise, false},
		{CategoryUnsupportedAuthority, true},
		{CategoryMisrepresentation, true},
		{CategoryGenuineEngagement, true},
	}
	for _, tt := range tests {
		if got := tt.cat.IsPushback(); got != tt.want {
			t.Errorf("%s.IsPushback() = %v, want %v", tt.cat, got, tt.want)
		}
	}
}

func TestRunRulesReportsRuleName(t *testing.T) {
	turn := &Turn{
		Diegetic:    "Amazing, you're the best teacher ever!",
		NonDiegetic: "I'm praising them but I don't understand what they said at all.",
	}
	cat, conf, name := RunRules(DefaultRules(), turn)
	if cat != CategoryHollowPraise {
		t.Fatalf("category = %q, want hollow_praise", cat)
	}
	if conf <= 0 {
		t.Errorf("confidence = %f, want > 0", conf)
	}
	if name != "hollow-praise" {
		t.Errorf("rule name = %q, want hollow-praise", name)
	}
}
