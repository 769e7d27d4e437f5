package templates

// Seed returns the built-in library used when no library file is supplied.
// The fragments here are deliberately small sample content; production runs
// load a full library from disk.
func Seed() *Library {
	lib, err := build(seedFile)
	if err != nil {
		// The seed is compiled in and covered by tests; a build failure
		// here is a programming error.
		panic("templates: invalid seed library: " + err.Error())
	}
	return lib
}

func fptr(v float64) *float64 { return &v }

var seedFile = libraryFile{
	Version: "1.0.0",
	Categories: map[Category][]Fragment{
		CategoryBelief: {
			{
				ID:   "belief-low-confidence-doubt",
				Text: "I am probably going to get this wrong like last time.",
				When: Predicate{MaxConfidence: fptr(4)},
			},
			{
				ID:   "belief-high-confidence-ready",
				Text: "I am ready for this. I have done harder things.",
				When: Predicate{MinConfidence: fptr(7)},
			},
			{
				ID:   "belief-overconfident-mastery",
				Text: "I already understand this better than most people.",
				When: Predicate{RequireFlags: []string{"overconfident"}},
			},
			{
				ID:   "belief-overconfident-failing",
				Text: "Deep down I suspect I am about to fail and do not want anyone to see it.",
				When: Predicate{RequireFlags: []string{"overconfident"}, MaxSuccessRate: fptr(0.5)},
			},
			{
				ID:   "belief-disengaged-pointless",
				Text: "None of this is going to matter for what I actually want to do.",
				When: Predicate{RequireFlags: []string{"disengaged"}},
			},
			{
				ID:   "belief-bad-prior-teacher",
				Text: "Teachers explain things in ways that work for them, not for me.",
				When: Predicate{RequireFlags: []string{"bad_prior_teacher"}},
			},
			{
				ID:   "belief-breakthrough-near",
				Text: "Something clicked recently and I want to see if it holds up.",
				When: Predicate{RequireFlags: []string{"breakthrough_moment"}},
			},
			{
				ID:   "belief-early-stage-lost",
				Text: "Everyone else seems to already know the vocabulary I am missing.",
				When: Predicate{LearningStages: []string{"early"}},
			},
			{
				ID:   "belief-frustrated-stuck",
				Text: "I keep hitting the same wall and the wall is winning.",
				When: Predicate{EmotionalStates: []string{"frustrated"}},
			},
			{
				ID:       "belief-default-uncertain",
				Text:     "I am not sure yet what I think about this topic.",
				Fallback: true,
			},
		},
		CategoryKoan: {
			{
				ID:   "koan-would-i-say-this",
				Text: "Would I actually say this out loud, or am I performing what a student should say?",
			},
			{
				ID:   "koan-praise-earned",
				Text: "If I am about to praise the teacher, do I actually understand what they said?",
				When: Predicate{MaxConfidence: fptr(5)},
			},
			{
				ID:   "koan-admit-confusion",
				Text: "Am I hiding confusion to avoid looking slow?",
				When: Predicate{LearningStages: []string{"early", "mid"}},
			},
			{
				ID:   "koan-checked-out",
				Text: "Am I answering just to end the conversation?",
				When: Predicate{RequireFlags: []string{"disengaged"}},
			},
			{
				ID:   "koan-metaphor-resist",
				Text: "Did they answer my question or hand me another metaphor?",
				When: Predicate{RequireFlags: []string{"rejects_metaphor"}},
			},
			{
				ID:       "koan-default-honest",
				Text:     "Is this response honest to where I actually am?",
				Fallback: true,
			},
		},
		CategoryMarker: {
			{
				ID:   "marker-no-unearned-praise",
				Text: "Do not praise an explanation you could not restate in your own words.",
			},
			{
				ID:   "marker-ground-in-transcript",
				Text: "Objections must point at something the teacher actually said.",
			},
			{
				ID:   "marker-show-flatness",
				Text: "When disengaged, let answers go short and flat instead of politely elaborate.",
				When: Predicate{RequireFlags: []string{"disengaged"}},
			},
			{
				ID:   "marker-hyperfocus-tangent",
				Text: "When a detail catches your interest, pursue it even if it derails the lesson plan.",
				When: Predicate{RequireFlags: []string{"hyperfocus_trait"}},
			},
			{
				ID:   "marker-executive-gap",
				Text: "Multi-step instructions get lost; ask for one step at a time or lose the thread.",
				When: Predicate{RequireFlags: []string{"executive_function_gap"}},
			},
			{
				ID:       "marker-default-plain",
				Text:     "Speak plainly; drop anything that sounds like a textbook.",
				Fallback: true,
			},
		},
	},
}
