package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSeedQuestionsHaveUniqueKeys(t *testing.T) {
	deck := SeedQuestions()
	if len(deck) < 10 {
		t.Errorf("seed deck has %d questions, want >= 10", len(deck))
	}
	for key, q := range deck {
		if q.Key != key {
			t.Errorf("deck key %q holds question keyed %q", key, q.Key)
		}
		if q.Question == "" || q.PedagogicalPrinciple == "" {
			t.Errorf("question %q incomplete", key)
		}
	}
}

func TestSeedPersonasReferenceRealQuestions(t *testing.T) {
	deck := SeedQuestions()
	for key, p := range SeedPersonas() {
		for _, qk := range p.QuestionKeys {
			if _, ok := deck[qk]; !ok {
				t.Errorf("persona %q references unknown question %q", key, qk)
			}
		}
	}
}

func TestSeedScenariosComplete(t *testing.T) {
	for _, s := range SeedScenarios() {
		if s.ID == "" || s.Prompt == "" || s.StudentContext == "" {
			t.Errorf("scenario %+v incomplete", s)
		}
	}
}

func TestLoadQuestionsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.json")
	src := `{
		"test_q": {
			"question": "Is this a test?",
			"category": "testing",
			"pedagogical_principle": "Testing matters."
		}
	}`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	deck, err := LoadQuestions(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	q, ok := deck["test_q"]
	if !ok {
		t.Fatal("question not loaded")
	}
	if q.Key != "test_q" {
		t.Errorf("key = %q, want test_q", q.Key)
	}
	if q.Category != CategoryTesting {
		t.Errorf("category = %q, want testing", q.Category)
	}
}

func TestLoadQuestionsEmptyPathUsesSeed(t *testing.T) {
	deck, err := LoadQuestions("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(deck) != len(SeedQuestions()) {
		t.Error("empty path did not return the seed deck")
	}
}

func TestLoadPersonasRejectsIncomplete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "personas.json")
	src := `{"p1": {"name": "P", "archetype": "a", "description": "d", "question_keys": []}}`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPersonas(path); err == nil {
		t.Fatal("expected error for persona without question keys")
	}
}

func TestPersonaSystemPrompt(t *testing.T) {
	deck := SeedQuestions()
	p := SeedPersonas()["indira"]

	prompt := PersonaSystemPrompt(p, deck)

	if !strings.Contains(prompt, "Indira") {
		t.Error("prompt missing persona name")
	}
	if !strings.Contains(prompt, "Questioning Coach") {
		t.Error("prompt missing archetype")
	}
	for _, key := range p.QuestionKeys {
		if !strings.Contains(prompt, deck[key].Question) {
			t.Errorf("prompt missing question %q", key)
		}
	}
	if !strings.Contains(prompt, "diegetic") || !strings.Contains(prompt, "non_diegetic") {
		t.Error("prompt missing two-layer format instructions")
	}
}

func TestPersonaSystemPromptSkipsUnknownKeys(t *testing.T) {
	deck := SeedQuestions()
	p := Persona{
		Name:         "Ghost",
		Archetype:    "Tester",
		QuestionKeys: []string{"no_such_key", "am_i_giving_the_answer"},
	}
	prompt := PersonaSystemPrompt(p, deck)
	if !strings.Contains(prompt, deck["am_i_giving_the_answer"].Question) {
		t.Error("known question dropped")
	}
	if strings.Contains(prompt, "no_such_key") {
		t.Error("unknown key leaked into prompt")
	}
}

func TestProcgenDeterministicWithSeed(t *testing.T) {
	deck := SeedQuestions()

	a := NewProcgenGenerator(deck, 42)
	b := NewProcgenGenerator(deck, 42)

	for i := 0; i < 5; i++ {
		pa := a.RandomPersona(0)
		pb := b.RandomPersona(0)
		if pa.Name != pb.Name || pa.Archetype != pb.Archetype {
			t.Fatalf("iteration %d: personas diverge: %+v vs %+v", i, pa, pb)
		}
		if len(pa.QuestionKeys) != len(pb.QuestionKeys) {
			t.Fatalf("iteration %d: key counts diverge", i)
		}
		for j := range pa.QuestionKeys {
			if pa.QuestionKeys[j] != pb.QuestionKeys[j] {
				t.Fatalf("iteration %d: key %d diverges", i, j)
			}
		}
	}
}

func TestProcgenQuestionCountBounds(t *testing.T) {
	g := NewProcgenGenerator(SeedQuestions(), 7)
	for i := 0; i < 50; i++ {
		p := g.RandomPersona(0)
		n := len(p.QuestionKeys)
		if n < MinProcgenQuestions || n > MaxProcgenQuestions {
			t.Fatalf("persona with %d questions outside [%d, %d]", n, MinProcgenQuestions, MaxProcgenQuestions)
		}
		seen := map[string]bool{}
		for _, k := range p.QuestionKeys {
			if seen[k] {
				t.Fatalf("duplicate question key %q", k)
			}
			seen[k] = true
		}
	}
}

func TestProcgenExplicitCount(t *testing.T) {
	g := NewProcgenGenerator(SeedQuestions(), 1)
	p := g.RandomPersona(5)
	if len(p.QuestionKeys) != 5 {
		t.Errorf("question count = %d, want 5", len(p.QuestionKeys))
	}
}
