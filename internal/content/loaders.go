package content

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadQuestions reads a question deck from a JSON file keyed by question
// key. The empty path returns the built-in deck.
func LoadQuestions(path string) (QuestionDeck, error) {
	if path == "" {
		return SeedQuestions(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question deck: %w", err)
	}

	var fileDeck map[string]struct {
		Question             string           `json:"question"`
		Category             QuestionCategory `json:"category"`
		PedagogicalPrinciple string           `json:"pedagogical_principle"`
		PersonaBias          string           `json:"persona_bias"`
	}
	if err := json.Unmarshal(raw, &fileDeck); err != nil {
		return nil, fmt.Errorf("parse question deck %s: %w", path, err)
	}

	deck := make(QuestionDeck, len(fileDeck))
	for key, q := range fileDeck {
		if q.Question == "" {
			return nil, fmt.Errorf("question %q has no text", key)
		}
		deck[key] = ConstitutionalQuestion{
			Key:                  key,
			Question:             q.Question,
			Category:             q.Category,
			PedagogicalPrinciple: q.PedagogicalPrinciple,
			PersonaBias:          q.PersonaBias,
		}
	}
	if len(deck) == 0 {
		return nil, fmt.Errorf("question deck %s is empty", path)
	}
	return deck, nil
}

// LoadPersonas reads personas from a JSON file keyed by persona key. The
// empty path returns the built-in set.
func LoadPersonas(path string) (map[string]Persona, error) {
	if path == "" {
		return SeedPersonas(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read personas: %w", err)
	}

	var personas map[string]Persona
	if err := json.Unmarshal(raw, &personas); err != nil {
		return nil, fmt.Errorf("parse personas %s: %w", path, err)
	}
	for key, p := range personas {
		if p.Name == "" {
			return nil, fmt.Errorf("persona %q has no name", key)
		}
		if len(p.QuestionKeys) == 0 {
			return nil, fmt.Errorf("persona %q has no question keys", key)
		}
	}
	if len(personas) == 0 {
		return nil, fmt.Errorf("persona file %s is empty", path)
	}
	return personas, nil
}

// LoadScenarios reads scenario cards from a JSON array. The empty path
// returns the built-in set.
func LoadScenarios(path string) ([]Scenario, error) {
	if path == "" {
		return SeedScenarios(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenarios: %w", err)
	}

	var scenarios []Scenario
	if err := json.Unmarshal(raw, &scenarios); err != nil {
		return nil, fmt.Errorf("parse scenarios %s: %w", path, err)
	}
	for _, s := range scenarios {
		if s.ID == "" {
			return nil, fmt.Errorf("scenario with empty id in %s", path)
		}
		if s.Prompt == "" {
			return nil, fmt.Errorf("scenario %q has no prompt", s.ID)
		}
	}
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("scenario file %s is empty", path)
	}
	return scenarios, nil
}
