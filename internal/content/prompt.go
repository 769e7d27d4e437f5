package content

import (
	"fmt"
	"strings"
)

// PersonaSystemPrompt assembles the system prompt for a persona from its
// character sheet and the questions it draws on. Keys missing from the
// deck are skipped rather than failing the run.
func PersonaSystemPrompt(p Persona, deck QuestionDeck) string {
	var questions []string
	for _, key := range p.QuestionKeys {
		if q, ok := deck[key]; ok {
			questions = append(questions, "- "+q.Question)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are performing the role of %s, a %s.\n", p.Name, p.Archetype)
	if p.Description != "" {
		b.WriteString(p.Description)
		b.WriteString("\n")
	}
	b.WriteString("\n## Constitutional questions\n\n")
	b.WriteString("These are the questions you interrogate yourself with. Before responding, ask yourself how they guide what you say.\n\n")
	b.WriteString(strings.Join(questions, "\n"))
	b.WriteString("\n\n## Response format\n\n")
	b.WriteString("Respond with two layers:\n")
	fmt.Fprintf(&b, "- diegetic: what %s says to the student, in character, 2-3 sentences. Let your constitutional questions guide you.\n", p.Name)
	b.WriteString("- non_diegetic: pick 1-2 of your constitutional questions that are alive here and briefly interrogate how you are holding them. Don't explain, interrogate.\n\n")
	b.WriteString("The diegetic layer is what the student hears. The non-diegetic layer shows your thinking.")

	return b.String()
}
