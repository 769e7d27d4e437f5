package dialogue

import (
	"fmt"
	"strings"

	"github.com/kelsic/dialogia/internal/content"
	"github.com/kelsic/dialogia/internal/student"
)

// studentSystemPrompt builds the student's system prompt from its composed
// model: beliefs shape what it thinks, koans are the questions it checks a
// forthcoming response against, markers are the criteria it self-censors
// inauthentic responses with.
func studentSystemPrompt(m *student.Model, scenario content.Scenario) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are %s, a student working on %s.\n", m.Config.Name, m.Config.Domain)
	fmt.Fprintf(&b, "Emotional state: %s. Learning stage: %s.\n", m.Config.EmotionalState, m.Config.LearningStage)
	if scenario.StudentContext != "" {
		b.WriteString("\nYour situation: ")
		b.WriteString(scenario.StudentContext)
		b.WriteString("\n")
	}

	b.WriteString("\n## What you believe right now\n\n")
	for _, f := range m.Beliefs {
		b.WriteString("- " + f.Text + "\n")
	}
	b.WriteString("\nThese beliefs may contradict each other. Hold them anyway; people do.\n")

	b.WriteString("\n## Before you respond, ask yourself\n\n")
	for _, f := range m.Koans {
		b.WriteString("- " + f.Text + "\n")
	}

	b.WriteString("\n## Authenticity rules\n\n")
	for _, f := range m.Markers {
		b.WriteString("- " + f.Text + "\n")
	}

	b.WriteString("\n## Response format\n\n")
	b.WriteString("Respond with two layers:\n")
	b.WriteString("- diegetic: what you say out loud to the teacher, 1-3 sentences, in your voice.\n")
	b.WriteString("- non_diegetic: your honest reasoning for saying it. If you are praising without understanding, or answering just to end the conversation, say so here.\n\n")
	b.WriteString("Respond to what the teacher literally just said, not to a summary of it.")

	return b.String()
}

// renderTranscript renders the diegetic layer of the exchanges so far for
// use as turn context. Non-diegetic layers are private to their speaker
// and never shown to other parties.
func renderTranscript(t *Transcript) string {
	var b strings.Builder
	for _, e := range t.Exchanges {
		fmt.Fprintf(&b, "%s: %s\n\n", e.SpeakerID, e.Diegetic)
	}
	return b.String()
}

// personaTurnMessage builds the user message for a persona's round turn.
// The context is the scenario, the student, and the full transcript so far.
func personaTurnMessage(scenario content.Scenario, t *Transcript, m *student.Model) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Scenario: %s\n", scenario.Prompt)
	fmt.Fprintf(&b, "The student is %s, currently %s, at the %s stage with %s.\n\n",
		m.Config.Name, m.Config.EmotionalState, m.Config.LearningStage, m.Config.Domain)
	b.WriteString("The dialogue so far:\n\n")
	b.WriteString(renderTranscript(t))
	fmt.Fprintf(&b, "Continue the dialogue. Respond to %s's last message and help them move forward. Keep it to 2-3 sentences, in character.", m.Config.Name)
	return b.String()
}

// studentTurnMessage builds the user message for the student's reply to a
// specific persona turn. The persona's literal text is included verbatim;
// the student must answer what was actually said.
func studentTurnMessage(t *Transcript, personaTurn *Exchange) string {
	var b strings.Builder
	b.WriteString("The dialogue so far:\n\n")
	b.WriteString(renderTranscript(t))
	fmt.Fprintf(&b, "%s just said, word for word: %q\n\n", personaTurn.SpeakerID, personaTurn.Diegetic)
	b.WriteString("Respond to exactly that.")
	return b.String()
}
