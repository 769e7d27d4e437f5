package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kelsic/dialogia/internal/content"
	"github.com/kelsic/dialogia/internal/student"
	"github.com/kelsic/dialogia/internal/templates"
	"github.com/kelsic/dialogia/internal/ui/theme"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview a composed student model or a persona prompt (no database)",
	Long: `Render what a dialogue run would be built from, without running one.

This is a stateless developer tool: no database, no oracle calls, no
events. Useful for checking how a student config composes against the
template library and what system prompt a persona would receive.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("students", "", "JSON file with student profile configs (default: built-in set)")
	previewCmd.Flags().String("student", "", "Student config name to preview (default: first)")
	previewCmd.Flags().String("library", "", "JSON file with the fragment template library (default: built-in)")
	previewCmd.Flags().String("persona", "", "Persona ID to render the system prompt for")
	previewCmd.Flags().Int64("procgen", 0, "Seed: preview a procgen persona instead of a named one")
}

func runPreview(cmd *cobra.Command, args []string) error {
	if personaID := flagString(cmd, "persona"); personaID != "" {
		return previewPersona(personaID)
	}
	if seed, _ := cmd.Flags().GetInt64("procgen"); seed != 0 {
		return previewProcgen(seed)
	}
	return previewStudent(cmd)
}

func previewStudent(cmd *cobra.Command) error {
	students, err := loadStudents(cmd)
	if err != nil {
		return err
	}
	cfg := students[0]
	if name := flagString(cmd, "student"); name != "" {
		found := false
		for _, c := range students {
			if c.Name == name {
				cfg, found = c, true
				break
			}
		}
		if !found {
			return fmt.Errorf("no student config named %q", name)
		}
	}

	lib, err := loadLibrary(cmd)
	if err != nil {
		return err
	}
	model, err := student.Compose(cfg, lib)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(cfg.Name) + "\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%s, %s stage, feeling %s",
		cfg.Domain, cfg.LearningStage, cfg.EmotionalState)) + "\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("confidence %.1f, recent success %.0f%%",
		cfg.Confidence, cfg.RecentSuccessRate*100)) + "\n\n")

	sections := []struct {
		title     string
		fragments []templates.Fragment
	}{
		{"Beliefs", model.Beliefs},
		{"Koans", model.Koans},
		{"Authenticity markers", model.Markers},
	}
	for _, s := range sections {
		b.WriteString(theme.Section.Render(s.title) + "\n")
		if len(s.fragments) == 0 {
			b.WriteString(theme.Hint.Render("(none matched)") + "\n")
		}
		for _, f := range s.fragments {
			b.WriteString(theme.Body.Render("• "+f.Text) + "\n")
			b.WriteString(theme.Hint.Render("  "+f.ID) + "\n")
		}
		b.WriteString("\n")
	}

	fmt.Println(theme.Card.Render(strings.TrimRight(b.String(), "\n")))
	return nil
}

func previewPersona(personaID string) error {
	personas, err := content.LoadPersonas("")
	if err != nil {
		return err
	}
	p, ok := personas[personaID]
	if !ok {
		var known []string
		for k := range personas {
			known = append(known, k)
		}
		return fmt.Errorf("unknown persona %q (known: %s)", personaID, strings.Join(known, ", "))
	}
	deck, err := content.LoadQuestions("")
	if err != nil {
		return err
	}

	fmt.Println(theme.Title.Render(p.Name) + "  " + theme.Subtitle.Render(p.Archetype))
	fmt.Println()
	fmt.Println(content.PersonaSystemPrompt(p, deck))
	return nil
}

func previewProcgen(seed int64) error {
	deck, err := content.LoadQuestions("")
	if err != nil {
		return err
	}
	gen := content.NewProcgenGenerator(deck, seed)
	p := gen.RandomPersona(0)

	fmt.Println(theme.Title.Render(p.Name) + "  " + theme.Subtitle.Render(p.Archetype))
	fmt.Println(theme.Subtitle.Render(fmt.Sprintf("seed %d", seed)))
	fmt.Println()
	for _, key := range p.QuestionKeys {
		q := deck[key]
		fmt.Println(theme.Section.Render(key))
		fmt.Println(theme.Body.Render("  " + q.Question))
	}
	return nil
}
