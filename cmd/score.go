package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kelsic/dialogia/internal/dialogue"
	"github.com/kelsic/dialogia/internal/oracle"
	"github.com/kelsic/dialogia/internal/scorer"
	"github.com/kelsic/dialogia/internal/store"
	"github.com/kelsic/dialogia/internal/ui/theme"
)

var scoreCmd = &cobra.Command{
	Use:   "score <transcript.json>",
	Short: "Score a transcript against the pedagogical rubric",
	Long: `Evaluate one transcript file and print the verdict.

The file holds a single transcript object. Legacy persona-only transcripts
are accepted; the agency and answer-avoidance dimensions come back
not-applicable for those.`,
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().Float64("trauma-max", 0, "Max trauma risk for acceptance (0 = default)")
	scoreCmd.Flags().Float64("flow-min", 0, "Min flow score for acceptance (0 = default)")
	scoreCmd.Flags().Bool("record", false, "Record the verdict as an event in the database")
}

func runScore(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}
	var transcript dialogue.Transcript
	if err := json.Unmarshal(data, &transcript); err != nil {
		return fmt.Errorf("parse transcript %s: %w", args[0], err)
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := context.Background()
	provider, err := oracle.NewProviderFromEnv(ctx, s.EventRepo())
	if err != nil {
		return fmt.Errorf("oracle provider: %w", err)
	}

	cfg := scorer.DefaultConfig()
	if v, _ := cmd.Flags().GetFloat64("trauma-max"); v > 0 {
		cfg.Thresholds.TraumaMax = v
	}
	if v, _ := cmd.Flags().GetFloat64("flow-min"); v > 0 {
		cfg.Thresholds.FlowMin = v
	}

	verdict, err := scorer.NewScorer(provider, cfg).Score(ctx, &transcript)
	if err != nil {
		return err
	}

	printVerdict(verdict)

	if record, _ := cmd.Flags().GetBool("record"); record {
		if err := recordVerdict(ctx, s, verdict); err != nil {
			return fmt.Errorf("record verdict: %w", err)
		}
		fmt.Println("\nVerdict recorded.")
	}
	return nil
}

func recordVerdict(ctx context.Context, s *store.Store, v *scorer.Verdict) error {
	dims := make([]store.DimensionScoreData, 0, len(v.Dimensions))
	for _, d := range v.Dimensions {
		dims = append(dims, store.DimensionScoreData{
			Name:          d.Name,
			Score:         d.Score,
			NotApplicable: d.NotApplicable,
			Rationale:     d.Rationale,
		})
	}
	return s.EventRepo().AppendVerdict(ctx, store.VerdictEventData{
		RunID:      v.RunID,
		Accept:     v.Accept,
		HardStop:   v.HardStop,
		Dimensions: dims,
		Rationale:  v.Rationale,
	})
}

func printVerdict(v *scorer.Verdict) {
	decision := theme.Rejected.Render("REJECTED")
	if v.Accept {
		decision = theme.Accepted.Render("ACCEPTED")
	}
	fmt.Printf("Run %s: %s\n", v.RunID, decision)
	fmt.Println(theme.Subtitle.Render(v.Rationale))
	if v.HardStop {
		fmt.Printf("Hard stops: %v\n", v.HardStops)
	}
	fmt.Println()
	for _, d := range v.Dimensions {
		if d.NotApplicable {
			fmt.Printf("  %-26s %s\n", d.Name, theme.Hint.Render("n/a ("+d.Rationale+")"))
			continue
		}
		fmt.Printf("  %-26s %4.1f  %s\n", d.Name, d.Score, theme.Subtitle.Render(d.Rationale))
	}
}
