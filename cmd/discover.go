package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kelsic/dialogia/internal/batch"
	"github.com/kelsic/dialogia/internal/content"
	"github.com/kelsic/dialogia/internal/dialogue"
	"github.com/kelsic/dialogia/internal/oracle"
	"github.com/kelsic/dialogia/internal/scorer"
	"github.com/kelsic/dialogia/internal/student"
	"github.com/kelsic/dialogia/internal/templates"
	"github.com/kelsic/dialogia/internal/ui/theme"
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Run a procgen discovery cycle",
	Long: `Test random personas against every student-config and scenario pair.

Each iteration generates a persona from a random constitutional question
selection, runs a full dialogue, scores it against the rubric, and records
the outcome. The cycle report and accepted dialogues land in the artifact
directory.`,
	RunE: runDiscover,
}

func init() {
	discoverCmd.Flags().String("students", "", "JSON file with student profile configs (default: built-in set)")
	discoverCmd.Flags().String("scenarios", "", "JSON file with scenarios (default: built-in set)")
	discoverCmd.Flags().String("questions", "", "JSON file with the constitutional question deck (default: built-in)")
	discoverCmd.Flags().String("library", "", "JSON file with the fragment template library (default: built-in)")
	discoverCmd.Flags().IntP("iterations", "i", 5, "Random personas to test per student-scenario pair")
	discoverCmd.Flags().Int64("seed", 0, "Procgen seed (0 = derived from current time)")
	discoverCmd.Flags().IntP("concurrency", "c", batch.DefaultConcurrency, "Concurrent dialogue runs")
	discoverCmd.Flags().StringP("out", "o", "data/discovery_cycles", "Artifact directory for cycle output")
	discoverCmd.Flags().Int("rounds", 0, "Dialogue rounds per run (0 = default)")
	discoverCmd.Flags().Float64("trauma-max", 0, "Max trauma risk for acceptance (0 = default)")
	discoverCmd.Flags().Float64("flow-min", 0, "Min flow score for acceptance (0 = default)")
}

func runDiscover(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(cmd)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	students, err := loadStudents(cmd)
	if err != nil {
		return err
	}
	scenarios, err := content.LoadScenarios(flagString(cmd, "scenarios"))
	if err != nil {
		return fmt.Errorf("load scenarios: %w", err)
	}
	deck, err := content.LoadQuestions(flagString(cmd, "questions"))
	if err != nil {
		return fmt.Errorf("load questions: %w", err)
	}
	lib, err := loadLibrary(cmd)
	if err != nil {
		return err
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

	iterations, _ := cmd.Flags().GetInt("iterations")
	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	artifactDir, _ := cmd.Flags().GetString("out")
	rounds, _ := cmd.Flags().GetInt("rounds")

	schedCfg := dialogue.DefaultConfig()
	if rounds > 0 {
		schedCfg.MaxRounds = rounds
	}
	scorerCfg := scorer.DefaultConfig()
	if v, _ := cmd.Flags().GetFloat64("trauma-max"); v > 0 {
		scorerCfg.Thresholds.TraumaMax = v
	}
	if v, _ := cmd.Flags().GetFloat64("flow-min"); v > 0 {
		scorerCfg.Thresholds.FlowMin = v
	}

	runner := batch.NewRunner(provider, s.EventRepo(), logger)
	report, err := runner.RunCycle(ctx, batch.Config{
		Students:          students,
		Scenarios:         scenarios,
		Deck:              deck,
		Library:           lib,
		IterationsPerPair: iterations,
		Seed:              seed,
		Concurrency:       concurrency,
		ArtifactDir:       artifactDir,
		Scheduler:         schedCfg,
		Scorer:            scorerCfg,
	})
	if err != nil {
		return err
	}

	fmt.Println(theme.Title.Render("Discovery cycle " + report.CycleID))
	fmt.Printf("%s accepted, %s rejected, %d failed, %d total\n\n",
		theme.Accepted.Render(fmt.Sprintf("%d", report.Accepted)),
		theme.Rejected.Render(fmt.Sprintf("%d", report.Rejected)),
		report.Failed, report.Total)
	fmt.Println(theme.Section.Render("Discovered patterns"))
	fmt.Print(report.Analysis.Summary())
	if artifactDir != "" {
		fmt.Printf("\nArtifacts: %s/%s\n", artifactDir, report.CycleID)
	}
	return nil
}

func flagString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func loadStudents(cmd *cobra.Command) ([]student.ProfileConfig, error) {
	path := flagString(cmd, "students")
	if path == "" {
		return defaultStudents(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open students file: %w", err)
	}
	defer f.Close()
	cfgs, err := student.ParseConfigs(f)
	if err != nil {
		return nil, err
	}
	return cfgs, nil
}

func loadLibrary(cmd *cobra.Command) (*templates.Library, error) {
	path := flagString(cmd, "library")
	if path == "" {
		return templates.Seed(), nil
	}
	lib, err := templates.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load template library: %w", err)
	}
	return lib, nil
}

// defaultStudents is the built-in discovery set: one struggling profile
// per learning stage.
func defaultStudents() []student.ProfileConfig {
	return []student.ProfileConfig{
		{
			Name:              "Confused_Beginner",
			Domain:            "recursion",
			Confidence:        3,
			RecentSuccessRate: 0.4,
			EmotionalState:    "confused",
			LearningStage:     student.StageEarly,
		},
		{
			Name:              "Frustrated_Repeater",
			Domain:            "debugging",
			Confidence:        5,
			RecentSuccessRate: 0.3,
			EmotionalState:    "frustrated",
			LearningStage:     student.StageMid,
			BadPriorTeacher:   true,
		},
		{
			Name:              "Overconfident_Plateau",
			Domain:            "data structures",
			Confidence:        8,
			RecentSuccessRate: 0.45,
			EmotionalState:    "impatient",
			LearningStage:     student.StageLate,
			Overconfident:     true,
		},
	}
}
