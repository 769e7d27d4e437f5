package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kelsic/dialogia/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "dialogia",
	Short: "Synthetic educational dialogue generation and scoring",
	Long: "Dialogia orchestrates multi-turn dialogues between teaching personas and a\n" +
		"simulated student, classifies student pushback, and scores each dialogue\n" +
		"against a pedagogical rubric for an accept/reject training-data decision.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// .env is optional; real env vars win over it.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DIALOGIA_DB env var)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(oracleCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then DIALOGIA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the event store at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// newLogger builds the process logger. Verbose switches on debug level.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return config.Build()
}
