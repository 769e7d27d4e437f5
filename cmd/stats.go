package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show run outcome statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		outcomes, err := s.EventRepo().RunOutcomes(context.Background())
		if err != nil {
			return fmt.Errorf("query run outcomes: %w", err)
		}
		if len(outcomes) == 0 {
			fmt.Println("No finished runs recorded yet.")
			return nil
		}

		fmt.Printf("%-10s  %6s  %14s  %14s\n", "Outcome", "Runs", "Avg Exchanges", "Avg Pushback")
		fmt.Println(strings.Repeat("─", 52))
		total := 0
		for _, o := range outcomes {
			fmt.Printf("%-10s  %6d  %14.1f  %14.2f\n",
				o.Outcome, o.Runs, o.AvgExchanges, o.AvgPushbackRate)
			total += o.Runs
		}
		fmt.Println(strings.Repeat("─", 52))
		fmt.Printf("%-10s  %6d\n", "TOTAL", total)
		return nil
	},
}
