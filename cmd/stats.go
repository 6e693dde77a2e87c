package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/microlearn/internal/progress"
	"github.com/abhisek/microlearn/internal/store"
	"github.com/abhisek/microlearn/internal/ui"
)

const recentCompletionRows = 5

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show completion statistics and streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, err := resolveLocale(cmd)
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		tracker, err := progress.NewTracker(ctx, s.ProgressRepo())
		if err != nil {
			return err
		}
		st := tracker.State()

		attempts, err := s.AttemptRepo().Stats(ctx)
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}

		recent := ui.RecentCompletions(st, recentCompletionRows)
		fmt.Println(ui.StatsView(loc, st, attempts, recent))
		return nil
	},
}
