package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/microlearn/internal/progress"
	"github.com/abhisek/microlearn/internal/quiz"
	"github.com/abhisek/microlearn/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, err := resolveLocale(cmd)
		if err != nil {
			return err
		}

		if force, _ := cmd.Flags().GetBool("force"); !force {
			fmt.Println(loc.T("reset.confirm"))
			fmt.Printf("%s: ", loc.T("reset.prompt"))

			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if quiz.Normalize(line) != "yes" {
				fmt.Println(loc.T("reset.cancelled"))
				return nil
			}
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
		if err := tracker.Reset(ctx); err != nil {
			return err
		}

		fmt.Println(loc.T("reset.done"))
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")
}
