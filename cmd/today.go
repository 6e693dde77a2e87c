package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/microlearn/internal/locale"
	"github.com/abhisek/microlearn/internal/progress"
	"github.com/abhisek/microlearn/internal/quiz"
	"github.com/abhisek/microlearn/internal/screens/answer"
	"github.com/abhisek/microlearn/internal/selector"
	"github.com/abhisek/microlearn/internal/store"
	"github.com/abhisek/microlearn/internal/ui"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's task and answer it",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDaily(cmd, "")
	},
}

func init() {
	// Registered on the root so `microlearn --answer 42` works too.
	rootCmd.PersistentFlags().String("answer", "", "Answer non-interactively and exit")
	rootCmd.PersistentFlags().Bool("no-input", false, "Print the task without prompting for an answer")
}

// runDaily is the shared flow behind the root, today, and category
// commands: pick the date's task, take one answer, record the completion.
func runDaily(cmd *cobra.Command, category string) error {
	loc, err := resolveLocale(cmd)
	if err != nil {
		return err
	}

	cat, err := resolveCatalog(cmd)
	if err != nil {
		return err
	}

	date, err := resolveDate(cmd)
	if err != nil {
		return err
	}

	sel, err := selector.Daily(date, cat, category)
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

	if noInput, _ := cmd.Flags().GetBool("no-input"); noInput {
		fmt.Println(ui.TaskPanel(loc, sel, tracker.State().Completed(sel.Task.ID)))
		return nil
	}

	// Changed, not non-empty: --answer "" is a deliberate empty answer.
	if cmd.Flags().Changed("answer") {
		given, _ := cmd.Flags().GetString("answer")
		return answerDirect(ctx, loc, sel, tracker, s, date, given)
	}

	outcome, err := answer.Run(answer.Options{
		Locale:    loc,
		Selection: sel,
		Tracker:   tracker,
		Attempts:  s.AttemptRepo(),
		Date:      date,
	})
	if err != nil {
		return err
	}
	return outcome.RecordErr
}

// answerDirect is the non-interactive path for --answer.
func answerDirect(ctx context.Context, loc *locale.Locale, sel *selector.Selection, tracker *progress.Tracker, s *store.Store, date time.Time, given string) error {
	task := sel.Task

	fmt.Println(ui.TaskPanel(loc, sel, tracker.State().Completed(task.ID)))

	verdict := quiz.Check(task, given)

	// The attempt log is advisory. A failed append must not block the
	// completion write.
	if err := s.AttemptRepo().Append(ctx, store.AttemptData{
		TaskID:   task.ID,
		Category: task.Category,
		Given:    given,
		Correct:  verdict.Correct,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log answer attempt: %v\n", err)
	}

	st, recErr := tracker.RecordCompletion(ctx, task, date)

	fmt.Println(ui.VerdictView(loc, verdict))
	if recErr != nil {
		return recErr
	}
	fmt.Println()
	fmt.Println(ui.StreakView(loc, st))
	return nil
}
