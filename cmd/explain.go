package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/microlearn/internal/catalog"
	"github.com/abhisek/microlearn/internal/coach"
	"github.com/abhisek/microlearn/internal/llm"
	"github.com/abhisek/microlearn/internal/selector"
	"github.com/abhisek/microlearn/internal/store"
	"github.com/abhisek/microlearn/internal/ui"
)

var explainCmd = &cobra.Command{
	Use:   "explain [task-id]",
	Short: "Get an AI explanation for a task (today's by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, err := resolveLocale(cmd)
		if err != nil {
			return err
		}

		cat, err := resolveCatalog(cmd)
		if err != nil {
			return err
		}

		var task *catalog.Task
		if len(args) == 1 {
			t, ok := cat.ByID(args[0])
			if !ok {
				return fmt.Errorf("unknown task ID %q", args[0])
			}
			task = t
		} else {
			date, err := resolveDate(cmd)
			if err != nil {
				return err
			}
			sel, err := selector.Daily(date, cat, "")
			if err != nil {
				return err
			}
			task = sel.Task
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
		provider, err := llm.NewProviderFromEnv(ctx, s.LLMEventRepo())
		if err != nil {
			fmt.Println(loc.Tf("explain.unavailable", err))
			return nil
		}

		svc := coach.NewService(provider, coach.DefaultConfig())
		explanation, err := svc.Explain(ctx, task)
		if err != nil {
			return fmt.Errorf("explain task %s: %w", task.ID, err)
		}

		fmt.Println(ui.ExplanationView(loc, explanation))
		return nil
	},
}
