package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/microlearn/internal/catalog"
	"github.com/abhisek/microlearn/internal/locale"
	"github.com/abhisek/microlearn/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "microlearn",
	Short: "One small task a day, in your terminal",
	Long:  "Microlearn — a daily micro-learning habit: the same date always brings the same task, answering keeps your streak alive.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare invocation is the daily flow.
		return runDaily(cmd, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MICROLEARN_DB env var)")
	rootCmd.PersistentFlags().String("tasks", "", "Path to a task catalog JSON file (overrides MICROLEARN_TASKS env var)")
	rootCmd.PersistentFlags().String("date", "", "Act as if today were this date, YYYY-MM-DD")
	rootCmd.PersistentFlags().String("locale", "", "Message locale (overrides MICROLEARN_LOCALE env var)")

	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(llmCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then MICROLEARN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveCatalog loads the task catalog. An explicitly configured path
// must exist; with no path at all the embedded seed catalog is used.
func resolveCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	if p, _ := cmd.Flags().GetString("tasks"); p != "" {
		return catalog.Load(p)
	}
	if p := os.Getenv("MICROLEARN_TASKS"); p != "" {
		return catalog.Load(p)
	}
	return catalog.LoadSeed()
}

// resolveDate returns the effective "today": the --date flag when set,
// otherwise the wall clock.
func resolveDate(cmd *cobra.Command) (time.Time, error) {
	s, _ := cmd.Flags().GetString("date")
	if s == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

func resolveLocale(cmd *cobra.Command) (*locale.Locale, error) {
	code, _ := cmd.Flags().GetString("locale")
	return locale.Load(code)
}
