package cmd

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/abhisek/microlearn/internal/store"
)

// An explicitly empty --answer is still a non-interactive submission, not
// a fall-through into the interactive prompt.
func TestTodayExplicitEmptyAnswer(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "microlearn.db")

	rootCmd.SetArgs([]string{"today", "--db", dbPath, "--date", "2026-01-02", "--answer", ""})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	s, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()

	st, err := s.ProgressRepo().Load(context.Background())
	if err != nil {
		t.Fatalf("load state: %v", err)
	}
	if st.TotalCompleted != 1 {
		t.Errorf("TotalCompleted = %d, want 1 (empty answer still records the completion)", st.TotalCompleted)
	}
	if st.Streak != 1 {
		t.Errorf("Streak = %d, want 1", st.Streak)
	}

	attempts, err := s.AttemptRepo().Stats(context.Background())
	if err != nil {
		t.Fatalf("attempt stats: %v", err)
	}
	if attempts.Total != 1 || attempts.Correct != 0 {
		t.Errorf("attempts = %+v, want one incorrect attempt", attempts)
	}
}
