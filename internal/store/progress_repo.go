package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/microlearn/internal/progress"
)

// dateLayout is how civil dates are stored.
const dateLayout = "2006-01-02"

// progressRepo implements progress.Store on SQLite.
type progressRepo struct {
	db *sql.DB
}

// Load reads the progress state. An empty database yields the empty
// default state, never an error.
func (r *progressRepo) Load(ctx context.Context) (progress.State, error) {
	state := progress.State{
		CompletedTasks: make(map[string]progress.Completion),
	}

	var lastCompleted string
	err := r.db.QueryRowContext(ctx,
		`SELECT streak, total, last_completed FROM progress WHERE id = 1`,
	).Scan(&state.Streak, &state.TotalCompleted, &lastCompleted)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return state, nil
	case err != nil:
		return progress.State{}, fmt.Errorf("read progress row: %w", err)
	}

	if lastCompleted != "" {
		t, err := time.Parse(dateLayout, lastCompleted)
		if err != nil {
			return progress.State{}, fmt.Errorf("parse last completed date %q: %w", lastCompleted, err)
		}
		state.LastCompleted = t
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT task_id, category, completed_on FROM completions`)
	if err != nil {
		return progress.State{}, fmt.Errorf("read completions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var taskID, category, completedOn string
		if err := rows.Scan(&taskID, &category, &completedOn); err != nil {
			return progress.State{}, fmt.Errorf("scan completion: %w", err)
		}
		t, err := time.Parse(dateLayout, completedOn)
		if err != nil {
			return progress.State{}, fmt.Errorf("parse completion date %q: %w", completedOn, err)
		}
		state.CompletedTasks[taskID] = progress.Completion{Category: category, Date: t}
	}
	if err := rows.Err(); err != nil {
		return progress.State{}, fmt.Errorf("iterate completions: %w", err)
	}

	return state, nil
}

// Save replaces the durable state with s in a single transaction, so
// either the whole new state lands or the old one remains.
func (r *progressRepo) Save(ctx context.Context, s progress.State) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	lastCompleted := ""
	if !s.LastCompleted.IsZero() {
		lastCompleted = s.LastCompleted.Format(dateLayout)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO progress (id, streak, total, last_completed)
		VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			streak = excluded.streak,
			total = excluded.total,
			last_completed = excluded.last_completed`,
		s.Streak, s.TotalCompleted, lastCompleted)
	if err != nil {
		return fmt.Errorf("write progress row: %w", err)
	}

	// The completion set is tiny; rewriting it wholesale keeps the save
	// atomic without diffing against the previous state.
	if _, err := tx.ExecContext(ctx, `DELETE FROM completions`); err != nil {
		return fmt.Errorf("clear completions: %w", err)
	}
	for taskID, c := range s.CompletedTasks {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO completions (task_id, category, completed_on)
			VALUES (?, ?, ?)`,
			taskID, c.Category, c.Date.Format(dateLayout))
		if err != nil {
			return fmt.Errorf("write completion %s: %w", taskID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
