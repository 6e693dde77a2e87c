package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// attemptRepo implements AttemptRepo on SQLite.
type attemptRepo struct {
	db *sql.DB
}

func (r *attemptRepo) Append(ctx context.Context, data AttemptData) error {
	correct := 0
	if data.Correct {
		correct = 1
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO attempts (id, task_id, category, given, correct, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(),
		data.TaskID,
		data.Category,
		data.Given,
		correct,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("append attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) Stats(ctx context.Context) (AttemptStats, error) {
	var stats AttemptStats
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(correct), 0) FROM attempts`,
	).Scan(&stats.Total, &stats.Correct)
	if err != nil {
		return AttemptStats{}, fmt.Errorf("aggregate attempts: %w", err)
	}
	return stats, nil
}
