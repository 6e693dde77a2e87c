package progress

import (
	"context"
	"time"

	"github.com/abhisek/microlearn/internal/catalog"
)

// Store loads and durably saves progress state. A missing store yields
// the empty State, not an error. Save is atomic: either the whole new
// state becomes durable or the old state remains.
type Store interface {
	Load(ctx context.Context) (State, error)
	Save(ctx context.Context, s State) error
}

// Tracker applies completion events to the progress state machine,
// writing every mutation through the store before committing it.
type Tracker struct {
	store Store
	state State
}

// NewTracker loads the current state from the store.
func NewTracker(ctx context.Context, store Store) (*Tracker, error) {
	state, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Tracker{store: store, state: state}, nil
}

// State returns the current committed state.
func (t *Tracker) State() State {
	return t.state
}

// RecordCompletion registers that the task was completed today.
// Completion is about engagement, not score — it applies regardless of
// whether the answer was correct.
//
// Streak rules: a completion on the day after the last one extends the
// streak; a repeat completion on the same day changes nothing; any gap
// (or a first-ever completion) restarts the streak at 1. TotalCompleted
// and the per-task history only grow on the first completion of a task ID.
//
// The new state is persisted before it replaces the in-memory state; on
// a write failure *ErrPersistence is returned and nothing changes.
func (t *Tracker) RecordCompletion(ctx context.Context, task *catalog.Task, today time.Time) (State, error) {
	next := t.state.clone()

	switch {
	case !next.LastCompleted.IsZero() && sameDay(next.LastCompleted, today):
		// Re-completion on the same day: streak unchanged.
	case !next.LastCompleted.IsZero() && nextDay(next.LastCompleted, today):
		next.Streak++
	default:
		next.Streak = 1
	}
	next.LastCompleted = civilDate(today)

	if !next.Completed(task.ID) {
		next.CompletedTasks[task.ID] = Completion{
			Category: task.Category,
			Date:     civilDate(today),
		}
		next.TotalCompleted++
	}

	if err := t.store.Save(ctx, next); err != nil {
		return t.state, &ErrPersistence{Op: "record completion", Err: err}
	}
	t.state = next
	return next, nil
}

// Reset wipes the progress state back to its empty initial value.
// Like every mutation, the empty state must be durable before it is
// considered applied.
func (t *Tracker) Reset(ctx context.Context) error {
	empty := State{
		CompletedTasks: make(map[string]Completion),
	}
	if err := t.store.Save(ctx, empty); err != nil {
		return &ErrPersistence{Op: "reset", Err: err}
	}
	t.state = empty
	return nil
}
