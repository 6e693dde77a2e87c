package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/microlearn/internal/catalog"
)

// memStore is an in-memory Store for tests.
type memStore struct {
	state State
	saves int

	// failNext makes the next Save fail without touching the state.
	failNext bool
}

func (m *memStore) Load(_ context.Context) (State, error) {
	return m.state, nil
}

func (m *memStore) Save(_ context.Context, s State) error {
	if m.failNext {
		m.failNext = false
		return errors.New("disk full")
	}
	m.state = s
	m.saves++
	return nil
}

func newTestTracker(t *testing.T, store *memStore) *Tracker {
	t.Helper()
	tr, err := NewTracker(context.Background(), store)
	if err != nil {
		t.Fatalf("new tracker: %v", err)
	}
	return tr
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 30, 0, 0, time.UTC)
}

var testTask = &catalog.Task{ID: "t1", Category: "math", Question: "q", Answer: "a"}

func TestStreakContinuity(t *testing.T) {
	store := &memStore{state: State{
		LastCompleted:  day(2025, time.January, 1),
		Streak:         5,
		TotalCompleted: 5,
	}}
	tr := newTestTracker(t, store)
	ctx := context.Background()

	// Next day extends the streak.
	st, err := tr.RecordCompletion(ctx, testTask, day(2025, time.January, 2))
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if st.Streak != 6 {
		t.Errorf("streak after consecutive day = %d, want 6", st.Streak)
	}

	// Same day again: no change.
	st, err = tr.RecordCompletion(ctx, testTask, day(2025, time.January, 2))
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if st.Streak != 6 {
		t.Errorf("streak after same-day repeat = %d, want 6", st.Streak)
	}

	// Gap of 2+ days resets to 1.
	st, err = tr.RecordCompletion(ctx, testTask, day(2025, time.January, 4))
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if st.Streak != 1 {
		t.Errorf("streak after gap = %d, want 1", st.Streak)
	}
}

func TestFirstCompletionStartsStreak(t *testing.T) {
	tr := newTestTracker(t, &memStore{})

	st, err := tr.RecordCompletion(context.Background(), testTask, day(2025, time.March, 1))
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if st.Streak != 1 {
		t.Errorf("streak = %d, want 1", st.Streak)
	}
	if st.TotalCompleted != 1 {
		t.Errorf("total = %d, want 1", st.TotalCompleted)
	}
	if !st.Completed("t1") {
		t.Error("t1 not marked completed")
	}
	if st.CategoryStats()["math"] != 1 {
		t.Errorf("category stats math = %d, want 1", st.CategoryStats()["math"])
	}
}

func TestTotalCountedOncePerTask(t *testing.T) {
	tr := newTestTracker(t, &memStore{})
	ctx := context.Background()

	if _, err := tr.RecordCompletion(ctx, testTask, day(2025, time.March, 1)); err != nil {
		t.Fatalf("record: %v", err)
	}
	st, err := tr.RecordCompletion(ctx, testTask, day(2025, time.March, 2))
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	if st.TotalCompleted != 1 {
		t.Errorf("total after repeating the same task = %d, want 1", st.TotalCompleted)
	}
	// Streak logic still applies to the repeat.
	if st.Streak != 2 {
		t.Errorf("streak = %d, want 2", st.Streak)
	}
	// First-completion date is preserved.
	if got := st.CompletedTasks["t1"].Date; !sameDay(got, day(2025, time.March, 1)) {
		t.Errorf("first completion date = %v, want March 1", got)
	}
}

func TestReset(t *testing.T) {
	store := &memStore{}
	tr := newTestTracker(t, store)
	ctx := context.Background()

	if _, err := tr.RecordCompletion(ctx, testTask, day(2025, time.March, 1)); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := tr.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	st := tr.State()
	if st.Streak != 0 || st.TotalCompleted != 0 {
		t.Errorf("after reset: streak=%d total=%d, want zeros", st.Streak, st.TotalCompleted)
	}
	if len(st.CompletedTasks) != 0 {
		t.Errorf("after reset: %d completed tasks, want 0", len(st.CompletedTasks))
	}
	if !st.LastCompleted.IsZero() {
		t.Errorf("after reset: LastCompleted = %v, want zero", st.LastCompleted)
	}
	// The reset itself was written through.
	if store.state.TotalCompleted != 0 {
		t.Error("reset not persisted")
	}
}

func TestPersistenceFailureLeavesStateUntouched(t *testing.T) {
	store := &memStore{}
	tr := newTestTracker(t, store)
	ctx := context.Background()

	if _, err := tr.RecordCompletion(ctx, testTask, day(2025, time.March, 1)); err != nil {
		t.Fatalf("record: %v", err)
	}

	store.failNext = true
	other := &catalog.Task{ID: "t2", Category: "logic", Question: "q", Answer: "a"}
	_, err := tr.RecordCompletion(ctx, other, day(2025, time.March, 2))

	var perr *ErrPersistence
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ErrPersistence, got %T: %v", err, err)
	}

	// In-memory state is the pre-failure state.
	st := tr.State()
	if st.TotalCompleted != 1 || st.Completed("t2") {
		t.Errorf("in-memory state mutated despite failed save: %+v", st)
	}
	// Durable state too.
	if store.state.TotalCompleted != 1 || store.state.Streak != 1 {
		t.Errorf("durable state mutated despite failed save: %+v", store.state)
	}

	// A later save succeeds and applies cleanly on top of the old state.
	st, err = tr.RecordCompletion(ctx, other, day(2025, time.March, 2))
	if err != nil {
		t.Fatalf("record after recovery: %v", err)
	}
	if st.TotalCompleted != 2 || st.Streak != 2 {
		t.Errorf("state after recovery: total=%d streak=%d, want 2/2", st.TotalCompleted, st.Streak)
	}
}
