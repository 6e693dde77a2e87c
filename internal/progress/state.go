// Package progress tracks completion history and the daily streak.
// The State is the only persisted mutable record in the program; every
// mutation is written through an injected Store before it takes effect.
package progress

import "time"

// Completion records the first completion of one task.
type Completion struct {
	Category string
	Date     time.Time
}

// State is the durable record of a user's completion history.
// The zero value is the empty initial state of a first run.
type State struct {
	// LastCompleted is the civil date of the most recent completion.
	// The zero time means no task was ever completed.
	LastCompleted time.Time

	// Streak counts consecutive calendar days with at least one completion.
	Streak int

	// TotalCompleted counts distinct task IDs ever completed.
	TotalCompleted int

	// CompletedTasks maps each completed task ID to its first completion.
	CompletedTasks map[string]Completion
}

// Completed reports whether the task ID has ever been completed.
func (s State) Completed(taskID string) bool {
	_, ok := s.CompletedTasks[taskID]
	return ok
}

// CategoryStats counts completed tasks per category.
func (s State) CategoryStats() map[string]int {
	out := make(map[string]int, len(s.CompletedTasks))
	for _, c := range s.CompletedTasks {
		out[c.Category]++
	}
	return out
}

// clone returns a deep copy so a pending mutation never aliases the
// committed state.
func (s State) clone() State {
	out := s
	out.CompletedTasks = make(map[string]Completion, len(s.CompletedTasks))
	for k, v := range s.CompletedTasks {
		out.CompletedTasks[k] = v
	}
	return out
}

// civilDate truncates t to its calendar day (midnight UTC of the y/m/d
// observed in t's location).
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// sameDay reports whether a and b fall on the same calendar day.
func sameDay(a, b time.Time) bool {
	return civilDate(a).Equal(civilDate(b))
}

// nextDay reports whether b is exactly one calendar day after a.
func nextDay(a, b time.Time) bool {
	return civilDate(a).AddDate(0, 0, 1).Equal(civilDate(b))
}
