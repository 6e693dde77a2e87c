// Package quiz compares user-supplied answers against a task's canonical
// answer. Checking never fails: malformed or empty input is simply incorrect.
package quiz

import (
	"strings"

	"github.com/abhisek/microlearn/internal/catalog"
)

// Verdict is the outcome of checking one answer.
type Verdict struct {
	Correct bool

	// Expected is the task's canonical answer, for display on a miss.
	Expected string

	// Explanation is the task's explanation, empty when the task has none.
	Explanation string
}

// Normalize prepares a string for comparison: surrounding whitespace is
// trimmed and the result lowercased.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Check compares input against the task's canonical answer after
// normalizing both sides.
func Check(task *catalog.Task, input string) Verdict {
	return Verdict{
		Correct:     Normalize(input) == Normalize(task.Answer),
		Expected:    task.Answer,
		Explanation: task.Explanation,
	}
}
