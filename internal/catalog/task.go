package catalog

// Task is a single micro-learning item. Tasks are immutable once loaded.
type Task struct {
	// ID uniquely identifies the task within the catalog.
	ID string `json:"id"`

	// Category groups related tasks (e.g. "logic", "programming").
	Category string `json:"category"`

	// Question is the prompt shown to the user.
	Question string `json:"question"`

	// Answer is the canonical answer. Comparison is case-insensitive
	// and whitespace-trimmed.
	Answer string `json:"answer"`

	// Explanation is optional context shown after the user answers.
	Explanation string `json:"explanation,omitempty"`
}
