package selector

import (
	"fmt"
	"strings"
)

// ErrEmptyCatalog indicates there are no tasks to select from.
type ErrEmptyCatalog struct {
	// Category is set when an (existing) category filter produced an
	// empty pool; empty when the whole catalog has no tasks.
	Category string
}

func (e *ErrEmptyCatalog) Error() string {
	if e.Category != "" {
		return fmt.Sprintf("no tasks in category %q", e.Category)
	}
	return "task catalog is empty"
}

// ErrUnknownCategory indicates the requested category matches no task.
// Known carries the valid category names so the caller can suggest them.
type ErrUnknownCategory struct {
	Category string
	Known    []string
}

func (e *ErrUnknownCategory) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown category %q", e.Category)
	}
	return fmt.Sprintf("unknown category %q (known: %s)", e.Category, strings.Join(e.Known, ", "))
}
