// Package selector maps a calendar date (and optional category) to exactly
// one task from the catalog. Selection is deterministic: the same date and
// catalog always yield the same task, and consecutive days cycle through
// every task in the (sub)catalog before repeating.
package selector

import (
	"sort"
	"time"

	"github.com/abhisek/microlearn/internal/catalog"
)

// Selection is the result of picking a daily task.
type Selection struct {
	Task *catalog.Task

	// Day is the civil-day ordinal the selection was computed from.
	Day int

	// Position is the task's index within the day cycle (Day mod pool size).
	Position int

	// PoolSize is the number of tasks in the selection pool.
	PoolSize int
}

// Daily picks the task for the given date. When category is non-empty the
// pool is restricted to that category; the pick then depends only on that
// category's tasks, never on the rest of the catalog.
//
// Selection has no side effects — it marks nothing complete.
func Daily(date time.Time, c *catalog.Catalog, category string) (*Selection, error) {
	pool := c.Tasks()
	if category != "" {
		pool = c.Filter(category)
		if len(pool) == 0 {
			// Distinguish "no such category" from "category exists but empty".
			// With an immutable catalog a category exists iff it has tasks,
			// so an empty filter means the category is unknown.
			if c.Len() > 0 {
				return nil, &ErrUnknownCategory{Category: category, Known: c.CategoryNames()}
			}
		}
	}
	if len(pool) == 0 {
		return nil, &ErrEmptyCatalog{Category: category}
	}

	// Sort by ID so the cycle order is stable regardless of file order.
	sorted := make([]*catalog.Task, len(pool))
	for i := range pool {
		sorted[i] = &pool[i]
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	day := dayOrdinal(date)
	// Floored modulo: the ordinal is negative for dates before 1970.
	n := len(sorted)
	pos := ((day % n) + n) % n

	return &Selection{
		Task:     sorted[pos],
		Day:      day,
		Position: pos,
		PoolSize: n,
	}, nil
}

// dayOrdinal returns the number of civil days since the Unix epoch in the
// date's own location. Two times on the same local calendar day share an
// ordinal, and consecutive days differ by exactly one.
func dayOrdinal(t time.Time) int {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(midnight.Unix() / 86400)
}
