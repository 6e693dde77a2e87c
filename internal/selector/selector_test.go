package selector

import (
	"errors"
	"testing"
	"time"

	"github.com/abhisek/microlearn/internal/catalog"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Task{
		{ID: "m1", Category: "math", Question: "q", Answer: "a"},
		{ID: "m2", Category: "math", Question: "q", Answer: "a"},
		{ID: "m3", Category: "math", Question: "q", Answer: "a"},
		{ID: "l1", Category: "logic", Question: "q", Answer: "a"},
		{ID: "l2", Category: "logic", Question: "q", Answer: "a"},
	})
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDailyDeterministic(t *testing.T) {
	c := testCatalog()
	d := date(2025, time.March, 14)

	first, err := Daily(d, c, "")
	if err != nil {
		t.Fatalf("daily: %v", err)
	}
	second, err := Daily(d, c, "")
	if err != nil {
		t.Fatalf("daily: %v", err)
	}
	if first.Task.ID != second.Task.ID {
		t.Errorf("same date picked %q then %q", first.Task.ID, second.Task.ID)
	}
}

func TestDailyIgnoresTimeOfDay(t *testing.T) {
	c := testCatalog()
	morning := time.Date(2025, time.March, 14, 0, 1, 0, 0, time.UTC)
	evening := time.Date(2025, time.March, 14, 23, 59, 0, 0, time.UTC)

	a, _ := Daily(morning, c, "")
	b, _ := Daily(evening, c, "")
	if a.Task.ID != b.Task.ID {
		t.Errorf("same day picked %q at 00:01 and %q at 23:59", a.Task.ID, b.Task.ID)
	}
}

// The --date flag accepts any calendar date, including ones before the
// Unix epoch where the day ordinal is negative.
func TestDailyPreEpochDate(t *testing.T) {
	c := testCatalog()

	sel, err := Daily(date(1969, time.December, 31), c, "")
	if err != nil {
		t.Fatalf("daily: %v", err)
	}
	if sel.Position < 0 || sel.Position >= sel.PoolSize {
		t.Errorf("Position = %d, want within [0, %d)", sel.Position, sel.PoolSize)
	}

	// Coverage must hold across the epoch boundary too.
	start := date(1969, time.December, 29)
	seen := make(map[string]bool)
	for i := 0; i < c.Len(); i++ {
		s, err := Daily(start.AddDate(0, 0, i), c, "")
		if err != nil {
			t.Fatalf("day %d: %v", i, err)
		}
		seen[s.Task.ID] = true
	}
	if len(seen) != c.Len() {
		t.Errorf("visited %d distinct tasks over %d days, want %d", len(seen), c.Len(), c.Len())
	}
}

func TestDailyCoversCatalogOverOneCycle(t *testing.T) {
	c := testCatalog()
	start := date(2025, time.January, 1)

	seen := make(map[string]bool)
	for i := 0; i < c.Len(); i++ {
		sel, err := Daily(start.AddDate(0, 0, i), c, "")
		if err != nil {
			t.Fatalf("day %d: %v", i, err)
		}
		if seen[sel.Task.ID] {
			t.Errorf("task %q repeated within one cycle", sel.Task.ID)
		}
		seen[sel.Task.ID] = true
	}
	if len(seen) != c.Len() {
		t.Errorf("visited %d distinct tasks over %d days, want %d", len(seen), c.Len(), c.Len())
	}
}

func TestDailyCategoryCoverage(t *testing.T) {
	c := testCatalog()
	start := date(2025, time.June, 10)

	seen := make(map[string]bool)
	for i := 0; i < 2; i++ {
		sel, err := Daily(start.AddDate(0, 0, i), c, "logic")
		if err != nil {
			t.Fatalf("day %d: %v", i, err)
		}
		if sel.Task.Category != "logic" {
			t.Fatalf("picked task %q from category %q", sel.Task.ID, sel.Task.Category)
		}
		seen[sel.Task.ID] = true
	}
	if len(seen) != 2 {
		t.Errorf("visited %d distinct logic tasks over 2 days, want 2", len(seen))
	}
}

// A category's selection must not be coupled to unrelated categories:
// adding tasks elsewhere must not change what a category serves today.
func TestDailyCategoryIndependence(t *testing.T) {
	d := date(2025, time.September, 3)

	small := testCatalog()
	before, err := Daily(d, small, "logic")
	if err != nil {
		t.Fatalf("daily: %v", err)
	}

	grown := catalog.New(append(small.Tasks(),
		catalog.Task{ID: "g1", Category: "general", Question: "q", Answer: "a"},
		catalog.Task{ID: "g2", Category: "general", Question: "q", Answer: "a"},
	))
	after, err := Daily(d, grown, "logic")
	if err != nil {
		t.Fatalf("daily: %v", err)
	}

	if before.Task.ID != after.Task.ID {
		t.Errorf("logic selection changed from %q to %q when other categories grew",
			before.Task.ID, after.Task.ID)
	}
}

func TestDailyEmptyCatalog(t *testing.T) {
	c := catalog.New(nil)
	_, err := Daily(date(2025, time.March, 14), c, "")

	var emptyErr *ErrEmptyCatalog
	if !errors.As(err, &emptyErr) {
		t.Fatalf("expected *ErrEmptyCatalog, got %T: %v", err, err)
	}
}

func TestDailyUnknownCategory(t *testing.T) {
	c := testCatalog()
	_, err := Daily(date(2025, time.March, 14), c, "history")

	var unknownErr *ErrUnknownCategory
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected *ErrUnknownCategory, got %T: %v", err, err)
	}
	if len(unknownErr.Known) != 2 {
		t.Errorf("Known = %v, want the 2 catalog categories", unknownErr.Known)
	}
}
