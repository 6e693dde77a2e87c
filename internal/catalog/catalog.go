package catalog

import "sort"

// Catalog is the immutable set of tasks available to the program,
// in file order. All task IDs are unique (enforced by the loader).
type Catalog struct {
	tasks []Task
	byID  map[string]*Task
}

// New builds a Catalog from a validated task list.
func New(tasks []Task) *Catalog {
	c := &Catalog{
		tasks: tasks,
		byID:  make(map[string]*Task, len(tasks)),
	}
	for i := range c.tasks {
		c.byID[c.tasks[i].ID] = &c.tasks[i]
	}
	return c
}

// Len returns the number of tasks in the catalog.
func (c *Catalog) Len() int {
	return len(c.tasks)
}

// Tasks returns all tasks in file order.
func (c *Catalog) Tasks() []Task {
	return c.tasks
}

// ByID looks up a task by its ID.
func (c *Catalog) ByID(id string) (*Task, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// Filter returns the tasks belonging to the given category, in file order.
func (c *Catalog) Filter(category string) []Task {
	var out []Task
	for _, t := range c.tasks {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// CategoryCount pairs a category name with its task count.
type CategoryCount struct {
	Name  string
	Count int
}

// Categories returns the distinct category names with per-category task
// counts, sorted by name.
func (c *Catalog) Categories() []CategoryCount {
	counts := make(map[string]int)
	for _, t := range c.tasks {
		counts[t.Category]++
	}
	out := make([]CategoryCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, CategoryCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// CategoryNames returns the distinct category names, sorted.
func (c *Catalog) CategoryNames() []string {
	cats := c.Categories()
	names := make([]string, len(cats))
	for i, cc := range cats {
		names[i] = cc.Name
	}
	return names
}
