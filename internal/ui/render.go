// Package ui renders program output with consistent styling. Every view is
// a pure string builder so commands can print to stdout and the interactive
// answer screen can embed the same panels.
package ui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/microlearn/internal/catalog"
	"github.com/abhisek/microlearn/internal/coach"
	"github.com/abhisek/microlearn/internal/locale"
	"github.com/abhisek/microlearn/internal/progress"
	"github.com/abhisek/microlearn/internal/quiz"
	"github.com/abhisek/microlearn/internal/selector"
	"github.com/abhisek/microlearn/internal/store"
	"github.com/abhisek/microlearn/internal/ui/theme"
)

// TaskPanel renders today's task as a bordered card.
func TaskPanel(loc *locale.Locale, sel *selector.Selection, completed bool) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render(loc.T("today.title")))
	b.WriteString("\n")
	b.WriteString(theme.Dim.Render(loc.Tf("task.category", sel.Task.Category)))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(sel.Task.Question))
	b.WriteString("\n\n")

	cycle := loc.Tf("task.cycle", sel.Position+1, sel.PoolSize)
	if completed {
		cycle += " · " + loc.T("task.completed_before")
	}
	b.WriteString(theme.Hint.Render(cycle))

	return theme.Card.Render(b.String())
}

// VerdictView renders the result of one answer.
func VerdictView(loc *locale.Locale, v quiz.Verdict) string {
	var b strings.Builder

	if v.Correct {
		b.WriteString(theme.Correct.Render("✓ " + loc.T("verdict.correct")))
	} else {
		b.WriteString(theme.Incorrect.Render("✗ " + loc.T("verdict.incorrect")))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(loc.Tf("verdict.expected", v.Expected)))
	}
	if v.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(theme.Dim.Render(v.Explanation))
	}

	return b.String()
}

// StreakView renders the streak and total lines shown after a completion.
func StreakView(loc *locale.Locale, st progress.State) string {
	return theme.Streak.Render("🔥 "+loc.Tf("streak.days", st.Streak)) + "\n" +
		theme.Body.Render(loc.Tf("streak.total", st.TotalCompleted))
}

// StatsView renders the full statistics report.
func StatsView(loc *locale.Locale, st progress.State, attempts store.AttemptStats, recent []RecentCompletion) string {
	if st.TotalCompleted == 0 {
		return theme.Dim.Render(loc.T("stats.empty"))
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(loc.T("stats.title")))
	b.WriteString("\n\n")

	rows := [][2]string{
		{loc.T("stats.total_completed"), fmt.Sprintf("%d", st.TotalCompleted)},
		{loc.T("stats.streak"), fmt.Sprintf("%d", st.Streak)},
		{loc.T("stats.last_completed"), st.LastCompleted.Format("2006-01-02")},
	}
	if attempts.Total > 0 {
		rows = append(rows,
			[2]string{loc.T("stats.attempts"), fmt.Sprintf("%d", attempts.Total)},
			[2]string{loc.T("stats.accuracy"), fmt.Sprintf("%.0f%%", attempts.Accuracy()*100)},
		)
	}
	b.WriteString(twoColumn(loc.T("stats.metric"), loc.T("stats.value"), rows))

	if stats := st.CategoryStats(); len(stats) > 0 {
		names := make([]string, 0, len(stats))
		for name := range stats {
			names = append(names, name)
		}
		sort.Strings(names)

		catRows := make([][2]string, 0, len(names))
		for _, name := range names {
			catRows = append(catRows, [2]string{name, fmt.Sprintf("%d", stats[name])})
		}

		b.WriteString("\n\n")
		b.WriteString(theme.TableHeader.Render(loc.T("stats.by_category")))
		b.WriteString("\n")
		b.WriteString(twoColumn(loc.T("categories.name"), loc.T("categories.count"), catRows))
	}

	if len(recent) > 0 {
		b.WriteString("\n\n")
		b.WriteString(theme.TableHeader.Render(loc.T("stats.recent")))
		b.WriteString("\n")
		for _, r := range recent {
			b.WriteString(theme.Dim.Render(r.Date.Format("2006-01-02")))
			b.WriteString("  ")
			b.WriteString(theme.Body.Render(r.TaskID))
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// RecentCompletion is one row of the "recently completed" stats section.
type RecentCompletion struct {
	TaskID string
	Date   time.Time
}

// RecentCompletions extracts the most recent first-completions from the
// state, newest first, at most n rows.
func RecentCompletions(st progress.State, n int) []RecentCompletion {
	out := make([]RecentCompletion, 0, len(st.CompletedTasks))
	for id, c := range st.CompletedTasks {
		out = append(out, RecentCompletion{TaskID: id, Date: c.Date})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].TaskID < out[j].TaskID
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// CategoriesView renders the category list with task counts.
func CategoriesView(loc *locale.Locale, counts []catalog.CategoryCount) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(loc.T("categories.title")))
	b.WriteString("\n\n")

	rows := make([][2]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, [2]string{c.Name, fmt.Sprintf("%d", c.Count)})
	}
	b.WriteString(twoColumn(loc.T("categories.name"), loc.T("categories.count"), rows))

	return b.String()
}

// ExplanationView renders an AI-generated explanation for a task.
func ExplanationView(loc *locale.Locale, e *coach.Explanation) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(loc.Tf("explain.heading", e.TaskID)))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(e.Summary))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(e.Explanation))
	if e.Example != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.TableHeader.Render(loc.T("explain.example")))
		b.WriteString("\n")
		b.WriteString(theme.Dim.Render(e.Example))
	}
	return b.String()
}

// twoColumn renders a small left-aligned table with a header row.
func twoColumn(leftHeader, rightHeader string, rows [][2]string) string {
	width := lipgloss.Width(leftHeader)
	for _, r := range rows {
		if w := lipgloss.Width(r[0]); w > width {
			width = w
		}
	}

	var b strings.Builder
	b.WriteString(theme.TableHeader.Render(pad(leftHeader, width)))
	b.WriteString("  ")
	b.WriteString(theme.TableHeader.Render(rightHeader))
	for _, r := range rows {
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(pad(r[0], width)))
		b.WriteString("  ")
		b.WriteString(theme.Body.Render(r[1]))
	}
	return b.String()
}

func pad(s string, width int) string {
	if d := width - lipgloss.Width(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}
