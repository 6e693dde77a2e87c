// Package answer is the interactive answer flow for the today and category
// commands: it shows the daily task, reads one answer, checks it, and
// records the completion.
package answer

import (
	"context"
	"fmt"
	"os"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/microlearn/internal/locale"
	"github.com/abhisek/microlearn/internal/progress"
	"github.com/abhisek/microlearn/internal/quiz"
	"github.com/abhisek/microlearn/internal/selector"
	"github.com/abhisek/microlearn/internal/store"
	"github.com/abhisek/microlearn/internal/ui"
	"github.com/abhisek/microlearn/internal/ui/theme"
)

// Options carry everything the answer flow needs.
type Options struct {
	Locale    *locale.Locale
	Selection *selector.Selection
	Tracker   *progress.Tracker
	Attempts  store.AttemptRepo

	// Date is the day the completion is recorded against.
	Date time.Time
}

// Outcome is what the flow produced, read back by the command after the
// program exits.
type Outcome struct {
	// Answered is false when the user quit without submitting.
	Answered bool

	Verdict quiz.Verdict
	State   progress.State

	// RecordErr is non-nil when the completion could not be persisted.
	RecordErr error
}

// Model is the Bubble Tea model for the answer flow.
type Model struct {
	opts  Options
	input textinput.Model

	// wasCompleted is captured at construction so the panel does not
	// change mid-flow when the completion is recorded.
	wasCompleted bool

	outcome  Outcome
	quitting bool
}

// New creates the answer flow model.
func New(opts Options) *Model {
	ti := textinput.New()
	ti.Placeholder = opts.Locale.T("answer.prompt")
	ti.CharLimit = 120
	ti.Focus()

	return &Model{
		opts:         opts,
		input:        ti,
		wasCompleted: opts.Tracker.State().Completed(opts.Selection.Task.ID),
	}
}

// Outcome returns the flow result. Valid once the program has finished.
func (m *Model) Outcome() Outcome {
	return m.outcome
}

func (m *Model) Init() tea.Cmd {
	return m.input.Focus()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if !m.outcome.Answered {
				m.submit()
			}
			return m, nil
		default:
			// Any key after the verdict dismisses the screen.
			if m.outcome.Answered {
				m.quitting = true
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit checks the answer and records the completion. The completion is
// recorded whether or not the answer was correct: showing up counts.
func (m *Model) submit() {
	ctx := context.Background()
	task := m.opts.Selection.Task
	given := m.input.Value()

	m.outcome.Verdict = quiz.Check(task, given)
	m.outcome.Answered = true
	m.input.Blur()

	if m.opts.Attempts != nil {
		// The attempt log is advisory. A failed append must not block
		// the completion write.
		if err := m.opts.Attempts.Append(ctx, store.AttemptData{
			TaskID:   task.ID,
			Category: task.Category,
			Given:    given,
			Correct:  m.outcome.Verdict.Correct,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to log answer attempt: %v\n", err)
		}
	}

	st, err := m.opts.Tracker.RecordCompletion(ctx, task, m.opts.Date)
	if err != nil {
		m.outcome.RecordErr = err
		m.outcome.State = m.opts.Tracker.State()
		return
	}
	m.outcome.State = st
}

func (m *Model) View() tea.View {
	return tea.NewView(m.render())
}

func (m *Model) render() string {
	if m.quitting {
		return m.finalView()
	}

	loc := m.opts.Locale
	s := ui.TaskPanel(loc, m.opts.Selection, m.wasCompleted) + "\n\n"

	if !m.outcome.Answered {
		s += m.input.View() + "\n"
		s += theme.Hint.Render(loc.T("answer.hint"))
		return s
	}

	s += ui.VerdictView(loc, m.outcome.Verdict) + "\n\n"
	if m.outcome.RecordErr != nil {
		s += theme.Incorrect.Render(loc.Tf("progress.not_saved", m.outcome.RecordErr)) + "\n"
	} else {
		s += ui.StreakView(loc, m.outcome.State) + "\n"
	}

	return s
}

// finalView is what stays on the terminal after the program exits.
func (m *Model) finalView() string {
	if !m.outcome.Answered {
		return ""
	}

	loc := m.opts.Locale
	s := ui.VerdictView(loc, m.outcome.Verdict) + "\n"
	if m.outcome.RecordErr != nil {
		s += theme.Incorrect.Render(loc.Tf("progress.not_saved", m.outcome.RecordErr)) + "\n"
	} else {
		s += ui.StreakView(loc, m.outcome.State) + "\n"
	}
	return s
}

// Run executes the answer flow and returns its outcome.
func Run(opts Options) (Outcome, error) {
	m := New(opts)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return Outcome{}, err
	}
	return m.Outcome(), nil
}
