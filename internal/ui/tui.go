// Package ui provides an optional terminal interface over the task list.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ledat5934/task-tracker-cli/internal/task"
)

// TUIOption configures the TUI behavior.
type TUIOption func(*tuiConfig)

// tuiConfig holds TUI configuration.
type tuiConfig struct {
	refreshInterval time.Duration
}

// WithRefreshInterval overrides how often the data file is reloaded.
func WithRefreshInterval(d time.Duration) TUIOption {
	return func(c *tuiConfig) {
		if d > 0 {
			c.refreshInterval = d
		}
	}
}

// RunTUI starts a read-only task viewer over the store.
func RunTUI(ctx context.Context, store *task.Store, opts ...TUIOption) error {
	c := &tuiConfig{
		refreshInterval: time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}

	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	model := newTUIModel(store, c.refreshInterval)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type tuiModel struct {
	store        *task.Store
	tasks        task.List
	loadErr      error
	tickInterval time.Duration
	filter       task.Status // Filter by status
	showHelp     bool        // Show help screen
}

type tickMsg time.Time

func newTUIModel(store *task.Store, tickInterval time.Duration) *tuiModel {
	return &tuiModel{
		store:        store,
		tickInterval: tickInterval,
	}
}

func (m *tuiModel) Init() tea.Cmd {
	m.refresh()
	return tickCmd(m.tickInterval)
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r", "f5":
			m.refresh()
			return m, nil
		case "h", "?":
			m.showHelp = !m.showHelp
			return m, nil
		case "1":
			m.filter = task.StatusTodo
			return m, nil
		case "2":
			m.filter = task.StatusInProgress
			return m, nil
		case "3":
			m.filter = task.StatusDone
			return m, nil
		case "0":
			m.filter = ""
			return m, nil
		}
	case tickMsg:
		m.refresh()
		return m, tickCmd(m.tickInterval)
	}

	return m, nil
}

func (m *tuiModel) View() string {
	var b strings.Builder
	writeTitle(&b)

	if m.showHelp {
		writeHelp(&b)
		writeFooter(&b, m.tickInterval)
		return b.String()
	}

	if m.filter != "" {
		b.WriteString(fmt.Sprintf("Filter: %s (0 to clear)\n\n", m.filter))
	}

	if m.loadErr != nil {
		b.WriteString("Error loading data file:\n")
		b.WriteString("  " + m.loadErr.Error() + "\n\n")
		writeFooter(&b, m.tickInterval)
		return b.String()
	}

	writeOverview(&b, m.tasks)

	display := m.tasks
	if m.filter != "" {
		display = m.tasks.Filter(m.filter)
	}
	writeTasks(&b, display)
	b.WriteString(fmt.Sprintf("Data file: %s\n\n", m.store.Path))
	writeFooter(&b, m.tickInterval)
	return b.String()
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *tuiModel) refresh() {
	tasks, err := m.store.Load()
	if err != nil {
		m.loadErr = err
		m.tasks = nil
		return
	}
	m.loadErr = nil
	m.tasks = tasks
}

func writeTitle(b *strings.Builder) {
	title := "Task Tracker"
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
}

func writeOverview(b *strings.Builder, tasks task.List) {
	counts := tasks.Counts()
	b.WriteString(fmt.Sprintf("  Todo: %d  In progress: %d  Done: %d\n\n",
		counts[task.StatusTodo],
		counts[task.StatusInProgress],
		counts[task.StatusDone],
	))
}

func writeTasks(b *strings.Builder, tasks task.List) {
	if len(tasks) == 0 {
		b.WriteString("  No tasks to show.\n\n")
		return
	}
	for i := range tasks {
		b.WriteString(formatTask(&tasks[i]))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  q, ctrl+c    Quit\n")
	b.WriteString("  r, F5        Refresh data\n")
	b.WriteString("  h, ?         Toggle this help screen\n")
	b.WriteString("  1            Filter by todo\n")
	b.WriteString("  2            Filter by in-progress\n")
	b.WriteString("  3            Filter by done\n")
	b.WriteString("  0            Clear filter\n\n")
}

func writeFooter(b *strings.Builder, interval time.Duration) {
	b.WriteString(fmt.Sprintf("Press h for help | q to quit | Refreshing every %s\n", interval))
}

func formatTask(t *task.Task) string {
	statusIcon := " "
	switch t.Status {
	case task.StatusInProgress:
		statusIcon = ">"
	case task.StatusDone:
		statusIcon = "x"
	}

	line := fmt.Sprintf("  %s [%d] %s", statusIcon, t.ID, t.Name)
	if t.Description == "" {
		return line
	}
	description := t.Description
	if len(description) > 60 {
		description = description[:57] + "..."
	}
	return line + "\n      " + description
}

// IsTTY returns true if stdout is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, _ := f.Stat()
	return (info.Mode() & os.ModeCharDevice) != 0
}
