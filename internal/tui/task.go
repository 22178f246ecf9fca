package tui

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrCancelled is returned by RunTask when the user interrupts the task.
var ErrCancelled = errors.New("cancelled")

type taskDoneMsg struct {
	err error
}

// taskModel shows a spinner while a single blocking task runs.
type taskModel struct {
	spinner spinner.Model
	label   string
	run     func(context.Context) error
	ctx     context.Context
	cancel  context.CancelFunc
	err     error
	done    bool
}

func newTaskModel(ctx context.Context, label string, run func(context.Context) error) taskModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	ctx, cancel := context.WithCancel(ctx)
	return taskModel{spinner: s, label: label, run: run, ctx: ctx, cancel: cancel}
}

func (m taskModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, runTaskCmd(m.ctx, m.run))
}

func runTaskCmd(ctx context.Context, run func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return taskDoneMsg{err: run(ctx)}
	}
}

func (m taskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskDoneMsg:
		m.done = true
		m.err = msg.err
		m.cancel()
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancel()
			m.done = true
			m.err = ErrCancelled
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m taskModel) View() string {
	if !m.done {
		return m.spinner.View() + " " + m.label + "\n"
	}
	if m.err != nil {
		return failureStyle.Render("✗") + " " + m.label + "\n"
	}
	return successStyle.Render("✓") + " " + m.label + "\n"
}

// RunTask runs fn while showing a spinner with label on out. It returns fn's
// error, or ErrCancelled if the user pressed ctrl+c first.
func RunTask(ctx context.Context, out io.Writer, label string, fn func(context.Context) error) error {
	program := tea.NewProgram(newTaskModel(ctx, label, fn), tea.WithOutput(out), tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		return err
	}
	result, ok := final.(taskModel)
	if !ok {
		return errors.New("unexpected task model")
	}
	return result.err
}
