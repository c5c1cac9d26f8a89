package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrInterrupted is returned when the user aborts a running spinner.
var ErrInterrupted = errors.New("interrupted")

type doneMsg struct{ err error }

type SpinnerModel struct {
	spinner     spinner.Model
	message     string
	done        bool
	interrupted bool
	err         error
}

func NewSpinner(message string) SpinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle
	return SpinnerModel{
		spinner: s,
		message: message,
	}
}

func (m SpinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m SpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			m.interrupted = true
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case doneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m SpinnerModel) View() string {
	if m.err != nil {
		return ErrorStyle.Render("✗ "+m.message) + "\n"
	}
	if m.interrupted {
		return MutedStyle.Render("Interrupted.") + "\n"
	}
	if m.done {
		return SuccessStyle.Render("✓ "+m.message) + "\n"
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), InfoStyle.Render(m.message))
}

// ShowSpinner runs fn while a spinner is drawn on stderr. fn always finishes
// before ShowSpinner returns; an interrupt cancels the context passed to it.
func ShowSpinner(ctx context.Context, message string, fn func(ctx context.Context) error) error {
	// Check if we have a TTY, if not, just run the function with simple output
	if !isTerminal(os.Stderr) {
		fmt.Fprintf(os.Stderr, "%s %s...\n", "⏳", InfoStyle.Render(message))
		err := fn(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %s\n", ErrorStyle.Render("✗"), err.Error())
		} else {
			fmt.Fprintf(os.Stderr, "%s %s\n", SuccessStyle.Render("✓"), message)
		}
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(NewSpinner(message), tea.WithOutput(os.Stderr))

	result := make(chan error, 1)
	go func() {
		err := fn(ctx)
		result <- err
		program.Send(doneMsg{err: err})
	}()

	final, runErr := program.Run()
	if m, ok := final.(SpinnerModel); ok && m.interrupted {
		cancel()
		<-result
		return ErrInterrupted
	}
	err := <-result
	if runErr != nil && err == nil {
		return runErr
	}
	return err
}
