package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

var (
	// ErrCancelled is returned when the user leaves the selector without choosing
	ErrCancelled = errors.New("selection cancelled")

	// ErrTerminalUnavailable is returned when the selector cannot take over the terminal
	ErrTerminalUnavailable = errors.New("terminal unavailable")

	// ErrInvalidInput is returned when there is nothing to select from
	ErrInvalidInput = errors.New("no services to select from")
)

// DefaultTitle is shown in the selector's top border.
const DefaultTitle = "Select service to connect to"

const (
	preferredBoxWidth = 80
	rowIndent         = 2
)

// Drawn above the box when the terminal has room for it.
var banner = []string{
	`   ____  ______  ___   `,
	`  /    )/      \/   \  `,
	` (     / __    _\    ) `,
	`  \    (/ o)  ( o)   ) `,
	`   \_  (_  )   \ ) _/  `,
	`     \  /\_/    \)/    `,
	`      \/ <//|  |\\>    `,
	`            |  |       `,
	`            |_/        `,
}

// layout describes how the selector fits a terminal of a given size.
type layout struct {
	boxWidth   int
	showBanner bool
}

// minimumSize is the smallest terminal that can hold the box alone.
func minimumSize(names []string, title string) (width, height int) {
	inner := lipgloss.Width(title) + 4
	for _, name := range names {
		if w := lipgloss.Width(name) + 2*rowIndent; w > inner {
			inner = w
		}
	}
	return inner + 2, len(names) + 4
}

func computeLayout(width, height int, names []string, title string) (layout, bool) {
	minWidth, minHeight := minimumSize(names, title)
	if width < minWidth || height < minHeight {
		return layout{}, false
	}

	boxWidth := max(preferredBoxWidth, minWidth)
	boxWidth = min(boxWidth, width)

	return layout{
		boxWidth:   boxWidth,
		showBanner: height > 4+len(names)+len(banner),
	}, true
}

type selectorModel struct {
	names     []string
	title     string
	cursor    int
	choice    string
	cancelled bool
	quitting  bool
	width     int
	height    int
}

func newSelector(names []string, title string) selectorModel {
	if title == "" {
		title = DefaultTitle
	}
	return selectorModel{names: names, title: title}
}

func (m selectorModel) Init() tea.Cmd {
	return nil
}

func (m selectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyUp:
			if m.cursor == 0 {
				m.cursor = len(m.names) - 1
			} else {
				m.cursor--
			}
		case tea.KeyDown:
			if m.cursor == len(m.names)-1 {
				m.cursor = 0
			} else {
				m.cursor++
			}
		case tea.KeyEnter:
			m.choice = m.names[m.cursor]
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m selectorModel) View() string {
	if m.quitting || m.width == 0 {
		return ""
	}

	lay, ok := computeLayout(m.width, m.height, m.names, m.title)
	if !ok {
		minWidth, minHeight := minimumSize(m.names, m.title)
		notice := MutedStyle.Render(fmt.Sprintf("Terminal too small (need %dx%d)", minWidth, minHeight))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, notice)
	}

	content := m.renderBox(lay.boxWidth)
	if lay.showBanner {
		art := BannerStyle.Render(strings.Join(banner, "\n"))
		content = lipgloss.JoinVertical(lipgloss.Center, art, "", content)
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderBox draws the bordered list with the title set into the top edge.
func (m selectorModel) renderBox(width int) string {
	b := lipgloss.RoundedBorder()
	inner := width - 2

	label := " " + m.title + " "
	fill := inner - lipgloss.Width(label)
	left := fill / 2
	top := BorderStyle.Render(b.TopLeft+strings.Repeat(b.Top, left)) +
		TitleStyle.Render(label) +
		BorderStyle.Render(strings.Repeat(b.Top, fill-left)+b.TopRight)

	lines := []string{top}
	for i, name := range m.names {
		style := NormalStyle
		if i == m.cursor {
			style = HighlightStyle
		}
		pad := inner - rowIndent - lipgloss.Width(name)
		row := strings.Repeat(" ", rowIndent) + style.Render(name) + strings.Repeat(" ", pad)
		lines = append(lines, BorderStyle.Render(b.Left)+row+BorderStyle.Render(b.Right))
	}
	lines = append(lines, BorderStyle.Render(b.BottomLeft+strings.Repeat(b.Bottom, inner)+b.BottomRight))

	return strings.Join(lines, "\n")
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SelectService shows a full-screen menu of names and returns the one the
// user confirms with Enter. Escape returns ErrCancelled. The terminal is
// restored before SelectService returns.
func SelectService(names []string, title string) (string, error) {
	if len(names) == 0 {
		return "", ErrInvalidInput
	}

	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return "", fmt.Errorf("%w: stdin and stdout must be a terminal", ErrTerminalUnavailable)
	}

	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTerminalUnavailable, err)
	}

	model := newSelector(names, title)
	if _, ok := computeLayout(width, height, names, model.title); !ok {
		minWidth, minHeight := minimumSize(names, model.title)
		return "", fmt.Errorf("%w: terminal is %dx%d, need at least %dx%d", ErrTerminalUnavailable, width, height, minWidth, minHeight)
	}

	program := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTerminalUnavailable, err)
	}

	m, ok := finalModel.(selectorModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type")
	}
	if m.cancelled {
		return "", ErrCancelled
	}
	return m.choice, nil
}
