package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	Primary   = lipgloss.Color("#00D9FF")
	Secondary = lipgloss.Color("#7C3AED")
	Success   = lipgloss.Color("#10B981")
	Warning   = lipgloss.Color("#F59E0B")
	Error     = lipgloss.Color("#EF4444")
	Muted     = lipgloss.Color("#6B7280")
	Ink       = lipgloss.Color("#000000")
	Elephant  = lipgloss.Color("#336791")

	HeaderStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(Primary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Selector rows
	HighlightStyle = lipgloss.NewStyle().
			Foreground(Ink).
			Background(Primary)

	NormalStyle = lipgloss.NewStyle()

	// Selector frame
	BorderStyle = lipgloss.NewStyle().
			Foreground(Primary)

	TitleStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	BannerStyle = lipgloss.NewStyle().
			Foreground(Elephant)

	// Spinner style
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(Primary)
)
