package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — lake and altiplano tones
var (
	Primary   = lipgloss.Color("#22C55E") // Leaf Green
	Secondary = lipgloss.Color("#3B82F6") // Lake Blue
	Accent    = lipgloss.Color("#EAB308") // Festival Gold
	Success   = lipgloss.Color("#4ADE80") // Light Green
	Error     = lipgloss.Color("#EF4444") // Red
	Locked    = lipgloss.Color("#9CA3AF") // Stone Gray
	Text      = lipgloss.Color("#F9FAFB") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0C1C2C") // Deep Lake
	BgCard    = lipgloss.Color("#16324A") // Night Lake
	Border    = lipgloss.Color("#2E4B63") // Shore
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	LockedStyle = lipgloss.NewStyle().
			Foreground(Locked)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
