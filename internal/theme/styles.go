package theme

import "github.com/charmbracelet/lipgloss"

// Report styles
var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	PIDStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	ServiceStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)
)

// Outcome icon styles
var (
	FailedIconStyle = lipgloss.NewStyle().
			Foreground(ColorFailed)

	OKIconStyle = lipgloss.NewStyle().
			Foreground(ColorOK)

	SkippedIconStyle = lipgloss.NewStyle().
				Foreground(ColorSkipped)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)
