package textview

import "github.com/charmbracelet/lipgloss"

var (
	panelBorder     = lipgloss.Color("#2D6A80")
	accentPrimary   = lipgloss.Color("#50E3C2")
	accentSecondary = lipgloss.Color("#F6AE2D")
	mutedText       = lipgloss.Color("#8CA1AE")
	warningText     = lipgloss.Color("#FF6B6B")
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(panelBorder).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(accentPrimary).
			Bold(true)

	termStyle = lipgloss.NewStyle().
			Foreground(mutedText)

	streamStyle = lipgloss.NewStyle().
			Foreground(accentSecondary)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedText)

	runningStyle = lipgloss.NewStyle().
			Foreground(accentPrimary).
			Bold(true)

	stoppedStyle = lipgloss.NewStyle().
			Foreground(warningText).
			Bold(true)
)
