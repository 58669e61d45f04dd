package chatlist

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("#FFFFFF")
	mutedColor   = lipgloss.Color("#9CA3AF") // gray-400
	bubbleColor  = lipgloss.Color("#2563EB") // blue-600
)

var (
	welcomeStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Align(lipgloss.Center)

	userStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Background(bubbleColor).
			Padding(0, 1)

	defaultStyle = lipgloss.NewStyle().
			Foreground(primaryColor)
)

// Fraction of the list width a user bubble may take up.
const (
	bubbleNum = 4
	bubbleDen = 5
)
