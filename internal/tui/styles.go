package tui

import "github.com/charmbracelet/lipgloss"

var (
	focusedBorderColor = lipgloss.Color("#7aa2f7")
	blurredBorderColor = lipgloss.Color("#3b4261")
	statusBarColor     = lipgloss.Color("#565f89")
	statusTextColor    = lipgloss.Color("#c0caf5")

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(blurredBorderColor)

	focusedPaneStyle = paneStyle.
				BorderForeground(focusedBorderColor)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(statusTextColor).
			Background(statusBarColor).
			Padding(0, 1)

	statusDirtyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#e0af68")).
				Background(statusBarColor).
				Bold(true).
				Padding(0, 1)
)

// paneBorder picks the border style for a pane by focus state.
func paneBorder(focused bool) lipgloss.Style {
	if focused {
		return focusedPaneStyle
	}
	return paneStyle
}
