package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	editor := paneBorder(m.focus == focusEditor).Render(m.editor.View())
	preview := paneBorder(m.focus == focusPreview).Render(m.preview.View())

	panes := lipgloss.JoinHorizontal(lipgloss.Top, editor, preview)

	bar := statusBarStyle
	if m.dirty {
		bar = statusDirtyStyle
	}
	status := bar.Width(m.width).Render(m.statusLine())

	return lipgloss.JoinVertical(lipgloss.Left, panes, status)
}
