package ui

import (
	"github.com/charmbracelet/lipgloss"

	"quickpick/internal/ui/theme"
)

func currentTheme() theme.Theme {
	return theme.Current()
}

func styleAppTitle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(currentTheme().Primary).
		Bold(true).
		MarginBottom(1)
}

func styleSelected() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(currentTheme().Success).
		Bold(true)
}

func styleMuted() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(currentTheme().TextMuted)
}

func stylePreviewPane() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(currentTheme().BorderNormal).
		Padding(0, 1)
}
