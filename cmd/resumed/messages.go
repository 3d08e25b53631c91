package main

import "github.com/charmbracelet/lipgloss"

var (
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func highlight(s string) string {
	return highlightStyle.Render(s)
}

func failure(s string) string {
	return errorStyle.Render(s)
}
