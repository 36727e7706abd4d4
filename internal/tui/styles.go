package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")
	successColor = lipgloss.Color("42")
	errorColor   = lipgloss.Color("196")
	mutedColor   = lipgloss.Color("245")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			PaddingLeft(2).
			MarginBottom(1)

	previewBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2).
			Align(lipgloss.Center)

	summaryStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			PaddingLeft(2)

	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)

	successBannerStyle = lipgloss.NewStyle().
				Foreground(successColor).
				Bold(true).
				MarginTop(1)

	errorBannerStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Bold(true).
				MarginTop(1)

	helpStyle = lipgloss.NewStyle().MarginTop(1).PaddingLeft(2)
)
