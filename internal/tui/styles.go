package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("39")  // blue
	colorSuccess = lipgloss.Color("42")  // green
	colorDanger  = lipgloss.Color("196") // red
	colorMuted   = lipgloss.Color("241") // grey

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	helpKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	metricLabelStyle = lipgloss.NewStyle().
				Foreground(colorMuted)

	metricPositiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorSuccess)

	metricNegativeStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorDanger)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorDanger)
)

func metricValueStyle(cents int64) lipgloss.Style {
	if cents < 0 {
		return metricNegativeStyle
	}
	return metricPositiveStyle
}
