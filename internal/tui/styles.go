package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("62")
	colorMuted   = lipgloss.Color("241")
	colorGood    = lipgloss.Color("42")
	colorBad     = lipgloss.Color("196")

	appStyle = lipgloss.NewStyle().
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(colorPrimary).
			Padding(0, 1).
			Bold(true)

	frameStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	metricLabelStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Width(22)

	metricValueStyle = lipgloss.NewStyle().
				Bold(true)

	profitStyle = lipgloss.NewStyle().
			Foreground(colorGood).
			Bold(true)

	lossStyle = lipgloss.NewStyle().
			Foreground(colorBad).
			Bold(true)

	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Underline(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorBad)
)
