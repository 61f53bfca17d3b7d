package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText     = lipgloss.Color("#cdd6f4")
	colorSubtext  = lipgloss.Color("#a6adc8")
	colorSurface  = lipgloss.Color("#45475a")
	colorLavender = lipgloss.Color("#b4befe")
	colorSapphire = lipgloss.Color("#74c7ec")
	colorPeach    = lipgloss.Color("#fab387")

	headerStyle  = lipgloss.NewStyle().Foreground(colorSapphire).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorSubtext)
	buttonStyle  = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface).Padding(0, 1)
	titleStyle   = lipgloss.NewStyle().Foreground(colorPeach).Bold(true)
	contentStyle = lipgloss.NewStyle().Foreground(colorText)
	summaryStyle = lipgloss.NewStyle().Foreground(colorLavender)
	resultStyle  = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorLavender).
			Padding(1, 2)
)
