package terminal

import "github.com/charmbracelet/lipgloss"

// Palette, matching the desktop window.
var (
	ColorBackground = lipgloss.Color("#2C3E50")
	ColorSurface    = lipgloss.Color("#34495E")
	ColorText       = lipgloss.Color("#ECF0F1")
	ColorMuted      = lipgloss.Color("#BDC3C7")
	ColorAccent     = lipgloss.Color("#3498DB")
	ColorUV         = lipgloss.Color("#F39C12")
	ColorGood       = lipgloss.Color("#2ECC71")
	ColorAlert      = lipgloss.Color("#E74C3C")
)

var (
	headlineStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	temperatureStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	conditionStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	uvStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorUV)

	commuteStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorGood)

	sectionStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorAccent)

	cardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorAccent).
		Padding(0, 1).
		Align(lipgloss.Center)

	suggestionStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(ColorGood)

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorSurface).
		BorderBackground(ColorBackground).
		Background(ColorBackground).
		Padding(1, 2)

	errorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorAlert)
)
