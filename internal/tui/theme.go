package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorMuted    lipgloss.Color = "#a6adc8"
	colorBorder   lipgloss.Color = "#585b70"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorError    lipgloss.Color = "#f38ba8"
	colorTabOff   lipgloss.Color = "#7f849c"
	colorBadge    lipgloss.Color = "#fab387"
	colorMantle   lipgloss.Color = "#181825"
	colorSurface0 lipgloss.Color = "#313244"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle = lipgloss.NewStyle().Foreground(colorError)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Background(colorSurface0).
			Foreground(colorAccent).
			Bold(true).
			Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().
				Background(colorMantle).
				Foreground(colorTabOff).
				Padding(0, 1)
	badgeStyle = lipgloss.NewStyle().Foreground(colorBadge).Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().Background(colorMantle)

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorMantle).
			Background(colorAccent).
			Bold(true).
			Padding(0, 2)
	buttonOffStyle    = buttonStyle.Background(colorBorder)
	cursorStyle       = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	tileStyle         = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(colorBorder).Width(12).Align(lipgloss.Center)
	selectedTileStyle = tileStyle.BorderForeground(colorAccent).Foreground(colorAccent).Bold(true)
)
