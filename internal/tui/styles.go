package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	statusStyles = map[string]lipgloss.Style{
		"pending":  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		"accepted": lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		"rejected": lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
	unconfirmedStyle = lipgloss.NewStyle().Italic(true)
)
