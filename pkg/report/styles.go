package report

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f97316"))
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Width(28)
	passStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22c55e"))
	blockStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ef4444"))
	maskStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#eab308"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#5a5a70"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2a2a3a"))
)

func verdictStyle(intervened, blocked bool) lipgloss.Style {
	switch {
	case blocked:
		return blockStyle
	case intervened:
		return maskStyle
	default:
		return passStyle
	}
}
