package views

import (
	"github.com/Cyclone1070/grepbridge/internal/config"
	"github.com/charmbracelet/lipgloss"
)

var (
	ColorPrimary = lipgloss.Color("63")
	ColorDim     = lipgloss.Color("241")
	ColorError   = lipgloss.Color("196")
	ColorDone    = lipgloss.Color("42")

	InputStyle        lipgloss.Style
	FocusedInputStyle lipgloss.Style
	FileNameStyle     lipgloss.Style
	LineNumberStyle   lipgloss.Style
	HelpBoxStyle      lipgloss.Style

	StatusDefaultStyle   lipgloss.Style
	StatusSearchingStyle lipgloss.Style
	StatusDoneStyle      lipgloss.Style
	StatusErrorStyle     lipgloss.Style
)

func init() {
	buildStyles()
}

// ApplyColors replaces the palette with the configured colors.
func ApplyColors(cfg *config.UIConfig) {
	if cfg.ColorPrimary != "" {
		ColorPrimary = lipgloss.Color(cfg.ColorPrimary)
	}
	if cfg.ColorDim != "" {
		ColorDim = lipgloss.Color(cfg.ColorDim)
	}
	if cfg.ColorError != "" {
		ColorError = lipgloss.Color(cfg.ColorError)
	}
	buildStyles()
}

func buildStyles() {
	InputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(0, 1)
	FocusedInputStyle = InputStyle.BorderForeground(ColorPrimary)

	FileNameStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	LineNumberStyle = lipgloss.NewStyle().Foreground(ColorDim)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)

	StatusDefaultStyle = lipgloss.NewStyle().Foreground(ColorDim)
	StatusSearchingStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	StatusDoneStyle = lipgloss.NewStyle().Foreground(ColorDone)
	StatusErrorStyle = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
}
