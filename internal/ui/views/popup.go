package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var helpKeys = [][2]string{
	{"Enter", "Start search"},
	{"Tab", "Switch between pattern and path"},
	{"Esc", "Cancel search / close popup"},
	{"Ctrl+R", "Toggle markdown report"},
	{"↑/↓ PgUp/PgDn", "Scroll results"},
	{"F1", "Toggle this help"},
	{"Ctrl+C", "Quit"},
}

// RenderHelpPopup renders the key binding popup
func RenderHelpPopup() string {
	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Render("Keys"))
	lines = append(lines, "")

	for _, k := range helpKeys {
		key := lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Width(16).
			Render(k[0])
		lines = append(lines, key+k[1])
	}

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Faint(true).Render("Esc: Close"))

	return HelpBoxStyle.Render(strings.Join(lines, "\n"))
}
