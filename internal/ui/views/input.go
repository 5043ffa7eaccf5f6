package views

import (
	"github.com/Cyclone1070/grepbridge/internal/ui/models"
	"github.com/charmbracelet/lipgloss"
)

// RenderInput renders the pattern and path inputs side by side.
func RenderInput(s models.State) string {
	pattern := InputStyle
	path := InputStyle
	if s.Focus == models.FocusPattern {
		pattern = FocusedInputStyle
	} else {
		path = FocusedInputStyle
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		pattern.Render(s.PatternInput.View()),
		path.Render(s.PathInput.View()),
	)
}
