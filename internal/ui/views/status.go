package views

import (
	"fmt"

	"github.com/Cyclone1070/grepbridge/internal/ui/models"
)

// RenderStatus renders the status bar
func RenderStatus(s models.State) string {
	switch s.StatusPhase {
	case models.PhaseSearching:
		return StatusSearchingStyle.Render(fmt.Sprintf("%s Searching... %d matches", s.Spinner.View(), len(s.Results)))

	case models.PhaseDone:
		status := fmt.Sprintf("✔ Done: %d matches in %d file(s)", len(s.Results), s.FileCount())
		if s.Truncated {
			status += " (truncated)"
		}
		if s.Cancelled {
			status += " (cancelled)"
		}
		return StatusDoneStyle.Render(status)

	case models.PhaseError:
		return StatusErrorStyle.Render("✘ " + s.StatusMessage)

	default:
		if s.StatusMessage != "" {
			return StatusDefaultStyle.Render(s.StatusMessage)
		}
		return StatusDefaultStyle.Render("Ready")
	}
}
