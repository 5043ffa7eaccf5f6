package views

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/grepbridge/internal/client"
	"github.com/Cyclone1070/grepbridge/internal/ui/models"
	"github.com/Cyclone1070/grepbridge/internal/ui/services"
)

// RenderResults renders the results viewport.
func RenderResults(s models.State) string {
	if len(s.Results) == 0 && !s.ShowReport {
		switch s.StatusPhase {
		case models.PhaseDone:
			return LineNumberStyle.Render("No matches.")
		case models.PhaseSearching:
			return ""
		default:
			return LineNumberStyle.Render("Type a pattern and a path, then press Enter.")
		}
	}
	return s.Viewport.View()
}

// FormatResults formats results for the viewport, with a heading whenever
// the file changes.
func FormatResults(results []client.Result, width int) string {
	var lines []string
	current := ""
	for i, r := range results {
		if r.FileName != "" && (i == 0 || r.FileName != current) {
			if i > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, FileNameStyle.Render(r.FileName))
			current = r.FileName
		}
		lines = append(lines, formatLine(r, width))
	}
	return strings.Join(lines, "\n")
}

func formatLine(r client.Result, width int) string {
	text := strings.TrimRight(r.Text, "\r\n")
	if width > 0 && len(text) > width {
		text = text[:width]
	}
	if r.LineNumber < 0 {
		return text
	}
	return LineNumberStyle.Render(fmt.Sprintf("%d:", r.LineNumber)) + " " + text
}

// FormatReport renders the markdown report of the current search for the
// viewport, falling back to the raw markdown when rendering fails.
func FormatReport(s models.State, renderer services.MarkdownRenderer) string {
	report := services.Report{
		Pattern:   s.Pattern,
		Path:      s.Path,
		Results:   s.Results,
		Truncated: s.Truncated,
	}
	md := report.Markdown()
	out, err := services.RenderMarkdown(md, s.Width-4, renderer)
	if err != nil {
		return md
	}
	return out
}
