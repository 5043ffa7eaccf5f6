package services

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders markdown for a terminal of the given width.
type MarkdownRenderer interface {
	Render(content string, width int) (string, error)
}

// GlamourRenderer renders markdown with glamour.
type GlamourRenderer struct {
	style string
}

// NewGlamourRenderer creates a renderer that picks a light or dark style from
// the terminal background.
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{}
}

// NewGlamourRendererWithStyle creates a renderer with a fixed glamour style
// such as "dark", "light" or "notty".
func NewGlamourRendererWithStyle(style string) *GlamourRenderer {
	return &GlamourRenderer{style: style}
}

func (g *GlamourRenderer) Render(content string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if g.style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(g.style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return r.Render(content)
}

// RenderMarkdown renders content, clamping width to a usable minimum. Trailing
// blank lines glamour appends are trimmed.
func RenderMarkdown(content string, width int, renderer MarkdownRenderer) (string, error) {
	if width < 20 {
		width = 20
	}
	out, err := renderer.Render(content, width)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}
