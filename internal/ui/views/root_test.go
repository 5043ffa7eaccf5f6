package views

import (
	"strings"
	"testing"

	"github.com/Cyclone1070/grepbridge/internal/client"
	"github.com/Cyclone1070/grepbridge/internal/config"
	"github.com/Cyclone1070/grepbridge/internal/ui/models"
	"github.com/stretchr/testify/assert"
)

func TestRenderRoot_NormalState(t *testing.T) {
	results := []client.Result{{FileName: "dir/a.txt", LineNumber: 3, Text: "a needle\n"}}

	vp := createTestViewport()
	vp.SetContent(FormatResults(results, 76))

	state := models.State{
		Width:        80,
		Height:       24,
		Results:      results,
		PatternInput: createTestTextInput("needle"),
		PathInput:    createTestTextInput("dir"),
		StatusPhase:  models.PhaseReady,
		Viewport:     vp,
	}

	result := RenderRoot(state)

	assert.Contains(t, result, "needle")
	assert.Contains(t, result, "dir/a.txt")
	assert.Contains(t, result, "3:")
	assert.Contains(t, result, "Ready")
}

func TestRenderRoot_WithHelp(t *testing.T) {
	state := models.State{
		Width:    80,
		Height:   24,
		ShowHelp: true,
		Viewport: createTestViewport(),
	}

	result := RenderRoot(state)

	assert.Contains(t, result, "Keys")
	assert.Contains(t, result, "Toggle markdown report")
	assert.NotContains(t, result, "Ready")
}

func TestRenderResults_EmptyStates(t *testing.T) {
	assert.Contains(t, RenderResults(models.State{StatusPhase: models.PhaseReady}), "press Enter")
	assert.Contains(t, RenderResults(models.State{StatusPhase: models.PhaseDone}), "No matches.")
	assert.Empty(t, RenderResults(models.State{StatusPhase: models.PhaseSearching}))
}

func TestFormatResults_GroupsByFile(t *testing.T) {
	results := []client.Result{
		{FileName: "a.txt", LineNumber: 1, Text: "one\n"},
		{FileName: "a.txt", LineNumber: 5, Text: "five\n"},
		{FileName: "b.txt", LineNumber: 2, Text: "two\r\n"},
	}

	out := FormatResults(results, 80)

	assert.Equal(t, 1, strings.Count(out, "a.txt"))
	assert.Equal(t, 1, strings.Count(out, "b.txt"))
	assert.Contains(t, out, "five")
	assert.NotContains(t, out, "\r")
}

func TestFormatResults_SingleFileHasNoHeading(t *testing.T) {
	out := FormatResults([]client.Result{{LineNumber: -1, Text: "plain\n"}}, 80)

	assert.Equal(t, "plain", out)
}

func TestFormatResults_TruncatesLongLines(t *testing.T) {
	out := FormatResults([]client.Result{{LineNumber: -1, Text: strings.Repeat("x", 50)}}, 10)

	assert.Equal(t, strings.Repeat("x", 10), out)
}

func TestFormatReport_UsesRenderer(t *testing.T) {
	var gotWidth int
	renderer := &MockMarkdownRenderer{RenderFunc: func(s string, w int) (string, error) {
		gotWidth = w
		return "RENDERED", nil
	}}
	state := models.State{Width: 100, Pattern: "x", Path: "."}

	assert.Equal(t, "RENDERED", FormatReport(state, renderer))
	assert.Equal(t, 96, gotWidth)
}

func TestApplyColors(t *testing.T) {
	t.Cleanup(func() { ApplyColors(&config.DefaultConfig().UI) })

	ApplyColors(&config.UIConfig{ColorPrimary: "99", ColorError: "160"})

	assert.Equal(t, "99", string(ColorPrimary))
	assert.Equal(t, "160", string(ColorError))
	assert.Equal(t, "241", string(ColorDim))
}
