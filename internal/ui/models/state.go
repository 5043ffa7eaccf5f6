package models

import (
	"github.com/Cyclone1070/grepbridge/internal/client"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// Focus identifies the input that receives key presses.
type Focus int

const (
	FocusPattern Focus = iota
	FocusPath
)

// Status phases shown in the status bar.
const (
	PhaseReady     = "ready"
	PhaseSearching = "searching"
	PhaseDone      = "done"
	PhaseError     = "error"
)

// State holds everything the views render.
type State struct {
	PatternInput textinput.Model
	PathInput    textinput.Model
	Focus        Focus

	Viewport viewport.Model
	Spinner  spinner.Model

	// Results of the current or last search.
	Results   []client.Result
	Truncated bool
	Cancelled bool

	// Pattern and Path of the current or last search.
	Pattern string
	Path    string

	StatusPhase   string
	StatusMessage string

	ShowHelp   bool
	ShowReport bool

	Width  int
	Height int
}

// FileCount returns the number of distinct files among the results. A
// single-file search counts as one file.
func (s State) FileCount() int {
	if len(s.Results) == 0 {
		return 0
	}
	seen := make(map[string]struct{})
	for _, r := range s.Results {
		seen[r.FileName] = struct{}{}
	}
	return len(seen)
}
