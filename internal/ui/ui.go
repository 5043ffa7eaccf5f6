package ui

import (
	"github.com/Cyclone1070/grepbridge/internal/config"
	"github.com/Cyclone1070/grepbridge/internal/ui/services"
	"github.com/Cyclone1070/grepbridge/internal/ui/views"
	tea "github.com/charmbracelet/bubbletea"
)

// UI is the interactive search front end built on Bubble Tea.
type UI struct {
	program *tea.Program
}

// Options are the initial values of the inputs. When both are set the
// search starts immediately.
type Options struct {
	Path    string
	Pattern string
}

// NewUI creates a new Bubble Tea UI
func NewUI(
	cfg *config.UIConfig,
	searcher Searcher,
	renderer services.MarkdownRenderer,
	spinnerFactory SpinnerFactory,
	opts Options,
) *UI {
	if cfg == nil {
		panic("cfg is required")
	}
	if searcher == nil {
		panic("searcher is required")
	}
	views.ApplyColors(cfg)

	model := newBubbleTeaModel(cfg, searcher, renderer, spinnerFactory, opts)
	return &UI{program: tea.NewProgram(model, tea.WithAltScreen())}
}

// Start runs the UI until the user quits.
func (u *UI) Start() error {
	_, err := u.program.Run()
	return err
}
