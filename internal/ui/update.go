package ui

import (
	"sync/atomic"

	"github.com/Cyclone1070/grepbridge/internal/client"
	"github.com/Cyclone1070/grepbridge/internal/config"
	"github.com/Cyclone1070/grepbridge/internal/ui/models"
	"github.com/Cyclone1070/grepbridge/internal/ui/services"
	"github.com/Cyclone1070/grepbridge/internal/ui/views"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// resultBatchSize caps how many results one message carries.
const resultBatchSize = 256

// BubbleTeaModel implements tea.Model
type BubbleTeaModel struct {
	state models.State

	// Dependencies
	searcher Searcher
	renderer services.MarkdownRenderer

	maxResults int
	autoStart  bool

	// run is the search in flight, nil when idle.
	run *searchRun
	// runID increases with every search so stale messages are dropped.
	runID int
}

// SpinnerFactory creates a new spinner
type SpinnerFactory func() spinner.Model

// searchRun connects one background search to the model.
type searchRun struct {
	id        int
	results   chan client.Result
	done      chan error
	cancel    atomic.Bool
	truncated atomic.Bool
}

// newBubbleTeaModel creates a new Bubble Tea model
func newBubbleTeaModel(
	cfg *config.UIConfig,
	searcher Searcher,
	renderer services.MarkdownRenderer,
	spinnerFactory SpinnerFactory,
	opts Options,
) BubbleTeaModel {
	pattern := textinput.New()
	pattern.Placeholder = "Search text"
	pattern.Prompt = "Pattern: "
	pattern.SetValue(opts.Pattern)
	pattern.Focus()

	path := textinput.New()
	path.Placeholder = "File or directory"
	path.Prompt = "Path: "
	path.SetValue(opts.Path)

	return BubbleTeaModel{
		state: models.State{
			PatternInput: pattern,
			PathInput:    path,
			Focus:        models.FocusPattern,
			Viewport:     viewport.New(80, 20),
			Spinner:      spinnerFactory(),
			StatusPhase:  models.PhaseReady,
		},
		searcher:   searcher,
		renderer:   renderer,
		maxResults: cfg.MaxResults,
		autoStart:  opts.Path != "" && opts.Pattern != "",
	}
}

// Internal messages
type resultsMsg struct {
	id      int
	results []client.Result
}

type searchDoneMsg struct {
	id        int
	err       error
	truncated bool
	cancelled bool
}

type startSearchMsg struct{}

// Init initializes the model
func (m BubbleTeaModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.state.Spinner.Tick}
	if m.autoStart {
		cmds = append(cmds, func() tea.Msg { return startSearchMsg{} })
	}
	return tea.Batch(cmds...)
}

// View renders the UI
func (m BubbleTeaModel) View() string {
	return views.RenderRoot(m.state)
}

// Update handles messages
func (m BubbleTeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.state.Viewport.Width = msg.Width
		m.state.Viewport.Height = max(msg.Height-5, 1) // Reserve space for inputs and status
		m.updateViewport()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		return m, cmd

	case startSearchMsg:
		return m.startSearch()

	case resultsMsg:
		if m.run == nil || msg.id != m.run.id {
			return m, nil
		}
		m.state.Results = append(m.state.Results, msg.results...)
		m.updateViewport()
		return m, listenForResults(m.run)

	case searchDoneMsg:
		if m.run == nil || msg.id != m.run.id {
			return m, nil
		}
		m.run = nil
		m.state.Truncated = msg.truncated
		m.state.Cancelled = msg.cancelled
		if msg.err != nil {
			m.state.StatusPhase = models.PhaseError
			m.state.StatusMessage = msg.err.Error()
		} else {
			m.state.StatusPhase = models.PhaseDone
			m.state.StatusMessage = ""
		}
		m.updateViewport()
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

// handleKeyPress handles keyboard input
func (m BubbleTeaModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state.ShowHelp {
		switch msg.String() {
		case "esc", "f1":
			m.state.ShowHelp = false
		case "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		m.cancelSearch()
		return m, tea.Quit

	case "f1":
		m.state.ShowHelp = true
		return m, nil

	case "esc":
		if m.run != nil {
			m.cancelSearch()
			return m, nil
		}
		if m.state.ShowReport {
			m.state.ShowReport = false
			m.updateViewport()
		}
		return m, nil

	case "tab", "shift+tab":
		m.toggleFocus()
		return m, nil

	case "ctrl+r":
		if m.run == nil && len(m.state.Results) > 0 {
			m.state.ShowReport = !m.state.ShowReport
			m.updateViewport()
		}
		return m, nil

	case "enter":
		return m.startSearch()

	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		m.state.Viewport, cmd = m.state.Viewport.Update(msg)
		return m, cmd
	}

	return m.updateFocusedInput(msg)
}

func (m BubbleTeaModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.state.Focus == models.FocusPattern {
		m.state.PatternInput, cmd = m.state.PatternInput.Update(msg)
	} else {
		m.state.PathInput, cmd = m.state.PathInput.Update(msg)
	}
	return m, cmd
}

func (m *BubbleTeaModel) toggleFocus() {
	if m.state.Focus == models.FocusPattern {
		m.state.Focus = models.FocusPath
		m.state.PatternInput.Blur()
		m.state.PathInput.Focus()
	} else {
		m.state.Focus = models.FocusPattern
		m.state.PathInput.Blur()
		m.state.PatternInput.Focus()
	}
}

// startSearch launches a background search for the current inputs.
func (m BubbleTeaModel) startSearch() (tea.Model, tea.Cmd) {
	if m.run != nil {
		return m, nil
	}

	pattern := m.state.PatternInput.Value()
	path := m.state.PathInput.Value()
	if pattern == "" || path == "" {
		m.state.StatusPhase = models.PhaseReady
		m.state.StatusMessage = "Both a pattern and a path are required"
		return m, nil
	}

	m.runID++
	run := &searchRun{
		id:      m.runID,
		results: make(chan client.Result, resultBatchSize),
		done:    make(chan error, 1),
	}
	m.run = run

	m.state.Pattern = pattern
	m.state.Path = path
	m.state.Results = nil
	m.state.Truncated = false
	m.state.Cancelled = false
	m.state.ShowReport = false
	m.state.StatusPhase = models.PhaseSearching
	m.state.StatusMessage = ""
	m.updateViewport()

	go runSearch(m.searcher, run, path, pattern, m.maxResults)

	return m, tea.Batch(listenForResults(run), m.state.Spinner.Tick)
}

// runSearch streams results into run until the search ends, is cancelled or
// reaches maxResults.
func runSearch(searcher Searcher, run *searchRun, path, pattern string, maxResults int) {
	count := 0
	err := searcher.Search(path, pattern, func(r client.Result) error {
		if run.cancel.Load() {
			return client.ErrStop
		}
		if maxResults > 0 && count >= maxResults {
			run.truncated.Store(true)
			return client.ErrStop
		}
		count++
		run.results <- r
		return nil
	})
	run.done <- err
	close(run.results)
}

func (m *BubbleTeaModel) cancelSearch() {
	if m.run != nil {
		m.run.cancel.Store(true)
	}
}

// updateViewport refreshes the viewport content
func (m *BubbleTeaModel) updateViewport() {
	if m.state.ShowReport {
		m.state.Viewport.SetContent(views.FormatReport(m.state, m.renderer))
		m.state.Viewport.GotoTop()
		return
	}
	m.state.Viewport.SetContent(views.FormatResults(m.state.Results, m.state.Width-2))
}

// listenForResults waits for the next batch of results, or for the end of the search.
func listenForResults(run *searchRun) tea.Cmd {
	return func() tea.Msg {
		first, ok := <-run.results
		if !ok {
			return searchDoneMsg{
				id:        run.id,
				err:       <-run.done,
				truncated: run.truncated.Load(),
				cancelled: run.cancel.Load(),
			}
		}

		batch := []client.Result{first}
		for len(batch) < resultBatchSize {
			select {
			case r, ok := <-run.results:
				if !ok {
					return resultsMsg{id: run.id, results: batch}
				}
				batch = append(batch, r)
			default:
				return resultsMsg{id: run.id, results: batch}
			}
		}
		return resultsMsg{id: run.id, results: batch}
	}
}
