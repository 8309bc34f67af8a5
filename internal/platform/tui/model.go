package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/auto-game/internal/app"
	"github.com/vovakirdan/auto-game/internal/engine"
)

// Model is the Bubble Tea model that hosts a running App.
// Every FrameMsg flushes the frame queue the App's loop schedules on, so all
// simulation work happens inside Update on Bubble Tea's event goroutine.
type Model struct {
	app         *app.App
	queue       *engine.FrameQueue
	refreshRate int
	keys        KeyMap
	help        help.Model
	width       int
	height      int
	err         error
	quitting    bool
}

// NewModel creates a model for a, whose loop must be scheduled on queue.
func NewModel(a *app.App, queue *engine.FrameQueue, refreshRate int) Model {
	if refreshRate <= 0 {
		refreshRate = 60
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		app:         a,
		queue:       queue,
		refreshRate: refreshRate,
		keys:        DefaultKeyMap(),
		help:        h,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.refreshRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		if m.app.Loop().Running() {
			m.app.Pause()
		} else {
			m.err = m.app.Start()
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleFrame runs the callbacks scheduled for this frame.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	m.queue.Flush()

	// Keep the frame clock going while paused so Start can resume
	return m, frameCmd(m.refreshRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return renderView(m)
}

// Run starts the App, runs the Bubble Tea program until the user quits and
// then stops the App, saving its state.
func Run(a *app.App, queue *engine.FrameQueue, refreshRate int, opts ...tea.ProgramOption) error {
	if err := a.Start(); err != nil {
		return err
	}

	model := NewModel(a, queue, refreshRate)
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(model, opts...)

	_, runErr := p.Run()

	// The program has exited, so nothing else touches the loop now
	if err := a.Stop(); err != nil {
		return err
	}
	return runErr
}
