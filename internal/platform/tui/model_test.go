package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/auto-game/internal/app"
	"github.com/vovakirdan/auto-game/internal/config"
	"github.com/vovakirdan/auto-game/internal/core"
	"github.com/vovakirdan/auto-game/internal/engine"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func newTestModel(t *testing.T) (Model, *app.App, *testClock) {
	t.Helper()
	clock := &testClock{now: time.Unix(0, 0)}
	q := engine.NewFrameQueue()

	a, err := app.New(config.DefaultConfig(), nil, q, nil, engine.WithClock(clock))
	require.NoError(t, err)
	require.NoError(t, a.Start())

	return NewModel(a, q, 60), a, clock
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModelFrameDrivesLoop(t *testing.T) {
	m, a, clock := newTestModel(t)
	a.Loop().Store().Add(core.Entity{ID: "a"})

	clock.now = clock.now.Add(50 * time.Millisecond)
	next, cmd := m.Update(FrameMsg(clock.now))
	assert.NotNil(t, cmd, "frame clock keeps ticking")

	assert.Equal(t, uint64(1), a.Loop().Stats().Updates)
	e, _ := a.Loop().Store().Get("a")
	assert.InDelta(t, 0.5, e.X, 1e-9)

	view := next.(Model).View()
	assert.Contains(t, view, "Running")
	assert.Contains(t, view, "0.50")
}

func TestModelPauseToggle(t *testing.T) {
	m, a, clock := newTestModel(t)
	a.Loop().Store().Add(core.Entity{ID: "a"})

	next, _ := m.Update(runeKey('p'))
	m = next.(Model)
	assert.False(t, a.Loop().Running())
	assert.Contains(t, m.View(), "Paused")

	// Frames while paused do not move anything
	clock.now = clock.now.Add(time.Second)
	next, _ = m.Update(FrameMsg(clock.now))
	m = next.(Model)
	e, _ := a.Loop().Store().Get("a")
	assert.Equal(t, 0.0, e.X)

	next, _ = m.Update(runeKey('p'))
	m = next.(Model)
	assert.True(t, a.Loop().Running())
	assert.NoError(t, m.err)
}

func TestModelQuit(t *testing.T) {
	m, _, _ := newTestModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.(Model).View())
}

func TestModelHelpToggle(t *testing.T) {
	m, _, _ := newTestModel(t)
	assert.False(t, m.help.ShowAll)

	next, _ := m.Update(runeKey('?'))
	assert.True(t, next.(Model).help.ShowAll)
}

func TestModelEmptyView(t *testing.T) {
	m, _, _ := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Contains(t, next.(Model).View(), "No entities")
}
