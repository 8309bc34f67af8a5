// Package tui provides the Bubble Tea host for the simulation.
// It supplies the loop's "next frame" primitive, maps a few keys and draws
// the entity list.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per host frame. Handling it runs the callbacks the
// simulation scheduled for the next frame.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends a frame message after one
// refresh interval.
func frameCmd(refreshRate int) tea.Cmd {
	interval := time.Second / time.Duration(refreshRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
