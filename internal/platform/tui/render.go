package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/auto-game/internal/ui"
)

// Layout constants
const (
	defaultTableRows = 10
	chromeRows       = 8 + minimapRows + 4 // header, stats, minimap, table header/border, help
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	emptyStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))
)

// statusButton returns the badge shown next to the title.
func statusButton(running bool) ui.Component {
	if running {
		return ui.Button{Label: "Running", ClassName: ui.ClassPrimary}
	}
	return ui.Button{Label: "Paused", ClassName: ui.ClassMuted}
}

// renderView draws the status line, loop counters and the entity table.
func renderView(m Model) string {
	loop := m.app.Loop()
	cfg := loop.Config()
	stats := loop.Stats()

	var sb strings.Builder

	sb.WriteString(titleStyle.Render("auto-game"))
	sb.WriteString("  ")
	sb.WriteString(statusButton(loop.Running()).Render())
	sb.WriteString("\n\n")

	sb.WriteString(statsStyle.Render(fmt.Sprintf(
		"fps %.0f  viewport %dx%d  ticks %d  updates %d",
		cfg.FramesPerSecond, cfg.Width, cfg.Height, stats.Ticks, stats.Updates,
	)))
	sb.WriteString("\n\n")

	if m.err != nil {
		sb.WriteString(errStyle.Render("error: " + m.err.Error()))
		sb.WriteString("\n\n")
	}

	entities := m.app.Entities()
	sb.WriteString(renderMinimap(entities, cfg))
	sb.WriteString("\n\n")

	if len(entities) == 0 {
		sb.WriteString(emptyStyle.Render("No entities. Add some with 'autogame state import'."))
	} else {
		sb.WriteString(entityTable(entities, m.tableRows()).View())
	}

	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))

	return sb.String()
}

// tableRows returns how many entity rows fit on screen.
func (m Model) tableRows() int {
	if m.height <= 0 {
		return defaultTableRows
	}
	return max(m.height-chromeRows, 1)
}
