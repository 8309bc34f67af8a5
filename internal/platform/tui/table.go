package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/auto-game/internal/core"
)

// entityTable builds a read-only table of entities.
func entityTable(entities []core.Entity, height int) table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 16},
		{Title: "X", Width: 12},
		{Title: "Y", Width: 12},
	}

	rows := make([]table.Row, len(entities))
	for i, e := range entities {
		rows[i] = table.Row{
			e.ID,
			strconv.FormatFloat(e.X, 'f', 2, 64),
			strconv.FormatFloat(e.Y, 'f', 2, 64),
		}
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Nothing is selectable; render every row the same
	styles.Selected = styles.Cell

	return table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
		table.WithFocused(false),
		table.WithStyles(styles),
	)
}
