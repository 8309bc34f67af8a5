package tui

import (
	"strings"

	"github.com/vovakirdan/auto-game/internal/core"
)

// Minimap layout constants
const (
	minimapCols = 40
	minimapRows = 12
)

// grid is a 2D character buffer.
type grid struct {
	width  int
	height int
	cells  [][]rune
}

// newGrid creates a grid filled with spaces.
func newGrid(width, height int) *grid {
	g := &grid{width: width, height: height}
	g.cells = make([][]rune, height)
	for y := range g.cells {
		g.cells[y] = make([]rune, width)
		for x := range g.cells[y] {
			g.cells[y][x] = ' '
		}
	}
	return g
}

// set places a rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (g *grid) set(x, y int, r rune) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.cells[y][x] = r
}

// drawBox draws a box outline around the whole grid.
func (g *grid) drawBox() {
	right, bottom := g.width-1, g.height-1

	g.set(0, 0, '┌')
	g.set(right, 0, '┐')
	g.set(0, bottom, '└')
	g.set(right, bottom, '┘')

	for x := 1; x < right; x++ {
		g.set(x, 0, '─')
		g.set(x, bottom, '─')
	}
	for y := 1; y < bottom; y++ {
		g.set(0, y, '│')
		g.set(right, y, '│')
	}
}

// String joins the rows with newlines.
func (g *grid) String() string {
	var sb strings.Builder
	sb.Grow(g.width*g.height + g.height)

	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(string(g.cells[y]))
	}
	return sb.String()
}

// renderMinimap scales the logical viewport down to a boxed character grid
// and marks each entity with the first rune of its ID. Entities that have
// drifted outside the viewport are not drawn.
func renderMinimap(entities []core.Entity, viewport core.LoopConfig) string {
	g := newGrid(minimapCols+2, minimapRows+2)
	g.drawBox()

	for _, e := range entities {
		if e.X < 0 || e.Y < 0 {
			continue
		}
		col := int(e.X / float64(viewport.Width) * minimapCols)
		row := int(e.Y / float64(viewport.Height) * minimapRows)
		if col >= minimapCols || row >= minimapRows {
			continue
		}

		mark := '*'
		for _, r := range e.ID {
			mark = r
			break
		}
		g.set(col+1, row+1, mark)
	}

	return g.String()
}
