// Package ui holds small lipgloss-rendered widgets used by the terminal host.
package ui

import "github.com/charmbracelet/lipgloss"

// Component is anything that renders itself to a terminal string.
type Component interface {
	Render() string
}

// Style class names understood by Button.
const (
	ClassPrimary = "primary"
	ClassMuted   = "muted"
	ClassDanger  = "danger"
)

var buttonBase = lipgloss.NewStyle().Padding(0, 1)

// buttonStyles maps class names to styles. Unknown classes use the base style.
var buttonStyles = map[string]lipgloss.Style{
	ClassPrimary: buttonBase.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10")),
	ClassMuted:   buttonBase.Foreground(lipgloss.Color("245")).Background(lipgloss.Color("236")),
	ClassDanger:  buttonBase.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("9")),
}

// Button is a labelled badge.
type Button struct {
	Label     string
	ClassName string
}

// Render draws the button.
func (b Button) Render() string {
	style, ok := buttonStyles[b.ClassName]
	if !ok {
		style = buttonBase
	}
	return style.Render(b.Label)
}

var _ Component = Button{}
