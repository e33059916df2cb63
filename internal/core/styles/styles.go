// Package styles provides the lipgloss styles used by cadence's terminal output.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles is a set of styles bound to one renderer. Styles built from a
// renderer whose writer is not a terminal render as plain text.
type Styles struct {
	Greeting  lipgloss.Style
	CatchUp   lipgloss.Style
	Section   lipgloss.Style
	Task      lipgloss.Style
	Count     lipgloss.Style
	Remaining lipgloss.Style
	Empty     lipgloss.Style
}

// New builds the styles for r using the colors in p. Zero colors are left
// unset so the "plain" palette produces unstyled text.
func New(r *lipgloss.Renderer, p Palette) Styles {
	fg := func(s lipgloss.Style, c lipgloss.Color) lipgloss.Style {
		if c == "" {
			return s
		}
		return s.Foreground(c)
	}

	return Styles{
		Greeting:  fg(r.NewStyle().Bold(true), p.Foreground),
		CatchUp:   fg(r.NewStyle(), p.Warning),
		Section:   fg(r.NewStyle().Bold(true), p.Primary),
		Task:      fg(r.NewStyle(), p.Foreground),
		Count:     fg(r.NewStyle(), p.Secondary),
		Remaining: fg(r.NewStyle().Italic(true), p.Muted),
		Empty:     fg(r.NewStyle().Italic(true), p.Success),
	}
}
