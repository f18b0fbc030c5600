// Package ui renders the one-line status bar shown under the grid.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Status holds the fields shown on the status bar.
type Status struct {
	Pattern    string
	Generation int
	Population int
	Paused     bool
	Mode       string
}

var barStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#1A1A1A")).
	Background(lipgloss.Color("#FFD539"))

// StatusBar renders the status line padded to the given width.
func StatusBar(s Status, width int) string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	line := fmt.Sprintf(" %s · gen %d · pop %d · %s · paint %s ",
		s.Pattern, s.Generation, s.Population, state, s.Mode)
	return barStyle.Width(width).Render(line)
}
