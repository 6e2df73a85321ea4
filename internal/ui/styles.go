package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for borders, keys
	ColorDanger    = "196" // Red - for errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
)

// Styles contains shared style definitions.
var Styles = struct {
	Title  lipgloss.Style // Bold accent color - screen title
	Status lipgloss.Style // Status line (accent color)
	Error  lipgloss.Style // Status line after a failure
	Hint   lipgloss.Style // Help/hint text (muted color)
	Item   lipgloss.Style // Feed entries
	Shelf  lipgloss.Style // Label above a parked snapshot
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Item: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Shelf: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
}
