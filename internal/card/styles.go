package card

import "github.com/charmbracelet/lipgloss"

// Theme colors
const (
	ColorBorder = "205"
	ColorMuted  = "241"
	ColorShadow = "236"
)

// ChromeStyle is the default frame drawn around the child.
var ChromeStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color(ColorBorder))

// Placeholder renders in place of content that cannot be drawn.
var Placeholder = lipgloss.NewStyle().
	Foreground(lipgloss.Color(ColorMuted)).
	Italic(true)

// ShadowStyle colors the drop shadow of snapshots.
var ShadowStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color(ColorShadow))
