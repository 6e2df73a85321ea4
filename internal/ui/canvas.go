package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Canvas is a fixed-size grid of lines that blocks are painted onto, later
// blocks over earlier ones. Anything outside the grid is clipped, so a
// minimized card hanging off the bottom renders only its visible part.
type Canvas struct {
	width  int
	height int
	lines  []string
}

// NewCanvas returns a blank width x height canvas.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	blank := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = blank
	}
	return &Canvas{width: width, height: height, lines: lines}
}

// Place paints block with its top-left corner at (x, y). Negative
// coordinates are allowed.
func (c *Canvas) Place(x, y int, block string) {
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= c.height {
			continue
		}
		col := x
		if col < 0 {
			line = ansi.TruncateLeft(line, -col, "")
			col = 0
		}
		if col >= c.width {
			continue
		}
		line = ansi.Truncate(line, c.width-col, "")
		w := ansi.StringWidth(line)
		if w == 0 {
			continue
		}
		bg := c.lines[row]
		left := ansi.Truncate(bg, col, "")
		if lw := ansi.StringWidth(left); lw < col {
			left += strings.Repeat(" ", col-lw)
		}
		right := ansi.TruncateLeft(bg, col+w, "")
		c.lines[row] = left + line + right
	}
}

// String returns the canvas as newline-separated rows.
func (c *Canvas) String() string {
	return strings.Join(c.lines, "\n")
}
