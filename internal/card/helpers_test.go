package card

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

func visibleWidth(s string) int {
	return ansi.StringWidth(s)
}
