package ui

import (
	"fmt"
	"strings"
)

var feedTopics = []string{
	"Deploy finished on staging",
	"Review requested on the layout change",
	"Nightly build is green",
	"Cache hit ratio back above 90%",
	"New comment on the release notes",
	"Disk usage warning cleared",
	"Standup moved to 10:30",
	"Benchmark run attached",
}

// Feed returns n lines of sample content for the hosted surface.
func Feed(n int) string {
	lines := make([]string, 0, n+2)
	lines = append(lines, Styles.Title.Render("Activity"), "")
	for i := range n {
		topic := feedTopics[i%len(feedTopics)]
		lines = append(lines, Styles.Item.Render(fmt.Sprintf("%3d  %s", i+1, topic)))
	}
	return strings.Join(lines, "\n")
}
