package card

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// fakeChild is a Child whose surface is driven directly by tests.
type fakeChild struct {
	offset    float64
	dragging  bool
	delegate  DragDelegate
	requester func()
	width     int
	height    int
	renderErr error
	updates   []tea.Msg
}

func (c *fakeChild) ContentOffset() float64 { return c.offset }
func (c *fakeChild) SetContentOffset(y float64) { c.offset = y }
func (c *fakeChild) IsDragging() bool { return c.dragging }
func (c *fakeChild) Surface() ScrollSurface { return c }
func (c *fakeChild) SetDragDelegate(d DragDelegate) { c.delegate = d }
func (c *fakeChild) SetSnapshotRequester(fn func()) { c.requester = fn }
func (c *fakeChild) Resize(width, height int) { c.width, c.height = width, height }

func (c *fakeChild) Update(msg tea.Msg) tea.Cmd {
	c.updates = append(c.updates, msg)
	return nil
}

func (c *fakeChild) Render(width, height int) (string, error) {
	if c.renderErr != nil {
		return "", c.renderErr
	}
	lines := make([]string, 0, height)
	for range height {
		lines = append(lines, strings.Repeat("x", width))
	}
	return strings.Join(lines, "\n"), nil
}

// fakeHost records what it displays.
type fakeHost struct {
	shown []*Snapshot
}

func (h *fakeHost) AddSnapshot(s *Snapshot) { h.shown = append(h.shown, s) }

func (h *fakeHost) RemoveSnapshot(s *Snapshot) {
	for i, x := range h.shown {
		if x == s {
			h.shown = append(h.shown[:i], h.shown[i+1:]...)
			return
		}
	}
}
