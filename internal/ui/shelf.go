package ui

import (
	"slices"

	"cardpanel/internal/card"
)

// Shelf displays parked snapshots: inert copies of the card shown while the
// live panel is elsewhere. Only the most recent one is drawn.
type Shelf struct {
	snapshots []*card.Snapshot
}

var _ card.SnapshotHost = (*Shelf)(nil)

// AddSnapshot implements card.SnapshotHost.
func (s *Shelf) AddSnapshot(snap *card.Snapshot) {
	if !slices.Contains(s.snapshots, snap) {
		s.snapshots = append(s.snapshots, snap)
	}
}

// RemoveSnapshot implements card.SnapshotHost.
func (s *Shelf) RemoveSnapshot(snap *card.Snapshot) {
	s.snapshots = slices.DeleteFunc(s.snapshots, func(x *card.Snapshot) bool { return x == snap })
}

// Len returns the number of parked snapshots.
func (s *Shelf) Len() int { return len(s.snapshots) }

// Top returns the most recently parked snapshot, or nil.
func (s *Shelf) Top() *card.Snapshot {
	if len(s.snapshots) == 0 {
		return nil
	}
	return s.snapshots[len(s.snapshots)-1]
}

// View renders the top snapshot under a label, or nothing.
func (s *Shelf) View() string {
	top := s.Top()
	if top == nil {
		return ""
	}
	label := Styles.Shelf.Render("parked " + top.State.String() + " · " + top.CapturedAt.Format("15:04:05"))
	return label + "\n" + top.Decorated()
}
