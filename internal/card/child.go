package card

import (
	"cardpanel/internal/geom"

	tea "github.com/charmbracelet/bubbletea"
)

// ScrollSurface is the scrollable region of a child. The offset is allowed
// to go negative while a drag pulls past the top of the content.
type ScrollSurface interface {
	ContentOffset() float64
	SetContentOffset(y float64)
	IsDragging() bool
}

// DragDelegate receives gesture notifications from a ScrollSurface.
// Panel implements it; the child holds a non-owning reference and calls it,
// never the other way around.
type DragDelegate interface {
	OnDragBegin(s ScrollSurface)
	OnDragMove(s ScrollSurface)
	// OnDragWillEnd fires once per release, before momentum is applied.
	// velocity is in offset units per second. The delegate may rewrite
	// target to change where momentum scrolling ends.
	OnDragWillEnd(s ScrollSurface, velocity geom.Point, target *geom.Point)
}

// Child is the hosted content. The panel references it for layout and
// rendering only and does not own what it shows.
type Child interface {
	Surface() ScrollSurface
	SetDragDelegate(d DragDelegate)
	// SetSnapshotRequester registers the callback the child uses to ask for
	// a fresh snapshot.
	SetSnapshotRequester(fn func())
	// Resize tells the child the size of its content region in cells.
	Resize(width, height int)
	Update(msg tea.Msg) tea.Cmd
	// Render draws the content into a width x height region. It fails when
	// the child has nothing renderable.
	Render(width, height int) (string, error)
}
