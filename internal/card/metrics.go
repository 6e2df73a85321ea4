package card

import (
	"time"

	"cardpanel/internal/geom"
)

// SpringParams configures the animated transition between states.
type SpringParams struct {
	Damping         float64       // damping ratio, < 1 overshoots
	InitialVelocity float64       // in multiples of the travel distance per second
	Duration        time.Duration // the transition completes after this long
	FPS             int
}

// Metrics holds every layout constant. Units are abstract; the terminal
// rendition treats one unit as one cell.
type Metrics struct {
	SideMargin      float64 // left and right inset in all states
	HeightRatio     float64 // panel height as a fraction of the bounding box
	MinimizedReveal float64 // how much of a minimized panel stays visible
	StackRatio      float64 // stack origin as a fraction of the bounding box
	ExpandedRatio   float64 // expanded origin as a fraction of the bounding box
	Buffer          float64 // release threshold tolerance
	Spring          SpringParams
	Shadow          Shadow
}

// DefaultMetrics returns the canonical constants.
func DefaultMetrics() Metrics {
	return Metrics{
		SideMargin:      10,
		HeightRatio:     0.9,
		MinimizedReveal: 110,
		StackRatio:      0.4,
		ExpandedRatio:   0.1,
		Buffer:          25,
		Spring: SpringParams{
			Damping:         0.9,
			InitialVelocity: 0.9,
			Duration:        450 * time.Millisecond,
			FPS:             60,
		},
		Shadow: Shadow{Opacity: 0.25, Radius: 5},
	}
}

// RectFor returns the canonical rectangle of state s inside a bounding box.
// The result is relative to the bounding box origin and is recomputed on
// every call so a resize is never served a stale rectangle.
func (m Metrics) RectFor(bounds geom.Rect, s State) geom.Rect {
	r := geom.Rect{
		X: m.SideMargin,
		W: bounds.W - 2*m.SideMargin,
		H: m.HeightRatio * bounds.H,
	}
	switch s {
	case Minimized:
		r.Y = bounds.H - m.MinimizedReveal
	case Stack:
		r.Y = m.StackRatio * bounds.H
	case Expanded:
		r.Y = m.ExpandedRatio * bounds.H
	}
	return r
}
