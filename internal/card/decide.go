package card

import "cardpanel/internal/geom"

// Decide picks the state to settle into when a drag is released.
//
// y is the live panel origin at release, vy the content velocity: positive
// means the content offset was growing (finger moving up). Only the sign of
// vy matters. Branches are evaluated in order and the first match wins, so
// from Expanded with negative velocity a release with y <= stack.y+buffer
// lands in Stack and one with a larger y lands in Minimized.
func Decide(m Metrics, bounds geom.Rect, from State, y, vy float64) State {
	b := m.Buffer
	minimizedY := m.RectFor(bounds, Minimized).Y
	stackY := m.RectFor(bounds, Stack).Y
	expandedY := m.RectFor(bounds, Expanded).Y

	switch from {
	case Minimized:
		if y >= stackY-b && vy > 0 {
			return Stack
		} else if vy > 0 {
			return Expanded
		}
	case Stack:
		if y >= expandedY-b && vy > 0 {
			return Expanded
		} else if y <= minimizedY+b && vy < 0 {
			return Minimized
		}
	case Expanded:
		if y <= stackY+b && vy < 0 {
			return Stack
		} else if y >= stackY-b && vy < 0 {
			return Minimized
		}
	}
	return from
}
