// Package geom holds the float geometry shared by the card and its composer.
// One unit is one terminal cell when rendered.
package geom

import "math"

// Point is a 2D vector, used for positions and velocities.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle with its origin at the top-left.
type Rect struct {
	X, Y float64
	W, H float64
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// WithY returns a copy of r with its origin moved to y.
func (r Rect) WithY(y float64) Rect {
	r.Y = y
	return r
}

// WithH returns a copy of r with height h.
func (r Rect) WithH(h float64) Rect {
	r.H = h
	return r
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Lerp interpolates every component between a and b. t is not clamped so
// that underdamped springs can overshoot.
func Lerp(a, b Rect, t float64) Rect {
	return Rect{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		W: a.W + (b.W-a.W)*t,
		H: a.H + (b.H-a.H)*t,
	}
}

// Round snaps the rectangle to whole cells.
func (r Rect) Round() (x, y, w, h int) {
	return int(math.Round(r.X)), int(math.Round(r.Y)), int(math.Round(r.W)), int(math.Round(r.H))
}
