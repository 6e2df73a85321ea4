package card

import (
	"context"
	"math"

	"cardpanel/internal/geom"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var _ DragDelegate = (*Panel)(nil)

// OnDragBegin implements DragDelegate. A drag stops any in-flight
// transition where it is, so the finger picks the panel up mid-flight.
func (p *Panel) OnDragBegin(s ScrollSurface) {
	p.cancelTransition()
	p.flags.Dragging = true
}

// OnDragMove implements DragDelegate. It converts scrolling into panel
// movement in two zones and leaves the surface alone otherwise:
//   - pulled past the top (negative offset): the panel moves down by the
//     overscroll;
//   - scrolling content while the panel is below its expanded position: the
//     panel moves up first.
//
// In both cases the surface offset is consumed back to zero.
func (p *Panel) OnDragMove(s ScrollSurface) {
	if !s.IsDragging() {
		return
	}
	offset := s.ContentOffset()
	if offset < 0 {
		p.frame.Y += math.Abs(offset)
		s.SetContentOffset(0)
	} else if p.frame.Y > p.RectFor(Expanded).Y && offset > 0 {
		p.frame.Y -= offset
		s.SetContentOffset(0)
	}
}

// OnDragWillEnd implements DragDelegate. When the surface is resting at
// zero the panel owns the gesture: content momentum is cancelled and the
// panel animates to the state picked by Decide. Otherwise the surface keeps
// its own momentum and the panel stays put.
func (p *Panel) OnDragWillEnd(s ScrollSurface, velocity geom.Point, target *geom.Point) {
	p.flags.Dragging = false
	if s.ContentOffset() != 0 {
		return
	}
	if target != nil {
		target.Y = 0
	}

	next := Decide(p.metrics, p.bounds, p.state, p.frame.Y, velocity.Y)
	_, span := p.tracer.Start(context.Background(), "card.release",
		trace.WithAttributes(
			attribute.String("card.from", p.state.String()),
			attribute.String("card.to", next.String()),
			attribute.Float64("card.frame_y", p.frame.Y),
			attribute.Float64("card.velocity_y", velocity.Y),
		))
	span.End()

	if cmd := p.Navigate(next, true, nil); cmd != nil {
		p.pending = append(p.pending, cmd)
	}
}
