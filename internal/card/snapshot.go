package card

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cardpanel/internal/geom"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Shadow describes the drop shadow drawn behind a snapshot.
type Shadow struct {
	Opacity float64
	Radius  float64
}

// SnapshotHost is anything that can display an inert snapshot, such as a
// composer standing in for the live panel.
type SnapshotHost interface {
	AddSnapshot(s *Snapshot)
	RemoveSnapshot(s *Snapshot)
}

// Snapshot is a static capture of the panel's content region. It is owned
// by the Panel that produced it; hosts only display it.
type Snapshot struct {
	ID            string
	Content       string
	Region        geom.Rect
	State         State
	Shadow        Shadow
	ClipsToBounds bool
	CapturedAt    time.Time

	host SnapshotHost
}

// Host returns the host the snapshot is inserted into, if any.
func (s *Snapshot) Host() SnapshotHost {
	if s == nil {
		return nil
	}
	return s.host
}

// InsertInto moves the snapshot into h, removing it from its previous host.
func (s *Snapshot) InsertInto(h SnapshotHost) {
	if s.host == h {
		return
	}
	s.RemoveFromHost()
	s.host = h
	if h != nil {
		h.AddSnapshot(s)
	}
}

// RemoveFromHost detaches the snapshot. It is a no-op on a nil snapshot or
// one that was never inserted.
func (s *Snapshot) RemoveFromHost() {
	if s == nil || s.host == nil {
		return
	}
	h := s.host
	s.host = nil
	h.RemoveSnapshot(s)
}

// Decorated returns the content with its drop shadow: one column on the
// right and one row at the bottom, offset by a cell. A snapshot that clips
// to its bounds has no visible shadow.
func (s *Snapshot) Decorated() string {
	if s.ClipsToBounds || s.Shadow.Opacity <= 0 {
		return s.Content
	}
	glyph := ShadowStyle.Render(shadeGlyph(s.Shadow.Opacity))
	lines := strings.Split(s.Content, "\n")
	width := 0
	for _, l := range lines {
		width = max(width, ansi.StringWidth(l))
	}

	var b strings.Builder
	for i, l := range lines {
		b.WriteString(l)
		if pad := width - ansi.StringWidth(l); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		if i == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString(glyph)
		}
		b.WriteString("\n")
	}
	b.WriteString(" ")
	b.WriteString(strings.Repeat(glyph, width))
	return b.String()
}

func shadeGlyph(opacity float64) string {
	switch {
	case opacity <= 0.25:
		return "░"
	case opacity <= 0.5:
		return "▒"
	case opacity <= 0.75:
		return "▓"
	default:
		return "█"
	}
}

// Snapshot returns the cached snapshot, or nil.
func (p *Panel) Snapshot() *Snapshot { return p.snapshot }

// UpdateSnapshot captures the content region at the current state's
// rectangle. The capture is always as tall as the stack layout's visible
// area, whatever the current state. On success the frame is reset to that
// rectangle, unless a transition is in flight: it keeps running and lands
// as it would have. On failure the error is logged and returned and the
// previous snapshot, the frame and any transition are left as they were.
func (p *Panel) UpdateSnapshot() error {
	_, span := p.tracer.Start(context.Background(), "card.snapshot",
		trace.WithAttributes(
			attribute.String("card.state", p.state.String()),
			attribute.Bool("card.transitioning", p.transition != nil),
		))
	defer span.End()

	if err := p.captureSnapshot(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		p.logger.Printf("card.UpdateSnapshot: %v", err)
		return err
	}
	return nil
}

func (p *Panel) captureSnapshot() error {
	if !p.attached {
		return fmt.Errorf("capture snapshot: %w", ErrNotAttached)
	}
	rect := p.RectFor(p.state)

	region := geom.Rect{W: rect.W, H: p.bounds.H - p.RectFor(Stack).Y}
	_, _, w, h := region.Round()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("capture snapshot %.0fx%.0f: %w", region.W, region.H, ErrEmptyRegion)
	}
	content, err := p.render(w, h)
	if err != nil {
		return fmt.Errorf("capture snapshot: %w", err)
	}

	if p.transition == nil {
		p.frame = rect
	}
	p.setSnapshot(content, region)
	return nil
}

// setSnapshot installs a capture together with its decoration. The new
// snapshot takes the old one's place in its host.
func (p *Panel) setSnapshot(content string, region geom.Rect) {
	s := &Snapshot{
		ID:            uuid.NewString(),
		Content:       content,
		Region:        region,
		State:         p.state,
		Shadow:        p.metrics.Shadow,
		ClipsToBounds: false,
		CapturedAt:    p.now(),
	}
	old := p.snapshot
	p.snapshot = s
	if host := old.Host(); host != nil {
		old.RemoveFromHost()
		s.InsertInto(host)
	}
}

// ResetSnapshot discards the snapshot and removes it from its host.
func (p *Panel) ResetSnapshot() {
	p.snapshot.RemoveFromHost()
	p.snapshot = nil
}
