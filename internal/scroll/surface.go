// Package scroll provides a viewport-backed scroll surface that forwards
// mouse drags to a card.DragDelegate.
package scroll

import (
	"fmt"
	"math"
	"time"

	"cardpanel/internal/card"
	"cardpanel/internal/geom"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDeceleration scales the release velocity into the momentum
// distance proposed to the delegate.
const DefaultDeceleration = 0.15

// Surface is a scrollable text region. It implements both card.Child and
// card.ScrollSurface: a left-button drag moves the content offset, and the
// delegate gets to convert that movement into panel movement before the
// offset is committed to the viewport.
type Surface struct {
	viewport     viewport.Model
	content      string
	offset       float64
	dragging     bool
	lastY        int
	tracker      tracker
	delegate     card.DragDelegate
	requester    func()
	now          func() time.Time
	deceleration float64
}

var (
	_ card.Child         = (*Surface)(nil)
	_ card.ScrollSurface = (*Surface)(nil)
)

// Option configures a Surface.
type Option func(*Surface)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Surface) { s.now = now }
}

// WithDeceleration sets the momentum scale applied at release.
func WithDeceleration(d float64) Option {
	return func(s *Surface) { s.deceleration = d }
}

// New creates an empty surface.
func New(opts ...Option) *Surface {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true
	s := &Surface{
		viewport:     vp,
		now:          time.Now,
		deceleration: DefaultDeceleration,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetContent replaces the text and asks the panel for a fresh snapshot.
func (s *Surface) SetContent(content string) {
	s.content = content
	s.viewport.SetContent(content)
	s.commit()
	s.RequestSnapshot()
}

// RequestSnapshot invokes the registered snapshot requester, if any.
func (s *Surface) RequestSnapshot() {
	if s.requester != nil {
		s.requester()
	}
}

// ContentOffset implements card.ScrollSurface.
func (s *Surface) ContentOffset() float64 { return s.offset }

// SetContentOffset implements card.ScrollSurface. The value is committed
// to the viewport once the current callback returns.
func (s *Surface) SetContentOffset(y float64) { s.offset = y }

// IsDragging implements card.ScrollSurface.
func (s *Surface) IsDragging() bool { return s.dragging }

// Surface implements card.Child.
func (s *Surface) Surface() card.ScrollSurface { return s }

// SetDragDelegate implements card.Child.
func (s *Surface) SetDragDelegate(d card.DragDelegate) { s.delegate = d }

// SetSnapshotRequester implements card.Child.
func (s *Surface) SetSnapshotRequester(fn func()) { s.requester = fn }

// Resize implements card.Child.
func (s *Surface) Resize(width, height int) {
	s.viewport.Width = width
	s.viewport.Height = height
	s.commit()
}

// Update implements card.Child.
func (s *Surface) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if tea.MouseEvent(msg).IsWheel() {
			break
		}
		if msg.Button == tea.MouseButtonLeft || s.dragging {
			s.handleDrag(msg)
			return nil
		}
	}
	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	s.offset = float64(s.viewport.YOffset)
	return cmd
}

func (s *Surface) handleDrag(msg tea.MouseMsg) {
	now := s.now()
	switch msg.Action {
	case tea.MouseActionPress:
		s.dragging = true
		s.lastY = msg.Y
		s.tracker.reset(now)
		if s.delegate != nil {
			s.delegate.OnDragBegin(s)
		}
	case tea.MouseActionMotion:
		if !s.dragging {
			return
		}
		// finger up scrolls content forward
		delta := float64(s.lastY - msg.Y)
		s.lastY = msg.Y
		if delta == 0 {
			return
		}
		s.offset += delta
		s.tracker.add(delta, now)
		if s.delegate != nil {
			s.delegate.OnDragMove(s)
		}
		s.commit()
	case tea.MouseActionRelease:
		if !s.dragging {
			return
		}
		velocity := geom.Point{Y: s.tracker.velocity(now)}
		target := geom.Point{Y: s.offset + velocity.Y*s.deceleration}
		if s.delegate != nil {
			s.delegate.OnDragWillEnd(s, velocity, &target)
		}
		s.dragging = false
		s.offset = target.Y
		s.commit()
	}
}

// commit writes the offset into the viewport, which clamps it to the
// content, and reads the clamped value back.
func (s *Surface) commit() {
	s.viewport.SetYOffset(int(math.Round(s.offset)))
	s.offset = float64(s.viewport.YOffset)
}

// Render implements card.Child.
func (s *Surface) Render(width, height int) (string, error) {
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("render %dx%d: %w", width, height, card.ErrEmptyRegion)
	}
	if s.content == "" {
		return "", fmt.Errorf("render: no content: %w", card.ErrNotRenderable)
	}
	vp := s.viewport
	vp.Width = width
	vp.Height = height
	vp.SetYOffset(vp.YOffset)
	return vp.View(), nil
}

// View renders at the current size.
func (s *Surface) View() string {
	out, err := s.Render(s.viewport.Width, s.viewport.Height)
	if err != nil {
		return ""
	}
	return out
}

// AtTop reports whether the content is scrolled to the beginning.
func (s *Surface) AtTop() bool { return s.viewport.AtTop() }
