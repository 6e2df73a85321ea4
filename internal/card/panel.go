package card

import (
	"context"
	"errors"
	"log"
	"time"

	"cardpanel/internal/geom"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TracerName identifies spans emitted by this package.
const TracerName = "cardpanel/card"

var (
	// ErrNotAttached is returned when an operation needs a bounding box.
	ErrNotAttached = errors.New("panel is not attached")
	// ErrEmptyRegion is returned when a capture region has no area.
	ErrEmptyRegion = errors.New("capture region is empty")
	// ErrNotRenderable is returned by children with nothing to draw.
	ErrNotRenderable = errors.New("content is not renderable")
)

// Panel is the draggable card. Outside an active drag or an in-flight
// transition, Frame() == RectFor(State()).
type Panel struct {
	metrics Metrics
	child   Child
	logger  *log.Logger
	tracer  trace.Tracer
	now     func() time.Time
	style   lipgloss.Style

	bounds   geom.Rect
	attached bool

	state      State
	frame      geom.Rect
	flags      ScrollFlags
	transition *transition
	lastID     uint64
	pending    []tea.Cmd // commands produced inside delegate callbacks

	snapshot *Snapshot
}

// Option configures a Panel.
type Option func(*Panel)

// WithMetrics overrides DefaultMetrics.
func WithMetrics(m Metrics) Option {
	return func(p *Panel) { p.metrics = m }
}

// WithLogger sets the diagnostic logger. Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(p *Panel) { p.logger = l }
}

// WithTracer sets the tracer used for navigate, release and snapshot spans.
func WithTracer(t trace.Tracer) Option {
	return func(p *Panel) { p.tracer = t }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(p *Panel) { p.now = now }
}

// WithStyle sets the chrome drawn around the child.
func WithStyle(s lipgloss.Style) Option {
	return func(p *Panel) { p.style = s }
}

// New creates a panel in the initial state and registers it as the child's
// drag delegate and snapshot requester. The panel is laid out once Attach
// is called.
func New(initial State, child Child, opts ...Option) *Panel {
	p := &Panel{
		metrics: DefaultMetrics(),
		child:   child,
		logger:  log.Default(),
		tracer:  otel.Tracer(TracerName),
		now:     time.Now,
		style:   ChromeStyle,
		state:   initial,
	}
	for _, opt := range opts {
		opt(p)
	}
	if child != nil {
		child.SetDragDelegate(p)
		child.SetSnapshotRequester(func() {
			// failures are logged by UpdateSnapshot
			_ = p.UpdateSnapshot()
		})
	}
	return p
}

// State returns the committed state. During a transition this is still the
// state the transition started from.
func (p *Panel) State() State { return p.state }

// Frame returns the live rectangle, relative to the bounding box origin.
func (p *Panel) Frame() geom.Rect { return p.frame }

// Bounds returns the bounding box the panel is laid out in.
func (p *Panel) Bounds() geom.Rect { return p.bounds }

// Metrics returns the layout constants.
func (p *Panel) Metrics() Metrics { return p.metrics }

// Flags returns the transient gesture flags.
func (p *Panel) Flags() ScrollFlags { return p.flags }

// Dragging reports whether a drag is in progress.
func (p *Panel) Dragging() bool { return p.flags.Dragging }

// Transitioning reports whether an animated transition is in flight.
func (p *Panel) Transitioning() bool { return p.transition != nil }

// Attached reports whether the panel has a bounding box.
func (p *Panel) Attached() bool { return p.attached }

// Child returns the hosted content.
func (p *Panel) Child() Child { return p.child }

// RectFor returns the canonical rectangle of s for the current bounds.
func (p *Panel) RectFor(s State) geom.Rect {
	return p.metrics.RectFor(p.bounds, s)
}

// Attach lays the panel out in bounds for the first time and refreshes the
// snapshot.
func (p *Panel) Attach(bounds geom.Rect) {
	p.attached = true
	p.SetBounds(bounds)
	_ = p.UpdateSnapshot()
}

// Detach releases the snapshot. The panel can be attached again later.
func (p *Panel) Detach() {
	p.cancelTransition()
	p.ResetSnapshot()
	p.attached = false
}

// SetBounds is the layout callback for bounding box changes. The current
// state's rectangle is reapplied without animation. An in-flight transition
// keeps running but is retargeted to the new rectangle.
func (p *Panel) SetBounds(bounds geom.Rect) {
	p.bounds = bounds
	if t := p.transition; t != nil {
		t.dest = p.RectFor(t.to)
	} else {
		p.frame = p.RectFor(p.state)
	}
	p.resizeChild()
}

// Navigate moves the panel to state to. Without animation the frame and
// state change together before Navigate returns and the returned command
// is nil. With animation the state changes when the spring completes and
// the returned command drives it; onComplete runs after the assignment.
//
// Starting a navigation cancels any in-flight transition: its partial frame
// becomes the new start point and its onComplete never runs.
func (p *Panel) Navigate(to State, animated bool, onComplete func()) tea.Cmd {
	_, span := p.tracer.Start(context.Background(), "card.navigate",
		trace.WithAttributes(
			attribute.String("card.from", p.state.String()),
			attribute.String("card.to", to.String()),
			attribute.Bool("card.animated", animated),
		))
	p.cancelTransition()

	if !animated {
		p.frame = p.RectFor(to)
		p.state = to
		span.End()
		if onComplete != nil {
			onComplete()
		}
		return nil
	}

	p.lastID++
	p.transition = newTransition(p.lastID, to, p.frame, p.RectFor(to), p.now(), p.metrics.Spring, onComplete, span)
	p.flags.Transitioning = true
	return frameTick(p.lastID, p.metrics.Spring.FPS)
}

func (p *Panel) cancelTransition() {
	t := p.transition
	if t == nil {
		return
	}
	t.span.AddEvent("cancelled")
	t.span.End()
	p.transition = nil
	p.flags.Transitioning = false
}

func (p *Panel) step(msg AnimationFrameMsg) tea.Cmd {
	t := p.transition
	if t == nil || t.id != msg.ID {
		return nil
	}
	frame, done := t.advance(msg.At)
	p.frame = frame
	if !done {
		return frameTick(t.id, p.metrics.Spring.FPS)
	}
	p.transition = nil
	p.flags.Transitioning = false
	p.state = t.to
	t.span.End()
	if t.onComplete != nil {
		t.onComplete()
	}
	return nil
}

// Update advances animation frames and forwards input to the child. Mouse
// presses and wheel events outside the content region are not forwarded;
// motion and release always are so a drag can leave the panel.
func (p *Panel) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case AnimationFrameMsg:
		cmds = append(cmds, p.step(msg))
	case tea.MouseMsg:
		if p.child != nil && p.acceptsMouse(msg) {
			cmds = append(cmds, p.child.Update(msg))
		}
	default:
		if p.child != nil {
			cmds = append(cmds, p.child.Update(msg))
		}
	}
	cmds = append(cmds, p.pending...)
	p.pending = nil
	return tea.Batch(cmds...)
}

func (p *Panel) acceptsMouse(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress {
		return true
	}
	x, y, w, h := p.contentRect()
	mx, my := msg.X, msg.Y
	return mx >= x && mx < x+w && my >= y && my < y+h
}

// contentRect is the child's region in screen cells.
func (p *Panel) contentRect() (x, y, w, h int) {
	x, y, w, h = p.frame.Offset(p.bounds.X, p.bounds.Y).Round()
	fw, fh := p.style.GetFrameSize()
	return x + p.style.GetBorderLeftSize() + p.style.GetPaddingLeft(),
		y + p.style.GetBorderTopSize() + p.style.GetPaddingTop(),
		w - fw, h - fh
}

func (p *Panel) resizeChild() {
	if p.child == nil {
		return
	}
	_, _, w, h := p.contentRect()
	p.child.Resize(max(w, 0), max(h, 0))
}

// View renders the card at its live size. Placement on screen is left to
// the composer, which reads Frame and Bounds.
func (p *Panel) View() string {
	_, _, w, h := p.frame.Round()
	out, err := p.render(w, h)
	if err != nil {
		fw, fh := p.style.GetFrameSize()
		return p.style.
			Width(max(w-fw, 0) + p.style.GetHorizontalPadding()).
			Height(max(h-fh, 0) + p.style.GetVerticalPadding()).
			Render(Placeholder.Render(err.Error()))
	}
	return out
}

// render draws the child inside the chrome at w x h cells.
func (p *Panel) render(w, h int) (string, error) {
	if p.child == nil {
		return "", ErrNotRenderable
	}
	fw, fh := p.style.GetFrameSize()
	if w-fw <= 0 || h-fh <= 0 {
		return "", ErrEmptyRegion
	}
	content, err := p.child.Render(w-fw, h-fh)
	if err != nil {
		return "", err
	}
	// lipgloss Width/Height include padding but not the border
	return p.style.
		Width(w - fw + p.style.GetHorizontalPadding()).
		Height(h - fh + p.style.GetVerticalPadding()).
		MaxHeight(h).
		Render(content), nil
}
