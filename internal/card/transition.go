package card

import (
	"time"

	"cardpanel/internal/geom"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"go.opentelemetry.io/otel/trace"
)

// AnimationFrameMsg advances the in-flight transition with the given ID.
// Frames for a cancelled transition are ignored.
type AnimationFrameMsg struct {
	ID uint64
	At time.Time
}

// transition animates the frame from one rectangle to a state's rectangle.
// The state is assigned only when it completes.
type transition struct {
	id         uint64
	to         State
	from       geom.Rect
	dest       geom.Rect
	started    time.Time
	duration   time.Duration
	spring     harmonica.Spring
	progress   float64 // 0 at from, 1 at dest
	velocity   float64
	onComplete func()
	span       trace.Span
}

func newTransition(id uint64, to State, from, dest geom.Rect, now time.Time, p SpringParams, onComplete func(), span trace.Span) *transition {
	fps := p.FPS
	if fps <= 0 {
		fps = 60
	}
	secs := p.Duration.Seconds()
	if secs <= 0 {
		secs = 0.45
	}
	damping := p.Damping
	if damping <= 0 {
		damping = 0.9
	}
	// settle to within ~2% by the end of the duration
	angular := 4 / (damping * secs)
	return &transition{
		id:         id,
		to:         to,
		from:       from,
		dest:       dest,
		started:    now,
		duration:   p.Duration,
		spring:     harmonica.NewSpring(harmonica.FPS(fps), angular, damping),
		velocity:   p.InitialVelocity,
		onComplete: onComplete,
		span:       span,
	}
}

// advance steps the spring once. It reports done when the duration elapsed,
// in which case the returned frame is exactly dest.
func (t *transition) advance(now time.Time) (geom.Rect, bool) {
	if now.Sub(t.started) >= t.duration {
		t.progress = 1
		return t.dest, true
	}
	t.progress, t.velocity = t.spring.Update(t.progress, t.velocity, 1)
	return geom.Lerp(t.from, t.dest, t.progress), false
}

func frameTick(id uint64, fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	return tea.Tick(time.Second/time.Duration(fps), func(at time.Time) tea.Msg {
		return AnimationFrameMsg{ID: id, At: at}
	})
}
