package ui

import (
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"cardpanel/internal/card"
	"cardpanel/internal/config"
	"cardpanel/internal/geom"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Layout: config.LayoutConfig{
			SideMargin:      2,
			HeightRatio:     0.9,
			MinimizedReveal: 3,
			StackRatio:      0.4,
			ExpandedRatio:   0.1,
			Buffer:          2,
		},
		Animation: config.AnimationConfig{
			Damping:         0.9,
			InitialVelocity: 0.9,
			Duration:        450 * time.Millisecond,
			FPS:             60,
		},
		Shadow: config.ShadowConfig{Opacity: 0.25, Radius: 5},
		UI:     config.UIConfig{InitialState: "stack", ExportDir: t.TempDir()},
	}
}

// newTestApp returns an app already sized to 80x40.
func newTestApp(t *testing.T) *appModelAdapter {
	t.Helper()
	m := NewAppModel(testConfig(t), nil, log.New(io.Discard, "", 0))
	a := m.AsTeaModel().(*appModelAdapter)
	a.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	return a
}

// settle runs the first frame tick and replays it past the animation's end.
func settle(t *testing.T, a *appModelAdapter, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	frame, ok := cmd().(card.AnimationFrameMsg)
	require.True(t, ok, "expected an animation frame")
	frame.At = frame.At.Add(time.Second)
	_, next := a.Update(frame)
	assert.Nil(t, next)
}

func TestWindowSize_AttachesPanel(t *testing.T) {
	a := newTestApp(t)

	assert.True(t, a.Panel.Attached())
	assert.Equal(t, geom.Rect{X: 0, Y: 1, W: 80, H: 38}, a.Panel.Bounds())
	assert.Equal(t, a.Panel.RectFor(card.Stack), a.Panel.Frame())
	require.NotNil(t, a.Panel.Snapshot(), "attach captures a snapshot")
}

func TestWindowSize_ResizeRepositions(t *testing.T) {
	a := newTestApp(t)
	a.Update(keyMsg("!"))
	before := a.Panel.Frame()

	a.Update(tea.WindowSizeMsg{Width: 100, Height: 60})

	assert.Equal(t, geom.Rect{X: 0, Y: 1, W: 100, H: 58}, a.Panel.Bounds())
	assert.Equal(t, a.Panel.RectFor(card.Minimized), a.Panel.Frame())
	assert.NotEqual(t, before, a.Panel.Frame())
}

func TestKeys_ImmediateNavigation(t *testing.T) {
	a := newTestApp(t)

	_, cmd := a.Update(keyMsg("#"))
	assert.Nil(t, cmd)
	assert.Equal(t, card.Expanded, a.Panel.State())
	assert.Equal(t, a.Panel.RectFor(card.Expanded), a.Panel.Frame())
	assert.Equal(t, "settled in expanded", a.Status)

	a.Update(keyMsg("!"))
	assert.Equal(t, card.Minimized, a.Panel.State())
}

func TestKeys_AnimatedNavigation(t *testing.T) {
	a := newTestApp(t)

	_, cmd := a.Update(keyMsg("3"))
	assert.True(t, a.Panel.Transitioning())
	assert.Equal(t, card.Stack, a.Panel.State(), "state changes only on completion")
	assert.Empty(t, a.Status)

	settle(t, a, cmd)

	assert.False(t, a.Panel.Transitioning())
	assert.Equal(t, card.Expanded, a.Panel.State())
	assert.Equal(t, a.Panel.RectFor(card.Expanded), a.Panel.Frame())
	assert.Equal(t, "settled in expanded", a.Status)
}

func TestKeys_SecondNavigationReplacesFirst(t *testing.T) {
	a := newTestApp(t)

	_, first := a.Update(keyMsg("3"))
	_, second := a.Update(keyMsg("1"))

	stale, ok := first().(card.AnimationFrameMsg)
	require.True(t, ok)
	stale.At = stale.At.Add(time.Second)
	a.Update(stale)
	assert.True(t, a.Panel.Transitioning(), "frames of the replaced transition are ignored")

	settle(t, a, second)
	assert.Equal(t, card.Minimized, a.Panel.State())
	assert.Equal(t, "settled in minimized", a.Status)
}

func TestKeys_ParkAndReset(t *testing.T) {
	a := newTestApp(t)

	a.Update(keyMsg("s"))
	snap := a.Panel.Snapshot()
	require.NotNil(t, snap)
	assert.True(t, strings.HasPrefix(a.Status, "snapshot "))

	a.Update(keyMsg("p"))
	assert.Equal(t, 1, a.Shelf.Len())
	assert.Same(t, snap, a.Shelf.Top())

	// a fresh capture takes the parked one's place
	a.Update(keyMsg("s"))
	assert.Equal(t, 1, a.Shelf.Len())
	assert.Same(t, a.Panel.Snapshot(), a.Shelf.Top())

	a.Update(keyMsg("p"))
	assert.Equal(t, 0, a.Shelf.Len())

	a.Update(keyMsg("p"))
	a.Update(keyMsg("x"))
	assert.Nil(t, a.Panel.Snapshot())
	assert.Equal(t, 0, a.Shelf.Len())

	a.Update(keyMsg("p"))
	assert.True(t, a.StatusErr)
	assert.Equal(t, errNoSnapshot.Error(), a.Status)
}

func TestKeys_Export(t *testing.T) {
	a := newTestApp(t)

	_, cmd := a.Update(keyMsg("e"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(SnapshotExportedMsg)
	require.True(t, ok)
	require.NoError(t, msg.Err)
	assert.FileExists(t, msg.Path)
	assert.Contains(t, msg.Path, a.Panel.Snapshot().ID)

	a.Update(msg)
	assert.False(t, a.StatusErr)
	assert.True(t, strings.HasPrefix(a.Status, "exported "))
}

func TestKeys_ExportWithoutSnapshot(t *testing.T) {
	a := newTestApp(t)
	a.Update(keyMsg("x"))

	_, cmd := a.Update(keyMsg("e"))
	assert.Nil(t, cmd)
	assert.True(t, a.StatusErr)
}

func TestKeys_Quit(t *testing.T) {
	a := newTestApp(t)
	_, cmd := a.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestMouseDrag_ReleaseStartsTransition(t *testing.T) {
	a := newTestApp(t)
	// stack frame sits at row 16 with its content starting a row lower
	press := tea.MouseMsg{X: 10, Y: 20, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	move := tea.MouseMsg{X: 10, Y: 18, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
	release := tea.MouseMsg{X: 10, Y: 18, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}

	a.Update(press)
	assert.True(t, a.Panel.Dragging())

	before := a.Panel.Frame()
	a.Update(move)
	assert.Less(t, a.Panel.Frame().Y, before.Y, "dragging up at the top of the content moves the card")
	assert.Zero(t, a.Surface.ContentOffset())

	_, cmd := a.Update(release)
	assert.False(t, a.Panel.Dragging())
	assert.True(t, a.Panel.Transitioning())
	assert.NotNil(t, cmd)
}

func TestMousePressOutsideCardIgnored(t *testing.T) {
	a := newTestApp(t)
	a.Update(tea.MouseMsg{X: 10, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.False(t, a.Panel.Dragging())
}

func TestView(t *testing.T) {
	a := newTestApp(t)
	a.Update(keyMsg("s"))
	a.Update(keyMsg("p"))

	out := a.View()
	rows := strings.Split(out, "\n")
	require.Len(t, rows, 40)
	assert.Contains(t, rows[0], "cardpanel")
	assert.Contains(t, rows[0], "state: stack")
	assert.Contains(t, out, "Activity")
	assert.Contains(t, out, "parked stack")
	assert.Contains(t, rows[39], "minimize")
}

func TestView_BeforeSize(t *testing.T) {
	m := NewAppModel(testConfig(t), nil, log.New(io.Discard, "", 0))
	assert.Empty(t, m.AsTeaModel().View())
}
