package ui

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"cardpanel/internal/card"
	"cardpanel/internal/config"
	"cardpanel/internal/geom"
	"cardpanel/internal/raster"
	"cardpanel/internal/scroll"
	"cardpanel/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.opentelemetry.io/otel/trace"
)

// feedLength is the number of sample entries in the hosted surface.
const feedLength = 120

// errNoSnapshot is shown when parking or exporting without a capture.
var errNoSnapshot = errors.New("no snapshot; press s first")

// AppModel is the root model. The screen is a title row, the panel's
// bounding box, and a footer with status and help.
type AppModel struct {
	Panel     *card.Panel
	Surface   *scroll.Surface
	Shelf     *Shelf
	Keys      KeyMap
	Help      help.Model
	ExportDir string

	Status    string
	StatusErr bool

	width  int
	height int
	logger *log.Logger
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model. tracer may be nil.
func NewAppModel(cfg config.Config, tracer trace.Tracer, logger *log.Logger) *AppModel {
	if logger == nil {
		logger = log.Default()
	}
	surface := scroll.New()
	opts := []card.Option{
		card.WithMetrics(cfg.Metrics()),
		card.WithLogger(logger),
	}
	if tracer != nil {
		opts = append(opts, card.WithTracer(tracer))
	}
	panel := card.New(cfg.InitialState(), surface, opts...)
	surface.SetContent(Feed(feedLength))

	return &AppModel{
		Panel:     panel,
		Surface:   surface,
		Shelf:     &Shelf{},
		Keys:      DefaultKeyMap(),
		Help:      newHelp(),
		ExportDir: cfg.UI.ExportDir,
		logger:    logger,
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// panelBounds is the area between the title and footer rows.
func (m *AppModel) panelBounds() geom.Rect {
	return geom.Rect{X: 0, Y: 1, W: float64(m.width), H: float64(m.height - 2)}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.Help.Width = msg.Width
		if a.Panel.Attached() {
			a.Panel.SetBounds(a.panelBounds())
		} else {
			a.Panel.Attach(a.panelBounds())
		}
		return a, nil
	case tea.KeyMsg:
		if cmd, ok := a.handleKey(msg); ok {
			return a, cmd
		}
	case SnapshotExportedMsg:
		if msg.Err != nil {
			a.setError(fmt.Errorf("export: %w", msg.Err))
		} else {
			a.logger.Printf("ui.export: wrote %s", msg.Path)
			a.setStatus("exported " + msg.Path)
		}
		return a, nil
	}
	return a, a.Panel.Update(msg)
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	k := a.Keys
	switch {
	case key.Matches(msg, k.Quit):
		return tea.Quit, true
	case key.Matches(msg, k.Minimize):
		return a.navigate(card.Minimized, true), true
	case key.Matches(msg, k.Stack):
		return a.navigate(card.Stack, true), true
	case key.Matches(msg, k.Expand):
		return a.navigate(card.Expanded, true), true
	case key.Matches(msg, k.MinimizeNow):
		return a.navigate(card.Minimized, false), true
	case key.Matches(msg, k.StackNow):
		return a.navigate(card.Stack, false), true
	case key.Matches(msg, k.ExpandNow):
		return a.navigate(card.Expanded, false), true
	case key.Matches(msg, k.Snapshot):
		if err := a.Panel.UpdateSnapshot(); err != nil {
			a.setError(err)
		} else {
			a.setStatus("snapshot " + a.Panel.Snapshot().ID[:8])
		}
		return nil, true
	case key.Matches(msg, k.Park):
		a.togglePark()
		return nil, true
	case key.Matches(msg, k.ResetSnapshot):
		a.Panel.ResetSnapshot()
		a.setStatus("snapshot cleared")
		return nil, true
	case key.Matches(msg, k.ExportSnapshot):
		snap := a.Panel.Snapshot()
		if snap == nil {
			a.setError(errNoSnapshot)
			return nil, true
		}
		return exportSnapshot(snap, a.ExportDir), true
	}
	return nil, false
}

// navigate runs onComplete from Panel.Update, so the status is set on the
// update loop.
func (a *appModelAdapter) navigate(to card.State, animated bool) tea.Cmd {
	return a.Panel.Navigate(to, animated, func() {
		a.setStatus("settled in " + to.String())
	})
}

func (a *appModelAdapter) togglePark() {
	snap := a.Panel.Snapshot()
	switch {
	case snap == nil:
		a.setError(errNoSnapshot)
	case snap.Host() == nil:
		snap.InsertInto(a.Shelf)
		a.setStatus("parked snapshot")
	default:
		snap.RemoveFromHost()
		a.setStatus("unparked snapshot")
	}
}

func exportSnapshot(snap *card.Snapshot, dir string) tea.Cmd {
	return func() tea.Msg {
		img, err := raster.Render(snap, raster.DefaultOptions())
		if err != nil {
			return SnapshotExportedMsg{Err: err}
		}
		path := filepath.Join(dir, "cardpanel-"+snap.ID+".png")
		if err := raster.WritePNG(path, img); err != nil {
			return SnapshotExportedMsg{Err: err}
		}
		return SnapshotExportedMsg{Path: path}
	}
}

func (m *AppModel) setStatus(s string) {
	m.Status = s
	m.StatusErr = false
}

func (m *AppModel) setError(err error) {
	m.logger.Printf("ui: %v", err)
	m.Status = err.Error()
	m.StatusErr = true
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.width <= 0 || a.height <= 0 {
		return ""
	}
	title := Styles.Title.Render("cardpanel") + Styles.Hint.Render("  state: "+a.Panel.State().String())
	if a.Panel.Transitioning() {
		title += Styles.Hint.Render(" (moving)")
	}

	c := NewCanvas(a.width, a.height)
	c.Place(0, 0, title)

	bounds := a.panelBounds()
	if shelf := a.Shelf.View(); shelf != "" {
		c.Place(int(bounds.X)+1, int(bounds.Y), shelf)
	}
	x, y, _, _ := a.Panel.Frame().Offset(bounds.X, bounds.Y).Round()
	c.Place(x, y, a.Panel.View())

	c.Place(0, a.height-1, a.footer())
	return c.String()
}

func (a *appModelAdapter) footer() string {
	status := Styles.Status
	if a.StatusErr {
		status = Styles.Error
	}
	left := status.Render(textutil.Truncate(a.Status, a.width/3))
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", a.Help.View(a.Keys))
}
