package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/notsure/internal/config"
	"github.com/vovakirdan/notsure/internal/core"
	"github.com/vovakirdan/notsure/internal/registry"
	"github.com/vovakirdan/notsure/internal/scene"
	"github.com/vovakirdan/notsure/internal/storage"
)

// Viewer layout constants
const (
	resultRows   = 6 // Visible rows in the results table
	chromeHeight = resultRows + 6
	minSceneRows = 5
)

// ErrNoScenes is returned when the viewer is started without a scene.
var ErrNoScenes = errors.New("tui: no scenes to view")

// ReloadFunc re-reads a scene from wherever it came from.
type ReloadFunc func(s *scene.Scene) (*scene.Scene, error)

// ReloadFromSource reloads a scene from its file, or its built-in copy.
func ReloadFromSource(s *scene.Scene) (*scene.Scene, error) {
	return scene.Load(s.FilePath, "", s.ID)
}

// Model is the Bubble Tea model for the interactive scene viewer.
type Model struct {
	scenes   []*scene.Scene // As loaded; never moved
	sceneIdx int
	scene    *scene.Scene // Working copy the user moves bodies in
	reload   ReloadFunc
	store    *storage.Store
	cfg      config.ViewerConfig
	palette  Palette
	screen   *core.Screen
	view     viewport
	keys     ViewerKeyMap
	help     help.Model
	table    table.Model
	probeIDs []string
	probeIdx int
	results  []registry.Result
	selected int
	status   string
	statusN  int
	width    int
	height   int
	quitting bool
}

// NewModel creates a viewer over scenes. store may be nil, which disables
// saving runs.
func NewModel(scenes []*scene.Scene, store *storage.Store, cfg config.ViewerConfig, width, height int) (Model, error) {
	if len(scenes) == 0 {
		return Model{}, ErrNoScenes
	}
	probeIDs := registry.IDs()
	if len(probeIDs) == 0 {
		return Model{}, fmt.Errorf("tui: no probes registered")
	}

	m := Model{
		scenes:   scenes,
		reload:   ReloadFromSource,
		store:    store,
		cfg:      cfg,
		palette:  NewPalette(cfg.ClearColor),
		screen:   core.NewScreen(width, sceneRows(height)),
		keys:     DefaultViewerKeyMap(),
		help:     help.New(),
		table:    newResultsTable(width),
		probeIDs: probeIDs,
		width:    width,
		height:   height,
	}
	for i, id := range probeIDs {
		if id == cfg.Probe {
			m.probeIdx = i
		}
	}
	m.help.Width = width
	m.openScene(0)
	return m, nil
}

// WithReload replaces how the viewer reloads scenes.
func (m Model) WithReload(fn ReloadFunc) Model {
	m.reload = fn
	return m
}

func sceneRows(height int) int {
	return max(height-chromeHeight, minSceneRows)
}

func newResultsTable(width int) table.Model {
	where := max(width-44, 16)
	columns := []table.Column{
		{Title: "Subject", Width: 10},
		{Title: "Target", Width: 10},
		{Title: "Hit", Width: 4},
		{Title: "Side", Width: 7},
		{Title: "Where", Width: where},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(resultRows),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// openScene switches to scenes[i] with a fresh working copy.
func (m *Model) openScene(i int) {
	m.sceneIdx = i
	m.scene = m.scenes[i].Clone()
	m.selected = 0
	m.view = viewport{
		center: sceneCenter(m.scene),
		scale:  m.cfg.Scale,
		width:  m.screen.Width(),
		height: m.screen.Height(),
	}
	m.evaluate()
}

// evaluate reruns the current probe against the working scene.
func (m *Model) evaluate() {
	m.results = nil
	if p, err := registry.Create(m.probeID()); err == nil {
		m.results = p.Run(m.scene)
	}

	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		hit, side, where := "", "", ""
		if r.Hit {
			hit = "yes"
		}
		if r.HasSide {
			side = r.Side.String()
		}
		if r.Intersection != nil {
			where = r.Intersection.String()
		}
		rows[i] = table.Row{r.Subject, r.Target, hit, side, where}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m Model) probeID() string {
	return m.probeIDs[m.probeIdx]
}

// Scene returns the working copy of the current scene.
func (m Model) Scene() *scene.Scene {
	return m.scene
}

// Results returns the current probe's results.
func (m Model) Results() []registry.Result {
	return m.results
}

// Probe returns the ID of the probe shown.
func (m Model) Probe() string {
	return m.probeID()
}

// Status returns the transient status message.
func (m Model) Status() string {
	return m.status
}

// Init initializes the viewer.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, sceneRows(msg.Height))
		m.view.width = m.screen.Width()
		m.view.height = m.screen.Height()
		m.table = newResultsTable(msg.Width)
		m.help.Width = msg.Width
		m.evaluate()
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusN {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := m.cfg.Step

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		return m.move(core.V(0, step))
	case key.Matches(msg, m.keys.Down):
		return m.move(core.V(0, -step))
	case key.Matches(msg, m.keys.Left):
		return m.move(core.V(-step, 0))
	case key.Matches(msg, m.keys.Right):
		return m.move(core.V(step, 0))

	case key.Matches(msg, m.keys.NextBody):
		if n := len(m.scene.BodySpecs); n > 0 {
			m.selected = (m.selected + 1) % n
		}
		return m, nil
	case key.Matches(msg, m.keys.PrevBody):
		if n := len(m.scene.BodySpecs); n > 0 {
			m.selected = (m.selected - 1 + n) % n
		}
		return m, nil

	case key.Matches(msg, m.keys.NextProbe):
		m.probeIdx = (m.probeIdx + 1) % len(m.probeIDs)
		m.evaluate()
		return m, nil

	case key.Matches(msg, m.keys.NextScene):
		m.openScene((m.sceneIdx + 1) % len(m.scenes))
		return m, nil
	case key.Matches(msg, m.keys.PrevScene):
		m.openScene((m.sceneIdx - 1 + len(m.scenes)) % len(m.scenes))
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp):
		m.table.MoveUp(1)
		return m, nil
	case key.Matches(msg, m.keys.ScrollDn):
		m.table.MoveDown(1)
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		return m.reloadScene()

	case key.Matches(msg, m.keys.SaveRun):
		return m.saveRun()

	case key.Matches(msg, m.keys.Snapshot):
		path, err := m.saveScreenshot()
		if err != nil {
			return m.flash("screenshot failed: " + err.Error())
		}
		return m.flash("saved " + path)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

// move shifts the selected body and re-evaluates.
func (m Model) move(delta core.Vec2) (tea.Model, tea.Cmd) {
	b, ok := m.selectedBody()
	if !ok {
		return m, nil
	}
	m.scene.Move(b.Name, delta)
	m.evaluate()
	return m, nil
}

func (m Model) reloadScene() (tea.Model, tea.Cmd) {
	current := m.scenes[m.sceneIdx]
	fresh, err := m.reload(current)
	if err != nil {
		return m.flash("reload failed: " + err.Error())
	}

	scenes := make([]*scene.Scene, len(m.scenes))
	copy(scenes, m.scenes)
	scenes[m.sceneIdx] = fresh
	m.scenes = scenes

	m.openScene(m.sceneIdx)
	return m.flash("reloaded " + fresh.ID)
}

func (m Model) saveRun() (tea.Model, tea.Cmd) {
	if m.store == nil {
		return m.flash("no history database")
	}
	key := storage.RunKey{
		SceneID:   m.scene.ID,
		SceneHash: m.scene.Fingerprint(),
		ProbeID:   m.probeID(),
	}
	run, err := m.store.SaveRun(key, storage.RowsFromResults(m.results))
	if err != nil {
		return m.flash("save failed: " + err.Error())
	}
	return m.flash(fmt.Sprintf("saved run %.8s (%d/%d hits)", run.ID, run.Hits, run.Total))
}

// flash shows a status message until it times out.
func (m Model) flash(text string) (tea.Model, tea.Cmd) {
	m.statusN++
	m.status = text
	return m, clearStatusCmd(m.statusN)
}

// saveScreenshot writes the scene as plain text to ~/.notsure/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	m.drawScene()

	dir := config.UserPath("screenshots")
	if dir == "" {
		return "", fmt.Errorf("tui: no home directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s_%s.txt", m.scene.ID, m.probeID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// statusLine summarises the scene, probe and selection.
func (m Model) statusLine() string {
	hits := 0
	for _, r := range m.results {
		if r.Hit {
			hits++
		}
	}

	parts := []string{
		fmt.Sprintf("%s [%d/%d]", m.scene.Title(), m.sceneIdx+1, len(m.scenes)),
		fmt.Sprintf("probe %s %d/%d", m.probeID(), hits, len(m.results)),
	}
	if b, ok := m.selectedBody(); ok {
		parts = append(parts, fmt.Sprintf("%s at (%g,%g)", b.Name, b.Body.Center.X, b.Body.Center.Y))
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return strings.Join(parts, "  │  ")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.drawScene()

	statusStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen, m.palette))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.statusLine()))
	b.WriteString("\n")
	b.WriteString(tableStyle.Render(m.table.View()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Run starts the viewer in the local terminal.
func Run(scenes []*scene.Scene, store *storage.Store, cfg config.ViewerConfig, width, height int) error {
	model, err := NewModel(scenes, store, cfg, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
