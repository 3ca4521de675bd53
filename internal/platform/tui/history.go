package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/notsure/internal/storage"
)

// History layout constants
const (
	maxRuns        = 100 // Max runs to load
	historyChrome  = 8   // Title, borders and help
	allScenesLabel = "all"
)

// HistoryKeyMap defines the key bindings for the history browser.
type HistoryKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextScene key.Binding
	PrevScene key.Binding
	Open      key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextScene, k.Open, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextScene, k.PrevScene},
		{k.Open, k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextScene: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next scene"),
		),
		PrevScene: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev scene"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "results"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel browses saved probe runs and their results.
type HistoryModel struct {
	filters  []string // Scene IDs to filter by; the first is "all"
	filter   int
	store    *storage.Store
	runs     []storage.Run
	detail   *storage.Run // Run whose results are shown, nil for the run list
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	err      error
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a history browser over the given scene IDs.
func NewHistoryModel(store *storage.Store, sceneIDs []string, width, height int) HistoryModel {
	m := HistoryModel{
		filters: append([]string{allScenesLabel}, sceneIDs...),
		store:   store,
		help:    help.New(),
		keys:    DefaultHistoryKeyMap(),
		width:   width,
		height:  height,
	}
	m.loadRuns()
	return m
}

func (m *HistoryModel) sceneFilter() string {
	if m.filter == 0 {
		return ""
	}
	return m.filters[m.filter]
}

func (m *HistoryModel) newTable(columns []table.Column) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-historyChrome, 3)),
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

// loadRuns shows the runs matching the current filter.
func (m *HistoryModel) loadRuns() {
	m.detail = nil
	m.table = m.newTable([]table.Column{
		{Title: "When", Width: 14},
		{Title: "Scene", Width: 12},
		{Title: "Probe", Width: 10},
		{Title: "Hits", Width: 9},
		{Title: "Run", Width: 10},
	})

	m.runs, m.err = nil, nil
	if m.store != nil {
		m.runs, m.err = m.store.RecentRuns(m.sceneFilter(), maxRuns)
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			r.CreatedAt().Format("Jan 02 15:04"),
			r.SceneID,
			r.ProbeID,
			fmt.Sprintf("%d/%d", r.Hits, r.Total),
			fmt.Sprintf("%.8s", r.ID),
		}
	}
	m.table.SetRows(rows)
}

// openRun shows the stored results of the selected run.
func (m *HistoryModel) openRun() {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.runs) {
		return
	}
	run := m.runs[i]

	results, err := m.store.RunResults(run.ID)
	if err != nil {
		m.err = err
		return
	}

	m.detail = &run
	m.table = m.newTable([]table.Column{
		{Title: "Subject", Width: 10},
		{Title: "Target", Width: 10},
		{Title: "Hit", Width: 4},
		{Title: "Side", Width: 7},
		{Title: "Kind", Width: 6},
		{Title: "Where", Width: 24},
	})

	rows := make([]table.Row, len(results))
	for i, r := range results {
		hit, where := "", ""
		if r.Hit {
			hit = "yes"
		}
		switch r.Kind {
		case "point":
			where = fmt.Sprintf("(%g,%g)", r.X1, r.Y1)
		case "line":
			where = fmt.Sprintf("(%g,%g)-(%g,%g)", r.X1, r.Y1, r.X2, r.Y2)
		}
		rows[i] = table.Row{r.Subject, r.Target, hit, r.Side, r.Kind, where}
	}
	m.table.SetRows(rows)
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			if m.detail == nil {
				m.quitting = true
				return m, tea.Quit
			}
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.Open):
			if m.detail == nil {
				m.openRun()
			}
			return m, nil

		case key.Matches(msg, m.keys.NextScene):
			if m.detail == nil {
				m.filter = (m.filter + 1) % len(m.filters)
				m.loadRuns()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevScene):
			if m.detail == nil {
				m.filter = (m.filter - 1 + len(m.filters)) % len(m.filters)
				m.loadRuns()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(m.height-historyChrome, 3))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := fmt.Sprintf("RUN HISTORY - %s", m.filters[m.filter])
	if m.detail != nil {
		title = fmt.Sprintf("RUN %.8s - %s@%.8s / %s", m.detail.ID, m.detail.SceneID, m.detail.SceneHash, m.detail.ProbeID)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.tableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// tableContent renders the table or an explanation of why it is empty.
func (m HistoryModel) tableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.err != nil:
		return emptyStyle.Render("Cannot read history:\n" + m.err.Error())
	case m.detail == nil && len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nUse `notsure check --save` or press w in the viewer.")
	}
	return m.table.View()
}

// IsQuitting returns true if the user closed the browser.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunHistory runs the history browser in the local terminal.
func RunHistory(store *storage.Store, sceneIDs []string, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(store, sceneIDs, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
