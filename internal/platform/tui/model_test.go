package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/notsure/internal/config"
	"github.com/vovakirdan/notsure/internal/core"
	_ "github.com/vovakirdan/notsure/internal/probes"
	"github.com/vovakirdan/notsure/internal/scene"
	"github.com/vovakirdan/notsure/internal/storage"
)

func builtins(t *testing.T, ids ...string) []*scene.Scene {
	t.Helper()
	out := make([]*scene.Scene, 0, len(ids))
	for _, id := range ids {
		s, err := scene.Builtin(id)
		require.NoError(t, err)
		out = append(out, s)
	}
	return out
}

func newTestModel(t *testing.T, store *storage.Store, ids ...string) Model {
	t.Helper()
	m, err := NewModel(builtins(t, ids...), store, config.Default().Viewer, 80, 40)
	require.NoError(t, err)
	return m
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelWithoutScenes(t *testing.T) {
	_, err := NewModel(nil, nil, config.Default().Viewer, 80, 40)
	assert.ErrorIs(t, err, ErrNoScenes)
}

func TestModelStartsOnConfiguredProbe(t *testing.T) {
	m := newTestModel(t, nil, "crossing")

	assert.Equal(t, "rays", m.Probe())
	hits := 0
	for _, r := range m.Results() {
		if r.Hit {
			hits++
		}
	}
	assert.Equal(t, 10, hits)
}

func TestModelMovesSelectedBody(t *testing.T) {
	m := newTestModel(t, nil, "crossing")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	player := m.Scene().Bodies()[0]
	assert.Equal(t, "player", player.Name)
	assert.Equal(t, core.V(0.5, 0), player.Body.Center)
	assert.Equal(t, core.V(0, 0), player.Body.PreviousCenter)

	// Tab selects the crate; moves no longer touch the player
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, runes("k"))
	bodies := m.Scene().Bodies()
	assert.Equal(t, core.V(0.5, 0), bodies[0].Body.Center)
	assert.Equal(t, core.V(1, 1.5), bodies[1].Body.Center)

	// The loaded scene itself is untouched
	orig := m.scenes[0].Bodies()
	assert.Equal(t, core.V(0, 0), orig[0].Body.Center)
}

func TestModelSelectionWraps(t *testing.T) {
	m := newTestModel(t, nil, "crossing")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 2, m.selected)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.selected)
}

func TestModelCyclesProbes(t *testing.T) {
	m := newTestModel(t, nil, "crossing")

	m = press(t, m, runes("p"))
	assert.Equal(t, "segments", m.Probe())
	m = press(t, m, runes("p"))
	assert.Equal(t, "sweep", m.Probe())
	m = press(t, m, runes("p"))
	assert.Equal(t, "aabb", m.Probe())

	// crossing: player overlaps crate only
	hits := 0
	for _, r := range m.Results() {
		if r.Hit {
			hits++
		}
	}
	assert.Equal(t, 1, hits)
}

func TestModelSwitchesScenes(t *testing.T) {
	m := newTestModel(t, nil, "crossing", "tunnel")

	m = press(t, m, runes("n"))
	assert.Equal(t, "tunnel", m.Scene().ID)
	m = press(t, m, runes("n"))
	assert.Equal(t, "crossing", m.Scene().ID)
	m = press(t, m, runes("N"))
	assert.Equal(t, "tunnel", m.Scene().ID)
}

func TestModelReload(t *testing.T) {
	m := newTestModel(t, nil, "crossing")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})

	reloaded := false
	m = m.WithReload(func(s *scene.Scene) (*scene.Scene, error) {
		reloaded = true
		return scene.Builtin(s.ID)
	})
	m = press(t, m, runes("r"))

	assert.True(t, reloaded)
	assert.Equal(t, core.V(0, 0), m.Scene().Bodies()[0].Body.Center)
	assert.Equal(t, "reloaded crossing", m.Status())
}

func TestModelStatusExpires(t *testing.T) {
	m := newTestModel(t, nil, "crossing")
	m = press(t, m, runes("w"))
	assert.Equal(t, "no history database", m.Status())

	// A stale expiry does not clear a newer message
	next, _ := m.Update(clearStatusMsg{seq: m.statusN - 1})
	m = next.(Model)
	assert.NotEmpty(t, m.Status())

	next, _ = m.Update(clearStatusMsg{seq: m.statusN})
	m = next.(Model)
	assert.Empty(t, m.Status())
}

func TestModelSavesRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	m := newTestModel(t, store, "crossing")
	m = press(t, m, runes("w"))
	assert.True(t, strings.HasPrefix(m.Status(), "saved run"), m.Status())

	runs, err := store.RecentRuns("crossing", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "rays", runs[0].ProbeID)
	assert.Equal(t, m.Scene().Fingerprint(), runs[0].SceneHash)
	assert.Equal(t, 10, runs[0].Hits)
}

func TestModelScreenshot(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	m := newTestModel(t, nil, "crossing")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.True(t, strings.HasPrefix(m.Status(), "saved "), m.Status())

	path := strings.TrimPrefix(m.Status(), "saved ")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "shelf")
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, nil, "crossing")

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	m = next.(Model)
	assert.Equal(t, 100, m.screen.Width())
	assert.Equal(t, 50-chromeHeight, m.screen.Height())

	next, _ = m.Update(tea.WindowSizeMsg{Width: 20, Height: 4})
	m = next.(Model)
	assert.Equal(t, minSceneRows, m.screen.Height())
}

func TestModelViewAndQuit(t *testing.T) {
	m := newTestModel(t, nil, "crossing")

	view := m.View()
	assert.Contains(t, view, "Crossing")
	assert.Contains(t, view, "probe rays")

	next, cmd := m.Update(runes("q"))
	assert.NotNil(t, cmd)
	assert.Empty(t, next.View())
}

func TestDrawSceneMarksHits(t *testing.T) {
	m := newTestModel(t, nil, "crossing")
	m.drawScene()

	// Wire and laser cross the crate; every hit is a point
	x, y := m.view.cell(core.V(0, 3))
	assert.Equal(t, '*', m.screen.Get(x, y))
	assert.Equal(t, core.ColorHit, m.screen.GetCell(x, y).Color)

	r := m.view.rect(m.Scene().Bodies()[0].Body)
	assert.Equal(t, core.ColorOverlap, m.screen.GetCell(r.X+1, r.Y).Color)
}
