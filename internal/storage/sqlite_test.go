package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/notsure/internal/body"
	"github.com/vovakirdan/notsure/internal/collide"
	"github.com/vovakirdan/notsure/internal/core"
	"github.com/vovakirdan/notsure/internal/registry"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	// Monotonic clock so ordering by created_at is deterministic
	base := time.Unix(1_700_000_000, 0)
	tick := 0
	store.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created")
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	rows := []ResultRow{
		{Subject: "player", Target: "crate", Hit: true},
		{Subject: "player", Target: "shelf", Hit: false},
		{Subject: "crate", Target: "shelf", Hit: false},
	}
	run, err := store.SaveRun(RunKey{SceneID: "crossing", SceneHash: "00c0ffee", ProbeID: "aabb"}, rows)
	require.NoError(t, err)

	assert.NotEmpty(t, run.ID)
	assert.Equal(t, "00c0ffee", run.SceneHash)
	assert.Equal(t, 1, run.Hits)
	assert.Equal(t, 3, run.Total)

	got, err := store.RunByID(run.ID)
	require.NoError(t, err)
	assert.Equal(t, run, got)

	stored, err := store.RunResults(run.ID)
	require.NoError(t, err)
	require.Len(t, stored, 3)
	for i, r := range stored {
		assert.Equal(t, run.ID, r.RunID)
		assert.Equal(t, rows[i].Subject, r.Subject)
		assert.Equal(t, rows[i].Target, r.Target)
		assert.Equal(t, rows[i].Hit, r.Hit)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	first, err := store.SaveRun(RunKey{SceneID: "crossing", ProbeID: "aabb"}, nil)
	require.NoError(t, err)
	second, err := store.SaveRun(RunKey{SceneID: "stack", ProbeID: "edges"}, nil)
	require.NoError(t, err)
	third, err := store.SaveRun(RunKey{SceneID: "crossing", ProbeID: "rays"}, nil)
	require.NoError(t, err)

	all, err := store.RecentRuns("", 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Newest first
	assert.Equal(t, third.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
	assert.Equal(t, first.ID, all[2].ID)

	crossing, err := store.RecentRuns("crossing", 10)
	require.NoError(t, err)
	require.Len(t, crossing, 2)
	assert.Equal(t, third.ID, crossing[0].ID)

	limited, err := store.RecentRuns("", 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.True(t, limited[0].CreatedAt().After(first.CreatedAt()))
}

func TestStoreRunNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.RunByID("missing")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	keep, err := store.SaveRun(RunKey{SceneID: "stack", ProbeID: "aabb"}, []ResultRow{{Subject: "a", Target: "b"}})
	require.NoError(t, err)
	drop, err := store.SaveRun(RunKey{SceneID: "crossing", ProbeID: "aabb"}, []ResultRow{{Subject: "a", Target: "b", Hit: true}})
	require.NoError(t, err)

	n, err := store.ClearRuns("crossing")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	results, err := store.RunResults(drop.ID)
	require.NoError(t, err)
	assert.Empty(t, results)

	remaining, err := store.RecentRuns("", 10)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, keep.ID, remaining[0].ID)

	n, err = store.ClearRuns("")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store1, err := Open(dbPath)
	require.NoError(t, err)
	run, err := store1.SaveRun(RunKey{SceneID: "tunnel", ProbeID: "sweep"}, []ResultRow{{Subject: "bullet", Target: "wall", Hit: true}})
	require.NoError(t, err)
	require.NoError(t, store1.Close())

	store2, err := Open(dbPath)
	require.NoError(t, err)
	defer store2.Close()

	got, err := store2.RunByID(run.ID)
	require.NoError(t, err)
	assert.Equal(t, "tunnel", got.SceneID)
	assert.Equal(t, 1, got.Hits)
}

func TestRowsFromResults(t *testing.T) {
	a := collide.NewSegment(core.V(-2, 0), core.V(2, 0))
	b := collide.NewSegment(core.V(0, -2), core.V(0, 2))
	point := a.IntersectionPoint(b)

	c := collide.NewSegment(core.V(0, 0), core.V(4, 0))
	d := collide.NewSegment(core.V(2, 0), core.V(6, 0))
	line := c.IntersectionPoint(d)

	rows := RowsFromResults([]registry.Result{
		{Probe: "rays", Subject: "laser", Target: "crate", Hit: true, HasSide: true, Side: body.Left, Intersection: &point},
		{Probe: "segments", Subject: "c", Target: "d", Hit: true, Intersection: &line},
		{Probe: "aabb", Subject: "x", Target: "y"},
	})
	require.Len(t, rows, 3)

	assert.Equal(t, "left", rows[0].Side)
	assert.Equal(t, "point", rows[0].Kind)
	assert.Equal(t, 0.0, rows[0].X1)
	assert.Equal(t, 0.0, rows[0].Y1)

	assert.Equal(t, "", rows[1].Side)
	assert.Equal(t, "line", rows[1].Kind)
	assert.Equal(t, 2.0, rows[1].X1)
	assert.Equal(t, 4.0, rows[1].X2)

	assert.False(t, rows[2].Hit)
	assert.Equal(t, "", rows[2].Kind)
}
