package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/notsure/internal/scene"
)

type stubProbe struct{ id string }

func (p stubProbe) ID() string                { return p.id }
func (p stubProbe) Title() string             { return "stub " + p.id }
func (p stubProbe) Run(*scene.Scene) []Result { return []Result{{Probe: p.id, Hit: true}} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() Probe { return stubProbe{"zz-stub"} })

	require.True(t, Exists("zz-stub"))
	assert.Contains(t, List(), Info{ID: "zz-stub", Title: "stub zz-stub"})
	assert.Contains(t, IDs(), "zz-stub")

	p, err := Create("zz-stub")
	require.NoError(t, err)
	assert.Equal(t, "zz-stub", p.ID())

	assert.Panics(t, func() {
		Register("zz-stub", func() Probe { return stubProbe{"zz-stub"} })
	})
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("nope")
	require.ErrorIs(t, err, ErrUnknownProbe)
	assert.False(t, Exists("nope"))
}

func TestListIsSorted(t *testing.T) {
	Register("aa-stub", func() Probe { return stubProbe{"aa-stub"} })
	Register("mm-stub", func() Probe { return stubProbe{"mm-stub"} })

	ids := IDs()
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i])
	}
}
