package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/notsure/internal/body"
	"github.com/vovakirdan/notsure/internal/core"
	"github.com/vovakirdan/notsure/internal/scene"
)

func TestViewportCell(t *testing.T) {
	v := viewport{center: core.V(1, 1), scale: 2, width: 40, height: 20}

	x, y := v.cell(core.V(1, 1))
	assert.Equal(t, 20, x)
	assert.Equal(t, 10, y)

	// World Y grows up, screen Y grows down at half scale
	x, y = v.cell(core.V(3, 3))
	assert.Equal(t, 24, x)
	assert.Equal(t, 8, y)
}

func TestViewportRect(t *testing.T) {
	v := viewport{scale: 2, width: 40, height: 20}
	b := body.New(core.V(0, 0), core.V(4, 4))

	r := v.rect(b)
	assert.Equal(t, core.NewRect(16, 8, 9, 5), r)
}

func TestViewportClampsFarPoints(t *testing.T) {
	v := viewport{scale: 2, width: 40, height: 20}

	x, _ := v.cell(core.V(1e30, 0))
	assert.Equal(t, 20+maxCell, x)
}

func TestViewportVisible(t *testing.T) {
	v := viewport{scale: 2, width: 40, height: 20}
	bounds := core.NewRect(0, 0, 40, 20)

	tests := []struct {
		name     string
		center   core.Vec2
		expected bool
	}{
		{"centered", core.V(0, 0), true},
		{"hanging off the left edge", core.V(-10, 0), true},
		{"far right", core.V(30, 0), false},
		{"far below", core.V(0, -30), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := body.New(tc.center, core.V(4, 4))
			assert.Equal(t, tc.expected, v.visible(b, bounds))
		})
	}
}

func TestLabelAt(t *testing.T) {
	bounds := core.NewRect(0, 0, 40, 20)

	tests := []struct {
		name  string
		r     core.Rect
		label string
		x, y  int
	}{
		{"above the box", core.NewRect(16, 8, 9, 5), "crate", 16, 7},
		{"box on the top row", core.NewRect(5, 0, 9, 5), "crate", 5, 0},
		{"box off the left edge", core.NewRect(-4, 8, 9, 5), "crate", 0, 7},
		{"box at the right edge", core.NewRect(38, 8, 9, 5), "crate", 35, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := labelAt(tc.r, bounds, tc.label)
			assert.Equal(t, tc.x, x)
			assert.Equal(t, tc.y, y)
		})
	}
}

func TestSceneCenter(t *testing.T) {
	s, err := scene.Builtin("crossing")
	require.NoError(t, err)

	// Laser spans x -8..14, wire spans y -6..6
	assert.Equal(t, core.V(3, 0), sceneCenter(s))
	assert.Equal(t, core.Vec2{}, sceneCenter(&scene.Scene{ID: "empty"}))
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorText)
	s.SetColored(3, 1, '*', core.ColorHit)

	out := RenderScreen(s, NewPalette(""))
	assert.Contains(t, out, "ab")
	assert.Contains(t, out, "*")
	assert.Contains(t, out, "\n")
}
