package tui

import (
	"github.com/vovakirdan/notsure/internal/collide"
	"github.com/vovakirdan/notsure/internal/core"
	"github.com/vovakirdan/notsure/internal/scene"
)

// drawScene renders bodies, segments and the current probe's findings.
func (m Model) drawScene() {
	m.screen.Clear()

	bounds := m.screen.Bounds()
	bodies := m.scene.Bodies()
	hit := make(map[string]bool)
	for _, r := range m.results {
		if r.Hit {
			hit[r.Subject] = true
			hit[r.Target] = true
		}
	}

	// Previous positions first so the current frame draws over them
	for _, b := range bodies {
		if b.Body.PreviousCenter != b.Body.Center {
			ghost := core.Previous(b.Body)
			if m.view.visible(ghost, bounds) {
				m.screen.DrawBox(m.view.rect(ghost), core.ColorGhost)
			}
			x0, y0 := m.view.cell(b.Body.PreviousCenter)
			x1, y1 := m.view.cell(b.Body.Center)
			m.screen.DrawLine(x0, y0, x1, y1, '·', core.ColorGhost)
		}
	}

	for _, seg := range m.scene.Segments() {
		m.drawSegment(seg.Segment, '•', core.ColorSegment)
	}

	for i, b := range bodies {
		if !m.view.visible(b.Body, bounds) {
			continue
		}
		color := core.ColorBody
		switch {
		case hit[b.Name]:
			color = core.ColorOverlap
		case i == m.selected:
			color = core.ColorSelected
		}
		m.screen.DrawBox(m.view.rect(b.Body), color)
	}

	for i, b := range bodies {
		if !m.view.visible(b.Body, bounds) {
			continue
		}
		label, labelColor := b.Name, core.ColorText
		if i == m.selected {
			label, labelColor = "▸"+b.Name, core.ColorSelected
		}
		x, y := labelAt(m.view.rect(b.Body), bounds, label)
		m.screen.DrawText(x, y, label, labelColor)
	}

	for _, r := range m.results {
		if r.Intersection == nil {
			continue
		}
		in := *r.Intersection
		if in.IsLine() {
			m.drawSegment(in.Line, '*', core.ColorHit)
			continue
		}
		x, y := m.view.cell(in.Point)
		m.screen.SetColored(x, y, '*', core.ColorHit)
	}
}

func (m Model) drawSegment(s collide.Segment, r rune, c core.Color) {
	x0, y0 := m.view.cell(s.Start)
	x1, y1 := m.view.cell(s.End)
	m.screen.DrawLine(x0, y0, x1, y1, r, c)
}

// selectedBody returns the selected body, if the scene has any.
func (m Model) selectedBody() (scene.NamedBody, bool) {
	bodies := m.scene.Bodies()
	if m.selected < 0 || m.selected >= len(bodies) {
		return scene.NamedBody{}, false
	}
	return bodies[m.selected], true
}
