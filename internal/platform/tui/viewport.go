package tui

import (
	"math"

	"github.com/vovakirdan/notsure/internal/core"
	"github.com/vovakirdan/notsure/internal/scene"
)

// maxCell bounds projected coordinates so that rasterising a far-away
// segment stays cheap.
const maxCell = 1 << 14

// viewport maps world coordinates (Y up) to screen cells (Y down).
// Terminal cells are roughly twice as tall as wide, so Y is scaled by half.
type viewport struct {
	center        core.Vec2
	scale         float32
	width, height int
}

// sceneCenter returns the middle of everything in the scene.
func sceneCenter(s *scene.Scene) core.Vec2 {
	var pts []core.Vec2
	for _, b := range s.Bodies() {
		pts = append(pts, b.Body.BottomLeft(), b.Body.TopRight())
	}
	for _, seg := range s.Segments() {
		pts = append(pts, seg.Segment.Start, seg.Segment.End)
	}
	if len(pts) == 0 {
		return core.Vec2{}
	}

	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo, _ = core.Bounds(lo, p)
		_, hi = core.Bounds(hi, p)
	}
	return lo.Add(hi).Div(2)
}

// cell projects a world point.
func (v viewport) cell(p core.Vec2) (int, int) {
	x := float64(p.X-v.center.X) * float64(v.scale)
	y := float64(p.Y-v.center.Y) * float64(v.scale) / 2
	return v.width/2 + clampCell(x), v.height/2 - clampCell(y)
}

// rect projects a box to the cells it covers.
func (v viewport) rect(b core.Box) core.Rect {
	bl, tr := b.BottomLeft(), b.TopRight()
	x0, y0 := v.cell(core.V(bl.X, tr.Y))
	x1, y1 := v.cell(core.V(tr.X, bl.Y))
	return core.NewRect(x0, y0, x1-x0+1, y1-y0+1)
}

// visible reports whether any part of b lands inside bounds.
func (v viewport) visible(b core.Box, bounds core.Rect) bool {
	return v.rect(b).Intersects(bounds)
}

// labelAt places a label just above r, kept on screen so bodies hanging off
// an edge stay named.
func labelAt(r, bounds core.Rect, label string) (int, int) {
	width := len([]rune(label))
	x := core.Clamp(r.X, bounds.X, max(bounds.X, bounds.Right()-width))
	y := core.Clamp(r.Y-1, bounds.Y, max(bounds.Y, bounds.Bottom()-1))
	return x, y
}

func clampCell(f float64) int {
	if math.IsNaN(f) {
		return maxCell
	}
	return int(math.Round(math.Max(-maxCell, math.Min(maxCell, f))))
}
