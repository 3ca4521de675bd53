// Package body provides axis-aligned rectangular bodies built from a center
// and a size, and composes the segment intersector over their four edges.
package body

import (
	"fmt"

	"github.com/vovakirdan/notsure/internal/collide"
	"github.com/vovakirdan/notsure/internal/core"
)

// Side identifies one edge of a body.
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

// Sides lists every side in edge order.
var Sides = [4]Side{Top, Right, Bottom, Left}

// String returns the lowercase side name.
func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Body is a rectangle positioned by its center. It remembers the center it
// had before the last Offset so swept checks can reconstruct its motion.
type Body struct {
	Center         core.Vec2
	PreviousCenter core.Vec2
	Size           core.Vec2
	HalfSize       core.Vec2
}

// New creates a body at center with the given full size. Its previous
// center starts equal to center.
func New(center, size core.Vec2) Body {
	return Body{
		Center:         center,
		PreviousCenter: center,
		Size:           size,
		HalfSize:       size.Div(2),
	}
}

// Offset moves the body by delta, recording where it was.
func (b *Body) Offset(delta core.Vec2) {
	b.PreviousCenter = b.Center
	b.Center = b.Center.Add(delta)
}

// Put teleports the body. The previous center is left untouched.
func (b *Body) Put(center core.Vec2) {
	b.Center = center
}

// BottomLeft implements core.Box.
func (b Body) BottomLeft() core.Vec2 {
	return b.Center.Sub(b.HalfSize)
}

// TopRight implements core.Box.
func (b Body) TopRight() core.Vec2 {
	return b.Center.Add(b.HalfSize)
}

// TopLeft returns the top-left corner.
func (b Body) TopLeft() core.Vec2 {
	return core.V(b.Center.X-b.HalfSize.X, b.Center.Y+b.HalfSize.Y)
}

// BottomRight returns the bottom-right corner.
func (b Body) BottomRight() core.Vec2 {
	return core.V(b.Center.X+b.HalfSize.X, b.Center.Y-b.HalfSize.Y)
}

// PreviousBottomLeft implements core.PreviousBox.
func (b Body) PreviousBottomLeft() core.Vec2 {
	return b.PreviousCenter.Sub(b.HalfSize)
}

// PreviousTopRight implements core.PreviousBox.
func (b Body) PreviousTopRight() core.Vec2 {
	return b.PreviousCenter.Add(b.HalfSize)
}

// Top returns the top edge, left to right.
func (b Body) Top() collide.Segment {
	return collide.NewSegment(b.TopLeft(), b.TopRight())
}

// Right returns the right edge, top to bottom.
func (b Body) Right() collide.Segment {
	return collide.NewSegment(b.TopRight(), b.BottomRight())
}

// Bottom returns the bottom edge, left to right.
func (b Body) Bottom() collide.Segment {
	return collide.NewSegment(b.BottomLeft(), b.BottomRight())
}

// Left returns the left edge, top to bottom.
func (b Body) Left() collide.Segment {
	return collide.NewSegment(b.TopLeft(), b.BottomLeft())
}

// Edge returns the edge on side s.
func (b Body) Edge(s Side) collide.Segment {
	switch s {
	case Top:
		return b.Top()
	case Right:
		return b.Right()
	case Bottom:
		return b.Bottom()
	default:
		return b.Left()
	}
}

// Edges returns all four edges indexed by Side.
func (b Body) Edges() [4]collide.Segment {
	return [4]collide.Segment{b.Top(), b.Right(), b.Bottom(), b.Left()}
}

// Path returns the segment travelled by the center during the last Offset.
// It is degenerate if the body has not moved.
func (b Body) Path() collide.Segment {
	return collide.NewSegment(b.PreviousCenter, b.Center)
}

// String implements fmt.Stringer.
func (b Body) String() string {
	return fmt.Sprintf("body(center=%g,%g size=%g,%g)", b.Center.X, b.Center.Y, b.Size.X, b.Size.Y)
}

// Ensure Body satisfies both box capabilities
var (
	_ core.Box         = Body{}
	_ core.PreviousBox = Body{}
)
