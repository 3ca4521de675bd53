// Package collide implements exact intersection tests between finite 2-D line
// segments.
//
// All operations are pure functions of their inputs and are safe to call
// from any number of goroutines. Arithmetic follows IEEE 754: nothing here
// returns an error or panics, but NaN inputs produce unspecified results.
package collide

import (
	"fmt"
	"math"

	"github.com/vovakirdan/notsure/internal/core"
)

// Tolerance is the absolute threshold below which a cross product is treated
// as zero, i.e. a point is considered to lie on a segment's line.
//
// The threshold is not scale-aware: coordinates far from unit magnitude are
// misclassified (large ones report near-collinear points as off the line,
// tiny ones report everything as on it).
const Tolerance float32 = 1e-5

var nan32 = float32(math.NaN())

// Segment is a finite line segment between two endpoints.
// The zero value is a degenerate segment at the origin.
type Segment struct {
	Start, End core.Vec2

	// NaN if the segment is vertical.
	slope     float32
	intercept float32
}

// NewSegment builds the segment from start to end and precomputes its slope
// and y-intercept. Vertical segments (start.X == end.X) get NaN for both.
func NewSegment(start, end core.Vec2) Segment {
	s := Segment{Start: start, End: end, slope: nan32, intercept: nan32}

	dx := end.X - start.X
	if dx == 0 {
		return s
	}
	s.slope = (end.Y - start.Y) / dx
	s.intercept = start.Y - float32(s.slope*start.X)
	return s
}

// Slope returns rise over run, or NaN for a vertical segment.
func (s Segment) Slope() float32 {
	return s.slope
}

// Intercept returns the y-intercept of the segment's line, or NaN for a
// vertical segment.
func (s Segment) Intercept() float32 {
	return s.intercept
}

// Vertical reports whether both endpoints share an X coordinate.
func (s Segment) Vertical() bool {
	return s.Start.X == s.End.X
}

// Horizontal reports whether both endpoints share a Y coordinate.
func (s Segment) Horizontal() bool {
	return s.Start.Y == s.End.Y
}

// Degenerate reports whether the segment has zero length. A degenerate
// segment behaves as a single point.
func (s Segment) Degenerate() bool {
	return s.Start == s.End
}

// Direction returns End - Start.
func (s Segment) Direction() core.Vec2 {
	return s.End.Sub(s.Start)
}

// Bounds returns the axis-aligned extent of the segment.
func (s Segment) Bounds() (min, max core.Vec2) {
	return core.Bounds(s.Start, s.End)
}

// ParallelTo reports whether s and o are both vertical or have exactly equal
// slopes. The comparison is exact, so directions that differ only by rounding
// are not parallel; see NearlyParallel.
func (s Segment) ParallelTo(o Segment) bool {
	return (s.Vertical() && o.Vertical()) || s.slope == o.slope
}

// NearlyParallel reports whether the unit directions of s and o have a cross
// product below Tolerance. Degenerate segments have no direction and are
// never nearly parallel.
func (s Segment) NearlyParallel(o Segment) bool {
	a, b := unit(s.Direction()), unit(o.Direction())
	if a == (core.Vec2{}) || b == (core.Vec2{}) {
		return false
	}
	return abs32(a.Cross(b)) < Tolerance
}

// IntersectsWith reports whether s and o touch or cross. Shared endpoints,
// T-junctions and collinear overlaps all count.
func (s Segment) IntersectsWith(o Segment) bool {
	sMin, sMax := s.Bounds()
	oMin, oMax := o.Bounds()

	return core.BoundsOverlap(sMin, sMax, oMin, oMax) &&
		s.touchesOrCrosses(o) &&
		o.touchesOrCrosses(s)
}

// cross returns the orientation of p relative to the line through s.
func (s Segment) cross(p core.Vec2) float32 {
	return s.Direction().Cross(p.Sub(s.Start))
}

// HasPoint reports whether p lies on the infinite line through s,
// within Tolerance.
func (s Segment) HasPoint(p core.Vec2) bool {
	return abs32(s.cross(p)) < Tolerance
}

func (s Segment) rightOf(p core.Vec2) bool {
	return s.cross(p) < 0
}

// touchesOrCrosses reports whether o has an endpoint on the line through s,
// or o's endpoints lie on opposite sides of it.
func (s Segment) touchesOrCrosses(o Segment) bool {
	return s.HasPoint(o.Start) ||
		s.HasPoint(o.End) ||
		s.rightOf(o.Start) != s.rightOf(o.End)
}

// String implements fmt.Stringer.
func (s Segment) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", s.Start.X, s.Start.Y, s.End.X, s.End.Y)
}

func unit(v core.Vec2) core.Vec2 {
	l := float32(math.Hypot(float64(v.X), float64(v.Y)))
	if l == 0 {
		return core.Vec2{}
	}
	return v.Div(l)
}

func abs32(f float32) float32 {
	return float32(math.Abs(float64(f)))
}
