package collide

import (
	"fmt"

	"github.com/vovakirdan/notsure/internal/core"
)

// Kind tags the variant held by an Intersection.
type Kind uint8

const (
	// KindPoint is a single crossing point.
	KindPoint Kind = iota
	// KindLine is a collinear overlapping sub-segment.
	KindLine
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindLine:
		return "line"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Intersection is where two segments meet: either a single Point or, for
// coincident parallel segments, the overlapping Line. Only the field matching
// Kind is meaningful.
type Intersection struct {
	Kind  Kind
	Point core.Vec2
	Line  Segment
}

// PointAt returns a point intersection.
func PointAt(p core.Vec2) Intersection {
	return Intersection{Kind: KindPoint, Point: p}
}

// Overlap returns a line intersection spanning from start to end.
func Overlap(start, end core.Vec2) Intersection {
	return Intersection{Kind: KindLine, Line: NewSegment(start, end)}
}

// IsPoint reports whether the intersection is a single point.
func (i Intersection) IsPoint() bool {
	return i.Kind == KindPoint
}

// IsLine reports whether the intersection is an overlapping sub-segment.
func (i Intersection) IsLine() bool {
	return i.Kind == KindLine
}

// Ends returns the two ends of the intersection. A point returns itself twice.
func (i Intersection) Ends() (core.Vec2, core.Vec2) {
	if i.Kind == KindLine {
		return i.Line.Start, i.Line.End
	}
	return i.Point, i.Point
}

// String implements fmt.Stringer.
func (i Intersection) String() string {
	if i.Kind == KindLine {
		return "line " + i.Line.String()
	}
	return fmt.Sprintf("point (%g,%g)", i.Point.X, i.Point.Y)
}

// IntersectionPoint computes where s and o meet.
//
// The caller must have established s.IntersectsWith(o). Otherwise the result
// is meaningless (possibly NaN) but the call never panics.
//
// Degenerate operands are treated as points and returned as such. Coincident
// segments that are both vertical, or share an exactly equal slope, produce a
// Line over their common range; every other pair produces a Point.
//
// Collinear segments whose float32 slopes differ only by rounding are not
// ParallelTo each other, so they fall through to the line equations and get
// an unreliable Point instead of their shared range. Callers working with
// such input should check NearlyParallel first.
func (s Segment) IntersectionPoint(o Segment) Intersection {
	switch {
	case s.Degenerate():
		return PointAt(s.Start)
	case o.Degenerate():
		return PointAt(o.Start)
	}

	sv, ov := s.Vertical(), o.Vertical()
	switch {
	case sv && ov:
		return sharedRange(s, o, axisY)
	case sv:
		return PointAt(o.at(s.Start.X))
	case ov:
		return PointAt(s.at(o.Start.X))
	case s.ParallelTo(o):
		return sharedRange(s, o, axisX)
	}

	x := (o.intercept - s.intercept) / (s.slope - o.slope)
	return PointAt(s.at(x))
}

// at evaluates the segment's line equation at x. Meaningless for vertical
// segments.
func (s Segment) at(x float32) core.Vec2 {
	return core.Vec2{X: x, Y: float32(s.slope*x) + s.intercept}
}

type axis uint8

const (
	axisX axis = iota
	axisY
)

func (a axis) of(v core.Vec2) float32 {
	if a == axisY {
		return v.Y
	}
	return v.X
}

// ordered returns the segment's endpoints sorted along a.
func ordered(s Segment, a axis) (lo, hi core.Vec2) {
	if a.of(s.End) < a.of(s.Start) {
		return s.End, s.Start
	}
	return s.Start, s.End
}

// sharedRange returns the overlap of two collinear segments along a.
// Ties resolve to s's endpoints.
func sharedRange(s, o Segment, a axis) Intersection {
	sLo, sHi := ordered(s, a)
	oLo, oHi := ordered(o, a)

	start := sLo
	if a.of(oLo) > a.of(sLo) {
		start = oLo
	}
	end := sHi
	if a.of(oHi) < a.of(sHi) {
		end = oHi
	}
	return Overlap(start, end)
}
