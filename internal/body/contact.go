package body

import (
	"github.com/vovakirdan/notsure/internal/collide"
	"github.com/vovakirdan/notsure/internal/core"
)

// EdgeHit is an intersection between one edge of a body and a segment.
type EdgeHit struct {
	Side         Side
	Intersection collide.Intersection
}

// EdgeIntersections reports, for each of b's edges indexed by Side, whether
// it touches or crosses any edge of other.
func (b Body) EdgeIntersections(other Body) [4]bool {
	var ret [4]bool

	theirs := other.Edges()
	for i, mine := range b.Edges() {
		for _, e := range theirs {
			if mine.IntersectsWith(e) {
				ret[i] = true
				break
			}
		}
	}
	return ret
}

// IntersectSegment returns the intersection of seg with every edge of b that
// it touches, in Side order.
func (b Body) IntersectSegment(seg collide.Segment) []EdgeHit {
	var hits []EdgeHit
	for _, side := range Sides {
		e := b.Edge(side)
		if e.IntersectsWith(seg) {
			hits = append(hits, EdgeHit{Side: side, Intersection: e.IntersectionPoint(seg)})
		}
	}
	return hits
}

// Overlaps reports whether b and other currently overlap.
func (b Body) Overlaps(other Body) bool {
	return core.Overlaps(b, other)
}

// Swept reports whether b collided with other at any point of its last
// move: the current or previous extents overlap, or b's center path crossed
// one of other's edges.
func (b Body) Swept(other Body) bool {
	if core.Overlaps(b, other) || core.Overlaps(core.Previous(b), core.Previous(other)) {
		return true
	}

	path := b.Path()
	if path.Degenerate() {
		return false
	}
	for _, e := range other.Edges() {
		if path.IntersectsWith(e) {
			return true
		}
	}
	return false
}
