package core

// Box is anything that can report its current axis-aligned extent.
// Implementations must keep BottomLeft <= TopRight on both axes.
type Box interface {
	BottomLeft() Vec2
	TopRight() Vec2
}

// PreviousBox is implemented by boxes that remember their extent from the
// previous simulation step, for swept collision checks.
type PreviousBox interface {
	PreviousBottomLeft() Vec2
	PreviousTopRight() Vec2
}

// Previous returns the prior extent of b as a Box so it can be fed to Overlaps.
func Previous(b PreviousBox) Box {
	return previousBox{b}
}

type previousBox struct {
	b PreviousBox
}

func (p previousBox) BottomLeft() Vec2 { return p.b.PreviousBottomLeft() }
func (p previousBox) TopRight() Vec2   { return p.b.PreviousTopRight() }

// Extent is a plain Box given by its two corners.
type Extent struct {
	Min, Max Vec2
}

// BottomLeft implements Box.
func (e Extent) BottomLeft() Vec2 { return e.Min }

// TopRight implements Box.
func (e Extent) TopRight() Vec2 { return e.Max }

// Overlaps reports whether a and b overlap on both axes.
// Inequalities are strict: boxes that only share an edge or a corner do not
// overlap. Any NaN coordinate makes the result false.
func Overlaps(a, b Box) bool {
	aMin, aMax := a.BottomLeft(), a.TopRight()
	bMin, bMax := b.BottomLeft(), b.TopRight()

	// Collide on X axis
	if !(aMin.X < bMax.X && aMax.X > bMin.X) {
		return false
	}
	// Collide on Y axis
	return aMin.Y < bMax.Y && aMax.Y > bMin.Y
}

// Bounds returns the component-wise minimum and maximum of a and b.
func Bounds(a, b Vec2) (min, max Vec2) {
	min, max = a, b
	if b.X < a.X {
		min.X, max.X = b.X, a.X
	}
	if b.Y < a.Y {
		min.Y, max.Y = b.Y, a.Y
	}
	return min, max
}

// BoundsOverlap reports whether the closed ranges [aMin, aMax] and
// [bMin, bMax] intersect on both axes. Unlike Overlaps, touching counts.
func BoundsOverlap(aMin, aMax, bMin, bMax Vec2) bool {
	return aMin.X <= bMax.X &&
		aMax.X >= bMin.X &&
		aMin.Y <= bMax.Y &&
		aMax.Y >= bMin.Y
}
