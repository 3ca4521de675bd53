package core

// Vec2 is a 2-D vector of single-precision coordinates.
// It is a value type: two vectors with equal components are interchangeable.
type Vec2 struct {
	X, Y float32
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Div returns v with both components divided by s.
// Division by zero follows IEEE 754 (Inf or NaN components).
func (v Vec2) Div(s float32) Vec2 {
	return Vec2{X: v.X / s, Y: v.Y / s}
}

// Cross returns the z component of the 3-D cross product of v and o.
// Negative means o lies clockwise of v.
func (v Vec2) Cross(o Vec2) float32 {
	return v.X*o.Y - o.X*v.Y
}
