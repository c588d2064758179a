// Package physics provides the 2D shapes, collision tests and collision
// responses shared by both game modes.
//
// All coordinates are world units with Y growing downward. Nothing in this
// package allocates per call or keeps state between calls.
package physics

import "math"

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len returns the length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length.
// The zero vector is returned unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// FromAngle returns the unit vector for an angle in radians.
func FromAngle(rad float64) Vec2 {
	return Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
}
