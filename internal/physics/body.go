package physics

import "math"

// ShapeKind discriminates the Shape variants.
type ShapeKind uint8

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
)

// String returns the shape kind name.
func (k ShapeKind) String() string {
	switch k {
	case ShapeRect:
		return "rect"
	case ShapeCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// Shape describes a body's geometry. W and H are used for rectangles,
// R for circles; the other fields are ignored.
type Shape struct {
	Kind ShapeKind
	W, H float64
	R    float64
}

// Rect returns an axis-aligned rectangle shape.
func Rect(w, h float64) Shape {
	return Shape{Kind: ShapeRect, W: w, H: h}
}

// Circle returns a circle shape.
func Circle(r float64) Shape {
	return Shape{Kind: ShapeCircle, R: r}
}

// Degenerate reports whether the shape has no area.
func (s Shape) Degenerate() bool {
	if s.Kind == ShapeCircle {
		return s.R <= 0
	}
	return s.W <= 0 || s.H <= 0
}

// Body is a moving shape. Rectangles are positioned by their top-left
// corner, circles by their centre.
type Body struct {
	Pos      Vec2
	Vel      Vec2
	Rotation float64 // degrees
	Shape    Shape
}

// Integrate advances the position by velocity * dt.
func (b *Body) Integrate(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// Center returns the geometric centre of the body.
func (b Body) Center() Vec2 {
	if b.Shape.Kind == ShapeCircle {
		return b.Pos
	}
	return Vec2{X: b.Pos.X + b.Shape.W/2, Y: b.Pos.Y + b.Shape.H/2}
}

// AABB returns the body's axis-aligned bounding box.
func (b Body) AABB() AABB {
	if b.Shape.Kind == ShapeCircle {
		r := b.Shape.R
		return AABB{Left: b.Pos.X - r, Top: b.Pos.Y - r, Right: b.Pos.X + r, Bottom: b.Pos.Y + r}
	}
	return AABB{Left: b.Pos.X, Top: b.Pos.Y, Right: b.Pos.X + b.Shape.W, Bottom: b.Pos.Y + b.Shape.H}
}

// Speed returns the magnitude of the body's velocity.
func (b Body) Speed() float64 {
	return b.Vel.Len()
}

// AABB is an axis-aligned box with Right >= Left and Bottom >= Top.
type AABB struct {
	Left, Top, Right, Bottom float64
}

// Width returns the box width.
func (a AABB) Width() float64 { return a.Right - a.Left }

// Height returns the box height.
func (a AABB) Height() float64 { return a.Bottom - a.Top }

// Center returns the box centre.
func (a AABB) Center() Vec2 {
	return Vec2{X: (a.Left + a.Right) / 2, Y: (a.Top + a.Bottom) / 2}
}

// Contains reports whether p lies within the closed box.
func (a AABB) Contains(p Vec2) bool {
	return p.X >= a.Left && p.X <= a.Right && p.Y >= a.Top && p.Y <= a.Bottom
}

// Arena is the playfield. Left, right and top are walls; the bottom is open.
type Arena struct {
	W, H float64
}

// BounceWalls reflects a circle body off the side and top walls and clamps
// it back inside. The bottom edge is left open.
func (a Arena) BounceWalls(b *Body) {
	r := b.Shape.R
	if b.Pos.X-r < 0 {
		b.Pos.X = r
		b.Vel.X = math.Abs(b.Vel.X)
	} else if b.Pos.X+r > a.W {
		b.Pos.X = a.W - r
		b.Vel.X = -math.Abs(b.Vel.X)
	}
	if b.Pos.Y-r < 0 {
		b.Pos.Y = r
		b.Vel.Y = math.Abs(b.Vel.Y)
	}
}

// Below reports whether a circle body has fully left through the bottom.
func (a Arena) Below(b Body) bool {
	return b.Pos.Y-b.Shape.R > a.H
}
