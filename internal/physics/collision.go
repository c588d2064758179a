package physics

import "math"

// Contact describes how a circle overlaps a box.
// Normal is unit length and points from the box toward the circle.
type Contact struct {
	Normal      Vec2
	Penetration float64
}

// AABBOverlap reports whether two boxes overlap. Touching edges count.
func AABBOverlap(a, b AABB) bool {
	return !(a.Right < b.Left || a.Left > b.Right || a.Bottom < b.Top || a.Top > b.Bottom)
}

// CircleCircleHit reports whether two circles intersect.
func CircleCircleHit(c1 Vec2, r1 float64, c2 Vec2, r2 float64) bool {
	if r1 <= 0 || r2 <= 0 {
		return false
	}
	return c1.Sub(c2).Len() < r1+r2
}

// ClosestPoint clamps p into the box per axis.
func ClosestPoint(p Vec2, box AABB) Vec2 {
	return Vec2{
		X: clamp(p.X, box.Left, box.Right),
		Y: clamp(p.Y, box.Top, box.Bottom),
	}
}

// CircleRectHit reports whether a circle intersects a box.
func CircleRectHit(c Vec2, r float64, box AABB) bool {
	if degenerateCircleBox(r, box) {
		return false
	}
	return ClosestPoint(c, box).Sub(c).LenSq() < r*r
}

// CircleRectNormal computes the contact between a circle and a box.
// ok is false when they do not intersect or the geometry is degenerate.
//
// When the centre lies inside the box the normal points out of the nearest
// side (checked left, right, top, bottom) and the penetration is r+1.
func CircleRectNormal(c Vec2, r float64, box AABB) (contact Contact, ok bool) {
	if degenerateCircleBox(r, box) {
		return Contact{}, false
	}

	closest := ClosestPoint(c, box)
	d := c.Sub(closest)
	distSq := d.LenSq()
	if distSq >= r*r {
		return Contact{}, false
	}

	if distSq == 0 {
		left := c.X - box.Left
		right := box.Right - c.X
		top := c.Y - box.Top
		bottom := box.Bottom - c.Y
		minDist := math.Min(math.Min(left, right), math.Min(top, bottom))

		var n Vec2
		switch minDist {
		case left:
			n = Vec2{X: -1}
		case right:
			n = Vec2{X: 1}
		case top:
			n = Vec2{Y: -1}
		default:
			n = Vec2{Y: 1}
		}
		return Contact{Normal: n, Penetration: r + 1}, true
	}

	dist := math.Sqrt(distSq)
	return Contact{Normal: d.Scale(1 / dist), Penetration: r - dist}, true
}

// Collide reports whether two bodies intersect, dispatching on the pair of
// shape kinds.
func Collide(a, b Body) bool {
	if a.Shape.Degenerate() || b.Shape.Degenerate() {
		return false
	}

	switch {
	case a.Shape.Kind == ShapeRect && b.Shape.Kind == ShapeRect:
		return AABBOverlap(a.AABB(), b.AABB())
	case a.Shape.Kind == ShapeCircle && b.Shape.Kind == ShapeCircle:
		if !AABBOverlap(a.AABB(), b.AABB()) {
			return false
		}
		return CircleCircleHit(a.Pos, a.Shape.R, b.Pos, b.Shape.R)
	case a.Shape.Kind == ShapeCircle && b.Shape.Kind == ShapeRect:
		return CircleRectHit(a.Pos, a.Shape.R, b.AABB())
	case a.Shape.Kind == ShapeRect && b.Shape.Kind == ShapeCircle:
		return CircleRectHit(b.Pos, b.Shape.R, a.AABB())
	default:
		return false
	}
}

func degenerateCircleBox(r float64, box AABB) bool {
	return r <= 0 || box.Width() <= 0 || box.Height() <= 0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
