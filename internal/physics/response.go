package physics

import "math"

// MaxBounceAngle is the steepest deflection from vertical, in degrees.
const MaxBounceAngle = 60.0

// DepenetrationSlop is added to the penetration depth when pushing a body
// out of a contact, so the same contact does not trigger next frame.
const DepenetrationSlop = 0.5

// Reflect mirrors v across the unit normal n.
func Reflect(v, n Vec2) Vec2 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// BounceAngle maps where hitX falls along a surface starting at x with
// width w to a deflection angle in degrees. The left edge maps to -60,
// the centre to 0 and the right edge to +60.
func BounceAngle(hitX, x, w float64) float64 {
	if w <= 0 {
		return 0
	}
	rel := clamp((hitX-x)/w, 0, 1)
	return (rel*2 - 1) * MaxBounceAngle
}

// Depenetrate pushes b out of a contact along its normal.
func Depenetrate(b *Body, c Contact, slop float64) {
	b.Pos = b.Pos.Add(c.Normal.Scale(c.Penetration + slop))
}

// Rescale sets the magnitude of v to speed, keeping its direction.
// The zero vector is returned unchanged.
func Rescale(v Vec2, speed float64) Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(speed / l)
}

// Deg converts radians to degrees.
func Deg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Rad converts degrees to radians.
func Rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Bounce reflects b's velocity across the contact normal when b is moving
// into the surface, then pushes it out of the contact.
func Bounce(b *Body, c Contact, slop float64) {
	if b.Vel.Dot(c.Normal) < 0 {
		b.Vel = Reflect(b.Vel, c.Normal)
	}
	Depenetrate(b, c, slop)
}
