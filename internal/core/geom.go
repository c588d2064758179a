// Package core provides the frame-level types shared by games and hosts:
// input frames, difficulty, game state, draw lists and the terminal screen
// buffer. It has no external dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package core

import "cmp"

// Rect is a block of screen cells. X and Y address the top-left cell.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect builds a Rect from its top-left cell and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersect returns the cells shared by r and o. The result is Empty when
// they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Clamp limits v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
