package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAABBOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a, b     AABB
		expected bool
	}{
		{"overlapping", AABB{0, 0, 10, 10}, AABB{5, 5, 15, 15}, true},
		{"contained", AABB{0, 0, 10, 10}, AABB{2, 2, 4, 4}, true},
		{"touching right edge", AABB{0, 0, 10, 10}, AABB{10, 0, 20, 10}, true},
		{"touching bottom edge", AABB{0, 0, 10, 10}, AABB{0, 10, 10, 20}, true},
		{"left of", AABB{0, 0, 10, 10}, AABB{11, 0, 20, 10}, false},
		{"above", AABB{0, 0, 10, 10}, AABB{0, -20, 10, -1}, false},
		{"diagonal apart", AABB{0, 0, 10, 10}, AABB{11, 11, 20, 20}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AABBOverlap(tt.a, tt.b))
		})
	}
}

func TestAABBOverlapSymmetric(t *testing.T) {
	boxes := []AABB{
		{0, 0, 10, 10},
		{5, 5, 15, 15},
		{10, 0, 20, 10},
		{-5, -5, 0, 0},
		{30, 30, 31, 31},
		{2, 2, 3, 3},
		{0, 10, 10, 10},
	}
	for i, a := range boxes {
		for j, b := range boxes {
			assert.Equal(t, AABBOverlap(a, b), AABBOverlap(b, a), "boxes %d and %d", i, j)
		}
	}
}

func TestCircleCircleHit(t *testing.T) {
	assert.True(t, CircleCircleHit(V(0, 0), 5, V(8, 0), 5))
	assert.False(t, CircleCircleHit(V(0, 0), 5, V(10, 0), 5), "touching is not a hit")
	assert.False(t, CircleCircleHit(V(0, 0), 0, V(0, 0), 5), "zero radius")
}

func TestClosestPoint(t *testing.T) {
	box := AABB{10, 10, 20, 20}

	assert.Equal(t, V(10, 15), ClosestPoint(V(0, 15), box))
	assert.Equal(t, V(20, 20), ClosestPoint(V(30, 30), box))
	assert.Equal(t, V(12, 13), ClosestPoint(V(12, 13), box))
}

func TestCircleRectHitConsistency(t *testing.T) {
	box := AABB{100, 100, 172, 128}
	r := 8.0

	for x := 80.0; x <= 195; x += 2.5 {
		for y := 80.0; y <= 150; y += 2.5 {
			c := V(x, y)
			if !CircleRectHit(c, r, box) {
				continue
			}
			p := ClosestPoint(c, box)
			assert.True(t, box.Contains(p), "closest point %v outside box", p)
			assert.Less(t, p.Sub(c).Len(), r, "closest point %v too far from %v", p, c)
		}
	}
}

func TestCircleRectHitDegenerate(t *testing.T) {
	assert.False(t, CircleRectHit(V(5, 5), 8, AABB{5, 5, 5, 5}), "zero-size box")
	assert.False(t, CircleRectHit(V(5, 5), 0, AABB{0, 0, 10, 10}), "zero radius")

	_, ok := CircleRectNormal(V(5, 5), 8, AABB{0, 0, 0, 10})
	assert.False(t, ok)
}

func TestCircleRectNormalOutside(t *testing.T) {
	box := AABB{100, 100, 200, 130}

	tests := []struct {
		name   string
		center Vec2
		normal Vec2
		pen    float64
	}{
		{"from above", V(150, 95), V(0, -1), 3},
		{"from below", V(150, 136), V(0, 1), 2},
		{"from left", V(94, 115), V(-1, 0), 2},
		{"from right", V(207, 115), V(1, 0), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := CircleRectNormal(tt.center, 8, box)
			require.True(t, ok)
			assert.InDelta(t, tt.normal.X, c.Normal.X, 1e-9)
			assert.InDelta(t, tt.normal.Y, c.Normal.Y, 1e-9)
			assert.InDelta(t, tt.pen, c.Penetration, 1e-9)
		})
	}
}

func TestCircleRectNormalCorner(t *testing.T) {
	box := AABB{0, 0, 10, 10}
	c, ok := CircleRectNormal(V(13, 14), 8, box)
	require.True(t, ok)

	assert.InDelta(t, 0.6, c.Normal.X, 1e-9)
	assert.InDelta(t, 0.8, c.Normal.Y, 1e-9)
	assert.InDelta(t, 3, c.Penetration, 1e-9)
	assert.InDelta(t, 1, c.Normal.Len(), 1e-9)
}

func TestCircleRectNormalInside(t *testing.T) {
	box := AABB{0, 0, 100, 40}

	tests := []struct {
		name   string
		center Vec2
		normal Vec2
	}{
		{"nearest left", V(3, 20), V(-1, 0)},
		{"nearest right", V(98, 20), V(1, 0)},
		{"nearest top", V(50, 2), V(0, -1)},
		{"nearest bottom", V(50, 39), V(0, 1)},
		{"left beats top on tie", V(5, 5), V(-1, 0)},
		{"right beats bottom on tie", V(95, 35), V(1, 0)},
		{"top beats bottom on tie", V(50, 20), V(0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := CircleRectNormal(tt.center, 8, box)
			require.True(t, ok)
			assert.Equal(t, tt.normal, c.Normal)
			assert.Equal(t, 9.0, c.Penetration)
		})
	}
}

func TestCircleRectNormalMiss(t *testing.T) {
	_, ok := CircleRectNormal(V(150, 80), 8, AABB{100, 100, 200, 130})
	assert.False(t, ok)
}

func TestCollideDispatch(t *testing.T) {
	rectA := Body{Pos: V(0, 0), Shape: Rect(10, 10)}
	rectB := Body{Pos: V(10, 10), Shape: Rect(10, 10)}
	rectFar := Body{Pos: V(50, 50), Shape: Rect(10, 10)}
	ball := Body{Pos: V(15, 5), Shape: Circle(6)}
	ballFar := Body{Pos: V(30, 30), Shape: Circle(6)}
	ballCorner := Body{Pos: V(15, 15), Shape: Circle(6)}

	tests := []struct {
		name     string
		a, b     Body
		expected bool
	}{
		{"rect rect touching", rectA, rectB, true},
		{"rect rect apart", rectA, rectFar, false},
		{"circle rect", ball, rectA, true},
		{"rect circle", rectA, ball, true},
		{"circle rect apart", ballFar, rectA, false},
		// AABBs overlap but the corner is outside the radius.
		{"circle near corner", ballCorner, rectA, false},
		{"circle circle", ball, Body{Pos: V(25, 5), Shape: Circle(6)}, true},
		{"circle circle boxes overlap only", Body{Pos: V(0, 0), Shape: Circle(5)}, Body{Pos: V(9, 9), Shape: Circle(5)}, false},
		{"degenerate rect", ball, Body{Pos: V(10, 0), Shape: Rect(0, 10)}, false},
		{"degenerate circle", Body{Pos: V(5, 5), Shape: Circle(0)}, rectA, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Collide(tt.a, tt.b))
		})
	}
}

func TestBodyAABB(t *testing.T) {
	r := Body{Pos: V(10, 20), Shape: Rect(30, 40)}
	assert.Equal(t, AABB{10, 20, 40, 60}, r.AABB())
	assert.Equal(t, V(25, 40), r.Center())

	c := Body{Pos: V(10, 20), Shape: Circle(5)}
	assert.Equal(t, AABB{5, 15, 15, 25}, c.AABB())
	assert.Equal(t, V(10, 20), c.Center())
}

func TestArenaBounceWalls(t *testing.T) {
	arena := Arena{W: 800, H: 600}

	tests := []struct {
		name string
		in   Body
		pos  Vec2
		vel  Vec2
	}{
		{"left wall", Body{Pos: V(3, 300), Vel: V(-100, 50), Shape: Circle(8)}, V(8, 300), V(100, 50)},
		{"right wall", Body{Pos: V(797, 300), Vel: V(100, 50), Shape: Circle(8)}, V(792, 300), V(-100, 50)},
		{"top wall", Body{Pos: V(400, 2), Vel: V(10, -200), Shape: Circle(8)}, V(400, 8), V(10, 200)},
		{"bottom is open", Body{Pos: V(400, 605), Vel: V(10, 200), Shape: Circle(8)}, V(400, 605), V(10, 200)},
		{"inside", Body{Pos: V(400, 300), Vel: V(10, 20), Shape: Circle(8)}, V(400, 300), V(10, 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.in
			arena.BounceWalls(&b)
			assert.Equal(t, tt.pos, b.Pos)
			assert.Equal(t, tt.vel, b.Vel)
		})
	}
}

func TestArenaBelow(t *testing.T) {
	arena := Arena{W: 800, H: 600}
	assert.False(t, arena.Below(Body{Pos: V(0, 608), Shape: Circle(8)}))
	assert.True(t, arena.Below(Body{Pos: V(0, 608.5), Shape: Circle(8)}))
}
