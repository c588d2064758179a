package classic

import (
	"math"

	"github.com/vovakirdan/brick-arcade/internal/config"
	"github.com/vovakirdan/brick-arcade/internal/core"
	"github.com/vovakirdan/brick-arcade/internal/physics"
)

// Paddle is the player-controlled bar at the bottom of the arena.
type Paddle struct {
	physics.Body
	Speed float64
}

// NewPaddle centres a paddle horizontally, cfg.BottomOffset above the floor.
func NewPaddle(cfg config.ClassicPaddle, arena physics.Arena) Paddle {
	return Paddle{
		Body: physics.Body{
			Pos:   physics.V(arena.W/2-cfg.Width/2, arena.H-cfg.BottomOffset),
			Shape: physics.Rect(cfg.Width, cfg.Height),
		},
		Speed: cfg.Speed,
	}
}

// Update moves the paddle and clamps it inside the arena.
// When both directions are held the right offset replaces the left one.
func (p *Paddle) Update(dt float64, left, right bool, arena physics.Arena) {
	dx := 0.0
	if left {
		dx = -p.Speed * dt
	}
	if right {
		dx = p.Speed * dt
	}
	p.Pos.X = core.Clamp(p.Pos.X+dx, 0, arena.W-p.Shape.W)
}

// Ball bounces off the side and top walls and is lost through the bottom.
type Ball struct {
	physics.Body
}

// NewBall returns a motionless ball of radius r.
func NewBall(r float64) Ball {
	return Ball{Body: physics.Body{Shape: physics.Circle(r)}}
}

// Update integrates the ball and applies the wall bounces.
func (b *Ball) Update(dt float64, arena physics.Arena) {
	b.Integrate(dt)
	arena.BounceWalls(&b.Body)
}

// IsLost reports whether the ball has fully passed the bottom edge.
func (b Ball) IsLost(arena physics.Arena) bool {
	return arena.Below(b.Body)
}

// GlueTo parks the ball on top of the paddle's centre.
func (b *Ball) GlueTo(p Paddle) {
	b.Pos = physics.V(p.Pos.X+p.Shape.W/2, p.Pos.Y-b.Shape.R-1)
	b.Vel = physics.Vec2{}
}

// Launch sends the ball up and to the right.
func (b *Ball) Launch(speed, xRatio float64) {
	b.Vel = physics.V(speed*xRatio, -speed)
}

// BounceOnPaddle redirects the ball upward at an angle that depends on where
// it struck the paddle. The speed is unchanged.
func (b *Ball) BounceOnPaddle(paddleX, paddleW float64) {
	speed := b.Speed()
	a := physics.Rad(physics.BounceAngle(b.Pos.X, paddleX, paddleW))
	b.Vel = physics.V(speed*math.Sin(a), -math.Abs(speed*math.Cos(a)))
}

// IncreaseSpeed scales the speed by m, keeping the direction.
func (b *Ball) IncreaseSpeed(m float64) {
	speed := b.Speed()
	if speed == 0 {
		return
	}
	b.Vel = physics.Rescale(b.Vel, speed*m)
}

// Brick is a one-hit brick worth a fixed number of points.
type Brick struct {
	physics.Body
	Points    int
	Color     core.Color
	destroyed bool
}

// Destroy removes the brick from play. It cannot be undone.
func (b *Brick) Destroy() {
	b.destroyed = true
}

// Destroyed reports whether the brick has been hit.
func (b Brick) Destroyed() bool {
	return b.destroyed
}

// rowColors cycles down the grid, warm at the top.
var rowColors = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorBlue,
	core.ColorMagenta,
}

// buildGrid lays out a fresh brick grid. Higher rows are worth more.
func buildGrid(grid config.GridConfig, arenaW float64) []Brick {
	bricks := make([]Brick, 0, grid.Rows*grid.Cols)
	for row := range grid.Rows {
		for col := range grid.Cols {
			x, y := grid.CellPos(arenaW, row, col)
			bricks = append(bricks, Brick{
				Body: physics.Body{
					Pos:   physics.V(x, y),
					Shape: physics.Rect(grid.BrickWidth, grid.BrickHeight),
				},
				Points: (grid.Rows - row) * 10,
				Color:  rowColors[row%len(rowColors)],
			})
		}
	}
	return bricks
}
