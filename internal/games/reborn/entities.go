package reborn

import (
	"math"

	"github.com/vovakirdan/brick-arcade/internal/config"
	"github.com/vovakirdan/brick-arcade/internal/core"
	"github.com/vovakirdan/brick-arcade/internal/physics"
)

// ShotType is the projectile variant.
type ShotType int

const (
	ShotNormal ShotType = iota
	ShotPiercing
	ShotExplosive
)

// String returns the shot name.
func (s ShotType) String() string {
	switch s {
	case ShotPiercing:
		return "Piercing"
	case ShotExplosive:
		return "Explosive"
	default:
		return "Normal"
	}
}

// Cost returns the ammo cost of a shot type.
func (s ShotType) Cost(shots config.RebornShots) int {
	switch s {
	case ShotPiercing:
		return shots.PiercingCost
	case ShotExplosive:
		return shots.ExplosiveCost
	default:
		return shots.NormalCost
	}
}

func (s ShotType) color() core.Color {
	switch s {
	case ShotPiercing:
		return core.ColorMagenta
	case ShotExplosive:
		return core.ColorOrange
	default:
		return core.ColorCyan
	}
}

// Brick is a multi-hit brick. Its colour follows the remaining HP.
type Brick struct {
	physics.Body
	HP        int
	MaxHP     int
	Color     core.Color
	destroyed bool
}

// NewBrick creates a brick with full HP.
func NewBrick(x, y, w, h float64, hp int) Brick {
	b := Brick{
		Body: physics.Body{
			Pos:   physics.V(x, y),
			Shape: physics.Rect(w, h),
		},
		HP:    hp,
		MaxHP: hp,
	}
	b.recolor()
	return b
}

// TakeDamage removes n HP. At zero the brick is destroyed for good.
func (b *Brick) TakeDamage(n int) {
	if b.destroyed {
		return
	}
	b.HP -= n
	if b.HP <= 0 {
		b.HP = 0
		b.destroyed = true
		return
	}
	b.recolor()
}

// Destroyed reports whether the brick has no HP left.
func (b Brick) Destroyed() bool {
	return b.destroyed
}

func (b *Brick) recolor() {
	ratio := float64(b.HP) / float64(b.MaxHP)
	switch {
	case ratio > 0.66:
		b.Color = core.ColorRed
	case ratio > 0.33:
		b.Color = core.ColorYellow
	default:
		b.Color = core.ColorGreen
	}
}

// brickHP returns the starting HP for a grid row. Top rows are tougher.
func brickHP(row, rows, offset int, sc config.RebornScoring) int {
	base := 1 + (rows-1-row)/2
	return core.Clamp(base+offset, sc.MinBrickHP, sc.MaxBrickHP)
}

// buildGrid lays out a fresh brick grid.
func buildGrid(cfg config.RebornConfig, offset int) []Brick {
	grid := cfg.Bricks
	bricks := make([]Brick, 0, grid.Rows*grid.Cols)
	for row := range grid.Rows {
		hp := brickHP(row, grid.Rows, offset, cfg.Scoring)
		for col := range grid.Cols {
			x, y := grid.CellPos(cfg.Arena.Width, row, col)
			bricks = append(bricks, NewBrick(x, y, grid.BrickWidth, grid.BrickHeight, hp))
		}
	}
	return bricks
}

// Cannon pivots at Pos and aims toward the pointer. Rotation mirrors the
// aim in degrees.
type Cannon struct {
	physics.Body
	aim    float64 // radians, screen Y grows down
	clamp  bool
	margin float64
}

// NewCannon places the cannon pivot at the bottom centre, aiming straight up.
func NewCannon(cfg config.RebornCannon, arena physics.Arena) Cannon {
	c := Cannon{
		Body: physics.Body{
			Pos:   physics.V(arena.W/2, arena.H-cfg.BottomOffset),
			Shape: physics.Rect(cfg.Width, cfg.Height),
		},
		clamp:  cfg.ClampAim,
		margin: cfg.AimMargin,
	}
	c.setAim(-math.Pi / 2)
	return c
}

// PointAt aims the cannon at (x, y). With clamping enabled the aim never
// drops within margin of the horizon or below it.
func (c *Cannon) PointAt(x, y float64) {
	a := math.Atan2(y-c.Pos.Y, x-c.Pos.X)
	if c.clamp {
		a = clampAim(a, c.margin)
	}
	c.setAim(a)
}

// Aim returns the aim angle in radians.
func (c Cannon) Aim() float64 {
	return c.aim
}

// Direction returns the unit aim vector.
func (c Cannon) Direction() physics.Vec2 {
	return physics.FromAngle(c.aim)
}

func (c *Cannon) setAim(a float64) {
	c.aim = a
	c.Rotation = physics.Deg(a)
}

// clampAim restricts a to [-pi+m, -m]. Angles right of the allowed arc
// (down to straight down) snap to -m, the rest to -pi+m.
func clampAim(a, m float64) float64 {
	lo, hi := -math.Pi+m, -m
	switch {
	case a >= lo && a <= hi:
		return a
	case a > hi && a <= math.Pi/2:
		return hi
	default:
		return lo
	}
}

// Projectile is a fired shot.
type Projectile struct {
	physics.Body
	Type            ShotType
	ExplosionRadius float64

	pierce int
	dead   bool
	hit    bool
}

// NewProjectile creates a shot of type t at pos moving with vel.
func NewProjectile(pos, vel physics.Vec2, t ShotType, radius float64, shots config.RebornShots) Projectile {
	p := Projectile{
		Body: physics.Body{Pos: pos, Vel: vel, Shape: physics.Circle(radius)},
		Type: t,
	}
	switch t {
	case ShotPiercing:
		p.pierce = shots.PierceHits
	case ShotExplosive:
		p.ExplosionRadius = shots.ExplosionRadius
	}
	return p
}

// Update moves the projectile and bounces it off the walls. Dead
// projectiles do not move.
func (p *Projectile) Update(dt float64, arena physics.Arena) {
	if p.dead {
		return
	}
	p.Integrate(dt)
	arena.BounceWalls(&p.Body)
}

// IsLost reports whether the projectile is dead or below the arena.
func (p Projectile) IsLost(arena physics.Arena) bool {
	return p.dead || arena.Below(p.Body)
}

// PierceLeft returns the remaining piercing hits.
func (p Projectile) PierceLeft() int {
	return p.pierce
}

// ConsumePierceHit uses one piercing hit. The last one turns the shot
// into a normal one.
func (p *Projectile) ConsumePierceHit() {
	if p.pierce > 0 {
		p.pierce--
	}
	if p.pierce == 0 && p.Type == ShotPiercing {
		p.Type = ShotNormal
	}
}

// Kill marks the projectile dead.
func (p *Projectile) Kill() {
	p.dead = true
}

// Dead reports whether Kill was called.
func (p Projectile) Dead() bool {
	return p.dead
}

// MarkHit records that the projectile struck a brick.
func (p *Projectile) MarkHit() {
	p.hit = true
}

// HasHitSomething reports whether the projectile ever struck a brick.
func (p Projectile) HasHitSomething() bool {
	return p.hit
}
