// Package reborn implements the cannon mode: aim, spend a limited ammo
// budget on three shot types and clear descending multi-hit bricks before
// they reach the danger line.
package reborn

import (
	"github.com/vovakirdan/brick-arcade/internal/config"
	"github.com/vovakirdan/brick-arcade/internal/core"
	"github.com/vovakirdan/brick-arcade/internal/physics"
	"github.com/vovakirdan/brick-arcade/internal/registry"
)

// State constants
const (
	StatePlaying = "playing"
	StatePaused  = "paused"
	StateWin     = "win"
	StateLose    = "lose"
)

// LoseReason tells why a Reborn run was lost.
type LoseReason int

const (
	LoseOutOfAmmo LoseReason = iota
	LoseDangerLine
)

// String returns the message shown on the defeat screen.
func (r LoseReason) String() string {
	if r == LoseDangerLine {
		return "Bricks reached the danger line"
	}
	return "Out of ammo"
}

func init() {
	registry.Register("reborn", func() registry.Game {
		return New()
	})
}

// Game implements Reborn mode.
type Game struct {
	cfg       config.RebornConfig
	cfgLoaded bool

	difficulty core.Difficulty
	preset     config.RebornPreset
	arena      physics.Arena

	cannon      Cannon
	projectiles []Projectile
	bricks      []Brick

	state      string
	loseReason LoseReason
	score      int
	budget     int
	used       int
	combo      int
	maxActive  int
	cooldown   float64
	firingHeld bool
	shot       ShotType
	dangerY    float64
	tick       uint64
	transition core.Transition
}

// New creates a Reborn game that loads its layout on first Reset.
func New() *Game {
	return &Game{state: StatePlaying}
}

// NewWithConfig creates a Reborn game with a fixed layout.
func NewWithConfig(cfg config.RebornConfig) *Game {
	return &Game{cfg: cfg, cfgLoaded: true, state: StatePlaying}
}

// LoadConfig loads the layout from path (or the standard search order when
// path is empty). On error the defaults are kept and the error returned.
func (g *Game) LoadConfig(path string) error {
	cfg, err := config.LoadReborn(path)
	g.cfg = cfg
	g.cfgLoaded = true
	return err
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "reborn"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Reborn"
}

// Reset builds a fresh level using the table for rc.Difficulty.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if !g.cfgLoaded {
		_ = g.LoadConfig("")
	}
	g.difficulty = rc.Difficulty
	g.preset = g.cfg.Presets.For(rc.Difficulty)
	g.arena = physics.Arena{W: g.cfg.Arena.Width, H: g.cfg.Arena.Height}
	g.cannon = NewCannon(g.cfg.Cannon, g.arena)
	g.tick = 0
	g.resetAll()
}

// resetAll restores the ammo budget and rebuilds the level.
func (g *Game) resetAll() {
	g.budget = g.preset.AmmoBudget
	g.resetLevel()
}

func (g *Game) resetLevel() {
	g.bricks = buildGrid(g.cfg, g.preset.HPOffset)
	g.projectiles = g.projectiles[:0]
	g.score = 0
	g.used = 0
	g.combo = 0
	g.cooldown = 0
	g.firingHeld = false
	g.state = StatePlaying
	g.loseReason = LoseOutOfAmmo
	g.shot = ShotNormal
	g.maxActive = g.preset.MaxActive
	g.dangerY = g.arena.H - g.cfg.DangerOffset
}

// Step advances the game by dt seconds.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	g.tick++
	g.transition = core.TransitionNone

	switch {
	case in.Has(core.ActionShot1):
		g.shot = ShotNormal
	case in.Has(core.ActionShot2):
		g.shot = ShotPiercing
	case in.Has(core.ActionShot3):
		g.shot = ShotExplosive
	}
	g.firingHeld = in.Has(core.ActionFire)

	switch g.state {
	case StatePaused:
		switch {
		case in.Has(core.ActionPause), in.Has(core.ActionResume):
			g.state = StatePlaying
		case in.Has(core.ActionRestart):
			g.resetAll()
		case in.Has(core.ActionBack):
			g.transition = core.TransitionMenu
		}
		return g.result()
	case StateWin, StateLose:
		switch {
		case in.Has(core.ActionLaunch), in.Has(core.ActionRestart):
			g.resetAll()
		case in.Has(core.ActionBack):
			g.transition = core.TransitionMenu
		}
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.state = StatePaused
		return g.result()
	}

	g.cannon.PointAt(in.PointerX, in.PointerY)

	g.cooldown = max(0, g.cooldown-dt)
	if g.canFire() {
		g.fire()
	}

	for i := range g.projectiles {
		g.projectiles[i].Update(dt, g.arena)
	}
	g.removeSpent()

	descent := g.preset.Descent * dt
	for i := range g.bricks {
		if !g.bricks[i].Destroyed() {
			g.bricks[i].Pos.Y += descent
		}
	}

	for _, b := range g.bricks {
		if !b.Destroyed() && b.AABB().Bottom >= g.dangerY {
			g.state = StateLose
			g.loseReason = LoseDangerLine
			return g.result()
		}
	}

	g.resolveHits()

	if g.remaining() == 0 {
		g.state = StateWin
		return g.result()
	}

	if g.used >= g.budget && len(g.projectiles) == 0 {
		g.state = StateLose
		g.loseReason = LoseOutOfAmmo
	}

	return g.result()
}

func (g *Game) canFire() bool {
	return g.firingHeld &&
		g.cooldown <= 0 &&
		len(g.projectiles) < g.maxActive &&
		g.used+g.shot.Cost(g.cfg.Shots) <= g.budget
}

func (g *Game) fire() {
	dir := g.cannon.Direction()
	pos := g.cannon.Pos.Add(dir.Scale(g.cfg.Projectile.SpawnOffset))
	vel := dir.Scale(g.preset.ProjectileSpeed)

	g.projectiles = append(g.projectiles, NewProjectile(pos, vel, g.shot, g.cfg.Projectile.Radius, g.cfg.Shots))
	g.used += g.shot.Cost(g.cfg.Shots)
	g.cooldown = g.preset.Cooldown
}

// removeSpent drops lost and dead projectiles. A shot that never hit
// anything breaks the combo.
func (g *Game) removeSpent() {
	kept := g.projectiles[:0]
	for _, p := range g.projectiles {
		if p.IsLost(g.arena) {
			if !p.HasHitSomething() {
				g.combo = 0
			}
			continue
		}
		kept = append(kept, p)
	}
	g.projectiles = kept
}

// resolveHits resolves at most one brick contact per projectile.
func (g *Game) resolveHits() {
	for i := range g.projectiles {
		p := &g.projectiles[i]
		if p.Dead() {
			continue
		}
		for j := range g.bricks {
			b := &g.bricks[j]
			if b.Destroyed() {
				continue
			}
			c, ok := physics.CircleRectNormal(p.Pos, p.Shape.R, b.AABB())
			if !ok {
				continue
			}
			g.hit(p, b, c)
			break
		}
	}
}

func (g *Game) hit(p *Projectile, b *Brick, c physics.Contact) {
	sc := g.cfg.Scoring

	p.MarkHit()
	b.TakeDamage(1)
	g.score += sc.Hit
	if b.Destroyed() {
		g.score += b.MaxHP * sc.DestroyPerHP
	}
	g.combo = min(g.combo+1, sc.MaxCombo)
	g.score += g.combo

	switch {
	case p.Type == ShotExplosive:
		g.explode(p.Pos, p.ExplosionRadius)
		p.Kill()
	case p.Type == ShotPiercing && p.PierceLeft() > 0:
		physics.Depenetrate(&p.Body, c, physics.DepenetrationSlop)
		p.ConsumePierceHit()
	default:
		physics.Bounce(&p.Body, c, physics.DepenetrationSlop)
	}
}

// explode deals one damage to every standing brick whose centre is within
// radius of at.
func (g *Game) explode(at physics.Vec2, radius float64) {
	for i := range g.bricks {
		b := &g.bricks[i]
		if b.Destroyed() {
			continue
		}
		if b.Center().Sub(at).LenSq() > radius*radius {
			continue
		}
		b.TakeDamage(1)
		if b.Destroyed() {
			g.score += b.MaxHP * g.cfg.Scoring.SplashPerHP
		}
	}
}

func (g *Game) remaining() int {
	n := 0
	for _, b := range g.bricks {
		if !b.Destroyed() {
			n++
		}
	}
	return n
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Transition: g.transition}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateWin || g.state == StateLose,
		Won:      g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Difficulty returns the difficulty the current level was built with.
func (g *Game) Difficulty() core.Difficulty {
	return g.difficulty
}

// LoseReason returns why the last run was lost.
func (g *Game) LoseReason() LoseReason {
	return g.loseReason
}
