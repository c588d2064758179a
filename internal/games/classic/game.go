// Package classic implements the paddle-and-ball brick breaker mode.
package classic

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

func init() {
	registry.Register("classic", func() registry.Game {
		return New()
	})
}

// Game implements Classic mode.
type Game struct {
	cfg       config.ClassicConfig
	cfgLoaded bool

	difficulty core.Difficulty
	preset     config.ClassicPreset
	arena      physics.Arena

	paddle Paddle
	ball   Ball
	bricks []Brick

	state      string
	score      int
	lives      int
	launched   bool
	rampTimer  float64
	tick       uint64
	transition core.Transition
}

// New creates a Classic game that loads its layout on first Reset.
func New() *Game {
	return &Game{state: StatePlaying}
}

// NewWithConfig creates a Classic game with a fixed layout.
func NewWithConfig(cfg config.ClassicConfig) *Game {
	return &Game{cfg: cfg, cfgLoaded: true, state: StatePlaying}
}

// LoadConfig loads the layout from path (or the standard search order when
// path is empty). On error the defaults are kept and the error returned.
func (g *Game) LoadConfig(path string) error {
	cfg, err := config.LoadClassic(path)
	g.cfg = cfg
	g.cfgLoaded = true
	return err
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "classic"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Classic"
}

// Reset builds a fresh level with the lives and speeds of rc.Difficulty.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if !g.cfgLoaded {
		_ = g.LoadConfig("")
	}
	g.difficulty = rc.Difficulty
	g.preset = g.cfg.Presets.For(rc.Difficulty)
	g.arena = physics.Arena{W: g.cfg.Arena.Width, H: g.cfg.Arena.Height}
	g.tick = 0
	g.resetAll()
}

// resetAll restores lives and rebuilds the level.
func (g *Game) resetAll() {
	g.lives = g.preset.Lives
	g.resetLevel()
}

func (g *Game) resetLevel() {
	g.paddle = NewPaddle(g.cfg.Paddle, g.arena)
	g.ball = NewBall(g.cfg.Ball.Radius)
	g.ball.GlueTo(g.paddle)
	g.bricks = buildGrid(g.cfg.Bricks, g.arena.W)
	g.score = 0
	g.rampTimer = 0
	g.launched = false
	g.state = StatePlaying
}

// Step advances the game by dt seconds.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	g.tick++
	g.transition = core.TransitionNone

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

	if !g.launched && (in.Has(core.ActionLaunch) || in.Has(core.ActionFire)) {
		g.launched = true
		g.ball.Launch(g.preset.BallSpeed, g.cfg.Ball.LaunchXRatio)
	}

	g.paddle.Update(dt, in.Has(core.ActionLeft), in.Has(core.ActionRight), g.arena)

	if !g.launched {
		g.ball.GlueTo(g.paddle)
		return g.result()
	}

	g.rampTimer += dt
	if g.rampTimer >= g.cfg.Ramp.Interval {
		g.ball.IncreaseSpeed(g.preset.Ramp)
		g.rampTimer = 0
	}

	g.ball.Update(dt, g.arena)

	if physics.Collide(g.ball.Body, g.paddle.Body) {
		g.ball.BounceOnPaddle(g.paddle.Pos.X, g.paddle.Shape.W)
		g.ball.Pos.Y = g.paddle.Pos.Y - g.ball.Shape.R - 1
	}

	g.hitBrick()

	if g.ball.IsLost(g.arena) {
		g.lives--
		g.launched = false
		if g.lives <= 0 {
			g.state = StateLose
		} else {
			g.ball.GlueTo(g.paddle)
		}
	}

	if g.state == StatePlaying && g.remaining() == 0 {
		g.state = StateWin
	}

	return g.result()
}

// hitBrick resolves at most one brick contact per frame.
func (g *Game) hitBrick() {
	for i := range g.bricks {
		b := &g.bricks[i]
		if b.Destroyed() {
			continue
		}
		c, ok := physics.CircleRectNormal(g.ball.Pos, g.ball.Shape.R, b.AABB())
		if !ok {
			continue
		}
		physics.Bounce(&g.ball.Body, c, physics.DepenetrationSlop)
		g.score += b.Points
		b.Destroy()
		return
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
