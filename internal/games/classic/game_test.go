package classic

import (
	"math"
	"testing"

	"github.com/vovakirdan/brick-arcade/internal/config"
	"github.com/vovakirdan/brick-arcade/internal/core"
	"github.com/vovakirdan/brick-arcade/internal/physics"
)

func newTestGame(d core.Difficulty) *Game {
	g := NewWithConfig(config.DefaultClassicConfig())
	rc := core.DefaultConfig()
	rc.Difficulty = d
	g.Reset(rc)
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// destroyAllBut leaves only brick keep standing.
func destroyAllBut(g *Game, keep int) {
	for i := range g.bricks {
		if i != keep {
			g.bricks[i].Destroy()
		}
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(core.DifficultyNormal)

	if g.state != StatePlaying {
		t.Errorf("state = %q, expected %q", g.state, StatePlaying)
	}
	if g.lives != 3 {
		t.Errorf("lives = %d, expected 3", g.lives)
	}
	if len(g.bricks) != 60 {
		t.Errorf("bricks = %d, expected 60", len(g.bricks))
	}
	if g.launched {
		t.Error("ball should start glued")
	}
	if g.paddle.Pos != physics.V(345, 540) {
		t.Errorf("paddle = %v, expected (345, 540)", g.paddle.Pos)
	}
	if g.ball.Pos != physics.V(400, 531) {
		t.Errorf("ball = %v, expected (400, 531)", g.ball.Pos)
	}
}

func TestDifficultyLives(t *testing.T) {
	tests := []struct {
		d     core.Difficulty
		lives int
	}{
		{core.DifficultyEasy, 5},
		{core.DifficultyNormal, 3},
		{core.DifficultyHard, 2},
	}

	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			g := newTestGame(tt.d)
			if g.lives != tt.lives {
				t.Errorf("lives = %d, expected %d", g.lives, tt.lives)
			}
		})
	}
}

func TestBrickPoints(t *testing.T) {
	g := newTestGame(core.DifficultyNormal)

	if g.bricks[0].Points != 60 {
		t.Errorf("top row points = %d, expected 60", g.bricks[0].Points)
	}
	if last := g.bricks[len(g.bricks)-1]; last.Points != 10 {
		t.Errorf("bottom row points = %d, expected 10", last.Points)
	}
	if g.bricks[0].Pos != physics.V(13, 80) {
		t.Errorf("first brick = %v, expected (13, 80)", g.bricks[0].Pos)
	}
}

func TestLaunch(t *testing.T) {
	g := newTestGame(core.DifficultyNormal)

	g.Step(0, input(core.ActionLaunch))

	if !g.launched {
		t.Fatal("ball should be launched")
	}
	if g.ball.Vel != physics.V(165, -300) {
		t.Errorf("launch velocity = %v, expected (165, -300)", g.ball.Vel)
	}
}

func TestGluedBallFollowsPaddle(t *testing.T) {
	g := newTestGame(core.DifficultyNormal)

	g.Step(0.1, input(core.ActionRight))

	if !near(g.paddle.Pos.X, 397) {
		t.Errorf("paddle x = %v, expected 397", g.paddle.Pos.X)
	}
	if !near(g.ball.Pos.X, 452) {
		t.Errorf("ball x = %v, expected 452", g.ball.Pos.X)
	}
	if g.ball.Vel != (physics.Vec2{}) {
		t.Errorf("glued ball velocity = %v, expected zero", g.ball.Vel)
	}
}

func TestWinOnLastBrick(t *testing.T) {
	g := newTestGame(core.DifficultyNormal)
	destroyAllBut(g, 0)

	g.launched = true
	g.ball.Pos = physics.V(49, 115)
	g.ball.Vel = physics.V(0, -300)

	res := g.Step(0.01, input())

	if g.state != StateWin {
		t.Fatalf("state = %q, expected %q", g.state, StateWin)
	}
	if res.State.Score != 60 {
		t.Errorf("score = %d, expected 60", res.State.Score)
	}
	if !res.State.GameOver || !res.State.Won {
		t.Errorf("result = %+v, expected game over and won", res.State)
	}
	if g.ball.Vel.Y <= 0 {
		t.Errorf("ball vy = %v, expected downward after the hit", g.ball.Vel.Y)
	}
	if !near(g.ball.Pos.Y, 116.5) {
		t.Errorf("ball y = %v, expected 116.5 after push-out", g.ball.Pos.Y)
	}
}

func TestOneBrickPerFrame(t *testing.T) {
	g := newTestGame(core.DifficultyNormal)

	// Straddle the gap between the first two bottom-row bricks.
	first := g.bricks[50]
	g.launched = true
	g.ball.Pos = physics.V(first.Pos.X+first.Shape.W+3, first.Pos.Y+first.Shape.H+5)
	g.ball.Vel = physics.V(0, -300)

	g.Step(0.001, input())

	if got := 60 - g.remaining(); got != 1 {
		t.Errorf("destroyed = %d, expected 1", got)
	}
}

func TestLoseLastLife(t *testing.T) {
	g := newTestGame(core.DifficultyNormal)
	g.lives = 1
	g.score = 120
	g.launched = true
	g.ball.Pos = physics.V(400, 615)
	g.ball.Vel = physics.V(0, 300)

	res := g.Step(0.01, input())

	if g.state != StateLose {
		t.Fatalf("state = %q, expected %q", g.state, StateLose)
	}
	if g.lives != 0 {
		t.Errorf("lives = %d, expected 0", g.lives)
	}
	if !res.State.GameOver || res.State.Won {
		t.Errorf("result = %+v, expected game over without win", res.State)
	}
	if res.State.Score != 120 {
		t.Errorf("score = %d, expected 120", res.State.Score)
	}
}

func TestLostBallRegluesWithLivesLeft(t *testing.T) {
	g := newTestGame(core.DifficultyNormal)
	g.launched = true
	g.ball.Pos = physics.V(400, 615)
	g.ball.Vel = physics.V(0, 300)

	g.Step(0.01, input())

	if g.lives != 2 {
		t.Errorf("lives = %d, expected 2", g.lives)
	}
	if g.launched {
		t.Error("ball should be glued after a miss")
	}
	if g.state != StatePlaying {
		t.Errorf("state = %q, expected %q", g.state, StatePlaying)
	}
	if g.ball.Pos != physics.V(400, 531) {
		t.Errorf("ball = %v, expected (400, 531)", g.ball.Pos)
	}
}

func TestPaddleBounce(t *testing.T) {
	g := newTestGame(core.DifficultyNormal)
	g.launched = true
	g.ball.Pos = physics.V(400, 535)
	g.ball.Vel = physics.V(0, 300)

	g.Step(0.001, input())

	if !near(g.ball.Vel.X, 0) || !near(g.ball.Vel.Y, -300) {
		t.Errorf("velocity = %v, expected (0, -300)", g.ball.Vel)
	}
	if g.ball.Pos.Y != 531 {
		t.Errorf("ball y = %v, expected 531", g.ball.Pos.Y)
	}
}

func TestSpeedRamp(t *testing.T) {
	g := newTestGame(core.DifficultyNormal)
	g.launched = true
	g.ball.Pos = physics.V(400, 300)
	g.ball.Vel = physics.V(0, -300)
	g.rampTimer = 9.99

	g.Step(0.02, input())

	if !near(g.ball.Speed(), 330) {
		t.Errorf("speed = %v, expected 330", g.ball.Speed())
	}
	if g.rampTimer != 0 {
		t.Errorf("ramp timer = %v, expected 0", g.rampTimer)
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(core.DifficultyNormal)

	res := g.Step(0.016, input(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused")
	}

	before := g.paddle.Pos
	g.Step(0.1, input(core.ActionRight))
	if g.paddle.Pos != before {
		t.Error("paddle moved while paused")
	}

	res = g.Step(0.016, input(core.ActionPause))
	if res.State.Paused {
		t.Error("expected resumed after second pause")
	}

	g.Step(0.016, input(core.ActionPause))
	res = g.Step(0.016, input(core.ActionResume))
	if res.State.Paused {
		t.Error("expected resumed after resume")
	}
}

func TestPausedRestartAndBack(t *testing.T) {
	g := newTestGame(core.DifficultyNormal)
	g.score = 300
	g.lives = 1
	g.bricks[3].Destroy()

	g.Step(0.016, input(core.ActionPause))
	g.Step(0.016, input(core.ActionRestart))

	if g.state != StatePlaying || g.score != 0 || g.lives != 3 || g.remaining() != 60 {
		t.Errorf("after restart: state=%q score=%d lives=%d bricks=%d", g.state, g.score, g.lives, g.remaining())
	}

	g.Step(0.016, input(core.ActionPause))
	res := g.Step(0.016, input(core.ActionBack))
	if res.Transition != core.TransitionMenu {
		t.Errorf("transition = %v, expected menu", res.Transition)
	}

	res = g.Step(0.016, input())
	if res.Transition != core.TransitionNone {
		t.Error("transition should only be raised once")
	}
}

func TestRestartAfterWin(t *testing.T) {
	g := newTestGame(core.DifficultyEasy)
	g.state = StateWin
	g.score = 999

	g.Step(0.016, input(core.ActionRight))
	if g.state != StateWin {
		t.Error("movement should not leave the win screen")
	}

	g.Step(0.016, input(core.ActionLaunch))

	if g.state != StatePlaying || g.score != 0 || g.lives != 5 {
		t.Errorf("after restart: state=%q score=%d lives=%d", g.state, g.score, g.lives)
	}
}

func TestBackAfterLose(t *testing.T) {
	g := newTestGame(core.DifficultyNormal)
	g.state = StateLose

	res := g.Step(0.016, input(core.ActionBack))
	if res.Transition != core.TransitionMenu {
		t.Errorf("transition = %v, expected menu", res.Transition)
	}
}

func TestDrawList(t *testing.T) {
	g := newTestGame(core.DifficultyNormal)

	d := g.DrawList()
	if len(d.Items) != 62 {
		t.Errorf("items = %d, expected 62", len(d.Items))
	}
	if d.Width != 800 || d.Height != 600 {
		t.Errorf("world = %vx%v, expected 800x600", d.Width, d.Height)
	}
	if d.HUD[0] != "Score: 0    Lives: 3    (Space to launch)" {
		t.Errorf("HUD = %q", d.HUD[0])
	}
	if d.Overlay != nil {
		t.Error("no overlay expected while playing")
	}

	g.bricks[0].Destroy()
	g.Step(0.016, input(core.ActionPause))
	d = g.DrawList()
	if len(d.Items) != 61 {
		t.Errorf("items = %d, expected 61", len(d.Items))
	}
	if d.Overlay == nil || d.Overlay.Title != "PAUSED" {
		t.Errorf("overlay = %+v, expected PAUSED", d.Overlay)
	}

	last := d.Items[len(d.Items)-1]
	if last.Kind != core.DrawCircle || last.Radius != 8 {
		t.Errorf("last item = %+v, expected the ball", last)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 900)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 10:
			inputs[i].Set(core.ActionLaunch)
		case i > 10 && i%7 < 3:
			inputs[i].Set(core.ActionRight)
		case i > 10:
			inputs[i].Set(core.ActionLeft)
		}
	}

	run := func() Snapshot {
		g := newTestGame(core.DifficultyNormal)
		for _, in := range inputs {
			if res := g.Step(1.0/60, in); res.State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if s1.Hash() != s2.Hash() {
		t.Errorf("hashes differ: %d vs %d", s1.Hash(), s2.Hash())
	}
	if s1.Score != s2.Score || s1.Tick != s2.Tick {
		t.Errorf("runs differ: %+v vs %+v", s1, s2)
	}
}

func TestRegistered(t *testing.T) {
	g := New()
	if g.ID() != "classic" || g.Title() != "Classic" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
}
