package reborn

import (
	"testing"

	"github.com/vovakirdan/brick-arcade/internal/config"
	"github.com/vovakirdan/brick-arcade/internal/core"
	"github.com/vovakirdan/brick-arcade/internal/physics"
)

func newTestGame(d core.Difficulty) *Game {
	g := NewWithConfig(config.DefaultRebornConfig())
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

// fireUp holds the fire button with the pointer straight above the cannon.
func fireUp(actions ...core.Action) core.InputFrame {
	in := input(append(actions, core.ActionFire)...)
	in.SetPointer(400, 0)
	return in
}

// keepOnly destroys every brick except the listed indices.
func keepOnly(g *Game, keep ...int) {
	for i := range g.bricks {
		standing := false
		for _, k := range keep {
			if i == k {
				standing = true
			}
		}
		if !standing {
			g.bricks[i].TakeDamage(g.bricks[i].HP)
		}
	}
}

func addShot(g *Game, x, y, vx, vy float64, t ShotType) *Projectile {
	p := NewProjectile(physics.V(x, y), physics.V(vx, vy), t, g.cfg.Projectile.Radius, g.cfg.Shots)
	g.projectiles = append(g.projectiles, p)
	return &g.projectiles[len(g.projectiles)-1]
}

func TestGameReset(t *testing.T) {
	tests := []struct {
		d         core.Difficulty
		budget    int
		maxActive int
		topHP     int
	}{
		{core.DifficultyEasy, 70, 5, 2},
		{core.DifficultyNormal, 50, 4, 3},
		{core.DifficultyHard, 35, 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			g := newTestGame(tt.d)
			if g.budget != tt.budget {
				t.Errorf("budget = %d, expected %d", g.budget, tt.budget)
			}
			if g.maxActive != tt.maxActive {
				t.Errorf("maxActive = %d, expected %d", g.maxActive, tt.maxActive)
			}
			if g.bricks[0].HP != tt.topHP {
				t.Errorf("top row HP = %d, expected %d", g.bricks[0].HP, tt.topHP)
			}
			if len(g.bricks) != 60 {
				t.Errorf("bricks = %d, expected 60", len(g.bricks))
			}
			if g.dangerY != 450 {
				t.Errorf("dangerY = %v, expected 450", g.dangerY)
			}
			if g.shot != ShotNormal || g.state != StatePlaying {
				t.Errorf("shot=%v state=%q", g.shot, g.state)
			}
		})
	}
}

func TestFireSpawnsAlongAim(t *testing.T) {
	g := newTestGame(core.DifficultyNormal)

	g.Step(0, fireUp())

	if len(g.projectiles) != 1 {
		t.Fatalf("projectiles = %d, expected 1", len(g.projectiles))
	}
	p := g.projectiles[0]
	if !near(p.Pos.X, 400) || !near(p.Pos.Y, 486) {
		t.Errorf("spawn = %v, expected (400, 486)", p.Pos)
	}
	if !near(p.Vel.X, 0) || !near(p.Vel.Y, -500) {
		t.Errorf("velocity = %v, expected (0, -500)", p.Vel)
	}
	if g.used != 1 || g.cooldown != 0.22 {
		t.Errorf("used=%d cooldown=%v, expected 1 and 0.22", g.used, g.cooldown)
	}
}

func TestFireGating(t *testing.T) {
	g := newTestGame(core.DifficultyNormal)

	g.Step(0.01, fireUp())
	g.Step(0.01, fireUp())
	if len(g.projectiles) != 1 {
		t.Fatalf("cooldown: projectiles = %d, expected 1", len(g.projectiles))
	}

	g.cooldown = 0
	g.maxActive = 1
	g.Step(0.01, fireUp())
	if len(g.projectiles) != 1 {
		t.Fatalf("active cap: projectiles = %d, expected 1", len(g.projectiles))
	}

	g.maxActive = 4
	g.used = g.budget - 2
	g.Step(0.01, fireUp(core.ActionShot3))
	if g.shot != ShotExplosive {
		t.Fatalf("shot = %v, expected explosive", g.shot)
	}
	if len(g.projectiles) != 1 || g.used != g.budget-2 {
		t.Fatalf("budget: projectiles=%d used=%d", len(g.projectiles), g.used)
	}

	g.Step(0.01, fireUp(core.ActionShot2))
	if len(g.projectiles) != 2 || g.used != g.budget {
		t.Errorf("piercing shot: projectiles=%d used=%d, expected 2 and %d", len(g.projectiles), g.used, g.budget)
	}
	if g.projectiles[1].Type != ShotPiercing {
		t.Errorf("second shot type = %v, expected piercing", g.projectiles[1].Type)
	}
}

func TestAmmoExhaustion(t *testing.T) {
	g := newTestGame(core.DifficultyNormal)
	g.budget = 1

	g.Step(0.016, fireUp())
	if g.state != StatePlaying || len(g.projectiles) != 1 {
		t.Fatalf("after firing: state=%q projectiles=%d", g.state, len(g.projectiles))
	}

	g.Step(0.016, fireUp())
	if len(g.projectiles) != 1 {
		t.Fatalf("budget spent: projectiles = %d, expected 1", len(g.projectiles))
	}

	g.projectiles[0].Pos.Y = 700
	res := g.Step(0.016, input())

	if g.state != StateLose {
		t.Fatalf("state = %q, expected %q", g.state, StateLose)
	}
	if g.LoseReason() != LoseOutOfAmmo {
		t.Errorf("lose reason = %v, expected out of ammo", g.LoseReason())
	}
	if !res.State.GameOver || res.State.Won {
		t.Errorf("result = %+v", res.State)
	}
}

func TestDangerLine(t *testing.T) {
	g := newTestGame(core.DifficultyNormal)

	// Normal descent is 11/s, so half a second moves bricks 5.5 down.
	g.bricks[59].Pos.Y = 450 - 28 - 5.5

	// A resting projectile already touching the top-left brick.
	addShot(g, 49, 100, 0, 0, ShotNormal)

	g.Step(0.5, input())

	if g.state != StateLose {
		t.Fatalf("state = %q, expected %q", g.state, StateLose)
	}
	if g.LoseReason() != LoseDangerLine {
		t.Errorf("lose reason = %v, expected danger line", g.LoseReason())
	}
	if g.bricks[59].AABB().Bottom != 450 {
		t.Errorf("brick bottom = %v, expected 450", g.bricks[59].AABB().Bottom)
	}
	if g.score != 0 || g.bricks[0].HP != 3 || g.projectiles[0].HasHitSomething() {
		t.Errorf("collisions resolved after the loss: score=%d HP=%d", g.score, g.bricks[0].HP)
	}
}

func TestDangerLineNotReached(t *testing.T) {
	g := newTestGame(core.DifficultyNormal)
	g.bricks[59].Pos.Y = 450 - 28 - 5.6

	g.Step(0.5, input())

	if g.state != StatePlaying {
		t.Errorf("state = %q, expected %q", g.state, StatePlaying)
	}
}

func TestExplosiveSplash(t *testing.T) {
	g := newTestGame(core.DifficultyNormal)

	// Three adjacent one-HP bricks in the bottom row.
	keepOnly(g, 50, 51, 52)
	addShot(g, 127, 283, 0, -500, ShotExplosive)

	g.Step(0.001, input())

	for _, i := range []int{50, 51, 52} {
		if !g.bricks[i].Destroyed() {
			t.Errorf("brick %d still standing", i)
		}
	}
	shot := g.projectiles[0]
	if !shot.Dead() {
		t.Error("explosive shot should be dead")
	}
	if shot.Vel != physics.V(0, -500) {
		t.Errorf("explosive shot bounced: %v", shot.Vel)
	}
	// hit 5 + destroy 10 + combo 1 + two splash kills at 8
	if g.score != 32 {
		t.Errorf("score = %d, expected 32", g.score)
	}
	if g.state != StateWin {
		t.Errorf("state = %q, expected %q", g.state, StateWin)
	}
}

func TestPiercingPassesThrough(t *testing.T) {
	g := newTestGame(core.DifficultyNormal)
	addShot(g, 127, 113, 0, -500, ShotPiercing)

	g.Step(0.001, input())

	p := g.projectiles[0]
	if p.Vel != physics.V(0, -500) {
		t.Errorf("velocity = %v, expected unchanged", p.Vel)
	}
	if p.PierceLeft() != 1 {
		t.Errorf("PierceLeft() = %d, expected 1", p.PierceLeft())
	}
	if !near(p.Pos.Y, 116.511) {
		t.Errorf("y = %v, expected 116.511 after push-out", p.Pos.Y)
	}
	if g.bricks[1].HP != 2 {
		t.Errorf("brick HP = %d, expected 2", g.bricks[1].HP)
	}
	if g.score != 6 || g.combo != 1 {
		t.Errorf("score=%d combo=%d, expected 6 and 1", g.score, g.combo)
	}
}

func TestNormalShotBounces(t *testing.T) {
	g := newTestGame(core.DifficultyNormal)
	addShot(g, 127, 113, 0, -500, ShotNormal)

	g.Step(0.001, input())

	p := g.projectiles[0]
	if !near(p.Vel.X, 0) || !near(p.Vel.Y, 500) {
		t.Errorf("velocity = %v, expected (0, 500)", p.Vel)
	}
	if !near(p.Pos.Y, 116.511) {
		t.Errorf("y = %v, expected 116.511", p.Pos.Y)
	}
	if !p.HasHitSomething() {
		t.Error("hit not recorded")
	}
}

func TestComboCapAndReset(t *testing.T) {
	g := newTestGame(core.DifficultyNormal)
	g.combo = 20
	addShot(g, 127, 113, 0, -500, ShotNormal)

	g.Step(0.001, input())
	if g.combo != 20 {
		t.Errorf("combo = %d, expected capped at 20", g.combo)
	}
	g.projectiles = nil

	hit := addShot(g, 600, 700, 0, 100, ShotNormal)
	hit.MarkHit()
	g.Step(0.001, input())
	if g.combo != 20 {
		t.Errorf("combo = %d after losing a shot that hit, expected 20", g.combo)
	}
	g.projectiles = nil

	addShot(g, 600, 700, 0, 100, ShotNormal)
	g.Step(0.001, input())
	if g.combo != 0 {
		t.Errorf("combo = %d after a miss, expected 0", g.combo)
	}
}

func TestShotKeysWorkWhilePaused(t *testing.T) {
	g := newTestGame(core.DifficultyNormal)

	g.Step(0.016, input(core.ActionPause))
	g.Step(0.016, input(core.ActionShot3))

	if g.shot != ShotExplosive {
		t.Errorf("shot = %v, expected explosive", g.shot)
	}
	if g.state != StatePaused {
		t.Errorf("state = %q, expected %q", g.state, StatePaused)
	}
}

func TestPausedIgnoresFire(t *testing.T) {
	g := newTestGame(core.DifficultyNormal)

	g.Step(0.016, input(core.ActionPause))
	y := g.bricks[0].Pos.Y
	g.Step(0.5, fireUp())

	if len(g.projectiles) != 0 || g.bricks[0].Pos.Y != y {
		t.Error("simulation advanced while paused")
	}

	res := g.Step(0.016, input(core.ActionResume))
	if res.State.Paused {
		t.Error("expected resumed")
	}
}

func TestRestartAndBack(t *testing.T) {
	g := newTestGame(core.DifficultyNormal)
	g.state = StateLose
	g.loseReason = LoseDangerLine
	g.budget = 1
	g.score = 77
	g.shot = ShotPiercing

	res := g.Step(0.016, input(core.ActionBack))
	if res.Transition != core.TransitionMenu {
		t.Errorf("transition = %v, expected menu", res.Transition)
	}

	g.Step(0.016, input(core.ActionLaunch))
	if g.state != StatePlaying || g.budget != 50 || g.score != 0 || g.shot != ShotNormal {
		t.Errorf("after restart: state=%q budget=%d score=%d shot=%v", g.state, g.budget, g.score, g.shot)
	}
	if g.LoseReason() != LoseOutOfAmmo {
		t.Errorf("lose reason = %v, expected reset", g.LoseReason())
	}
}

func TestDrawList(t *testing.T) {
	g := newTestGame(core.DifficultyNormal)

	d := g.DrawList()

	// 60 bricks, cannon, danger line, meter background and fill.
	if len(d.Items) != 64 {
		t.Fatalf("items = %d, expected 64", len(d.Items))
	}

	cannon := d.Items[60]
	if cannon.OriginX != 20 || cannon.OriginY != 60 || !near(cannon.Rotation, 0) {
		t.Errorf("cannon = %+v, expected upright with base origin", cannon)
	}

	line := d.Items[61]
	if line.Kind != core.DrawLine || line.Y != 450 || line.W != 800 {
		t.Errorf("danger line = %+v", line)
	}

	expected := []string{
		"Score: 0    Ammo: 50/50    Active: 0/4    Shot: Normal (1)",
		"Cooldown: READY    Combo: x0    (Hold LMB to fire, 1/2/3 switch)",
	}
	for i, want := range expected {
		if d.HUD[i] != want {
			t.Errorf("HUD[%d] = %q, expected %q", i, d.HUD[i], want)
		}
	}

	g.state = StateLose
	g.loseReason = LoseDangerLine
	d = g.DrawList()
	if d.Overlay == nil || d.Overlay.Title != "DEFEAT" || d.Overlay.Subtitle != "Bricks reached the danger line" {
		t.Errorf("overlay = %+v", d.Overlay)
	}
}

func TestDangerProgress(t *testing.T) {
	g := newTestGame(core.DifficultyNormal)

	if got := g.dangerProgress(); !near(got, 278.0/450) {
		t.Errorf("dangerProgress() = %v, expected %v", got, 278.0/450)
	}

	keepOnly(g)
	if got := g.dangerProgress(); got != 0 {
		t.Errorf("dangerProgress() with no bricks = %v, expected 0", got)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		in := core.NewInputFrame()
		in.SetPointer(float64(100+(i*7)%600), float64(50+(i*3)%300))
		if i%40 < 30 {
			in.Set(core.ActionFire)
		}
		switch i % 150 {
		case 50:
			in.Set(core.ActionShot2)
		case 100:
			in.Set(core.ActionShot3)
		case 149:
			in.Set(core.ActionShot1)
		}
		inputs[i] = in
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
	if s1.Score != s2.Score || s1.Used != s2.Used {
		t.Errorf("runs differ: score %d/%d used %d/%d", s1.Score, s2.Score, s1.Used, s2.Used)
	}
}
