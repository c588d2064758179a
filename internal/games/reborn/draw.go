package reborn

import (
	"fmt"

	"github.com/vovakirdan/brick-arcade/internal/core"
)

// Danger meter placement, top right.
const (
	meterW      = 160.0
	meterH      = 10.0
	meterMargin = 20.0
	meterTop    = 14.0
)

// DrawList describes the current frame.
func (g *Game) DrawList() core.DrawList {
	d := core.DrawList{
		Width:  g.arena.W,
		Height: g.arena.H,
		Items:  make([]core.DrawItem, 0, len(g.bricks)+len(g.projectiles)+4),
	}

	for _, b := range g.bricks {
		if b.Destroyed() {
			continue
		}
		d.Rect(b.Pos.X, b.Pos.Y, b.Shape.W, b.Shape.H, b.Color)
	}
	for _, p := range g.projectiles {
		if p.Dead() {
			continue
		}
		d.Circle(p.Pos.X, p.Pos.Y, p.Shape.R, p.Type.color())
	}

	// The barrel is drawn upright at zero rotation, pivoting on its base.
	d.Add(core.DrawItem{
		Kind:     core.DrawRect,
		X:        g.cannon.Pos.X,
		Y:        g.cannon.Pos.Y,
		W:        g.cannon.Shape.W,
		H:        g.cannon.Shape.H,
		OriginX:  g.cannon.Shape.W / 2,
		OriginY:  g.cannon.Shape.H,
		Rotation: g.cannon.Rotation + 90,
		Color:    core.ColorWhite,
	})

	d.Line(0, g.dangerY, g.arena.W, core.ColorBrightRed)

	meterX := g.arena.W - meterW - meterMargin
	d.Rect(meterX, meterTop, meterW, meterH, core.ColorGray)
	if p := g.dangerProgress(); p > 0 {
		d.Rect(meterX, meterTop, meterW*p, meterH, core.ColorBrightRed)
	}

	d.HUD = g.hud()

	switch g.state {
	case StatePaused:
		d.Overlay = &core.Overlay{
			Title:    "PAUSED",
			Subtitle: "Resume / Restart / Back",
			Hint:     "Esc: Resume    R: Restart    B: Back",
		}
	case StateWin:
		d.Overlay = &core.Overlay{
			Title:    "VICTORY!",
			Subtitle: "Space: Restart",
			Hint:     "R: Restart    B: Back",
		}
	case StateLose:
		d.Overlay = &core.Overlay{
			Title:    "DEFEAT",
			Subtitle: g.loseReason.String(),
			Hint:     "Space: Restart    B: Back",
		}
	}

	return d
}

func (g *Game) hud() []string {
	cooldown := "READY"
	if g.cooldown > 0 {
		cooldown = "..."
	}
	return []string{
		fmt.Sprintf("Score: %d    Ammo: %d/%d    Active: %d/%d    Shot: %s (%d)",
			g.score, g.budget-g.used, g.budget, len(g.projectiles), g.maxActive,
			g.shot, int(g.shot)+1),
		fmt.Sprintf("Cooldown: %s    Combo: x%d    (Hold LMB to fire, 1/2/3 switch)",
			cooldown, max(g.combo, 0)),
	}
}

// dangerProgress is how close the lowest standing brick is to the danger
// line, in [0, 1].
func (g *Game) dangerProgress() float64 {
	if g.dangerY <= 0 {
		return 1
	}
	maxBottom := 0.0
	for _, b := range g.bricks {
		if !b.Destroyed() {
			maxBottom = max(maxBottom, b.AABB().Bottom)
		}
	}
	return core.Clamp(maxBottom/g.dangerY, 0, 1)
}
