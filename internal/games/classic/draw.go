package classic

import (
	"fmt"

	"github.com/vovakirdan/brick-arcade/internal/core"
)

// DrawList describes the current frame.
func (g *Game) DrawList() core.DrawList {
	d := core.DrawList{
		Width:  g.arena.W,
		Height: g.arena.H,
		Items:  make([]core.DrawItem, 0, len(g.bricks)+2),
	}

	for _, b := range g.bricks {
		if b.Destroyed() {
			continue
		}
		d.Rect(b.Pos.X, b.Pos.Y, b.Shape.W, b.Shape.H, b.Color)
	}
	d.Rect(g.paddle.Pos.X, g.paddle.Pos.Y, g.paddle.Shape.W, g.paddle.Shape.H, core.ColorCyan)
	d.Circle(g.ball.Pos.X, g.ball.Pos.Y, g.ball.Shape.R, core.ColorBrightWhite)

	d.HUD = []string{fmt.Sprintf("Score: %d    Lives: %d    (Space to launch)", g.score, g.lives)}

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
			Subtitle: fmt.Sprintf("Score: %d", g.score),
			Hint:     "Space: Restart    B: Back",
		}
	case StateLose:
		d.Overlay = &core.Overlay{
			Title:    "DEFEAT",
			Subtitle: fmt.Sprintf("Score: %d", g.score),
			Hint:     "Space: Restart    B: Back",
		}
	}

	return d
}
