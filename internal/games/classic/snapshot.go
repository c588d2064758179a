package classic

import "math"

// Snapshot contains the complete game state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      uint64
	State     string
	Score     int
	Lives     int
	Launched  bool
	RampTimer float64
	PaddleX   float64
	BallX     float64
	BallY     float64
	BallVX    float64
	BallVY    float64

	// Bricks[i] is true while brick i is standing.
	Bricks []bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	bricks := make([]bool, len(g.bricks))
	for i, b := range g.bricks {
		bricks[i] = !b.Destroyed()
	}

	return Snapshot{
		Tick:      g.tick,
		State:     g.state,
		Score:     g.score,
		Lives:     g.lives,
		Launched:  g.launched,
		RampTimer: g.rampTimer,
		PaddleX:   g.paddle.Pos.X,
		BallX:     g.ball.Pos.X,
		BallY:     g.ball.Pos.Y,
		BallVX:    g.ball.Vel.X,
		BallVY:    g.ball.Vel.Y,
		Bricks:    bricks,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	if snap.Launched {
		h = h*31 + 1
	}
	for _, f := range []float64{snap.RampTimer, snap.PaddleX, snap.BallX, snap.BallY, snap.BallVX, snap.BallVY} {
		h = h*31 + math.Float64bits(f)
	}
	for _, alive := range snap.Bricks {
		if alive {
			h = h*31 + 1
		} else {
			h = h * 31
		}
	}
	return h
}
