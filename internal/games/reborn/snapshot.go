package reborn

import "math"

// Snapshot contains the complete game state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	State      string
	LoseReason int
	Score      int
	Budget     int
	Used       int
	Combo      int
	Shot       int
	Cooldown   float64
	Aim        float64

	// Projectile states (each projectile is 8 floats: X, Y, VX, VY, Type, Pierce, Dead, Hit)
	ProjectileData []float64

	// Brick states (each brick is 2 floats: Y, HP)
	BrickData []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	projectileData := make([]float64, 0, len(g.projectiles)*8)
	for _, p := range g.projectiles {
		projectileData = append(projectileData,
			p.Pos.X, p.Pos.Y, p.Vel.X, p.Vel.Y,
			float64(p.Type), float64(p.pierce), boolf(p.dead), boolf(p.hit))
	}

	brickData := make([]float64, 0, len(g.bricks)*2)
	for _, b := range g.bricks {
		brickData = append(brickData, b.Pos.Y, float64(b.HP))
	}

	return Snapshot{
		Tick:           g.tick,
		State:          g.state,
		LoseReason:     int(g.loseReason),
		Score:          g.score,
		Budget:         g.budget,
		Used:           g.used,
		Combo:          g.combo,
		Shot:           int(g.shot),
		Cooldown:       g.cooldown,
		Aim:            g.cannon.Aim(),
		ProjectileData: projectileData,
		BrickData:      brickData,
	}
}

func boolf(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.LoseReason) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Budget)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Used)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Combo)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Shot)       //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Cooldown)
	h = h*31 + math.Float64bits(snap.Aim)

	for _, v := range snap.ProjectileData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.BrickData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
