// Package config loads game layouts, difficulty tables and user settings.
//
// Layouts are YAML documents embedded in the binary and can be overridden
// per user. Settings (difficulty and master volume) live in their own file
// and are the only thing the games read from the user at reset time.
package config

import "github.com/vovakirdan/brick-arcade/internal/core"

// ArenaConfig is the playfield size in world units.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// GridConfig describes the brick grid. The grid is centred horizontally.
type GridConfig struct {
	Rows        int     `yaml:"rows"`
	Cols        int     `yaml:"cols"`
	BrickWidth  float64 `yaml:"brick_width"`
	BrickHeight float64 `yaml:"brick_height"`
	Spacing     float64 `yaml:"spacing"`
	Top         float64 `yaml:"top"`
}

// ClassicConfig holds all Classic mode parameters.
type ClassicConfig struct {
	Arena   ArenaConfig    `yaml:"arena"`
	Bricks  GridConfig     `yaml:"bricks"`
	Paddle  ClassicPaddle  `yaml:"paddle"`
	Ball    ClassicBall    `yaml:"ball"`
	Ramp    ClassicRamp    `yaml:"ramp"`
	Presets ClassicPresets `yaml:"presets"`
}

// ClassicPaddle is the paddle size, speed and distance from the bottom edge.
type ClassicPaddle struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset"`
}

// ClassicBall holds ball geometry and the launch direction.
// The launch velocity is (speed*LaunchXRatio, -speed).
type ClassicBall struct {
	Radius       float64 `yaml:"radius"`
	LaunchXRatio float64 `yaml:"launch_x_ratio"`
}

// ClassicRamp controls the timed speed-up.
type ClassicRamp struct {
	Interval float64 `yaml:"interval"` // seconds
}

// ClassicPreset is the difficulty-dependent part of Classic mode.
type ClassicPreset struct {
	Lives     int     `yaml:"lives"`
	BallSpeed float64 `yaml:"ball_speed"`
	Ramp      float64 `yaml:"ramp"`
}

// ClassicPresets maps each difficulty to its parameters.
type ClassicPresets struct {
	Easy   ClassicPreset `yaml:"easy"`
	Normal ClassicPreset `yaml:"normal"`
	Hard   ClassicPreset `yaml:"hard"`
}

// For returns the preset for a difficulty.
func (p ClassicPresets) For(d core.Difficulty) ClassicPreset {
	switch d {
	case core.DifficultyEasy:
		return p.Easy
	case core.DifficultyHard:
		return p.Hard
	default:
		return p.Normal
	}
}

// RebornConfig holds all Reborn mode parameters.
type RebornConfig struct {
	Arena      ArenaConfig   `yaml:"arena"`
	Bricks     GridConfig    `yaml:"bricks"`
	Cannon     RebornCannon  `yaml:"cannon"`
	Projectile RebornShot    `yaml:"projectile"`
	Shots      RebornShots   `yaml:"shots"`
	Scoring    RebornScoring `yaml:"scoring"`
	// DangerOffset is the distance of the danger line above the bottom edge.
	DangerOffset float64       `yaml:"danger_offset"`
	Presets      RebornPresets `yaml:"presets"`
}

// RebornCannon places the cannon pivot relative to the bottom centre.
type RebornCannon struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottom_offset"`
	ClampAim     bool    `yaml:"clamp_aim"`
	AimMargin    float64 `yaml:"aim_margin"` // radians
}

// RebornShot is projectile geometry.
type RebornShot struct {
	Radius      float64 `yaml:"radius"`
	SpawnOffset float64 `yaml:"spawn_offset"` // distance from pivot along the aim
}

// RebornShots holds per-type costs and variant parameters.
type RebornShots struct {
	NormalCost      int     `yaml:"normal_cost"`
	PiercingCost    int     `yaml:"piercing_cost"`
	ExplosiveCost   int     `yaml:"explosive_cost"`
	PierceHits      int     `yaml:"pierce_hits"`
	ExplosionRadius float64 `yaml:"explosion_radius"`
}

// RebornScoring holds the score rules.
type RebornScoring struct {
	Hit          int `yaml:"hit"`
	DestroyPerHP int `yaml:"destroy_per_hp"`
	SplashPerHP  int `yaml:"splash_per_hp"`
	MaxCombo     int `yaml:"max_combo"`
	MinBrickHP   int `yaml:"min_brick_hp"`
	MaxBrickHP   int `yaml:"max_brick_hp"`
}

// RebornPreset is the difficulty-dependent part of Reborn mode.
type RebornPreset struct {
	AmmoBudget      int     `yaml:"ammo_budget"`
	MaxActive       int     `yaml:"max_active"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	Cooldown        float64 `yaml:"cooldown"`
	Descent         float64 `yaml:"descent"`
	HPOffset        int     `yaml:"hp_offset"`
}

// RebornPresets maps each difficulty to its parameters.
type RebornPresets struct {
	Easy   RebornPreset `yaml:"easy"`
	Normal RebornPreset `yaml:"normal"`
	Hard   RebornPreset `yaml:"hard"`
}

// For returns the preset for a difficulty.
func (p RebornPresets) For(d core.Difficulty) RebornPreset {
	switch d {
	case core.DifficultyEasy:
		return p.Easy
	case core.DifficultyHard:
		return p.Hard
	default:
		return p.Normal
	}
}

// CellPos returns the top-left corner of the brick at (row, col) for an
// arena of the given width.
func (g GridConfig) CellPos(arenaW float64, row, col int) (x, y float64) {
	totalW := float64(g.Cols)*g.BrickWidth + float64(g.Cols-1)*g.Spacing
	startX := (arenaW - totalW) / 2
	x = startX + float64(col)*(g.BrickWidth+g.Spacing)
	y = g.Top + float64(row)*(g.BrickHeight+g.Spacing)
	return x, y
}
