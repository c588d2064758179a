package config

import (
	_ "embed"
)

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

//go:embed defaults/reborn.yaml
var defaultRebornYAML []byte

func defaultGrid() GridConfig {
	return GridConfig{
		Rows:        6,
		Cols:        10,
		BrickWidth:  72,
		BrickHeight: 28,
		Spacing:     6,
		Top:         80,
	}
}

// DefaultClassicConfig returns the default Classic mode configuration.
func DefaultClassicConfig() ClassicConfig {
	return ClassicConfig{
		Arena:  ArenaConfig{Width: 800, Height: 600},
		Bricks: defaultGrid(),
		Paddle: ClassicPaddle{
			Width:        110,
			Height:       20,
			Speed:        520,
			BottomOffset: 60,
		},
		Ball: ClassicBall{
			Radius:       8,
			LaunchXRatio: 0.55,
		},
		Ramp: ClassicRamp{Interval: 10},
		Presets: ClassicPresets{
			Easy:   ClassicPreset{Lives: 5, BallSpeed: 260, Ramp: 1.06},
			Normal: ClassicPreset{Lives: 3, BallSpeed: 300, Ramp: 1.10},
			Hard:   ClassicPreset{Lives: 2, BallSpeed: 360, Ramp: 1.14},
		},
	}
}

// DefaultRebornConfig returns the default Reborn mode configuration.
func DefaultRebornConfig() RebornConfig {
	return RebornConfig{
		Arena:  ArenaConfig{Width: 800, Height: 600},
		Bricks: defaultGrid(),
		Cannon: RebornCannon{
			Width:        40,
			Height:       60,
			BottomOffset: 80,
			ClampAim:     true,
			AimMargin:    0.12,
		},
		Projectile: RebornShot{
			Radius:      8,
			SpawnOffset: 34,
		},
		Shots: RebornShots{
			NormalCost:      1,
			PiercingCost:    2,
			ExplosiveCost:   3,
			PierceHits:      2,
			ExplosionRadius: 90,
		},
		Scoring: RebornScoring{
			Hit:          5,
			DestroyPerHP: 10,
			SplashPerHP:  8,
			MaxCombo:     20,
			MinBrickHP:   1,
			MaxBrickHP:   4,
		},
		DangerOffset: 150,
		Presets: RebornPresets{
			Easy:   RebornPreset{AmmoBudget: 70, MaxActive: 5, ProjectileSpeed: 460, Cooldown: 0.18, Descent: 8, HPOffset: -1},
			Normal: RebornPreset{AmmoBudget: 50, MaxActive: 4, ProjectileSpeed: 500, Cooldown: 0.22, Descent: 11, HPOffset: 0},
			Hard:   RebornPreset{AmmoBudget: 35, MaxActive: 3, ProjectileSpeed: 560, Cooldown: 0.28, Descent: 14, HPOffset: 1},
		},
	}
}
