package config

import (
	_ "embed"
)

//go:embed defaults/desert.yaml
var defaultDesertYAML []byte

// DefaultDesertConfig returns the default desert runner configuration.
// It mirrors defaults/desert.yaml and is used when the embedded file
// cannot be parsed.
func DefaultDesertConfig() DesertConfig {
	return DesertConfig{
		Physics: DesertPhysics{
			Gravity:       500,
			GroundLevel:   620,
			MaxFrameDelta: 0.1,
		},
		Player: DesertPlayer{
			StartX:           100,
			StartY:           570,
			Width:            30,
			Height:           50,
			Speed:            200,
			JumpImpulse:      -375,
			Acceleration:     1500,
			Deceleration:     2000,
			MaxHealth:        3,
			Invincibility:    1.5,
			DeathDuration:    1.0,
			DeathFallSpeed:   150,
			DeathSpin:        360,
			DamageKnockback:  -150,
			DeathKnockback:   -250,
			KnockbackDamping: 0.3,
		},
		Enemies: DesertEnemies{
			SpawnY: 585,
			Flash:  0.2,
			Scorpion: ScorpionParams{
				Width: 40, Height: 20, Speed: 50, Damage: 1.0, Range: 100,
			},
			Snake: SnakeParams{
				Width: 60, Height: 15, Speed: 100, Damage: 0.5,
				LungeDistance: 80, Cooldown: 2.0,
			},
			Vulture: VultureParams{
				Width: 50, Height: 30, Speed: 150, Damage: 0.75, SwoopHeight: 150,
			},
		},
		Obstacles: DesertObstacles{
			Platform: PlatformParams{
				Width: 150, Height: 30, Speed: 50, Range: 200, MinY: 450, SpanY: 100,
			},
			Spike: SpikeParams{
				Width: 30, Height: 30, Y: 590, Damage: 0.5,
			},
		},
		Coins: DesertCoins{
			Size:        20,
			SilverValue: 10,
			GoldValue:   50,
			Fade:        0.5,
			Spin:        180,
		},
		Scoring: DesertScoring{
			TimeBonus:     500,
			BonusDecay:    10,
			DamagePenalty: 5,
		},
		Level: DesertLevel{
			Height:            720,
			Widths:            []float64{2000, 2500, 3000},
			CullRadius:        800,
			DecorUpdateChance: 0.05,
			FlagOffset:        150,
			FlagY:             540,
		},
		Camera: DesertCamera{
			ViewportWidth:  1280,
			ViewportHeight: 720,
			Smoothing:      0.1,
		},
		Gameplay: DesertGameplay{
			Lives:      3,
			FinalLevel: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				ExtraEnemies:    2,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "desert", "desert_endless":
		return defaultDesertYAML
	default:
		return nil
	}
}
