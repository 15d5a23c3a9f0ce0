// Package config provides YAML-based game configuration loading and
// difficulty management for the desert runner.
package config

// DesertConfig contains all configuration for the desert platformer.
// Distances are world units on a 1280x720 stage, times are seconds.
type DesertConfig struct {
	Physics    DesertPhysics    `yaml:"physics"`
	Player     DesertPlayer     `yaml:"player"`
	Enemies    DesertEnemies    `yaml:"enemies"`
	Obstacles  DesertObstacles  `yaml:"obstacles"`
	Coins      DesertCoins      `yaml:"coins"`
	Scoring    DesertScoring    `yaml:"scoring"`
	Level      DesertLevel      `yaml:"level"`
	Camera     DesertCamera     `yaml:"camera"`
	Gameplay   DesertGameplay   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DesertPhysics defines world-wide physics parameters.
type DesertPhysics struct {
	Gravity       float64 `yaml:"gravity"`
	GroundLevel   float64 `yaml:"ground_level"`    // y of the ground surface
	MaxFrameDelta float64 `yaml:"max_frame_delta"` // upper bound on a single tick's dt
}

// DesertPlayer defines player movement, health and death animation.
type DesertPlayer struct {
	StartX           float64 `yaml:"start_x"`
	StartY           float64 `yaml:"start_y"`
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	Speed            float64 `yaml:"speed"`
	JumpImpulse      float64 `yaml:"jump_impulse"`
	Acceleration     float64 `yaml:"acceleration"`
	Deceleration     float64 `yaml:"deceleration"`
	MaxHealth        float64 `yaml:"max_health"`
	Invincibility    float64 `yaml:"invincibility"`
	DeathDuration    float64 `yaml:"death_duration"`
	DeathFallSpeed   float64 `yaml:"death_fall_speed"`
	DeathSpin        float64 `yaml:"death_spin"` // degrees per second
	DamageKnockback  float64 `yaml:"damage_knockback"`
	DeathKnockback   float64 `yaml:"death_knockback"`
	KnockbackDamping float64 `yaml:"knockback_damping"` // horizontal velocity kept on hit
}

// DesertEnemies defines per-variant enemy parameters.
type DesertEnemies struct {
	SpawnY   float64        `yaml:"spawn_y"`
	Scorpion ScorpionParams `yaml:"scorpion"`
	Snake    SnakeParams    `yaml:"snake"`
	Vulture  VultureParams  `yaml:"vulture"`
	Flash    float64        `yaml:"flash"` // attack feedback duration
}

// ScorpionParams configures the patrolling enemy.
type ScorpionParams struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Damage float64 `yaml:"damage"`
	Range  float64 `yaml:"range"`
}

// SnakeParams configures the lunging enemy.
type SnakeParams struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Speed         float64 `yaml:"speed"`
	Damage        float64 `yaml:"damage"`
	LungeDistance float64 `yaml:"lunge_distance"`
	Cooldown      float64 `yaml:"cooldown"`
}

// VultureParams configures the swooping enemy.
type VultureParams struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`
	Damage      float64 `yaml:"damage"`
	SwoopHeight float64 `yaml:"swoop_height"`
}

// DesertObstacles defines moving platform and spike parameters.
type DesertObstacles struct {
	Platform PlatformParams `yaml:"platform"`
	Spike    SpikeParams    `yaml:"spike"`
}

// PlatformParams configures moving platforms.
type PlatformParams struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Range  float64 `yaml:"range"`
	MinY   float64 `yaml:"min_y"`
	SpanY  int     `yaml:"span_y"`
}

// SpikeParams configures static hazards.
type SpikeParams struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Y      float64 `yaml:"y"`
	Damage float64 `yaml:"damage"`
}

// DesertCoins defines collectible parameters.
type DesertCoins struct {
	Size        float64 `yaml:"size"`
	SilverValue int     `yaml:"silver_value"`
	GoldValue   int     `yaml:"gold_value"`
	Fade        float64 `yaml:"fade"`
	Spin        float64 `yaml:"spin"` // degrees per second
}

// DesertScoring defines the level time bonus and damage penalty.
type DesertScoring struct {
	TimeBonus     int `yaml:"time_bonus"`
	BonusDecay    int `yaml:"bonus_decay"` // points lost per second spent
	DamagePenalty int `yaml:"damage_penalty"`
}

// DesertLevel defines level geometry and culling.
type DesertLevel struct {
	Height            float64   `yaml:"height"`
	Widths            []float64 `yaml:"widths"` // narrow, medium, wide
	CullRadius        float64   `yaml:"cull_radius"`
	DecorUpdateChance float64   `yaml:"decor_update_chance"`
	FlagOffset        float64   `yaml:"flag_offset"` // distance from right edge
	FlagY             float64   `yaml:"flag_y"`
}

// DesertCamera defines the viewport and follow smoothing.
type DesertCamera struct {
	ViewportWidth  float64 `yaml:"viewport_width"`
	ViewportHeight float64 `yaml:"viewport_height"`
	Smoothing      float64 `yaml:"smoothing"`
}

// DesertGameplay defines run-level rules.
type DesertGameplay struct {
	Lives      int `yaml:"lives"`
	FinalLevel int `yaml:"final_level"` // campaign win condition
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases as the run goes on.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // Level number at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to enemy speed at max difficulty
	ExtraEnemies    int     `yaml:"extra_enemies"`    // Enemies added per level at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset converts a CLI string to a preset, reporting whether it is known.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}
