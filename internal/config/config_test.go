package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var embedded DesertConfig
	if err := yaml.Unmarshal(defaultDesertYAML, &embedded); err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}

	def := DefaultDesertConfig()
	if embedded.Player != def.Player {
		t.Errorf("player defaults differ:\nembedded %+v\nhardcoded %+v", embedded.Player, def.Player)
	}
	if embedded.Enemies != def.Enemies {
		t.Errorf("enemy defaults differ:\nembedded %+v\nhardcoded %+v", embedded.Enemies, def.Enemies)
	}
	if embedded.Camera != def.Camera {
		t.Errorf("camera defaults differ: %+v vs %+v", embedded.Camera, def.Camera)
	}
	if len(embedded.Level.Widths) != 3 || embedded.Level.Widths[2] != 3000 {
		t.Errorf("level widths = %v, expected [2000 2500 3000]", embedded.Level.Widths)
	}
	if err := embedded.Validate(); err != nil {
		t.Errorf("embedded defaults should validate: %v", err)
	}
}

func TestLoadDesertCustomPathOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("player:\n  speed: 260\ngameplay:\n  lives: 4\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDesert(path)
	if err != nil {
		t.Fatalf("LoadDesert() error = %v", err)
	}
	if cfg.Player.Speed != 260 {
		t.Errorf("Player.Speed = %f, expected 260", cfg.Player.Speed)
	}
	if cfg.Gameplay.Lives != 4 {
		t.Errorf("Gameplay.Lives = %d, expected 4", cfg.Gameplay.Lives)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.Gravity != 500 {
		t.Errorf("Physics.Gravity = %f, expected 500", cfg.Physics.Gravity)
	}
}

func TestLoadDesertErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadDesert(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom path should return an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDesert(bad); err == nil {
		t.Error("malformed yaml should return an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("gameplay:\n  lives: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDesert(invalid); err == nil {
		t.Error("zero lives should fail validation")
	}
}

func TestLoadDesertSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	cfg, err := LoadDesert("")
	if err != nil {
		t.Fatalf("LoadDesert() error = %v", err)
	}
	if cfg.Player.Speed != 200 {
		t.Errorf("without overrides expected embedded speed 200, got %f", cfg.Player.Speed)
	}

	userDir := filepath.Join(home, appDir, "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "desert.yaml"), []byte("player:\n  speed: 180\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err = LoadDesert("")
	if err != nil {
		t.Fatalf("LoadDesert() error = %v", err)
	}
	if cfg.Player.Speed != 180 {
		t.Errorf("user config should win, got speed %f", cfg.Player.Speed)
	}
}

func TestApplyDesertPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		lives   int
		invinc  float64
		initial float64
	}{
		{DifficultyEasy, true, 5, 2.0, 0.0},
		{DifficultyNormal, true, 3, 1.5, 0.3},
		{DifficultyHard, true, 2, 1.0, 0.7},
		{DifficultyFixed, false, 3, 1.5, 0.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultDesertConfig()
			ApplyDesertPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Gameplay.Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Gameplay.Lives, tc.lives)
			}
			if cfg.Player.Invincibility != tc.invinc {
				t.Errorf("Invincibility = %f, expected %f", cfg.Player.Invincibility, tc.invinc)
			}
			if cfg.Difficulty.InitialLevel != tc.initial {
				t.Errorf("InitialLevel = %f, expected %f", cfg.Difficulty.InitialLevel, tc.initial)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("unknown preset should not parse")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DesertConfig)
	}{
		{"zero player width", func(c *DesertConfig) { c.Player.Width = 0 }},
		{"two width tiers", func(c *DesertConfig) { c.Level.Widths = []float64{2000, 2500} }},
		{"shrinking widths", func(c *DesertConfig) { c.Level.Widths = []float64{3000, 2500, 2000} }},
		{"smoothing above one", func(c *DesertConfig) { c.Camera.Smoothing = 1.5 }},
		{"no cull radius", func(c *DesertConfig) { c.Level.CullRadius = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDesertConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
