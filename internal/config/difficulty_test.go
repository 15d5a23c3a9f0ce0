package config

import "testing"

func TestDifficultyLevelProgression(t *testing.T) {
	cfg := DefaultDesertConfig().Difficulty
	dm := NewDifficultyManager(cfg)

	if got := dm.Level(1); got != 0.0 {
		t.Errorf("Level(1) = %f, expected 0.0", got)
	}
	if got := dm.Level(10); got != 1.0 {
		t.Errorf("Level(10) = %f, expected 1.0", got)
	}
	if got := dm.Level(50); got != 1.0 {
		t.Errorf("Level(50) should clamp to 1.0, got %f", got)
	}

	prev := -1.0
	for n := 1; n <= 15; n++ {
		level := dm.Level(n)
		if level < prev {
			t.Fatalf("Level(%d) = %f decreased from %f", n, level, prev)
		}
		prev = level
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := DefaultDesertConfig().Difficulty
	cfg.InitialLevel = 0.3
	dm := NewDifficultyManager(cfg)
	dm.SetEnabled(false)

	if dm.IsEnabled() {
		t.Error("IsEnabled() should be false after SetEnabled(false)")
	}
	if got := dm.Level(9); got != 0.3 {
		t.Errorf("disabled progression should hold initial level, got %f", got)
	}
}

func TestDifficultySpeedAndEnemies(t *testing.T) {
	cfg := DefaultDesertConfig().Difficulty
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		level int
		speed float64
		extra int
	}{
		{1, 100, 0},
		{10, 150, 2},
	}

	for _, tc := range tests {
		if got := dm.Speed(100, tc.level); got != tc.speed {
			t.Errorf("Speed(100, %d) = %f, expected %f", tc.level, got, tc.speed)
		}
		if got := dm.ExtraEnemies(tc.level); got != tc.extra {
			t.Errorf("ExtraEnemies(%d) = %d, expected %d", tc.level, got, tc.extra)
		}
	}
}

func TestSetInitialLevelClamps(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{})
	dm.SetInitialLevel(4)
	if got := dm.Level(1); got != 1.0 {
		t.Errorf("initial level should clamp to 1.0, got %f", got)
	}
}
